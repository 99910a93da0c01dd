package models

import "time"

// PostOrigin distinguishes generated news content from user-authored posts.
type PostOrigin string

const (
	OriginNews         PostOrigin = "news"
	OriginUserAuthored PostOrigin = "user"
)

// Post is a unit of feed content. News posts are re-derived from the
// article source on every merge and never stored; user posts are minted
// once and persisted.
type Post struct {
	ID           string     `json:"id"`
	Origin       PostOrigin `json:"origin"`
	Title        string     `json:"title"`
	Summary      string     `json:"summary"`
	Content      string     `json:"content"`
	ImageURL     string     `json:"image_url,omitempty"`
	VideoURL     string     `json:"video_url,omitempty"`
	Author       string     `json:"author"`
	AuthorAvatar string     `json:"author_avatar,omitempty"`
	AuthorID     string     `json:"author_id,omitempty"`
	PublishedAt  time.Time  `json:"published_at"`
	Category     string     `json:"category"`
	Tags         []string   `json:"tags"`
}

// TrendingTag is a hashtag ranked by occurrence count across the feed.
type TrendingTag struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// CreatePostRequest defines the request body for creating a new user post
type CreatePostRequest struct {
	Title    string   `json:"title" validate:"required,min=1,max=200"`
	Summary  string   `json:"summary" validate:"required,min=1,max=500"`
	Content  string   `json:"content,omitempty" validate:"omitempty,max=10000"`
	Category string   `json:"category" validate:"required,min=1,max=50"`
	ImageURL string   `json:"image_url,omitempty" validate:"omitempty,url"`
	VideoURL string   `json:"video_url,omitempty" validate:"omitempty,url"`
	Tags     []string `json:"tags,omitempty" validate:"omitempty,dive,min=1,max=50"`
}
