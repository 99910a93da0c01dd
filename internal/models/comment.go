package models

import "time"

// Comment represents a comment on a post. Replies form a tree rooted at
// the comment they answer; reply-to-reply nesting is permitted.
type Comment struct {
	ID         string     `json:"id"`
	PostID     string     `json:"post_id"`
	UserID     string     `json:"user_id"`
	UserName   string     `json:"user_name"`
	UserAvatar string     `json:"user_avatar,omitempty"`
	Content    string     `json:"content"`
	Timestamp  time.Time  `json:"timestamp"`
	Likes      []string   `json:"likes"`
	Replies    []*Comment `json:"replies,omitempty"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}
