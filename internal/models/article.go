package models

import "time"

// Article is the record shape produced by the news generator. The feed
// engine treats the generator as an opaque content source and maps
// articles into Posts at merge time.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"image_url"`
	VideoURL    string    `json:"video_url,omitempty"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
	Category    string    `json:"category"`
	Source      string    `json:"source"`
	ReadTime    int       `json:"read_time"`
	Tags        []string  `json:"tags"`
}
