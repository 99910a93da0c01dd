package models

// Interaction is the like/comment/share state attached to one post.
// Records are created lazily on first mutation and never deleted, so an
// interaction may outlive the post it refers to.
type Interaction struct {
	PostID   string     `json:"post_id"`
	Likes    []string   `json:"likes"`
	Comments []*Comment `json:"comments"`
	Shares   int        `json:"shares"`
}
