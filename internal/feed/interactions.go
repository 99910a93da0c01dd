package feed

import (
	"time"

	"github.com/google/uuid"

	"github.com/sambawork38-pro/Cambliss/internal/models"
)

// InteractionStore owns per-post social state: like sets, comment
// threads and share counters. Records are created lazily on first
// mutation and never deleted. The store performs no input validation
// and no identity checks; those are Facade contracts.
type InteractionStore struct {
	records map[string]*models.Interaction
}

func NewInteractionStore() *InteractionStore {
	return &InteractionStore{records: make(map[string]*models.Interaction)}
}

func (s *InteractionStore) record(postID string) *models.Interaction {
	rec, ok := s.records[postID]
	if !ok {
		rec = &models.Interaction{
			PostID:   postID,
			Likes:    []string{},
			Comments: []*models.Comment{},
		}
		s.records[postID] = rec
	}
	return rec
}

// Like adds userID to the post's like set. Idempotent.
func (s *InteractionStore) Like(postID, userID string) {
	rec := s.record(postID)
	for _, id := range rec.Likes {
		if id == userID {
			return
		}
	}
	rec.Likes = append(rec.Likes, userID)
}

// Unlike removes userID from the post's like set. Idempotent.
func (s *InteractionStore) Unlike(postID, userID string) {
	rec, ok := s.records[postID]
	if !ok {
		return
	}
	for i, id := range rec.Likes {
		if id == userID {
			rec.Likes = append(rec.Likes[:i], rec.Likes[i+1:]...)
			return
		}
	}
}

// AddComment appends a new top-level comment with a fresh id and the
// current timestamp, and returns it.
func (s *InteractionStore) AddComment(postID, userID, userName, userAvatar, content string) *models.Comment {
	comment := &models.Comment{
		ID:         "comment_" + uuid.NewString(),
		PostID:     postID,
		UserID:     userID,
		UserName:   userName,
		UserAvatar: userAvatar,
		Content:    content,
		Timestamp:  time.Now(),
		Likes:      []string{},
	}
	rec := s.record(postID)
	rec.Comments = append(rec.Comments, comment)
	return comment
}

// LikeComment adds userID to the like set of the top-level comment with
// the given id, searching every record. No-op if not found. Idempotent.
func (s *InteractionStore) LikeComment(commentID, userID string) {
	for _, rec := range s.records {
		for _, c := range rec.Comments {
			if c.ID != commentID {
				continue
			}
			for _, id := range c.Likes {
				if id == userID {
					return
				}
			}
			c.Likes = append(c.Likes, userID)
			return
		}
	}
}

// Share increments the post's share counter unconditionally and returns
// the new count. Sharing is not identity-bound, so every call counts.
func (s *InteractionStore) Share(postID string) int {
	rec := s.record(postID)
	rec.Shares++
	return rec.Shares
}

// Get returns a deep copy of the post's interaction record, or a fresh
// empty one if none exists. The copy shares nothing with the store, so
// callers may read it after the engine lock is released. The empty
// record is not stored.
func (s *InteractionStore) Get(postID string) models.Interaction {
	if rec, ok := s.records[postID]; ok {
		return models.Interaction{
			PostID:   rec.PostID,
			Likes:    append([]string{}, rec.Likes...),
			Comments: copyComments(rec.Comments),
			Shares:   rec.Shares,
		}
	}
	return models.Interaction{
		PostID:   postID,
		Likes:    []string{},
		Comments: []*models.Comment{},
	}
}

func copyComments(comments []*models.Comment) []*models.Comment {
	out := make([]*models.Comment, 0, len(comments))
	for _, c := range comments {
		cp := *c
		cp.Likes = append([]string{}, c.Likes...)
		cp.Replies = copyComments(c.Replies)
		out = append(out, &cp)
	}
	return out
}

// Snapshot exposes the full record map for persistence.
func (s *InteractionStore) Snapshot() map[string]*models.Interaction {
	return s.records
}

// Restore replaces the store's contents with a rehydrated record map.
func (s *InteractionStore) Restore(records map[string]*models.Interaction) {
	if records == nil {
		records = make(map[string]*models.Interaction)
	}
	s.records = records
}
