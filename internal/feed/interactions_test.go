package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sambawork38-pro/Cambliss/internal/models"
)

func TestInteractionStore_LikeIdempotent(t *testing.T) {
	s := NewInteractionStore()

	s.Like("p1", "u1")
	s.Like("p1", "u1")

	rec := s.Get("p1")
	assert.Equal(t, []string{"u1"}, rec.Likes)
}

func TestInteractionStore_UnlikeIdempotent(t *testing.T) {
	s := NewInteractionStore()

	s.Like("p1", "u1")
	s.Like("p1", "u2")
	s.Unlike("p1", "u1")
	s.Unlike("p1", "u1")

	rec := s.Get("p1")
	assert.Equal(t, []string{"u2"}, rec.Likes)

	// Unknown post and unknown user are both no-ops.
	s.Unlike("nope", "u1")
	s.Unlike("p1", "u3")
}

func TestInteractionStore_AddCommentOrder(t *testing.T) {
	s := NewInteractionStore()

	first := s.AddComment("p1", "u1", "User One", "", "first")
	second := s.AddComment("p1", "u2", "User Two", "", "second")
	require.NotEqual(t, first.ID, second.ID)

	rec := s.Get("p1")
	require.Len(t, rec.Comments, 2)
	assert.Equal(t, "first", rec.Comments[0].Content)
	assert.Equal(t, "second", rec.Comments[1].Content)
	assert.False(t, rec.Comments[0].Timestamp.IsZero())
}

func TestInteractionStore_LikeComment(t *testing.T) {
	s := NewInteractionStore()

	comment := s.AddComment("p1", "u1", "User One", "", "hello")
	s.LikeComment(comment.ID, "u2")
	s.LikeComment(comment.ID, "u2")

	rec := s.Get("p1")
	assert.Equal(t, []string{"u2"}, rec.Comments[0].Likes)

	// Unknown comment id is a no-op.
	s.LikeComment("comment_missing", "u2")
}

func TestInteractionStore_LikeCommentTopLevelOnly(t *testing.T) {
	s := NewInteractionStore()

	parent := s.AddComment("p1", "u1", "User One", "", "parent")
	parent.Replies = append(parent.Replies, &models.Comment{
		ID:      "comment_reply",
		PostID:  "p1",
		UserID:  "u2",
		Content: "nested",
		Likes:   []string{},
	})

	s.LikeComment("comment_reply", "u3")
	assert.Empty(t, s.Get("p1").Comments[0].Replies[0].Likes)
}

func TestInteractionStore_ShareCountsEveryCall(t *testing.T) {
	s := NewInteractionStore()

	s.Share("p1")
	s.Share("p1")
	got := s.Share("p1")

	assert.Equal(t, 3, got)
	assert.Equal(t, 3, s.Get("p1").Shares)
}

func TestInteractionStore_GetReturnsDetachedCopy(t *testing.T) {
	s := NewInteractionStore()

	s.Like("p1", "u1")
	comment := s.AddComment("p1", "u1", "User One", "", "hello")
	s.LikeComment(comment.ID, "u2")

	got := s.Get("p1")

	// Mutations after Get must not show through the returned copy.
	s.Unlike("p1", "u1")
	s.LikeComment(comment.ID, "u3")
	s.AddComment("p1", "u2", "User Two", "", "later")

	assert.Equal(t, []string{"u1"}, got.Likes)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, []string{"u2"}, got.Comments[0].Likes)

	// And writes to the copy must not reach the store.
	got.Likes = append(got.Likes, "u9")
	got.Comments[0].Likes = append(got.Comments[0].Likes, "u9")
	assert.Empty(t, s.Get("p1").Likes)
	assert.Equal(t, []string{"u2", "u3"}, s.Get("p1").Comments[0].Likes)
}

func TestInteractionStore_GetUnseenPostNotStored(t *testing.T) {
	s := NewInteractionStore()

	rec := s.Get("unseen")
	assert.Equal(t, "unseen", rec.PostID)
	assert.Empty(t, rec.Likes)
	assert.Empty(t, rec.Comments)
	assert.Zero(t, rec.Shares)

	assert.Empty(t, s.Snapshot())
}
