package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sambawork38-pro/Cambliss/internal/models"
)

func newTestGateway() (*Gateway, *MemKV) {
	kv := NewMemKV()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewGateway(kv, log), kv
}

func TestGateway_InteractionsRoundTrip(t *testing.T) {
	g, _ := newTestGateway()

	stamp := time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)
	reply := &models.Comment{
		ID:        "comment_r1",
		PostID:    "p1",
		UserID:    "u2",
		UserName:  "User Two",
		Content:   "a reply",
		Timestamp: stamp.Add(time.Minute),
		Likes:     []string{},
	}
	records := map[string]*models.Interaction{
		"p1": {
			PostID: "p1",
			Likes:  []string{"u1", "u2", "u3"},
			Comments: []*models.Comment{
				{
					ID:        "comment_c1",
					PostID:    "p1",
					UserID:    "u1",
					UserName:  "User One",
					Content:   "top level",
					Timestamp: stamp,
					Likes:     []string{"u2"},
					Replies:   []*models.Comment{reply},
				},
				{
					ID:        "comment_c2",
					PostID:    "p1",
					UserID:    "u3",
					UserName:  "User Three",
					Content:   "another",
					Timestamp: stamp.Add(2 * time.Minute),
					Likes:     []string{},
				},
			},
			Shares: 5,
		},
	}

	require.NoError(t, g.SaveInteractions(records))
	loaded := g.LoadInteractions()

	require.Contains(t, loaded, "p1")
	got := loaded["p1"]
	assert.Equal(t, []string{"u1", "u2", "u3"}, got.Likes)
	assert.Equal(t, 5, got.Shares)
	require.Len(t, got.Comments, 2)

	c1 := got.Comments[0]
	assert.Equal(t, "comment_c1", c1.ID)
	assert.True(t, c1.Timestamp.Equal(stamp))
	assert.Equal(t, []string{"u2"}, c1.Likes)
	require.Len(t, c1.Replies, 1)
	assert.Equal(t, "comment_r1", c1.Replies[0].ID)
	assert.True(t, c1.Replies[0].Timestamp.Equal(stamp.Add(time.Minute)))

	assert.True(t, got.Comments[1].Timestamp.Equal(stamp.Add(2*time.Minute)))
}

func TestGateway_FollowsRoundTrip(t *testing.T) {
	g, _ := newTestGateway()

	edges := map[string][]string{
		"u1": {"u2", "u3"},
		"u2": {},
	}
	require.NoError(t, g.SaveFollows(edges))

	loaded := g.LoadFollows()
	assert.Equal(t, []string{"u2", "u3"}, loaded["u1"])
	assert.Equal(t, []string{}, loaded["u2"])
}

func TestGateway_UserPostsRoundTrip(t *testing.T) {
	g, _ := newTestGateway()

	published := time.Date(2026, 7, 1, 18, 0, 0, 0, time.UTC)
	posts := []models.Post{{
		ID:          "user_post_1",
		Origin:      models.OriginUserAuthored,
		Title:       "hello",
		Summary:     "world",
		AuthorID:    "u1",
		Author:      "User One",
		PublishedAt: published,
		Category:    "sports",
		Tags:        []string{"cricket"},
	}}
	require.NoError(t, g.SaveUserPosts(posts))

	loaded := g.LoadUserPosts()
	require.Len(t, loaded, 1)
	assert.Equal(t, "user_post_1", loaded[0].ID)
	assert.True(t, loaded[0].PublishedAt.Equal(published))
	assert.Equal(t, []string{"cricket"}, loaded[0].Tags)
}

func TestGateway_AbsentSlotsAreEmpty(t *testing.T) {
	g, _ := newTestGateway()

	assert.Empty(t, g.LoadInteractions())
	assert.Empty(t, g.LoadFollows())
	assert.Empty(t, g.LoadUserPosts())
}

func TestGateway_MalformedSlotsAreEmpty(t *testing.T) {
	g, kv := newTestGateway()

	for _, slot := range []string{SlotInteractions, SlotFollows, SlotUserPosts} {
		require.NoError(t, kv.Set(slot, []byte(`{"not": "the right shape`)))
	}

	assert.Empty(t, g.LoadInteractions())
	assert.Empty(t, g.LoadFollows())
	assert.Empty(t, g.LoadUserPosts())
}

func TestGateway_EpochTimestampsRehydrate(t *testing.T) {
	g, kv := newTestGateway()

	// Seconds on the comment, milliseconds on the post: both forms a
	// slot may historically contain.
	require.NoError(t, kv.Set(SlotInteractions, []byte(
		`{"p1":{"likes":["u1"],"comments":[{"id":"c1","post_id":"p1","user_id":"u1","content":"hi","timestamp":1755600000,"likes":[],"replies":[]}],"shares":1}}`)))
	require.NoError(t, kv.Set(SlotUserPosts, []byte(
		`[{"id":"user_post_1","title":"t","summary":"s","published_at":1755600000000,"category":"world","tags":[]}]`)))

	loaded := g.LoadInteractions()
	require.Contains(t, loaded, "p1")
	assert.True(t, loaded["p1"].Comments[0].Timestamp.Equal(time.Unix(1755600000, 0)))

	posts := g.LoadUserPosts()
	require.Len(t, posts, 1)
	assert.True(t, posts[0].PublishedAt.Equal(time.UnixMilli(1755600000000)))
	// Origin defaults to user-authored for this slot.
	assert.Equal(t, models.OriginUserAuthored, posts[0].Origin)
}

func TestGateway_ReplyDepthClamped(t *testing.T) {
	g, _ := newTestGateway()

	// Build a reply chain far deeper than the rehydration guard.
	deepest := &models.Comment{ID: "c_deep", Likes: []string{}}
	current := deepest
	for i := 0; i < 50; i++ {
		current = &models.Comment{ID: "c", Likes: []string{}, Replies: []*models.Comment{current}}
	}
	records := map[string]*models.Interaction{
		"p1": {PostID: "p1", Likes: []string{}, Comments: []*models.Comment{current}, Shares: 0},
	}
	require.NoError(t, g.SaveInteractions(records))

	loaded := g.LoadInteractions()
	depth := 0
	for c := loaded["p1"].Comments[0]; len(c.Replies) > 0; c = c.Replies[0] {
		depth++
	}
	assert.Equal(t, maxReplyDepth, depth)
}

func TestSQLiteKV_SetGetRoundTrip(t *testing.T) {
	kv, err := OpenSQLite(filepath.Join(t.TempDir(), "slots.db"))
	require.NoError(t, err)
	defer kv.Close()

	got, err := kv.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, kv.Set("k", []byte(`{"v":1}`)))
	require.NoError(t, kv.Set("k", []byte(`{"v":2}`)))

	got, err = kv.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":2}`), got)
}
