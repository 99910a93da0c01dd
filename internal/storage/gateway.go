package storage

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sambawork38-pro/Cambliss/internal/models"
)

// maxReplyDepth bounds reply-tree reconstruction so corrupted or
// adversarial stored data cannot exhaust the stack.
const maxReplyDepth = 32

// Gateway serializes engine collections to their storage slots and
// rehydrates them on start. Loads never fail: an absent or unparseable
// slot is logged and treated as an empty collection.
type Gateway struct {
	kv  KV
	log *logrus.Logger
}

func NewGateway(kv KV, log *logrus.Logger) *Gateway {
	if log == nil {
		log = logrus.New()
	}
	return &Gateway{kv: kv, log: log}
}

// SaveInteractions writes the full interaction map to its slot.
func (g *Gateway) SaveInteractions(records map[string]*models.Interaction) error {
	return g.save(SlotInteractions, records)
}

// SaveFollows writes the full follow mapping to its slot.
func (g *Gateway) SaveFollows(edges map[string][]string) error {
	return g.save(SlotFollows, edges)
}

// SaveUserPosts writes the full user-post collection to its slot.
func (g *Gateway) SaveUserPosts(posts []models.Post) error {
	return g.save(SlotUserPosts, posts)
}

func (g *Gateway) save(slot string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return g.kv.Set(slot, data)
}

// LoadInteractions rehydrates the interaction map, reconstructing
// comment timestamps and reply trees recursively.
func (g *Gateway) LoadInteractions() map[string]*models.Interaction {
	records := make(map[string]*models.Interaction)

	var stored map[string]storedInteraction
	if !g.load(SlotInteractions, &stored) {
		return records
	}

	for postID, s := range stored {
		rec := &models.Interaction{
			PostID:   postID,
			Likes:    orEmpty(s.Likes),
			Comments: make([]*models.Comment, 0, len(s.Comments)),
			Shares:   s.Shares,
		}
		for _, c := range s.Comments {
			rec.Comments = append(rec.Comments, c.toComment(0))
		}
		records[postID] = rec
	}
	return records
}

// LoadFollows rehydrates the per-user follow sets.
func (g *Gateway) LoadFollows() map[string][]string {
	edges := make(map[string][]string)

	var stored map[string][]string
	if !g.load(SlotFollows, &stored) {
		return edges
	}

	for userID, targets := range stored {
		edges[userID] = orEmpty(targets)
	}
	return edges
}

// LoadUserPosts rehydrates the user-authored post collection.
func (g *Gateway) LoadUserPosts() []models.Post {
	var stored []storedPost
	if !g.load(SlotUserPosts, &stored) {
		return nil
	}

	posts := make([]models.Post, 0, len(stored))
	for _, s := range stored {
		posts = append(posts, s.toPost())
	}
	return posts
}

// load reports whether the slot existed and parsed. Failures are
// recovered by the caller returning an empty collection.
func (g *Gateway) load(slot string, v interface{}) bool {
	data, err := g.kv.Get(slot)
	if err != nil {
		g.log.WithError(err).WithField("slot", slot).Warn("reading storage slot, starting empty")
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		g.log.WithError(err).WithField("slot", slot).Warn("malformed storage slot, starting empty")
		return false
	}
	return true
}

// flexTime accepts RFC3339 strings as well as numeric epoch seconds or
// milliseconds, covering every form a slot may have been written in.
type flexTime struct {
	time.Time
}

func (t *flexTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' {
		parsed, err := time.Parse(time.RFC3339Nano, s[1:len(s)-1])
		if err != nil {
			return err
		}
		t.Time = parsed
		return nil
	}

	epoch, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	// Heuristic: values this large are milliseconds.
	if epoch > 1e12 {
		t.Time = time.UnixMilli(int64(epoch))
	} else {
		t.Time = time.Unix(int64(epoch), 0)
	}
	return nil
}

type storedInteraction struct {
	Likes    []string        `json:"likes"`
	Comments []storedComment `json:"comments"`
	Shares   int             `json:"shares"`
}

type storedComment struct {
	ID         string          `json:"id"`
	PostID     string          `json:"post_id"`
	UserID     string          `json:"user_id"`
	UserName   string          `json:"user_name"`
	UserAvatar string          `json:"user_avatar"`
	Content    string          `json:"content"`
	Timestamp  flexTime        `json:"timestamp"`
	Likes      []string        `json:"likes"`
	Replies    []storedComment `json:"replies"`
}

func (s storedComment) toComment(depth int) *models.Comment {
	c := &models.Comment{
		ID:         s.ID,
		PostID:     s.PostID,
		UserID:     s.UserID,
		UserName:   s.UserName,
		UserAvatar: s.UserAvatar,
		Content:    s.Content,
		Timestamp:  s.Timestamp.Time,
		Likes:      orEmpty(s.Likes),
	}
	if depth >= maxReplyDepth {
		return c
	}
	for _, r := range s.Replies {
		c.Replies = append(c.Replies, r.toComment(depth+1))
	}
	return c
}

type storedPost struct {
	ID           string            `json:"id"`
	Origin       models.PostOrigin `json:"origin"`
	Title        string            `json:"title"`
	Summary      string            `json:"summary"`
	Content      string            `json:"content"`
	ImageURL     string            `json:"image_url"`
	VideoURL     string            `json:"video_url"`
	Author       string            `json:"author"`
	AuthorAvatar string            `json:"author_avatar"`
	AuthorID     string            `json:"author_id"`
	PublishedAt  flexTime          `json:"published_at"`
	Category     string            `json:"category"`
	Tags         []string          `json:"tags"`
}

func (s storedPost) toPost() models.Post {
	origin := s.Origin
	if origin == "" {
		// This slot only ever holds user-authored posts.
		origin = models.OriginUserAuthored
	}
	return models.Post{
		ID:           s.ID,
		Origin:       origin,
		Title:        s.Title,
		Summary:      s.Summary,
		Content:      s.Content,
		ImageURL:     s.ImageURL,
		VideoURL:     s.VideoURL,
		Author:       s.Author,
		AuthorAvatar: s.AuthorAvatar,
		AuthorID:     s.AuthorID,
		PublishedAt:  s.PublishedAt.Time,
		Category:     s.Category,
		Tags:         orEmpty(s.Tags),
	}
}

func orEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
