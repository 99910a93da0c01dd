package feed

import (
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sambawork38-pro/Cambliss/internal/models"
	"github.com/sambawork38-pro/Cambliss/internal/news"
	"github.com/sambawork38-pro/Cambliss/internal/storage"
)

// DefaultRefreshInterval is how often the auto-refresh ticker updates
// the "as of" marker.
const DefaultRefreshInterval = 20 * time.Minute

// Feed is the single public surface over the interaction store, follow
// graph, composer and persistence gateway. A single mutex serializes
// all engine access, so every mutation runs to completion before the
// next starts. Persistence writes are fire-and-forget: failures are
// logged and the in-memory change is kept.
type Feed struct {
	mu           sync.Mutex
	interactions *InteractionStore
	follows      *FollowGraph
	composer     *Composer
	gateway      *storage.Gateway
	log          *logrus.Logger

	listenerMu    sync.Mutex
	listeners     map[int]func()
	nextListener  int
	lastRefreshed time.Time
}

// New builds a Feed over the given article source and gateway,
// rehydrating all three persisted collections. Absent or corrupt slots
// yield empty collections, never an error.
func New(source news.Source, gateway *storage.Gateway, log *logrus.Logger) *Feed {
	if log == nil {
		log = logrus.New()
	}

	f := &Feed{
		interactions: NewInteractionStore(),
		follows:      NewFollowGraph(),
		composer:     NewComposer(source),
		gateway:      gateway,
		log:          log,
		listeners:    make(map[int]func()),
	}

	f.interactions.Restore(gateway.LoadInteractions())
	f.follows.Restore(gateway.LoadFollows())
	f.composer.Restore(gateway.LoadUserPosts())
	f.lastRefreshed = time.Now()

	return f
}

// LikePost adds the acting user to the post's like set. Declined when
// no identity is active.
func (f *Feed) LikePost(actor *models.User, postID string) bool {
	if actor == nil {
		return false
	}
	f.mu.Lock()
	f.interactions.Like(postID, actor.ID)
	f.mu.Unlock()

	f.persistInteractions()
	f.notify()
	return true
}

// UnlikePost removes the acting user from the post's like set.
func (f *Feed) UnlikePost(actor *models.User, postID string) bool {
	if actor == nil {
		return false
	}
	f.mu.Lock()
	f.interactions.Unlike(postID, actor.ID)
	f.mu.Unlock()

	f.persistInteractions()
	f.notify()
	return true
}

// AddComment appends a top-level comment by the acting user. Declined
// when no identity is active or the content is blank after trimming.
func (f *Feed) AddComment(actor *models.User, postID, content string) (*models.Comment, bool) {
	if actor == nil {
		return nil, false
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, false
	}

	f.mu.Lock()
	comment := f.interactions.AddComment(postID, actor.ID, actor.FullName, actor.Avatar, content)
	f.mu.Unlock()

	f.persistInteractions()
	f.notify()
	return comment, true
}

// LikeComment adds the acting user to a top-level comment's like set.
func (f *Feed) LikeComment(actor *models.User, commentID string) bool {
	if actor == nil {
		return false
	}
	f.mu.Lock()
	f.interactions.LikeComment(commentID, actor.ID)
	f.mu.Unlock()

	f.persistInteractions()
	f.notify()
	return true
}

// SharePost increments the post's share counter and returns the new
// count. Sharing is not identity-bound, so no actor is required.
func (f *Feed) SharePost(postID string) int {
	f.mu.Lock()
	shares := f.interactions.Share(postID)
	f.mu.Unlock()

	f.persistInteractions()
	f.notify()
	return shares
}

// FollowUser adds a follow edge from the acting user to targetID.
// Declined when no identity is active or the target is the actor.
func (f *Feed) FollowUser(actor *models.User, targetID string) bool {
	if actor == nil || actor.ID == targetID {
		return false
	}
	f.mu.Lock()
	f.follows.Follow(actor.ID, targetID)
	f.mu.Unlock()

	f.persistFollows()
	f.notify()
	return true
}

// UnfollowUser removes the follow edge from the acting user to targetID.
func (f *Feed) UnfollowUser(actor *models.User, targetID string) bool {
	if actor == nil {
		return false
	}
	f.mu.Lock()
	f.follows.Unfollow(actor.ID, targetID)
	f.mu.Unlock()

	f.persistFollows()
	f.notify()
	return true
}

// CreatePost mints a new user-authored post attributed to the acting
// user. Declined when no identity is active.
func (f *Feed) CreatePost(actor *models.User, req models.CreatePostRequest) (*models.Post, bool) {
	if actor == nil {
		return nil, false
	}
	f.mu.Lock()
	post := f.composer.AddUserPost(req, actor)
	f.mu.Unlock()

	f.persistUserPosts()
	f.notify()
	return &post, true
}

// Posts returns the merged feed, most recent first.
func (f *Feed) Posts() []models.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.composer.Posts()
}

// PostsByCategory filters the merged feed by category; "all" returns everything.
func (f *Feed) PostsByCategory(category string) []models.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.composer.ByCategory(category)
}

// FollowedPosts returns the user-authored posts from authors userID follows.
func (f *Feed) FollowedPosts(userID string) []models.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.composer.FollowedPosts(f.follows.Following(userID))
}

// UserPosts returns the user-authored posts created by userID.
func (f *Feed) UserPosts(userID string) []models.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.composer.UserPosts(userID)
}

// Post looks up a single post in the merged feed by id.
func (f *Feed) Post(postID string) (models.Post, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.composer.Posts() {
		if p.ID == postID {
			return p, true
		}
	}
	return models.Post{}, false
}

// Trending returns the top hashtags across the merged feed.
func (f *Feed) Trending() []models.TrendingTag {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.composer.Trending()
}

// Interactions returns the interaction record for a post, or a fresh
// empty one if the post has never been interacted with.
func (f *Feed) Interactions(postID string) models.Interaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.interactions.Get(postID)
}

// IsFollowing reports whether userID follows targetID.
func (f *Feed) IsFollowing(userID, targetID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.follows.IsFollowing(userID, targetID)
}

// Following returns the ids userID follows.
func (f *Feed) Following(userID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.follows.Following(userID)
}

// Refresh updates the "as of" marker and returns it. Re-merging happens
// automatically when an input changes; this only refreshes the
// displayed timestamp.
func (f *Feed) Refresh() time.Time {
	f.mu.Lock()
	f.lastRefreshed = time.Now()
	t := f.lastRefreshed
	f.mu.Unlock()

	f.notify()
	return t
}

// LastRefreshed returns the current "as of" marker.
func (f *Feed) LastRefreshed() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastRefreshed
}

// Subscribe registers a listener invoked after every state change. The
// returned function unsubscribes it.
func (f *Feed) Subscribe(fn func()) func() {
	f.listenerMu.Lock()
	id := f.nextListener
	f.nextListener++
	f.listeners[id] = fn
	f.listenerMu.Unlock()

	return func() {
		f.listenerMu.Lock()
		delete(f.listeners, id)
		f.listenerMu.Unlock()
	}
}

// StartAutoRefresh runs Refresh on the given interval until the
// returned stop function is called. The caller owning the view
// lifecycle decides when to start and stop it.
func (f *Feed) StartAutoRefresh(interval time.Duration) func() {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				f.Refresh()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}

func (f *Feed) notify() {
	f.listenerMu.Lock()
	fns := make([]func(), 0, len(f.listeners))
	for _, fn := range f.listeners {
		fns = append(fns, fn)
	}
	f.listenerMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (f *Feed) persistInteractions() {
	f.mu.Lock()
	snapshot := f.interactions.Snapshot()
	err := f.gateway.SaveInteractions(snapshot)
	f.mu.Unlock()
	if err != nil {
		f.log.WithError(err).Error("persisting interactions, in-memory state kept")
	}
}

func (f *Feed) persistFollows() {
	f.mu.Lock()
	err := f.gateway.SaveFollows(f.follows.Snapshot())
	f.mu.Unlock()
	if err != nil {
		f.log.WithError(err).Error("persisting follows, in-memory state kept")
	}
}

func (f *Feed) persistUserPosts() {
	f.mu.Lock()
	err := f.gateway.SaveUserPosts(f.composer.UserPostsSnapshot())
	f.mu.Unlock()
	if err != nil {
		f.log.WithError(err).Error("persisting user posts, in-memory state kept")
	}
}
