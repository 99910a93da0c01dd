package feed

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sambawork38-pro/Cambliss/internal/models"
	"github.com/sambawork38-pro/Cambliss/internal/news"
)

// anonymousUserID is attributed when a post is created with no active
// identity. The Facade normally declines that case; the composer itself
// must not fail on it.
const anonymousUserID = "anon"

const trendingLimit = 10

// Composer merges generated news articles and user-authored posts into
// one feed ordered by recency, and computes the derived views over it.
// News posts are mapped fresh from the source whenever its version
// changes; user posts live in the composer's backing collection.
type Composer struct {
	source      news.Source
	userPosts   []models.Post
	merged      []models.Post
	seenVersion uint64
	dirty       bool
}

func NewComposer(source news.Source) *Composer {
	return &Composer{source: source, dirty: true}
}

// Restore replaces the user-post collection with rehydrated posts.
func (c *Composer) Restore(posts []models.Post) {
	c.userPosts = posts
	c.dirty = true
}

// AddUserPost mints a new user-authored post from the request, stamps it
// with the current time and the acting user's identity, and prepends it
// to the backing collection.
func (c *Composer) AddUserPost(req models.CreatePostRequest, actor *models.User) models.Post {
	authorID := anonymousUserID
	author := "Anonymous"
	avatar := news.AvatarURL("")
	if actor != nil {
		authorID = actor.ID
		author = actor.FullName
		avatar = actor.Avatar
		if avatar == "" {
			avatar = news.AvatarURL(actor.FullName)
		}
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	post := models.Post{
		ID:           "user_post_" + uuid.NewString(),
		Origin:       models.OriginUserAuthored,
		Title:        req.Title,
		Summary:      req.Summary,
		Content:      req.Content,
		ImageURL:     req.ImageURL,
		VideoURL:     req.VideoURL,
		Author:       author,
		AuthorAvatar: avatar,
		AuthorID:     authorID,
		PublishedAt:  time.Now(),
		Category:     strings.ToLower(req.Category),
		Tags:         tags,
	}

	c.userPosts = append([]models.Post{post}, c.userPosts...)
	c.dirty = true
	return post
}

// Posts returns the merged feed, most recent first, rebuilding it when
// either input has changed since the last merge.
func (c *Composer) Posts() []models.Post {
	if version := c.source.Version(); c.dirty || version != c.seenVersion {
		c.remerge(version)
	}
	return c.merged
}

func (c *Composer) remerge(version uint64) {
	articles := c.source.Articles()

	all := make([]models.Post, 0, len(c.userPosts)+len(articles))
	all = append(all, c.userPosts...)
	for _, a := range articles {
		all = append(all, newsPost(a))
	}

	// Stable: many generated articles share coarse timestamps, and ties
	// must keep insertion order.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].PublishedAt.After(all[j].PublishedAt)
	})

	c.merged = all
	c.seenVersion = version
	c.dirty = false
}

// newsPost maps a source article into a feed post, synthesizing the
// author id and avatar the source does not provide.
func newsPost(a models.Article) models.Post {
	return models.Post{
		ID:           a.ID,
		Origin:       models.OriginNews,
		Title:        a.Title,
		Summary:      a.Summary,
		Content:      a.Content,
		ImageURL:     a.ImageURL,
		VideoURL:     a.VideoURL,
		Author:       a.Author,
		AuthorAvatar: news.AvatarURL(a.Author),
		AuthorID:     SynthesizeAuthorID(a.Author),
		PublishedAt:  a.PublishedAt,
		Category:     a.Category,
		Tags:         a.Tags,
	}
}

// SynthesizeAuthorID derives a stable identifier from an author display
// name: lowercased, whitespace runs collapsed to underscores.
func SynthesizeAuthorID(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) == 0 {
		return "author_guest"
	}
	return "author_" + strings.Join(fields, "_")
}

// ByCategory filters the merged feed by category, case-insensitively.
// "all" returns the feed unfiltered.
func (c *Composer) ByCategory(category string) []models.Post {
	posts := c.Posts()
	if strings.EqualFold(category, "all") {
		return posts
	}

	var out []models.Post
	for _, p := range posts {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// FollowedPosts returns the user-authored posts whose author is in the
// given follow set. News posts are excluded: authorship of generated
// news is not a followable identity.
func (c *Composer) FollowedPosts(following []string) []models.Post {
	followed := make(map[string]bool, len(following))
	for _, id := range following {
		followed[id] = true
	}

	var out []models.Post
	for _, p := range c.Posts() {
		if p.Origin == models.OriginUserAuthored && followed[p.AuthorID] {
			out = append(out, p)
		}
	}
	return out
}

// UserPosts returns the user-authored posts created by userID, newest first.
func (c *Composer) UserPosts(userID string) []models.Post {
	var out []models.Post
	for _, p := range c.userPosts {
		if p.AuthorID == userID {
			out = append(out, p)
		}
	}
	return out
}

// Trending tallies tag occurrences across the entire merged feed and
// returns the top tags by count, ties broken by first-seen order.
func (c *Composer) Trending() []models.TrendingTag {
	counts := make(map[string]int)
	var order []string
	for _, p := range c.Posts() {
		for _, tag := range p.Tags {
			if counts[tag] == 0 {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	tags := make([]models.TrendingTag, 0, len(order))
	for _, tag := range order {
		tags = append(tags, models.TrendingTag{Tag: tag, Count: counts[tag]})
	}
	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].Count > tags[j].Count
	})

	if len(tags) > trendingLimit {
		tags = tags[:trendingLimit]
	}
	return tags
}

// UserPostsSnapshot exposes the backing user-post collection for persistence.
func (c *Composer) UserPostsSnapshot() []models.Post {
	return c.userPosts
}
