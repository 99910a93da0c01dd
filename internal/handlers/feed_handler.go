package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sambawork38-pro/Cambliss/internal/feed"
	"github.com/sambawork38-pro/Cambliss/internal/models"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	feed *feed.Feed
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(f *feed.Feed) *FeedHandler {
	return &FeedHandler{feed: f}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
	g.GET("/feed/trending", h.GetTrending)
	g.POST("/feed/refresh", h.RefreshFeed)
}

// EnrichedPost is a post with its interaction state and user-specific flags
type EnrichedPost struct {
	models.Post
	Likes       int  `json:"likes"`
	Comments    int  `json:"comments"`
	Shares      int  `json:"shares"`
	IsLiked     bool `json:"is_liked"`
	IsFollowing bool `json:"is_following"`
}

// GetFeed returns the merged feed for the requested filter, enriched
// with interaction counts for the current user
func (h *FeedHandler) GetFeed(c echo.Context) error {
	user := currentUser(c)

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	filter := c.QueryParam("filter")
	if filter == "" {
		filter = "all"
	}

	var posts []models.Post
	switch filter {
	case "following":
		if user == nil {
			posts = nil
		} else {
			posts = h.feed.FollowedPosts(user.ID)
		}
	case "my-posts":
		if user == nil {
			posts = nil
		} else {
			posts = h.feed.UserPosts(user.ID)
		}
	default:
		posts = h.feed.PostsByCategory(filter)
	}

	totalItems := len(posts)
	totalPages := int(math.Ceil(float64(totalItems) / float64(limit)))

	start := (page - 1) * limit
	if start > totalItems {
		start = totalItems
	}
	end := start + limit
	if end > totalItems {
		end = totalItems
	}
	pagePosts := posts[start:end]

	enriched := make([]EnrichedPost, len(pagePosts))
	for i, p := range pagePosts {
		rec := h.feed.Interactions(p.ID)
		e := EnrichedPost{
			Post:     p,
			Likes:    len(rec.Likes),
			Comments: len(rec.Comments),
			Shares:   rec.Shares,
		}
		if user != nil {
			for _, id := range rec.Likes {
				if id == user.ID {
					e.IsLiked = true
					break
				}
			}
			if p.AuthorID != "" {
				e.IsFollowing = h.feed.IsFollowing(user.ID, p.AuthorID)
			}
		}
		enriched[i] = e
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"posts":          enriched,
			"last_refreshed": h.feed.LastRefreshed(),
		},
		"meta": echo.Map{
			"currentPage":     page,
			"totalPages":      totalPages,
			"totalItems":      totalItems,
			"itemsPerPage":    limit,
			"hasNextPage":     page < totalPages,
			"hasPreviousPage": page > 1,
		},
	})
}

// GetTrending returns the top hashtags across the merged feed
func (h *FeedHandler) GetTrending(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"hashtags": h.feed.Trending()},
	})
}

// RefreshFeed updates the feed's "as of" marker
func (h *FeedHandler) RefreshFeed(c echo.Context) error {
	refreshed := h.feed.Refresh()
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"last_refreshed": refreshed},
	})
}
