package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sambawork38-pro/Cambliss/internal/feed"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	feed *feed.Feed
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(f *feed.Feed) *LikeHandler {
	return &LikeHandler{feed: f}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/likes", h.LikePost)
	g.DELETE("/posts/:post_id/likes", h.UnlikePost)
	g.GET("/posts/:post_id/likes/count", h.GetLikesCountForPost)
	g.GET("/posts/:post_id/likes/status", h.GetUserLikeStatusForPost)
	g.POST("/comments/:comment_id/likes", h.LikeComment)
}

// LikePost handles liking a post
func (h *LikeHandler) LikePost(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("post_id")

	// Interaction records may exist independently of feed membership, so
	// the post is not required to be present in the merged feed.
	h.feed.LikePost(user, postID)

	rec := h.feed.Interactions(postID)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"post_id": postID, "likes": len(rec.Likes), "is_liked": true},
	})
}

// UnlikePost handles unliking a post
func (h *LikeHandler) UnlikePost(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("post_id")

	h.feed.UnlikePost(user, postID)

	rec := h.feed.Interactions(postID)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"post_id": postID, "likes": len(rec.Likes), "is_liked": false},
	})
}

// GetLikesCountForPost retrieves the total number of likes for a specific post
func (h *LikeHandler) GetLikesCountForPost(c echo.Context) error {
	postID := c.Param("post_id")
	rec := h.feed.Interactions(postID)
	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "likes_count": len(rec.Likes)})
}

// GetUserLikeStatusForPost checks if the authenticated user has liked a specific post
func (h *LikeHandler) GetUserLikeStatusForPost(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("post_id")

	rec := h.feed.Interactions(postID)
	hasLiked := false
	for _, id := range rec.Likes {
		if id == user.ID {
			hasLiked = true
			break
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "user_id": user.ID, "has_liked": hasLiked})
}

// LikeComment handles liking a top-level comment
func (h *LikeHandler) LikeComment(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	h.feed.LikeComment(user, c.Param("comment_id"))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
