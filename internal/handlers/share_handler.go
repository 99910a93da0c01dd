package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sambawork38-pro/Cambliss/internal/feed"
)

// ShareHandler handles share-counter HTTP requests. Shares are not
// identity-bound: every call counts, logged-in or not.
type ShareHandler struct {
	feed *feed.Feed
}

// NewShareHandler creates a new ShareHandler
func NewShareHandler(f *feed.Feed) *ShareHandler {
	return &ShareHandler{feed: f}
}

// RegisterShareRoutes registers share-related routes
func (h *ShareHandler) RegisterShareRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/shares", h.SharePost)
}

// SharePost increments a post's share counter
func (h *ShareHandler) SharePost(c echo.Context) error {
	postID := c.Param("post_id")
	shares := h.feed.SharePost(postID)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"post_id": postID, "shares": shares},
	})
}
