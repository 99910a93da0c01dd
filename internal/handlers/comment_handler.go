package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sambawork38-pro/Cambliss/internal/feed"
	"github.com/sambawork38-pro/Cambliss/internal/models"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	feed *feed.Feed
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(f *feed.Feed) *CommentHandler {
	return &CommentHandler{feed: f}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreateComment)
	g.GET("/posts/:post_id/comments", h.GetCommentsByPostID)
}

// CreateComment creates a new top-level comment on a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("post_id")

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, ok := h.feed.AddComment(user, postID, req.Content)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Comment content must not be blank")
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": comment})
}

// GetCommentsByPostID retrieves all comments for a specific post
func (h *CommentHandler) GetCommentsByPostID(c echo.Context) error {
	rec := h.feed.Interactions(c.Param("post_id"))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"comments": rec.Comments},
	})
}
