package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sambawork38-pro/Cambliss/internal/feed"
	"github.com/sambawork38-pro/Cambliss/internal/models"
)

// PostHandler handles HTTP requests related to user-authored posts
type PostHandler struct {
	feed *feed.Feed
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(f *feed.Feed) *PostHandler {
	return &PostHandler{feed: f}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:id", h.GetPost)
	g.GET("/users/:id/posts", h.GetUserPosts)
}

// CreatePost creates a new user-authored post
func (h *PostHandler) CreatePost(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	post, ok := h.feed.CreatePost(user, req)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": post})
}

// GetPost retrieves a single post from the merged feed
func (h *PostHandler) GetPost(c echo.Context) error {
	post, ok := h.feed.Post(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": post})
}

// GetUserPosts retrieves the user-authored posts of a given author
func (h *PostHandler) GetUserPosts(c echo.Context) error {
	posts := h.feed.UserPosts(c.Param("id"))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"posts": posts},
	})
}
