package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sambawork38-pro/Cambliss/internal/feed"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	feed *feed.Feed
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(f *feed.Feed) *FollowHandler {
	return &FollowHandler{feed: f}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.FollowUser)
	g.DELETE("/users/:id/follow", h.UnfollowUser)
	g.GET("/users/:id/follow/status", h.GetFollowStatus)
}

// FollowUser follows a user
func (h *FollowHandler) FollowUser(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetID := c.Param("id")
	if targetID == user.ID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
	}

	if !h.feed.FollowUser(user, targetID) {
		return echo.NewHTTPError(http.StatusBadRequest, "Follow declined")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": true}})
}

// UnfollowUser unfollows a user
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	h.feed.UnfollowUser(user, c.Param("id"))

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": false}})
}

// GetFollowStatus reports whether the authenticated user follows the target
func (h *FollowHandler) GetFollowStatus(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetID := c.Param("id")
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"following": h.feed.IsFollowing(user.ID, targetID)},
	})
}
