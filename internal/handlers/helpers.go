package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/sambawork38-pro/Cambliss/internal/models"
)

// currentUser resolves the acting user from the JWT claims the auth
// middleware stored, or nil when the request is logged-out.
func currentUser(c echo.Context) *models.User {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok || claims.UserID == "" {
		return nil
	}
	return &models.User{
		ID:       claims.UserID,
		FullName: claims.FullName,
		Avatar:   claims.Avatar,
	}
}
