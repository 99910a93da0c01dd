package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sambawork38-pro/Cambliss/internal/news"
)

// NewsHandler exposes the article generator's search and regeneration
type NewsHandler struct {
	generator *news.Generator
}

// NewNewsHandler creates a new NewsHandler
func NewNewsHandler(g *news.Generator) *NewsHandler {
	return &NewsHandler{generator: g}
}

// RegisterNewsRoutes registers news-related routes
func (h *NewsHandler) RegisterNewsRoutes(g *echo.Group) {
	g.GET("/news/search", h.SearchNews)
	g.POST("/news/refresh", h.RefreshNews)
}

// SearchNews searches generated articles by free-text query
func (h *NewsHandler) SearchNews(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing query parameter q")
	}

	results := h.generator.Search(query)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"articles": results, "total": len(results)},
	})
}

// RefreshNews regenerates the article set; the feed re-merges on its
// next read via the source version bump
func (h *NewsHandler) RefreshNews(c echo.Context) error {
	h.generator.Refresh()
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
