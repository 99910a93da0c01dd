package router

import (
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/sambawork38-pro/Cambliss/internal/feed"
	"github.com/sambawork38-pro/Cambliss/internal/handlers"
	"github.com/sambawork38-pro/Cambliss/internal/middleware"
	"github.com/sambawork38-pro/Cambliss/internal/news"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, f *feed.Feed, generator *news.Generator, jwtSecret string, log *logrus.Logger) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// All API routes carry the advisory JWT extraction; identity-requiring
	// mutations are declined downstream when no user is present.
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuth(jwtSecret))

	feedHandler := handlers.NewFeedHandler(f)
	feedHandler.RegisterFeedRoutes(api)
	log.Info("Feed routes configured.")

	postHandler := handlers.NewPostHandler(f)
	postHandler.RegisterPostRoutes(api)
	log.Info("Post routes configured.")

	commentHandler := handlers.NewCommentHandler(f)
	commentHandler.RegisterCommentRoutes(api)
	log.Info("Comment routes configured.")

	likeHandler := handlers.NewLikeHandler(f)
	likeHandler.RegisterLikeRoutes(api)
	log.Info("Like routes configured.")

	shareHandler := handlers.NewShareHandler(f)
	shareHandler.RegisterShareRoutes(api)
	log.Info("Share routes configured.")

	followHandler := handlers.NewFollowHandler(f)
	followHandler.RegisterFollowRoutes(api)
	log.Info("Follow routes configured.")

	newsHandler := handlers.NewNewsHandler(generator)
	newsHandler.RegisterNewsRoutes(api)
	log.Info("News routes configured.")

	log.Info("All routes configured.")
}
