package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints (no auth required)
	s.echo.GET("/health/startup", s.handleStartup)
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/version", s.handleVersion)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := s.echo.Group("/api")

	// Accounts and sessions
	api.POST("/users", s.handleRegister)
	api.GET("/users/:username", s.handleGetUser)
	api.POST("/session", s.handleLogin)
	api.GET("/session", s.handleCurrentUser, s.requireAuth)
	api.DELETE("/session", s.handleLogout, s.requireAuth)

	// Posts
	api.POST("/posts", s.handleCreatePost, s.requireAuth)
	api.GET("/posts", s.handleListPosts)
	api.DELETE("/posts/:id", s.handleDeletePost, s.requireAuth)

	// Comments
	api.POST("/comments", s.handleCreateComment, s.requireAuth)
	api.GET("/comments", s.handleListComments)
	api.GET("/items/:id/comments", s.handleListItemComments)
	api.DELETE("/comments/:id", s.handleDeleteComment, s.requireAuth)

	// Reactions (one per user per item)
	api.POST("/items/:id/reactions", s.handleReact, s.requireAuth)
	api.PUT("/items/:id/reactions", s.handleUpdateReaction, s.requireAuth)
	api.DELETE("/items/:id/reactions", s.handleDeleteReaction, s.requireAuth)
	api.GET("/items/:id/reactions", s.handleListReactions)

	// Follow graph
	api.POST("/follows/:username", s.handleFollow, s.requireAuth)
	api.DELETE("/follows/:username", s.handleUnfollow, s.requireAuth)
	api.GET("/users/:username/followers", s.handleListFollowers)
	api.GET("/users/:username/following", s.handleListFollowing)

	// Scores (read-only; writes happen only through the scoring pipeline)
	api.GET("/scores", s.handleListScores)
	api.GET("/scores/:item", s.handleGetScore)
}
