package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Users
	s.echo.POST("/api/users/register", s.handleRegister)
	s.echo.POST("/api/users/login", s.handleLogin)
	s.echo.GET("/api/users", s.handleListUsers)

	// Messages
	s.echo.POST("/api/messages/user/:receiverId", s.handleSendMessage)
	s.echo.GET("/api/messages/conversation/:conversationId", s.handleConversationMessages)
	s.echo.GET("/api/messages/user/:a/:b", s.handleMessagesBetween)

	// Conversations
	s.echo.GET("/api/conversations/of-user/:userId", s.handleUserConversations)
}
