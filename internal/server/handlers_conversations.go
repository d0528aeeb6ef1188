package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	apperrors "github.com/pscheid92/moodchat/internal/errors"
)

func (s *Server) handleUserConversations(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	summaries, err := s.app.ListUserConversations(c.Request().Context(), userID)
	if err != nil {
		return apperrors.InternalError("failed to list conversations", err)
	}

	if err := c.JSON(http.StatusOK, summaries); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
