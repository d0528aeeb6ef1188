package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/moodchat/internal/domain"
	apperrors "github.com/pscheid92/moodchat/internal/errors"
)

type sendMessageRequest struct {
	SenderID int64  `json:"senderId"`
	Content  string `json:"content"`
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.ValidationError("invalid ID format").WithField(name, raw)
	}
	return id, nil
}

func (s *Server) handleSendMessage(c echo.Context) error {
	receiverID, err := pathID(c, "receiverId")
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	msg, err := s.app.SendMessage(c.Request().Context(), req.SenderID, receiverID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyContent):
			return apperrors.ValidationError("message content must not be empty")
		case errors.Is(err, domain.ErrSameUser):
			return apperrors.ValidationError("sender and receiver must be different users")
		case errors.Is(err, domain.ErrUserNotFound):
			return apperrors.ValidationError("sender or receiver does not exist").
				WithField("sender_id", req.SenderID).
				WithField("receiver_id", receiverID)
		default:
			return apperrors.InternalError("failed to send message", err)
		}
	}

	if err := c.JSON(http.StatusCreated, msg); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleConversationMessages(c echo.Context) error {
	conversationID, err := pathID(c, "conversationId")
	if err != nil {
		return err
	}

	messages, err := s.app.ListConversationMessages(c.Request().Context(), conversationID)
	if err != nil {
		return apperrors.InternalError("failed to list messages", err)
	}

	if err := c.JSON(http.StatusOK, messages); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleMessagesBetween(c echo.Context) error {
	userA, err := pathID(c, "a")
	if err != nil {
		return err
	}
	userB, err := pathID(c, "b")
	if err != nil {
		return err
	}

	messages, err := s.app.ListMessagesBetween(c.Request().Context(), userA, userB)
	if err != nil {
		if errors.Is(err, domain.ErrSameUser) {
			return apperrors.ValidationError("users must be different")
		}
		return apperrors.InternalError("failed to list messages", err)
	}

	if err := c.JSON(http.StatusOK, messages); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
