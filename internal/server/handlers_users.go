package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/moodchat/internal/domain"
	apperrors "github.com/pscheid92/moodchat/internal/errors"
)

type nicknameRequest struct {
	Nickname string `json:"nickname"`
}

func (s *Server) handleRegister(c echo.Context) error {
	var req nicknameRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	user, err := s.app.RegisterUser(c.Request().Context(), req.Nickname)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyNickname):
			return apperrors.ValidationError("nickname must not be empty")
		case errors.Is(err, domain.ErrNicknameTaken):
			return apperrors.ConflictError("nickname already taken").WithField("nickname", req.Nickname)
		default:
			return apperrors.InternalError("failed to register user", err)
		}
	}

	if err := c.JSON(http.StatusCreated, user); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleLogin(c echo.Context) error {
	var req nicknameRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	user, err := s.app.Login(c.Request().Context(), req.Nickname)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return apperrors.NotFoundError("user not found").WithField("nickname", req.Nickname)
		}
		return apperrors.InternalError("failed to log in", err)
	}

	if err := c.JSON(http.StatusOK, user); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleListUsers(c echo.Context) error {
	users, err := s.app.ListUsers(c.Request().Context())
	if err != nil {
		return apperrors.InternalError("failed to list users", err)
	}

	if err := c.JSON(http.StatusOK, users); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
