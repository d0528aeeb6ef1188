package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/moodchat/internal/config"
	"github.com/pscheid92/moodchat/internal/domain"
	apperrors "github.com/pscheid92/moodchat/internal/errors"
)

// --- Mock implementations ---

type mockAppService struct {
	registerUserFn             func(ctx context.Context, nickname string) (*domain.User, error)
	loginFn                    func(ctx context.Context, nickname string) (*domain.User, error)
	listUsersFn                func(ctx context.Context) ([]domain.User, error)
	sendMessageFn              func(ctx context.Context, senderID, receiverID int64, content string) (*domain.Message, error)
	listUserConversationsFn    func(ctx context.Context, userID int64) ([]domain.ConversationSummary, error)
	listConversationMessagesFn func(ctx context.Context, conversationID int64) ([]domain.Message, error)
	listMessagesBetweenFn      func(ctx context.Context, userA, userB int64) ([]domain.Message, error)
}

func (m *mockAppService) RegisterUser(ctx context.Context, nickname string) (*domain.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(ctx, nickname)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockAppService) Login(ctx context.Context, nickname string) (*domain.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, nickname)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockAppService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockAppService) SendMessage(ctx context.Context, senderID, receiverID int64, content string) (*domain.Message, error) {
	if m.sendMessageFn != nil {
		return m.sendMessageFn(ctx, senderID, receiverID, content)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockAppService) ListUserConversations(ctx context.Context, userID int64) ([]domain.ConversationSummary, error) {
	if m.listUserConversationsFn != nil {
		return m.listUserConversationsFn(ctx, userID)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockAppService) ListConversationMessages(ctx context.Context, conversationID int64) ([]domain.Message, error) {
	if m.listConversationMessagesFn != nil {
		return m.listConversationMessagesFn(ctx, conversationID)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockAppService) ListMessagesBetween(ctx context.Context, userA, userB int64) ([]domain.Message, error) {
	if m.listMessagesBetweenFn != nil {
		return m.listMessagesBetweenFn(ctx, userA, userB)
	}
	return nil, fmt.Errorf("not implemented")
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error {
	return m.err
}

// --- Test helpers ---

func newTestServer(t *testing.T, app domain.AppService, opts ...func(*Server)) *Server {
	t.Helper()

	e := echo.New()
	// Install error middleware for tests to match production behavior
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:      e,
		config:    &config.Config{Port: "8080"},
		app:       app,
		db:        &mockPinger{},
		startTime: time.Now(),
	}

	for _, opt := range opts {
		opt(srv)
	}

	srv.registerRoutes()

	return srv
}

func withPinger(db postgresHealthChecker) func(*Server) {
	return func(s *Server) {
		s.db = db
	}
}

func doJSON(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}
