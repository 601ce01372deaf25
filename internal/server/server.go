// Package server exposes conversations over HTTP.
package server

import (
	"context"
	"crypto/subtle"
	"errors"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/rcliao/gamebot/internal/bot"
	"github.com/rcliao/gamebot/internal/model"
)

// SessionHeader carries the conversation id on requests and responses.
const SessionHeader = "X-Session-ID"

// APIKeyHeader carries the client's API key.
const APIKeyHeader = "X-API-Key"

// DefaultIdleTimeout is how long an untouched conversation is kept.
const DefaultIdleTimeout = 30 * time.Minute

// BotFactory creates the bot backing a new conversation.
type BotFactory func() (*bot.Bot, error)

// Options configures a Server. Conversations idle for longer than
// IdleTimeout are dropped when the next one starts; zero means
// DefaultIdleTimeout and a negative value keeps them until deleted.
type Options struct {
	APIKey      string
	NewBot      BotFactory
	Logger      *zap.Logger
	IdleTimeout time.Duration
}

// conversation serializes turns on one bot. lastSeen is guarded by Server.mu.
type conversation struct {
	mu       sync.Mutex
	bot      *bot.Bot
	lastSeen time.Time
}

// Server is the HTTP front-end. Each session id owns one bot.
type Server struct {
	echo   *echo.Echo
	apiKey string
	newBot BotFactory
	logger *zap.Logger
	idle   time.Duration
	now    func() time.Time

	mu       sync.Mutex
	sessions map[string]*conversation
	entropy  *rand.Rand
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the reply to POST /chat.
type ChatResponse struct {
	Response  string       `json:"response"`
	Intent    model.Intent `json:"intent"`
	SessionID string       `json:"session_id"`
}

// SessionResponse describes a conversation.
type SessionResponse struct {
	SessionID string       `json:"session_id"`
	TurnCount int          `json:"turn_count"`
	Summary   string       `json:"summary"`
	Turns     []model.Turn `json:"turns"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// New builds a server with its routes registered.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.IdleTimeout == 0 {
		opts.IdleTimeout = DefaultIdleTimeout
	}
	s := &Server{
		echo:     echo.New(),
		apiKey:   opts.APIKey,
		newBot:   opts.NewBot,
		logger:   logger,
		idle:     opts.IdleTimeout,
		now:      time.Now,
		sessions: map[string]*conversation{},
		entropy:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.routes()
	return s
}

func (s *Server) routes() {
	e := s.echo
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(s.logRequests)

	e.GET("/", s.handleRoot)
	e.GET("/health", s.handleHealth)

	keyAuth := middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup: "header:" + APIKeyHeader,
		Validator: func(key string, c echo.Context) (bool, error) {
			return s.apiKey != "" && subtle.ConstantTimeCompare([]byte(key), []byte(s.apiKey)) == 1, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			s.logger.Warn("unauthorized request", zap.String("path", c.Path()), zap.String("remote", c.RealIP()))
			return c.JSON(http.StatusUnauthorized, errorResponse{Detail: "Invalid API Key"})
		},
	})
	e.POST("/chat", s.handleChat, keyAuth)
	e.GET("/sessions/:id", s.handleGetSession, keyAuth)
	e.DELETE("/sessions/:id", s.handleDeleteSession, keyAuth)
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		errCh <- s.echo.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	return s.echo.Shutdown(shutdownCtx)
}

func (s *Server) logRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}
		s.logger.Info("request",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Int("status", c.Response().Status),
			zap.Duration("latency", time.Since(start)),
		)
		return nil
	}
}

func (s *Server) handleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to the Game Chatbot API! POST /chat with {\"message\": \"...\"} to talk.",
	})
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleChat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Detail: "message is required"})
	}

	id := c.Request().Header.Get(SessionHeader)
	var conv *conversation
	if id == "" {
		var err error
		id, conv, err = s.startSession()
		if err != nil {
			s.logger.Error("create conversation", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, errorResponse{Detail: "could not start conversation"})
		}
	} else if conv = s.session(id); conv == nil {
		return c.JSON(http.StatusNotFound, errorResponse{Detail: "unknown session"})
	}

	conv.mu.Lock()
	reply := conv.bot.Respond(req.Message)
	conv.mu.Unlock()

	c.Response().Header().Set(SessionHeader, id)
	return c.JSON(http.StatusOK, ChatResponse{
		Response:  reply.Text,
		Intent:    reply.Intent,
		SessionID: id,
	})
}

func (s *Server) handleGetSession(c echo.Context) error {
	id := c.Param("id")
	conv := s.session(id)
	if conv == nil {
		return c.JSON(http.StatusNotFound, errorResponse{Detail: "unknown session"})
	}

	conv.mu.Lock()
	resp := SessionResponse{
		SessionID: id,
		TurnCount: conv.bot.TurnCount(),
		Summary:   conv.bot.Summary(),
		Turns:     conv.bot.Turns(),
	}
	conv.mu.Unlock()

	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleDeleteSession(c echo.Context) error {
	id := c.Param("id")
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Detail: "unknown session"})
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) startSession() (string, *conversation, error) {
	b, err := s.newBot()
	if err != nil {
		return "", nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.evictIdle(now)
	conv := &conversation{bot: b, lastSeen: now}
	id := ulid.MustNew(ulid.Timestamp(now), s.entropy).String()
	s.sessions[id] = conv
	s.logger.Info("conversation started", zap.String("session", id))
	return id, conv, nil
}

// evictIdle drops conversations not touched within the idle timeout.
// Callers hold s.mu.
func (s *Server) evictIdle(now time.Time) {
	if s.idle < 0 {
		return
	}
	for id, conv := range s.sessions {
		if now.Sub(conv.lastSeen) > s.idle {
			delete(s.sessions, id)
			s.logger.Info("conversation expired", zap.String("session", id))
		}
	}
}

func (s *Server) session(id string) *conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv := s.sessions[id]
	if conv != nil {
		conv.lastSeen = s.now()
	}
	return conv
}

// SessionCount returns the number of live conversations.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
