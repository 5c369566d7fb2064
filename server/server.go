// Package server exposes the chat-widget variant: a small echo server with
// the embedded chat page, the chat endpoint and read-only diagnostic views
// over the record store.
package server

import (
	"context"
	_ "embed"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	recordsx "github.com/tleroux/orderagent/agent/records"
	sessionx "github.com/tleroux/orderagent/agent/session"
)

//go:embed static/index.html
var indexHTML string

type Config struct {
	Addr            string        `envconfig:"ADDR" split_words:"true" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" split_words:"true" default:"10s"`
}

type Server struct {
	echo      *echo.Echo
	responder sessionx.Responder
	sessions  *sessionx.Manager
	store     *recordsx.Store
	cfg       Config
}

func New(cfg Config, responder sessionx.Responder, store *recordsx.Store) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:      e,
		responder: responder,
		sessions:  sessionx.NewManager(),
		store:     store,
		cfg:       cfg,
	}

	e.GET("/", s.index)
	api := e.Group("/api/v1")
	api.POST("/chat", s.chat)
	api.GET("/customers", s.listCustomers)
	api.GET("/customers/:number/orders", s.customerOrders)

	return s
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.echo.Start(s.cfg.Addr)
	}()
	log.Info().Str("addr", s.cfg.Addr).Msg("chat server listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	}
}

func (s *Server) index(c echo.Context) error {
	return c.HTML(http.StatusOK, indexHTML)
}
