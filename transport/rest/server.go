package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Workflow-Manager-admin/tic-tac-toe-web-game-7731-7806/internal/entity"
)

type uGame interface {
	CurrentGame(ctx context.Context, sessionID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, sessionID string, cell int) (*entity.Game, error)
	ResetGame(ctx context.Context, sessionID string) (*entity.Game, error)
}

// broadcaster pushes a fresh snapshot to the session's open pages after
// every mutation.
type broadcaster interface {
	BroadcastGame(sessionID string, game *entity.Game)
}

// Server serves the game page and the JSON API.
type Server struct {
	logger *slog.Logger
	router chi.Router
}

func New(logger *slog.Logger, uGame uGame, events broadcaster, socketPort string) *Server {
	h := &handlers{
		logger:     logger,
		uGame:      uGame,
		events:     events,
		page:       loadPageTemplate(),
		socketPort: socketPort,
	}

	r := chi.NewRouter()
	r.Get("/", h.index)
	r.Get("/ping", h.ping)
	r.Route("/api/game", func(r chi.Router) {
		r.Get("/", h.getGame)
		r.Post("/turn", h.makeTurn)
		r.Post("/reset", h.resetGame)
	})

	return &Server{
		logger: logger,
		router: r,
	}
}

// Handler exposes the router for tests.
func (that *Server) Handler() http.Handler {
	return that.router
}

// Start - starts the HTTP server.
func (that *Server) Start(ctx context.Context, port string) error {
	log := that.logger.With("component", "http-server")

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
