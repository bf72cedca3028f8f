package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Workflow-Manager-admin/tic-tac-toe-web-game-7731-7806/internal/entity"
)

const sessionCookieName = "game_session"

type uGame interface {
	CurrentGame(ctx context.Context, sessionID string) (*entity.Game, error)
}

// Server upgrades /ws requests and keeps each page in sync with its
// session's game through the hub.
type Server struct {
	logger   *slog.Logger
	uGame    uGame
	hub      *Hub
	upgrader websocket.Upgrader
}

func New(logger *slog.Logger, uGame uGame, hub *Hub) *Server {
	return &Server{
		logger: logger,
		uGame:  uGame,
		hub:    hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the page is served from another port of the same host
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
	}
}

// Start - starts the WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	log := that.logger.With("component", "ws-server")

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.handleWS)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
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

// Handler exposes the /ws endpoint for tests.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.handleWS)
	return mux
}

func (that *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleWS")

	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		http.Error(w, "missing session cookie", http.StatusBadRequest)
		return
	}
	sessionID := cookie.Value

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	client := NewClient(that.hub, conn, sessionID)
	client.Register()

	// push the current snapshot so the page renders without waiting
	// for the first move
	if game, err := that.uGame.CurrentGame(r.Context(), sessionID); err != nil {
		log.Error("failed to load game for initial push", "error", err)
	} else if payload, err := json.Marshal(game); err == nil {
		client.send <- payload
	}

	go client.WritePump()
	go client.ReadPump()
}
