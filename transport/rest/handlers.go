package rest

import (
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Workflow-Manager-admin/tic-tac-toe-web-game-7731-7806/internal/apperror"
	"github.com/Workflow-Manager-admin/tic-tac-toe-web-game-7731-7806/internal/entity"
	"github.com/Workflow-Manager-admin/tic-tac-toe-web-game-7731-7806/internal/tictactoe"
)

const sessionCookieName = "game_session"

type handlers struct {
	logger     *slog.Logger
	uGame      uGame
	events     broadcaster
	page       *template.Template
	socketPort string
}

type turnRequest struct {
	Cell int `json:"cell"`
}

type gameResponse struct {
	Game  *entity.Game `json:"game,omitempty"`
	Error string       `json:"error,omitempty"`
}

func (that *handlers) ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *handlers) index(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "index")

	that.ensureSessionCookie(w, r)

	data := struct {
		SocketPort string
	}{SocketPort: that.socketPort}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := that.page.Execute(w, data); err != nil {
		log.Error("failed to render page", "error", err)
	}
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "getGame")

	sessionID := that.ensureSessionCookie(w, r)

	game, err := that.uGame.CurrentGame(r.Context(), sessionID)
	if err != nil {
		log.Error("failed to get game", "error", err)
		respondJSON(w, http.StatusInternalServerError, gameResponse{Error: "internal error"})
		return
	}

	respondJSON(w, http.StatusOK, gameResponse{Game: game})
}

func (that *handlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "makeTurn")

	sessionID := that.ensureSessionCookie(w, r)

	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, gameResponse{Error: "malformed request body"})
		return
	}

	game, err := that.uGame.MakeTurn(r.Context(), sessionID, req.Cell)

	switch {
	case err == nil:
		that.events.BroadcastGame(sessionID, game)
		respondJSON(w, http.StatusOK, gameResponse{Game: game})
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrNotYourTurn):
		// policy violation: state unchanged, report and re-render
		respondJSON(w, http.StatusConflict, gameResponse{Game: game, Error: err.Error()})
	case errors.Is(err, tictactoe.ErrInvalidCell):
		respondJSON(w, http.StatusBadRequest, gameResponse{Error: err.Error()})
	default:
		log.Error("failed to make turn", "error", err)
		respondJSON(w, http.StatusInternalServerError, gameResponse{Error: "internal error"})
	}
}

func (that *handlers) resetGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "resetGame")

	sessionID := that.ensureSessionCookie(w, r)

	game, err := that.uGame.ResetGame(r.Context(), sessionID)
	if err != nil {
		log.Error("failed to reset game", "error", err)
		respondJSON(w, http.StatusInternalServerError, gameResponse{Error: "internal error"})
		return
	}

	that.events.BroadcastGame(sessionID, game)
	respondJSON(w, http.StatusOK, gameResponse{Game: game})
}

// ensureSessionCookie returns the session ID from the request cookie,
// minting a new one when the browser shows up for the first time.
func (that *handlers) ensureSessionCookie(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	sessionID := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:    sessionCookieName,
		Value:   sessionID,
		Expires: time.Now().Add(24 * time.Hour),
		Path:    "/",
	})

	return sessionID
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
