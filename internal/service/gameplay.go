package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Workflow-Manager-admin/tic-tac-toe-web-game-7731-7806/internal/entity"
)

// GamePlayService orchestrates a single turn: load the session's game,
// apply the move for the mark whose turn it is, persist the new state.
// Both local players share one browser, so the server always plays the
// current turn's mark.
type GamePlayService interface {
	MakeTurn(ctx context.Context, sessionID string, cell int) (*entity.Game, error)
}

type gamePlayService struct {
	logger *slog.Logger

	gameService GameService
}

func NewGamePlayService(logger *slog.Logger, gameService GameService) GamePlayService {
	return &gamePlayService{
		logger:      logger,
		gameService: gameService,
	}
}

func (that *gamePlayService) MakeTurn(ctx context.Context, sessionID string, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "sessionID", sessionID)

	game, err := that.gameService.GetOrCreateGame(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	// Policy violations leave the game untouched; the snapshot is returned
	// alongside the sentinel so the transport can re-render unchanged state.
	if err = game.MakeTurn(game.Turn, cell); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "status", game.Status, "winner", game.Winner)
	}

	return game, nil
}
