package usecase

import (
	"context"
	"fmt"

	"github.com/Workflow-Manager-admin/tic-tac-toe-web-game-7731-7806/internal/entity"
)

// GameUseCase is the facade both transports consume.
type GameUseCase interface {
	CurrentGame(ctx context.Context, sessionID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, sessionID string, cell int) (*entity.Game, error)
	ResetGame(ctx context.Context, sessionID string) (*entity.Game, error)
}

type gameService interface {
	GetOrCreateGame(ctx context.Context, sessionID string) (*entity.Game, error)
	ResetGame(ctx context.Context, sessionID string) (*entity.Game, error)
}

type gamePlayService interface {
	MakeTurn(ctx context.Context, sessionID string, cell int) (*entity.Game, error)
}

type gameUseCase struct {
	gameService     gameService
	gamePlayService gamePlayService
}

func NewGameUseCase(gameService gameService, gamePlayService gamePlayService) GameUseCase {
	return &gameUseCase{
		gameService:     gameService,
		gamePlayService: gamePlayService,
	}
}

func (that *gameUseCase) CurrentGame(ctx context.Context, sessionID string) (*entity.Game, error) {
	game, err := that.gameService.GetOrCreateGame(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) MakeTurn(ctx context.Context, sessionID string, cell int) (*entity.Game, error) {
	game, err := that.gamePlayService.MakeTurn(ctx, sessionID, cell)
	if err != nil {
		return game, err
	}

	return game, nil
}

func (that *gameUseCase) ResetGame(ctx context.Context, sessionID string) (*entity.Game, error) {
	game, err := that.gameService.ResetGame(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to reset game: %w", err)
	}

	return game, nil
}
