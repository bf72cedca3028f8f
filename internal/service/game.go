package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Workflow-Manager-admin/tic-tac-toe-web-game-7731-7806/internal/entity"
	"github.com/Workflow-Manager-admin/tic-tac-toe-web-game-7731-7806/internal/repository"
)

// GameService owns the lifecycle of the session's game: one game per
// browser session, created lazily and replaced wholesale on reset.
type GameService interface {
	GetOrCreateGame(ctx context.Context, sessionID string) (*entity.Game, error)
	UpdateGame(ctx context.Context, game *entity.Game) error
	ResetGame(ctx context.Context, sessionID string) (*entity.Game, error)
	DeleteGame(ctx context.Context, sessionID string) error
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameService struct {
	gameRepo gameRepo
}

func NewGameService(gameRepo gameRepo) GameService {
	return &gameService{
		gameRepo: gameRepo,
	}
}

func (that *gameService) GetOrCreateGame(ctx context.Context, sessionID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, sessionID)
	if errors.Is(err, repository.ErrGameNotFound) {
		game = entity.NewGame(sessionID)
		if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to create game: %w", err)
		}

		return game, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return game, nil
}

func (that *gameService) UpdateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

// ResetGame writes a fresh game over the session key. The single SET makes
// the reset atomic from the caller's perspective.
func (that *gameService) ResetGame(ctx context.Context, sessionID string) (*entity.Game, error) {
	game := entity.NewGame(sessionID)

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to reset game: %w", err)
	}

	return game, nil
}

func (that *gameService) DeleteGame(ctx context.Context, sessionID string) error {
	if err := that.gameRepo.DeleteByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}
