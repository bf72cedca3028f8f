package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Workflow-Manager-admin/tic-tac-toe-web-game-7731-7806/internal/config"
	"github.com/Workflow-Manager-admin/tic-tac-toe-web-game-7731-7806/internal/repository"
	"github.com/Workflow-Manager-admin/tic-tac-toe-web-game-7731-7806/internal/repository/storage"
	"github.com/Workflow-Manager-admin/tic-tac-toe-web-game-7731-7806/internal/service"
	"github.com/Workflow-Manager-admin/tic-tac-toe-web-game-7731-7806/internal/usecase"
	"github.com/Workflow-Manager-admin/tic-tac-toe-web-game-7731-7806/transport/rest"
	"github.com/Workflow-Manager-admin/tic-tac-toe-web-game-7731-7806/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	gameRepo := repository.NewGameRepository(redisStorage)
	gameService := service.NewGameService(gameRepo)
	gamePlayService := service.NewGamePlayService(logger, gameService)
	gameUseCase := usecase.NewGameUseCase(gameService, gamePlayService)

	hub := websocket.NewHub(logger)
	go hub.Run(ctx)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		restServer := rest.New(logger, gameUseCase, hub, conf.SocketPort)
		if httpErr := restServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run WebSocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameUseCase, hub)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
