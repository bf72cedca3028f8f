package entity

import (
	"errors"
	"fmt"

	"github.com/Workflow-Manager-admin/tic-tac-toe-web-game-7731-7806/internal/apperror"
	"github.com/Workflow-Manager-admin/tic-tac-toe-web-game-7731-7806/internal/tictactoe"
)

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDraw    = "draw"
)

var ErrInvalidBoard = errors.New("invalid board")

// Game is the full state of one match: the board, whose mark moves next,
// the outcome classification and, once won, the winning line.
type Game struct {
	ID       string          `json:"id"`
	Board    tictactoe.Board `json:"board"`
	Turn     string          `json:"player_turn"`
	Status   string          `json:"status"`
	Winner   string          `json:"winner,omitempty"`
	WinCombo []int           `json:"win_combo,omitempty"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  tictactoe.NewBoard(),
		Turn:   tictactoe.MarkX,
		Status: StatusOngoing,
	}
}

// MakeTurn places the mark on the cell and re-evaluates the outcome in the
// same call. Policy violations (ended game, wrong mark, occupied cell) leave
// the game untouched and return a sentinel; an out-of-range cell fails loudly.
func (that *Game) MakeTurn(mark string, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if mark != that.Turn {
		return apperror.ErrNotYourTurn
	}

	board, err := tictactoe.PlaceMark(that.Board, cell, mark)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Board = board
	that.updateState()

	return nil
}

// Reset returns the game to its initial state: empty board, X to move,
// no winner, no combo.
func (that *Game) Reset() {
	that.Board = tictactoe.NewBoard()
	that.Turn = tictactoe.MarkX
	that.Status = StatusOngoing
	that.Winner = ""
	that.WinCombo = nil
}

// updateState derives status, winner and winning combo from the board.
func (that *Game) updateState() {
	winner := tictactoe.ComputeWinner(that.Board)

	switch {
	case winner != nil:
		that.Status = StatusWon
		that.Winner = winner.Player
		that.WinCombo = winner.Combo[:]
		that.Turn = ""
	case tictactoe.IsDraw(that.Board, winner):
		that.Status = StatusDraw
		that.Turn = ""
	default:
		that.Turn = tictactoe.ToggleMark(that.Turn)
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// Validate checks the alternation invariant: X moves first, so the board
// holds either as many X as O or exactly one more X, and the tracked turn
// matches the counts while the game is ongoing.
func (that *Game) Validate() error {
	var xCount, oCount int
	for _, cell := range that.Board {
		switch cell {
		case tictactoe.MarkX:
			xCount++
		case tictactoe.MarkO:
			oCount++
		}
	}

	if xCount != oCount && xCount != oCount+1 {
		return fmt.Errorf("%w: %d X against %d O", ErrInvalidBoard, xCount, oCount)
	}

	if !that.IsOngoing() {
		return nil
	}

	expected := tictactoe.MarkX
	if xCount > oCount {
		expected = tictactoe.MarkO
	}

	if that.Turn != expected {
		return fmt.Errorf("%w: turn %q does not match mark counts", ErrInvalidBoard, that.Turn)
	}

	return nil
}
