// Package tictactoe holds the pure rules of the game: board representation,
// mark placement and win/draw detection. Nothing here touches storage or I/O.
package tictactoe

import (
	"errors"
	"fmt"

	"github.com/Workflow-Manager-admin/tic-tac-toe-web-game-7731-7806/internal/apperror"
)

const (
	MarkX = "X"
	MarkO = "O"

	EmptyCell = ""
)

var ErrInvalidCell = errors.New("invalid cell index")

// WinCombos lists the 8 winning lines in scan order: rows, then columns,
// then diagonals. ComputeWinner relies on this order for its tie-break.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is the 3x3 grid in row-major order, each cell holding
// MarkX, MarkO or EmptyCell.
type Board [9]string

// WinnerResult identifies the winning mark and the line that completed it.
type WinnerResult struct {
	Player string
	Combo  [3]int
}

// NewBoard returns the all-empty starting board.
func NewBoard() Board {
	return Board{}
}

// PlaceMark returns a copy of the board with the cell set to the given mark.
// The input board is never mutated. An out-of-range cell is a programming
// error and fails loudly; an occupied cell is rejected with ErrCellOccupied.
func PlaceMark(board Board, cell int, mark string) (Board, error) {
	if cell < 0 || cell >= len(board) {
		return board, fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if board[cell] != EmptyCell {
		return board, apperror.ErrCellOccupied
	}

	board[cell] = mark

	return board, nil
}

// ComputeWinner scans the winning lines in the WinCombos order and returns
// the first completed one, or nil when no line is complete. On a malformed
// board where several lines are complete at once, the scan order decides.
func ComputeWinner(board Board) *WinnerResult {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return &WinnerResult{Player: a, Combo: combo}
		}
	}

	return nil
}

// IsDraw reports whether the board is full without a winner. It expects the
// result of ComputeWinner for the same board, so a won board is never
// misclassified as a draw.
func IsDraw(board Board, winner *WinnerResult) bool {
	if winner != nil {
		return false
	}

	for _, cell := range board {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// ToggleMark returns the mark that moves after the given one.
func ToggleMark(mark string) string {
	if mark == MarkX {
		return MarkO
	}
	return MarkX
}
