package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Workflow-Manager-admin/tic-tac-toe-web-game-7731-7806/internal/apperror"
	"github.com/Workflow-Manager-admin/tic-tac-toe-web-game-7731-7806/internal/tictactoe"
)

func TestNewGame(t *testing.T) {
	// When: creating a new game
	game := NewGame("123")

	// Then: the game state should correspond to the expected initial state
	expectedGame := &Game{
		ID:     "123",
		Board:  tictactoe.Board{},
		Turn:   tictactoe.MarkX,
		Status: StatusOngoing,
	}

	require.Equal(t, expectedGame, game)
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful turn flips the mark", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123")

		// When: Player X makes a valid turn
		err := game.MakeTurn(tictactoe.MarkX, 0)
		require.NoError(t, err)

		// Then: the board holds the mark and O moves next
		expectedGame := &Game{
			ID:     "123",
			Board:  tictactoe.Board{tictactoe.MarkX, "", "", "", "", "", "", "", ""},
			Turn:   tictactoe.MarkO,
			Status: StatusOngoing,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Turn alternates strictly across placements", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123")

		// When: marks are placed in alternation
		require.NoError(t, game.MakeTurn(tictactoe.MarkX, 0))
		assert.Equal(t, tictactoe.MarkO, game.Turn)

		require.NoError(t, game.MakeTurn(tictactoe.MarkO, 4))
		assert.Equal(t, tictactoe.MarkX, game.Turn)

		require.NoError(t, game.MakeTurn(tictactoe.MarkX, 8))
		assert.Equal(t, tictactoe.MarkO, game.Turn)

		// Then: the alternation invariant holds
		require.NoError(t, game.Validate())
	})

	t.Run("Error on cell already occupied leaves the board unchanged", func(t *testing.T) {
		// Given: a game where cell 0 is occupied by Player X
		game := NewGame("123")
		require.NoError(t, game.MakeTurn(tictactoe.MarkX, 0))

		// When: Player O tries to move to the same cell
		err := game.MakeTurn(tictactoe.MarkO, 0)

		// Then: an ErrCellOccupied error should be returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// And: the game state should remain unchanged
		expectedGame := &Game{
			ID:     "123",
			Board:  tictactoe.Board{tictactoe.MarkX, "", "", "", "", "", "", "", ""},
			Turn:   tictactoe.MarkO,
			Status: StatusOngoing,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game where it's Player X's turn
		game := NewGame("123")

		// When: Player O tries to make a move
		err := game.MakeTurn(tictactoe.MarkO, 1)

		// Then: an ErrNotYourTurn error should be returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, tictactoe.Board{}, game.Board)
		assert.Equal(t, tictactoe.MarkX, game.Turn)
	})

	t.Run("Error on invalid cell index", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123")

		// When: out-of-range cells are passed
		assert.ErrorIs(t, game.MakeTurn(tictactoe.MarkX, 20), tictactoe.ErrInvalidCell)
		assert.ErrorIs(t, game.MakeTurn(tictactoe.MarkX, -1), tictactoe.ErrInvalidCell)
	})

	t.Run("Winning move records status, winner and combo", func(t *testing.T) {
		// Given: a game where X is about to complete the top row
		game := NewGame("123")
		require.NoError(t, game.MakeTurn(tictactoe.MarkX, 0))
		require.NoError(t, game.MakeTurn(tictactoe.MarkO, 3))
		require.NoError(t, game.MakeTurn(tictactoe.MarkX, 1))
		require.NoError(t, game.MakeTurn(tictactoe.MarkO, 4))

		// When: X completes the line
		require.NoError(t, game.MakeTurn(tictactoe.MarkX, 2))

		// Then: the game is won by X with combo 0,1,2 and the turn is cleared
		assert.Equal(t, StatusWon, game.Status)
		assert.Equal(t, tictactoe.MarkX, game.Winner)
		assert.Equal(t, []int{0, 1, 2}, game.WinCombo)
		assert.Empty(t, game.Turn)
		assert.True(t, game.IsFinished())
	})

	t.Run("Filling the board without a line ends in a draw", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123")

		// When: both players fill the board without completing a line
		moves := []struct {
			mark string
			cell int
		}{
			{tictactoe.MarkX, 0}, {tictactoe.MarkO, 1},
			{tictactoe.MarkX, 2}, {tictactoe.MarkO, 4},
			{tictactoe.MarkX, 3}, {tictactoe.MarkO, 5},
			{tictactoe.MarkX, 7}, {tictactoe.MarkO, 6},
			{tictactoe.MarkX, 8},
		}
		for _, move := range moves {
			require.NoError(t, game.MakeTurn(move.mark, move.cell))
		}

		// Then: the game is a draw with no winner and no combo
		assert.Equal(t, StatusDraw, game.Status)
		assert.Empty(t, game.Winner)
		assert.Empty(t, game.WinCombo)
		assert.Empty(t, game.Turn)
		assert.True(t, game.IsFinished())
	})

	t.Run("Error on turn after the game ended", func(t *testing.T) {
		// Given: a game won by X
		game := NewGame("123")
		require.NoError(t, game.MakeTurn(tictactoe.MarkX, 0))
		require.NoError(t, game.MakeTurn(tictactoe.MarkO, 3))
		require.NoError(t, game.MakeTurn(tictactoe.MarkX, 1))
		require.NoError(t, game.MakeTurn(tictactoe.MarkO, 4))
		require.NoError(t, game.MakeTurn(tictactoe.MarkX, 2))
		require.True(t, game.IsFinished())
		frozen := *game

		// When: any further move is attempted
		err := game.MakeTurn(tictactoe.MarkO, 5)

		// Then: the move is rejected and the state stays frozen
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		require.Equal(t, &frozen, game)
	})
}

func TestGame_Reset(t *testing.T) {
	// Given: a game won by X
	game := NewGame("123")
	require.NoError(t, game.MakeTurn(tictactoe.MarkX, 0))
	require.NoError(t, game.MakeTurn(tictactoe.MarkO, 3))
	require.NoError(t, game.MakeTurn(tictactoe.MarkX, 1))
	require.NoError(t, game.MakeTurn(tictactoe.MarkO, 4))
	require.NoError(t, game.MakeTurn(tictactoe.MarkX, 2))
	require.Equal(t, StatusWon, game.Status)

	// When: the game is reset
	game.Reset()

	// Then: board, turn, status, winner and combo return to initial values
	expectedGame := &Game{
		ID:     "123",
		Board:  tictactoe.Board{},
		Turn:   tictactoe.MarkX,
		Status: StatusOngoing,
	}

	require.Equal(t, expectedGame, game)
}

func TestGame_Validate(t *testing.T) {
	t.Run("Fresh game is valid", func(t *testing.T) {
		game := NewGame("123")
		assert.NoError(t, game.Validate())
	})

	t.Run("Board with unbalanced marks is invalid", func(t *testing.T) {
		// Given: a board with two more X than O
		game := NewGame("123")
		game.Board = tictactoe.Board{
			tictactoe.MarkX, tictactoe.MarkX, "",
			"", "", "",
			"", "", "",
		}

		// Then: the alternation invariant is violated
		assert.ErrorIs(t, game.Validate(), ErrInvalidBoard)
	})

	t.Run("Turn inconsistent with mark counts is invalid", func(t *testing.T) {
		// Given: X already moved but the turn still says X
		game := NewGame("123")
		game.Board[0] = tictactoe.MarkX

		// Then: the tracked turn contradicts the board
		assert.ErrorIs(t, game.Validate(), ErrInvalidBoard)
	})

	t.Run("Finished game skips the turn check", func(t *testing.T) {
		// Given: a won game with the turn cleared
		game := NewGame("123")
		require.NoError(t, game.MakeTurn(tictactoe.MarkX, 0))
		require.NoError(t, game.MakeTurn(tictactoe.MarkO, 3))
		require.NoError(t, game.MakeTurn(tictactoe.MarkX, 1))
		require.NoError(t, game.MakeTurn(tictactoe.MarkO, 4))
		require.NoError(t, game.MakeTurn(tictactoe.MarkX, 2))

		// Then: the empty turn on a terminal state is fine
		assert.NoError(t, game.Validate())
	})
}
