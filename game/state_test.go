package game

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

/*
State engine coverage:
- construction: dimension and token validation
- place: gravity, full column, out of range, unknown token, no mutation
  on failure
- remove (pop-out): topmost only, empty column
- outcome: vertical/horizontal wins, a diagonal win per slope, win over
  draw on a filling move, draw on a full board, unfinished otherwise
- view: translation to tokens, isolation from the authoritative state
*/

func newTestState(t *testing.T, rows, cols int) *State {
	t.Helper()
	s, err := NewState([]Token{"X", "O"}, rows, cols)
	require.NoError(t, err)
	return s
}

func TestNewState(t *testing.T) {
	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		_, err := NewState([]Token{"X", "O"}, 0, 7)
		require.Error(t, err, "Zero rows should fail construction")

		_, err = NewState([]Token{"X", "O"}, 6, -1)
		require.Error(t, err, "Negative columns should fail construction")
	})

	t.Run("rejects duplicate tokens", func(t *testing.T) {
		_, err := NewState([]Token{"X", "X"}, 6, 7)

		require.Error(t, err)
		require.Contains(t, err.Error(), "appears twice")
	})

	t.Run("rejects empty tokens", func(t *testing.T) {
		_, err := NewState([]Token{"X", Empty}, 6, 7)

		require.Error(t, err)
	})

	t.Run("rejects an empty token list", func(t *testing.T) {
		_, err := NewState(nil, 6, 7)

		require.Error(t, err)
	})

	t.Run("accepts boards too small to win", func(t *testing.T) {
		s, err := NewState([]Token{"X", "O"}, 1, 1)

		require.NoError(t, err)
		status, _ := s.CheckOutcome()
		require.Equal(t, Unfinished, status)
	})
}

func TestStatePlace(t *testing.T) {
	t.Run("tokens fall to the lowest empty cell", func(t *testing.T) {
		s := newTestState(t, 6, 7)

		require.NoError(t, s.Place(4, "X"))
		require.NoError(t, s.Place(4, "O"))

		v := s.View()
		require.Equal(t, Token("X"), v.At(5, 3), "First token should rest on the bottom row")
		require.Equal(t, Token("O"), v.At(4, 3), "Second token should stack on top")
	})

	t.Run("placing into a full column fails and changes nothing", func(t *testing.T) {
		s := newTestState(t, 6, 7)
		for i := 0; i < 6; i++ {
			token := Token("X")
			if i%2 == 1 {
				token = "O"
			}
			require.NoError(t, s.Place(3, token))
		}
		before := s.View()

		err := s.Place(3, "X")

		var actionErr *ActionError
		require.ErrorAs(t, err, &actionErr, "Full column should be a recoverable action error")
		require.Equal(t, Place, actionErr.Action.Kind)
		require.Equal(t, 3, actionErr.Action.Column)
		require.Contains(t, actionErr.Reason, "full")
		require.Equal(t, before, s.View(), "Failed placement should not mutate the position")
	})

	t.Run("out of range columns fail with an action error", func(t *testing.T) {
		s := newTestState(t, 6, 7)

		for _, column := range []int{0, -2, 8} {
			err := s.Place(column, "X")

			var actionErr *ActionError
			require.ErrorAs(t, err, &actionErr, "Column %d should be rejected", column)
		}
	})

	t.Run("unknown tokens are a caller bug, not an action error", func(t *testing.T) {
		s := newTestState(t, 6, 7)

		err := s.Place(1, "Z")

		require.Error(t, err)
		var actionErr *ActionError
		require.False(t, errors.As(err, &actionErr))
	})
}

func TestStateRemove(t *testing.T) {
	t.Run("removes the topmost token only", func(t *testing.T) {
		s := newTestState(t, 6, 7)
		require.NoError(t, s.Place(2, "X"))
		require.NoError(t, s.Place(2, "O"))

		require.NoError(t, s.Remove(2, "X"))

		v := s.View()
		require.Equal(t, Empty, v.At(4, 1), "Topmost cell should be vacant again")
		require.Equal(t, Token("X"), v.At(5, 1), "Token underneath should remain")
	})

	t.Run("removing from an empty column fails", func(t *testing.T) {
		s := newTestState(t, 6, 7)

		err := s.Remove(5, "X")

		var actionErr *ActionError
		require.ErrorAs(t, err, &actionErr)
		require.Equal(t, Remove, actionErr.Action.Kind)
		require.Contains(t, actionErr.Reason, "empty")
	})
}

func TestStateApply(t *testing.T) {
	t.Run("dispatches place and remove", func(t *testing.T) {
		s := newTestState(t, 6, 7)

		require.NoError(t, s.Apply(Action{Kind: Place, Column: 1}, "X"))
		require.NoError(t, s.Apply(Action{Kind: Remove, Column: 1}, "O"))

		require.Equal(t, Empty, s.View().At(5, 0))
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		s := newTestState(t, 6, 7)

		err := s.Apply(Action{Kind: ActionKind(42), Column: 1}, "X")

		require.Error(t, err)
		var actionErr *ActionError
		require.False(t, errors.As(err, &actionErr), "Unknown kind should not be state-dependent")
	})
}

func TestStateCheckOutcome(t *testing.T) {
	t.Run("vertical run of four wins", func(t *testing.T) {
		s := newTestState(t, 6, 7)
		// X stacks column 4, O plays elsewhere.
		oColumns := []int{1, 2, 3}
		for i := 0; i < 4; i++ {
			require.NoError(t, s.Place(4, "X"))
			if i < 3 {
				status, _ := s.CheckOutcome()
				require.Equal(t, Unfinished, status, "Three in a column should not win yet")
				require.NoError(t, s.Place(oColumns[i], "O"))
			}
		}

		status, winner := s.CheckOutcome()

		require.Equal(t, Won, status)
		require.Equal(t, Token("X"), winner)
	})

	t.Run("horizontal run of four wins", func(t *testing.T) {
		s := newTestState(t, 6, 7)
		for _, column := range []int{1, 2, 3} {
			require.NoError(t, s.Place(column, "X"))
			require.NoError(t, s.Place(column, "O"))
		}
		require.NoError(t, s.Place(4, "X"))

		status, winner := s.CheckOutcome()

		require.Equal(t, Won, status)
		require.Equal(t, Token("X"), winner)
	})

	t.Run("down-left diagonal run wins", func(t *testing.T) {
		// Staircase with O underneath: X ends up on the diagonal
		// (5,0), (4,1), (3,2), (2,3) in zero-based coordinates.
		s := newTestState(t, 6, 7)
		for column := 1; column <= 4; column++ {
			for i := 0; i < column-1; i++ {
				require.NoError(t, s.Place(column, "O"))
			}
			require.NoError(t, s.Place(column, "X"))
		}

		status, winner := s.CheckOutcome()

		require.Equal(t, Won, status)
		require.Equal(t, Token("X"), winner)
	})

	t.Run("down-right diagonal run wins", func(t *testing.T) {
		// Mirrored staircase: X descends across (2,0), (3,1), (4,2),
		// (5,3) instead.
		s := newTestState(t, 6, 7)
		for column := 1; column <= 4; column++ {
			for i := 0; i < 4-column; i++ {
				require.NoError(t, s.Place(column, "O"))
			}
			require.NoError(t, s.Place(column, "X"))
		}

		status, winner := s.CheckOutcome()

		require.Equal(t, Won, status)
		require.Equal(t, Token("X"), winner)
	})

	t.Run("full board without a run is a draw", func(t *testing.T) {
		s := newTestState(t, 6, 7)
		// Stripes of height two with a column-dependent phase: runs never
		// exceed two in any direction.
		for col := 0; col < 7; col++ {
			for row := 5; row >= 0; row-- {
				token := Token("X")
				if (row/2+col)%2 == 1 {
					token = "O"
				}
				require.NoError(t, s.Place(col+1, token))
			}
		}

		status, winner := s.CheckOutcome()

		require.Equal(t, Drawn, status)
		require.Equal(t, Empty, winner, "A draw has no winning token")
	})

	t.Run("a full board with a run is a win, not a draw", func(t *testing.T) {
		// The final placement fills the board and completes the run at
		// the same time.
		s := newTestState(t, 1, 4)
		for column := 1; column <= 4; column++ {
			require.NoError(t, s.Place(column, "X"))
		}

		status, winner := s.CheckOutcome()

		require.Equal(t, Won, status)
		require.Equal(t, Token("X"), winner, "Winner should be reported even though no cell is vacant")
	})

	t.Run("draw on a board too small for any line", func(t *testing.T) {
		s := newTestState(t, 1, 1)
		require.NoError(t, s.Place(1, "X"))

		status, _ := s.CheckOutcome()

		require.Equal(t, Drawn, status)
	})

	t.Run("in progress board is unfinished", func(t *testing.T) {
		s := newTestState(t, 6, 7)
		require.NoError(t, s.Place(1, "X"))

		status, winner := s.CheckOutcome()

		require.Equal(t, Unfinished, status)
		require.Equal(t, Empty, winner)
	})
}

func TestStateView(t *testing.T) {
	t.Run("translates internal ids back to tokens", func(t *testing.T) {
		s := newTestState(t, 6, 7)
		require.NoError(t, s.Place(1, "X"))
		require.NoError(t, s.Place(2, "O"))

		v := s.View()

		require.Equal(t, 6, v.Rows)
		require.Equal(t, 7, v.Columns)
		require.Len(t, v.Board, 42)
		require.Equal(t, Token("X"), v.At(5, 0))
		require.Equal(t, Token("O"), v.At(5, 1))
		require.Equal(t, Empty, v.At(0, 0))
	})

	t.Run("mutating a view leaves the state untouched", func(t *testing.T) {
		s := newTestState(t, 6, 7)

		v := s.View()
		v.Board[0] = "O"

		require.Equal(t, Empty, s.View().At(0, 0), "Views must be copies, not windows")
	})

	t.Run("open columns follow the top row", func(t *testing.T) {
		s := newTestState(t, 2, 3)
		require.NoError(t, s.Place(2, "X"))
		require.NoError(t, s.Place(2, "O"))

		open := s.View().OpenColumns()

		require.Equal(t, []int{1, 3}, open, "Full column 2 should drop out")
	})
}

func TestActionStrings(t *testing.T) {
	require.Equal(t, "PLACE, 4", Action{Kind: Place, Column: 4}.String())
	require.Equal(t, "REMOVE, 2", Action{Kind: Remove, Column: 2}.String())

	err := &ActionError{
		Action: Action{Kind: Place, Column: 3},
		Reason: "column 3 is full",
	}
	require.Equal(t, "cannot apply PLACE, 3: column 3 is full", err.Error())
	require.Equal(t, fmt.Sprintf("%v", err), err.Error())
}
