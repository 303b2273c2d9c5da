package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"connect4/game"
)

func TestCLISelectAction(t *testing.T) {
	view := game.StateView{
		Rows:    2,
		Columns: 3,
		Board: []game.Token{
			"X", game.Empty, game.Empty,
			"O", "O", game.Empty,
		},
	}

	t.Run("accepts a column on the board", func(t *testing.T) {
		var out strings.Builder
		c := NewCLI("X", strings.NewReader("2\n"), &out)

		act := c.SelectAction(view)

		require.Equal(t, game.Action{Kind: game.Place, Column: 2}, act)
		require.Contains(t, out.String(), "X to play.")
	})

	t.Run("re-prompts until the input parses and is on the board", func(t *testing.T) {
		var out strings.Builder
		c := NewCLI("X", strings.NewReader("left\n0\n9\n3\n"), &out)

		act := c.SelectAction(view)

		require.Equal(t, 3, act.Column)
		require.Contains(t, out.String(), "Input could not be converted to an integer.")
		require.Contains(t, out.String(), "Selected column lies outside the board. Columns are indexed from 1.")
	})

	t.Run("surrounding whitespace is tolerated", func(t *testing.T) {
		var out strings.Builder
		c := NewCLI("X", strings.NewReader("  1  \n"), &out)

		require.Equal(t, 1, c.SelectAction(view).Column)
	})

	t.Run("renders the board before prompting", func(t *testing.T) {
		var out strings.Builder
		c := NewCLI("X", strings.NewReader("1\n"), &out)

		c.SelectAction(view)

		require.Contains(t, out.String(), "[X, , ]\n[O,O, ]\n")
	})
}

func TestCLINotifyOutcome(t *testing.T) {
	o := game.NewOutcome([]game.Token{"X", "O"})
	o.FinalizeWin("O")
	var out strings.Builder
	c := NewCLI("X", strings.NewReader(""), &out)

	c.NotifyOutcome(o)

	require.Equal(t, "X: LOSE\n", out.String())
}

func TestRenderBoard(t *testing.T) {
	t.Run("multi-rune tokens render as their first rune", func(t *testing.T) {
		var out strings.Builder
		view := game.StateView{
			Rows:    1,
			Columns: 2,
			Board:   []game.Token{"Red", "Blue"},
		}

		RenderBoard(&out, view)

		require.Equal(t, "[R,B]\n", out.String())
	})

	t.Run("empty cells render as spaces", func(t *testing.T) {
		var out strings.Builder
		view := game.StateView{
			Rows:    1,
			Columns: 3,
			Board:   []game.Token{game.Empty, "X", game.Empty},
		}

		RenderBoard(&out, view)

		require.Equal(t, "[ ,X, ]\n", out.String())
	})
}
