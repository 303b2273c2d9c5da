package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"connect4/game"
)

func TestRandomSelectAction(t *testing.T) {
	t.Run("only open columns are chosen", func(t *testing.T) {
		s, err := game.NewState([]game.Token{"X", "O"}, 2, 3)
		require.NoError(t, err)
		require.NoError(t, s.Place(2, "X"))
		require.NoError(t, s.Place(2, "O"))
		view := s.View()

		r := NewRandom("X", 7)
		for i := 0; i < 25; i++ {
			act := r.SelectAction(view)

			require.Equal(t, game.Place, act.Kind)
			require.Contains(t, []int{1, 3}, act.Column, "Full column 2 must never be chosen")
		}
	})

	t.Run("same seed gives the same run of choices", func(t *testing.T) {
		s, err := game.NewState([]game.Token{"X", "O"}, 6, 7)
		require.NoError(t, err)
		view := s.View()

		a := NewRandom("X", 42)
		b := NewRandom("X", 42)
		for i := 0; i < 25; i++ {
			require.Equal(t, a.SelectAction(view), b.SelectAction(view))
		}
	})

	t.Run("token is reported unchanged", func(t *testing.T) {
		require.Equal(t, game.Token("O"), NewRandom("O", 1).Token())
	})
}
