package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRulesPermittedKinds(t *testing.T) {
	t.Run("standard rules permit placing only", func(t *testing.T) {
		r := NewStandardRules()

		require.True(t, r.Permits(Place))
		require.False(t, r.Permits(Remove))
		require.Equal(t, []ActionKind{Place}, r.Kinds())
	})

	t.Run("pop-out rules add removal", func(t *testing.T) {
		r := NewPopOutRules()

		require.True(t, r.Permits(Place))
		require.True(t, r.Permits(Remove))
		require.Equal(t, []ActionKind{Place, Remove}, r.Kinds())
	})
}
