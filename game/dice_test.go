package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoller(t *testing.T) {
	t.Run("rolling faces in range", func(t *testing.T) {
		src, err := NewRandomSource(42)
		require.NoError(t, err)
		roller := NewRoller(src)

		seen := map[int]bool{}
		for i := 0; i < 1000; i++ {
			for _, face := range roller.Roll() {
				require.GreaterOrEqual(t, face, 1)
				require.LessOrEqual(t, face, 6)
				seen[face] = true
			}
		}
		require.Len(t, seen, 6, "Every face should come up over many rolls")
	})

	t.Run("a fixed seed replays the same rolls", func(t *testing.T) {
		a, _ := NewRandomSource(7)
		b, _ := NewRandomSource(7)
		ra, rb := NewRoller(a), NewRoller(b)
		for i := 0; i < 20; i++ {
			require.Equal(t, ra.Roll(), rb.Roll())
		}
	})

	t.Run("a zero seed draws from crypto", func(t *testing.T) {
		src, err := NewRandomSource(0)
		require.NoError(t, err)
		require.NotNil(t, src)
	})
}
