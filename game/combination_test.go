package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestCombinations(t *testing.T) {
	t.Run("pairing dice by position in a fixed order", func(t *testing.T) {
		got := Combinations(DiceRoll{3, 4, 5, 6})

		require.Equal(t, []Combination{
			{First: 3, Second: 4, Sum: 7},
			{First: 3, Second: 5, Sum: 8},
			{First: 3, Second: 6, Sum: 9},
			{First: 4, Second: 5, Sum: 9},
			{First: 4, Second: 6, Sum: 10},
			{First: 5, Second: 6, Sum: 11},
		}, got, "Combinations should follow index pairs (0,1),(0,2),(0,3),(1,2),(1,3),(2,3)")
	})

	t.Run("keeping duplicate pairings", func(t *testing.T) {
		got := Combinations(DiceRoll{1, 1, 1, 1})

		require.Len(t, got, 6, "Equal faces should still give six combinations")
		for _, c := range got {
			require.Equal(t, 2, c.Sum)
		}
	})

	t.Run("every roll gives six sums in range, independent of dice order", func(t *testing.T) {
		for a := 1; a <= 6; a++ {
			for b := 1; b <= 6; b++ {
				for c := 1; c <= 6; c++ {
					for d := 1; d <= 6; d++ {
						roll := DiceRoll{a, b, c, d}
						combos := Combinations(roll)
						require.Len(t, combos, 6)

						sums := sumsOf(combos)
						for _, s := range sums {
							require.GreaterOrEqual(t, s, 2)
							require.LessOrEqual(t, s, 12)
						}

						permuted := sumsOf(Combinations(DiceRoll{d, c, a, b}))
						slices.Sort(sums)
						slices.Sort(permuted)
						require.Equal(t, sums, permuted, "Dice order should not change the multiset of sums for %v", roll)
					}
				}
			}
		}
	})

	t.Run("calling twice gives identical output", func(t *testing.T) {
		roll := DiceRoll{6, 2, 5, 2}
		require.Equal(t, Combinations(roll), Combinations(roll))
	})
}

func TestValidSums(t *testing.T) {
	got := ValidSums(Combinations(DiceRoll{3, 4, 5, 6}))
	require.Equal(t, []int{7, 8, 9, 10, 11}, got, "Sums should be distinct and ascending")

	got = ValidSums(Combinations(DiceRoll{1, 1, 1, 1}))
	require.Equal(t, []int{2}, got)
}

func sumsOf(combos []Combination) []int {
	sums := make([]int, len(combos))
	for i, c := range combos {
		sums[i] = c.Sum
	}
	return sums
}
