package game

import "golang.org/x/exp/slices"

// Combination is one pairing of two dice from a roll. First and Second are face values.
type Combination struct {
	First  int
	Second int
	Sum    int
}

// pairs lists every unordered pair of dice positions, in the order combinations are reported.
var pairs = [...][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

// Combinations returns the six pairings of a roll. Pairs are taken by position, so equal
// faces still yield separate combinations.
func Combinations(roll DiceRoll) []Combination {
	combos := make([]Combination, 0, len(pairs))
	for _, p := range pairs {
		a, b := roll[p[0]], roll[p[1]]
		combos = append(combos, Combination{First: a, Second: b, Sum: a + b})
	}
	return combos
}

// ValidSums returns the distinct sums among combos in ascending order.
func ValidSums(combos []Combination) []int {
	sums := make([]int, 0, len(combos))
	for _, c := range combos {
		sums = append(sums, c.Sum)
	}
	slices.Sort(sums)
	return slices.Compact(sums)
}

func hasSum(combos []Combination, sum int) bool {
	return slices.ContainsFunc(combos, func(c Combination) bool { return c.Sum == sum })
}
