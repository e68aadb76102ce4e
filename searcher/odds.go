package searcher

import (
	"cantstop/game"
	"cantstop/meta"
)

// Odds gives the chance that a single roll offers a sum.
type Odds interface {
	HitChance(sum int) float64
}

// Table holds one chance per sum, indexed by the sum itself.
type Table [meta.MaxSum + 1]float64

func (t Table) HitChance(sum int) float64 {
	if sum < meta.MinSum || sum > meta.MaxSum {
		return 0
	}
	return t[sum]
}

// ExactOdds walks every possible roll once.
func ExactOdds() Table {
	var hits [meta.MaxSum + 1]int
	total := 0

	var roll game.DiceRoll
	var walk func(i int)
	walk = func(i int) {
		if i == len(roll) {
			total++
			countHits(&hits, roll)
			return
		}
		for face := 1; face <= meta.DieFaces; face++ {
			roll[i] = face
			walk(i + 1)
		}
	}
	walk(0)

	return toTable(hits, total)
}

func countHits(hits *[meta.MaxSum + 1]int, roll game.DiceRoll) {
	for _, sum := range game.ValidSums(game.Combinations(roll)) {
		hits[sum]++
	}
}

func toTable(hits [meta.MaxSum + 1]int, total int) Table {
	var t Table
	if total == 0 {
		return t
	}
	for sum := meta.MinSum; sum <= meta.MaxSum; sum++ {
		t[sum] = float64(hits[sum]) / float64(total)
	}
	return t
}
