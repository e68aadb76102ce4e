package player

import (
	"math"

	"cantstop/game"
	"cantstop/searcher"
)

// Odds plays by the numbers. It locks the sum with the fewest expected rolls to win and
// keeps rolling while one more roll is worth more than what it risks.
type Odds struct {
	odds  searcher.Odds
	table game.WinTable
}

func NewOdds(odds searcher.Odds, table game.WinTable) *Odds {
	return &Odds{odds: odds, table: table}
}

func (o *Odds) ChooseSum(d game.Decision) (int, error) {
	best, bestCost := d.ValidSums[0], math.Inf(1)
	for _, sum := range d.ValidSums {
		need, ok := o.table.Threshold(sum)
		p := o.odds.HitChance(sum)
		if !ok || p == 0 {
			continue
		}
		if cost := float64(need) / p; cost < bestCost {
			best, bestCost = sum, cost
		}
	}
	return best, nil
}

// ContinueRolling rolls again when p*(g+1) > g, where g is the progress at stake.
func (o *Odds) ContinueRolling(d game.Decision) (bool, error) {
	if o.table.Wins(d.Target) {
		return false, nil
	}
	p := o.odds.HitChance(d.Target.Sum)
	g := float64(d.Gained())
	return p*(g+1) > g, nil
}
