package player

import (
	"cantstop/game"
)

// Random picks any sum on the table and keeps rolling until it has rolled MaxRolls
// times in the turn.
type Random struct {
	src      game.RandomSource
	maxRolls int
	table    game.WinTable
}

func NewRandom(src game.RandomSource, maxRolls int, table game.WinTable) *Random {
	if maxRolls < 1 {
		maxRolls = 1
	}
	return &Random{src: src, maxRolls: maxRolls, table: table}
}

func (r *Random) ChooseSum(d game.Decision) (int, error) {
	// Every sum on the table is equally likely.
	return d.ValidSums[r.src.IntN(len(d.ValidSums))], nil
}

func (r *Random) ContinueRolling(d game.Decision) (bool, error) {
	if r.table.Wins(d.Target) {
		return false, nil
	}
	return d.Rolls < r.maxRolls, nil
}
