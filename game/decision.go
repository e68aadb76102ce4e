package game

// Decision is what a DecisionProvider sees when it is asked to act.
type Decision struct {
	Player    string
	Roll      DiceRoll
	ValidSums []int  // distinct sums on the table this round, ascending
	Target    Target // current target; Target.Locked() tells whether a sum is locked
	Start     Target // target at the start of the turn, i.e. what a bust falls back to
	Rolls     int    // rolls made so far this turn, including the current one
}

// Gained is the progress at stake this turn.
func (d Decision) Gained() int {
	return d.Target.Progress - d.Start.Progress
}

// DecisionProvider answers the two questions a turn asks. ChooseSum is only called while
// the player has no lock and must return one of d.ValidSums; the turn asks again if it
// does not. Errors are not game outcomes: they abort the turn.
type DecisionProvider interface {
	ChooseSum(d Decision) (int, error)
	ContinueRolling(d Decision) (bool, error)
}
