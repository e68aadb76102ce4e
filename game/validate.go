package game

// Verdict is the validator's answer for one round.
type Verdict int

const (
	// Accepted: the round scores on Validation.Sum.
	Accepted Verdict = iota
	// Retry: the player has no lock yet and proposed a sum that is not on the table.
	Retry
	// Bust: the player's locked sum cannot be made from this roll.
	Bust
)

func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "accepted"
	case Retry:
		return "retry"
	case Bust:
		return "bust"
	default:
		return "unknown"
	}
}

type Validation struct {
	Verdict Verdict
	Sum     int // set when Accepted
}

// Validate decides a round. proposed is the player's pick and only matters while the
// target is unlocked; 0 means no pick. Before a lock an unreachable pick is a Retry,
// after a lock an unreachable sum is a Bust.
func Validate(target Target, combos []Combination, proposed int) Validation {
	if target.Locked() {
		if hasSum(combos, target.Sum) {
			return Validation{Verdict: Accepted, Sum: target.Sum}
		}
		return Validation{Verdict: Bust}
	}
	if proposed != 0 && hasSum(combos, proposed) {
		return Validation{Verdict: Accepted, Sum: proposed}
	}
	return Validation{Verdict: Retry}
}
