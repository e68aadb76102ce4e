package game

import "fmt"

// Target is a player's locked sum and how far they have climbed it. A zero Sum means
// the player has not locked a sum yet.
type Target struct {
	Sum      int `json:"sum"`
	Progress int `json:"progress"`
}

func (t Target) Locked() bool {
	return t.Sum != 0
}

func (t Target) String() string {
	if !t.Locked() {
		return "none"
	}
	return fmt.Sprintf("%d@%d", t.Sum, t.Progress)
}
