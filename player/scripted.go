package player

import (
	"errors"

	"cantstop/game"
)

// ErrScriptExhausted is returned when a Scripted provider runs out of answers.
var ErrScriptExhausted = errors.New("script exhausted")

// Scripted answers from fixed lists, for replaying a known game.
type Scripted struct {
	Sums      []int
	Continues []bool
	Asked     []game.Decision
}

func (s *Scripted) ChooseSum(d game.Decision) (int, error) {
	s.Asked = append(s.Asked, d)
	if len(s.Sums) == 0 {
		return 0, ErrScriptExhausted
	}
	sum := s.Sums[0]
	s.Sums = s.Sums[1:]
	return sum, nil
}

func (s *Scripted) ContinueRolling(d game.Decision) (bool, error) {
	if len(s.Continues) == 0 {
		return false, ErrScriptExhausted
	}
	again := s.Continues[0]
	s.Continues = s.Continues[1:]
	return again, nil
}
