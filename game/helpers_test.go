package game

// fixedSource replays dice faces in order. Faces are 1-based, as on the die.
type fixedSource struct {
	faces []int
	next  int
}

func newFixedSource(rolls ...DiceRoll) *fixedSource {
	s := &fixedSource{}
	for _, r := range rolls {
		s.faces = append(s.faces, r[:]...)
	}
	return s
}

func (s *fixedSource) IntN(n int) int {
	if s.next >= len(s.faces) {
		panic("fixedSource exhausted")
	}
	f := s.faces[s.next]
	s.next++
	return f - 1
}

// scriptedDecider answers from queues and records what it was asked.
type scriptedDecider struct {
	sums      []int
	continues []bool
	asked     []Decision
}

func (d *scriptedDecider) ChooseSum(dec Decision) (int, error) {
	d.asked = append(d.asked, dec)
	s := d.sums[0]
	d.sums = d.sums[1:]
	return s, nil
}

func (d *scriptedDecider) ContinueRolling(dec Decision) (bool, error) {
	c := d.continues[0]
	d.continues = d.continues[1:]
	return c, nil
}
