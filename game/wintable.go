package game

import "cantstop/meta"

// WinTable maps each two-dice sum to the progress needed to win on it. The zero value
// has no entries and nobody can win with it.
type WinTable struct {
	thresholds map[int]int
}

// StandardWinTable is triangular: the likelier the sum, the longer its column.
func StandardWinTable() WinTable {
	return NewWinTable(map[int]int{
		2: 3, 3: 5, 4: 7, 5: 9, 6: 11, 7: 12,
		8: 11, 9: 9, 10: 7, 11: 5, 12: 3,
	})
}

// NewWinTable copies thresholds so later changes to the map do not leak in.
func NewWinTable(thresholds map[int]int) WinTable {
	t := WinTable{thresholds: make(map[int]int, len(thresholds))}
	for sum, need := range thresholds {
		t.thresholds[sum] = need
	}
	return t
}

// Threshold returns the progress required on sum, and false when sum has no entry.
func (w WinTable) Threshold(sum int) (int, bool) {
	need, ok := w.thresholds[sum]
	return need, ok
}

// Wins reports whether target has reached the threshold of its locked sum.
func (w WinTable) Wins(target Target) bool {
	if !target.Locked() {
		return false
	}
	need, ok := w.Threshold(target.Sum)
	return ok && target.Progress >= need
}

// Sums lists the sums in the table in ascending order.
func (w WinTable) Sums() []int {
	var sums []int
	for s := meta.MinSum; s <= meta.MaxSum; s++ {
		if _, ok := w.thresholds[s]; ok {
			sums = append(sums, s)
		}
	}
	return sums
}
