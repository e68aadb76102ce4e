package board

import (
	"context"
	"strings"
	"sync"
)

// Grid is a copy of a board's contents, keyed by cell.
type Grid map[Cell][]string

// Memory keeps the board in process. It is safe for a spectator to read while a game writes.
type Memory struct {
	mu    sync.RWMutex
	cells map[Cell][]string
}

func NewMemory() *Memory {
	return &Memory{cells: make(map[Cell][]string)}
}

func (m *Memory) RecordScore(ctx context.Context, player string, sum, progress int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := CellFor(sum, progress)
	m.cells[c] = append(m.cells[c], player)
	return nil
}

func (m *Memory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cells = make(map[Cell][]string)
	return nil
}

// Value is the comma-joined cell content, as a spreadsheet would show it.
func (m *Memory) Value(c Cell) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return strings.Join(m.cells[c], ", ")
}

func (m *Memory) Grid() Grid {
	m.mu.RLock()
	defer m.mu.RUnlock()

	grid := make(Grid, len(m.cells))
	for c, names := range m.cells {
		cp := make([]string, len(names))
		copy(cp, names)
		grid[c] = cp
	}
	return grid
}
