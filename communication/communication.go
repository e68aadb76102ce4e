// Package communication carries a running game to spectators over HTTP.
package communication

import (
	"cantstop/board"
	"cantstop/engine"

	"golang.org/x/exp/slices"
)

// Cell is one occupied board cell on the wire.
type Cell struct {
	Row      int      `json:"row"`
	Col      int      `json:"col"`
	Sum      int      `json:"sum"`
	Progress int      `json:"progress"`
	Names    []string `json:"names"`
}

// Feed is what a spectator can see of a game.
type Feed interface {
	Board() []Cell
	Turns() []engine.TurnResult
}

// Cells flattens a grid, ordered by row then column.
func Cells(grid board.Grid) []Cell {
	cells := make([]Cell, 0, len(grid))
	for c, names := range grid {
		cells = append(cells, Cell{
			Row:      c.Row,
			Col:      c.Col,
			Sum:      c.Sum(),
			Progress: c.Progress(),
			Names:    slices.Clone(names),
		})
	}
	slices.SortFunc(cells, func(a, b Cell) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return cells
}

// Grid rebuilds a grid from cells received over the wire.
func Grid(cells []Cell) board.Grid {
	grid := make(board.Grid, len(cells))
	for _, c := range cells {
		grid[board.Cell{Row: c.Row, Col: c.Col}] = slices.Clone(c.Names)
	}
	return grid
}
