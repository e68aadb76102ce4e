package board

import (
	"context"
	"fmt"

	"cantstop/meta"
)

// Board is where scored positions are shown. Writes append the player to the cell, they
// never replace whoever is already there.
type Board interface {
	RecordScore(ctx context.Context, player string, sum, progress int) error
	Clear(ctx context.Context) error
}

// Error is a failed board operation. Board failures never end a game.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("board %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Cell is a board coordinate in the spreadsheet layout: columns are sums, rows start
// two below the header at progress zero.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Rows and columns covered by a full board: progress 1..12 and sums 2..12.
const (
	FirstRow = 3
	LastRow  = 14
	FirstCol = meta.MinSum
	LastCol  = meta.MaxSum
)

func CellFor(sum, progress int) Cell {
	return Cell{Row: progress + 2, Col: sum}
}

func (c Cell) Sum() int      { return c.Col }
func (c Cell) Progress() int { return c.Row - 2 }
