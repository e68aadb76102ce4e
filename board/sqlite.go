package board

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// SQLite keeps one game's board in a SQLite file. Several games can share a file; each
// board only sees rows of its own game ID.
type SQLite struct {
	db     *sql.DB
	gameID uuid.UUID
}

func NewSQLite(ctx context.Context, path string, gameID uuid.UUID) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	stmts, err := readMigrations("sqlite")
	if err != nil {
		db.Close()
		return nil, err
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration: %v", err)
		}
	}

	return &SQLite{db: db, gameID: gameID}, nil
}

func (b *SQLite) Close() error {
	return b.db.Close()
}

func (b *SQLite) GameID() uuid.UUID {
	return b.gameID
}

func (b *SQLite) RecordScore(ctx context.Context, player string, sum, progress int) error {
	c := CellFor(sum, progress)
	q := `
	INSERT INTO board_scores (game_id, cell_row, cell_col, name, recorded_at)
	VALUES (?, ?, ?, ?, ?);
	`
	_, err := b.db.ExecContext(ctx, q, b.gameID.String(), c.Row, c.Col, player, time.Now().UnixMilli())
	if err != nil {
		return &Error{Op: "record score", Err: err}
	}
	return nil
}

func (b *SQLite) Clear(ctx context.Context) error {
	q := `DELETE FROM board_scores WHERE game_id = ?;`
	if _, err := b.db.ExecContext(ctx, q, b.gameID.String()); err != nil {
		return &Error{Op: "clear", Err: err}
	}
	return nil
}

// Grid lists each cell's names in the order they were recorded.
func (b *SQLite) Grid(ctx context.Context) (Grid, error) {
	q := `SELECT cell_row, cell_col, name FROM board_scores WHERE game_id = ? ORDER BY id;`
	rows, err := b.db.QueryContext(ctx, q, b.gameID.String())
	if err != nil {
		return nil, &Error{Op: "read", Err: err}
	}
	defer rows.Close()

	grid := Grid{}
	for rows.Next() {
		var c Cell
		var name string
		if err := rows.Scan(&c.Row, &c.Col, &name); err != nil {
			return nil, &Error{Op: "read", Err: err}
		}
		grid[c] = append(grid[c], name)
	}
	if err := rows.Err(); err != nil {
		return nil, &Error{Op: "read", Err: err}
	}
	return grid, nil
}
