package board

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// Postgres keeps one game's board in PostgreSQL, with the same layout as SQLite.
// The caller is responsible for calling Close.
type Postgres struct {
	conn   *pgx.Conn
	gameID uuid.UUID
}

func NewPostgres(ctx context.Context, connStr string, gameID uuid.UUID) (*Postgres, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	var username, database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("unable to query database: %w", err)
	}
	log.Info().Msgf("connected to %s as %s", database, username)

	stmts, err := readMigrations("postgres")
	if err != nil {
		conn.Close(ctx)
		return nil, err
	}
	for _, stmt := range stmts {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			conn.Close(ctx)
			return nil, fmt.Errorf("failed to execute migration: %w", err)
		}
	}

	return &Postgres{conn: conn, gameID: gameID}, nil
}

func (b *Postgres) Close(ctx context.Context) error {
	return b.conn.Close(ctx)
}

func (b *Postgres) RecordScore(ctx context.Context, player string, sum, progress int) error {
	c := CellFor(sum, progress)
	q := `
	INSERT INTO board_scores (game_id, cell_row, cell_col, name, recorded_at)
	VALUES ($1, $2, $3, $4, $5);
	`
	_, err := b.conn.Exec(ctx, q, b.gameID, c.Row, c.Col, player, time.Now())
	if err != nil {
		return &Error{Op: "record score", Err: err}
	}
	return nil
}

func (b *Postgres) Clear(ctx context.Context) error {
	if _, err := b.conn.Exec(ctx, `DELETE FROM board_scores WHERE game_id = $1;`, b.gameID); err != nil {
		return &Error{Op: "clear", Err: err}
	}
	return nil
}

func (b *Postgres) Grid(ctx context.Context) (Grid, error) {
	rows, err := b.conn.Query(ctx, `SELECT cell_row, cell_col, name FROM board_scores WHERE game_id = $1 ORDER BY id;`, b.gameID)
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
