package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Get returns a single trade by ID.
func (j *SQLite) Get(ctx context.Context, tradeID string) (Trade, error) {
	row := j.db.QueryRowContext(ctx, `
		SELECT `+tradeColumns+`
		FROM trades
		WHERE trade_id = ?`, tradeID)

	rec, err := scanTrade(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Trade{}, fmt.Errorf("trade %q: %w", tradeID, ErrNotFound)
		}
		return Trade{}, err
	}
	return rec, nil
}

// List returns every trade, newest entry first.
func (j *SQLite) List(ctx context.Context) ([]Trade, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT `+tradeColumns+`
		FROM trades
		ORDER BY entry_time DESC, trade_id DESC`)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

// ListBetween returns trades whose entry_time is within [start, end).
func (j *SQLite) ListBetween(ctx context.Context, start, end time.Time) ([]Trade, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT `+tradeColumns+`
		FROM trades
		WHERE entry_time >= ? AND entry_time < ?
		ORDER BY entry_time ASC, trade_id ASC`, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func collect(rows *sql.Rows) ([]Trade, error) {
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		rec, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
