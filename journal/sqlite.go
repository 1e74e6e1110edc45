package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rustyeddy/tradejournal/economics"
	"github.com/shopspring/decimal"
)

type SQLite struct {
	db *sql.DB
}

var _ Store = (*SQLite)(nil)

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) Create(ctx context.Context, t Trade) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO trades (`+tradeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.EntryTime.UTC(), t.ExitTime.UTC(), t.Instrument, string(t.OrderType),
		decText(t.EntryPrice), decText(t.ExitPrice), decText(t.PositionSize),
		nullText(t.StopLoss), nullText(t.TakeProfit),
		string(t.Status), decText(t.NetProfit), nullText(t.RMultiple),
		t.Rationale, t.Review, t.Emotions, JoinTags(t.Tags),
		t.CreatedAt.UTC(), t.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert trade %q: %w", t.ID, err)
	}
	return nil
}

func (j *SQLite) Update(ctx context.Context, t Trade) error {
	res, err := j.db.ExecContext(ctx, `
		UPDATE trades SET
			entry_time = ?, exit_time = ?, instrument = ?, order_type = ?,
			entry_price = ?, exit_price = ?, position_size = ?, stop_loss = ?, take_profit = ?,
			status = ?, net_profit = ?, r_multiple = ?,
			rationale = ?, review = ?, emotions = ?, tags = ?, updated_at = ?
		WHERE trade_id = ?`,
		t.EntryTime.UTC(), t.ExitTime.UTC(), t.Instrument, string(t.OrderType),
		decText(t.EntryPrice), decText(t.ExitPrice), decText(t.PositionSize),
		nullText(t.StopLoss), nullText(t.TakeProfit),
		string(t.Status), decText(t.NetProfit), nullText(t.RMultiple),
		t.Rationale, t.Review, t.Emotions, JoinTags(t.Tags), t.UpdatedAt.UTC(),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("update trade %q: %w", t.ID, err)
	}
	return expectOne(res, t.ID)
}

func (j *SQLite) Delete(ctx context.Context, id string) error {
	res, err := j.db.ExecContext(ctx, `DELETE FROM trades WHERE trade_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete trade %q: %w", id, err)
	}
	return expectOne(res, id)
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

func expectOne(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trade %q: %w", id, ErrNotFound)
	}
	return nil
}

func decText(d decimal.Decimal) string {
	return economics.PriceText(d)
}

func nullText(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}
	return economics.PriceText(d.Decimal)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrade(row rowScanner) (Trade, error) {
	var (
		t                       Trade
		orderType, status, tags string
		entry, exit, size, net  string
		stop, takeProfit, rMult sql.NullString
		entryTime, exitTime     time.Time
		createdAt, updatedAt    time.Time
	)

	err := row.Scan(
		&t.ID, &entryTime, &exitTime, &t.Instrument, &orderType,
		&entry, &exit, &size, &stop, &takeProfit,
		&status, &net, &rMult, &t.Rationale, &t.Review, &t.Emotions, &tags,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return Trade{}, err
	}

	t.EntryTime = entryTime.UTC()
	t.ExitTime = exitTime.UTC()
	t.CreatedAt = createdAt.UTC()
	t.UpdatedAt = updatedAt.UTC()
	t.OrderType = economics.OrderType(orderType)
	t.Tags = ParseTags(tags)

	if t.Status, err = economics.ParseClassification(status); err != nil {
		return Trade{}, fmt.Errorf("trade %q: %w", t.ID, err)
	}
	for _, f := range []struct {
		dst *decimal.Decimal
		src string
	}{
		{&t.EntryPrice, entry},
		{&t.ExitPrice, exit},
		{&t.PositionSize, size},
		{&t.NetProfit, net},
	} {
		if *f.dst, err = decimal.NewFromString(f.src); err != nil {
			return Trade{}, fmt.Errorf("trade %q: %w", t.ID, err)
		}
	}
	for _, f := range []struct {
		dst *decimal.NullDecimal
		src sql.NullString
	}{
		{&t.StopLoss, stop},
		{&t.TakeProfit, takeProfit},
		{&t.RMultiple, rMult},
	} {
		if !f.src.Valid {
			continue
		}
		d, err := decimal.NewFromString(f.src.String)
		if err != nil {
			return Trade{}, fmt.Errorf("trade %q: %w", t.ID, err)
		}
		*f.dst = decimal.NewNullDecimal(d)
	}
	return t, nil
}
