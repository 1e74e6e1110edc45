// journal/journal.go
package journal

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rustyeddy/tradejournal/economics"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("trade not found")

// Trade is one journaled trade. Status, NetProfit and RMultiple are the
// authoritative figures and are only written by Stamp.
type Trade struct {
	ID           string
	EntryTime    time.Time
	ExitTime     time.Time
	Instrument   string
	OrderType    economics.OrderType
	EntryPrice   decimal.Decimal
	ExitPrice    decimal.Decimal
	PositionSize decimal.Decimal
	StopLoss     decimal.NullDecimal
	TakeProfit   decimal.NullDecimal

	Status    economics.Classification
	NetProfit decimal.Decimal
	RMultiple decimal.NullDecimal

	Rationale string
	Review    string
	Emotions  string
	Tags      []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t Trade) Input() economics.TradeInput {
	return economics.TradeInput{
		Instrument:        t.Instrument,
		OrderType:         t.OrderType,
		EntryPrice:        t.EntryPrice,
		ExitPrice:         t.ExitPrice,
		PositionSize:      t.PositionSize,
		InitialStopLoss:   t.StopLoss,
		InitialTakeProfit: t.TakeProfit,
	}
}

// Economics recomputes the trade's figures from its prices.
func (t Trade) Economics() (economics.TradeEconomics, error) {
	return economics.Compute(t.Input())
}

// Stamp validates the trade and stores the authoritative economics on it.
func (t *Trade) Stamp() error {
	if t.EntryTime.IsZero() {
		return &economics.ValidationError{Field: "entry_time", Reason: "is required"}
	}
	if t.ExitTime.IsZero() {
		return &economics.ValidationError{Field: "exit_time", Reason: "is required"}
	}
	if t.ExitTime.Before(t.EntryTime) {
		return &economics.ValidationError{Field: "exit_time", Reason: "is before entry_time"}
	}

	econ, err := t.Economics()
	if err != nil {
		return err
	}
	t.Status = econ.Classification
	t.NetProfit = econ.NetProfit
	t.RMultiple = econ.RMultiple
	return nil
}

func (t Trade) clone() Trade {
	if t.Tags != nil {
		t.Tags = append([]string(nil), t.Tags...)
	}
	return t
}

// ParseTags splits the comma separated tag field, dropping blanks.
func ParseTags(s string) []string {
	var out []string
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}

// Store persists trades. Implementations do not compute anything; callers
// Stamp trades before handing them over.
type Store interface {
	Create(ctx context.Context, t Trade) error
	Update(ctx context.Context, t Trade) error
	Get(ctx context.Context, id string) (Trade, error)
	Delete(ctx context.Context, id string) error
	// List returns every trade, newest entry first.
	List(ctx context.Context) ([]Trade, error)
	// ListBetween returns trades entered within [start, end), oldest first.
	ListBetween(ctx context.Context, start, end time.Time) ([]Trade, error)
	Close() error
}
