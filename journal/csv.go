package journal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rustyeddy/tradejournal/economics"
	"github.com/shopspring/decimal"
)

var csvHeader = []string{
	"trade_id", "entry_time", "exit_time", "instrument", "order_type",
	"entry_price", "exit_price", "position_size", "stop_loss", "take_profit",
	"status", "net_profit", "r_multiple",
	"rationale", "review", "emotions", "tags",
}

// WriteCSV writes trades with their authoritative figures, one row each.
func WriteCSV(w io.Writer, trades []Trade) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range trades {
		err := cw.Write([]string{
			t.ID,
			t.EntryTime.UTC().Format(time.RFC3339),
			t.ExitTime.UTC().Format(time.RFC3339),
			t.Instrument,
			string(t.OrderType),
			decText(t.EntryPrice),
			decText(t.ExitPrice),
			decText(t.PositionSize),
			optPrice(t.StopLoss),
			optPrice(t.TakeProfit),
			string(t.Status),
			t.NetProfit.String(),
			optText(t.RMultiple),
			t.Rationale,
			t.Review,
			t.Emotions,
			JoinTags(t.Tags),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses rows written by WriteCSV. Status, net profit and R are
// recomputed from the prices rather than trusted from the file.
func ReadCSV(r io.Reader) ([]Trade, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if header[0] != csvHeader[0] {
		return nil, fmt.Errorf("unexpected header %q", header[0])
	}

	var out []Trade
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		t, err := tradeFromRow(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func tradeFromRow(rec []string) (Trade, error) {
	in, err := economics.ParseInput(economics.Fields{
		Instrument:        rec[3],
		OrderType:         rec[4],
		EntryPrice:        rec[5],
		ExitPrice:         rec[6],
		PositionSize:      rec[7],
		InitialStopLoss:   rec[8],
		InitialTakeProfit: rec[9],
	})
	if err != nil {
		return Trade{}, err
	}

	t := Trade{
		ID:           rec[0],
		Instrument:   in.Instrument,
		OrderType:    in.OrderType,
		EntryPrice:   in.EntryPrice,
		ExitPrice:    in.ExitPrice,
		PositionSize: in.PositionSize,
		StopLoss:     in.InitialStopLoss,
		TakeProfit:   in.InitialTakeProfit,
		Rationale:    rec[13],
		Review:       rec[14],
		Emotions:     rec[15],
		Tags:         ParseTags(rec[16]),
	}
	if t.EntryTime, err = time.Parse(time.RFC3339, rec[1]); err != nil {
		return Trade{}, fmt.Errorf("entry_time: %w", err)
	}
	if t.ExitTime, err = time.Parse(time.RFC3339, rec[2]); err != nil {
		return Trade{}, fmt.Errorf("exit_time: %w", err)
	}
	if err := t.Stamp(); err != nil {
		return Trade{}, err
	}
	return t, nil
}

func optPrice(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return decText(d.Decimal)
}

func optText(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}
