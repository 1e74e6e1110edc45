package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatTradeOrg renders a Trade as an Org-mode block suitable for pasting into a journal.
// Structured facts go in a PROPERTIES drawer for easy search; the narrative
// fields become subheadings.
func FormatTradeOrg(t Trade) string {
	heading := fmt.Sprintf("** %s: %s %s (%s)", t.Status, t.OrderType, t.Instrument, shortID(t.ID))
	open := t.EntryTime.UTC().Format(time.RFC3339)
	close := t.ExitTime.UTC().Format(time.RFC3339)

	var b strings.Builder
	b.WriteString(heading)
	if len(t.Tags) > 0 {
		b.WriteString("  :" + strings.Join(orgTags(t.Tags), ":") + ":")
	}
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":TRADE_ID: %s\n", t.ID))
	b.WriteString(fmt.Sprintf(":INSTRUMENT: %s\n", t.Instrument))
	b.WriteString(fmt.Sprintf(":ORDER_TYPE: %s\n", t.OrderType))
	b.WriteString(fmt.Sprintf(":POSITION_SIZE: %s\n", decText(t.PositionSize)))
	b.WriteString(fmt.Sprintf(":ENTRY_PRICE: %s\n", decText(t.EntryPrice)))
	b.WriteString(fmt.Sprintf(":EXIT_PRICE: %s\n", decText(t.ExitPrice)))
	if t.StopLoss.Valid {
		b.WriteString(fmt.Sprintf(":STOP_LOSS: %s\n", decText(t.StopLoss.Decimal)))
	}
	if t.TakeProfit.Valid {
		b.WriteString(fmt.Sprintf(":TAKE_PROFIT: %s\n", decText(t.TakeProfit.Decimal)))
	}
	b.WriteString(fmt.Sprintf(":ENTRY_TIME: %s\n", open))
	b.WriteString(fmt.Sprintf(":EXIT_TIME: %s\n", close))
	b.WriteString(fmt.Sprintf(":NET_PROFIT: %s\n", t.NetProfit.StringFixed(2)))
	if t.RMultiple.Valid {
		b.WriteString(fmt.Sprintf(":R_MULTIPLE: %s\n", t.RMultiple.Decimal.StringFixed(2)))
	}
	if t.Emotions != "" {
		b.WriteString(fmt.Sprintf(":EMOTIONS: %s\n", t.Emotions))
	}
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Rationale\n" + orgBody(t.Rationale) + "\n")
	b.WriteString("*** Review\n" + orgBody(t.Review))

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []Trade) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

func orgBody(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "- \n"
	}
	return s + "\n"
}

// Org tags may not contain spaces or colons.
func orgTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.NewReplacer(" ", "_", ":", "_").Replace(t)
		out = append(out, t)
	}
	return out
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
