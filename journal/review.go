package journal

import (
	"io"
	"text/template"
	"time"

	"github.com/rustyeddy/tradejournal/calendar"
	"github.com/rustyeddy/tradejournal/economics"
	"github.com/rustyeddy/tradejournal/stats"
	"github.com/shopspring/decimal"
)

// WeeklyReview is the Org document written at the end of a trading week.
type WeeklyReview struct {
	Week     calendar.Week
	Currency string
	Trades   []Trade // oldest first
	Summary  stats.Summary
	Created  time.Time

	Notes       []string
	NextActions []string
}

// NewWeeklyReview summarizes trades, which should already be limited to week.
func NewWeeklyReview(week calendar.Week, currency string, trades []Trade) WeeklyReview {
	econ := make([]economics.TradeEconomics, 0, len(trades))
	for _, t := range trades {
		econ = append(econ, economics.TradeEconomics{
			NetProfit:      t.NetProfit,
			RMultiple:      t.RMultiple,
			Classification: t.Status,
			Basis:          economics.Authoritative,
		})
	}
	return WeeklyReview{
		Week:     week,
		Currency: currency,
		Trades:   trades,
		Summary:  stats.Summarize(econ),
	}
}

var reviewOrgFuncs = template.FuncMap{
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
	"pct":   func(d decimal.Decimal) string { return d.Mul(decimal.NewFromInt(100)).StringFixed(1) },
	"opt": func(d decimal.NullDecimal) string {
		if !d.Valid {
			return "-"
		}
		return d.Decimal.StringFixed(2)
	},
	"orTime": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
	"short": shortID,
}

var reviewOrgTemplate = template.Must(template.New("review").Funcs(reviewOrgFuncs).Parse(ReviewOrgTemplate))

// WriteOrg renders the review to w.
func (r WeeklyReview) WriteOrg(w io.Writer) error {
	return reviewOrgTemplate.Execute(w, r)
}

const ReviewOrgTemplate = `* WEEK: {{.Week.Label}}
:PROPERTIES:
:WEEK_START:  {{.Week.Start.Format "2006-01-02"}}
:CURRENCY:    {{if .Currency}}{{.Currency}}{{else}}USD{{end}}
:TRADES:      {{.Summary.TotalTrades}}
:WINS:        {{.Summary.Wins}}
:LOSSES:      {{.Summary.Losses}}
:BREAKEVEN:   {{.Summary.Breakevens}}
:NET_PL:      {{money .Summary.NetProfit}}
:WIN_RATE:    {{pct .Summary.WinRate}}
:PROFIT_FAC:  {{opt .Summary.ProfitFactor}}
:AVG_R:       {{opt .Summary.AverageR}}
:CREATED:     [{{(orTime .Created).Format "2006-01-02 Mon 15:04"}}]
:END:

** Performance Summary
- Net P/L:          *{{money .Summary.NetProfit}}*
- Win Rate:         *{{pct .Summary.WinRate}}%*
- Expectancy:       *{{money .Summary.Expectancy}}*
- Profit Factor:    *{{opt .Summary.ProfitFactor}}*
- Average R:        *{{opt .Summary.AverageR}}* ({{.Summary.RCount}} with a stop)
- Largest Win:      *{{money .Summary.LargestWin}}*
- Largest Loss:     *{{money .Summary.LargestLoss}}*
- Max Loss Streak:  *{{.Summary.MaxConsecutiveLosses}}*

** Trades
| Day | Instrument | Side | Net P/L | R | Status | ID |
|-----+------------+------+---------+---+--------+----|
{{- range .Trades }}
| {{.EntryTime.Format "Mon 01-02"}} | {{.Instrument}} | {{.OrderType}} | {{money .NetProfit}} | {{opt .RMultiple}} | {{.Status}} | {{short .ID}} |
{{- end }}

{{- if .Notes }}

** Observations
{{- range .Notes }}
- {{.}}
{{- end }}
{{- end }}

{{- if .NextActions }}

** Next Actions
{{- range .NextActions }}
- [ ] {{.}}
{{- end }}
{{- end }}
`
