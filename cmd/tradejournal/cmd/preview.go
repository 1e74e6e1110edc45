package cmd

import (
	"fmt"

	"github.com/rustyeddy/tradejournal/economics"
	"github.com/rustyeddy/tradejournal/market"
	"github.com/rustyeddy/tradejournal/view"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Work out a trade's economics without saving it",
	Long: `Preview shows the pip-based estimate next to the authoritative
figures that would be stored. The two use different formulas and are
not expected to agree.

Example:
  tradejournal preview --instrument EUR/USD --side buy --entry 1.1000 --exit 1.1050 --size 1 --stop 1.0980`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

var (
	previewFields   economics.Fields
	previewPipValue float64
)

func init() {
	rootCmd.AddCommand(previewCmd)

	fs := previewCmd.Flags()
	fs.StringVarP(&previewFields.Instrument, "instrument", "i", "", "instrument (default preview.default_instrument)")
	fs.StringVarP(&previewFields.OrderType, "side", "s", "", "buy or sell")
	fs.StringVar(&previewFields.EntryPrice, "entry", "", "entry price as you would type it")
	fs.StringVar(&previewFields.ExitPrice, "exit", "", "exit price")
	fs.StringVar(&previewFields.PositionSize, "size", "", "position size")
	fs.StringVar(&previewFields.InitialStopLoss, "stop", "", "initial stop loss")
	fs.StringVar(&previewFields.InitialTakeProfit, "tp", "", "initial take profit")
	fs.Float64Var(&previewPipValue, "pip-value", 0, "pip value per lot (default preview.pip_value_per_lot)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	fields := previewFields
	if fields.Instrument == "" {
		fields.Instrument = cfg.Preview.DefaultInstrument
	}
	fields.Instrument = market.Normalize(fields.Instrument)

	in, err := economics.ParseInput(fields)
	if err != nil {
		return err
	}

	pipValue := cfg.PipValue()
	if previewPipValue > 0 {
		pipValue = decimal.NewFromFloat(previewPipValue)
	}

	p, err := economics.NewPreview(in, fields.EntryPrice, pipValue)
	if err != nil {
		return err
	}
	if err := view.Preview(cmd.OutOrStdout(), p); err != nil {
		return err
	}

	// The estimate infers pip size from how the entry was typed; point out
	// when that disagrees with what the instrument actually uses.
	if meta, ok := market.Lookup(in.Instrument); ok {
		want := decimal.NewFromFloat(market.PipSize(meta.PipLocation))
		if !want.Equal(p.Estimated.PipSize) {
			fmt.Fprintf(cmd.OutOrStdout(), "note: %s pips are %s; the estimate used %s from the entry as typed\n",
				meta.Name, want, p.Estimated.PipSize)
		}
	}
	return nil
}
