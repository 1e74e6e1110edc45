package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal",
	Long: `Export every trade as CSV or as Org-mode entries.

Examples:
  tradejournal export csv -o trades.csv
  tradejournal export org > journal.org`,
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export trades as CSV",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd, func(w io.Writer, trades []journal.Trade) error {
			return journal.WriteCSV(w, trades)
		})
	},
}

var exportOrgCmd = &cobra.Command{
	Use:   "org",
	Short: "Export trades as Org-mode entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd, func(w io.Writer, trades []journal.Trade) error {
			_, err := fmt.Fprintln(w, journal.FormatTradesOrg(trades))
			return err
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import trades from a CSV export",
	Long: `Import trades written by "export csv". Status, net profit and
R-multiple are recomputed from the prices in the file.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var exportOutput string

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	exportCmd.AddCommand(exportCSVCmd, exportOrgCmd)

	exportCmd.PersistentFlags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
}

func runExport(cmd *cobra.Command, write func(io.Writer, []journal.Trade) error) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	trades, err := j.Trades(cmd.Context())
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}

	// oldest first reads naturally in a file
	for a, b := 0, len(trades)-1; a < b; a, b = a+1, b-1 {
		trades[a], trades[b] = trades[b], trades[a]
	}

	w := cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := write(w, trades); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	slog.Debug("exported trades", "count", len(trades), "output", exportOutput)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	trades, err := journal.ReadCSV(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	for _, t := range trades {
		if _, err := j.Create(cmd.Context(), t); err != nil {
			return fmt.Errorf("import trade %s: %w", t.ID, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported %d trades from %s\n", len(trades), args[0])
	return nil
}
