package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/f3rmion/bmi/internal/history"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear recorded calculations",
	Long: `Show the most recent calculations from the history journal, newest first.

The journal is only written when history is enabled (--history or
history.enabled in config.yaml), but an existing journal can always be read.

Example:
  bmi history
  bmi history --limit 5
  bmi history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Int("limit", 0, "number of entries to show (default from config)")
	historyCmd.Flags().Bool("clear", false, "delete all recorded calculations")
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	clearAll, _ := cmd.Flags().GetBool("clear")
	out := cmd.OutOrStdout()

	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	path := cfg.HistoryPath(getConfigDir())
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if !cfg.History.Enabled {
			return errHistoryDisabled
		}
		fmt.Fprintln(out, "No calculations recorded yet.")
		return nil
	}

	store, err := history.Open(path)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	if clearAll {
		n, err := store.Clear(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Removed %d calculations.\n", n)
		return nil
	}

	if limit <= 0 {
		limit = cfg.History.Limit
	}
	entries, err := store.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No calculations recorded yet.")
		return nil
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("WHEN"), bold.Sprint("HEIGHT"), bold.Sprint("WEIGHT"), bold.Sprint("BMI"), bold.Sprint("CATEGORY"))
	for _, e := range entries {
		tbl.AddRow(
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%.1f cm", e.Height),
			fmt.Sprintf("%.1f kg", e.Weight),
			e.BMI,
			colorCategory(e.Category),
		)
	}
	fmt.Fprintln(out, tbl)

	return nil
}
