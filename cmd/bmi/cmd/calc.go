package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/f3rmion/bmi/internal/bmi"
	"github.com/f3rmion/bmi/internal/history"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	calcHeight string
	calcWeight string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate BMI once and print the result",
	Long: `Calculate BMI from the given height and weight without opening the TUI.

Inputs are validated exactly like the form: both are required and must be
positive numbers.

Example:
  bmi calc --height 180 --weight 75
  bmi calc -H 160 -W 45 --history`,
	Args: cobra.NoArgs,
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)
	calcCmd.Flags().StringVarP(&calcHeight, "height", "H", "", "height in centimeters")
	calcCmd.Flags().StringVarP(&calcWeight, "weight", "W", "", "weight in kilograms")
}

// categoryColors mirrors the TUI palette for terminal output.
var categoryColors = map[bmi.Category]*color.Color{
	bmi.Underweight: color.New(color.FgCyan, color.Bold),
	bmi.Normal:      color.New(color.FgGreen, color.Bold),
	bmi.Overweight:  color.New(color.FgYellow, color.Bold),
	bmi.Obese:       color.New(color.FgRed, color.Bold),
}

func colorCategory(c bmi.Category) string {
	if col, ok := categoryColors[c]; ok {
		return col.Sprint(string(c))
	}
	return string(c)
}

func runCalc(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	calc := newCalculator()
	calc.SetHeight(calcHeight)
	calc.SetWeight(calcWeight)

	res, err := calc.Calculate()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "BMI: %s (%s)\n", res.BMI, colorCategory(res.Category))

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	if store == nil {
		return nil
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()
	if _, err := store.Record(ctx, history.NewEntry(res, time.Now())); err != nil {
		return err
	}

	return nil
}
