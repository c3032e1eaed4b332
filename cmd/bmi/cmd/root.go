// Package cmd contains all CLI commands for the bmi tool.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/bmi/internal/bmi"
	"github.com/f3rmion/bmi/internal/config"
	"github.com/f3rmion/bmi/internal/history"
	"github.com/f3rmion/bmi/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgDir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bmi",
	Short: "Body Mass Index calculator",
	Long: `bmi computes your Body Mass Index from height (cm) and weight (kg)
and classifies it:

  Underweight   below 18.5
  Normal        18.5 – 24.9
  Overweight    25.0 – 29.9
  Obese         30.0 and above

Running 'bmi' without arguments launches the interactive TUI.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "config directory (default is $HOME/.config/bmi)")
	rootCmd.PersistentFlags().Bool("verbose", false, "write a debug log to the config directory")
	rootCmd.PersistentFlags().Bool("history", false, "record calculations in the history journal")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("history", rootCmd.PersistentFlags().Lookup("history"))
}

// initConfig reads in ENV variables and resolves the config directory.
func initConfig() {
	if cfgDir != "" {
		viper.Set("config_dir", cfgDir)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("BMI")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadSettings loads config.yaml and applies flag and env overrides.
func loadSettings() (*config.Config, error) {
	cfg, err := config.Load(getConfigDir())
	if err != nil {
		return nil, err
	}
	if viper.GetBool("history") {
		cfg.History.Enabled = true
	}
	return cfg, nil
}

// openStore opens the history journal when it is enabled.
func openStore(cfg *config.Config) (*history.Store, error) {
	if !cfg.History.Enabled {
		return nil, nil
	}
	store, err := history.Open(cfg.HistoryPath(getConfigDir()))
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}
	return store, nil
}

// setupLogging sends the standard logger to debug.log with --verbose and
// discards it otherwise, since the TUI owns the terminal.
func setupLogging() (func(), error) {
	if !viper.GetBool("verbose") {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	dir, err := config.EnsureConfigDir(getConfigDir())
	if err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}
	f, err := tea.LogToFile(filepath.Join(dir, "debug.log"), "bmi")
	if err != nil {
		return nil, fmt.Errorf("opening debug log: %w", err)
	}
	return func() { f.Close() }, nil
}

// newCalculator creates the calculator and, with --verbose, logs every state change.
func newCalculator() *bmi.Calculator {
	calc := bmi.NewCalculator()
	if viper.GetBool("verbose") {
		calc.Subscribe(logSnapshot)
	}
	return calc
}

func logSnapshot(s bmi.Snapshot) {
	switch {
	case s.Error != "":
		log.Printf("height=%q weight=%q error=%q", s.Height, s.Weight, s.Error)
	case s.Result != nil:
		log.Printf("height=%q weight=%q bmi=%s category=%s", s.Height, s.Weight, s.Result.BMI, s.Result.Category)
	default:
		log.Printf("height=%q weight=%q", s.Height, s.Weight)
	}
}

// runTUI launches the TUI application.
func runTUI(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadSettings()
	if err != nil {
		// Broken config should not block the calculator
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		cfg = config.Default()
	}

	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, history disabled\n", err)
	}
	if store != nil {
		defer store.Close()
	}

	p := tea.NewProgram(
		tui.NewApp(tui.Options{
			Calculator: newCalculator(),
			Config:     cfg,
			ConfigDir:  getConfigDir(),
			Store:      store,
		}),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

// errHistoryDisabled is returned when a command needs the journal but it is off.
var errHistoryDisabled = errors.New("history is disabled (use --history or set history.enabled in config.yaml)")
