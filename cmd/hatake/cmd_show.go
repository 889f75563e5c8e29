package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"hatake/internal/logging"
	"hatake/internal/ui"
)

var (
	showOnce bool
	showJSON bool
	showLog  string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the dashboard in the terminal",
	Long: `Open the interactive terminal dashboard. Press r to refresh and q to quit.
With --once or --json the dashboard is printed a single time instead.`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showOnce, "once", false, "print the dashboard once and exit")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print the dashboard as JSON and exit")
	showCmd.Flags().StringVar(&showLog, "log-file", filepath.Join(os.TempDir(), "hatake.log"), "log destination while the interactive dashboard runs")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	interactive := !showOnce && !showJSON

	// stderr belongs to the dashboard while it is on screen
	if interactive {
		f, err := os.OpenFile(showLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		if logger, err = logging.NewWithWriter(f, cfg.Log.Level, cfg.Log.Format); err != nil {
			return err
		}
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if showJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(a.dashboard.Build(ctx))
	}

	if showOnce {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Render(a.dashboard.Build(ctx), a.engine.Catalog(), 0))
		return nil
	}

	p := tea.NewProgram(ui.NewModel(a.dashboard, a.engine.Catalog(), cfg.Forecast.Timeout*4), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
