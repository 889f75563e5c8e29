package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"hatake/internal/provider"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Fetch the live forecast into the Redis cache",
	Long: `Fetch the current Open-Meteo forecast and store it in the Redis cache so
the dashboard can serve it without waiting on the upstream API. Meant to be
run from cron ahead of the cache TTL.`,
	RunE: runCollect,
}

func init() {
	rootCmd.AddCommand(collectCmd)
}

func runCollect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if !a.cached {
		return errors.New("redis cache is not available, enable redis in the config")
	}

	res := a.provider.Refresh(ctx)
	if res.Source != provider.SourceLive {
		return fmt.Errorf("live forecast unavailable: %w", res.Cause)
	}

	logger.Info("forecast cached",
		"location", cfg.Location.Name,
		"days", res.Forecast.Daily.Days(),
		"observed_at", res.Forecast.CurrentWeather.Time)
	return nil
}
