package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"hatake/internal/advisor"
	"hatake/internal/models"
)

var (
	evalSnapshot models.WeatherSnapshot
	evalJSON     bool
	evalLang     string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score a weather snapshot and print advisories",
	Long: `Run the risk scorer and the advisory rules on readings given as flags,
without contacting Open-Meteo.`,
	Example: `  hatake evaluate --max-temp 30 --wind-speed 22 --wind-direction 180`,
	RunE:    runEvaluate,
}

func init() {
	f := evaluateCmd.Flags()
	f.Float64Var(&evalSnapshot.CurrentTemperatureC, "temp", 0, "current temperature (°C)")
	f.Float64Var(&evalSnapshot.CurrentWindSpeedKmh, "wind-speed", 0, "current wind speed (km/h)")
	f.Float64Var(&evalSnapshot.CurrentWindDirectionDeg, "wind-direction", 0, "direction the wind blows from (degrees)")
	f.Float64Var(&evalSnapshot.TodayMaxTempC, "max-temp", 0, "today's maximum temperature (°C)")
	f.Float64Var(&evalSnapshot.TodayMinTempC, "min-temp", 0, "today's minimum temperature (°C)")
	f.Float64Var(&evalSnapshot.TodayPrecipitationMm, "precip", 0, "today's precipitation sum (mm)")
	f.BoolVar(&evalJSON, "json", false, "print the evaluation as JSON")
	f.StringVar(&evalLang, "lang", "", "catalog locale (defaults to the configured locale)")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	lang := evalLang
	if lang == "" {
		lang = cfg.Locale
	}
	catalog, err := advisor.CatalogFor(lang)
	if err != nil {
		return err
	}

	return printEvaluation(cmd.OutOrStdout(), advisor.NewEngine(catalog), evalSnapshot, evalJSON)
}

func printEvaluation(w io.Writer, engine *advisor.Engine, s models.WeatherSnapshot, asJSON bool) error {
	eval := engine.Evaluate(s)

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(eval)
	}

	fmt.Fprintf(w, "%d/100 %s (%s)\n", eval.Risk.Score, eval.Risk.Label, engine.WindName(s.CurrentWindDirectionDeg))
	if len(eval.Advisories) == 0 {
		fmt.Fprintln(w, engine.Catalog().NoAdvisories)
		return nil
	}
	for _, a := range eval.Advisories {
		fmt.Fprintf(w, "- [%s] %s: %s\n", engine.Catalog().SeverityLabel(a.Severity), a.Title, a.Message)
	}
	return nil
}
