package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hatake/internal/advisor"
	"hatake/internal/models"
)

var southGale = models.WeatherSnapshot{
	CurrentTemperatureC:     30,
	CurrentWindSpeedKmh:     22,
	CurrentWindDirectionDeg: 180,
	TodayMaxTempC:           30,
	TodayMinTempC:           20,
}

func TestPrintEvaluation_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printEvaluation(&buf, advisor.NewEngine(nil), southGale, false))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "70/100 危険度高め (南風)", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "- [レベル：高]"))
}

func TestPrintEvaluation_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printEvaluation(&buf, advisor.NewEngine(nil), southGale, true))

	var eval advisor.Evaluation
	require.NoError(t, json.Unmarshal(buf.Bytes(), &eval))
	assert.Equal(t, 70, eval.Risk.Score)
	assert.Equal(t, models.RiskHigh, eval.Risk.Level)
	assert.Len(t, eval.Advisories, 3)
}

func TestPrintEvaluation_NoAdvisories(t *testing.T) {
	var buf bytes.Buffer
	engine := advisor.NewEngine(nil)
	calm := models.WeatherSnapshot{TodayMaxTempC: 18, CurrentWindSpeedKmh: 3}

	require.NoError(t, printEvaluation(&buf, engine, calm, false))
	assert.Contains(t, buf.String(), engine.Catalog().NoAdvisories)
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "show", "evaluate"} {
		assert.True(t, names[want], "missing %s command", want)
	}
}
