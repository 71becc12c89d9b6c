package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "tradelog version "+version+"\n", out)
}

func TestCalcText(t *testing.T) {
	out, err := run(t, "calc", "--symbol", "EUR/USD", "--account", "10000", "--risk", "2",
		"--entry", "1.1000", "--exit", "1.1100", "--stop", "1.0950")
	require.NoError(t, err)

	assert.Contains(t, out, "Direction:      LONG\n")
	assert.Contains(t, out, "Risk Amount:    $200.00\n")
	assert.Contains(t, out, "Position Size:  0.4000\n")
	assert.Contains(t, out, "Profit:         100.0 pips  $400.00\n")
	assert.Contains(t, out, "Risk:Reward:    1:2.00\n")
}

func TestCalcPipsAndDefaults(t *testing.T) {
	out, err := run(t, "calc", "-s", "AAPL", "--entry", "150", "--stop-pips", "500",
		"--target-pips", "1000", "--side", "short", "-o", "json")
	require.NoError(t, err)

	var got calcOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 10000.0, got.Inputs.AccountSize)
	assert.Equal(t, 1.0, got.Inputs.RiskPercent)
	assert.InDelta(t, 155.0, got.Inputs.StopLoss, 1e-9)
	assert.InDelta(t, 140.0, got.Inputs.ExitPrice, 1e-9)
	assert.InDelta(t, 20.0, got.Result.PositionSize, 1e-9)
	assert.Equal(t, "SHORT", string(got.Result.Direction))
}

func TestCalcUnknownSymbolDegrades(t *testing.T) {
	out, err := run(t, "calc", "-s", "NOPE", "--account", "1000", "--risk", "1",
		"--entry", "1", "--exit", "2", "--stop", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "not in catalog")
	assert.Contains(t, out, "Risk Amount:    $10.00\n")
	assert.Contains(t, out, "Position Size:  0.0000\n")

	_, err = run(t, "calc", "-s", "NOPE", "--entry", "1", "--exit", "2", "--stop", "0.5", "--save")
	assert.Error(t, err)
}

func TestCalcSaveRejectsOverflow(t *testing.T) {
	db := filepath.Join(t.TempDir(), "journal.sqlite")

	_, err := run(t, "--db", db, "calc", "-s", "EUR/USD", "--account", "1e308", "--risk", "50",
		"--entry", "1.1", "--exit", "1.11", "--stop", "1.095", "--save")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overflow")

	out, err := run(t, "--db", db, "journal", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Trades:            0 (0 long, 0 short)")
}

func TestCalcYAML(t *testing.T) {
	out, err := run(t, "calc", "-s", "BTC/USD", "--account", "50000", "--risk", "1",
		"--entry", "60000", "--exit", "63000", "--stop", "59000", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "position_size: 0.5\n")
	assert.Contains(t, out, "trade_direction: LONG\n")
}

func TestJournalRoundTrip(t *testing.T) {
	db := filepath.Join(t.TempDir(), "journal.sqlite")

	out, err := run(t, "--db", db, "calc", "-s", "EUR/USD", "--account", "10000", "--risk", "2",
		"--entry", "1.1", "--exit", "1.11", "--stop", "1.095", "--save", "--notes", "london open", "-o", "json")
	require.NoError(t, err)

	var saved calcOutput
	require.NoError(t, json.Unmarshal([]byte(out), &saved))
	require.NotEmpty(t, saved.TradeID)

	out, err = run(t, "--db", db, "journal", "list")
	require.NoError(t, err)
	assert.Contains(t, out, saved.TradeID)
	assert.Contains(t, out, "EUR/USD")

	out, err = run(t, "--db", db, "journal", "list", "--day", "today", "--org")
	require.NoError(t, err)
	assert.Contains(t, out, "** Trade: EUR/USD LONG")

	out, err = run(t, "--db", db, "journal", "show", saved.TradeID)
	require.NoError(t, err)
	assert.Contains(t, out, ":TRADE_ID: "+saved.TradeID)
	assert.Contains(t, out, "- london open")

	out, err = run(t, "--db", db, "journal", "export")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], saved.TradeID+","))

	out, err = run(t, "--db", db, "journal", "summary", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"totalRisk": 200`)

	_, err = run(t, "--db", db, "journal", "delete", saved.TradeID)
	require.NoError(t, err)

	_, err = run(t, "--db", db, "journal", "show", saved.TradeID)
	assert.Error(t, err)
}

func TestJournalExportFile(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "journal.sqlite")
	csvPath := filepath.Join(dir, "out.csv")

	out, err := run(t, "--db", db, "journal", "export", "-o", csvPath, "--category", "stocks")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 0 trades")

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "trade_id,created_at,instrument"))

	_, err = run(t, "--db", db, "journal", "list", "--category", "bonds")
	assert.Error(t, err)
}

func TestJournalRejectsMalformedID(t *testing.T) {
	db := filepath.Join(t.TempDir(), "journal.sqlite")

	for _, sub := range []string{"show", "delete"} {
		_, err := run(t, "--db", db, "journal", sub, "not-a-trade")
		require.Error(t, err, sub)
		assert.Contains(t, err.Error(), "invalid trade id", sub)
	}
	_, err := os.Stat(db)
	assert.True(t, os.IsNotExist(err))
}

func TestDirectionCmd(t *testing.T) {
	out, err := run(t, "direction", "1.1", "1.12", "1.13")
	require.NoError(t, err)
	assert.Contains(t, out, "Calculator direction: LONG\n")
	assert.Contains(t, out, "Detected:             none\n")
	assert.Contains(t, out, "Confidence:           0%\n")
}

func TestInstrumentsCmd(t *testing.T) {
	out, err := run(t, "instruments", "--category", "crypto")
	require.NoError(t, err)
	assert.Contains(t, out, "BTC/USD")
	assert.Contains(t, out, "price-distance")
	assert.NotContains(t, out, "EUR/USD")

	out, err = run(t, "instruments", "-c", "forex")
	require.NoError(t, err)
	assert.Regexp(t, `EUR/USD\s+Forex\s+pip-value\s+0\.0001\s+-4\s`, out)

	_, err = run(t, "instruments", "--category", "bonds")
	assert.Error(t, err)
}

func TestConfigInitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tradelog.yaml")

	out, err := run(t, "config", "init", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Created default configuration")

	out, err = run(t, "config", "validate", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration valid")

	_, err = run(t, "--config", path, "version")
	assert.NoError(t, err)
}
