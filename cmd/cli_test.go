package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfigFixture(t *testing.T, home string) {
	t.Helper()

	configDir := filepath.Join(home, ".xwstats")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	config := fmt.Sprintf("user_id = \"77239038\"\n\n[cookies]\npath = %q\nname = \"NYT-S\"\n",
		filepath.Join(configDir, "cookies.txt"))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(config), 0o644))

	jar := ".nytimes.com\tTRUE\t/\tTRUE\t1999999999\tNYT-S\ttok123\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "cookies.txt"), []byte(jar), 0o600))
}

func newUpstreamFixture(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v3/77239038/puzzles.json", func(w http.ResponseWriter, r *http.Request) {
		start := r.URL.Query().Get("date_start")
		if strings.HasPrefix(start, "2024-02") {
			_, _ = w.Write([]byte(`{"results": [
				{"print_date": "2024-02-01", "puzzle_id": 21001, "solved": true, "percent_filled": 0},
				{"print_date": "2024-02-02", "puzzle_id": 21002, "solved": false, "percent_filled": 40}
			]}`))
			return
		}
		_, _ = w.Write([]byte(`{"results": []}`))
	})
	mux.HandleFunc("/v6/game/21001.json", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("nyt-s") != "tok123" {
			http.Error(w, "missing session token", http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"calcs": {"secondsSpentSolving": 754}, "firsts": {"solved": 1709251200}}`))
	})
	mux.HandleFunc("/v6/game/21003.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"calcs": {}}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	t.Setenv("XW_BASE_URL", server.URL)

	return server
}

func TestMonthJSONOutput(t *testing.T) {
	home := t.TempDir()
	writeConfigFixture(t, home)
	newUpstreamFixture(t)

	stdout, _, err := executeCLI(t, home, "month", "--year", "2024", "--month", "2", "--json")
	require.NoError(t, err)

	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"Year\": 2024")
	assert.Contains(t, stdout, "\"done\"")
	assert.Contains(t, stdout, "\"in_progress\"")
}

func TestMonthRenderedCalendar(t *testing.T) {
	home := t.TempDir()
	writeConfigFixture(t, home)
	newUpstreamFixture(t)

	stdout, _, err := executeCLI(t, home, "month", "--year", "2024", "--month", "2")
	require.NoError(t, err)

	assert.Contains(t, stdout, "February 2024")
	assert.Contains(t, stdout, "Su Mo Tu We Th Fr Sa")
	assert.Contains(t, stdout, "solved 1 of 29 · 2 days loaded")
}

func TestMonthInvalidMonthFails(t *testing.T) {
	home := t.TempDir()
	writeConfigFixture(t, home)
	newUpstreamFixture(t)

	_, _, err := executeCLI(t, home, "month", "--year", "2024", "--month", "13")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "month out of range")
}

func TestDayShowsRecordAfterMonthFetch(t *testing.T) {
	home := t.TempDir()
	writeConfigFixture(t, home)
	newUpstreamFixture(t)

	stdout, _, err := executeCLI(t, home, "day", "2024-02-01")
	require.NoError(t, err)
	assert.Contains(t, stdout, "2024-02-01")
	assert.Contains(t, stdout, "done")
	assert.Contains(t, stdout, "puzzle 21001")
}

func TestDayWithoutRecordSaysSo(t *testing.T) {
	home := t.TempDir()
	writeConfigFixture(t, home)
	newUpstreamFixture(t)

	stdout, _, err := executeCLI(t, home, "day", "2024-02-15")
	require.NoError(t, err)
	assert.Contains(t, stdout, "no puzzle record for 2024-02-15")
}

func TestGameTextOutput(t *testing.T) {
	home := t.TempDir()
	writeConfigFixture(t, home)
	newUpstreamFixture(t)

	stdout, _, err := executeCLI(t, home, "game", "21001")
	require.NoError(t, err)
	assert.Contains(t, stdout, "solve time:  12:34")
	assert.Contains(t, stdout, "clean solve: yes")
	assert.Contains(t, stdout, "attempted:   yes")
}

func TestGameJSONOutputOmitsAbsentFirsts(t *testing.T) {
	home := t.TempDir()
	writeConfigFixture(t, home)
	newUpstreamFixture(t)

	stdout, _, err := executeCLI(t, home, "game", "21003", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"calcs\"")
	assert.NotContains(t, stdout, "\"firsts\"")
}

func TestSummaryJSONOutput(t *testing.T) {
	home := t.TempDir()
	writeConfigFixture(t, home)
	newUpstreamFixture(t)

	stdout, _, err := executeCLI(t, home, "summary", "--from", "2024-01", "--to", "2024-02", "--json")
	require.NoError(t, err)

	var report struct {
		TotalDays  int     `json:"total_days"`
		LoadedDays int     `json:"loaded_days"`
		Solved     int     `json:"solved"`
		SolveRate  float64 `json:"solve_rate"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, 31+29, report.TotalDays)
	assert.Equal(t, 2, report.LoadedDays)
	assert.Equal(t, 1, report.Solved)
	assert.InDelta(t, 0.5, report.SolveRate, 1e-9)
}

func TestMissingSessionCookieFails(t *testing.T) {
	home := t.TempDir()
	writeConfigFixture(t, home)
	newUpstreamFixture(t)

	configDir := filepath.Join(home, ".xwstats")
	jar := ".nytimes.com\tTRUE\t/\tTRUE\t1999999999\tnyt-a\tother\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "cookies.txt"), []byte(jar), 0o600))

	_, _, err := executeCLI(t, home, "month", "--year", "2024", "--month", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session cookie not found")
}

func TestMissingUserIDFails(t *testing.T) {
	home := t.TempDir()
	newUpstreamFixture(t)

	_, _, err := executeCLI(t, home, "month", "--year", "2024", "--month", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user id not set")
}

func TestUserFlagOverridesConfig(t *testing.T) {
	home := t.TempDir()
	writeConfigFixture(t, home)

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	t.Cleanup(server.Close)
	t.Setenv("XW_BASE_URL", server.URL)

	_, _, err := executeCLI(t, home, "month", "--year", "2024", "--month", "2", "--user", "555", "--json")
	require.NoError(t, err)
	assert.Equal(t, "/v3/555/puzzles.json", gotPath)
}

func TestConfigInitWritesAndRefusesOverwrite(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "config.toml")

	configPath := filepath.Join(home, ".xwstats", "config.toml")
	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "user_id")
	assert.Contains(t, string(data), "[cookies]")
	assert.Contains(t, string(data), "base_url")

	_, _, err = executeCLI(t, home, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = executeCLI(t, home, "config", "init", "--force")
	require.NoError(t, err)
}

func TestVersionCommand(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}
