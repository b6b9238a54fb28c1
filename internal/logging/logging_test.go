package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nathanieltooley/pokearena/agent"
	"github.com/nathanieltooley/pokearena/arena"
	"github.com/nathanieltooley/pokearena/golurk"
	"github.com/nathanieltooley/pokearena/internal/config"
	"github.com/nathanieltooley/pokearena/teambuilder"
	"github.com/rs/zerolog/log"
)

func TestInitConsole(t *testing.T) {
	var buf bytes.Buffer

	if err := Init(config.LogConfig{Level: "info"}, &buf); err != nil {
		t.Fatal(err)
	}

	log.Info().Msg("shown")
	log.Debug().Msg("hidden")

	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected info to be logged, got %q", buf.String())
	}

	if strings.Contains(buf.String(), "hidden") {
		t.Fatal("debug should be filtered at info level")
	}
}

func TestInitFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "arena.log")

	if err := Init(config.LogConfig{Level: "debug", File: logFile, MaxSizeMB: 1}, nil); err != nil {
		t.Fatal(err)
	}
	defer Close()

	log.Debug().Msg("to the file")

	if err := Close(); err != nil {
		t.Fatal(err)
	}

	contents, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(contents), "to the file") {
		t.Fatalf("expected the message in the log file, got %q", contents)
	}
}

func TestInitBadLevel(t *testing.T) {
	if err := Init(config.LogConfig{Level: "loud"}, nil); err == nil {
		t.Fatal("expected an unknown level to fail")
	}
}

func TestStopAndContinue(t *testing.T) {
	var buf bytes.Buffer

	if err := Init(config.LogConfig{Level: "info"}, &buf); err != nil {
		t.Fatal(err)
	}

	StopLogging()
	log.Info().Msg("while stopped")
	ContinueLogging()
	log.Info().Msg("after continuing")

	if strings.Contains(buf.String(), "while stopped") {
		t.Fatal("logged while stopped")
	}

	if !strings.Contains(buf.String(), "after continuing") {
		t.Fatal("logging did not continue")
	}
}

func TestStopLoggingKeepsFile(t *testing.T) {
	var buf bytes.Buffer
	logFile := filepath.Join(t.TempDir(), "arena.log")

	if err := Init(config.LogConfig{Level: "info", File: logFile}, &buf); err != nil {
		t.Fatal(err)
	}
	defer Close()

	StopLogging()
	log.Info().Msg("while the view runs")
	ContinueLogging()

	if err := Close(); err != nil {
		t.Fatal(err)
	}

	if strings.Contains(buf.String(), "while the view runs") {
		t.Fatal("console should be muted")
	}

	contents, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(contents), "while the view runs") {
		t.Fatalf("expected the file to keep logging, got %q", contents)
	}
}

func runLoggedBattle(t *testing.T, level string) string {
	t.Helper()

	if err := golurk.LoadDefaultData(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Init(config.LogConfig{Level: level}, &buf); err != nil {
		t.Fatal(err)
	}
	defer Init(config.LogConfig{Level: "info"}, nil)

	cooper := arena.Entrant{Player: agent.NewCooper(), Team: teambuilder.Random{}}
	random := arena.Entrant{Player: &agent.RandomPlayer{}, Team: teambuilder.Random{}}

	if _, err := arena.RunBattle(context.Background(), cooper, random, 7, 100); err != nil {
		t.Fatal(err)
	}

	return buf.String()
}

func TestEngineQuietAtInfo(t *testing.T) {
	output := runLoggedBattle(t, "info")

	if strings.Contains(output, "golurk") {
		t.Fatalf("engine logged at info level:\n%s", output)
	}
}

func TestEngineLogsAtDebug(t *testing.T) {
	output := runLoggedBattle(t, "debug")

	if !strings.Contains(output, "golurk") {
		t.Fatal("expected engine logs at debug level")
	}
}
