package logging

import (
	"bytes"
	"log"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestSetup_WritesTextRecords(t *testing.T) {
	prevDefault := slog.Default()
	prevOutput := log.Writer()
	t.Cleanup(func() {
		slog.SetDefault(prevDefault)
		log.SetOutput(prevOutput)
	})

	var buf bytes.Buffer
	logger := Setup(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	slog.Info("task created", "task_id", "t1")
	log.Print("from std log")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("Debug record should be filtered at info level")
	}
	if !strings.Contains(out, "msg=\"task created\"") || !strings.Contains(out, "task_id=t1") {
		t.Errorf("Expected slog text record, got %q", out)
	}
	if !strings.Contains(out, "from std log") {
		t.Errorf("Expected standard log output to be redirected, got %q", out)
	}
}

func TestInit_CreatesLogFile(t *testing.T) {
	prevDefault := slog.Default()
	prevOutput := log.Writer()
	t.Cleanup(func() {
		slog.SetDefault(prevDefault)
		log.SetOutput(prevOutput)
	})

	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	if _, err := os.Stat(home + "/.lanes/logs/lanes.log"); err != nil {
		t.Errorf("Expected log file to exist: %v", err)
	}
}
