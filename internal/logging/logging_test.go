package logging

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	t.Cleanup(func() {
		baseLogger = saved
		SetLevel("info")
	})
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := captureLogs(t)
	if err := SetLevel("warn"); err != nil {
		t.Fatal(err)
	}
	Infof("hidden %d", 1)
	Warnf("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info message logged at warn level: %s", out)
	}
	if !strings.Contains(out, "[WARN] shown 2") {
		t.Fatalf("missing warn message: %s", out)
	}
}

func TestEscapedPercent(t *testing.T) {
	buf := captureLogs(t)
	Infof("saved %d%% of figures", 100)
	if !strings.Contains(buf.String(), "[INFO] saved 100% of figures") {
		t.Fatalf("percent mangled: %s", buf.String())
	}
}

func TestErrorfAtErrorLevel(t *testing.T) {
	buf := captureLogs(t)
	if err := SetLevel("error"); err != nil {
		t.Fatal(err)
	}
	Warnf("quiet")
	Errorf("run failed: %v", "boom")
	if out := buf.String(); strings.Contains(out, "quiet") || !strings.Contains(out, "[ERROR] run failed: boom") {
		t.Fatalf("output = %q", out)
	}
}

func TestSetLevelUnknown(t *testing.T) {
	captureLogs(t)
	if err := SetLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if CurrentLevel() != LevelInfo {
		t.Fatalf("level changed on bad input: %v", CurrentLevel())
	}
}
