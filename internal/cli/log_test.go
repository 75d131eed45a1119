package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/boxorbit/pkg/observability"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level log.Level
		emit  func(*log.Logger)
		want  bool
	}{
		{log.InfoLevel, func(l *log.Logger) { l.Info("stage") }, true},
		{log.InfoLevel, func(l *log.Logger) { l.Debug("stage") }, false},
		{log.DebugLevel, func(l *log.Logger) { l.Debug("stage") }, true},
		{log.WarnLevel, func(l *log.Logger) { l.Info("stage") }, false},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		tt.emit(newLogger(&buf, tt.level))
		if got := buf.Len() > 0; got != tt.want {
			t.Errorf("level %s: wrote output = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("wrote outputs", "files", 3, "cached", false)

	for _, want := range []string{"wrote outputs", "files=3", "cached=false", "duration="} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("progress.done() output %q missing %q", buf.String(), want)
		}
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext without a logger should return log.Default()")
	}

	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	if got := loggerFromContext(withLogger(context.Background(), l)); got != l {
		t.Error("loggerFromContext did not return the attached logger")
	}
}

func TestSetLogLevelInstallsHooks(t *testing.T) {
	t.Cleanup(observability.Reset)

	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.SetLogLevel(LogInfo)
	if _, ok := observability.Pipeline().(*observability.LogHooks); ok {
		t.Fatal("info level should not install log hooks")
	}

	c.SetLogLevel(LogDebug)
	if _, ok := observability.Pipeline().(*observability.LogHooks); !ok {
		t.Fatalf("debug level hooks = %T, want *LogHooks", observability.Pipeline())
	}
	observability.Pipeline().OnStageStart(context.Background(), "placing")
	if !strings.Contains(buf.String(), "placing") {
		t.Errorf("stage not logged: %q", buf.String())
	}
}
