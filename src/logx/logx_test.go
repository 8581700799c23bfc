package logx

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetLoggerLevelByString(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"fatal": zapcore.FatalLevel,
		"":      zapcore.DebugLevel,
		"loud":  zapcore.DebugLevel,
	}
	for in, want := range cases {
		if got := GetLoggerLevelByString(in); got != want {
			t.Errorf("GetLoggerLevelByString(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestToggleLevel(t *testing.T) {
	l := NewLogx(zapcore.InfoLevel, false, false)
	core, logs := observer.New(zapcore.DebugLevel)
	l.attach(core)

	l.ToggleLevel()
	if l.Level() != zapcore.DebugLevel {
		t.Fatalf("level = %v, want debug", l.Level())
	}
	l.ToggleLevel()
	if l.Level() != zapcore.InfoLevel {
		t.Fatalf("level = %v, want info", l.Level())
	}
	l.SetLevel(4)
	if l.Level() != zapcore.DebugLevel {
		t.Fatalf("SetLevel(4): level = %v, want debug", l.Level())
	}

	msgs := logs.FilterMessageSnippet("logging level set to").All()
	if len(msgs) != 3 {
		t.Fatalf("got %d level messages, want 3", len(msgs))
	}
	if msgs[0].Message != "logging level set to DEBUG" || msgs[1].Message != "logging level set to INFO" {
		t.Errorf("unexpected messages: %q, %q", msgs[0].Message, msgs[1].Message)
	}
}

func TestToggleFromUnlistedLevel(t *testing.T) {
	l := NewLogx(zapcore.WarnLevel, false, false)
	core, _ := observer.New(zapcore.DebugLevel)
	l.attach(core)

	l.ToggleLevel()
	if l.Level() != zapcore.DebugLevel {
		t.Fatalf("level = %v, want debug", l.Level())
	}
}

func TestInitLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogx(zapcore.InfoLevel, false, false)
	l.InitLogger(&buf)

	l.Debug("hidden")
	l.Infof("shown %d", 1)
	if err := l.Sync(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message written at info level: %s", out)
	}
	if !strings.Contains(out, `"MESSAGE":"shown 1"`) {
		t.Errorf("info message missing: %s", out)
	}

	buf.Reset()
	l.SetLevel(0)
	l.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("debug message missing after toggle: %s", buf.String())
	}
}
