package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	t.Run("BasicLogging", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "TEST", FlagLevel|FlagPrefix)

		logger.Info("Hello %s", "World")

		output := buf.String()
		if !strings.Contains(output, "[INFO]") {
			t.Error("Missing log level")
		}
		if !strings.Contains(output, "[TEST]") {
			t.Error("Missing prefix")
		}
		if !strings.Contains(output, "Hello World") {
			t.Error("Missing message")
		}
		if strings.Count(output, "\n") != 1 {
			t.Errorf("Expected exactly one line, got %q", output)
		}
	})

	t.Run("LogLevels", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "", FlagLevel)
		logger.SetLevel(LogLevelWarn)

		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warn message")
		logger.Error("error message")

		output := buf.String()
		if strings.Contains(output, "debug message") {
			t.Error("Debug message should not be logged")
		}
		if strings.Contains(output, "info message") {
			t.Error("Info message should not be logged")
		}
		if !strings.Contains(output, "warn message") {
			t.Error("Warn message should be logged")
		}
		if !strings.Contains(output, "error message") {
			t.Error("Error message should be logged")
		}
		if logger.Level() != LogLevelWarn {
			t.Errorf("Level() = %v, want WARN", logger.Level())
		}
	})

	t.Run("LevelOff", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "", FlagLevel)
		logger.SetLevel(LogLevelOff)

		logger.Error("should not appear")

		if buf.Len() > 0 {
			t.Errorf("Logger at OFF wrote %q", buf.String())
		}
		if logger.Level() != LogLevelOff {
			t.Errorf("Level() = %v, want OFF", logger.Level())
		}
	})

	t.Run("Disabled", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "", DefaultFlags)
		logger.SetEnabled(false)

		logger.Info("should not appear")

		if buf.Len() > 0 {
			t.Error("Disabled logger should not write")
		}
	})

	t.Run("FileInfo", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "", FlagShortFile|FlagLevel)

		logger.Info("test")

		output := buf.String()
		if !strings.Contains(output, "logger_test.go:") {
			t.Errorf("Missing file info in output: %s", output)
		}
	})

	t.Run("Named", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "", FlagLevel)
		logger.SetLevel(LogLevelDebug)

		child := logger.Named("editor")
		child.Debug("spawned")

		output := buf.String()
		if !strings.Contains(output, "[editor]") || !strings.Contains(output, "spawned") {
			t.Errorf("Named logger output = %q", output)
		}
	})

	t.Run("Fatal", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "", FlagLevel)

		defer func() {
			if r := recover(); r == nil {
				t.Error("Fatal should panic")
			}
			if !strings.Contains(buf.String(), "[FATAL]") {
				t.Errorf("Fatal record missing: %q", buf.String())
			}
		}()
		logger.Fatal("broken %d", 1)
	})

	t.Run("FatalWhenDisabled", func(t *testing.T) {
		logger := Nop()

		defer func() {
			if r := recover(); r == nil {
				t.Error("Fatal should panic even when disabled")
			}
		}()
		logger.Fatal("broken")
	})

	t.Run("ConditionalLogging", func(t *testing.T) {
		var buf bytes.Buffer
		SetOutput(&buf)
		SetLevel(LogLevelDebug)
		defer SetLevel(LogLevelInfo)

		DebugIf(true, "should appear")
		DebugIf(false, "should not appear")

		output := buf.String()
		if !strings.Contains(output, "should appear") {
			t.Error("Conditional true message missing")
		}
		if strings.Contains(output, "should not appear") {
			t.Error("Conditional false message should not appear")
		}
	})
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevelFatal, "FATAL"},
		{LogLevelOff, "OFF"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("LogLevel.String() = %v, want %v", got, tt.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected LogLevel
		wantErr  bool
	}{
		{"debug", LogLevelDebug, false},
		{"INFO", LogLevelInfo, false},
		{"", LogLevelInfo, false},
		{" warning ", LogLevelWarn, false},
		{"error", LogLevelError, false},
		{"off", LogLevelOff, false},
		{"verbose", LogLevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.expected)
		}
	}
}

func BenchmarkLogger(b *testing.B) {
	logger := New(bytes.NewBuffer(nil), "BENCH", DefaultFlags)

	b.Run("Enabled", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			logger.Info("Benchmark message %d", i)
		}
	})

	b.Run("Disabled", func(b *testing.B) {
		logger.SetEnabled(false)
		for i := 0; i < b.N; i++ {
			logger.Info("Benchmark message %d", i)
		}
	})

	b.Run("BelowLevel", func(b *testing.B) {
		logger.SetEnabled(true)
		logger.SetLevel(LogLevelError)
		for i := 0; i < b.N; i++ {
			logger.Info("Benchmark message %d", i)
		}
	})
}

func TestNamedSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&buf, "", FlagLevel)
	child := parent.Named("editor")

	parent.SetLevel(LogLevelDebug)
	if child.Level() != LogLevelDebug {
		t.Errorf("child level = %v, want DEBUG after parent SetLevel", child.Level())
	}

	child.Debug("from child")
	if !strings.Contains(buf.String(), "from child") {
		t.Errorf("child debug record missing: %q", buf.String())
	}

	detached := child.WithLevel(LogLevelError)
	parent.SetLevel(LogLevelInfo)
	if detached.Level() != LogLevelError {
		t.Errorf("WithLevel logger level = %v, want ERROR", detached.Level())
	}
	if child.Level() != LogLevelInfo {
		t.Errorf("child level = %v, want INFO", child.Level())
	}

	buf.Reset()
	detached.Warn("filtered")
	detached.Error("kept")
	output := buf.String()
	if strings.Contains(output, "filtered") || !strings.Contains(output, "[editor]") {
		t.Errorf("WithLevel output = %q", output)
	}
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "editor.log")

	logger, err := NewFileLogger(path, "file", FlagLevel|FlagPrefix)
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}
	logger.Warn("written to %s", "disk")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "[WARN] [file] written to disk") {
		t.Errorf("log file = %q", data)
	}

	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileLogger(filepath.Join(blocker, "editor.log"), "", 0); err == nil {
		t.Error("NewFileLogger under a regular file should fail")
	}
}

func TestZap(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "zap", FlagLevel|FlagPrefix)

	logger.Zap().Info("structured")
	if !strings.Contains(buf.String(), "structured") {
		t.Errorf("zap record missing: %q", buf.String())
	}

	buf.Reset()
	logger.SetEnabled(false)
	logger.Zap().Error("dropped")
	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote %q", buf.String())
	}
}

func TestConditionalWarnAndError(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	WarnIf(true, "warn %d", 1)
	WarnIf(false, "warn %d", 2)
	ErrorIf(true, "error %d", 1)
	ErrorIf(false, "error %d", 2)

	output := buf.String()
	for _, want := range []string{"[WARN]", "warn 1", "[ERROR]", "error 1"} {
		if !strings.Contains(output, want) {
			t.Errorf("missing %q in %q", want, output)
		}
	}
	for _, unwanted := range []string{"warn 2", "error 2"} {
		if strings.Contains(output, unwanted) {
			t.Errorf("unexpected %q in %q", unwanted, output)
		}
	}
}
