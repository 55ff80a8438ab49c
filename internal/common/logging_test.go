package common

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestNewLogger_ReturnsNonNil(t *testing.T) {
	logger := NewLogger("info")
	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}
}

func TestNewLogger_FluentAPI(t *testing.T) {
	logger := NewLogger("error")
	logger.Info().Str("ticker", "AAPL").Msg("test message")
	logger.Warn().Int("paths", 1000).Msg("warning")
	logger.Error().Err(nil).Msg("error message")
	logger.Debug().Float64("sigma", 0.017).Bool("adjusted", true).Msg("debug")
}

func TestNewLoggerWithOutput_WritesToProvidedWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput("info", &buf)
	logger.Info().Str("tool", "widget-types_metric").Msg("hello")

	if buf.String() == "" {
		t.Error("expected output to provided writer, got empty string")
	}
}

func TestNewSilentLogger_DoesNotWriteToGlobalWriters(t *testing.T) {
	var buf bytes.Buffer
	_ = NewLoggerWithOutput("info", &buf)
	buf.Reset()

	silent := NewSilentLogger()
	silent.Info().Str("key", "value").Msg("this should NOT appear")
	silent.Error().Msg("this should NOT appear either")

	if buf.Len() > 0 {
		t.Errorf("silent logger wrote %d bytes to global writer: %s", buf.Len(), buf.String())
	}
}

// stdout is reserved for process output; console logging goes to stderr.
func TestNewLogger_DoesNotWriteToStdout(t *testing.T) {
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	logger := NewLogger("info")
	logger.Info().Str("tool", "test").Msg("this must not go to stdout")

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)
	r.Close()

	if buf.Len() > 0 {
		t.Errorf("logger wrote %d bytes to stdout: %s", buf.Len(), buf.String())
	}
}

func TestWithCorrelationId_ReturnsNewLogger(t *testing.T) {
	logger := NewLogger("info")
	correlated := logger.WithCorrelationId("req-123")

	if correlated == nil {
		t.Fatal("WithCorrelationId returned nil")
	}
	if correlated == logger {
		t.Error("WithCorrelationId should return a new Logger instance")
	}
}

func TestLogLevel_DebugFilteredAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput("info", &buf)

	logger.Debug().Msg("debug message should not appear")

	if strings.Contains(buf.String(), "debug message should not appear") {
		t.Error("debug message appeared at info level")
	}
}

func TestLogLevel_InfoVisibleAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput("info", &buf)

	logger.Info().Msg("info message should appear")

	if !strings.Contains(buf.String(), "info message should appear") {
		t.Errorf("info message not visible at info level, got: %s", buf.String())
	}
}

func TestLogLevel_InfoFilteredAtWarnLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput("warn", &buf)

	logger.Info().Msg("info message should not appear at warn level")

	if strings.Contains(buf.String(), "info message should not appear") {
		t.Error("info message appeared at warn level")
	}
}

func TestOutputFormat_ContainsFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput("info", &buf)

	logger.Info().
		Dur("elapsed", 150*time.Millisecond).
		Str("ticker", "MSFT").
		Int("paths", 1000).
		Msg("simulation complete")

	output := buf.String()
	for _, want := range []string{"simulation complete", "elapsed", "MSFT"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q, got: %s", want, output)
		}
	}
}

func TestConcurrentLogging_SilentLoggerSafe(t *testing.T) {
	logger := NewSilentLogger()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				logger.Info().Int("id", id).Int("j", j).Msg("concurrent silent")
			}
		}(i)
	}
	wg.Wait()
}
