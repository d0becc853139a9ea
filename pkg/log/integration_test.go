package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	nerrors "github.com/YuminosukeSato/neptunelearn/pkg/errors"
)

// TestLoggerInterface tests the TestLogger implementation of Logger
func TestLoggerInterface(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelDebug)

	testLogger.Debug("debug message", "key1", "value1", "number", 42)
	testLogger.Info("info message", "operation", "test")
	testLogger.Warn("warning message", "warning_code", "TEST_WARNING")
	testLogger.Error("error message", fmt.Errorf("test error"), "error_code", "TEST_ERROR")

	if buffer.String() == "" {
		t.Fatal("Expected log output, got empty string")
	}

	for _, msg := range []string{"debug message", "info message", "warning message", "error message"} {
		if !testLogger.ContainsMessage(msg) {
			t.Errorf("%q not found in output", msg)
		}
	}

	if !testLogger.ContainsField("key1", "value1") {
		t.Error("Expected field key1=value1 not found")
	}
	if !testLogger.ContainsField("number", 42.0) { // JSON numbers decode as float64
		t.Error("Expected field number=42 not found")
	}
	if !testLogger.ContainsField("error", "test error") {
		t.Error("Expected leading error to be logged under 'error'")
	}
	if !testLogger.ContainsField("error_code", "TEST_ERROR") {
		t.Error("Expected fields after the error to stay paired")
	}
}

// TestLoggerWith tests the With method for context-aware logging
func TestLoggerWith(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)

	contextLogger := testLogger.With(
		ModelNameKey, "Perceptron",
		ComponentKey, "linear.perceptron",
	)
	contextLogger.Info("contextual message", OperationKey, OperationFit)

	if !testLogger.ContainsField(ModelNameKey, "Perceptron") {
		t.Error("Model name context not found")
	}
	if !testLogger.ContainsField(ComponentKey, "linear.perceptron") {
		t.Error("Component context not found")
	}
	if !testLogger.ContainsField(OperationKey, OperationFit) {
		t.Error("Operation field not found")
	}
}

// TestLoggerEnabled tests the Enabled method
func TestLoggerEnabled(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)
	ctx := context.Background()

	if !testLogger.Enabled(ctx, LevelInfo) {
		t.Error("Logger should be enabled for Info level")
	}
	if testLogger.Enabled(ctx, LevelDebug) {
		t.Error("Logger should not be enabled for Debug level")
	}

	testLogger.Debug("this should not appear")
	testLogger.Info("this should appear")

	if testLogger.ContainsMessage("this should not appear") {
		t.Error("Debug message should not appear when level is Info")
	}
	if testLogger.CountMessages("this should appear") != 1 {
		t.Error("Info message should appear exactly once")
	}
}

// TestZerologLogger tests the default zerolog-backed implementation
func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelInfo).With(ModelNameKey, "Adaline")

	logger.Debug("hidden", IterationKey, 1)
	logger.Info("fit completed", SamplesKey, 4, LossKey, 0.25)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line (debug filtered), got %d: %q", len(lines), buf.String())
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("zerolog output is not JSON: %v", err)
	}
	if entry["message"] != "fit completed" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry[ModelNameKey] != "Adaline" {
		t.Errorf("%s = %v", ModelNameKey, entry[ModelNameKey])
	}
	if entry[SamplesKey] != 4.0 || entry[LossKey] != 0.25 {
		t.Errorf("unexpected fields: %v", entry)
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v", entry["level"])
	}
}

// TestZerologLoggerErrorStacktrace tests that cockroachdb stack traces are attached
func TestZerologLoggerErrorStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelDebug)

	err := nerrors.NewDimensionError("NetInput", 3, 2, 1)
	logger.Error("predict failed", err, OperationKey, OperationPredict)

	var entry map[string]interface{}
	if jerr := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); jerr != nil {
		t.Fatalf("zerolog output is not JSON: %v", jerr)
	}
	if entry["error"] == nil {
		t.Error("Expected error field")
	}
	if entry[OperationKey] != OperationPredict {
		t.Errorf("%s = %v", OperationKey, entry[OperationKey])
	}
	if st, _ := entry[StacktraceKey].(string); st == "" {
		t.Error("Expected stack trace from cockroachdb/errors")
	}
}

// TestZerologProvider tests levels and names handed out by the provider
func TestZerologProvider(t *testing.T) {
	var buf bytes.Buffer
	provider := NewZerologProvider(&buf, LevelWarn)

	provider.GetLoggerWithName("linear.perceptron").Info("quiet")
	if buf.Len() != 0 {
		t.Fatalf("Info should be filtered at Warn level, got %q", buf.String())
	}

	provider.SetLevel(LevelInfo)
	provider.GetLoggerWithName("linear.perceptron").Info("loud")
	if !strings.Contains(buf.String(), `"ml.component":"linear.perceptron"`) {
		t.Errorf("component name missing: %q", buf.String())
	}

	var other bytes.Buffer
	provider.SetOutput(&other)
	provider.GetLogger().Info("redirected")
	if !strings.Contains(other.String(), "redirected") {
		t.Error("SetOutput should redirect subsequent loggers")
	}
}

// TestWarningsRouteThroughLogger tests that errors.Warn reaches the default provider
func TestWarningsRouteThroughLogger(t *testing.T) {
	provider, _ := NewTestLoggerProvider(LevelDebug)
	SetProvider(provider)
	defer SetProvider(NewZerologProvider(&bytes.Buffer{}, LevelWarn))

	nerrors.Warn(nerrors.NewConvergenceWarning("Adaline", 10, "cost increased"))

	logger := provider.GetLogger().(*TestLogger)
	if !logger.ContainsMessage("cost increased") {
		t.Error("warning message not routed to logger")
	}
	if !logger.ContainsField(ComponentKey, "warnings") {
		t.Error("warning should be logged by the 'warnings' component")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"info", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestConcurrentLogging tests thread safety of TestLogger
func TestConcurrentLogging(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)

	numGoroutines := 4
	messagesPerGoroutine := 5
	done := make(chan bool, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer func() { done <- true }()
			for j := 0; j < messagesPerGoroutine; j++ {
				testLogger.Info(fmt.Sprintf("goroutine %d message %d", id, j), "goroutine_id", id)
			}
		}(i)
	}
	for i := 0; i < numGoroutines; i++ {
		<-done
	}

	entries, err := testLogger.GetLogEntries()
	if err != nil {
		t.Fatalf("Failed to parse log entries: %v", err)
	}
	if len(entries) != numGoroutines*messagesPerGoroutine {
		t.Errorf("Expected %d log entries, got %d", numGoroutines*messagesPerGoroutine, len(entries))
	}
}

// BenchmarkZerologLogger benchmarks the per-iteration logging path
func BenchmarkZerologLogger(b *testing.B) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelInfo).With(ModelNameKey, "Adaline")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("iteration", IterationKey, i, LossKey, 0.5)
		buf.Reset()
	}
}

// TestTestLoggerDerivedShareBuffer checks that a model's component logger and
// the caller's logger write into one buffer, and errors are kept as messages.
func TestTestLoggerDerivedShareBuffer(t *testing.T) {
	root, _ := NewTestLogger(LevelDebug)
	model := root.With(ComponentKey, "linear.perceptron", ModelNameKey, "Perceptron")

	model.Debug("epoch", EpochKey, 0, MistakesKey, 2)
	model.Error("fit did not converge", fmt.Errorf("did not converge within 5 epochs"),
		ErrorCodeKey, ErrorConvergence)
	root.Info("unrelated")

	if got := root.CountMessages("epoch"); got != 1 {
		t.Errorf("CountMessages(epoch) = %d, want 1", got)
	}
	if !root.ContainsField(ComponentKey, "linear.perceptron") {
		t.Error("derived logger fields missing from shared buffer")
	}
	if !root.ContainsField("error", "did not converge within 5 epochs") {
		t.Error("error should be stored as its message")
	}

	entries, err := root.GetLogEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if _, ok := entries[2][ModelNameKey]; ok {
		t.Error("root logger must not inherit the derived logger's fields")
	}

	root.Clear()
	if root.CountMessages("epoch") != 0 {
		t.Error("Clear should drop entries of derived loggers too")
	}
}
