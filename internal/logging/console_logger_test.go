package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/vvka-141/bytecrawl/pkg/bytecrawl"
)

var (
	_ bytecrawl.Logger = (*ConsoleLogger)(nil)
	_ bytecrawl.Logger = (*NullLogger)(nil)
)

func TestConsoleLogger_Verbose_WhenEnabled(t *testing.T) {
	// Capture stderr
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	logger := NewConsoleLogger(true)
	logger.Verbose("test message: %s", "value")

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	output := buf.String()

	expected := "[VERBOSE] test message: value\n"
	if output != expected {
		t.Errorf("Expected %q, got %q", expected, output)
	}
}

func TestConsoleLogger_Verbose_WhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, false)
	logger.Verbose("test message: %s", "value")

	if buf.String() != "" {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}

func TestConsoleLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, false)
	logger.Info("entered %s", "/dungeon")

	expected := "entered /dungeon\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestConsoleLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, false)
	logger.Error("couldn't write stats")

	expected := "[ERROR] couldn't write stats\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestConsoleLogger_NoArgsKeepsPercent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, false)
	logger.Info("100% done")

	if buf.String() != "100% done\n" {
		t.Errorf("Expected literal percent, got %q", buf.String())
	}
}

func TestConsoleLogger_WithTag(t *testing.T) {
	var buf bytes.Buffer
	base := NewWriterLogger(&buf, true)
	tagged := base.WithTag("1a2b3c4d")

	tagged.Verbose("dispatch %s", "ls")
	tagged.Error("boom")
	base.Info("untagged")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "[VERBOSE] [1a2b3c4d] dispatch ls" {
		t.Errorf("unexpected verbose line %q", lines[0])
	}
	if lines[1] != "[ERROR] [1a2b3c4d] boom" {
		t.Errorf("unexpected error line %q", lines[1])
	}
	if lines[2] != "untagged" {
		t.Errorf("unexpected info line %q", lines[2])
	}
}

func TestConsoleLogger_ConcurrentSafety(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, true)
	tagged := logger.WithTag("s")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				logger.Verbose("goroutine %d message %d", id, j)
				tagged.Info("goroutine %d message %d", id, j)
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 200 {
		t.Errorf("Expected 200 lines, got %d", len(lines))
	}
}

func TestNullLogger_DiscardsAllMessages(t *testing.T) {
	logger := NewNullLogger()
	logger.Verbose("discarded")
	logger.Info("discarded")
	logger.Error("discarded")
}

func TestNullLogger_ConcurrentSafety(t *testing.T) {
	logger := NewNullLogger()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("goroutine %d", id)
		}(i)
	}
	wg.Wait()
}

// BenchmarkConsoleLogger_Verbose measures performance of verbose logging
func BenchmarkConsoleLogger_Verbose(b *testing.B) {
	logger := NewWriterLogger(io.Discard, true)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Verbose("benchmark message %d", i)
	}
}

// BenchmarkConsoleLogger_VerboseDisabled measures performance when verbose is disabled
func BenchmarkConsoleLogger_VerboseDisabled(b *testing.B) {
	logger := NewWriterLogger(io.Discard, false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Verbose("benchmark message %d", i)
	}
}

func ExampleConsoleLogger() {
	logger := NewWriterLogger(os.Stdout, true).WithTag("game")
	logger.Info("Entering the dungeon")
	logger.Verbose("cwd is %s", "/dungeon")
	logger.Error("Couldn't write stats to file.")
	// Output:
	// [game] Entering the dungeon
	// [VERBOSE] [game] cwd is /dungeon
	// [ERROR] [game] Couldn't write stats to file.
}

func ExampleNullLogger() {
	logger := NewNullLogger()
	logger.Info("This message is discarded")
	logger.Verbose("This too")
	logger.Error("And this")
	fmt.Println("Done")
	// Output:
	// Done
}
