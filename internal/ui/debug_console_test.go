package ui

import (
	"fmt"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestDebugConsoleAppend(t *testing.T) {
	_ = test.NewApp()
	dc := NewDebugConsole()

	dc.Append("first line")
	dc.Append("second line")
	dc.Append("") // Ignored

	text := dc.Text()
	if text != "first line\nsecond line" {
		t.Errorf("unexpected console text: %q", text)
	}
}

func TestDebugConsoleWrite(t *testing.T) {
	_ = test.NewApp()
	dc := NewDebugConsole()

	n, err := dc.Write([]byte("hello from logger\n"))
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if n != len("hello from logger\n") {
		t.Errorf("unexpected write count: %d", n)
	}
	if dc.Text() != "hello from logger" {
		t.Errorf("trailing newline should be trimmed: %q", dc.Text())
	}
}

func TestDebugConsoleTrimsHistory(t *testing.T) {
	_ = test.NewApp()
	dc := NewDebugConsole()

	for i := 0; i < ConsoleMaxLines+10; i++ {
		dc.Append(fmt.Sprintf("line %d", i))
	}

	lines := strings.Split(dc.Text(), "\n")
	if len(lines) != ConsoleMaxLines {
		t.Errorf("expected %d lines, got %d", ConsoleMaxLines, len(lines))
	}
	if lines[0] != "line 10" {
		t.Errorf("oldest lines should be dropped, first is %q", lines[0])
	}
}

func TestDebugConsoleClear(t *testing.T) {
	_ = test.NewApp()
	dc := NewDebugConsole()

	dc.Append("something")
	dc.Clear()

	if dc.Text() != "" {
		t.Errorf("expected empty console after clear, got %q", dc.Text())
	}
}
