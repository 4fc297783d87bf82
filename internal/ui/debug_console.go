package ui

import (
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// DebugConsole is the scrollable output area at the bottom of the window.
// It implements io.Writer so the application logger can be redirected into
// it. Writes may come from install goroutines, so widget updates are
// marshalled onto the UI thread.
type DebugConsole struct {
	mu     sync.Mutex
	lines  []string
	label  *widget.Label
	scroll *container.Scroll
}

// NewDebugConsole creates the console widget
func NewDebugConsole() *DebugConsole {
	label := widget.NewLabel("")
	label.Wrapping = fyne.TextWrapWord
	label.TextStyle = fyne.TextStyle{Monospace: true}

	scroll := container.NewVScroll(label)
	scroll.SetMinSize(fyne.NewSize(0, ConsoleMinHeight))

	return &DebugConsole{
		label:  label,
		scroll: scroll,
	}
}

// Container returns the scrollable console container
func (dc *DebugConsole) Container() fyne.CanvasObject {
	return dc.scroll
}

// Write appends log output to the console. Part of io.Writer.
func (dc *DebugConsole) Write(p []byte) (int, error) {
	dc.Append(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// Append adds a line to the console, trimming history past ConsoleMaxLines
func (dc *DebugConsole) Append(line string) {
	if line == "" {
		return
	}

	dc.mu.Lock()
	dc.lines = append(dc.lines, line)
	if len(dc.lines) > ConsoleMaxLines {
		dc.lines = dc.lines[len(dc.lines)-ConsoleMaxLines:]
	}
	text := strings.Join(dc.lines, "\n")
	dc.mu.Unlock()

	fyne.Do(func() {
		dc.label.SetText(text)
		dc.scroll.ScrollToBottom()
	})
}

// Clear empties the console
func (dc *DebugConsole) Clear() {
	dc.mu.Lock()
	dc.lines = nil
	dc.mu.Unlock()

	fyne.Do(func() {
		dc.label.SetText("")
	})
}

// Text returns the current console contents
func (dc *DebugConsole) Text() string {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return strings.Join(dc.lines, "\n")
}
