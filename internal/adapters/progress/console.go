package progress

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/forknet/internal/usecase"
)

// ConsoleSink prints progress to a terminal stream. Spinner events animate
// until the next non-spinner event. Safe for concurrent use.
type ConsoleSink struct {
	mu      sync.Mutex
	out     io.Writer
	spinner *spinner.Spinner
}

// NewConsoleSink creates a progress sink writing to out
func NewConsoleSink(out io.Writer) *ConsoleSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &ConsoleSink{
		out:     out,
		spinner: s,
	}
}

// OnProgress handles progress events
func (c *ConsoleSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if event.Spinner {
		c.spinner.Suffix = " " + event.Message
		if !c.spinner.Active() {
			c.spinner.Start()
		}
		return
	}

	if c.spinner.Active() {
		c.spinner.Stop()
	}
	if event.Message == "" {
		return
	}

	switch event.Stage {
	case "ready":
		color.New(color.FgGreen).Fprintf(c.out, "✅ %s\n", event.Message)
	default:
		color.New(color.FgCyan).Fprintf(c.out, "🔨 %s\n", event.Message)
	}
}

// Info prints an info message
func (c *ConsoleSink) Info(message string) {
	c.print(color.New(color.FgCyan), message)
}

// Error prints an error message
func (c *ConsoleSink) Error(message string) {
	c.print(color.New(color.FgRed), message)
}

func (c *ConsoleSink) print(col *color.Color, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Stop spinner temporarily
	wasActive := c.spinner.Active()
	if wasActive {
		c.spinner.Stop()
	}

	col.Fprintln(c.out, message)

	if wasActive {
		c.spinner.Start()
	}
}

// Ensure ConsoleSink implements ProgressSink
var _ usecase.ProgressSink = (*ConsoleSink)(nil)
