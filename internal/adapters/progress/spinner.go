package progress

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/nftdeploy/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SpinnerSink reports deployment stages with a terminal spinner
type SpinnerSink struct {
	mu      sync.Mutex
	out     io.Writer
	spinner *spinner.Spinner
	stages  []stageInfo
	title   cases.Caser
}

type stageInfo struct {
	Stage     usecase.ExecutionStage
	StartTime time.Time
	EndTime   time.Time
}

// NewSpinnerSink creates a new spinner-based progress sink writing to out
func NewSpinnerSink(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerSink{
		out:     out,
		spinner: s,
		title:   cases.Title(language.English),
	}
}

// OnProgress handles progress events
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if n := len(r.stages); n > 0 && r.stages[n-1].Stage != event.Stage {
		r.stages[n-1].EndTime = now
	}
	if n := len(r.stages); n == 0 || r.stages[n-1].Stage != event.Stage {
		r.stages = append(r.stages, stageInfo{Stage: event.Stage, StartTime: now})
	}

	if event.Stage == usecase.StageCompleted {
		r.spinner.Stop()
		return
	}

	r.spinner.Suffix = " " + r.display(event.Message)
	if event.Spinner && !r.spinner.Active() {
		r.spinner.Start()
	}
}

// Info prints an info message
func (r *SpinnerSink) Info(message string) {
	r.printPaused(color.New(color.FgCyan), message)
}

// Error prints an error message
func (r *SpinnerSink) Error(message string) {
	r.printPaused(color.New(color.FgRed), message)
}

// Stop halts the spinner if it is still running
func (r *SpinnerSink) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spinner.Stop()
}

func (r *SpinnerSink) printPaused(c *color.Color, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	c.Fprintln(r.out, message)
	if wasActive {
		r.spinner.Start()
	}
}

// display renders finished stages followed by the current message
func (r *SpinnerSink) display(message string) string {
	var parts []string
	for _, stage := range r.stages {
		name := r.title.String(string(stage.Stage))
		if stage.EndTime.IsZero() {
			parts = append(parts, fmt.Sprintf("● %s", color.New(color.FgYellow).Sprint(name)))
			continue
		}
		took := stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond)
		parts = append(parts, fmt.Sprintf("✓ %s (%s)", color.New(color.FgGreen).Sprint(name), took))
	}
	line := strings.Join(parts, " → ")
	if message != "" {
		line += "  " + message
	}
	return line
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
