package eval

import (
	"fmt"
	"io"
	"sync"
)

// Reporter receives plain-text progress and summary lines.
type Reporter interface {
	Line(s string)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(s string)

// Line calls f(s).
func (f ReporterFunc) Line(s string) { f(s) }

// TextReporter writes each line to an io.Writer. Safe for concurrent use.
type TextReporter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTextReporter returns a reporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// Line writes s followed by a newline. Write errors are dropped.
func (r *TextReporter) Line(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintln(r.w, s)
}

type nopReporter struct{}

func (nopReporter) Line(string) {}

// FoldLine formats the progress line for one fold.
func FoldLine(f FoldResult, folds int) string {
	return fmt.Sprintf("fold %d/%d: accuracy=%.4f (%d/%d)", f.Fold+1, folds, f.Accuracy, f.Correct, f.TestRows)
}

// SummaryLine formats the final line of a run.
func SummaryLine(r *Result) string {
	return fmt.Sprintf("mean accuracy=%.4f stddev=%.4f over %d folds", r.Mean, r.StdDev, len(r.Folds))
}
