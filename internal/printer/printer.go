package printer

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	// Color definitions
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

// Printer writes user-facing CLI output. Messages go to out, errors to errOut.
// Colors follow color.NoColor, which honors NO_COLOR and non-TTY output.
type Printer struct {
	out    io.Writer
	errOut io.Writer
}

// New returns a Printer writing to out and errOut. Nil writers default to
// os.Stdout and os.Stderr.
func New(out, errOut io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Printer{out: out, errOut: errOut}
}

// Success prints a success message in green with a checkmark prefix
func (p *Printer) Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		green.Fprintf(p.out, "✓ %s", msg)
	} else {
		green.Fprint(p.out, msg)
	}
}

// Info prints an informational message in the default color
func (p *Printer) Info(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Warning prints a warning message in yellow with a warning emoji prefix
func (p *Printer) Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠️") {
		yellow.Fprintf(p.out, "⚠️  %s", msg)
	} else {
		yellow.Fprint(p.out, msg)
	}
}

// Step prints a step message with emphasis
func (p *Printer) Step(format string, a ...any) {
	cyan.Fprintf(p.out, "→ %s", fmt.Sprintf(format, a...))
}

// Println prints a plain message
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// Error prints a formatted error with title, explanation and suggestions to errOut
// and returns a simple error for Cobra
func (p *Printer) Error(title string, explanation string, suggestions []string) error {
	return p.ErrorWithContext(title, explanation, nil, suggestions)
}

// ErrorWithContext is Error with key/value context details, printed in key order.
func (p *Printer) ErrorWithContext(title string, explanation string, context map[string]string, suggestions []string) error {
	red.Fprintf(p.errOut, "%s\n\n", title)

	if explanation != "" {
		fmt.Fprintf(p.errOut, "%s\n", explanation)
	}

	if len(context) > 0 {
		fmt.Fprintf(p.errOut, "\n")
		keys := make([]string, 0, len(context))
		for k := range context {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(p.errOut, "  %s: %s\n", k, context[k])
		}
	}

	if len(suggestions) > 0 {
		fmt.Fprintf(p.errOut, "\n")
		if len(suggestions) == 1 {
			fmt.Fprintf(p.errOut, "%s\n", suggestions[0])
		} else {
			fmt.Fprintf(p.errOut, "Either:\n")
			for i, suggestion := range suggestions {
				fmt.Fprintf(p.errOut, "  %d. %s\n", i+1, suggestion)
			}
		}
	}

	// Return simple error for Cobra (won't be printed due to SilenceErrors)
	return fmt.Errorf("%s", title)
}

// ProgressMarks is the width of the progress bar; each mark is 10% of the run.
const ProgressMarks = 10

// Progress is a ten-mark progress bar:
//
//	Progress: |==========|
//	           ^^^^^^^^^^   Total Time: 42 ms
//
// Tick is safe for concurrent use.
type Progress struct {
	mu     sync.Mutex
	w      io.Writer
	total  int
	ticks  int
	marks  int
	start  time.Time
	closed bool
}

// Progress prints the bar header and returns a bar for total ticks.
func (p *Printer) Progress(total int) *Progress {
	fmt.Fprintf(p.out, "Progress: |%s|\n", strings.Repeat("=", ProgressMarks))
	fmt.Fprint(p.out, strings.Repeat(" ", len("Progress: |")))
	return &Progress{w: p.out, total: total, start: time.Now()}
}

// Tick records one unit of work and prints marks as 10% boundaries are crossed.
func (pr *Progress) Tick() {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	if pr.closed || pr.total <= 0 {
		return
	}
	pr.ticks++
	want := pr.ticks * ProgressMarks / pr.total
	for pr.marks < want && pr.marks < ProgressMarks {
		cyan.Fprint(pr.w, "^")
		pr.marks++
	}
}

// Done ends the bar and prints the elapsed time. Further ticks are ignored.
func (pr *Progress) Done() time.Duration {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	elapsed := time.Since(pr.start)
	if !pr.closed {
		fmt.Fprintf(pr.w, "   Total Time: %d ms\n", elapsed.Milliseconds())
		pr.closed = true
	}
	return elapsed
}
