package seed

import (
	"io"

	"github.com/fatih/color"
)

// Reporter prints human-readable progress lines
type Reporter struct {
	w       io.Writer
	heading *color.Color
	success *color.Color
	warning *color.Color
}

// NewReporter returns a Reporter writing to w. Colors are only emitted when colored is set.
func NewReporter(w io.Writer, colored bool) *Reporter {
	r := &Reporter{
		w:       w,
		heading: color.New(color.FgCyan, color.Bold),
		success: color.New(color.FgGreen),
		warning: color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{r.heading, r.success, r.warning} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Heading announces a stage
func (r *Reporter) Heading(format string, args ...interface{}) {
	r.heading.Fprintf(r.w, format+"\n", args...)
}

// Success reports a stage result
func (r *Reporter) Success(format string, args ...interface{}) {
	r.success.Fprintf(r.w, format+"\n", args...)
}

// Warning reports a skipped step
func (r *Reporter) Warning(format string, args ...interface{}) {
	r.warning.Fprintf(r.w, format+"\n", args...)
}
