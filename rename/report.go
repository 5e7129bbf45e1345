package rename

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

type (
	// Reporter prints one line per rename decision.
	// Tags are coloured only when the destination is a terminal.
	Reporter struct {
		w    io.Writer
		ok   lipgloss.Style
		skip lipgloss.Style
		fail lipgloss.Style
	}
)

var palette = struct {
	green  lipgloss.Color
	yellow lipgloss.Color
	red    lipgloss.Color
}{
	green:  lipgloss.Color("42"),
	yellow: lipgloss.Color("184"),
	red:    lipgloss.Color("196"),
}

func NewReporter(w io.Writer) *Reporter {
	renderer := lipgloss.NewRenderer(w)

	return &Reporter{
		w:    w,
		ok:   renderer.NewStyle().Foreground(palette.green),
		skip: renderer.NewStyle().Foreground(palette.yellow),
		fail: renderer.NewStyle().Foreground(palette.red),
	}
}

func (p *Reporter) Banner(root string) {
	_, _ = fmt.Fprintf(p.w, "Scanning directory: %s...\n\n", root)
}

// Outcome prints nothing for files no rule matched.
func (p *Reporter) Outcome(o Outcome) {
	switch o.Kind {
	case Renamed:
		_, _ = fmt.Fprintf(p.w, "%s Renamed: %s -> %s\n", p.ok.Render("[OK]"), o.Entry.Name, o.NewName)
	case SkippedExists:
		_, _ = fmt.Fprintf(p.w, "%s Cannot rename '%s' -> '%s' (Target exists)\n", p.skip.Render("[SKIP]"), o.Entry.Name, o.NewName)
	case Failed:
		cause := o.Cause
		if cause == nil {
			cause = o.Err
		}

		_, _ = fmt.Fprintf(p.w, "%s Could not rename %s: %s\n", p.fail.Render("[ERROR]"), o.Entry.Name, cause)
	case NoMatch:
	}
}

func (p *Reporter) Summary(s Summary) {
	_, _ = fmt.Fprintf(p.w, "\nCompleted! Total files renamed: %d\n", s.Renamed)
}
