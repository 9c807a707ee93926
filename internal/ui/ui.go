// Package ui renders elements and diagnostics for the command line.
package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/periodic/internal/ansi"
	"github.com/papapumpkin/periodic/internal/catalog"
)

// Printer writes results to out and diagnostics to errOut.
type Printer struct {
	out     io.Writer
	errOut  io.Writer
	paint   ansi.Painter
	labels  Labeler
	verbose bool
}

// New returns a Printer. labels may be nil for English output.
func New(out, errOut io.Writer, color bool, labels Labeler) *Printer {
	return &Printer{
		out:    out,
		errOut: errOut,
		paint:  ansi.Painter{Enabled: color},
		labels: labels,
	}
}

// SetVerbose enables Verbose output.
func (p *Printer) SetVerbose(v bool) {
	p.verbose = v
}

func (p *Printer) Banner() {
	title := Label(p.labels, "welcome")
	rule := strings.Repeat("═", lipgloss.Width(title)+4)
	fmt.Fprintln(p.errOut, p.paint.Paint("  ╔"+rule+"╗", ansi.Bold, ansi.Cyan))
	fmt.Fprintln(p.errOut, p.paint.Paint("  ║  ", ansi.Bold, ansi.Cyan)+p.paint.Paint(title, ansi.Bold)+p.paint.Paint("  ║", ansi.Bold, ansi.Cyan))
	fmt.Fprintln(p.errOut, p.paint.Paint("  ╚"+rule+"╝", ansi.Bold, ansi.Cyan))
	fmt.Fprintln(p.errOut)
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.errOut, "%s%s\n", p.paint.Paint("error: ", ansi.Red, ansi.Bold), msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.errOut, p.paint.Paint(msg, ansi.Dim))
}

// Verbose prints msg only when verbose output is enabled.
func (p *Printer) Verbose(format string, args ...any) {
	if !p.verbose {
		return
	}
	p.Info(fmt.Sprintf(format, args...))
}

// EmptyQuery warns that nothing was entered.
func (p *Printer) EmptyQuery() {
	fmt.Fprintln(p.errOut, p.paint.Paint("⚠ "+Label(p.labels, "empty_query"), ansi.Yellow, ansi.Bold))
}

// NotFound reports a failed lookup followed by the usual hints.
func (p *Printer) NotFound(query string) {
	fmt.Fprintln(p.errOut, p.paint.Paint("✗ "+NotFound(p.labels, query), ansi.Red, ansi.Bold))
	for _, h := range Hints(p.labels) {
		fmt.Fprintf(p.errOut, "  %s %s\n", p.paint.Paint("•", ansi.Dim), h)
	}
}

// Element prints the requested pages for el.
func (p *Printer) Element(el catalog.Element, localized string, which []string) {
	for i, page := range Pages(el, localized, p.labels, which) {
		if i > 0 {
			fmt.Fprintln(p.out)
		}
		p.page(page)
	}
}

func (p *Printer) page(page Page) {
	fmt.Fprintln(p.out, p.paint.Paint("── "+page.Title+" ──", ansi.Bold, ansi.Magenta))
	width := 0
	for _, r := range page.Rows {
		width = max(width, lipgloss.Width(r.Label))
	}
	for _, r := range page.Rows {
		label := padRight(r.Label, width)
		value := r.Value
		if value == string(catalog.NotAvailable) {
			value = p.paint.Paint(value, ansi.Dim)
		}
		fmt.Fprintf(p.out, "  %s  %s\n", p.paint.Paint(label, ansi.Cyan), value)
	}
}

// Elements prints one line per element: number, symbol, English name and
// localized name. localize may be nil.
func (p *Printer) Elements(els []catalog.Element, localize func(catalog.Element) string) {
	nameWidth := 0
	for _, el := range els {
		nameWidth = max(nameWidth, lipgloss.Width(el.Name))
	}
	for _, el := range els {
		line := fmt.Sprintf("%3d  %s  %s",
			el.Number,
			p.paint.Paint(padRight(el.Symbol, 2), ansi.Bold),
			padRight(el.Name, nameWidth))
		if localize != nil {
			line += "  " + localize(el)
		}
		fmt.Fprintln(p.out, strings.TrimRight(line, " "))
	}
}

// Count prints a dimmed result count to errOut.
func (p *Printer) Count(n int) {
	p.Info(strconv.Itoa(n) + " element(s)")
}

// Check prints one ✓/✗ line of a validation report.
func (p *Printer) Check(ok bool, name, detail string) {
	mark := p.paint.Paint("✓", ansi.Green, ansi.Bold)
	if !ok {
		mark = p.paint.Paint("✗", ansi.Red, ansi.Bold)
	}
	if detail == "" {
		fmt.Fprintf(p.out, "%s %s\n", mark, name)
		return
	}
	fmt.Fprintf(p.out, "%s %s %s\n", mark, name, p.paint.Paint("("+detail+")", ansi.Dim))
}

// padRight pads s with spaces to the given display width. CJK runes count
// as two cells.
func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
