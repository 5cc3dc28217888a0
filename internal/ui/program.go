package ui

import (
	"fmt"
	"io"
	"os"
)

// Printer writes rendered components for one-shot commands, one block per
// call followed by a blank line.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter returns a Printer sized to the terminal. A nil w means stdout.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{out: w, width: GetTerminalWidth()}
}

func (p *Printer) block(rendered string) {
	_, _ = fmt.Fprintf(p.out, "%s\n\n", rendered)
}

// PrintHeader prints the command header box.
func (p *Printer) PrintHeader(h *Header) {
	p.block(h.SetWidth(p.width).Render())
}

// PrintChecklist prints c.
func (p *Printer) PrintChecklist(c *Checklist) {
	p.block(c.SetWidth(p.width).Render())
}

// PrintResult prints the final success, warning or failure box.
func (p *Printer) PrintResult(r *Result) {
	p.block(r.SetWidth(p.width).Render())
}
