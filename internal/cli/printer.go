package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/mesh-intelligence/catalog/pkg/types"
)

// Printer renders command output, coloured when writing to a terminal.
type Printer struct {
	out     io.Writer
	success *color.Color
	info    *color.Color
	faint   *color.Color
	error   *color.Color
}

// NewPrinter constructs a Printer with colour enabled only when w is a TTY
// and NO_COLOR is unset.
func NewPrinter(w io.Writer) *Printer {
	p := &Printer{
		out:     w,
		success: color.New(color.FgGreen, color.Bold),
		info:    color.New(color.FgBlue, color.Bold),
		faint:   color.New(color.Faint),
		error:   color.New(color.FgRed, color.Bold),
	}

	if supportsColor(w) && os.Getenv("NO_COLOR") == "" {
		p.success.EnableColor()
		p.info.EnableColor()
		p.faint.EnableColor()
		p.error.EnableColor()
	} else {
		p.success.DisableColor()
		p.info.DisableColor()
		p.faint.DisableColor()
		p.error.DisableColor()
	}

	return p
}

func supportsColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// JSON writes v as indented JSON.
func (p *Printer) JSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(p.out, string(data))
	return err
}

// Item writes one item as a single line: id, completion box, name.
func (p *Printer) Item(item types.Item) {
	box := p.faint.Sprint("[ ]")
	if item.IsComplete {
		box = p.success.Sprint("[x]")
	}
	fmt.Fprintf(p.out, "%s %s %s\n", p.info.Sprintf("%4d", item.ID), box, item.Name)
}

// Items writes items one per line, or a note when there are none.
func (p *Printer) Items(items []types.Item) {
	if len(items) == 0 {
		p.faint.Fprintln(p.out, "no items")
		return
	}
	for _, item := range items {
		p.Item(item)
	}
}

// Success writes a confirmation line.
func (p *Printer) Success(format string, args ...any) {
	p.success.Fprintf(p.out, format+"\n", args...)
}

// Error writes err prefixed with "error:".
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.out, "%s %v\n", p.error.Sprint("error:"), err)
}
