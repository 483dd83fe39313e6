// Package ui provides console output components for the pdf-text CLI.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Console writes the program's human-readable output.
type Console struct {
	out    io.Writer
	header *color.Color
	fail   *color.Color
}

// NewConsole creates a console writing to out. Colour is also suppressed
// automatically when stdout is not a terminal.
func NewConsole(out io.Writer, noColor bool) *Console {
	c := &Console{
		out:    out,
		header: color.New(color.FgCyan, color.Bold),
		fail:   color.New(color.FgRed),
	}
	if noColor {
		c.header.DisableColor()
		c.fail.DisableColor()
	}
	return c
}

// Header prints a highlighted line.
func (c *Console) Header(msg string) {
	c.header.Fprintln(c.out, msg)
}

// Failure prints a line in the failure colour.
func (c *Console) Failure(msg string) {
	c.fail.Fprintln(c.out, msg)
}

// Println prints plain text followed by a newline.
func (c *Console) Println(text string) {
	fmt.Fprintln(c.out, text)
}
