package render

import (
	"fmt"
	"io"
)

// Sink receives each report's title followed by its ordered rows. Sinks are
// presentation only and never influence report computation.
type Sink interface {
	Title(name string)
	Row(line string)
}

// Console writes titled report sections to an io.Writer.
type Console struct {
	w io.Writer
}

// NewConsole builds a console sink targeting w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Title(name string) {
	fmt.Fprintf(c.w, "=== %s ===\n", name)
}

func (c *Console) Row(line string) {
	fmt.Fprintln(c.w, line)
}
