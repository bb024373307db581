package planner

import (
	"fmt"
	"strings"
)

// Printer accumulates a nested plan label. Child labels go on their own
// line, indented two spaces per nesting level.
type Printer struct {
	b     strings.Builder
	depth int
}

// Printf appends formatted text at the current position.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(&p.b, format, args...)
}

// Child prints pln's label one level deeper.
func (p *Printer) Child(pln Plan) {
	p.depth++
	p.b.WriteByte('\n')
	p.b.WriteString(strings.Repeat("  ", p.depth))
	pln.Print(p)
	p.depth--
}

// String returns the accumulated label.
func (p *Printer) String() string {
	return p.b.String()
}

// Label returns the complete label of pln.
func Label(pln Plan) string {
	var p Printer
	pln.Print(&p)

	return p.String()
}
