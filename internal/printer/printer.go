// Package printer renders a code fragment stream into source text.
package printer

import (
	"strings"

	"vapor.dev/pkg/vapor/internal/codegen"
)

const indentWith = "  "

type emittedLine struct {
	parts  []string
	indent int
}

// Printer accumulates lines. The zero value is not usable; use New.
type Printer struct {
	lines  []*emittedLine
	indent int
}

// New creates an empty printer.
func New() *Printer {
	return &Printer{lines: []*emittedLine{{}}}
}

func (p *Printer) current() *emittedLine {
	return p.lines[len(p.lines)-1]
}

func (p *Printer) lineIsEmpty() bool {
	return len(p.current().parts) == 0
}

func (p *Printer) print(part string) {
	if part == "" {
		return
	}

	line := p.current()
	line.parts = append(line.parts, part)
}

func (p *Printer) newline() {
	p.lines = append(p.lines, &emittedLine{indent: p.indent})
}

func (p *Printer) incIndent() {
	p.indent++
	if p.lineIsEmpty() {
		p.current().indent = p.indent
	}
}

func (p *Printer) decIndent() {
	if p.indent > 0 {
		p.indent--
	}

	if p.lineIsEmpty() {
		p.current().indent = p.indent
	}
}

// Write feeds fragments to the printer.
func (p *Printer) Write(frags codegen.Fragments) {
	for _, frag := range frags {
		switch f := frag.(type) {
		case codegen.Text:
			p.print(string(f))
		case *codegen.Ident:
			p.print(f.Render())
		case codegen.Marker:
			switch f {
			case codegen.Newline:
				p.newline()
			case codegen.IndentStart:
				p.incIndent()
			case codegen.IndentEnd:
				p.decIndent()
			}
		}
	}
}

// String returns the source text. Leading empty lines are dropped and the
// text ends with a single newline.
func (p *Printer) String() string {
	var b strings.Builder

	started := false

	for _, line := range p.lines {
		if !started && len(line.parts) == 0 {
			continue
		}

		started = true

		if len(line.parts) > 0 {
			b.WriteString(strings.Repeat(indentWith, line.indent))
			b.WriteString(strings.Join(line.parts, ""))
		}

		b.WriteByte('\n')
	}

	return b.String()
}

// Print renders frags to text.
func Print(frags codegen.Fragments) string {
	p := New()
	p.Write(frags)

	return p.String()
}
