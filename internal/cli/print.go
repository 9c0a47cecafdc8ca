package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/zephyrtronium/polish"
)

var (
	labelStyle    = color.New(color.FgCyan, color.Bold)
	notationStyle = color.New(color.FgBlue)
	resultStyle   = color.New(color.FgGreen, color.Bold)
	residueStyle  = color.New(color.FgYellow, color.Bold)
	errorStyle    = color.New(color.FgRed, color.Bold)
)

// printer writes the report for each expression.
type printer struct {
	out   io.Writer
	err   io.Writer
	color bool
}

// paint styles s if color is enabled.
func (p *printer) paint(style *color.Color, s string) string {
	if !p.color {
		return s
	}
	return style.Sprint(s)
}

// field writes one labelled line of the report.
func (p *printer) field(label, value string, style *color.Color) {
	fmt.Fprintf(p.out, "%s %s\n", p.paint(labelStyle, label+":"), p.paint(style, value))
}

// error writes an error message to the error stream.
func (p *printer) error(err error) {
	fmt.Fprintln(p.err, p.paint(errorStyle, err.Error()))
}

// caret points at a byte position in an expression on the error stream.
func (p *printer) caret(expr string, pos int) {
	if pos < 1 || pos > len(expr)+1 {
		return
	}
	col := utf8.RuneCountInString(expr[:pos-1])
	fmt.Fprintf(p.err, "  %s\n  %s%s\n", expr, strings.Repeat(" ", col), p.paint(errorStyle, "^"))
}

// tree draws the tree rooted at n, one node per line, with each operand
// indented under its operator.
func (p *printer) tree(n *polish.Node) {
	fmt.Fprintln(p.out, p.paint(labelStyle, "expression tree:"))
	depth := 1
	n.Walk(
		func(m *polish.Node) {
			fmt.Fprintf(p.out, "%s%s\n", strings.Repeat("  ", depth), p.paint(notationStyle, m.Text()))
			depth++
		},
		nil,
		func(*polish.Node) { depth-- },
	)
}

// step writes one reduction made while calculating.
func (p *printer) step(r polish.Reduction) {
	p.field("calculation step", fmt.Sprintf("%s %s %s -> %s", r.Left, r.Op, r.Right, r.Result), notationStyle)
}
