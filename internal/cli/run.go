package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zephyrtronium/polish"
)

var errNoInput = errors.New("no input expression")

func (a *app) run(cmd *cobra.Command, args []string) error {
	if a.interactive {
		return a.repl()
	}
	for _, arg := range args {
		a.record(a.process(arg))
	}
	if len(args) > 0 && a.inName == "" {
		return nil
	}
	return a.readFrom(a.inName)
}

// record notes the exit code of one expression.
func (a *app) record(code int) {
	if code > a.code {
		a.code = code
	}
}

// readFrom processes each non-blank line of the named file, or of stdin if
// name is empty or "-".
func (a *app) readFrom(name string) error {
	var r io.Reader = a.stdin
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}

	n := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		n++
		a.record(a.process(line))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if n == 0 {
		a.print.error(errNoInput)
		a.record(ExitInput)
	}
	return nil
}

// process parses, prints, and evaluates one expression and returns its exit
// code.
func (a *app) process(line string) int {
	expr := polish.Normalize(line)
	if expr == "" {
		a.print.error(errNoInput)
		return ExitInput
	}
	a.print.field("expression", expr, notationStyle)

	root, err := polish.Parse(expr, polish.MaxDepth(a.config.MaxDepth))
	if err != nil {
		var ie polish.InputError
		if errors.As(err, &ie) {
			a.logger.Debug("Parse failed",
				zap.String("expression", expr),
				zap.Stringer("kind", ie.Kind()),
				zap.Int("col", ie.Pos()),
			)
			a.print.error(err)
			a.print.caret(expr, ie.Pos())
		} else {
			a.print.error(err)
		}
		return ExitInput
	}

	a.print.field("reverse polish notation", root.Postfix(), notationStyle)
	a.print.field("infix notation", root.Infix(), notationStyle)
	a.print.field("polish notation", root.Prefix(), notationStyle)
	if a.tree {
		a.print.tree(root)
	}

	ctx := polish.NewContext(
		polish.Digits(a.config.Digits),
		polish.Trace(func(r polish.Reduction) {
			a.logger.Debug("Reduced",
				zap.String("op", r.Op),
				zap.String("left", r.Left),
				zap.String("right", r.Right),
				zap.String("result", r.Result),
				zap.Int("col", r.Col),
			)
			if a.tree {
				a.print.step(r)
			}
		}),
	)
	v, ok := ctx.Evaluate(root)
	if !ok {
		a.print.field("calculated expression", root.Infix(), residueStyle)
		return ExitIncomplete
	}
	a.print.field("calculated result", ctx.Format(v), resultStyle)
	return ExitOK
}
