// Package cli implements the polish command.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zephyrtronium/polish"
)

// Exit codes returned by Execute.
const (
	// ExitOK means every expression reduced to a number.
	ExitOK = 0
	// ExitInput means missing input, a parse error, or a usage error.
	ExitInput = 1
	// ExitIncomplete means an expression parsed but did not reduce to a
	// number.
	ExitIncomplete = 2
)

// app is the state of one run of the command.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// flags
	cfgFile     string
	inName      string
	interactive bool
	tree        bool
	verbose     bool
	noColor     bool
	digits      int
	maxDepth    int

	config Config
	logger *zap.Logger
	print  *printer
	// code is the largest exit code of any expression so far.
	code int
}

// Execute runs the polish command with the given arguments, not including the
// program name, and returns the exit code. It never exits the process.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: zap.NewNop(),
	}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.Execute()
	_ = a.logger.Sync()
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return ExitInput
	}
	return a.code
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "polish [expressions...]",
		Short: "polish - split infix expressions into trees and evaluate them",
		Long: `polish parses each infix expression into a binary tree, prints the tree in
reverse Polish, infix, and Polish notation, and then calculates it.

Expressions come from the arguments, from the file named by --in, or from
standard input one per line. Operators are = + - * /, grouped with ( ).
Whitespace is ignored. Terms that are not numbers are kept as symbols, and
the part of the expression that could not be calculated is printed instead
of a result.

Exit status is 0 if every expression was calculated, 1 on missing input or
a malformed expression, and 2 if an expression could not be fully calculated.`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.run,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default "+DefaultConfigFile+" if it exists)")
	pf.IntVar(&a.digits, "digits", polish.DefaultDigits, "significant digits in results, or negative for the shortest exact form")
	pf.IntVar(&a.maxDepth, "max-depth", 0, "maximum depth of expression trees, or 0 for no limit")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log parse failures and each calculation step")

	f := root.Flags()
	f.StringVar(&a.inName, "in", "", "read expressions from a file, one per line (- for stdin)")
	f.BoolVarP(&a.interactive, "interactive", "i", false, "prompt for expressions with line editing")
	f.BoolVar(&a.tree, "tree", false, "draw each expression tree and show every calculation step")

	root.AddCommand(a.initCmd())
	return root
}

// setup loads the configuration, applies flags over it, and creates the
// logger and printer.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.verbose {
		a.logger = newLogger(a.stderr)
	}
	config, err := LoadConfig(a.cfgFile)
	if err != nil {
		a.logger.Error("Failed to load configuration", zap.String("file", a.cfgFile), zap.Error(err))
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("digits") {
		config.Digits = a.digits
	}
	if flags.Changed("max-depth") {
		config.MaxDepth = a.maxDepth
	}
	if a.noColor {
		config.Color = false
	}
	a.config = config
	a.print = &printer{out: a.stdout, err: a.stderr, color: config.Color}
	a.logger.Debug("Configured",
		zap.String("file", a.cfgFile),
		zap.Int("digits", config.Digits),
		zap.Int("max_depth", config.MaxDepth),
		zap.Bool("color", config.Color),
	)
	return nil
}

// newLogger creates a development logger writing to w.
func newLogger(w io.Writer) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}
