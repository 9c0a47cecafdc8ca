package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"go.uber.org/zap"
)

// repl prompts for expressions until EOF or Ctrl-C. Each expression is
// handled as if it were an argument, but its exit code is discarded.
// Line editing and history are only available when the command runs on the
// process terminal; otherwise expressions are read from stdin line by line.
func (a *app) repl() error {
	if !a.terminal() {
		return a.prompt()
	}
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if hist := a.config.historyPath(); hist != "" {
		if f, err := os.Open(hist); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			f, err := os.Create(hist)
			if err != nil {
				a.logger.Warn("Cannot save history", zap.String("file", hist), zap.Error(err))
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	for {
		line, err := ln.Prompt(a.config.Prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(a.stdout)
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		a.process(line)
	}
}

// terminal reports whether the command reads and writes the process terminal,
// which is the only terminal liner can drive.
func (a *app) terminal() bool {
	return a.stdin == os.Stdin && a.stdout == os.Stdout &&
		(isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()))
}

// prompt is repl without line editing.
func (a *app) prompt() error {
	scanner := bufio.NewScanner(a.stdin)
	for {
		fmt.Fprint(a.stdout, a.config.Prompt)
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		a.process(line)
	}
	fmt.Fprintln(a.stdout)
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
