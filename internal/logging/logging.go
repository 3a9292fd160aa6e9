package logger

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// CommandOutput controls how much a command prints.
type CommandOutput int

const (
	// OutputNormal is the default output level.
	OutputNormal CommandOutput = iota
	// OutputVerbose shows extra progress detail.
	OutputVerbose
	// OutputQuiet suppresses all non-error output.
	OutputQuiet
)

// OutputFromFlags returns the preferred command output for the given flags.
// Quiet takes precedence over verbose.
func OutputFromFlags(quiet, verbose bool) CommandOutput {
	if quiet {
		return OutputQuiet
	}
	if verbose {
		return OutputVerbose
	}
	return OutputNormal
}

func (c CommandOutput) String() string {
	switch c {
	case OutputVerbose:
		return "verbose"
	case OutputQuiet:
		return "quiet"
	default:
		return "normal"
	}
}

type Logger struct {
	Output CommandOutput
	Debug  bool
}

func (l Logger) Infof(msg string, args ...any) {
	if l.Output == OutputVerbose {
		fmt.Fprintf(os.Stdout, color.GreenString("[info] ")+msg+"\n", args...)
	}
}

func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		fmt.Fprintf(os.Stdout, color.CyanString("[debug] ")+msg+"\n", args...)
	}
}

func (l Logger) Warnf(msg string, args ...any) {
	if l.Output != OutputQuiet {
		fmt.Fprintf(os.Stderr, color.YellowString("[warn] ")+msg+"\n", args...)
	}
}

// WarnfAlways prints a warning even in quiet mode.
func (l Logger) WarnfAlways(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, color.YellowString("[warn] ")+msg+"\n", args...)
}

func (l Logger) Errorf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, color.RedString("[error] ")+msg+"\n", args...)
}

// ErrorfAndReturn logs the error and returns it so callers can propagate it.
func (l Logger) ErrorfAndReturn(msg string, args ...any) error {
	err := fmt.Errorf(msg, args...)
	l.Errorf("%v", err)
	return err
}
