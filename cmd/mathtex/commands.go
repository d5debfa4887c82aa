package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/shibukawa/mathtex"
)

// RenderCmd represents the render command
type RenderCmd struct {
	Expression string `arg:"" help:"Expression to convert"`
	Wrap       string `help:"Wrap output in math-mode delimiters (none, inline, display)"`
}

// Run executes the render command
func (cmd *RenderCmd) Run(ctx *Context) error {
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return err
	}

	wrap := config.Wrap
	if cmd.Wrap != "" {
		wrap = cmd.Wrap
	}

	if ctx.Verbose {
		color.Blue("Converting %q", cmd.Expression)
	}

	markup, err := mathtex.Convert(cmd.Expression)
	if err != nil {
		printDiagnostic(os.Stderr, cmd.Expression, err)
		return fmt.Errorf("%w: %q", ErrExpressionCheck, cmd.Expression)
	}

	wrapped, err := wrapMarkup(markup, wrap)
	if err != nil {
		return err
	}

	fmt.Println(wrapped)

	return nil
}

// CheckCmd represents the check command
type CheckCmd struct {
	Expression string `arg:"" help:"Expression to check"`
}

// Run executes the check command
func (cmd *CheckCmd) Run(ctx *Context) error {
	_, err := mathtex.Convert(cmd.Expression)
	if err != nil {
		printDiagnostic(os.Stderr, cmd.Expression, err)
		return fmt.Errorf("%w: %q", ErrExpressionCheck, cmd.Expression)
	}

	if !ctx.Quiet {
		color.Green("OK")
	}

	return nil
}

// BatchEntry is one named expression in a batch file
type BatchEntry struct {
	Name       string `yaml:"name"`
	Expression string `yaml:"expression"`
}

// BatchCmd represents the batch command
type BatchCmd struct {
	File string `arg:"" help:"YAML file with a list of named expressions" type:"path"`
	Wrap string `help:"Wrap output in math-mode delimiters (none, inline, display)"`
}

// Run executes the batch command. Entries are converted independently; a
// failing entry is reported and the rest still run.
func (cmd *BatchCmd) Run(ctx *Context) error {
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return err
	}

	wrap := config.Wrap
	if cmd.Wrap != "" {
		wrap = cmd.Wrap
	}

	data, err := os.ReadFile(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to read batch file: %w", err)
	}

	var entries []BatchEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse batch file: %w", err)
	}

	failed := 0

	for _, entry := range entries {
		markup, err := mathtex.Convert(entry.Expression)
		if err != nil {
			color.Red("%s: %v", entry.Name, err)

			failed++

			continue
		}

		wrapped, err := wrapMarkup(markup, wrap)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %s\n", entry.Name, wrapped)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d entries", ErrBatchFailed, failed, len(entries))
	}

	if ctx.Verbose {
		color.Green("Converted %d expressions", len(entries))
	}

	return nil
}

// spanError is implemented by parser and formatter errors that can point
// at the offending substring of the input.
type spanError interface {
	error
	Span() (offset, length int, ok bool)
}

// printDiagnostic prints the error message and, when the error carries a
// token span, the input with the offending substring highlighted and a
// caret line underneath. Unlocated errors point at the end of the input.
func printDiagnostic(w io.Writer, expr string, err error) {
	red := color.New(color.FgRed)

	red.Fprintf(w, "%v\n", err)

	offset, length := len(expr), 0

	var sp spanError
	if errors.As(err, &sp) {
		if o, l, ok := sp.Span(); ok && o+l <= len(expr) {
			offset, length = o, l
		}
	}

	if length > 0 {
		fmt.Fprintf(w, "  %s%s%s\n", expr[:offset], red.Sprint(expr[offset:offset+length]), expr[offset+length:])
	} else {
		fmt.Fprintf(w, "  %s\n", expr)
	}

	carets := length
	if carets == 0 {
		carets = 1
	}

	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", offset), red.Sprint(strings.Repeat("^", carets)))
}
