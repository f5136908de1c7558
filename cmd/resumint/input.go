package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jonathan/resumint/internal/observability"
	"github.com/jonathan/resumint/internal/revision"
)

// Prompter collects interactive input. Commands depend on the interface so
// they can be driven by scripted input in tests.
type Prompter interface {
	// Input reads a single line.
	Input(message string) (string, error)
	// MultiLine reads lines until one containing only ".".
	MultiLine(message string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(message string, defaultYes bool) (bool, error)
	// Select picks one choice by number; blank input picks the default.
	Select(message string, choices []string, defaultChoice string) (string, error)
	// MultiSelect picks a subset by comma-separated numbers; blank input
	// selects everything.
	MultiSelect(message string, choices []string) ([]string, error)
}

// TerminalPrompter reads prompts from an input stream, normally stdin.
type TerminalPrompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewTerminalPrompter creates a prompter over the given streams.
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	return &TerminalPrompter{in: scanner, out: out}
}

func (t *TerminalPrompter) readLine() (string, error) {
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return t.in.Text(), nil
}

// Input reads a single line.
func (t *TerminalPrompter) Input(message string) (string, error) {
	fmt.Fprintf(t.out, "%s ", message)
	return t.readLine()
}

// MultiLine reads lines until one containing only ".".
func (t *TerminalPrompter) MultiLine(message string) (string, error) {
	fmt.Fprintln(t.out, message)
	var lines []string
	for {
		line, err := t.readLine()
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", err
		}
		if strings.TrimSpace(line) == "." {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// Confirm asks a yes/no question.
func (t *TerminalPrompter) Confirm(message string, defaultYes bool) (bool, error) {
	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}
	fmt.Fprintf(t.out, "%s [%s] ", message, hint)
	line, err := t.readLine()
	if err != nil {
		return false, err
	}
	return ParseConfirm(line, defaultYes), nil
}

// Select picks one choice by number; blank input picks the default.
func (t *TerminalPrompter) Select(message string, choices []string, defaultChoice string) (string, error) {
	fmt.Fprintln(t.out, message)
	for i, choice := range choices {
		marker := " "
		if choice == defaultChoice {
			marker = "*"
		}
		fmt.Fprintf(t.out, "  %s %d) %s\n", marker, i+1, choice)
	}
	fmt.Fprint(t.out, "Choice: ")
	line, err := t.readLine()
	if err != nil {
		return "", err
	}
	return ParseSelection(line, choices, defaultChoice)
}

// MultiSelect picks a subset by comma-separated numbers; blank selects all.
func (t *TerminalPrompter) MultiSelect(message string, choices []string) ([]string, error) {
	fmt.Fprintln(t.out, message)
	for i, choice := range choices {
		fmt.Fprintf(t.out, "    %d) %s\n", i+1, choice)
	}
	fmt.Fprint(t.out, "Numbers (comma-separated, Enter for all, \"none\" for none): ")
	line, err := t.readLine()
	if err != nil {
		return nil, err
	}
	return ParseMultiSelection(line, choices)
}

// ParseConfirm interprets a yes/no answer, falling back to the default on
// blank input.
func ParseConfirm(line string, defaultYes bool) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return defaultYes
	case "y", "yes":
		return true
	default:
		return false
	}
}

// ParseSelection resolves a 1-based numeric answer against the choice list.
func ParseSelection(line string, choices []string, defaultChoice string) (string, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return defaultChoice, nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 1 || n > len(choices) {
		return "", fmt.Errorf("invalid choice %q: enter a number between 1 and %d", trimmed, len(choices))
	}
	return choices[n-1], nil
}

// ParseMultiSelection resolves comma-separated 1-based numbers. Blank input
// selects every choice, "none" selects nothing.
func ParseMultiSelection(line string, choices []string) ([]string, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return append([]string(nil), choices...), nil
	}
	if strings.EqualFold(trimmed, "none") {
		return nil, nil
	}

	var selected []string
	seen := make(map[int]bool)
	for _, part := range strings.Split(trimmed, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 || n > len(choices) {
			return nil, fmt.Errorf("invalid choice %q: enter numbers between 1 and %d", part, len(choices))
		}
		if !seen[n] {
			seen[n] = true
			selected = append(selected, choices[n-1])
		}
	}
	return selected, nil
}

// loopDriver adapts the prompter and printer to the revision loop.
type loopDriver struct {
	prompter Prompter
	printer  *observability.Printer
}

func newLoopDriver(prompter Prompter, printer *observability.Printer) *loopDriver {
	return &loopDriver{prompter: prompter, printer: printer}
}

func (d *loopDriver) NextInstruction(_ context.Context) (string, error) {
	line, err := d.prompter.Input("Revision instructions (Enter to finish):")
	if err == io.EOF {
		return "", nil
	}
	return line, err
}

func (d *loopDriver) ReviewChanges(_ context.Context, changes []revision.Change) (bool, error) {
	d.printer.Printf("Proposed changes:")
	for _, change := range changes {
		if change.Old != "" {
			d.printer.Printf("  - %s", change.Old)
		}
		if change.New != "" {
			d.printer.Printf("  + %s", change.New)
		}
	}
	return d.prompter.Confirm("Apply these changes?", true)
}

func (d *loopDriver) Notify(format string, args ...any) {
	d.printer.Printf(format, args...)
}
