// Package latexc invokes the external LaTeX compiler and surfaces its
// diagnostics in a human-readable form.
package latexc

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	// CompilationTimeout is the maximum time to wait for LaTeX compilation.
	CompilationTimeout = 30 * time.Second
	// maxDiagnosticLines caps the fatal lines extracted from the compile log.
	maxDiagnosticLines = 10
)

// DefaultCommand is the LaTeX engine invoked when none is configured.
const DefaultCommand = "pdflatex"

// CompilationError represents a failed compiler invocation, with the fatal
// lines extracted from the log as a hint for the user.
type CompilationError struct {
	Message string
	Hint    string
	Cause   error
}

func (e *CompilationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("compilation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("compilation error: %s", e.Message)
}

func (e *CompilationError) Unwrap() error {
	return e.Cause
}

// Compiler runs the external LaTeX engine on source files.
type Compiler struct {
	// Command is the engine binary, e.g. "pdflatex" or "xelatex".
	Command string
}

// New returns a Compiler using the given engine command, or the default when
// empty.
func New(command string) *Compiler {
	if command == "" {
		command = DefaultCommand
	}
	return &Compiler{Command: command}
}

// Compile runs the engine on texPath and returns the path of the produced
// PDF, a sibling of the source. On failure the returned error carries the
// fatal lines from the engine log. Auxiliary files are cleaned up on success.
func (c *Compiler) Compile(ctx context.Context, texPath string) (string, error) {
	if _, err := exec.LookPath(c.Command); err != nil {
		return "", &CompilationError{
			Message: fmt.Sprintf("%s not found in PATH, install a LaTeX distribution (TeX Live, MiKTeX)", c.Command),
			Cause:   err,
		}
	}

	dir := filepath.Dir(texPath)
	base := strings.TrimSuffix(filepath.Base(texPath), ".tex")
	pdfPath := filepath.Join(dir, base+".pdf")
	logPath := filepath.Join(dir, base+".log")

	ctx, cancel := context.WithTimeout(ctx, CompilationTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.Command,
		"-interaction=nonstopmode",
		"-halt-on-error",
		"-output-directory="+dir,
		texPath,
	)
	cmd.Dir = dir

	var output strings.Builder
	cmd.Stdout = &output
	cmd.Stderr = &output

	runErr := cmd.Run()

	if _, err := os.Stat(pdfPath); os.IsNotExist(err) || runErr != nil {
		hint := ExtractFatalLines(readLog(logPath))
		if hint == "" {
			hint = ExtractFatalLines(output.String())
		}
		return "", &CompilationError{
			Message: "LaTeX compilation failed",
			Hint:    hint,
			Cause:   runErr,
		}
	}

	cleanupAux(dir, base)

	return pdfPath, nil
}

// ExtractFatalLines pulls the lines signaling fatal conditions out of engine
// output, capped at a small fixed count.
func ExtractFatalLines(logOutput string) string {
	if logOutput == "" {
		return ""
	}

	var fatal []string
	for _, line := range strings.Split(logOutput, "\n") {
		if strings.HasPrefix(line, "!") || strings.Contains(line, "Error") {
			fatal = append(fatal, line)
			if len(fatal) == maxDiagnosticLines {
				break
			}
		}
	}

	return strings.Join(fatal, "\n")
}

func readLog(logPath string) string {
	content, err := os.ReadFile(logPath)
	if err != nil {
		return ""
	}
	return string(content)
}

// cleanupAux removes the auxiliary files the engine leaves next to the PDF.
func cleanupAux(dir, base string) {
	for _, ext := range []string{".aux", ".log", ".out"} {
		_ = os.Remove(filepath.Join(dir, base+ext))
	}
}
