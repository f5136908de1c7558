package revision

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// State identifies where the loop is in one revision cycle.
type State string

// Loop states. Each accepted revision moves Idle -> Requesting -> Reviewing
// -> Compiling and back to Idle, or through RolledBack when the compile
// fails.
const (
	StateIdle       State = "idle"
	StateRequesting State = "requesting"
	StateReviewing  State = "reviewing"
	StateCompiling  State = "compiling"
	StateRolledBack State = "rolled_back"
)

// Rewriter is the external rewrite capability: given the current source, an
// instruction, and optional job-description context, it returns the full
// revised source.
type Rewriter interface {
	Revise(ctx context.Context, source, instruction, jdContext string) (string, error)
}

// Compiler produces an artifact from a source file, or fails.
type Compiler interface {
	Compile(ctx context.Context, sourcePath string) (string, error)
}

// Driver supplies the external events that advance the loop: the next
// instruction and the accept/reject decision for a reviewed diff. A
// non-interactive caller can drive the loop with a scripted driver.
type Driver interface {
	// NextInstruction returns the next revision instruction. A blank
	// instruction ends the loop.
	NextInstruction(ctx context.Context) (string, error)
	// ReviewChanges presents a diff and reports whether it was accepted.
	ReviewChanges(ctx context.Context, changes []Change) (bool, error)
	// Notify reports loop progress and failures.
	Notify(format string, args ...any)
}

// Loop runs the interactive revision cycle over one source file. It
// guarantees the on-disk source never ends a cycle in a state that fails to
// compile: the write happens only after acceptance, and a failed compile
// restores the pre-revision content before the next cycle begins.
type Loop struct {
	rewriter Rewriter
	compiler Compiler
	driver   Driver

	sourcePath   string
	artifactPath string
	jdContext    string

	state State
}

// NewLoop creates a revision loop for a compiled source/artifact pair.
// artifactPath must point at the artifact produced from the current on-disk
// source, which is the rollback baseline.
func NewLoop(rewriter Rewriter, compiler Compiler, driver Driver, sourcePath, artifactPath, jdContext string) *Loop {
	return &Loop{
		rewriter:     rewriter,
		compiler:     compiler,
		driver:       driver,
		sourcePath:   sourcePath,
		artifactPath: artifactPath,
		jdContext:    jdContext,
		state:        StateIdle,
	}
}

// State returns the loop's current state.
func (l *Loop) State() State {
	return l.state
}

// Run drives revision cycles until a blank instruction ends the loop, then
// returns the latest known-good artifact path.
func (l *Loop) Run(ctx context.Context) (string, error) {
	for {
		l.state = StateIdle

		instruction, err := l.driver.NextInstruction(ctx)
		if err != nil {
			return l.artifactPath, fmt.Errorf("failed to read instruction: %w", err)
		}
		if strings.TrimSpace(instruction) == "" {
			return l.artifactPath, nil
		}

		if err := l.runCycle(ctx, instruction); err != nil {
			return l.artifactPath, err
		}
	}
}

// runCycle executes one revision attempt. Only context cancellation and
// driver failures propagate; rewrite and compile failures are reported and
// absorbed so the loop returns to Idle.
func (l *Loop) runCycle(ctx context.Context, instruction string) error {
	current, err := os.ReadFile(l.sourcePath)
	if err != nil {
		return fmt.Errorf("failed to read source %s: %w", l.sourcePath, err)
	}

	// Requesting: the rewrite call mutates nothing on disk, so a failure
	// simply returns the loop to Idle.
	l.state = StateRequesting
	revised, err := l.rewriter.Revise(ctx, string(current), instruction, l.jdContext)
	if err != nil {
		l.driver.Notify("Revision failed: %v", err)
		return nil
	}

	l.state = StateReviewing
	changes := DiffLines(string(current), revised)
	if len(changes) == 0 {
		l.driver.Notify("No changes detected")
		return nil
	}

	accepted, err := l.driver.ReviewChanges(ctx, changes)
	if err != nil {
		return fmt.Errorf("failed to review changes: %w", err)
	}
	if !accepted {
		return nil
	}

	// Compiling: write, then immediately validate. The pre-revision content
	// is held in memory as the rollback target.
	l.state = StateCompiling
	if err := os.WriteFile(l.sourcePath, []byte(revised), 0644); err != nil {
		return fmt.Errorf("failed to write revised source: %w", err)
	}

	artifactPath, err := l.compiler.Compile(ctx, l.sourcePath)
	if err != nil {
		l.state = StateRolledBack
		if restoreErr := os.WriteFile(l.sourcePath, current, 0644); restoreErr != nil {
			return fmt.Errorf("compile failed and rollback failed: %w", restoreErr)
		}
		l.driver.Notify("Compilation failed, reverted to previous version: %v", err)
		return nil
	}

	l.artifactPath = artifactPath
	l.driver.Notify("Artifact updated: %s", artifactPath)
	return nil
}
