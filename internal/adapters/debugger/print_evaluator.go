package debugger

import (
	"context"
	"fmt"
	"io"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/evaluation"
	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
)

// PrintEvaluator writes expanded commands to w instead of running them.
// It backs dry runs and the REPL when no debugger is wanted.
type PrintEvaluator struct {
	w io.Writer
}

// NewPrintEvaluator creates a new PrintEvaluator writing to w.
func NewPrintEvaluator(w io.Writer) ports.Evaluator {
	if w == nil {
		panic("writer cannot be nil")
	}
	return &PrintEvaluator{w: w}
}

func (e *PrintEvaluator) Evaluate(ctx context.Context, command string, _ evaluation.Session) (evaluation.Result, error) {
	if err := ctx.Err(); err != nil {
		return evaluation.Result{Command: command}, err
	}
	if _, err := fmt.Fprintln(e.w, command); err != nil {
		return evaluation.Result{Command: command}, fmt.Errorf("failed to write command: %w", err)
	}
	return evaluation.Result{Command: command, Output: command + "\n"}, nil
}
