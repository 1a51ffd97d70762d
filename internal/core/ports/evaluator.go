package ports

import (
	"context"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/evaluation"
)

// Evaluator executes a fully expanded command string in a debugger session.
type Evaluator interface {
	Evaluate(ctx context.Context, command string, session evaluation.Session) (evaluation.Result, error)
}
