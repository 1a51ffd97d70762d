package ports

import (
	"context"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/evaluation"
	"github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"
)

// DispatchService defines the contract for resolving typed lines against the
// active rule set.
type DispatchService interface {
	// Load builds a new registry from the rule source and makes it active.
	// On failure the previously active registry, if any, stays in use.
	Load() error

	// Expand resolves a typed line into a command string without running it.
	Expand(line string) (rule.Expansion, error)

	// Run expands a typed line and forwards the result to the evaluator.
	Run(ctx context.Context, line string, session evaluation.Session) (evaluation.Result, error)

	// Describe returns the help of the named rule.
	Describe(name string) (rule.Help, error)

	// Rules returns the active rules in registration order.
	Rules() ([]rule.Rule, error)

	// SourceDetails describes where the active rules were loaded from.
	SourceDetails() string
}
