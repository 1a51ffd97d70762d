package testutil

import (
	"context"
	"errors"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/evaluation"
	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
)

// MockEvaluator is a mock implementation of ports.Evaluator.
type MockEvaluator struct {
	EvaluateFunc func(ctx context.Context, command string, session evaluation.Session) (evaluation.Result, error)
	// EvaluateCalls records the commands passed to Evaluate.
	EvaluateCalls []string
}

// Evaluate records the call and delegates to EvaluateFunc.
func (m *MockEvaluator) Evaluate(ctx context.Context, command string, session evaluation.Session) (evaluation.Result, error) {
	m.EvaluateCalls = append(m.EvaluateCalls, command)
	if m.EvaluateFunc != nil {
		return m.EvaluateFunc(ctx, command, session)
	}
	return evaluation.Result{}, errors.New("MockEvaluator.EvaluateFunc not implemented")
}

var _ ports.Evaluator = (*MockEvaluator)(nil)
