package testutil

import (
	"context"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/evaluation"
	"github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"
	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
)

// MockDispatchService is a mock implementation of ports.DispatchService.
// Unset funcs return rule.ErrNotLoaded.
type MockDispatchService struct {
	LoadFunc          func() error
	ExpandFunc        func(line string) (rule.Expansion, error)
	RunFunc           func(ctx context.Context, line string, session evaluation.Session) (evaluation.Result, error)
	DescribeFunc      func(name string) (rule.Help, error)
	RulesFunc         func() ([]rule.Rule, error)
	SourceDetailsFunc func() string

	LoadCalls int
	RunCalls  []string
}

func (m *MockDispatchService) Load() error {
	m.LoadCalls++
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return nil
}

func (m *MockDispatchService) Expand(line string) (rule.Expansion, error) {
	if m.ExpandFunc != nil {
		return m.ExpandFunc(line)
	}
	return rule.Expansion{}, rule.ErrNotLoaded
}

func (m *MockDispatchService) Run(ctx context.Context, line string, session evaluation.Session) (evaluation.Result, error) {
	m.RunCalls = append(m.RunCalls, line)
	if m.RunFunc != nil {
		return m.RunFunc(ctx, line, session)
	}
	return evaluation.Result{}, rule.ErrNotLoaded
}

func (m *MockDispatchService) Describe(name string) (rule.Help, error) {
	if m.DescribeFunc != nil {
		return m.DescribeFunc(name)
	}
	return rule.Help{}, rule.ErrNotLoaded
}

func (m *MockDispatchService) Rules() ([]rule.Rule, error) {
	if m.RulesFunc != nil {
		return m.RulesFunc()
	}
	return nil, rule.ErrNotLoaded
}

func (m *MockDispatchService) SourceDetails() string {
	if m.SourceDetailsFunc != nil {
		return m.SourceDetailsFunc()
	}
	return "mock"
}

var _ ports.DispatchService = (*MockDispatchService)(nil)
