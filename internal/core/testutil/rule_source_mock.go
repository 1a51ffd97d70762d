package testutil

import (
	"github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"
	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
)

// MockRuleSource is a mock implementation of ports.RuleSource.
type MockRuleSource struct {
	GetDefinitionsFunc  func() ([]rule.Definition, error)
	DescribeFunc        func() string
	GetDefinitionsCalls int
}

// GetDefinitions calls GetDefinitionsFunc, or returns no definitions.
func (m *MockRuleSource) GetDefinitions() ([]rule.Definition, error) {
	m.GetDefinitionsCalls++
	if m.GetDefinitionsFunc != nil {
		return m.GetDefinitionsFunc()
	}
	return nil, nil
}

// Describe calls DescribeFunc, or returns "mock".
func (m *MockRuleSource) Describe() string {
	if m.DescribeFunc != nil {
		return m.DescribeFunc()
	}
	return "mock"
}

var _ ports.RuleSource = (*MockRuleSource)(nil)
