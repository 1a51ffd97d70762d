package testutil

import (
	"github.com/AntonioJCosta/dbgalias/internal/core/domain/history"
	"github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"
	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
)

// MockShortcutGenerator is a mock implementation of ports.ShortcutGenerator.
type MockShortcutGenerator struct {
	GenerateSuggestionsFunc func(frequencies []history.CommandFrequency, takenNames map[string]string, minFrequency int) []rule.Definition
	IsValidShortcutNameFunc func(name string, takenNames map[string]string) bool
}

func (m *MockShortcutGenerator) GenerateSuggestions(frequencies []history.CommandFrequency, takenNames map[string]string, minFrequency int) []rule.Definition {
	if m.GenerateSuggestionsFunc != nil {
		return m.GenerateSuggestionsFunc(frequencies, takenNames, minFrequency)
	}
	return []rule.Definition{}
}

// IsValidShortcutName defaults to true when no func is set.
func (m *MockShortcutGenerator) IsValidShortcutName(name string, takenNames map[string]string) bool {
	if m.IsValidShortcutNameFunc != nil {
		return m.IsValidShortcutNameFunc(name, takenNames)
	}
	return true
}

var _ ports.ShortcutGenerator = (*MockShortcutGenerator)(nil)
