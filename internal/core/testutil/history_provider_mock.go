package testutil

import (
	"github.com/AntonioJCosta/dbgalias/internal/core/domain/history"
	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
)

// MockHistoryProvider is a mock implementation of the ports.HistoryProvider interface.
type MockHistoryProvider struct {
	GetCommandFrequenciesFunc func(scanLimit int, outputLimit int) ([]history.CommandFrequency, error)
	GetHistoryFilePathFunc    func() string
	GetSourceIdentifierFunc   func() string
}

// GetCommandFrequencies mocks the GetCommandFrequencies method.
func (m *MockHistoryProvider) GetCommandFrequencies(scanLimit int, outputLimit int) ([]history.CommandFrequency, error) {
	if m.GetCommandFrequenciesFunc != nil {
		return m.GetCommandFrequenciesFunc(scanLimit, outputLimit)
	}
	return nil, nil
}

// GetHistoryFilePath mocks the GetHistoryFilePath method.
func (m *MockHistoryProvider) GetHistoryFilePath() string {
	if m.GetHistoryFilePathFunc != nil {
		return m.GetHistoryFilePathFunc()
	}
	return ""
}

// GetSourceIdentifier mocks the GetSourceIdentifier method.
func (m *MockHistoryProvider) GetSourceIdentifier() string {
	if m.GetSourceIdentifierFunc != nil {
		return m.GetSourceIdentifierFunc()
	}
	return ""
}

var _ ports.HistoryProvider = (*MockHistoryProvider)(nil)
