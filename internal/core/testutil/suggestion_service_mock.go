package testutil

import (
	"errors"

	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
)

// MockSuggestionService is a mock implementation of ports.SuggestionService.
type MockSuggestionService struct {
	GetSuggestionsFunc              func(minFrequency, scanLimit, outputLimit int) (ports.SuggestionResult, error)
	GetSuggestionContextDetailsFunc func() (string, error)
}

func (m *MockSuggestionService) GetSuggestions(minFrequency, scanLimit, outputLimit int) (ports.SuggestionResult, error) {
	if m.GetSuggestionsFunc != nil {
		return m.GetSuggestionsFunc(minFrequency, scanLimit, outputLimit)
	}
	return ports.SuggestionResult{}, errors.New("MockSuggestionService: GetSuggestionsFunc not implemented")
}

func (m *MockSuggestionService) GetSuggestionContextDetails() (string, error) {
	if m.GetSuggestionContextDetailsFunc != nil {
		return m.GetSuggestionContextDetailsFunc()
	}
	return "", errors.New("MockSuggestionService: GetSuggestionContextDetailsFunc not implemented")
}

var _ ports.SuggestionService = (*MockSuggestionService)(nil)
