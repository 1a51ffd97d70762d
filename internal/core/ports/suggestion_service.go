package ports

import "github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"

// SuggestionResult holds the suggestions and any relevant metadata.
type SuggestionResult struct {
	Suggestions   []rule.Definition
	SourceDetails string
}

// SuggestionService defines the contract for proposing new shortcuts from
// debugger command history.
type SuggestionService interface {
	GetSuggestions(minFrequency, scanLimit, outputLimit int) (SuggestionResult, error)
	GetSuggestionContextDetails() (string, error)
}
