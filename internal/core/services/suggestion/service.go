package suggestion

import (
	"errors"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"
	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
)

type service struct {
	historyProvider   ports.HistoryProvider
	shortcutGenerator ports.ShortcutGenerator
	initFile          ports.InitFileAccessor
	dispatch          ports.DispatchService // Can be nil if no rule set is loaded.
}

// NewService creates a new shortcut suggestion service.
// It panics if historyProvider, shortcutGenerator, or initFile are nil.
// dispatch can be nil; when set, its loaded rule names are never proposed.
func NewService(
	hp ports.HistoryProvider,
	sg ports.ShortcutGenerator,
	ifa ports.InitFileAccessor,
	ds ports.DispatchService,
) ports.SuggestionService {
	if hp == nil {
		panic("historyProvider cannot be nil")
	}
	if sg == nil {
		panic("shortcutGenerator cannot be nil")
	}
	if ifa == nil {
		panic("initFileAccessor cannot be nil")
	}
	return &service{
		historyProvider:   hp,
		shortcutGenerator: sg,
		initFile:          ifa,
		dispatch:          ds,
	}
}

func (s *service) GetSuggestions(minFrequency, scanLimit, outputLimit int) (ports.SuggestionResult, error) {
	var result ports.SuggestionResult

	existing, err := s.initFile.GetExistingShortcuts()
	if err != nil {
		return result, fmt.Errorf("failed to get existing shortcuts for suggestion generation: %w", err)
	}

	loadedRules, err := s.loadedRules()
	if err != nil {
		return result, err
	}
	takenNames := s.buildTakenNamesMap(existing, loadedRules)

	// Prefix aggregation needs every distinct line in the scan window, so the
	// history is not capped here; outputLimit applies to the suggestions.
	frequencyLimit := scanLimit
	if frequencyLimit <= 0 {
		frequencyLimit = math.MaxInt
	}
	frequencies, err := s.historyProvider.GetCommandFrequencies(scanLimit, frequencyLimit)
	if err != nil {
		return result, fmt.Errorf("failed to get command frequencies: %w", err)
	}

	generated := s.shortcutGenerator.GenerateSuggestions(frequencies, takenNames, minFrequency)
	result.Suggestions = s.filterSuggestions(generated, takenNames)
	if outputLimit > 0 && len(result.Suggestions) > outputLimit {
		result.Suggestions = result.Suggestions[:outputLimit]
	}

	result.SourceDetails = s.historyProvider.GetSourceIdentifier()
	result.SourceDetails += " (suggestions from command history"
	if s.dispatch != nil {
		result.SourceDetails += fmt.Sprintf("; %d loaded rules considered for conflict avoidance", len(loadedRules))
	}
	result.SourceDetails += ")"

	log.WithFields(log.Fields{
		"history":     len(frequencies),
		"taken":       len(takenNames),
		"suggestions": len(result.Suggestions),
	}).Debug("suggestions generated")
	return result, nil
}

// GetSuggestionContextDetails provides details about the sources used for suggestions.
func (s *service) GetSuggestionContextDetails() (string, error) {
	details := s.historyProvider.GetSourceIdentifier()
	if s.dispatch != nil {
		if _, err := s.dispatch.Rules(); err == nil {
			details += fmt.Sprintf(" (rules from %s)", s.dispatch.SourceDetails())
		} else {
			details += fmt.Sprintf(" (rules from %s not loaded: %v)", s.dispatch.SourceDetails(), err)
		}
	}
	return details, nil
}

// loadedRules returns the active rule set, or none when no dispatch service is
// configured or nothing has been loaded yet.
func (s *service) loadedRules() ([]rule.Rule, error) {
	if s.dispatch == nil {
		return nil, nil
	}
	rules, err := s.dispatch.Rules()
	if errors.Is(err, rule.ErrNotLoaded) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list loaded rules: %w", err)
	}
	return rules, nil
}
