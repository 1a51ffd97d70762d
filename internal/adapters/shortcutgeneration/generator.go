package shortcutgeneration

import (
	"regexp"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/history"
	"github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"
	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
)

// ShortcutGenerator proposes "command alias" definitions from debugger history.
type ShortcutGenerator struct {
	analyzer ports.CommandAnalyzer
}

// NewShortcutGenerator creates a new ShortcutGenerator.
func NewShortcutGenerator(analyzer ports.CommandAnalyzer) ports.ShortcutGenerator {
	if analyzer == nil {
		panic("commandAnalyzer cannot be nil")
	}
	return &ShortcutGenerator{analyzer: analyzer}
}

// GenerateSuggestions creates alias suggestions from command frequencies using multiple strategies.
func (g *ShortcutGenerator) GenerateSuggestions(
	commands []history.CommandFrequency,
	takenNames map[string]string, // Names already defined in the user's environment.
	minFrequency int, // Minimum frequency for a command to be considered.
) []rule.Definition {
	allSuggestions := []rule.Definition{}
	// Tracks names and expansions generated in this run so strategies do not overlap.
	generatedNamesInThisRun := make(map[string]bool)
	generatedExpansions := make(map[string]bool)

	// Strategy 1: aliases for repeated "command options --" prefixes, whatever
	// expression followed them (e.g. "expression -l objc -O -- self" -> "eloo").
	prefixFreq := g.aggregatePrefixes(commands)
	allSuggestions = append(allSuggestions, g.generatePrefixAliases(
		prefixFreq,
		minFrequency,
		takenNames,
		generatedNamesInThisRun,
		generatedExpansions,
	)...)

	// Strategy 2: aliases for exact command lines without an expression
	// (e.g. "thread backtrace all" -> "tba").
	allSuggestions = append(allSuggestions, g.generateExactCommandAliases(
		commands,
		minFrequency,
		takenNames,
		generatedNamesInThisRun,
		generatedExpansions,
	)...)

	return allSuggestions
}

// validShortcutNameRegex matches names LLDB accepts for a user command.
var validShortcutNameRegex = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// IsValidShortcutName checks if a given name is suitable for a new shortcut.
// It verifies the character set and conflicts with taken names and LLDB builtins.
func (g *ShortcutGenerator) IsValidShortcutName(nameToCheck string, takenNames map[string]string) bool {
	if !validShortcutNameRegex.MatchString(nameToCheck) {
		return false
	}
	if _, exists := takenNames[nameToCheck]; exists {
		return false
	}
	return !isBuiltinCommand(nameToCheck)
}
