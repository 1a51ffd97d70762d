package ports

import (
	"github.com/AntonioJCosta/dbgalias/internal/core/domain/history"
	"github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"
)

/*
ShortcutGenerator defines the contract for a service that proposes alias
definitions from command history. This is a driven port, representing a
domain capability.
*/
type ShortcutGenerator interface {
	GenerateSuggestions(
		commands []history.CommandFrequency,
		takenNames map[string]string, // Names that must not be proposed.
		minFrequency int,
	) []rule.Definition

	// IsValidShortcutName checks if a name can be used for a new shortcut:
	// valid characters, not a debugger builtin, not in takenNames.
	IsValidShortcutName(name string, takenNames map[string]string) bool
}
