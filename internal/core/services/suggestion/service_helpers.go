package suggestion

import (
	"github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"
)

// buildTakenNamesMap creates a map of names that must not be proposed: the
// shortcuts already defined in the init files and the loaded rule names.
func (s *service) buildTakenNamesMap(existing map[string]string, loaded []rule.Rule) map[string]string {
	taken := make(map[string]string, len(existing)+len(loaded))
	for name, value := range existing {
		taken[name] = value
	}
	for _, r := range loaded {
		d := rule.DefinitionOf(r)
		if d.Expansion != "" {
			taken[r.Name()] = d.Expansion
		} else {
			taken[r.Name()] = d.Template
		}
	}
	return taken
}

// filterSuggestions drops suggestions with a repeated or unusable name,
// keeping the generator's order.
func (s *service) filterSuggestions(generated []rule.Definition, taken map[string]string) []rule.Definition {
	seen := make(map[string]bool, len(generated))
	out := make([]rule.Definition, 0, len(generated))
	for _, def := range generated {
		if seen[def.Name] || !s.shortcutGenerator.IsValidShortcutName(def.Name, taken) {
			continue
		}
		seen[def.Name] = true
		out = append(out, def)
	}
	return out
}
