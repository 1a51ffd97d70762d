package ports

import "github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"

// RuleSource defines the interface for sourcing rule definitions at load
// time, like an embedded table or a configuration file.
type RuleSource interface {
	// GetDefinitions loads the rule definitions in declaration order.
	GetDefinitions() ([]rule.Definition, error)

	// Describe returns a short, user-facing description of where the rules come from.
	Describe() string
}
