package registry

import (
	"fmt"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"
)

// Registry is an ordered mapping from invocation name to rule.
type Registry struct {
	order  []string
	rules  map[string]rule.Rule
	regex  []*rule.RegexRule
	sealed bool
}

// New creates an empty, unsealed registry.
func New() *Registry {
	return &Registry{rules: make(map[string]rule.Rule)}
}

/*
Build compiles and registers every definition in order and seals the result.
Any error aborts the whole load and no registry is returned.
*/
func Build(defs []rule.Definition) (*Registry, error) {
	r := New()
	for i, d := range defs {
		compiled, err := d.Compile()
		if err != nil {
			return nil, fmt.Errorf("definition %d (%q): %w", i+1, d.Name, err)
		}
		if err := r.Register(compiled); err != nil {
			return nil, fmt.Errorf("definition %d (%q): %w", i+1, d.Name, err)
		}
	}
	r.Seal()
	return r, nil
}

// Register adds a rule, preserving load order. It fails without changing the
// registry if the name is taken or the registry is already sealed.
func (r *Registry) Register(ru rule.Rule) error {
	if r.sealed {
		return rule.ErrSealed
	}
	if ru == nil {
		return fmt.Errorf("%w: nil rule", rule.ErrInvalidDefinition)
	}
	name := ru.Name()
	if name == "" {
		return fmt.Errorf("%w: empty name", rule.ErrInvalidDefinition)
	}
	if existing, ok := r.rules[name]; ok {
		return fmt.Errorf("%w: %q is already registered as %s", rule.ErrDuplicateName, name, existing.Kind())
	}

	switch v := ru.(type) {
	case *rule.AliasRule:
	case *rule.RegexRule:
		r.regex = append(r.regex, v)
	default:
		return fmt.Errorf("%w: unsupported rule type %T", rule.ErrInvalidDefinition, ru)
	}
	r.rules[name] = ru
	r.order = append(r.order, name)
	return nil
}

// Seal marks the registry as loaded. Dispatch is only allowed afterwards and
// Register is refused.
func (r *Registry) Seal() {
	r.sealed = true
}

// Loaded reports whether the registry has been sealed.
func (r *Registry) Loaded() bool {
	return r.sealed
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	return len(r.order)
}

// Rules returns the rules in registration order.
func (r *Registry) Rules() []rule.Rule {
	out := make([]rule.Rule, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.rules[name])
	}
	return out
}

// Lookup returns the rule registered under name.
func (r *Registry) Lookup(name string) (rule.Rule, bool) {
	ru, ok := r.rules[name]
	return ru, ok
}

// Describe returns the help text and usage of the named rule.
func (r *Registry) Describe(name string) (rule.Help, error) {
	ru, ok := r.rules[name]
	if !ok {
		return rule.Help{}, fmt.Errorf("%w: %q", rule.ErrNotFound, name)
	}
	return ru.Help(), nil
}
