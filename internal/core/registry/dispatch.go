package registry

import (
	"fmt"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"
)

/*
Dispatch resolves a typed line into a command string.

Aliases are matched first by exact, case-sensitive name and get the rest of
the line appended. Otherwise regex rules are tried in registration order;
a rule is only attempted when the line starts with its trigger followed by
at least one non-whitespace argument, and its pattern is matched against
that argument text. The first rule whose pattern matches wins.
*/
func (r *Registry) Dispatch(line string) (rule.Expansion, error) {
	if !r.sealed {
		return rule.Expansion{}, rule.ErrNotLoaded
	}

	name, remainder := rule.Invocation{TypedLine: line}.Split()
	if name == "" {
		return rule.Expansion{}, fmt.Errorf("%w: empty command line", rule.ErrNotFound)
	}

	if ru, ok := r.rules[name]; ok {
		if alias, isAlias := ru.(*rule.AliasRule); isAlias {
			return rule.Expansion{Name: name, Kind: rule.KindAlias, Command: alias.Expand(remainder)}, nil
		}
	}

	var triggered *rule.RegexRule
	for _, rx := range r.regex {
		if rx.Name() != name {
			continue
		}
		triggered = rx
		if !rule.HasArguments(remainder) {
			break
		}
		cmd, matched, err := rx.Apply(remainder)
		if err != nil {
			return rule.Expansion{}, err
		}
		if matched {
			return rule.Expansion{Name: name, Kind: rule.KindRegex, Command: cmd}, nil
		}
	}

	if triggered != nil {
		usage := triggered.Help().Usage
		if !rule.HasArguments(remainder) {
			if usage != "" {
				return rule.Expansion{}, fmt.Errorf("%w: %w: %q requires an argument (usage: %s)", rule.ErrNotFound, rule.ErrMissingArgument, name, usage)
			}
			return rule.Expansion{}, fmt.Errorf("%w: %w: %q requires an argument", rule.ErrNotFound, rule.ErrMissingArgument, name)
		}
		return rule.Expansion{}, fmt.Errorf("%w: %q does not accept %q", rule.ErrNotFound, name, remainder)
	}

	return rule.Expansion{}, fmt.Errorf("%w: %q", rule.ErrNotFound, name)
}
