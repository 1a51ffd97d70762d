package rule

import (
	"fmt"
	"strings"
)

/*
Definition is the declarative, load-time form of a rule as it appears in a
rule file. Kind is "alias" or "regex"; when empty it is inferred from
whether Pattern is set.
*/
type Definition struct {
	Kind      string `yaml:"kind,omitempty"`
	Name      string `yaml:"name"`
	Help      string `yaml:"help,omitempty"`
	Usage     string `yaml:"usage,omitempty"`
	Expansion string `yaml:"expansion,omitempty"`
	Pattern   string `yaml:"pattern,omitempty"`
	Template  string `yaml:"template,omitempty"`
}

// AliasDefinition builds the definition of a fixed alias.
func AliasDefinition(name, help string, expansion ...string) Definition {
	return Definition{Kind: KindAlias.String(), Name: name, Help: help, Expansion: strings.Join(expansion, " ")}
}

// RegexDefinition builds the definition of a regex rule.
func RegexDefinition(trigger, help, usage, pattern, template string) Definition {
	return Definition{Kind: KindRegex.String(), Name: trigger, Help: help, Usage: usage, Pattern: pattern, Template: template}
}

// Compile validates the definition and produces the matching Rule variant.
func (d Definition) Compile() (Rule, error) {
	kind := d.Kind
	if kind == "" {
		kind = KindAlias.String()
		if d.Pattern != "" {
			kind = KindRegex.String()
		}
	}

	switch kind {
	case KindAlias.String():
		if d.Pattern != "" || d.Template != "" {
			return nil, fmt.Errorf("%w: alias %q must not set pattern or template", ErrInvalidDefinition, d.Name)
		}
		return newAliasRule(d.Name, d.Help, d.Expansion)
	case KindRegex.String():
		if d.Expansion != "" {
			return nil, fmt.Errorf("%w: regex rule %q must not set expansion", ErrInvalidDefinition, d.Name)
		}
		return NewRegexRule(d.Name, d.Help, d.Usage, d.Pattern, d.Template)
	default:
		return nil, fmt.Errorf("%w: rule %q has unknown kind %q", ErrInvalidDefinition, d.Name, d.Kind)
	}
}

// DefinitionOf converts a compiled rule back into its declarative form.
func DefinitionOf(r Rule) Definition {
	switch v := r.(type) {
	case *AliasRule:
		return Definition{Kind: KindAlias.String(), Name: v.name, Help: v.helpText, Expansion: v.expansion}
	case *RegexRule:
		return RegexDefinition(v.trigger, v.helpText, v.usage, v.Pattern(), v.template.String())
	default:
		h := r.Help()
		return Definition{Kind: r.Kind().String(), Name: r.Name(), Help: h.Text, Usage: h.Usage}
	}
}
