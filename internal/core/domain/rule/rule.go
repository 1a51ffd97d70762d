/*
Package rule defines the core domain entities of the dispatcher: fixed
aliases, regex-triggered templates and the values produced when a typed
line is resolved against them.
*/
package rule

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Kind tags the variant of a Rule.
type Kind int

const (
	// KindAlias is a fixed-expansion alias.
	KindAlias Kind = iota
	// KindRegex is a regex-triggered command template.
	KindRegex
)

// String returns the directive keyword used for the kind.
func (k Kind) String() string {
	switch k {
	case KindAlias:
		return "alias"
	case KindRegex:
		return "regex"
	default:
		return "unknown"
	}
}

/*
Rule is a named shortcut registered in the command namespace. It is
implemented by *AliasRule and *RegexRule; callers switch on Kind or use a
type switch to reach variant-specific fields.
*/
type Rule interface {
	Name() string
	Kind() Kind
	Help() Help
}

// Help is the display information for a rule.
type Help struct {
	Name  string
	Kind  Kind
	Text  string
	Usage string
}

// Expansion is the result of resolving a typed line: the fully expanded
// command string and the rule that produced it.
type Expansion struct {
	Name    string
	Kind    Kind
	Command string
}

/*
AliasRule expands a fixed name into a fixed command line. The expansion is
kept as written, apart from surrounding whitespace, so quoted arguments with
inner spacing survive. Trailing user arguments are appended verbatim.
*/
type AliasRule struct {
	name      string
	helpText  string
	expansion string
}

// NewAliasRule creates an alias from expansion tokens joined by single spaces.
// The expansion must not be empty.
func NewAliasRule(name, helpText string, expansion []string) (*AliasRule, error) {
	return newAliasRule(name, helpText, strings.Join(expansion, " "))
}

func newAliasRule(name, helpText, expansion string) (*AliasRule, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	expansion = strings.TrimSpace(expansion)
	if expansion == "" {
		return nil, fmt.Errorf("%w: alias %q has an empty expansion", ErrInvalidDefinition, name)
	}
	if strings.ContainsAny(expansion, "\r\n") {
		return nil, fmt.Errorf("%w: alias %q expansion spans several lines", ErrInvalidDefinition, name)
	}
	return &AliasRule{name: name, helpText: helpText, expansion: expansion}, nil
}

func (a *AliasRule) Name() string { return a.name }
func (a *AliasRule) Kind() Kind   { return KindAlias }

// Help implements Rule. Aliases have no separate usage line.
func (a *AliasRule) Help() Help {
	return Help{Name: a.name, Kind: KindAlias, Text: a.helpText}
}

func (a *AliasRule) Expansion() string {
	return a.expansion
}

// Expand appends remainder to the expansion. A blank remainder is dropped.
func (a *AliasRule) Expand(remainder string) string {
	if strings.TrimSpace(remainder) == "" {
		return a.expansion
	}
	return a.expansion + " " + remainder
}

/*
RegexRule matches the argument of its trigger against a pattern and
substitutes the capture groups into a template.

Example:

	r, _ := NewRegexRule("ivars", "", "ivars <Instance>", `(.+)`, "expression -l objc -O -- [%1 _ivarDescription]")
	cmd, _, _ := r.Apply("[UIView new]")
	// cmd == "expression -l objc -O -- [[UIView new] _ivarDescription]"
*/
type RegexRule struct {
	trigger  string
	helpText string
	usage    string
	pattern  *regexp.Regexp
	template Template
}

// NewRegexRule compiles pattern and checks that every placeholder in template
// refers to an existing capture group.
func NewRegexRule(trigger, helpText, usage, pattern, template string) (*RegexRule, error) {
	if err := validateName(trigger); err != nil {
		return nil, err
	}
	if pattern == "" {
		return nil, fmt.Errorf("%w: regex rule %q has an empty pattern", ErrInvalidPattern, trigger)
	}
	if strings.TrimSpace(template) == "" {
		return nil, fmt.Errorf("%w: regex rule %q has an empty template", ErrInvalidTemplate, trigger)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: rule %q: %v", ErrInvalidPattern, trigger, err)
	}
	tmpl, err := ParseTemplate(template)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", trigger, err)
	}
	if tmpl.MaxGroup() > re.NumSubexp() {
		return nil, fmt.Errorf("%w: rule %q: template references %%%d but pattern %q has %d capture group(s)",
			ErrInvalidTemplate, trigger, tmpl.MaxGroup(), pattern, re.NumSubexp())
	}
	return &RegexRule{
		trigger:  trigger,
		helpText: helpText,
		usage:    usage,
		pattern:  re,
		template: tmpl,
	}, nil
}

func (r *RegexRule) Name() string { return r.trigger }
func (r *RegexRule) Kind() Kind   { return KindRegex }

func (r *RegexRule) Help() Help {
	return Help{Name: r.trigger, Kind: KindRegex, Text: r.helpText, Usage: r.usage}
}

// Pattern returns the pattern source.
func (r *RegexRule) Pattern() string { return r.pattern.String() }

// Template returns the parsed template.
func (r *RegexRule) Template() Template { return r.template }

// Apply matches argument against the pattern. It reports false when the
// pattern does not match; an error means the pattern matched but the
// template could not be filled.
func (r *RegexRule) Apply(argument string) (string, bool, error) {
	loc := r.pattern.FindStringSubmatchIndex(argument)
	if loc == nil {
		return "", false, nil
	}
	cmd, err := r.template.Expand(argument, loc)
	if err != nil {
		return "", true, fmt.Errorf("rule %q: %w", r.trigger, err)
	}
	return cmd, true, nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDefinition)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: name %q contains whitespace", ErrInvalidDefinition, name)
	}
	return nil
}
