package rulesource

import (
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"
)

// substitutionDelimiters are tried in order when a pattern or template
// already contains '/'.
const substitutionDelimiters = "/|#!@%,:;"

// Render writes rules as LLDB init-file directives, one per line, in order.
// The output can be read back with ParseDirectives or sourced by LLDB.
func Render(w io.Writer, rules []rule.Rule) error {
	for _, ru := range rules {
		line, err := RenderRule(ru)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write directive for %q: %w", ru.Name(), err)
		}
	}
	return nil
}

// RenderRule returns the directive for a single rule.
func RenderRule(ru rule.Rule) (string, error) {
	var b strings.Builder
	switch v := ru.(type) {
	case *rule.AliasRule:
		b.WriteString("command alias")
		if text := v.Help().Text; text != "" {
			b.WriteString(" -h " + doubleQuote(text))
		}
		b.WriteString(" -- " + v.Name() + " " + v.Expansion())
	case *rule.RegexRule:
		delim, ok := pickDelimiter(v.Pattern(), v.Template().String())
		if !ok {
			return "", fmt.Errorf("rule %q: no substitution delimiter is free in its pattern and template", v.Name())
		}
		b.WriteString("command regex " + v.Name())
		help := v.Help()
		if help.Text != "" {
			b.WriteString(" -h " + doubleQuote(help.Text))
		}
		if help.Usage != "" {
			b.WriteString(" -s " + doubleQuote(help.Usage))
		}
		subst := "s" + delim + v.Pattern() + delim + v.Template().String() + delim
		b.WriteString(" -- " + quoteArg(subst))
	default:
		return "", fmt.Errorf("rule %q: unsupported rule type %T", ru.Name(), ru)
	}
	return b.String(), nil
}

func pickDelimiter(pattern, template string) (string, bool) {
	for _, d := range substitutionDelimiters {
		ds := string(d)
		if !strings.Contains(pattern, ds) && !strings.Contains(template, ds) {
			return ds, true
		}
	}
	return "", false
}
