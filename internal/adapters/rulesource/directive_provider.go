package rulesource

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"
	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
)

/*
DirectiveProvider reads rule definitions from an LLDB init-style file:

	command alias -h "Alias for 'expression -l objc --'" -- cp expression -l objc --
	command regex ivars -h "Execute [%1 _ivarDescription]" -s "ivars <Instance>" -- 's/(.+)/expression -l objc -O -- [%1 _ivarDescription]/'

Comments, blank lines and other commands are skipped.
*/
type DirectiveProvider struct {
	filePath string
}

// NewDirectiveProvider creates a provider for the directive file at filePath.
func NewDirectiveProvider(filePath string) (ports.RuleSource, error) {
	if filePath == "" {
		return nil, fmt.Errorf("directive file path cannot be empty")
	}
	return &DirectiveProvider{filePath: filePath}, nil
}

// GetDefinitions parses the directive file. A missing file yields no definitions.
func (p *DirectiveProvider) GetDefinitions() ([]rule.Definition, error) {
	file, err := os.Open(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []rule.Definition{}, nil
		}
		return nil, fmt.Errorf("failed to open directive file %s: %w", p.filePath, err)
	}
	defer file.Close()

	defs, err := ParseDirectives(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.filePath, err)
	}
	return defs, nil
}

func (p *DirectiveProvider) Describe() string {
	return fmt.Sprintf("directive file: %s", p.filePath)
}

// ParseDirectives reads "command alias" and "command regex" lines from r.
func ParseDirectives(r io.Reader) ([]rule.Definition, error) {
	defs := []rule.Definition{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		def, ok, err := parseDirectiveLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", lineNo, rule.ErrInvalidDefinition, err)
		}
		if !ok {
			log.WithField("line", lineNo).Debug("skipping non-shortcut directive")
			continue
		}
		defs = append(defs, def)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning directives: %w", err)
	}
	return defs, nil
}

// parseDirectiveLine reports false for lines that are not shortcut directives.
func parseDirectiveLine(line string) (rule.Definition, bool, error) {
	first, rest, _, err := nextToken(line)
	if err != nil || first != "command" {
		return rule.Definition{}, false, nil
	}
	sub, rest, ok, err := nextToken(rest)
	if err != nil || !ok {
		return rule.Definition{}, false, nil
	}

	switch sub {
	case "alias":
		def, err := parseAliasDirective(rest)
		return def, err == nil, err
	case "regex":
		def, err := parseRegexDirective(rest)
		return def, err == nil, err
	default:
		return rule.Definition{}, false, nil
	}
}

// directiveOptions holds the options shared by alias and regex directives.
type directiveOptions struct {
	help     string
	longHelp string
	syntax   string
}

/*
parseOptions consumes leading options from s until a non-option token or the
"--" terminator. allowSyntax enables -s/--syntax, which only "command regex"
accepts. It returns the first non-option token (if any) and the text after it.
*/
func parseOptions(s string, allowSyntax bool) (directiveOptions, string, string, bool, error) {
	var opts directiveOptions
	for {
		tok, rest, ok, err := nextToken(s)
		if err != nil {
			return opts, "", "", false, err
		}
		if !ok {
			return opts, "", "", false, nil
		}
		if tok == "--" {
			tok, rest, ok, err = nextToken(rest)
			if err != nil {
				return opts, "", "", false, err
			}
			return opts, tok, rest, ok, nil
		}
		if !strings.HasPrefix(tok, "-") {
			return opts, tok, rest, true, nil
		}

		value, after, ok, err := nextToken(rest)
		if err != nil {
			return opts, "", "", false, err
		}
		if !ok {
			return opts, "", "", false, fmt.Errorf("option %s requires a value", tok)
		}
		switch tok {
		case "-h", "--help":
			opts.help = value
		case "-H", "--long-help":
			opts.longHelp = value
		case "-s", "--syntax":
			if !allowSyntax {
				return opts, "", "", false, fmt.Errorf("unknown option %s", tok)
			}
			opts.syntax = value
		default:
			return opts, "", "", false, fmt.Errorf("unknown option %s", tok)
		}
		s = after
	}
}

// parseAliasDirective parses the part after "command alias".
func parseAliasDirective(s string) (rule.Definition, error) {
	opts, name, rest, ok, err := parseOptions(s, false)
	if err != nil {
		return rule.Definition{}, err
	}
	if !ok {
		return rule.Definition{}, fmt.Errorf("command alias requires a name")
	}
	expansion := strings.TrimSpace(rest)
	if expansion == "" {
		return rule.Definition{}, fmt.Errorf("command alias %q requires a command to expand to", name)
	}
	help := opts.help
	if help == "" {
		help = opts.longHelp
	}
	return rule.AliasDefinition(name, help, expansion), nil
}

// parseRegexDirective parses the part after "command regex".
func parseRegexDirective(s string) (rule.Definition, error) {
	name, rest, ok, err := nextToken(s)
	if err != nil {
		return rule.Definition{}, err
	}
	if !ok || strings.HasPrefix(name, "-") {
		return rule.Definition{}, fmt.Errorf("command regex requires a name")
	}

	opts, subst, rest, ok, err := parseOptions(rest, true)
	if err != nil {
		return rule.Definition{}, err
	}
	if !ok {
		return rule.Definition{}, fmt.Errorf("command regex %q requires a s/<regex>/<subst>/ argument", name)
	}
	// LLDB tries several substitutions in order; a rule holds one pattern.
	if ignored := countTokens(rest); ignored > 0 {
		log.WithFields(log.Fields{"name": name, "ignored": ignored}).Warn("command regex has several substitutions, only the first is used")
	}

	pattern, template, err := splitSubstitution(subst)
	if err != nil {
		return rule.Definition{}, fmt.Errorf("command regex %q: %w", name, err)
	}
	return rule.RegexDefinition(name, opts.help, opts.syntax, pattern, template), nil
}
