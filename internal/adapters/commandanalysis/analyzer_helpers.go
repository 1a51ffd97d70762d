package commandanalysis

import (
	"strings"
	"unicode"
)

// parseArguments splits the option part of a command line into arguments,
// handling single and double quotes and backslash escapes.
func (a *BasicAnalyzer) parseArguments(s string) []string {
	var args []string
	var currentArg strings.Builder
	var quote rune
	isEscaped := false

	for _, r := range s {
		if isEscaped {
			currentArg.WriteRune(r) // Add the escaped character literally.
			isEscaped = false
			continue
		}

		switch {
		case r == '\\' && quote != '\'':
			isEscaped = true
		case quote != 0 && r == quote:
			quote = 0
		case quote == 0 && (r == '"' || r == '\''):
			quote = r
		case quote == 0 && unicode.IsSpace(r):
			if currentArg.Len() > 0 {
				args = append(args, currentArg.String())
				currentArg.Reset()
			}
		default:
			currentArg.WriteRune(r)
		}
	}
	if currentArg.Len() > 0 {
		args = append(args, currentArg.String())
	}
	return args
}

/*
splitAtTerminator finds the first unquoted "--" token. It returns the text
before it, the trimmed raw text after it, and whether it was found. Without
a terminator the whole line is returned as head.
*/
func splitAtTerminator(s string) (head, expression string, found bool) {
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '-' && strings.HasPrefix(s[i:], "--"):
			atStart := i == 0 || s[i-1] == ' ' || s[i-1] == '\t'
			atEnd := i+2 == len(s) || s[i+2] == ' ' || s[i+2] == '\t'
			if atStart && atEnd {
				return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+2:]), true
			}
		}
	}
	return s, "", false
}

/*
determineComplexity flags command lines whose option part cannot be copied
into an alias verbatim.

A command is considered complex if its option part:
 1. Contains quotes or backslash escapes.
 2. Has more than six tokens.
*/
func (a *BasicAnalyzer) determineComplexity(head string, args []string) bool {
	return strings.ContainsAny(head, `"'\`) || len(args) > 6
}
