package rulesource

import (
	"fmt"
	"strings"
	"unicode"
)

/*
nextToken reads one argument from s the way LLDB splits command arguments.

Single quotes keep their content literally. Inside double quotes and in
unquoted text a backslash escapes the next character. Quoted and unquoted
pieces that touch are joined into one token. It returns the token, the rest
of s after the token and false when s holds no further token.
*/
func nextToken(s string) (string, string, bool, error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if s == "" {
		return "", "", false, nil
	}

	var tok strings.Builder
	var quote rune
	escaped := false

	for i, r := range s {
		if escaped {
			tok.WriteRune(r)
			escaped = false
			continue
		}
		switch {
		case quote == '\'':
			if r == '\'' {
				quote = 0
			} else {
				tok.WriteRune(r)
			}
		case quote == '"':
			switch r {
			case '\\':
				escaped = true
			case '"':
				quote = 0
			default:
				tok.WriteRune(r)
			}
		case r == '\\':
			escaped = true
		case r == '\'' || r == '"':
			quote = r
		case unicode.IsSpace(r):
			return tok.String(), s[i:], true, nil
		default:
			tok.WriteRune(r)
		}
	}

	if quote != 0 {
		return "", "", false, fmt.Errorf("unterminated %c quote", quote)
	}
	if escaped {
		return "", "", false, fmt.Errorf("trailing backslash")
	}
	return tok.String(), "", true, nil
}

// countTokens returns how many arguments remain in s. An unterminated quote
// counts as one.
func countTokens(s string) int {
	n := 0
	for {
		_, rest, ok, err := nextToken(s)
		if err != nil {
			return n + 1
		}
		if !ok {
			return n
		}
		n++
		s = rest
	}
}

// splitSubstitution parses an LLDB "s/regex/subst/" argument. The character
// after 's' is the delimiter; there is no escaping, and the final delimiter
// must end the argument.
func splitSubstitution(arg string) (pattern, template string, err error) {
	if len(arg) < 4 || arg[0] != 's' {
		return "", "", fmt.Errorf("substitution %q must have the form s/<regex>/<subst>/", arg)
	}
	delim := arg[1]
	body := arg[2:]

	first := strings.IndexByte(body, delim)
	if first < 0 {
		return "", "", fmt.Errorf("substitution %q is missing the %q after the regex", arg, delim)
	}
	rest := body[first+1:]
	second := strings.IndexByte(rest, delim)
	if second < 0 {
		return "", "", fmt.Errorf("substitution %q is missing the final %q", arg, delim)
	}
	if second != len(rest)-1 {
		return "", "", fmt.Errorf("substitution %q has text after the final %q", arg, delim)
	}

	pattern, template = body[:first], rest[:second]
	if pattern == "" {
		return "", "", fmt.Errorf("substitution %q has an empty regex", arg)
	}
	return pattern, template, nil
}

// quoteArg quotes s for an LLDB command line, preferring single quotes.
func quoteArg(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	return doubleQuote(s)
}

// doubleQuote wraps s in double quotes, escaping backslashes and quotes.
func doubleQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
