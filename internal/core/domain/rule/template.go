package rule

import (
	"fmt"
	"strconv"
	"strings"
)

// segment is one piece of a parsed template: either literal text or a
// reference to a capture group (group > 0).
type segment struct {
	literal string
	group   int
}

/*
Template is a command template with positional placeholders.

A '%' followed by one or more decimal digits is a placeholder for that
capture group; digits are read greedily, so "%12" refers to group 12.
"%%" is a literal '%'. Any other '%' is kept as-is.
*/
type Template struct {
	raw      string
	segments []segment
	maxGroup int
}

// ParseTemplate parses raw into a Template. Placeholder %0 is rejected since
// capture groups are numbered from 1.
func ParseTemplate(raw string) (Template, error) {
	t := Template{raw: raw}
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			t.segments = append(t.segments, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '%' || i+1 >= len(raw) {
			lit.WriteByte(c)
			continue
		}
		next := raw[i+1]
		if next == '%' {
			lit.WriteByte('%')
			i++
			continue
		}
		if !isDigit(next) {
			lit.WriteByte(c)
			continue
		}

		j := i + 1
		for j < len(raw) && isDigit(raw[j]) {
			j++
		}
		digits := raw[i+1 : j]
		group, err := strconv.Atoi(digits)
		if err != nil {
			return Template{}, fmt.Errorf("%w: placeholder %%%s in %q: %v", ErrInvalidTemplate, digits, raw, err)
		}
		if group == 0 {
			return Template{}, fmt.Errorf("%w: placeholder %%0 in %q, capture groups start at 1", ErrInvalidTemplate, raw)
		}

		flush()
		t.segments = append(t.segments, segment{group: group})
		if group > t.maxGroup {
			t.maxGroup = group
		}
		i = j - 1
	}
	flush()

	return t, nil
}

// String returns the template text as written.
func (t Template) String() string {
	return t.raw
}

// MaxGroup returns the highest capture group index referenced, or 0 when the
// template has no placeholders.
func (t Template) MaxGroup() int {
	return t.maxGroup
}

// Placeholders returns the referenced group indices in template order.
func (t Template) Placeholders() []int {
	var groups []int
	for _, s := range t.segments {
		if s.group > 0 {
			groups = append(groups, s.group)
		}
	}
	return groups
}

/*
Expand substitutes capture groups into the template in a single pass.

src is the string the pattern was matched against and loc is the result of
regexp.FindStringSubmatchIndex on it. Substituted values are never scanned
for placeholders again. A referenced group that is missing from loc, or that
did not participate in the match, is an ErrPlaceholderSubstitution.
*/
func (t Template) Expand(src string, loc []int) (string, error) {
	var out strings.Builder
	for _, s := range t.segments {
		if s.group == 0 {
			out.WriteString(s.literal)
			continue
		}
		start, end := 2*s.group, 2*s.group+1
		if end >= len(loc) {
			return "", fmt.Errorf("%w: template %q references %%%d but the match has %d group(s)", ErrPlaceholderSubstitution, t.raw, s.group, len(loc)/2-1)
		}
		if loc[start] < 0 {
			return "", fmt.Errorf("%w: template %q references %%%d which did not participate in the match", ErrPlaceholderSubstitution, t.raw, s.group)
		}
		out.WriteString(src[loc[start]:loc[end]])
	}
	return out.String(), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
