package pattern

import "github.com/coregx/coregex"

// Coregex is a Matcher backed by a compiled coregex.Regex.
//
// Syntax is RE2, as in Go's stdlib regexp. Searches starting past offset 0
// see the haystack from origin onwards, so ^ anchors at origin.
//
// coregex reports some groups that did not take part in a match with an
// inverted or out-of-range index pair; Match normalizes those to -1.
type Coregex struct {
	re *coregex.Regex
}

// Compile compiles expr with coregex.
func Compile(expr string) (*Coregex, error) {
	re, err := coregex.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &Coregex{re: re}, nil
}

// MustCompile is like Compile but panics if expr cannot be parsed.
func MustCompile(expr string) *Coregex {
	return &Coregex{re: coregex.MustCompile(expr)}
}

// FromRegex wraps an already compiled coregex.Regex.
func FromRegex(re *coregex.Regex) *Coregex {
	return &Coregex{re: re}
}

// Match implements Matcher.
func (c *Coregex) Match(haystack string, origin int) (Match, bool) {
	if origin < 0 || origin > len(haystack) {
		return Match{}, false
	}
	idx := c.re.FindStringSubmatchIndex(haystack[origin:])
	if idx == nil {
		return Match{}, false
	}
	normalizeGroups(idx, len(haystack)-origin)
	if idx[0] < 0 {
		return Match{}, false
	}
	m := Match{Start: idx[0], End: idx[1], Groups: idx}
	return m.shift(origin), true
}

// normalizeGroups marks every index pair that does not describe a slice of
// a haystack of length n as a group that did not participate.
func normalizeGroups(idx []int, n int) {
	for i := 0; i+1 < len(idx); i += 2 {
		start, end := idx[i], idx[i+1]
		if start < 0 || start > end || end > n {
			idx[i], idx[i+1] = -1, -1
		}
	}
}

// String returns the source text of the pattern.
func (c *Coregex) String() string {
	return c.re.String()
}
