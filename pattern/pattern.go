// Package pattern defines the pattern-matching capability consumed by
// streams, together with implementations backed by coregex, regexp2 and an
// Aho-Corasick literal automaton.
//
// A stream never interprets patterns itself. It hands the unread part of its
// text to a Matcher and advances past whatever the Matcher reports, so any
// engine can be substituted without changing the cursor's control flow.
//
// Basic usage:
//
//	m := pattern.MustCompile(`p(sci)ng`)
//	match, ok := m.Match("sadipscing elitr", 0)
//	// ok == true, match.Start == 4, match.End == 10
//	// match.Group("sadipscing elitr", 1) == "sci"
package pattern

// Matcher finds the leftmost match of a pattern in a haystack.
//
// Match searches haystack starting at byte offset origin and reports the
// leftmost match found there. Implementations must not retain haystack.
type Matcher interface {
	Match(haystack string, origin int) (Match, bool)
}

// Match describes one match. All offsets are byte offsets relative to the
// haystack passed to Matcher.Match.
type Match struct {
	Start int
	End   int

	// Groups holds submatch index pairs in the layout used by
	// regexp.FindStringSubmatchIndex: Groups[2*i:2*i+2] is group i, with
	// group 0 the whole match. Groups that did not participate are -1.
	Groups []int
}

// Len returns the length of the whole match in bytes.
func (m Match) Len() int {
	return m.End - m.Start
}

// NumGroups returns the number of groups including group 0.
func (m Match) NumGroups() int {
	return len(m.Groups) / 2
}

// Group returns the text of group i in haystack, and whether the group
// exists and participated in the match.
func (m Match) Group(haystack string, i int) (string, bool) {
	if i < 0 || 2*i+1 >= len(m.Groups) {
		return "", false
	}
	start, end := m.Groups[2*i], m.Groups[2*i+1]
	if start < 0 || start > end || end > len(haystack) {
		return "", false
	}
	return haystack[start:end], true
}

// shift moves every offset of m by delta, leaving -1 markers alone.
func (m Match) shift(delta int) Match {
	if delta == 0 {
		return m
	}
	m.Start += delta
	m.End += delta
	groups := make([]int, len(m.Groups))
	for i, g := range m.Groups {
		if g >= 0 {
			g += delta
		}
		groups[i] = g
	}
	m.Groups = groups
	return m
}
