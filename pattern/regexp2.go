package pattern

import (
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// Regexp2 is a Matcher backed by dlclark/regexp2.
//
// It accepts .NET/Perl-style syntax that RE2 rejects: lookaround,
// backreferences and atomic groups. regexp2 reports offsets in runes; Match
// translates them into byte offsets. A search that fails with an error (for
// example when MatchTimeout elapses) is reported as no match.
type Regexp2 struct {
	re *regexp2.Regexp
}

// CompileRegexp2 compiles expr with regexp2 using the given options.
func CompileRegexp2(expr string, opts regexp2.RegexOptions) (*Regexp2, error) {
	re, err := regexp2.Compile(expr, opts)
	if err != nil {
		return nil, err
	}
	return &Regexp2{re: re}, nil
}

// MustCompileRegexp2 is like CompileRegexp2 but panics on error.
func MustCompileRegexp2(expr string, opts regexp2.RegexOptions) *Regexp2 {
	return &Regexp2{re: regexp2.MustCompile(expr, opts)}
}

// Match implements Matcher.
func (r *Regexp2) Match(haystack string, origin int) (Match, bool) {
	if origin < 0 || origin > len(haystack) {
		return Match{}, false
	}
	input := haystack[origin:]
	m, err := r.re.FindStringMatch(input)
	if err != nil || m == nil {
		return Match{}, false
	}

	offsets := runeOffsets(input)
	groups := make([]int, 2*m.GroupCount())
	for i := 0; i < m.GroupCount(); i++ {
		g := m.GroupByNumber(i)
		if g == nil || len(g.Captures) == 0 {
			groups[2*i], groups[2*i+1] = -1, -1
			continue
		}
		groups[2*i] = offsets[g.Index]
		groups[2*i+1] = offsets[g.Index+g.Length]
	}
	match := Match{Start: groups[0], End: groups[1], Groups: groups}
	return match.shift(origin), true
}

// String returns the source text of the pattern.
func (r *Regexp2) String() string {
	return r.re.String()
}

// runeOffsets returns the byte offset of every rune in s, plus len(s).
func runeOffsets(s string) []int {
	offsets := make([]int, 0, utf8.RuneCountInString(s)+1)
	for b := range s {
		offsets = append(offsets, b)
	}
	return append(offsets, len(s))
}
