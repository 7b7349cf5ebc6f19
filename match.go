package paramx

import (
	"fmt"
	"regexp"
)

// BadPatternError reports a pattern that the regexp engine refused to
// compile. The underlying compile error is preserved and reachable through
// errors.Unwrap.
type BadPatternError struct {
	Pattern string
	Err     error
}

func (e *BadPatternError) Error() string {
	return fmt.Sprintf("bad parameter pattern %q: %v", e.Pattern, e.Err)
}

func (e *BadPatternError) Unwrap() error { return e.Err }

// Match returns every stored parameter name that fully matches pattern.
//
// pattern is a regular expression anchored at both ends, so "a." matches the
// whole key "ab" but never matches as a substring of "abc". Matching is
// case-insensitive unless caseSensitive is true; stored names are always
// lowercase, so a case-sensitive match against an uppercase pattern finds
// nothing. An empty pattern matches no stored name.
//
// Names are returned in store iteration order, which is unspecified and not
// stable across calls. Match never mutates the container. A pattern the
// regexp engine cannot compile yields a *BadPatternError wrapping the
// engine's error.
func (p *Params) Match(pattern string, caseSensitive bool) ([]string, error) {
	expr := "^(?:" + pattern + ")$"
	if !caseSensitive {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &BadPatternError{Pattern: pattern, Err: err}
	}

	var names []string
	for k := range p.store {
		if re.MatchString(k) {
			names = append(names, k)
		}
	}
	return names, nil
}
