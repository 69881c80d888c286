package field

import (
	"fmt"
	"regexp"
	"time"

	"github.com/dlclark/regexp2"
)

// matchTimeout bounds backtracking patterns, which run on every keystroke.
const matchTimeout = 50 * time.Millisecond

// Pattern decides whether a whole value matches a field rule.
type Pattern interface {
	MatchString(value string) bool
	String() string
}

// CompilePattern anchors expr so it must match the entire value. Expressions
// RE2 accepts use the standard library engine; look-arounds and backreferences
// fall back to regexp2 in its RE2 compatibility mode, so character classes
// such as \d stay ASCII either way.
func CompilePattern(expr string) (Pattern, error) {
	anchored := `\A(?:` + expr + `)\z`

	if re, err := regexp.Compile(anchored); err == nil {
		return re2Pattern{re: re, expr: expr}, nil
	}

	re, err := regexp2.Compile(anchored, regexp2.RE2)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", expr, err)
	}
	re.MatchTimeout = matchTimeout
	return backtrackPattern{re: re, expr: expr}, nil
}

// MustCompilePattern is CompilePattern for built-in presets.
func MustCompilePattern(expr string) Pattern {
	p, err := CompilePattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

type re2Pattern struct {
	re   *regexp.Regexp
	expr string
}

func (p re2Pattern) MatchString(value string) bool { return p.re.MatchString(value) }
func (p re2Pattern) String() string               { return p.expr }

type backtrackPattern struct {
	re   *regexp2.Regexp
	expr string
}

// MatchString treats a timed-out match as a mismatch.
func (p backtrackPattern) MatchString(value string) bool {
	ok, err := p.re.MatchString(value)
	return err == nil && ok
}

func (p backtrackPattern) String() string { return p.expr }
