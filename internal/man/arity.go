package man

import (
	"strconv"
	"strings"
)

// ScanArity infers the argument count from a raw signature line. It takes
// the substring between the first opening parenthesis and its matching close
// and counts the top-level commas inside it: an empty or all-whitespace
// interior means arity 0, anything else means commas+1. Commas nested inside
// inner parentheses do not count, and text past the matching close (such as
// a return annotation) is ignored. The result is never negative.
//
// A line with no parenthesis, or with an unterminated one, is handled
// best-effort: no parenthesis means arity 0, an unterminated one is scanned
// to the end of the line.
func ScanArity(sig string) int {
	open := strings.IndexByte(sig, '(')
	if open < 0 {
		return 0
	}
	interior := sig[open+1:]
	depth, commas := 0, 0
	end := len(interior)
scan:
	for i := 0; i < len(interior); i++ {
		switch interior[i] {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				end = i
				break scan
			}
			depth--
		case ',':
			if depth == 0 {
				commas++
			}
		}
	}
	if strings.TrimSpace(interior[:end]) == "" {
		return 0
	}
	return commas + 1
}

// BuildSignature produces placeholder parameter names for a function of the
// given arity. The legacy mode emits arity+1 placeholders (arg0..argN), one
// more than the conventional count; this off-by-one is preserved for
// compatibility with existing consumers. Pass exact=true to emit exactly
// arity placeholders instead.
func BuildSignature(arity int, exact bool) []string {
	n := arity + 1
	if exact {
		n = arity
	}
	args := make([]string, n)
	for i := range args {
		args[i] = "arg" + strconv.Itoa(i)
	}
	return args
}
