// Package match implements a small-footprint, anchored regular-expression
// matching engine.
//
// A single call to Match parses the pattern and matches it against the
// input in one pass: there is no compile step, no intermediate AST, and no
// dynamic allocation on the engine's hot path. This makes it suitable for
// constrained environments where a full NFA/DFA regex engine (such as the
// multi-strategy engine this package's sibling, coregex, implements) is
// too heavy.
//
// The supported dialect is deliberately restricted: no bracketed character
// classes, no counted repetition (`{m,n}`), no backreferences, and no
// Unicode (the engine operates over 8-bit bytes). Matching is always
// anchored to the full input; `^` and `$` are accepted but have no effect
// beyond validation, since there is no unanchored search.
//
// Basic usage:
//
//	n, err := match.Match(`(foo) (bar)`, "foo bar", nil, 0, 8)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if n > 0 {
//	    fmt.Println("matched")
//	}
//
// With capture groups:
//
//	var captures [3]match.Capture
//	n, err := match.Match(`(foo) (bar)`, "foo bar", captures[:], 3, 8)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(captures[0].String("foo bar")) // "foo bar"
//	fmt.Println(captures[1].String("foo bar")) // "foo"
//	fmt.Println(captures[2].String("foo bar")) // "bar"
//
// Limitations (by design, not yet-implemented gaps):
//   - No unanchored search: the pattern must account for the whole input.
//   - No character classes in brackets, no `{m,n}` repetition, no backreferences.
//   - No Unicode: bytes only.
//   - Greedy quantifiers never backtrack into the remainder of the pattern
//     once committed; `A*A` does not match `A`. See parseRepetition.
package match

// Match parses pattern and matches it against the entirety of input.
//
// captures, if non-nil, receives one descriptor per closed capturing group
// in the order its closing ')' was reached along the winning path, plus
// the overall match in captures[0]. maxCaptures bounds how many of those
// slots the engine is permitted to use; it would typically equal
// len(captures), but may be smaller to reserve trailing slots. If
// maxCaptures is greater than zero, captures must be non-nil.
//
// maxDepth bounds the nesting depth of parenthesized groups, which in turn
// bounds the engine's recursion (and therefore stack usage): Match does not
// allocate on the heap while matching, so maxDepth is the only resource
// limit a caller needs to reason about. The one heap allocation is the
// *Error built when the pattern cannot be processed.
//
// The return value follows the same convention as the reference C engine
// this package is adapted from: a positive count of populated captures
// (always >= 1 on a match, since slot 0 is always written when
// maxCaptures > 0), zero for no match, or a non-nil error describing why
// the pattern itself could not be processed (see ErrorKind).
func Match(pattern, input string, captures []Capture, maxCaptures, maxDepth int) (int, error) {
	if maxCaptures > 0 && captures == nil {
		return 0, ErrInvalidArgument
	}

	st := &matcherState{
		pattern:      pattern,
		input:        input,
		captures:     captures,
		maxCaptures:  maxCaptures,
		captureIndex: 1,
		maxDepth:     maxDepth,
	}

	matched, err := st.parseExpr()
	if err != nil {
		return 0, err
	}
	if !matched {
		return 0, nil
	}

	if maxCaptures > 0 {
		captures[0] = Capture{Start: 0, Length: st.inputPos}
	}
	return st.captureIndex, nil
}

// MatchString reports whether pattern matches the entirety of input.
//
// It requests no captures and uses DefaultLimits's depth bound; use Match
// directly for control over either.
//
// Example:
//
//	ok, err := match.MatchString(`\d+-\d+`, "555-1234")
func MatchString(pattern, input string) (bool, error) {
	limits := DefaultLimits()
	n, err := Match(pattern, input, nil, 0, limits.MaxDepth)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MatchCaptures matches pattern against input and returns the populated
// capture descriptors, or nil if the pattern did not match.
//
// Unlike Match, this allocates the capture buffer for the caller: it is
// convenience sugar over the allocation-free core, not a replacement for
// it. Callers in allocation-sensitive code should call Match directly with
// a stack-allocated or pooled buffer instead.
//
// Example:
//
//	caps, err := match.MatchCaptures(`(\w+)@(\w+)`, "alice@example",
//	    match.Limits{MaxCaptures: 3, MaxDepth: 8})
func MatchCaptures(pattern, input string, limits Limits) ([]Capture, error) {
	captures := make([]Capture, limits.MaxCaptures)
	n, err := Match(pattern, input, captures, limits.MaxCaptures, limits.MaxDepth)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return captures[:n], nil
}

// Limits bundles the two resource bounds Match takes as parameters, for
// callers who would rather configure a named value than thread two bare
// integers through their own APIs.
type Limits struct {
	// MaxCaptures is the maximum number of capture slots the engine may
	// populate, including slot 0 (the overall match).
	MaxCaptures int

	// MaxDepth bounds the nesting depth of parenthesized groups, and so
	// bounds the engine's recursion depth.
	MaxDepth int
}

// DefaultLimits returns limits with no capture slots and a depth bound
// generous enough for ordinary hand-written patterns without letting a
// malformed or adversarial pattern drive unbounded recursion.
func DefaultLimits() Limits {
	return Limits{MaxCaptures: 0, MaxDepth: 32}
}
