package match

// option bits for matcherState.options.
const (
	// optionNoCase folds ASCII letters to uppercase on both sides of a
	// byte comparison when set. Toggled by the inline (?i)/(?I) groups.
	optionNoCase uint8 = 1 << 0
)

// groupMode records how parseGroup should treat the group it just parsed.
type groupMode int

const (
	groupNonCapture groupMode = iota
	groupCapture
	groupPosLookAhead
	groupNegLookAhead
)

// matcherState is the single mutable context threaded through one call to
// Match. It is exclusively owned by that call: distinct calls get distinct
// states, so the engine is trivially reentrant as long as callers supply
// distinct capture buffers.
//
// Unlike the C engine this package is adapted from, pattern and input are
// plain Go strings rather than NUL-terminated byte pointers: "end of
// string" is expressed as patternPos == len(pattern) / inputPos ==
// len(input) rather than a sentinel zero byte, which removes an entire
// class of off-by-one terminator bugs without changing any matching
// semantics (strings and their lengths are tracked together and a string
// value is always exactly as long as it is, whether or not it contains an
// embedded NUL byte).
type matcherState struct {
	pattern    string
	patternPos int

	input    string
	inputPos int

	captures     []Capture
	maxCaptures  int
	captureIndex int

	depth    int
	maxDepth int

	options uint8
}
