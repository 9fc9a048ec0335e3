package match

import "fmt"

// ErrorKind classifies the ways a pattern can fail to be processed.
//
// Every component of the engine tests its callee's result and propagates
// an error unchanged; nothing recovers from one locally. Kind values are
// part of this package's contract and will not be renumbered.
type ErrorKind uint8

const (
	// KindInvalidArgument indicates a caller contract violation: a
	// positive maxCaptures with a nil captures slice.
	KindInvalidArgument ErrorKind = iota

	// KindIllegalExpression indicates a generic syntax error: a stray
	// '(?' prefix without a recognized mode, a class escape used where a
	// non-class escape was required, or trailing pattern content after
	// the top-level match.
	KindIllegalExpression

	// KindMissingBracket indicates a ')' was expected but not found.
	KindMissingBracket

	// KindSurplusBracket is reserved for a stray ')' with no matching
	// '('. The documented parse paths never produce it directly: an
	// unmatched ')' at the top level surfaces as KindIllegalExpression
	// via the trailing-content check in parseExpr, since parseConcatenation
	// stops at ')' without consuming it.
	KindSurplusBracket

	// KindInvalidMetacharacter indicates a malformed escape: a dangling
	// '\' at the end of the pattern, a \x escape with a missing or
	// non-hex nibble, or a dangling \! target.
	KindInvalidMetacharacter

	// KindMaxDepthExceeded indicates a '(' would push the group nesting
	// depth beyond the caller-supplied maxDepth.
	KindMaxDepthExceeded

	// KindCaptureOverflow indicates a capturing group closed successfully
	// but no capture slot remained to record it in.
	KindCaptureOverflow

	// KindInvalidOption indicates an inline '(?x)' group where x is not
	// one of the recognized option letters ('i' or 'I').
	KindInvalidOption
)

// String returns the Kind's name, as used in Error's message.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindIllegalExpression:
		return "IllegalExpression"
	case KindMissingBracket:
		return "MissingBracket"
	case KindSurplusBracket:
		return "SurplusBracket"
	case KindInvalidMetacharacter:
		return "InvalidMetacharacter"
	case KindMaxDepthExceeded:
		return "MaxDepthExceeded"
	case KindCaptureOverflow:
		return "CaptureOverflow"
	case KindInvalidOption:
		return "InvalidOption"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", uint8(k))
	}
}

// Error is the error type returned by Match and every internal parsing
// step. Pos is the byte offset into the pattern at which the problem was
// detected; it is best-effort context for diagnostics, not part of the
// matching contract.
type Error struct {
	Kind    ErrorKind
	Message string
	Pos     int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("subreg: %s at pattern offset %d: %s", e.Kind, e.Pos, e.Message)
}

// Is reports whether target is an *Error of the same Kind, so callers can
// write errors.Is(err, match.ErrMissingBracket) without caring about Pos or
// Message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel errors, one per Kind, mirroring the teacher's nfa/error.go
// (ErrInvalidState, ErrInvalidPattern, ...): a fixed set of package-level
// errors callers can compare against with errors.Is. Apart from
// ErrInvalidArgument, which Match returns as is, every error this package
// returns is a distinct *Error built by errorf with its own Message and Pos,
// but since Is compares only Kind, errors.Is(err, match.ErrMissingBracket)
// reports true regardless of which one produced it.
var (
	// ErrInvalidArgument is returned by Match when maxCaptures > 0 but
	// captures is nil.
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument, Message: "nil capture buffer with non-zero maxCaptures"}

	// ErrIllegalExpression is a generic syntax error: see KindIllegalExpression.
	ErrIllegalExpression = &Error{Kind: KindIllegalExpression, Message: "illegal expression"}

	// ErrMissingBracket indicates a ')' was expected but not found.
	ErrMissingBracket = &Error{Kind: KindMissingBracket, Message: "missing bracket"}

	// ErrSurplusBracket is reserved; see KindSurplusBracket.
	ErrSurplusBracket = &Error{Kind: KindSurplusBracket, Message: "surplus bracket"}

	// ErrInvalidMetacharacter indicates a malformed escape sequence.
	ErrInvalidMetacharacter = &Error{Kind: KindInvalidMetacharacter, Message: "invalid metacharacter"}

	// ErrMaxDepthExceeded indicates group nesting exceeded the caller's maxDepth.
	ErrMaxDepthExceeded = &Error{Kind: KindMaxDepthExceeded, Message: "max depth exceeded"}

	// ErrCaptureOverflow indicates a capturing group closed with no slot left to record it in.
	ErrCaptureOverflow = &Error{Kind: KindCaptureOverflow, Message: "capture overflow"}

	// ErrInvalidOption indicates an unrecognized inline '(?x)' option letter.
	ErrInvalidOption = &Error{Kind: KindInvalidOption, Message: "invalid option"}
)

// errorf builds an *Error positioned at the matcher's current pattern
// cursor.
func (s *matcherState) errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: s.patternPos}
}
