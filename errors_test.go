package match

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	cases := map[ErrorKind]string{
		KindInvalidArgument:      "InvalidArgument",
		KindIllegalExpression:    "IllegalExpression",
		KindMissingBracket:       "MissingBracket",
		KindSurplusBracket:       "SurplusBracket",
		KindInvalidMetacharacter: "InvalidMetacharacter",
		KindMaxDepthExceeded:     "MaxDepthExceeded",
		KindCaptureOverflow:      "CaptureOverflow",
		KindInvalidOption:        "InvalidOption",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestErrorKindStringUnknown(t *testing.T) {
	got := ErrorKind(255).String()
	if !strings.Contains(got, "255") {
		t.Errorf("ErrorKind(255).String() = %q, want it to mention 255", got)
	}
}

func TestErrorMessageIncludesKindAndPos(t *testing.T) {
	err := &Error{Kind: KindMissingBracket, Message: "expected ')'", Pos: 7}
	msg := err.Error()
	if !strings.Contains(msg, "MissingBracket") {
		t.Errorf("Error() = %q, want it to mention the kind", msg)
	}
	if !strings.Contains(msg, "7") {
		t.Errorf("Error() = %q, want it to mention the position", msg)
	}
	if !strings.Contains(msg, "expected ')'") {
		t.Errorf("Error() = %q, want it to include the message", msg)
	}
}

func TestErrorIsComparesOnlyKind(t *testing.T) {
	a := &Error{Kind: KindMissingBracket, Message: "at the top", Pos: 1}
	b := &Error{Kind: KindMissingBracket, Message: "inside a group", Pos: 99}
	c := &Error{Kind: KindCaptureOverflow, Message: "at the top", Pos: 1}

	if !errors.Is(a, b) {
		t.Error("two *Error values with the same Kind should satisfy errors.Is regardless of Message/Pos")
	}
	if errors.Is(a, c) {
		t.Error("two *Error values with different Kind should not satisfy errors.Is")
	}
}

func TestErrorIsRejectsNonErrorTargets(t *testing.T) {
	a := &Error{Kind: KindMissingBracket}
	if a.Is(errors.New("plain error")) {
		t.Error("Is should only match other *Error values")
	}
}

func TestSentinelErrorsMatchByKindAgainstFreshErrors(t *testing.T) {
	// The package exposes one sentinel *Error per Kind (mirroring the
	// teacher's nfa/error.go ErrInvalidState/ErrInvalidPattern/...  set).
	// A freshly constructed *Error of the same Kind, with a different
	// Message and Pos, must still satisfy errors.Is against the sentinel.
	fresh := &Error{Kind: KindMissingBracket, Message: "expected ')' to close group", Pos: 42}
	if !errors.Is(fresh, ErrMissingBracket) {
		t.Error("errors.Is(fresh, ErrMissingBracket) = false, want true")
	}

	sentinels := map[ErrorKind]error{
		KindInvalidArgument:      ErrInvalidArgument,
		KindIllegalExpression:    ErrIllegalExpression,
		KindMissingBracket:       ErrMissingBracket,
		KindSurplusBracket:       ErrSurplusBracket,
		KindInvalidMetacharacter: ErrInvalidMetacharacter,
		KindMaxDepthExceeded:     ErrMaxDepthExceeded,
		KindCaptureOverflow:      ErrCaptureOverflow,
		KindInvalidOption:        ErrInvalidOption,
	}
	for kind, sentinel := range sentinels {
		se, ok := sentinel.(*Error)
		if !ok || se.Kind != kind {
			t.Errorf("sentinel for %v = %#v, want an *Error with Kind %v", kind, sentinel, kind)
		}
	}
}

func TestMatchUnterminatedGroupMatchesMissingBracketSentinel(t *testing.T) {
	_, err := MatchString("(abc", "abc")
	if !errors.Is(err, ErrMissingBracket) {
		t.Fatalf("errors.Is(err, ErrMissingBracket) = false for err = %v", err)
	}
}
