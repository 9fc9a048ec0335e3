package match

// Capture names a substring of the input matched by a capturing group, or
// (at index 0) the input span matched by the whole pattern.
//
// Captures are recorded in the order their closing ')' is reached along the
// winning path: for simple patterns that is opening-paren order, but a
// repeated group such as (\d)+ produces one Capture per iteration, in
// left-to-right order, each iteration taking the next free slot rather than
// overwriting an earlier one — see TestMatchRepeatClassCapture in
// match_test.go.
type Capture struct {
	// Start is the byte offset into the matched input where the capture begins.
	Start int

	// Length is the number of bytes the capture spans.
	Length int
}

// End returns the exclusive byte offset where the capture ends.
func (c Capture) End() int {
	return c.Start + c.Length
}

// String returns the substring of input the capture names.
//
// input must be the same string (or an equal one) passed to Match; the
// capture stores only offsets, not a copy of the bytes.
func (c Capture) String(input string) string {
	return input[c.Start:c.End()]
}
