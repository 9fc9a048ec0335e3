package match

// Character predicates. Each is a stateless test over a single byte; none
// of them can fail, so they return plain bool rather than participating in
// the error-propagating result convention the parse* methods use.

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}

func isWordChar(c byte) bool {
	return isDigit(c) || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '_'
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// isOptionLetter reports whether c could name an inline option in (?x).
func isOptionLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// foldByte folds an ASCII lowercase letter to uppercase; other bytes pass
// through unchanged.
func foldByte(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// bytesEqual compares c1 and c2 for equality, folding case first when
// options has optionNoCase set.
func bytesEqual(options uint8, c1, c2 byte) bool {
	if options&optionNoCase != 0 {
		c1, c2 = foldByte(c1), foldByte(c2)
	}
	return c1 == c2
}

// invert applies pred to b and negates the result, except that end of
// input (ok == false) never matches a negated class: \D, \H, \S and \W
// must all fail at end of input, the same as their non-negated forms.
func invert(b byte, ok bool, pred func(byte) bool) bool {
	if !ok {
		return false
	}
	return !pred(b)
}
