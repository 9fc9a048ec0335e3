package match

// parseConcatenation parses a sequence of repetition-atoms terminated by a
// block boundary: end of pattern, ')', '|' or '$'. Any atom that fails to
// match or errors aborts the whole concatenation.
func (s *matcherState) parseConcatenation() (bool, error) {
	for {
		if s.patternPos < len(s.pattern) && s.pattern[s.patternPos] == ')' {
			break
		}

		matched, err := s.parseRepetition()
		if err != nil || !matched {
			return matched, err
		}

		if s.atBlockBoundary() {
			break
		}
	}
	return true, nil
}

// atBlockBoundary reports whether the pattern cursor sits on a byte where
// the current alternation arm ends: end of pattern, '|' or '$'.
func (s *matcherState) atBlockBoundary() bool {
	if s.patternPos >= len(s.pattern) {
		return true
	}
	switch s.pattern[s.patternPos] {
	case '|', '$':
		return true
	default:
		return false
	}
}
