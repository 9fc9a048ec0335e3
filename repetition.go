package match

// parseRepetition parses one atom via parseLiteral and then applies a
// trailing '?', '*' or '+' if present.
//
// The greedy loop commits to the longest run the atom will accept and then
// hands control back to the enclosing concatenation with the pattern
// cursor just past the quantifier — there is no backtracking across
// quantifiers into the remainder of the pattern. If what follows then
// fails to match, the whole pattern fails rather than the engine
// retrying with a shorter run. This is a deliberate simplification for
// the engine's footprint goals: a pattern like "A*A" will not match "A".
func (s *matcherState) parseRepetition() (bool, error) {
	regexBegin := s.patternPos
	checkpoint := s.inputPos

	matched, err := s.parseLiteral()
	if err != nil {
		return false, err
	}
	if s.patternPos >= len(s.pattern) {
		return matched, nil
	}

	switch s.pattern[s.patternPos] {
	case '?':
		s.patternPos++
		if !matched {
			s.inputPos = checkpoint
		}
		return true, nil

	case '+':
		if !matched {
			return false, nil
		}

	case '*':
		if !matched {
			s.patternPos++
			s.inputPos = checkpoint
			return true, nil
		}

	default:
		return matched, nil
	}

	// '+' with a first match, or '*' with a first match: fall into the
	// greedy loop, re-parsing the same atom until it stops matching.
	regexEnd := s.patternPos + 1

	for {
		s.patternPos = regexBegin
		checkpoint = s.inputPos

		matched, err = s.parseLiteral()
		if err != nil {
			return false, err
		}
		if !matched {
			s.inputPos = checkpoint
			break
		}
	}

	s.patternPos = regexEnd
	return true, nil
}
