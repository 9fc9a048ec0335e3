package match

// parseAlternation parses '|'-separated concatenations; the first arm that
// matches wins and the remaining arms are skipped (not evaluated) rather
// than discarded after matching, so a later arm's side effects (captures,
// option toggles inside it) never run once an earlier arm has succeeded.
func (s *matcherState) parseAlternation() (bool, error) {
	inputBegin := s.inputPos

	for {
		matched, err := s.parseConcatenation()
		if err != nil {
			return false, err
		}

		if matched {
			// Skip past the rest of this arm (and any further arms) to
			// reach the group's closing context.
			for {
				if err := s.skipBlock(); err != nil {
					return false, err
				}
				if s.patternPos < len(s.pattern) && s.pattern[s.patternPos] == '|' {
					s.patternPos++
					continue
				}
				return true, nil
			}
		}

		if err := s.skipBlock(); err != nil {
			return false, err
		}
		if s.patternPos >= len(s.pattern) || s.pattern[s.patternPos] != '|' {
			return false, nil
		}
		s.patternPos++
		s.inputPos = inputBegin
	}
}

// skipBlock advances the pattern cursor past the remainder of the current
// alternation arm without matching, stopping at end of pattern, ')', '|'
// or '$' seen at the entry depth. It is used both after a winning arm (to
// reach the group's closing ')') and after a failed arm (to reach the
// next '|').
func (s *matcherState) skipBlock() error {
	entryDepth := s.depth

	for {
		if s.patternPos >= len(s.pattern) {
			if s.depth > entryDepth {
				return s.errorf(KindMissingBracket, "unterminated group while skipping alternation arm")
			}
			return nil
		}

		c := s.pattern[s.patternPos]
		switch c {
		case '(':
			s.depth++
			if s.depth > s.maxDepth {
				return s.errorf(KindMaxDepthExceeded, "group nesting depth %d exceeds max depth %d", s.depth, s.maxDepth)
			}
		case ')':
			if s.depth == entryDepth {
				return nil
			}
			s.depth--
		case '|', '$':
			if s.depth == entryDepth {
				return nil
			}
		default:
			if c == '\\' {
				s.patternPos++
				if s.patternPos >= len(s.pattern) {
					return s.errorf(KindInvalidMetacharacter, "dangling escape while skipping alternation arm")
				}
			}
		}
		s.patternPos++
	}
}

// parseSubExpr wraps parseAlternation with option save/restore, so an
// inline (?i)/(?I) set inside a group reverts at that group's ')' rather
// than leaking into the pattern that follows.
func (s *matcherState) parseSubExpr() (bool, error) {
	savedOptions := s.options
	matched, err := s.parseAlternation()
	s.options = savedOptions
	return matched, err
}
