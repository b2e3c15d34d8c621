package truncate

var (
	paragraphBreak = []rune("\n\n")
	lineBreak      = []rune("\n")
	sentenceEnds   = [][]rune{[]rune(". "), []rune("! "), []rune("? ")}
	clauseEnds     = [][]rune{[]rune(", "), []rune("; "), []rune(": ")}
	space          = []rune(" ")
)

// breakpoint finds the cut position for runes, which must be longer than
// target. The search window includes the rune at target so a terminator
// right at the limit followed by a space still qualifies.
func (t *Truncator) breakpoint(runes []rune, target int) (int, Breakpoint) {
	window := runes[:target+1]
	minLine := int(t.lineThreshold * float64(target))
	minSentence := int(t.sentenceThreshold * float64(target))
	minClause := int(t.clauseThreshold * float64(target))

	if i := lastIndex(window, paragraphBreak, minLine); i > 0 {
		return i, Paragraph
	}
	if i := lastIndex(window, lineBreak, minLine); i > 0 && i <= target {
		return i, Line
	}
	if i := lastIndexAny(window, sentenceEnds, minSentence); i >= 0 {
		// Keep the terminator.
		return i + 1, SentenceEnd
	}
	if i := lastIndexAny(window, clauseEnds, minClause); i > 0 {
		// Drop the clause punctuation.
		return i, Clause
	}
	if i := lastIndex(window, space, 1); i > 0 && i <= target {
		return i, Word
	}
	return target, HardCut
}

// lastIndex returns the highest index >= min where pat starts in s, or -1.
func lastIndex(s, pat []rune, min int) int {
	if min < 0 {
		min = 0
	}
	for i := len(s) - len(pat); i >= min; i-- {
		if hasPrefixAt(s, pat, i) {
			return i
		}
	}
	return -1
}

// lastIndexAny returns the closest-to-the-end match of any pattern.
func lastIndexAny(s []rune, pats [][]rune, min int) int {
	best := -1
	for _, pat := range pats {
		if i := lastIndex(s, pat, min); i > best {
			best = i
		}
	}
	return best
}

func hasPrefixAt(s, pat []rune, at int) bool {
	if at+len(pat) > len(s) {
		return false
	}
	for j, r := range pat {
		if s[at+j] != r {
			return false
		}
	}
	return true
}
