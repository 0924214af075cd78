package rank

// sequenceRatio is a character-sequence similarity in [0,1]: twice the
// number of characters in common matching blocks divided by the total
// length of both strings. Blocks are found by repeatedly taking the longest
// common substring and recursing on what is left of each side, so
// transposed fragments still count once.
func sequenceRatio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	matched := matchingRunes(ra, rb)
	return 2 * float64(matched) / float64(len(ra)+len(rb))
}

func matchingRunes(a, b []rune) int {
	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingRunes(a[:ai], b[:bi]) +
		matchingRunes(a[ai+size:], b[bi+size:])
}

// longestCommonBlock finds the longest common substring of a and b via a
// rolling dynamic-programming row. Ties resolve to the earliest position in
// a, then b, keeping results deterministic.
func longestCommonBlock(a, b []rune) (ai, bi, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > size {
					size = curr[j]
					ai = i - size
					bi = j - size
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
	}
	return ai, bi, size
}
