// Package similarity scores how alike two strings are, as a percentage.
package similarity

// Score returns the similarity of a and b in [0,100].
//
// Matching is longest-common-substring based: the longest run shared by
// both strings is counted, then the remainders on each side are matched
// recursively. Transpositions and missing words therefore reduce the
// score roughly in proportion to how much text disagrees, not strictly
// character by character.
func Score(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 100
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	matched := commonChars(a, b)
	return 200 * float64(matched) / float64(len(a)+len(b))
}

// commonChars counts characters covered by recursively matching the
// longest common substring and then the left and right remainders.
func commonChars(a, b string) int {
	posA, posB, run := longestCommonRun(a, b)
	if run == 0 {
		return 0
	}
	total := run
	total += commonChars(a[:posA], b[:posB])
	total += commonChars(a[posA+run:], b[posB+run:])
	return total
}

func longestCommonRun(a, b string) (posA, posB, max int) {
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			k := 0
			for i+k < len(a) && j+k < len(b) && a[i+k] == b[j+k] {
				k++
			}
			if k > max {
				posA, posB, max = i, j, k
			}
		}
	}
	return posA, posB, max
}
