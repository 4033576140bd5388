package morph

import "sort"

// longestIncreasing returns the positions in seq forming one longest strictly
// increasing subsequence, via patience sorting with binary search, O(n log n).
// Matched nodes at these positions are already in relatively correct order
// and are exempt from physical moves; everything else gets relocated, so the
// move count is len(seq) − len(result).
func longestIncreasing(seq []int) []int {
	if len(seq) == 0 {
		return nil
	}

	// tails[k] is the position in seq of the smallest tail of any increasing
	// subsequence of length k+1; prev chains each position to its
	// predecessor for reconstruction.
	tails := make([]int, 0, len(seq))
	prev := make([]int, len(seq))

	for i, v := range seq {
		k := sort.Search(len(tails), func(j int) bool {
			return seq[tails[j]] >= v
		})
		if k == 0 {
			prev[i] = -1
		} else {
			prev[i] = tails[k-1]
		}
		if k == len(tails) {
			tails = append(tails, i)
		} else {
			tails[k] = i
		}
	}

	out := make([]int, len(tails))
	p := tails[len(tails)-1]
	for k := len(tails) - 1; k >= 0; k-- {
		out[k] = p
		p = prev[p]
	}
	return out
}
