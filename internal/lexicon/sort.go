// internal/lexicon/sort.go
//
// Merge sort over the word slice. The lexicon is sorted exactly once per
// session, so a simple recursive split-and-merge is plenty: O(n log n)
// comparisons, O(n) auxiliary space per level, and the recursion depth is
// log2(MaxWords) ≈ 17 at the configured cap.
package lexicon

// mergeSort sorts words in place, ascending.
func mergeSort(words []string) {
	n := len(words)
	if n <= 1 {
		return
	}
	mid := n / 2
	left := append([]string(nil), words[:mid]...)
	right := append([]string(nil), words[mid:]...)
	mergeSort(left)
	mergeSort(right)
	merge(left, right, words)
}

// merge interleaves two sorted halves into dst by repeated minimum.
func merge(left, right, dst []string) {
	li, ri := 0, 0
	for li+ri < len(dst) {
		if ri == len(right) || (li < len(left) && left[li] < right[ri]) {
			dst[li+ri] = left[li]
			li++
		} else {
			dst[li+ri] = right[ri]
			ri++
		}
	}
}
