// Package reorder computes the provisional sibling order shown while an item
// is dragged inside its own container.
package reorder

// Swap returns a copy of order with the element at moveIndex relocated to
// targetIndex. Elements between the two indexes shift one slot toward the
// vacated position; everything else keeps its relative order. Indexes past
// either end are clamped into the slice.
func Swap[T any](order []T, moveIndex, targetIndex int) []T {
	out := make([]T, len(order))
	copy(out, order)
	if len(order) == 0 {
		return out
	}
	moveIndex = clampIndex(moveIndex, len(order))
	targetIndex = clampIndex(targetIndex, len(order))
	if moveIndex == targetIndex {
		return out
	}

	item := order[moveIndex]
	if moveIndex > targetIndex {
		copy(out[targetIndex+1:moveIndex+1], order[targetIndex:moveIndex])
	} else {
		copy(out[moveIndex:targetIndex], order[moveIndex+1:targetIndex+1])
	}
	out[targetIndex] = item
	return out
}

// Identity returns [0, 1, ..., n-1].
func Identity(n int) []int {
	if n < 0 {
		n = 0
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
