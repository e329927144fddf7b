// Package listmove relocates one element between two ordered lists without
// touching the inputs.
package listmove

import (
	"errors"
	"fmt"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// Move removes source[sourceIndex] and inserts it into destination at
// destIndex, returning fresh copies of both lists. It requires
// 0 <= sourceIndex < len(source) and 0 <= destIndex <= len(destination).
//
// Passing the same slice twice is a same-list move: the element is moved
// within one copy, which is returned as both results.
func Move[T any](source, destination []T, sourceIndex, destIndex int) ([]T, []T, error) {
	if sourceIndex < 0 || sourceIndex >= len(source) {
		return nil, nil, fmt.Errorf("source index %d of %d: %w", sourceIndex, len(source), ErrIndexOutOfRange)
	}
	if destIndex < 0 || destIndex > len(destination) {
		return nil, nil, fmt.Errorf("destination index %d of %d: %w", destIndex, len(destination), ErrIndexOutOfRange)
	}
	if sameList(source, destination) {
		out, err := Reorder(source, sourceIndex, destIndex)
		return out, out, err
	}

	item := source[sourceIndex]
	src := make([]T, 0, len(source)-1)
	src = append(src, source[:sourceIndex]...)
	src = append(src, source[sourceIndex+1:]...)

	dst := make([]T, 0, len(destination)+1)
	dst = append(dst, destination[:destIndex]...)
	dst = append(dst, item)
	dst = append(dst, destination[destIndex:]...)
	return src, dst, nil
}

// Reorder moves list[from] so it ends at index to. A to equal to len(list)
// appends.
func Reorder[T any](list []T, from, to int) ([]T, error) {
	if from < 0 || from >= len(list) {
		return nil, fmt.Errorf("source index %d of %d: %w", from, len(list), ErrIndexOutOfRange)
	}
	if to < 0 || to > len(list) {
		return nil, fmt.Errorf("destination index %d of %d: %w", to, len(list), ErrIndexOutOfRange)
	}
	if to == len(list) {
		to--
	}
	out := make([]T, 0, len(list))
	out = append(out, list[:from]...)
	out = append(out, list[from+1:]...)
	out = append(out[:to], append([]T{list[from]}, out[to:]...)...)
	return out, nil
}

func sameList[T any](a, b []T) bool {
	return len(a) == len(b) && len(a) > 0 && &a[0] == &b[0]
}
