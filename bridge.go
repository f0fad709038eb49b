// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lseq

import (
	"iter"
)

// All adapts the handle to a range-over-func iterator, draining the
// remaining elements. Breaking out of the range consumes the handle the same
// way [Seq.Each] does: subsequent pulls report termination.
func (s *Seq[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		s.Each(yield)
	}
}

// FromSlice constructs a lazy sequence over the elements of values, in order.
// The slice is not copied; the caller must not mutate it while pulling.
func FromSlice[V any](values []V) *Seq[V] {
	return UnfoldUntil(
		func(i int) (V, int) { return values[i], i + 1 },
		func(i int) bool { return i >= len(values) },
		0,
	)
}

// Of constructs a lazy sequence over the given elements, in order.
func Of[V any](values ...V) *Seq[V] {
	return FromSlice(values)
}
