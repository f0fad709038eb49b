// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lseq

import (
	"code.hybscloud.com/kont"
	"code.hybscloud.com/lfq"
)

// laneCapacity is the bounded capacity of each alternate lane's ring.
// It bounds how far interleaved consumers may diverge: pulling one lane
// more than laneCapacity elements ahead of another is a usage error.
const laneCapacity = 256

// alternator routes source elements round-robin across k lanes.
// Elements pulled out of turn are parked in the target lane's bounded
// SPSC ring until that lane is pulled.
type alternator[V any] struct {
	src   *Seq[V]
	lanes []lfq.SPSC[V]
	turn  int
}

// Alternates splits src into k interleaved lazy subsequences: element j of
// the source becomes the next element of subsequence j mod k. Subsequences
// are lazy — source elements are pulled only as some lane demands them — and
// relative order within each lane follows the source.
//
// All returned handles share the source and must be consumed from one
// goroutine, in line with the package's single-consumer model. Consumers may
// interleave pulls freely within the lane capacity; diverging beyond it
// panics. src is consumed and must not be pulled directly afterwards.
func Alternates[V any](k int, src *Seq[V]) []*Seq[V] {
	if k <= 0 {
		panic("lseq: alternates requires at least one lane")
	}
	alt := &alternator[V]{src: src, lanes: make([]lfq.SPSC[V], k)}
	for i := range alt.lanes {
		alt.lanes[i].Init(laneCapacity)
	}
	out := make([]*Seq[V], k)
	for i := range out {
		out[i] = Build[struct{}, V](struct{}{}, alt.lane(i))
	}
	return out
}

// lane returns the builder body for subsequence i: serve the lane's ring
// first, otherwise pull the source and route elements until one lands here
// or the source terminates.
func (alt *alternator[V]) lane(i int) func(struct{}) kont.Expr[kont.Either[struct{}, struct{}]] {
	return func(struct{}) kont.Expr[kont.Either[struct{}, struct{}]] {
		if v, err := alt.lanes[i].Dequeue(); err == nil {
			return ExprEmitThen(v, Continue(struct{}{}))
		}
		for {
			v, ok := alt.src.Next()
			if !ok {
				return Halt[struct{}]()
			}
			target := alt.turn % len(alt.lanes)
			alt.turn++
			if target == i {
				return ExprEmitThen(v, Continue(struct{}{}))
			}
			if err := alt.lanes[target].Enqueue(&v); err != nil {
				panic("lseq: alternate lane ring full: consumers diverged beyond capacity")
			}
		}
	}
}
