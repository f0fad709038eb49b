// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lseq

import (
	"code.hybscloud.com/kont"
)

// Unfold produces the lazy sequence of values obtained by repeatedly applying
// step to an evolving seed. step receives only seeds, never emitted values;
// output order is the deterministic trace of step applications from seed.
//
// The sequence is infinite: step is applied once per pull, forever. Bound
// consumption with [Seq.Take] or break out of [Seq.All]. For a self-
// terminating unfold use [UnfoldUntil].
func Unfold[S, V any](step func(S) (V, S), seed S) *Seq[V] {
	return UnfoldUntil(step, nil, seed)
}

// UnfoldUntil produces the lazy sequence of step applications from seed,
// truncated at the first seed for which isDone reports true. isDone is
// evaluated before step for each seed; a seed that satisfies it produces no
// element. A nil isDone never stops: UnfoldUntil(step, nil, seed) is
// [Unfold].
//
// A panic in step or isDone propagates at the pull that forces the affected
// element, not at the UnfoldUntil call, and leaves the handle unusable.
func UnfoldUntil[S, V any](step func(S) (V, S), isDone func(S) bool, seed S) *Seq[V] {
	return Build[S, V](seed, func(s S) kont.Expr[kont.Either[S, struct{}]] {
		if isDone != nil && isDone(s) {
			return Halt[S]()
		}
		v, next := step(s)
		return ExprEmitThen(v, Continue(next))
	})
}
