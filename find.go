// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lseq

import (
	"code.hybscloud.com/kont"
)

// First pulls src until an element satisfies pred, returning it.
// Returns (zero, false) when the sequence terminates with no match; on an
// infinite sequence with no matching element First does not return. Elements
// up to and including the match are consumed from src.
func First[V any](pred func(V) bool, src *Seq[V]) (V, bool) {
	for {
		v, ok := src.Next()
		if !ok {
			var zero V
			return zero, false
		}
		if pred(v) {
			return v, true
		}
	}
}

// RemoveOnce returns a lazy view of src with the first element satisfying
// pred removed. Elements before the match pass through unchanged, the match
// is skipped via a non-emitting builder step, and everything after passes
// through untested. src is consumed by the returned sequence and must not be
// pulled directly afterwards.
func RemoveOnce[V any](pred func(V) bool, src *Seq[V]) *Seq[V] {
	return Build[bool, V](false, func(removed bool) kont.Expr[kont.Either[bool, struct{}]] {
		v, ok := src.Next()
		if !ok {
			return Halt[bool]()
		}
		if !removed && pred(v) {
			return Continue(true)
		}
		return ExprEmitThen(v, Continue(removed))
	})
}
