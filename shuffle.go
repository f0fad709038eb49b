// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lseq

import (
	"math/rand/v2"
	"slices"

	"code.hybscloud.com/kont"
)

// pool is the mutable scratch state of one in-progress sampling operation:
// the not-yet-drawn elements, contiguous and indexable, plus the number of
// draws remaining. The slice is exclusively owned by the sampling sequence
// and destructively shrunk as elements are drawn.
type pool[V any] struct {
	items []V
	left  int
}

// TakeShuffled lazily draws up to n elements from collection, uniformly at
// random and without replacement, using the shared package-level random
// source. See [TakeShuffledRand] for semantics.
func TakeShuffled[V any](n int, collection []V) *Seq[V] {
	return TakeShuffledRand(n, collection, nil)
}

// TakeShuffledRand lazily draws min(n, len(collection)) elements from
// collection, each uniformly at random from the remaining unchosen elements,
// without re-selecting any original index. Duplicate values in the input may
// both appear: uniqueness is by index, not by value. n <= 0 yields an empty
// sequence; n >= len(collection) yields a full random permutation.
//
// The input is cloned into a private pool on the first pull; a drawn index is
// removed in O(1) by overwriting it with the pool's last element and
// shrinking the pool. One element is drawn per pull, so consuming fewer than
// n elements does no extra work.
//
// A nil r uses the shared package-level source. With a fixed, seeded r the
// output is deterministic: identical inputs reproduce identical sequences.
func TakeShuffledRand[V any](n int, collection []V, r *rand.Rand) *Seq[V] {
	draw := rand.IntN
	if r != nil {
		draw = r.IntN
	}
	return newSeq[V](func() kont.Expr[struct{}] {
		p := pool[V]{items: slices.Clone(collection), left: min(n, len(collection))}
		return exprGen(p, func(p pool[V]) kont.Expr[kont.Either[pool[V], struct{}]] {
			if p.left <= 0 {
				return Halt[pool[V]]()
			}
			i := draw(len(p.items))
			v := p.items[i]
			last := len(p.items) - 1
			p.items[i] = p.items[last]
			return ExprEmitThen(v, Continue(pool[V]{items: p.items[:last], left: p.left - 1}))
		})
	})
}

// Shuffled lazily produces a full random permutation of collection.
// Equivalent to TakeShuffled(len(collection), collection).
func Shuffled[V any](collection []V) *Seq[V] {
	return TakeShuffledRand(len(collection), collection, nil)
}

// ShuffledRand lazily produces a full random permutation of collection drawn
// from r. Equivalent to TakeShuffledRand(len(collection), collection, r).
func ShuffledRand[V any](collection []V, r *rand.Rand) *Seq[V] {
	return TakeShuffledRand(len(collection), collection, r)
}
