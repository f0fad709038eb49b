// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lseq_test

import (
	"math/rand/v2"
	"slices"

	"code.hybscloud.com/lseq"
)

// naturals returns the infinite sequence 0, 1, 2, ...
func naturals() *lseq.Seq[int] {
	return lseq.Unfold(func(n int) (int, int) { return n, n + 1 }, 0)
}

// drainNext pulls the sequence to exhaustion through Seq.Next,
// exercising the stepping path rather than the handler path.
func drainNext[V any](s *lseq.Seq[V]) []V {
	var out []V
	for {
		v, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// sortedCopy returns a sorted copy for multiset comparison.
func sortedCopy(values []int) []int {
	out := slices.Clone(values)
	slices.Sort(out)
	return out
}

// seededRand returns a deterministic random source for reproducible sampling.
func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
