// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lseq provides trampolined lazy sequence generation via algebraic
// effects on [code.hybscloud.com/kont].
//
// Sequences are produced by generator computations that emit elements through
// a typed effect operation and are consumed through a pull-based [Seq] handle.
//
// # Architecture
//
//   - Emission: [Emit] is the single effect operation. Performing it suspends
//     the generator at the element; the consumer resumes with a unit
//     acknowledgement, so emitted values never feed back into the generator —
//     only the seed/state threads from one step to the next.
//   - Builder: [Build] runs a body function as a trampolined loop. The body
//     returns [Continue] to keep generating or [Halt] to terminate, from any
//     branch. Advancing one element performs one bounded unit of work on
//     kont's iterative frame evaluator — no call-stack growth with sequence
//     length. [BuildEff] is the Cont-world twin, bridged via [kont.Reify].
//   - Consumption: [Seq.Next] pulls one element per call via [kont.StepExpr]
//     and [kont.Suspension]. [Seq.Each], [Seq.Collect], and [Seq.Take] drain;
//     [Seq.All] adapts a handle to a range-over-func iterator.
//
// # API Topologies
//
//   - Unfolding: [Unfold] (infinite) and [UnfoldUntil] (truncated by a
//     termination predicate evaluated before each step).
//   - Sampling: [TakeShuffled] and [TakeShuffledRand] draw without
//     replacement from a swap-removal pool; [Shuffled] and [ShuffledRand]
//     produce full lazy permutations.
//   - Splitting and searching: [Alternates] splits a sequence into
//     interleaved lazy subsequences over bounded [code.hybscloud.com/lfq]
//     rings; [First] and [RemoveOnce] provide first-match search and
//     single-element removal.
//   - Construction: [Of], [FromSlice], and the raw [Build]/[BuildEff] with
//     fused emitters [ExprEmitThen] and [EmitThen].
//
// # Evaluation Model
//
// Evaluation is single-threaded, synchronous, and pull-based. Nothing
// caller-supplied runs before the first pull, and each pull computes exactly
// one element. A [Seq] handle is owned by one logical consumer; the library
// provides no internal locking beyond a phase guard that turns misuse
// (forcing a failed sequence) into a panic. Abandoning a handle requires no
// cleanup. A panic raised by a caller-supplied function propagates at the
// forcing call and poisons the handle.
//
// [Unfold] without a termination predicate is infinite by design: bound
// consumption with [Seq.Take] or by breaking out of [Seq.All].
//
// # Example
//
//	naturals := lseq.Unfold(func(n int) (int, int) { return n, n + 1 }, 0)
//	firstFive := naturals.Take(5) // [0 1 2 3 4]
//
//	fib := lseq.Unfold(func(s [2]int) (int, [2]int) {
//		return s[0], [2]int{s[1], s[0] + s[1]}
//	}, [2]int{0, 1})
//	for v := range fib.All() {
//		if v > 100 {
//			break
//		}
//	}
package lseq
