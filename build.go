// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lseq

import (
	"code.hybscloud.com/kont"
)

// Build constructs a lazy sequence by trampolined stepwise generation
// (Expr-world). body receives the current state and returns [Continue] with
// the next state — after emitting zero or more elements via [ExprEmitThen] —
// or [Halt] to terminate.
//
// The state is owned by the step in progress and threads by value from one
// step to the next. Nothing runs until the first pull; each pull performs one
// bounded unit of work regardless of how many elements have been realized.
//
// The element type V is carried by the emit operations and cannot be inferred
// from the arguments: instantiate as Build[S, V](...).
func Build[S, V any](initial S, body func(S) kont.Expr[kont.Either[S, struct{}]]) *Seq[V] {
	return newSeq[V](func() kont.Expr[struct{}] {
		return exprGen(initial, body)
	})
}

// BuildEff constructs a lazy sequence from a Cont-world body, bridged to the
// stepping evaluator via [kont.Reify]. Emission uses [EmitThen]; continuation
// uses [ContinueEff] and [HaltEff].
//
// Consecutive non-emitting steps nest continuation closures; bodies that may
// skip unboundedly many states between emissions should use [Build], whose
// loop is iterative in the pure segments as well.
func BuildEff[S, V any](initial S, body func(S) kont.Eff[kont.Either[S, struct{}]]) *Seq[V] {
	return newSeq[V](func() kont.Expr[struct{}] {
		return kont.Reify(effGen(initial, body))
	})
}

// exprGen is the trampolined generation loop (Expr-world).
// Pure steps (no emission) advance in place; effectful steps suspend at the
// emit operation and resume into the next iteration through a single pooled
// bind frame, keeping evaluation depth constant per element.
func exprGen[S any](state S, body func(S) kont.Expr[kont.Either[S, struct{}]]) kont.Expr[struct{}] {
	for {
		m := body(state)
		if _, ok := m.Frame.(kont.ReturnFrame); ok {
			next, ok := m.Value.GetLeft()
			if !ok {
				return kont.ExprReturn(struct{}{})
			}
			state = next
			continue
		}
		bf := kont.AcquireBindFrame()
		bf.F = func(a kont.Erased) kont.Expr[kont.Erased] {
			e := a.(kont.Either[S, struct{}])
			if next, ok := e.GetLeft(); ok {
				r := exprGen(next, body)
				return kont.Expr[kont.Erased]{Value: kont.Erased(r.Value), Frame: r.Frame}
			}
			return kont.Expr[kont.Erased]{Value: emitAck, Frame: exprReturnFrame}
		}
		bf.Next = exprReturnFrame
		return kont.ExprSuspend[struct{}](kont.ChainFrames(m.Frame, bf))
	}
}

// effGen is the trampolined generation loop (Cont-world).
// Bind defers the recursive construction until the previous step is forced.
func effGen[S any](state S, body func(S) kont.Eff[kont.Either[S, struct{}]]) kont.Eff[struct{}] {
	return kont.Bind(body(state), func(e kont.Either[S, struct{}]) kont.Eff[struct{}] {
		if next, ok := e.GetLeft(); ok {
			return effGen(next, body)
		}
		return kont.Pure(struct{}{})
	})
}
