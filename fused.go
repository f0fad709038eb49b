// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lseq

import (
	"code.hybscloud.com/kont"
)

// exprReturnFrame is the pre-allocated terminal frame, avoiding a heap escape
// when boxing ReturnFrame{} into kont.Frame per constructed step.
var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame construction.
// Named function produces a static function value, consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

// EmitThen emits a value and then continues with next (Cont-world).
// Fuses Perform(Emit[V]{Value: v}) + Then.
func EmitThen[V, B any](v V, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Emit[V]{Value: v}), next)
}

// ExprEmitThen emits a value and then continues with next (Expr-world).
// Fuses ExprPerform(Emit[V]{Value: v}) + ExprThen on pooled single-use frames.
func ExprEmitThen[V, B any](v V, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = Emit[V]{Value: v}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// Continue instructs the builder to keep generating from next (Expr-world).
// Usable from any branch of a builder body, typically as the continuation of
// [ExprEmitThen] or bare for a non-emitting step.
func Continue[S any](next S) kont.Expr[kont.Either[S, struct{}]] {
	return kont.ExprReturn(kont.Left[S, struct{}](next))
}

// Halt instructs the builder to terminate the sequence (Expr-world).
func Halt[S any]() kont.Expr[kont.Either[S, struct{}]] {
	return kont.ExprReturn(kont.Right[S](struct{}{}))
}

// ContinueEff instructs the builder to keep generating from next (Cont-world).
func ContinueEff[S any](next S) kont.Eff[kont.Either[S, struct{}]] {
	return kont.Pure(kont.Left[S, struct{}](next))
}

// HaltEff instructs the builder to terminate the sequence (Cont-world).
func HaltEff[S any]() kont.Eff[kont.Either[S, struct{}]] {
	return kont.Pure(kont.Right[S](struct{}{}))
}
