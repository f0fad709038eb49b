// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lseq

import (
	"code.hybscloud.com/kont"
)

// Emit is the effect operation for emitting one sequence element.
// Perform(Emit[V]{Value: v}) suspends the generator at v; the consumer
// resumes with a unit acknowledgement. The emitted value never flows back
// into the generator.
type Emit[V any] struct {
	kont.Phantom[struct{}]
	Value V
}

// emitAck is the pre-boxed resume value for Emit suspensions.
// struct{}{} boxed into Resumed (any) once, not per pull.
var emitAck kont.Resumed = struct{}{}

// eachHandler implements kont.Handler for generator computations, invoking
// yield for every emitted element. yield returning false short-circuits the
// evaluation, abandoning the rest of the generator.
// Value type: passed to the frame evaluator on the stack, avoiding heap allocation.
type eachHandler[V any] struct {
	yield func(V) bool
}

// Dispatch implements kont.Handler. Resumes with the unit acknowledgement,
// or short-circuits when yield declines further elements.
func (h eachHandler[V]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	e, ok := op.(Emit[V])
	if !ok {
		panic("lseq: unhandled effect in eachHandler")
	}
	if !h.yield(e.Value) {
		return emitAck, false
	}
	return emitAck, true
}
