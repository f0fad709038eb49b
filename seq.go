// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lseq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/kont"
)

// Seq handle phases. Pending transitions to Producing on the first pull.
// Terminated is absorbing. Failed marks a handle whose generator panicked;
// forcing it again panics. The phase word is parked at Failed across each
// advance so a panic in a caller-supplied function poisons the handle
// without a recover.
const (
	phasePending uint32 = iota
	phaseProducing
	phaseTerminated
	phaseFailed
)

// Seq is a pull-based lazy sequence over the kont trampoline.
//
// A Seq is a forward-only, single-pass cursor owned by one logical consumer.
// Construction is fully deferred: the generator does not run until the first
// pull, and each pull computes exactly one element. Concurrent forcing of one
// handle without external synchronization is undefined.
type Seq[V any] struct {
	start  func() kont.Expr[struct{}]
	susp   *kont.Suspension[struct{}]
	phase  atomix.Uint32
	serial Serial
}

// newSeq wraps an unstarted generator computation in a pull handle.
// start is invoked once, on the first pull or drain.
func newSeq[V any](start func() kont.Expr[struct{}]) *Seq[V] {
	s := &Seq[V]{start: start, serial: nextSerial()}
	s.phase.Store(phasePending)
	return s
}

// Serial returns the serial number assigned to this sequence handle.
func (s *Seq[V]) Serial() Serial {
	return s.serial
}

// Next pulls the next element. Returns (element, true) while the sequence is
// producing and (zero, false) once it has terminated; termination is
// absorbing. Each call performs one trampolined advance: one builder step,
// O(1) additional stack depth however many elements have been realized.
//
// Panics raised by the generator propagate to the caller and poison the
// handle; pulling a poisoned handle panics.
func (s *Seq[V]) Next() (V, bool) {
	var zero V
	phase := s.phase.Load()
	switch phase {
	case phaseTerminated:
		return zero, false
	case phaseFailed:
		panic("lseq: sequence forced after failure")
	}
	s.phase.Store(phaseFailed)
	var susp *kont.Suspension[struct{}]
	if phase == phasePending {
		start := s.start
		s.start = nil
		_, susp = kont.StepExpr(start())
	} else {
		_, susp = s.susp.Resume(emitAck)
	}
	s.susp = susp
	if susp == nil {
		s.phase.Store(phaseTerminated)
		return zero, false
	}
	op, ok := susp.Op().(Emit[V])
	if !ok {
		panic("lseq: unhandled effect in Seq")
	}
	s.phase.Store(phaseProducing)
	return op.Value, true
}

// Each drains the sequence, invoking yield for every remaining element until
// yield returns false or the sequence terminates. Either way the handle is
// consumed: subsequent pulls report termination.
//
// An unstarted handle is drained on kont's handler trampoline directly,
// skipping per-element suspension bookkeeping; a partially pulled handle
// continues through [Seq.Next].
func (s *Seq[V]) Each(yield func(V) bool) {
	switch s.phase.Load() {
	case phaseTerminated:
		return
	case phaseFailed:
		panic("lseq: sequence forced after failure")
	case phasePending:
		s.phase.Store(phaseFailed)
		start := s.start
		s.start = nil
		kont.HandleExpr(start(), eachHandler[V]{yield: yield})
		s.phase.Store(phaseTerminated)
		return
	}
	for {
		v, ok := s.Next()
		if !ok {
			return
		}
		if !yield(v) {
			s.susp.Discard()
			s.susp = nil
			s.phase.Store(phaseTerminated)
			return
		}
	}
}

// Collect drains the sequence into a slice.
// Never returns when the sequence is infinite; bound with [Seq.Take] instead.
func (s *Seq[V]) Collect() []V {
	var out []V
	s.Each(func(v V) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Take pulls up to n elements, leaving the handle positioned after the last
// element taken. Fewer than n are returned when the sequence terminates
// first; n <= 0 pulls nothing.
func (s *Seq[V]) Take(n int) []V {
	if n <= 0 {
		return nil
	}
	out := make([]V, 0, min(n, 16))
	for len(out) < n {
		v, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}
