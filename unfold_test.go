// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lseq_test

import (
	"reflect"
	"testing"

	"code.hybscloud.com/lseq"
)

func TestUnfoldNaturalsPrefix(t *testing.T) {
	got := naturals().Take(5)
	want := []int{0, 1, 2, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUnfoldFibonacci(t *testing.T) {
	fib := lseq.Unfold(func(s [2]int) (int, [2]int) {
		return s[0], [2]int{s[1], s[0] + s[1]}
	}, [2]int{0, 1})
	got := fib.Take(6)
	want := []int{0, 1, 1, 2, 3, 5}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUnfoldUntilMatchesManualIteration(t *testing.T) {
	step := func(s int) (int, int) { return s * s, s + 1 }
	isDone := func(s int) bool { return s >= 12 }

	var want []int
	for s := 3; !isDone(s); {
		var v int
		v, s = step(s)
		want = append(want, v)
	}

	got := lseq.UnfoldUntil(step, isDone, 3).Collect()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUnfoldUntilDoneSeedProducesNothing(t *testing.T) {
	s := lseq.UnfoldUntil(
		func(s int) (int, int) { t.Fatal("step invoked for a done seed"); return 0, 0 },
		func(int) bool { return true },
		7,
	)
	if _, ok := s.Next(); ok {
		t.Fatal("expected immediate termination")
	}
}

func TestUnfoldUntilPredicateBeforeStep(t *testing.T) {
	// isDone must see every seed, including the final one that stops
	// generation, and step must never run for that seed.
	var seen []int
	s := lseq.UnfoldUntil(
		func(s int) (int, int) { return s, s + 1 },
		func(s int) bool {
			seen = append(seen, s)
			return s >= 3
		},
		0,
	)
	got := drainNext(s)
	if !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Fatalf("elements got %v, want [0 1 2]", got)
	}
	if !reflect.DeepEqual(seen, []int{0, 1, 2, 3}) {
		t.Fatalf("predicate trace got %v, want [0 1 2 3]", seen)
	}
}

func TestUnfoldMatchesConstantFalsePredicate(t *testing.T) {
	step := func(s int) (int, int) { return 3*s + 1, s + 2 }
	plain := lseq.Unfold(step, 1).Take(32)
	explicit := lseq.UnfoldUntil(step, func(int) bool { return false }, 1).Take(32)
	if !reflect.DeepEqual(plain, explicit) {
		t.Fatalf("prefixes diverge: %v vs %v", plain, explicit)
	}
}

func TestUnfoldIsLazy(t *testing.T) {
	calls := 0
	s := lseq.Unfold(func(n int) (int, int) {
		calls++
		return n, n + 1
	}, 0)
	if calls != 0 {
		t.Fatalf("step ran %d times before the first pull", calls)
	}
	s.Take(3)
	if calls != 3 {
		t.Fatalf("step ran %d times for 3 pulls", calls)
	}
}

func TestUnfoldConstantStackDepth(t *testing.T) {
	// Forcing the k-th element must not grow the call stack with k.
	// A recursive deferred-chain implementation would overflow long
	// before one million elements.
	const k = 1_000_000
	s := naturals()
	var last int
	for i := 0; i < k; i++ {
		v, ok := s.Next()
		if !ok {
			t.Fatalf("terminated early at %d", i)
		}
		last = v
	}
	if last != k-1 {
		t.Fatalf("element %d got %d", k-1, last)
	}
}

func TestUnfoldStepPanicPropagatesAtForce(t *testing.T) {
	s := lseq.Unfold(func(n int) (int, int) {
		if n == 2 {
			panic("step blew up")
		}
		return n, n + 1
	}, 0)

	// Elements before the failing step are unaffected.
	if got := s.Take(2); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Fatalf("prefix got %v, want [0 1]", got)
	}

	func() {
		defer func() {
			if r := recover(); r != "step blew up" {
				t.Fatalf("recovered %v, want step panic", r)
			}
		}()
		s.Next()
		t.Fatal("expected panic at the forcing call")
	}()

	// The handle is poisoned: forcing again panics.
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when forcing a failed sequence")
		}
	}()
	s.Next()
}
