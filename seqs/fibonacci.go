package seqs

import (
	"iter"
	"math/big"
)

// Fibonacci yields 0, 1, 1, 2, 3, 5, ...
// Values wrap past F(92) on 64-bit platforms; use FibonacciBig beyond that.
type Fibonacci struct {
	a, b     int
	produced int
	limit    int
	bounded  bool
}

// NewFibonacci yields exactly limit numbers. A negative limit yields none.
func NewFibonacci(limit int) *Fibonacci {
	return &Fibonacci{b: 1, limit: max(limit, 0), bounded: true}
}

// NewUnboundedFibonacci never runs out; bound it with Take or TakeWhile.
func NewUnboundedFibonacci() *Fibonacci {
	return &Fibonacci{b: 1}
}

func (f *Fibonacci) Next() (int, bool) {
	if f.bounded && f.produced >= f.limit {
		return 0, false
	}
	v := f.a
	f.a, f.b = f.b, f.a+f.b
	f.produced++
	return v, true
}

func (f *Fibonacci) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for {
			v, ok := f.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// FibonacciBig is an unbounded Fibonacci sequence with arbitrary precision.
// Each yielded value is a fresh *big.Int owned by the consumer.
func FibonacciBig() iter.Seq[*big.Int] {
	return func(yield func(*big.Int) bool) {
		a, b := big.NewInt(0), big.NewInt(1)
		for {
			if !yield(new(big.Int).Set(a)) {
				return
			}
			a.Add(a, b)
			a, b = b, a
		}
	}
}
