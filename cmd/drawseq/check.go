package main

import (
	"errors"
	"fmt"
	"slices"

	"drawseq/seqs"
)

// selfCheck exercises each generator with fixed configurations.
func selfCheck(rng seqs.Rand) error {
	l, err := seqs.NewLottery(rng, seqs.DefaultLotteryConfig())
	if err != nil {
		return err
	}
	i := 0
	for n := range l.All() {
		if i < 3 && (n < 1 || n > 10) {
			return fmt.Errorf("regular number %d out of range", n)
		}
		if i >= 3 && (n < 10 || n > 20) {
			return fmt.Errorf("bonus number %d out of range", n)
		}
		i++
	}

	l, err = seqs.NewLottery(rng, seqs.LotteryConfig{Count: 5, Min: 10, Max: 30, Bonus: true, BonusMin: 50, BonusMax: 60})
	if err != nil {
		return err
	}
	custom := slices.Collect(l.All())
	if len(custom) != 6 {
		return fmt.Errorf("expected 6 numbers, got %d", len(custom))
	}
	if !seqs.All(slices.Values(custom[:5]), func(n int) bool { return n >= 10 && n <= 30 }) {
		return errors.New("regular numbers out of range")
	}
	if custom[5] < 50 || custom[5] > 60 {
		return fmt.Errorf("bonus number %d out of range", custom[5])
	}

	u, err := seqs.NewUniqueLottery(rng, seqs.DefaultUniqueConfig())
	if err != nil {
		return err
	}
	unique := slices.Collect(u.All())
	if len(unique) != 6 {
		return fmt.Errorf("expected 6 numbers, got %d", len(unique))
	}
	if !seqs.Distinct(slices.Values(unique)) {
		return errors.New("duplicate numbers found")
	}

	fib := slices.Collect(seqs.NewFibonacci(10).All())
	if want := []int{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}; !slices.Equal(fib, want) {
		return fmt.Errorf("incorrect sequence: %v", fib)
	}
	return nil
}
