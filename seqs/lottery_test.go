package seqs_test

import (
	"errors"
	"slices"
	"testing"

	"drawseq/seqs"
)

func TestLottery_Defaults(t *testing.T) {
	l, err := seqs.NewLottery(nil, seqs.DefaultLotteryConfig())
	if err != nil {
		t.Fatalf("NewLottery: %v", err)
	}

	i := 0
	for n := range l.All() {
		if i < 3 {
			if n < 1 || n > 10 {
				t.Errorf("regular number %d out of range", n)
			}
		} else if n < 10 || n > 20 {
			t.Errorf("bonus number %d out of range", n)
		}
		i++
	}
	if i != 4 {
		t.Errorf("Expected 4 numbers, got %d", i)
	}
}

func TestLottery_CustomConfig(t *testing.T) {
	cfg := seqs.LotteryConfig{Count: 5, Min: 10, Max: 30, Bonus: true, BonusMin: 50, BonusMax: 60}
	l, err := seqs.NewLottery(seqs.NewSeededRand(42), cfg)
	if err != nil {
		t.Fatalf("NewLottery: %v", err)
	}

	got := slices.Collect(l.All())
	if len(got) != 6 {
		t.Fatalf("Expected 6 numbers, got %d", len(got))
	}
	if !seqs.All(slices.Values(got[:5]), func(n int) bool { return n >= 10 && n <= 30 }) {
		t.Errorf("regular numbers out of range: %v", got[:5])
	}
	if got[5] < 50 || got[5] > 60 {
		t.Errorf("bonus number %d out of range", got[5])
	}
}

func TestLottery_NoBonus(t *testing.T) {
	cfg := seqs.DefaultLotteryConfig()
	cfg.Bonus = false
	l, err := seqs.NewLottery(nil, cfg)
	if err != nil {
		t.Fatalf("NewLottery: %v", err)
	}
	if n := seqs.Count(l.All()); n != 3 {
		t.Errorf("Expected 3 numbers, got %d", n)
	}
}

func TestLottery_ZeroCount(t *testing.T) {
	cfg := seqs.DefaultLotteryConfig()
	cfg.Count = 0

	l, err := seqs.NewLottery(&scriptedRand{vals: []uint64{4}}, cfg)
	if err != nil {
		t.Fatalf("NewLottery: %v", err)
	}
	// only the bonus: 10 + 4
	if got := slices.Collect(l.All()); !slices.Equal(got, []int{14}) {
		t.Errorf("got %v, want [14]", got)
	}
}

func TestLottery_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*seqs.LotteryConfig)
		wantErr error
	}{
		{"negative count", func(c *seqs.LotteryConfig) { c.Count = -1 }, seqs.ErrInvalidCount},
		{"min equals max", func(c *seqs.LotteryConfig) { c.Min, c.Max = 5, 5 }, seqs.ErrInvalidRange},
		{"min above max", func(c *seqs.LotteryConfig) { c.Min, c.Max = 9, 2 }, seqs.ErrInvalidRange},
		{"bonus min equals bonus max", func(c *seqs.LotteryConfig) { c.BonusMin, c.BonusMax = 7, 7 }, seqs.ErrInvalidRange},
		{"bonus range checked without bonus", func(c *seqs.LotteryConfig) {
			c.Bonus = false
			c.BonusMin, c.BonusMax = 20, 10
		}, seqs.ErrInvalidRange},
		{"range reported before count", func(c *seqs.LotteryConfig) {
			c.Count = -1
			c.Min, c.Max = 3, 3
		}, seqs.ErrInvalidRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := seqs.DefaultLotteryConfig()
			tt.mutate(&cfg)

			rng := &scriptedRand{vals: []uint64{0}}
			l, err := seqs.NewLottery(rng, cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected %v, got %v", tt.wantErr, err)
			}
			if l != nil {
				t.Error("Expected nil lottery on error")
			}
			if rng.i != 0 {
				t.Errorf("randomness consumed before validation: %d draws", rng.i)
			}
		})
	}
}

func TestLottery_Exhaustion(t *testing.T) {
	l, err := seqs.NewLottery(&scriptedRand{vals: []uint64{0, 1, 2, 3}}, seqs.DefaultLotteryConfig())
	if err != nil {
		t.Fatalf("NewLottery: %v", err)
	}
	if l.Remaining() != 4 {
		t.Errorf("Expected 4 remaining, got %d", l.Remaining())
	}

	got := slices.Collect(l.All())
	if !slices.Equal(got, []int{1, 2, 3, 13}) {
		t.Errorf("got %v, want [1 2 3 13]", got)
	}

	for range 2 {
		if v, ok := l.Next(); ok {
			t.Errorf("exhausted lottery produced %d", v)
		}
	}
	if n := seqs.Count(l.All()); n != 0 {
		t.Errorf("second pass produced %d numbers", n)
	}
}

func TestLottery_BreakKeepsRemainder(t *testing.T) {
	l, err := seqs.NewLottery(&scriptedRand{vals: []uint64{0, 1, 2, 3}}, seqs.DefaultLotteryConfig())
	if err != nil {
		t.Fatalf("NewLottery: %v", err)
	}

	first, ok := seqs.First(l.All())
	if !ok || first != 1 {
		t.Fatalf("First = %d, %v", first, ok)
	}
	if got := slices.Collect(l.All()); !slices.Equal(got, []int{2, 3, 13}) {
		t.Errorf("remainder %v, want [2 3 13]", got)
	}
}

func TestLottery_SeededIsReproducible(t *testing.T) {
	draw := func() []int {
		l, err := seqs.NewLottery(seqs.NewSeededRand(7), seqs.LotteryConfig{
			Count: 20, Min: 1, Max: 1000, Bonus: true, BonusMin: 1, BonusMax: 5,
		})
		if err != nil {
			t.Fatalf("NewLottery: %v", err)
		}
		return slices.Collect(l.All())
	}

	a, b := draw(), draw()
	if !slices.Equal(a, b) {
		t.Errorf("same seed gave different draws:\n%v\n%v", a, b)
	}
}
