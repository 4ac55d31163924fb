package seqs

import (
	"fmt"
	"iter"
)

// LotteryConfig configures a Lottery. All bounds are inclusive.
type LotteryConfig struct {
	Count    int  `yaml:"count"`
	Min      int  `yaml:"min"`
	Max      int  `yaml:"max"`
	Bonus    bool `yaml:"bonus"`
	BonusMin int  `yaml:"bonus_min"`
	BonusMax int  `yaml:"bonus_max"`
}

// DefaultLotteryConfig draws 3 numbers in [1, 10] plus a bonus in [10, 20].
func DefaultLotteryConfig() LotteryConfig {
	return LotteryConfig{
		Count:    3,
		Min:      1,
		Max:      10,
		Bonus:    true,
		BonusMin: 10,
		BonusMax: 20,
	}
}

// Validate checks ranges first, then the count.
// The bonus range is checked even when Bonus is false.
func (c LotteryConfig) Validate() error {
	if c.Min >= c.Max {
		return fmt.Errorf("%w: min %d, max %d", ErrInvalidRange, c.Min, c.Max)
	}
	if c.BonusMin >= c.BonusMax {
		return fmt.Errorf("%w: bonus min %d, bonus max %d", ErrInvalidRange, c.BonusMin, c.BonusMax)
	}
	if c.Count < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, c.Count)
	}
	return nil
}

/*
Lottery yields Count independent draws from [Min, Max], followed by one
draw from [BonusMin, BonusMax] when Bonus is set.

A Lottery is single pass and not safe for concurrent use.
*/
type Lottery struct {
	rng          Rand
	cfg          LotteryConfig
	remaining    int
	bonusPending bool
}

// NewLottery validates cfg before anything is drawn. A nil rng uses the
// process-wide generator.
func NewLottery(rng Rand, cfg LotteryConfig) (*Lottery, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Lottery{
		rng:          orGlobal(rng),
		cfg:          cfg,
		remaining:    cfg.Count,
		bonusPending: cfg.Bonus,
	}, nil
}

// Next returns the next number, or false once the lottery is exhausted.
func (l *Lottery) Next() (int, bool) {
	switch {
	case l.remaining > 0:
		l.remaining--
		return intIn(l.rng, l.cfg.Min, l.cfg.Max), true
	case l.bonusPending:
		l.bonusPending = false
		return intIn(l.rng, l.cfg.BonusMin, l.cfg.BonusMax), true
	default:
		return 0, false
	}
}

// Remaining reports how many numbers are still to be drawn, bonus included.
func (l *Lottery) Remaining() int {
	n := l.remaining
	if l.bonusPending {
		n++
	}
	return n
}

// All drains the lottery. Stopping early leaves the rest for later calls.
func (l *Lottery) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for {
			v, ok := l.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
