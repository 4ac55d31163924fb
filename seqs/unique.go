package seqs

import (
	"fmt"
	"iter"
)

// UniqueConfig configures a UniqueLottery. Bounds are inclusive.
type UniqueConfig struct {
	Count int `yaml:"count"`
	Min   int `yaml:"min"`
	Max   int `yaml:"max"`
}

// DefaultUniqueConfig draws 6 distinct numbers in [1, 49].
func DefaultUniqueConfig() UniqueConfig {
	return UniqueConfig{Count: 6, Min: 1, Max: 49}
}

// Validate reports an infeasible count first, since that holds for any
// Count > Max-Min+1 including inverted ranges. An inverted range that is
// also infeasible wraps both ErrInfeasibleCount and ErrInvalidRange.
func (c UniqueConfig) Validate() error {
	if c.infeasible() {
		if c.Min >= c.Max {
			return fmt.Errorf("%w: %w: cannot generate %d unique numbers in range %d-%d",
				ErrInfeasibleCount, ErrInvalidRange, c.Count, c.Min, c.Max)
		}
		return fmt.Errorf("%w: cannot generate %d unique numbers in range %d-%d",
			ErrInfeasibleCount, c.Count, c.Min, c.Max)
	}
	if c.Min >= c.Max {
		return fmt.Errorf("%w: min %d, max %d", ErrInvalidRange, c.Min, c.Max)
	}
	if c.Count < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, c.Count)
	}
	return nil
}

// infeasible evaluates Count > Max-Min+1 without overflow.
func (c UniqueConfig) infeasible() bool {
	if c.Min <= c.Max {
		// span is size-1, so Count-1 > span means Count exceeds the range size.
		return c.Count > 0 && uint64(c.Count-1) > span(c.Min, c.Max)
	}
	// Inverted: the size is 1-d with d = Min-Max >= 1, never positive.
	if c.Count > 0 {
		return true
	}
	d := uint64(c.Min) - uint64(c.Max)
	return d > uint64(1)-uint64(c.Count)
}

// maxPrealloc caps the used-set size hint for very large counts.
const maxPrealloc = 1 << 10

// UniqueLottery yields Count pairwise distinct numbers from [Min, Max]
// using rejection sampling. Output order carries no meaning.
type UniqueLottery struct {
	rng  Rand
	cfg  UniqueConfig
	used map[int]struct{}
}

func NewUniqueLottery(rng Rand, cfg UniqueConfig) (*UniqueLottery, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &UniqueLottery{
		rng:  orGlobal(rng),
		cfg:  cfg,
		used: make(map[int]struct{}, min(cfg.Count, maxPrealloc)),
	}, nil
}

// Next returns the next unused number, or false once Count numbers were produced.
func (u *UniqueLottery) Next() (int, bool) {
	if len(u.used) >= u.cfg.Count {
		return 0, false
	}
	for {
		v := intIn(u.rng, u.cfg.Min, u.cfg.Max)
		if _, seen := u.used[v]; seen {
			continue
		}
		u.used[v] = struct{}{}
		return v, true
	}
}

func (u *UniqueLottery) Remaining() int {
	return u.cfg.Count - len(u.used)
}

// All drains the lottery. Stopping early leaves the rest for later calls.
func (u *UniqueLottery) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for {
			v, ok := u.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
