/*
Package seqs produces lazy integer sequences as Go 1.23+ iterators (iter.Seq).

It contains three independent generators:

  - [Lottery]: a fixed number of independent draws from one range,
    optionally followed by a bonus draw from a second range.
  - [UniqueLottery]: a fixed number of distinct draws from one range,
    sampled with rejection.
  - [Fibonacci]: the Fibonacci sequence, bounded or unbounded.

Each generator keeps its progress in its own fields. Next returns one value
at a time and All exposes the same state for range-over-func:

	l, err := seqs.NewLottery(nil, seqs.DefaultLotteryConfig())
	if err != nil {
		return err
	}
	for n := range l.All() {
		fmt.Println(n)
	}

Generators are single pass. Construct a new one to start over.

# Randomness

The draw generators take a [Rand]. Pass [NewSeededRand] for reproducible
output, any *rand.Rand from math/rand/v2, or nil for the process-wide source.

# Error Handling

Configurations are validated by the constructors before any value is drawn.
Returned errors wrap [ErrInvalidRange], [ErrInvalidCount] or
[ErrInfeasibleCount] and can be matched with errors.Is.
*/
package seqs
