// Command drawseq prints sample lottery draws and Fibonacci numbers.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"drawseq/seqs"
)

var (
	configPath = flag.String("config", "", "Path to a YAML config file")
	seed       = flag.Uint64("seed", 0, "Seed for reproducible draws (0 picks a random seed)")
	fibCount   = flag.Int("fib", 10, "How many Fibonacci numbers to print")
	check      = flag.Bool("check", false, "Run the self-check after printing")
)

func main() {
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	var rng seqs.Rand
	if *seed != 0 {
		rng = seqs.NewSeededRand(*seed)
	}

	if err := run(os.Stdout, rng, cfg, *fibCount); err != nil {
		log.Fatal(err)
	}

	if *check {
		if err := selfCheck(rng); err != nil {
			log.Fatalf("self-check failed: %v", err)
		}
		fmt.Println("All checks passed!")
	}
}

// run prints nothing unless the whole configuration is valid.
func run(w io.Writer, rng seqs.Rand, cfg Config, fib int) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if fib < 0 {
		return fmt.Errorf("fibonacci count must be non-negative, got %d", fib)
	}

	l, err := seqs.NewLottery(rng, cfg.Lottery)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("Regular lottery (%d numbers", cfg.Lottery.Count)
	if cfg.Lottery.Bonus {
		title += " + bonus"
	}
	fmt.Fprintln(w, title+"):")
	for n := range l.All() {
		fmt.Fprintf(w, "- %d\n", n)
	}

	u, err := seqs.NewUniqueLottery(rng, cfg.Unique)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nUnique lottery numbers (%d unique numbers):\n", cfg.Unique.Count)
	for n := range u.All() {
		fmt.Fprintf(w, "- %d\n", n)
	}

	fmt.Fprintf(w, "\nFirst %d Fibonacci numbers:\n", fib)
	i := 0
	for n := range seqs.NewFibonacci(fib).All() {
		i++
		fmt.Fprintf(w, "%d: %d\n", i, n)
	}
	return nil
}
