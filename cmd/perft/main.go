// perft counts move generation nodes for a position, for checking the
// move generator against known totals.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hailam/chessapi/internal/board"
	"github.com/hailam/chessapi/internal/engine"
)

func main() {
	var (
		fen    = flag.String("fen", board.StartFEN, "position to count from")
		depth  = flag.Int("depth", 5, "perft depth")
		divide = flag.Bool("divide", false, "print per-move subtotals")
	)
	flag.Parse()

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	start := time.Now()
	if *divide {
		lines, total := engine.Divide(pos, *depth)
		for _, line := range lines {
			fmt.Printf("%s: %d\n", line.Move, line.Nodes)
		}
		fmt.Printf("\ntotal: %d (%.3fs)\n", total, time.Since(start).Seconds())
		return
	}

	nodes := engine.Perft(pos, *depth)
	secs := time.Since(start).Seconds()
	fmt.Printf("perft(%d) = %d in %.3fs", *depth, nodes, secs)
	if secs > 0 {
		fmt.Printf(" (%.0f nodes/s)", float64(nodes)/secs)
	}
	fmt.Println()
}
