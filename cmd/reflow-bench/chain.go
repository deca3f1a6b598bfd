package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/reflow-dev/reflow/pkg/reflow"
)

func chainCmd() *cobra.Command {
	var (
		depth  int
		writes int
	)

	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Propagate writes through a chain of combined values",
		Long: `chain builds a linear graph of combined values, each stage adding one,
writes the source repeatedly, and verifies after every write that the tail
has settled before Set returned.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if depth < 1 || writes < 1 {
				return fmt.Errorf("depth and writes must be positive")
			}

			scope := reflow.NewScope(nil)
			defer scope.Dispose()

			source := reflow.New(0)
			one := reflow.New(1)

			tail := source
			for i := 0; i < depth; i++ {
				stage := reflow.Combine2(tail, one, func(a, b int) int { return a + b })
				scope.Adopt(stage)
				tail = stage.Value
			}

			start := time.Now()
			for i := 1; i <= writes; i++ {
				source.Set(i)
				if got := tail.Get(); got != i+depth {
					return fmt.Errorf("write %d: tail settled at %d, expected %d", i, got, i+depth)
				}
			}
			elapsed := time.Since(start)

			fmt.Printf("chain: depth %d, %d writes\n", depth, writes)
			fmt.Printf("  elapsed:   %s\n", elapsed)
			fmt.Printf("  writes/sec: %.0f\n", float64(writes)/elapsed.Seconds())
			fmt.Printf("  stage recomputes/sec: %.0f\n", float64(writes*depth)/elapsed.Seconds())
			return nil
		},
	}

	cmd.Flags().IntVarP(&depth, "depth", "d", 50, "Length of the combined chain")
	cmd.Flags().IntVarP(&writes, "writes", "w", 10000, "Writes to perform")

	return cmd
}
