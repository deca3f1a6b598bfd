package main

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/reflow-dev/reflow/pkg/reflow"
	"github.com/reflow-dev/reflow/pkg/telemetry"
)

func fanoutCmd() *cobra.Command {
	var (
		subscribers int
		writes      int
	)

	cmd := &cobra.Command{
		Use:   "fanout",
		Short: "Measure notification throughput for one value with many subscribers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if subscribers < 1 || writes < 1 {
				return fmt.Errorf("subscribers and writes must be positive")
			}

			reg := prometheus.NewRegistry()
			metrics := telemetry.NewMetrics(telemetry.WithRegistry(reg))

			value := reflow.New(0, reflow.WithInstrument[int](metrics))

			var delivered int
			for i := 0; i < subscribers; i++ {
				value.Subscribe(func(int) { delivered++ })
			}

			start := time.Now()
			for i := 1; i <= writes; i++ {
				value.Set(i)
			}
			elapsed := time.Since(start)

			wantDelivered := subscribers * writes
			if delivered != wantDelivered {
				return fmt.Errorf("delivered %d notifications, expected %d", delivered, wantDelivered)
			}

			fmt.Printf("fanout: %d subscribers, %d writes\n", subscribers, writes)
			fmt.Printf("  elapsed:       %s\n", elapsed)
			fmt.Printf("  waves/sec:     %.0f\n", float64(writes)/elapsed.Seconds())
			fmt.Printf("  deliveries/sec: %.0f\n", float64(delivered)/elapsed.Seconds())
			return nil
		},
	}

	cmd.Flags().IntVarP(&subscribers, "subscribers", "n", 100, "Subscribers on the value")
	cmd.Flags().IntVarP(&writes, "writes", "w", 10000, "Writes to perform")

	return cmd
}
