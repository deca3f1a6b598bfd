package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/reflow-dev/reflow/pkg/reflow"
	"github.com/reflow-dev/reflow/pkg/telemetry"
)

// renderedState is what the scenario's binding last rendered. The load
// loop and the HTTP handlers run on different goroutines, so access is
// mutex-guarded.
type renderedState struct {
	mu      sync.Mutex
	label   string
	renders int
}

func (r *renderedState) render(label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.label = label
	r.renders++
}

func (r *renderedState) snapshot() (string, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.label, r.renders
}

func serveCmd() *cobra.Command {
	var (
		addr     string
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a continuous scenario and expose Prometheus metrics",
		Long: `serve drives a small value graph (counter + phase → combined label →
binding) on a single writer goroutine and exposes:

  GET /metrics  Prometheus metrics for writes, waves, and rebuilds
  GET /state    JSON snapshot of the scenario's current values`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := prometheus.NewRegistry()
			metrics := telemetry.NewMetrics(telemetry.WithRegistry(reg))

			scope := reflow.NewScope(nil)
			defer scope.Dispose()

			counter := reflow.New(0, reflow.WithInstrument[int](metrics))
			phase := reflow.New("even", reflow.WithInstrument[string](metrics))
			label := reflow.Combine2(counter, phase, func(n int, p string) string {
				return fmt.Sprintf("%s:%d", p, n)
			}, reflow.WithInstrument[string](metrics))
			scope.Adopt(label)

			rendered := &renderedState{}
			reflow.Bind(scope, label.Value, rendered.render,
				reflow.WithRenderInstrument[string](metrics))

			// Single writer goroutine, per the core's threading contract.
			go func() {
				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				for range ticker.C {
					counter.Update(func(n int) int { return n + 1 })
					if counter.Get()%2 == 0 {
						phase.Set("even")
					} else {
						phase.Set("odd")
					}
				}
			}()

			r := chi.NewRouter()
			r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			r.Get("/state", func(w http.ResponseWriter, req *http.Request) {
				lbl, renders := rendered.snapshot()
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(map[string]any{
					"counter": counter.Get(),
					"phase":   phase.Get(),
					"label":   label.Get(),
					"rendered": map[string]any{
						"label":   lbl,
						"renders": renders,
					},
				})
			})

			fmt.Printf("serving on %s (interval %s)\n", addr, interval)
			return http.ListenAndServe(addr, r)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":9090", "Listen address")
	cmd.Flags().DurationVarP(&interval, "interval", "i", 100*time.Millisecond, "Write interval")

	return cmd
}
