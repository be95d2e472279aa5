package projection

import (
	"context"
	"runtime"

	"github.com/career-compass/projector/pkg/diagnostics"
	"github.com/career-compass/projector/pkg/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Metrics are the collectors of the simulator.
var Metrics = []prometheus.Collector{
	simulationCount,
	diagnosticCount,
}

var simulationCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "projector_simulations_total",
		Help: "How many participant projections were simulated, partitioned by reference track.",
	},
	[]string{"track"},
)

var diagnosticCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "projector_simulation_diagnostics_total",
		Help: "How many diagnostics the simulator reported, partitioned by kind.",
	},
	[]string{"kind"},
)

// SimulateAll projects all participants in parallel.
//
// At most workers simulations run at the same time, a value below 1
// uses GOMAXPROCS. The result has the same order as participants.
// Data problems of single participants are reported as diagnostics on
// their projection, only a cancelled context fails the batch.
func SimulateAll(ctx context.Context, participants []models.Participant, tables Tables, workers int) ([]Projection, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	projections := make([]Projection, len(participants))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, p := range participants {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			projection := simulate(p, tables)
			projections[i] = projection

			simulationCount.WithLabelValues(string(projection.Track)).Inc()
			for _, d := range projection.Diagnostics {
				diagnosticCount.WithLabelValues(string(d.Kind)).Inc()
			}
			diagnostics.Log(log.Logger, projection.Diagnostics)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return projections, nil
}
