// Package simulator runs an M/G/∞ discrete-event model: Poisson
// arrivals whose service times are drawn from a gamma distribution.
// It exists to exercise the sampler under a realistic event-driven
// load and to collect its empirical statistics.
package simulator

import (
	"github.com/fschuetz04/simgo"

	"github.com/emrzvv/statdist/distribution"
	"github.com/emrzvv/statdist/internal/config"
	"github.com/emrzvv/statdist/internal/stats"
	"github.com/emrzvv/statdist/rng"
)

func Run(cfg *config.Config, dist distribution.Gamma, src *rng.RNG) *stats.Statistics {
	simulation := simgo.NewSimulation()
	statistics := stats.NewStatistics()

	simulation.Process(func(proc simgo.Process) {
		generateArrivals(proc, simulation, cfg, dist, src, statistics)
	})

	simulation.RunUntil(cfg.Simulation.TimeSeconds)
	return statistics
}

func generateArrivals(
	proc simgo.Process,
	sim *simgo.Simulation,
	cfg *config.Config,
	dist distribution.Gamma,
	src *rng.RNG,
	st *stats.Statistics) {

	for {
		ia := src.ExpFloat64() / cfg.Simulation.ArrivalRPS
		if ia < 1e-6 {
			ia = 1e-6
		}
		proc.Wait(proc.Timeout(ia))
		now := proc.Now()

		st.AddArrival(&stats.ArrivalEvent{T: now})
		sim.Process(func(service simgo.Process) {
			serve(service, now, dist, src, st)
		})
	}
}

func serve(
	proc simgo.Process,
	start float64,
	dist distribution.Gamma,
	src *rng.RNG,
	st *stats.Statistics) {

	d := dist.Sample(src)
	proc.Wait(proc.Timeout(d))
	st.AddService(&stats.ServiceEvent{
		T1:       start,
		T2:       start + d,
		Duration: d,
	})
}
