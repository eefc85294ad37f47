package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/emrzvv/statdist/distribution"
	"github.com/emrzvv/statdist/internal/config"
	"github.com/emrzvv/statdist/internal/export"
	"github.com/emrzvv/statdist/internal/simulator"
	"github.com/emrzvv/statdist/rng"
)

func main() {
	cfgPath := flag.String("cfg", "./config/default.yaml", "path to config")
	outDir := flag.String("out", "./results", "output directory")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	dist, err := distribution.NewGamma(cfg.Gamma.Shape, cfg.Gamma.Rate)
	if err != nil {
		log.Fatal(err)
	}
	src := rng.New(cfg.Simulation.Seed)

	st := simulator.Run(cfg, dist, src)
	summary := st.Summarize()
	log.Printf("arrivals=%d completed=%d mean_service=%.4f (theory %.4f) var_service=%.4f (theory %.4f)",
		summary.Arrivals, summary.Completed,
		summary.MeanService, dist.Mean(),
		summary.VarService, dist.Variance())

	counts := export.AggregateArrivals(st.Arrivals,
		cfg.Simulation.StepSeconds, cfg.Simulation.TimeSeconds)
	if err := export.WriteArrivalCounts(filepath.Join(*outDir, "arrivals.csv"),
		counts, cfg.Simulation.StepSeconds); err != nil {
		log.Fatal(err)
	}
	if err := export.WriteSummary(filepath.Join(*outDir, "summary.csv"), summary); err != nil {
		log.Fatal(err)
	}

	samples := make([]float64, cfg.Plot.Samples)
	for i := range samples {
		samples[i] = dist.Sample(src)
	}
	if err := export.WriteSamples(filepath.Join(*outDir, "samples.csv"), samples); err != nil {
		log.Fatal(err)
	}

	if err := export.PlotDensity(dist, cfg.Plot.XMax,
		filepath.Join(*outDir, "density.png")); err != nil {
		log.Fatal(err)
	}
	if err := export.PlotHistogram(dist, samples, cfg.Plot.Bins,
		filepath.Join(*outDir, "histogram.png")); err != nil {
		log.Fatal(err)
	}
	log.Printf("results written to %s", *outDir)
}
