package export

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"

	"github.com/emrzvv/statdist/internal/stats"
)

// AggregateArrivals buckets arrival events into fixed-width steps and
// returns the per-step counts.
func AggregateArrivals(events []*stats.ArrivalEvent, step, horizon float64) []float64 {
	buckets := int(math.Ceil(horizon / step))
	counts := make([]float64, buckets)

	for _, event := range events {
		index := int(event.T / step)
		if index < buckets {
			counts[index] += 1
		}
	}
	return counts
}

func WriteSamples(path string, samples []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	_ = w.Write([]string{"sample"})
	for _, s := range samples {
		w.Write([]string{fmt.Sprintf("%.12g", s)})
	}
	w.Flush()
	return w.Error()
}

func WriteArrivalCounts(path string, counts []float64, step float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	_ = w.Write([]string{"t", "arrivals"})
	for i, c := range counts {
		w.Write([]string{
			fmt.Sprintf("%.3f", float64(i)*step),
			fmt.Sprintf("%.0f", c),
		})
	}
	w.Flush()
	return w.Error()
}

func WriteSummary(path string, s stats.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	_ = w.Write([]string{"arrivals", "completed", "mean_service", "var_service", "max_service"})
	w.Write([]string{
		fmt.Sprintf("%d", s.Arrivals),
		fmt.Sprintf("%d", s.Completed),
		fmt.Sprintf("%.6f", s.MeanService),
		fmt.Sprintf("%.6f", s.VarService),
		fmt.Sprintf("%.6f", s.MaxService),
	})
	w.Flush()
	return w.Error()
}
