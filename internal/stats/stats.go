package stats

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"
)

type Statistics struct {
	mu       sync.Mutex
	Arrivals []*ArrivalEvent
	Services []*ServiceEvent
}

type ArrivalEvent struct {
	T float64
}

type ServiceEvent struct {
	T1       float64
	T2       float64
	Duration float64
}

type Summary struct {
	Arrivals    int
	Completed   int
	MeanService float64
	VarService  float64
	MaxService  float64
}

func NewStatistics() *Statistics {
	return &Statistics{
		Arrivals: make([]*ArrivalEvent, 0),
		Services: make([]*ServiceEvent, 0),
	}
}

func (st *Statistics) AddArrival(ae *ArrivalEvent) {
	st.mu.Lock()
	st.Arrivals = append(st.Arrivals, ae)
	st.mu.Unlock()
}

func (st *Statistics) AddService(se *ServiceEvent) {
	st.mu.Lock()
	st.Services = append(st.Services, se)
	st.mu.Unlock()
}

// Durations returns the observed service times in completion order.
func (st *Statistics) Durations() []float64 {
	st.mu.Lock()
	defer st.mu.Unlock()
	ds := make([]float64, len(st.Services))
	for i, s := range st.Services {
		ds[i] = s.Duration
	}
	return ds
}

func (st *Statistics) Summarize() Summary {
	ds := st.Durations()
	s := Summary{
		Arrivals:  len(st.Arrivals),
		Completed: len(ds),
	}
	if len(ds) == 0 {
		return s
	}
	s.MeanService = stat.Mean(ds, nil)
	s.VarService = stat.Variance(ds, nil)
	s.MaxService = math.Inf(-1)
	for _, d := range ds {
		if d > s.MaxService {
			s.MaxService = d
		}
	}
	return s
}
