package aco

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors updated by a Colony.
// All methods are safe on a nil receiver and then do nothing.
type Metrics struct {
	iterations    prometheus.Counter
	tours         prometheus.Counter
	iterationBest prometheus.Histogram
	globalBest    prometheus.Gauge
	trailMass     prometheus.Gauge
}

// NewMetrics registers the colony collectors with reg.
// Like promauto, it panics if the collectors are already registered with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		iterations: f.NewCounter(prometheus.CounterOpts{
			Name: "antsys_iterations_total",
			Help: "Total completed Ant System iterations",
		}),
		tours: f.NewCounter(prometheus.CounterOpts{
			Name: "antsys_tours_constructed_total",
			Help: "Total tours constructed by all ants",
		}),
		iterationBest: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "antsys_iteration_best_length",
			Help:    "Length of the best tour of each iteration",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		globalBest: f.NewGauge(prometheus.GaugeOpts{
			Name: "antsys_global_best_length",
			Help: "Length of the best tour found so far",
		}),
		trailMass: f.NewGauge(prometheus.GaugeOpts{
			Name: "antsys_trail_mass",
			Help: "Sum of all pheromone trail entries after the last update",
		}),
	}
}

func (m *Metrics) observeIteration(res IterationResult, trailMass float64) {
	if m == nil {
		return
	}
	m.iterations.Inc()
	m.tours.Add(float64(len(res.Tours)))
	m.iterationBest.Observe(res.Best.Length())
	m.trailMass.Set(trailMass)
}

func (m *Metrics) observeGlobalBest(t Tour) {
	if m == nil || t.IsEmpty() {
		return
	}
	m.globalBest.Set(t.Length())
}
