package api

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	plans    *prometheus.CounterVec
	failures *prometheus.CounterVec
	points   prometheus.Histogram
	duration prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		plans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "route_planner",
			Name:      "plans_total",
			Help:      "Number of planned routes by starting direction.",
		}, []string{"direction"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "route_planner",
			Name:      "plan_failures_total",
			Help:      "Number of rejected submissions by error kind.",
		}, []string{"kind"}),
		points: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "route_planner",
			Name:      "plan_points",
			Help:      "Number of points per planned route.",
			Buckets:   prometheus.LinearBuckets(2, 1, 14),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "route_planner",
			Name:      "plan_duration_seconds",
			Help:      "Time spent parsing and measuring a submission.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
	}

	reg.MustRegister(m.plans, m.failures, m.points, m.duration)
	return m
}
