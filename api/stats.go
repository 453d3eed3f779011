package api

import (
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

// Stats counts the submissions handled since the server started.
type Stats struct {
	plans    uint64
	failures uint64
	points   uint64
}

func (s *Stats) planned(points int) {
	atomic.AddUint64(&s.plans, 1)
	atomic.AddUint64(&s.points, uint64(points))
}

func (s *Stats) failed() {
	atomic.AddUint64(&s.failures, 1)
}

func (s *Stats) Snapshot() (plans, failures, points uint64) {
	return atomic.LoadUint64(&s.plans), atomic.LoadUint64(&s.failures), atomic.LoadUint64(&s.points)
}

// Log is run periodically by the scheduler.
func (s *Stats) Log() {
	plans, failures, points := s.Snapshot()
	log.WithFields(log.Fields{
		"plans":    plans,
		"failures": failures,
		"points":   points,
	}).Info("Route planner stats")
}
