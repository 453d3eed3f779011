package route

import (
	"errors"
	"fmt"

	"github.com/a-bouts/route-planner/latlon"
)

const (
	// MinPoints and MaxPoints bound the number of coordinates of a submission.
	MinPoints = 2
	MaxPoints = 15

	// AverageSpeed is the travel speed in km/h.
	AverageSpeed = 60.0
)

var geodesic latlon.LatLonInterface = latlon.Haversine{}

var (
	ErrInsufficientPoints = errors.New("please enter at least 2 coordinate pairs")
	ErrTooManyPoints      = errors.New("maximum 15 coordinate pairs allowed")
)

// Plan is a sorted route with the distance (km) and time (h) of each leg.
// Distances[i] and Times[i] are measured between Points[i] and Points[i+1].
type Plan struct {
	Direction     Direction       `json:"direction"`
	Points        []latlon.LatLon `json:"points"`
	Distances     []float64       `json:"distances"`
	Times         []float64       `json:"times"`
	TotalDistance float64         `json:"totalDistance"`
	TotalTime     float64         `json:"totalTime"`
}

type Leg struct {
	From     latlon.LatLon
	To       latlon.LatLon
	Distance float64
	Time     float64
	Bearing  float64
}

// TravelTime returns the hours needed to cover distance km at AverageSpeed.
func TravelTime(distance float64) float64 {
	return distance / AverageSpeed
}

// CheckCount enforces MinPoints and MaxPoints.
func CheckCount(n int) error {
	if n < MinPoints {
		return fmt.Errorf("%w (got %d)", ErrInsufficientPoints, n)
	}
	if n > MaxPoints {
		return fmt.Errorf("%w (got %d)", ErrTooManyPoints, n)
	}
	return nil
}

// Compute sorts points for the direction and measures every leg.
// Fewer than two points give a plan without legs.
func Compute(points []latlon.LatLon, d Direction) Plan {
	sorted := Sort(points, d)

	legs := 0
	if len(sorted) > 1 {
		legs = len(sorted) - 1
	}

	plan := Plan{
		Direction: d,
		Points:    sorted,
		Distances: make([]float64, 0, legs),
		Times:     make([]float64, 0, legs),
	}

	for i := 0; i < legs; i++ {
		dist := geodesic.DistanceTo(sorted[i], sorted[i+1])
		t := TravelTime(dist)

		plan.Distances = append(plan.Distances, dist)
		plan.Times = append(plan.Times, t)
		plan.TotalDistance += dist
	}

	for _, t := range plan.Times {
		plan.TotalTime += t
	}

	return plan
}

// Build parses text, checks the number of points and computes the plan.
func Build(text string, d Direction) (Plan, error) {
	points, err := latlon.Parse(text)
	if err != nil {
		return Plan{}, err
	}
	if err := CheckCount(len(points)); err != nil {
		return Plan{}, err
	}
	return Compute(points, d), nil
}

func (p Plan) Legs() []Leg {
	legs := make([]Leg, len(p.Distances))
	for i := range legs {
		d, b := geodesic.DistanceAndBearingTo(p.Points[i], p.Points[i+1])
		legs[i] = Leg{
			From:     p.Points[i],
			To:       p.Points[i+1],
			Distance: d,
			Time:     p.Times[i],
			Bearing:  b,
		}
	}
	return legs
}
