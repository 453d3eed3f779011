package model

import (
	"errors"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/a-bouts/route-planner/latlon"
	"github.com/a-bouts/route-planner/route"
)

type PlanRequest struct {
	Coordinates string `json:"coordinates" validate:"required,max=4096"`
	Direction   string `json:"direction" validate:"omitempty,max=8"`
}

type PlansRequest struct {
	Plans []PlanRequest `json:"plans" validate:"required,min=1,max=20"`
}

type Point struct {
	latlon.LatLon
	Label string `json:"label"`
}

type Leg struct {
	From       int     `json:"from"`
	To         int     `json:"to"`
	DistanceKm float64 `json:"distanceKm"`
	Hours      float64 `json:"hours"`
	Bearing    float64 `json:"bearing"`
	Distance   string  `json:"distance"`
	Time       string  `json:"time"`
}

type PlanResponse struct {
	Direction       route.Direction `json:"direction"`
	Points          []Point         `json:"points"`
	Legs            []Leg           `json:"legs"`
	TotalDistanceKm float64         `json:"totalDistanceKm"`
	TotalHours      float64         `json:"totalHours"`
	TotalDistance   string          `json:"totalDistance"`
	TotalTime       string          `json:"totalTime"`
}

type ErrorResponse struct {
	Error    string `json:"error"`
	Kind     string `json:"kind,omitempty"`
	Position int    `json:"position,omitempty"`
}

type PlanResult struct {
	Plan  *PlanResponse  `json:"plan,omitempty"`
	Error *ErrorResponse `json:"error,omitempty"`
}

type PlansResponse struct {
	Results []PlanResult `json:"results"`
}

func toFixed(val float64, n int) float64 {
	mult := math.Pow10(n)
	return math.Round(val*mult) / mult
}

func NewPlanResponse(p route.Plan) PlanResponse {
	res := PlanResponse{
		Direction:       p.Direction,
		Points:          make([]Point, len(p.Points)),
		Legs:            make([]Leg, 0, len(p.Distances)),
		TotalDistanceKm: p.TotalDistance,
		TotalHours:      p.TotalTime,
		TotalDistance:   route.FormatDistance(p.TotalDistance),
		TotalTime:       route.FormatTime(p.TotalTime),
	}

	for i, pt := range p.Points {
		res.Points[i] = Point{LatLon: pt, Label: route.FormatLatLon(pt)}
	}

	for i, leg := range p.Legs() {
		res.Legs = append(res.Legs, Leg{
			From:       i + 1,
			To:         i + 2,
			DistanceKm: leg.Distance,
			Hours:      leg.Time,
			Bearing:    toFixed(leg.Bearing, 1),
			Distance:   route.FormatDistance(leg.Distance),
			Time:       route.FormatTime(leg.Time),
		})
	}

	return res
}

// NewErrorResponse describes err for the client. The boolean is false when
// err is not caused by the request.
func NewErrorResponse(err error) (ErrorResponse, bool) {
	res := ErrorResponse{Error: err.Error()}

	var perr *latlon.ParseError
	var verr validator.ValidationErrors
	switch {
	case errors.As(err, &perr):
		res.Kind = perr.Kind.String()
		res.Position = perr.Position
	case errors.Is(err, route.ErrInsufficientPoints):
		res.Kind = "InsufficientPoints"
	case errors.Is(err, route.ErrTooManyPoints):
		res.Kind = "TooManyPoints"
	case errors.Is(err, route.ErrUnknownDirection):
		res.Kind = "UnknownDirection"
	case errors.As(err, &verr):
		res.Kind = "InvalidRequest"
	default:
		return ErrorResponse{Error: "internal error"}, false
	}
	return res, true
}
