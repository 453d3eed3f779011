package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/a-bouts/route-planner/latlon"
	"github.com/a-bouts/route-planner/route"
)

func TestNewPlanResponse(t *testing.T) {
	p := route.Compute([]latlon.LatLon{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}, {Lat: 1, Lon: 1}}, route.West)
	res := NewPlanResponse(p)

	assert.Equal(t, route.West, res.Direction)
	assert.Len(t, res.Points, 3)
	assert.Equal(t, "0.0000°, 0.0000°", res.Points[0].Label)
	assert.Len(t, res.Legs, 2)
	assert.Equal(t, 2, res.Legs[1].From)
	assert.Equal(t, 3, res.Legs[1].To)
	assert.Equal(t, route.FormatTime(p.TotalTime), res.TotalTime)
	assert.Equal(t, route.FormatDistance(p.TotalDistance), res.TotalDistance)
}

func TestNewErrorResponse(t *testing.T) {
	_, err := latlon.Parse("abc, 5")
	res, ok := NewErrorResponse(err)
	assert.True(t, ok)
	assert.Equal(t, "InvalidNumber", res.Kind)
	assert.Equal(t, 1, res.Position)

	res, ok = NewErrorResponse(fmt.Errorf("plan: %w", route.CheckCount(20)))
	assert.True(t, ok)
	assert.Equal(t, "TooManyPoints", res.Kind)

	res, ok = NewErrorResponse(errors.New("boom"))
	assert.False(t, ok)
	assert.Equal(t, "internal error", res.Error)
	assert.Empty(t, res.Kind)
}
