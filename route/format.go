package route

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/a-bouts/route-planner/latlon"
)

// FormatDistance renders km with two decimals, halves rounded away from zero.
func FormatDistance(km float64) string {
	return decimal.NewFromFloat(km).StringFixed(2) + " km"
}

// FormatTime renders hours as "M min" under one hour and "Hh Mm" otherwise.
// Minutes rounding up to 60 are carried into the hours.
func FormatTime(hours float64) string {
	h := math.Floor(hours)
	m := math.Round((hours - h) * 60)
	if m >= 60 {
		h++
		m -= 60
	}

	if h == 0 {
		return fmt.Sprintf("%d min", int(m))
	}
	return fmt.Sprintf("%dh %dm", int(h), int(m))
}

// FormatLatLon renders a point as "51.5074°, -0.1278°".
func FormatLatLon(p latlon.LatLon) string {
	return decimal.NewFromFloat(p.Lat).StringFixed(4) + "°, " + decimal.NewFromFloat(p.Lon).StringFixed(4) + "°"
}
