package route

import (
	"testing"

	"github.com/a-bouts/route-planner/latlon"
)

func TestFormatDistance(t *testing.T) {
	tests := map[float64]string{
		0:          "0.00 km",
		343.556060: "343.56 km",
		12.3:       "12.30 km",
		0.125:      "0.13 km",
		1999.999:   "2000.00 km",
	}
	for km, want := range tests {
		if got := FormatDistance(km); got != want {
			t.Errorf("FormatDistance(%f) = %s; want %s", km, got, want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "0 min"},
		{0.5, "30 min"},
		{0.25, "15 min"},
		{1.0, "1h 0m"},
		{1.5, "1h 30m"},
		{5.7259343390, "5h 44m"},
		{26.1, "26h 6m"},
		{2.9999, "3h 0m"},
		{0.9999, "1h 0m"},
	}
	for _, tt := range tests {
		if got := FormatTime(tt.hours); got != tt.want {
			t.Errorf("FormatTime(%f) = %s; want %s", tt.hours, got, tt.want)
		}
	}
}

func TestFormatLatLon(t *testing.T) {
	p := latlon.LatLon{Lat: 51.5074, Lon: -0.1278}
	if got := FormatLatLon(p); got != "51.5074°, -0.1278°" {
		t.Errorf("FormatLatLon(%v) = %s; want 51.5074°, -0.1278°", p, got)
	}
	p = latlon.LatLon{Lat: -33.86882, Lon: 151.2}
	if got := FormatLatLon(p); got != "-33.8688°, 151.2000°" {
		t.Errorf("FormatLatLon(%v) = %s; want -33.8688°, 151.2000°", p, got)
	}
}
