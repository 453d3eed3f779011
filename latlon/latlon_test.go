package latlon

import (
	"math"
	"testing"
)

func TestWrap360(t *testing.T) {
	a := wrap360(-1.0)
	if a != 359.0 {
		t.Errorf("wrap360(-1) = %f; want 359.0", a)
	}
	b := wrap360(361.0)
	if b != 1.0 {
		t.Errorf("wrap360(361.0) = %f; want 1.0", b)
	}
}

func TestValid(t *testing.T) {
	valid := []LatLon{
		{Lat: 0, Lon: 0},
		{Lat: 90, Lon: 180},
		{Lat: -90, Lon: -180},
		{Lat: 51.5074, Lon: -0.1278},
	}
	for _, p := range valid {
		if !p.Valid() {
			t.Errorf("{%f,%f}.Valid() = false; want true", p.Lat, p.Lon)
		}
	}

	invalid := []LatLon{
		{Lat: 90.0001, Lon: 0},
		{Lat: -91, Lon: 0},
		{Lat: 0, Lon: 180.5},
		{Lat: 0, Lon: -181},
		{Lat: math.NaN(), Lon: 0},
	}
	for _, p := range invalid {
		if p.Valid() {
			t.Errorf("{%f,%f}.Valid() = true; want false", p.Lat, p.Lon)
		}
	}
}

func TestDistanceTo(t *testing.T) {
	london := LatLon{Lat: 51.5074, Lon: -0.1278}
	paris := LatLon{Lat: 48.8566, Lon: 2.3522}

	d := Haversine{}.DistanceTo(london, paris)
	if math.Round(d*100) != 34356 {
		t.Errorf("{%f,%f}.distanceTo({%f,%f}) = %f; want 343.56", london.Lat, london.Lon, paris.Lat, paris.Lon, d)
	}

	r := Haversine{}.DistanceTo(paris, london)
	if math.Abs(d-r) > 1e-9 {
		t.Errorf("distanceTo is not symmetric: %f != %f", d, r)
	}

	z := Haversine{}.DistanceTo(london, london)
	if z > 1e-9 {
		t.Errorf("{%f,%f}.distanceTo(itself) = %f; want 0", london.Lat, london.Lon, z)
	}

	p1 := LatLon{Lat: 0, Lon: 0}
	p2 := LatLon{Lat: 0, Lon: 1}
	d = Haversine{}.DistanceTo(p1, p2)
	if math.Round(d*1000) != 111195 {
		t.Errorf("{%f,%f}.distanceTo({%f,%f}) = %f; want 111.195", p1.Lat, p1.Lon, p2.Lat, p2.Lon, d)
	}

	ny := LatLon{Lat: 40.7128, Lon: -74.0060}
	la := LatLon{Lat: 34.0522, Lon: -118.2437}
	d = Haversine{}.DistanceTo(ny, la)
	if math.Round(d) != 3936 {
		t.Errorf("{%f,%f}.distanceTo({%f,%f}) = %f; want 3936", ny.Lat, ny.Lon, la.Lat, la.Lon, d)
	}
}

func TestBearingTo(t *testing.T) {
	p1 := LatLon{Lat: 0, Lon: 0}
	p2 := LatLon{Lat: 0, Lon: 10}
	b := Haversine{}.BearingTo(p1, p2)
	if math.Round(b) != 90.0 {
		t.Errorf("{%f,%f}.bearingTo({%f,%f}) = %f; want 90", p1.Lat, p1.Lon, p2.Lat, p2.Lon, b)
	}

	b = Haversine{}.BearingTo(p2, p1)
	if math.Round(b) != 270.0 {
		t.Errorf("{%f,%f}.bearingTo({%f,%f}) = %f; want 270", p2.Lat, p2.Lon, p1.Lat, p1.Lon, b)
	}

	p3 := LatLon{Lat: 10, Lon: 0}
	b = Haversine{}.BearingTo(p3, p1)
	if math.Round(b) != 180.0 {
		t.Errorf("{%f,%f}.bearingTo({%f,%f}) = %f; want 180", p3.Lat, p3.Lon, p1.Lat, p1.Lon, b)
	}

	london := LatLon{Lat: 51.5074, Lon: -0.1278}
	paris := LatLon{Lat: 48.8566, Lon: 2.3522}
	d, b := Haversine{}.DistanceAndBearingTo(london, paris)
	if math.Round(d) != 344 || math.Round(b) != 148 {
		t.Errorf("distanceAndBearingTo(london, paris) = (%f, %f); want (344, 148)", d, b)
	}
}
