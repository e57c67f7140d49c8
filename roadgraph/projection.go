package roadgraph

import (
	"errors"
	"fmt"
	"math"
)

// EarthRadius is the WGS84 equatorial radius in meters used by the projection.
const EarthRadius = 6378137.0

const degToRad = math.Pi / 180

// MercatorX projects a longitude in degrees to Web Mercator meters.
func MercatorX(lon float64) float64 {
	return lon * degToRad * EarthRadius
}

// MercatorY projects a latitude in degrees to Web Mercator meters.
func MercatorY(lat float64) float64 {
	return math.Log(math.Tan(lat*degToRad/2+math.Pi/4)) * EarthRadius
}

// ScaleFromBounds returns the metric scale of an extract: the shorter side of
// its projected bounding box in meters. A node at normalized distance 1 from
// another is that many meters away.
func ScaleFromBounds(b Bounds) (float64, error) {
	for _, v := range [...]float64{b.MinLat, b.MaxLat, b.MinLon, b.MaxLon} {
		if !finite(v) {
			return 0, errors.New("bounding box has a non-finite coordinate")
		}
	}
	if b.MaxLat <= b.MinLat || b.MaxLon <= b.MinLon {
		return 0, errors.New("bounding box is empty or inverted")
	}
	if b.MinLat <= -90 || b.MaxLat >= 90 {
		return 0, errors.New("latitude bounds must lie strictly within (-90, 90)")
	}
	dx := MercatorX(b.MaxLon) - MercatorX(b.MinLon)
	dy := MercatorY(b.MaxLat) - MercatorY(b.MinLat)
	scale := math.Min(dx, dy)
	if !finite(scale) || scale <= 0 {
		return 0, fmt.Errorf("bounding box yields no usable scale (%v)", scale)
	}

	return scale, nil
}

// Normalize projects a lat/lon pair into the coordinate space of an extract
// whose bounds are b and whose metric scale is scale.
func Normalize(b Bounds, scale, lat, lon float64) Point {
	return Point{
		X: (MercatorX(lon) - MercatorX(b.MinLon)) / scale,
		Y: (MercatorY(lat) - MercatorY(b.MinLat)) / scale,
	}
}
