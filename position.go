package measure

import(
	"fmt"
	"math"

	"github.com/skypies/geo"
)

var(
	// How close two clicked positions need to be before we treat them as the
	// same point, in meters.
	KNearPointThresholdM = 0.4

	// WGS84 constants, for the ECEF<->latlong conversions
	kWgsA  = 6378137.0
	kWgsE2 = 6.69437999014e-3
)

// A Position is a point in a world-fixed Cartesian frame (ECEF, meters).
// All the measurement math happens in this frame; latlongs only appear at the
// terrain and persistence boundaries.
type Position struct {
	X, Y, Z float64
}

func (p Position)String() string {
	return fmt.Sprintf("(%.2f,%.2f,%.2f)", p.X, p.Y, p.Z)
}

func (p Position)IsValid() bool {
	for _,v := range []float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v,0) { return false }
	}
	return true
}

// Equal is exact comparison; clicked points resolve back to stored points by
// identity, not proximity.
func (p Position)Equal(q Position) bool {
	return p.X == q.X && p.Y == q.Y && p.Z == q.Z
}

func (p Position)NearTo(q Position, thresholdM float64) bool {
	dx,dy,dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z
	return dx*dx + dy*dy + dz*dz <= thresholdM*thresholdM
}

func (p Position)MidpointTo(q Position) Position {
	return Position{ (p.X+q.X)/2, (p.Y+q.Y)/2, (p.Z+q.Z)/2 }
}

// PositionFromLatlong maps a latlong + height above the ellipsoid into ECEF.
func PositionFromLatlong(ll geo.Latlong, heightM float64) Position {
	lat := ll.Lat * math.Pi/180
	long := ll.Long * math.Pi/180
	sinLat,cosLat := math.Sin(lat), math.Cos(lat)
	sinLong,cosLong := math.Sin(long), math.Cos(long)

	n := kWgsA / math.Sqrt(1 - kWgsE2*sinLat*sinLat)
	return Position{
		X: (n+heightM) * cosLat * cosLong,
		Y: (n+heightM) * cosLat * sinLong,
		Z: (n*(1-kWgsE2) + heightM) * sinLat,
	}
}

// Latlong maps back to a latlong + height. Iterative; converges plenty fast
// for anything near the surface.
func (p Position)Latlong() (geo.Latlong, float64) {
	long := math.Atan2(p.Y, p.X)
	r := math.Sqrt(p.X*p.X + p.Y*p.Y)
	lat := math.Atan2(p.Z, r*(1-kWgsE2))

	h := 0.0
	for i:=0; i<5; i++ {
		sinLat := math.Sin(lat)
		n := kWgsA / math.Sqrt(1 - kWgsE2*sinLat*sinLat)
		h = r/math.Cos(lat) - n
		lat = math.Atan2(p.Z, r*(1 - kWgsE2*(n/(n+h))))
	}

	return geo.Latlong{Lat: lat*180/math.Pi, Long: long*180/math.Pi}, h
}
