package measure

import (
	"math"
)

// Distance is the straight-line separation of two positions, in meters.
// Terrain-clamped distance lives in the terrain package; callers that want it
// plug it into Editor.DistFunc.
func Distance(a, b Position) (float64, error) {
	if !a.IsValid() || !b.IsValid() {
		return 0, ErrInvalidInput
	}
	dx,dy,dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz), nil
}

// CumulativeDistances returns the per-segment distances for consecutive pairs,
// plus the running total. Fewer than two points yields an empty, zero result.
func CumulativeDistances(positions []Position) ([]float64, float64, error) {
	dists := []float64{}
	total := 0.0

	for i:=0; i<len(positions)-1; i++ {
		d,err := Distance(positions[i], positions[i+1])
		if err != nil { return nil, 0, err }
		dists = append(dists, d)
		total += d
	}
	return dists, total, nil
}

// PolygonArea computes the area of a simple (non-self-intersecting) polygon by
// fan triangulation from the first vertex: the triangle cross products are
// summed as vectors and the total's magnitude halved, so signed areas cancel
// and concave chains measure correctly. The polygon need not be closed; a
// repeated final vertex contributes a degenerate triangle of zero area.
func PolygonArea(positions []Position) (float64, error) {
	if len(positions) < 3 {
		return 0, ErrInsufficientPoints
	}
	for _,p := range positions {
		if !p.IsValid() { return 0, ErrInvalidInput }
	}

	p0 := positions[0]
	sx,sy,sz := 0.0, 0.0, 0.0
	for i:=1; i<len(positions)-1; i++ {
		ux,uy,uz := positions[i].X-p0.X, positions[i].Y-p0.Y, positions[i].Z-p0.Z
		vx,vy,vz := positions[i+1].X-p0.X, positions[i+1].Y-p0.Y, positions[i+1].Z-p0.Z

		sx += uy*vz - uz*vy
		sy += uz*vx - ux*vz
		sz += ux*vy - uy*vx
	}
	return math.Sqrt(sx*sx + sy*sy + sz*sz) / 2, nil
}
