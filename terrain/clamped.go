package terrain

import (
	"context"
	"math"

	pgeo "github.com/paulmach/go.geo"
	"github.com/skypies/geo"

	"github.com/terravue/measure"
)

var(
	// One ground sample roughly every this many meters of straight-line
	// distance.
	KSampleStepM = 25.0

	kMaxSamples = 256
)

// ClampedDistance measures a segment along the ground: interpolate the
// latlong path between the endpoints, sample terrain height at each step, and
// sum the fragment distances. The result is rounded to 4 decimals (display
// rounds further, to 2).
func ClampedDistance(ctx context.Context, q Query, a, b measure.Position) (float64, error) {
	straight,err := measure.Distance(a, b)
	if err != nil { return 0, err }

	n := int(straight / KSampleStepM)
	if n < 1 { n = 1 }
	if n > kMaxSamples { n = kMaxSamples }

	lla,_ := a.Latlong()
	llb,_ := b.Latlong()
	line := pgeo.NewLine(pgeo.NewPoint(lla.Long, lla.Lat), pgeo.NewPoint(llb.Long, llb.Lat))

	total := 0.0
	var prev measure.Position
	for i:=0; i<=n; i++ {
		pt := line.Interpolate(float64(i) / float64(n))
		ll := geo.Latlong{Lat: pt.Lat(), Long: pt.Lng()}

		h,err := q.HeightAt(ctx, ll)
		if err != nil { return 0, err }

		pos := measure.PositionFromLatlong(ll, h)
		if i > 0 {
			d,err := measure.Distance(prev, pos)
			if err != nil { return 0, err }
			total += d
		}
		prev = pos
	}

	return math.Round(total*1e4) / 1e4, nil
}

// ClampedDistFunc adapts ClampedDistance into the editor's DistFunc shape.
func ClampedDistFunc(ctx context.Context, q Query) func(a, b measure.Position) (float64, error) {
	return func(a, b measure.Position) (float64, error) {
		return ClampedDistance(ctx, q, a, b)
	}
}
