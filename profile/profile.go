// Package profile computes and renders terrain profiles along a measurement
// chain: ground height sampled at fixed steps, plotted against distance
// travelled.
package profile

import (
	"context"
	"fmt"

	pgeo "github.com/paulmach/go.geo"
	"github.com/skypies/geo"

	"github.com/terravue/measure"
	"github.com/terravue/measure/terrain"
)

type Sample struct {
	DistM   float64 // horizontal distance along the chain from its start
	HeightM float64
	geo.Latlong
}

type Profile struct {
	Samples    []Sample
	TotalM     float64
	MinH, MaxH float64
}

func (p *Profile)String() string {
	return fmt.Sprintf("profile: %d samples over %.1fm, heights [%.1f,%.1f]",
		len(p.Samples), p.TotalM, p.MinH, p.MaxH)
}

// Compute samples ground height along the chain, one sample roughly every
// stepM meters (plus every chain vertex). Needs at least two positions.
func Compute(ctx context.Context, q terrain.Query, positions []measure.Position, stepM float64) (*Profile, error) {
	if len(positions) < 2 {
		return nil, measure.ErrInsufficientPoints
	}
	if stepM <= 0 { stepM = terrain.KSampleStepM }

	prof := &Profile{ Samples: []Sample{} }
	dist := 0.0
	var prevGround measure.Position

	for seg:=0; seg<len(positions)-1; seg++ {
		a,b := positions[seg], positions[seg+1]
		straight,err := measure.Distance(a, b)
		if err != nil { return nil, err }

		n := int(straight / stepM)
		if n < 1 { n = 1 }

		lla,_ := a.Latlong()
		llb,_ := b.Latlong()
		line := pgeo.NewLine(pgeo.NewPoint(lla.Long, lla.Lat), pgeo.NewPoint(llb.Long, llb.Lat))

		start := 0
		if seg > 0 { start = 1 } // vertex already sampled as the previous segment's end

		for i:=start; i<=n; i++ {
			pt := line.Interpolate(float64(i) / float64(n))
			ll := geo.Latlong{Lat: pt.Lat(), Long: pt.Lng()}

			h,err := q.HeightAt(ctx, ll)
			if err != nil { return nil, err }

			ground := measure.PositionFromLatlong(ll, 0)
			if len(prof.Samples) > 0 {
				d,err := measure.Distance(prevGround, ground)
				if err != nil { return nil, err }
				dist += d
			}
			prevGround = ground

			prof.Samples = append(prof.Samples, Sample{DistM: dist, HeightM: h, Latlong: ll})

			if len(prof.Samples) == 1 || h < prof.MinH { prof.MinH = h }
			if len(prof.Samples) == 1 || h > prof.MaxH { prof.MaxH = h }
		}
	}

	prof.TotalM = dist
	return prof, nil
}
