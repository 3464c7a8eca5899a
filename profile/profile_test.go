package profile

// go test -v github.com/terravue/measure/profile

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/skypies/geo"

	"github.com/terravue/measure"
	"github.com/terravue/measure/terrain"
)

var ctx = context.Background()

func groundPos(lat,long float64) measure.Position {
	return measure.PositionFromLatlong(geo.Latlong{Lat:lat, Long:long}, 0)
}

func TestComputeFlat(t *testing.T) {
	positions := []measure.Position{
		groundPos(37.0, -122.0),
		groundPos(37.0, -122.001), // ~90m
	}

	p,err := Compute(ctx, terrain.ConstSource(5), positions, 25)
	if err != nil { t.Fatal(err) }

	straight,_ := measure.Distance(positions[0], positions[1])
	wantSamples := int(straight/25) + 1
	if len(p.Samples) != wantSamples {
		t.Errorf("expected %d samples, got %d", wantSamples, len(p.Samples))
	}

	if p.MinH != 5 || p.MaxH != 5 {
		t.Errorf("flat ground - expected heights [5,5], got [%f,%f]", p.MinH, p.MaxH)
	}

	if p.Samples[0].DistM != 0 {
		t.Errorf("first sample should sit at distance 0, got %f", p.Samples[0].DistM)
	}
	for i:=1; i<len(p.Samples); i++ {
		if p.Samples[i].DistM <= p.Samples[i-1].DistM {
			t.Errorf("sample distances not monotonic at [%d]", i)
		}
	}
	if p.Samples[len(p.Samples)-1].DistM != p.TotalM {
		t.Errorf("last sample should sit at TotalM")
	}
	if math.Abs(p.TotalM-straight) > straight*0.001 {
		t.Errorf("flat total - expected ~%f, got %f", straight, p.TotalM)
	}
}

func TestComputeDedupsVertices(t *testing.T) {
	positions := []measure.Position{
		groundPos(37.0, -122.0),
		groundPos(37.0, -122.0005),
		groundPos(37.0, -122.001),
	}

	p,err := Compute(ctx, terrain.ConstSource(0), positions, 25)
	if err != nil { t.Fatal(err) }

	// The shared vertex appears once, not twice
	for i:=1; i<len(p.Samples); i++ {
		if p.Samples[i].DistM == p.Samples[i-1].DistM {
			t.Errorf("duplicate sample at distance %f", p.Samples[i].DistM)
		}
	}
}

func TestComputeNeedsTwoPoints(t *testing.T) {
	_,err := Compute(ctx, terrain.ConstSource(0), []measure.Position{groundPos(37,-122)}, 25)
	if !errors.Is(err, measure.ErrInsufficientPoints) {
		t.Errorf("expected ErrInsufficientPoints, got %v", err)
	}
}

func TestProfilePdf(t *testing.T) {
	positions := []measure.Position{
		groundPos(37.0, -122.0),
		groundPos(37.0, -122.002),
	}
	p,err := Compute(ctx, terrain.ConstSource(12), positions, 25)
	if err != nil { t.Fatal(err) }

	pp := ProfilePdf{Caption: "test profile"}
	pp.Init(p)
	pp.Draw(p)

	buf := bytes.Buffer{}
	if err := pp.Output(&buf); err != nil { t.Fatal(err) }
	if buf.Len() == 0 {
		t.Errorf("empty PDF output")
	}
}

func TestNiceStep(t *testing.T) {
	tests := []struct{
		Span     float64
		Want     int
		Expected float64
	}{
		{100, 10, 10},
		{100,  5, 20},
		{ 87,  8, 10},
		{  1, 10, 0.1},
		{5000, 8, 500},
	}
	for _,test := range tests {
		if got := niceStep(test.Span, test.Want); got != test.Expected {
			t.Errorf("niceStep(%f,%d) - expected %f, got %f",
				test.Span, test.Want, test.Expected, got)
		}
	}
}
