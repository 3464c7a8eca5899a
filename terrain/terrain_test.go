package terrain

// go test -v github.com/terravue/measure/terrain

import (
	"context"
	"math"
	"testing"

	"github.com/skypies/geo"

	"github.com/terravue/measure"
)

var ctx = context.Background()

func TestGridSourceBilinear(t *testing.T) {
	gs := NewGridSource(geo.Latlong{Lat:0, Long:0}, 1.0, [][]float64{
		{ 0, 10},
		{20, 30},
	})

	tests := []struct{
		Lat, Long, Expected float64
	}{
		{0,   0,    0},
		{0,   1,   10},
		{1,   0,   20},
		{1,   1,   30},
		{0.5, 0.5, 15},
		{0,   0.5,  5},
		{0.5, 0,   10},
	}

	for _,test := range tests {
		h,err := gs.HeightAt(ctx, geo.Latlong{Lat:test.Lat, Long:test.Long})
		if err != nil { t.Fatal(err) }
		if math.Abs(h-test.Expected) > 0.000001 {
			t.Errorf("(%f,%f) - expected %f, got %f", test.Lat, test.Long, test.Expected, h)
		}
	}

	if _,err := gs.HeightAt(ctx, geo.Latlong{Lat:2, Long:0}); err == nil {
		t.Errorf("out-of-grid lookup should fail")
	}
	if _,err := gs.HeightAt(ctx, geo.Latlong{Lat:0, Long:-0.1}); err == nil {
		t.Errorf("out-of-grid lookup should fail")
	}
}

func TestConstSource(t *testing.T) {
	cs := ConstSource(42)
	h,err := cs.HeightAt(ctx, geo.Latlong{Lat:37, Long:-122})
	if err != nil || h != 42 {
		t.Errorf("expected 42, got %f (%v)", h, err)
	}

	hs,err := cs.HeightsAt(ctx, make([]geo.Latlong, 3))
	if err != nil { t.Fatal(err) }
	if len(hs) != 3 || hs[0] != 42 || hs[2] != 42 {
		t.Errorf("expected [42 42 42], got %v", hs)
	}
}

func TestSamplerStaleness(t *testing.T) {
	s := NewSampler(ConstSource(10))
	ll := geo.Latlong{Lat:37, Long:-122}

	t1 := s.Begin()
	if !s.Current(t1) { t.Errorf("fresh token should be current") }

	h,ok,err := s.HeightAt(ctx, t1, ll)
	if err != nil { t.Fatal(err) }
	if !ok || h != 10 {
		t.Errorf("current request - expected (10,true), got (%f,%v)", h, ok)
	}

	// A newer request supersedes t1; its late response must be dropped
	t2 := s.Begin()
	if s.Current(t1) { t.Errorf("superseded token should not be current") }

	if _,ok,err := s.HeightAt(ctx, t1, ll); err != nil || ok {
		t.Errorf("stale request - expected ok=false, got ok=%v err=%v", ok, err)
	}
	if _,ok,_ := s.HeightAt(ctx, t2, ll); !ok {
		t.Errorf("newest request should still resolve")
	}
}

// {{{ ClampedDistance

func groundPos(lat,long float64) measure.Position {
	return measure.PositionFromLatlong(geo.Latlong{Lat:lat, Long:long}, 0)
}

func TestClampedDistanceFlatGround(t *testing.T) {
	a := groundPos(37.0, -122.0)
	b := groundPos(37.0, -122.001) // ~90m

	straight,err := measure.Distance(a, b)
	if err != nil { t.Fatal(err) }

	clamped,err := ClampedDistance(ctx, ConstSource(0), a, b)
	if err != nil { t.Fatal(err) }

	// Over flat ground at ellipsoid height, clamping changes nothing much
	if math.Abs(clamped-straight) > straight*0.001 {
		t.Errorf("flat ground - expected ~%f, got %f", straight, clamped)
	}

	// Result carries at most 4 decimals
	if clamped != math.Round(clamped*1e4)/1e4 {
		t.Errorf("result not rounded to 4dp: %v", clamped)
	}
}

func TestClampedDistanceHillyGround(t *testing.T) {
	a := groundPos(36.95, -122.05)
	b := groundPos(36.95, -121.95) // ~9km, so plenty of samples

	flat,err := ClampedDistance(ctx, ConstSource(0), a, b)
	if err != nil { t.Fatal(err) }

	// A ridge running north-south across the middle of the path
	hills := NewGridSource(geo.Latlong{Lat:36.9, Long:-122.1}, 0.1, [][]float64{
		{0, 300, 0},
		{0, 300, 0},
		{0, 300, 0},
	})
	hilly,err := ClampedDistance(ctx, hills, a, b)
	if err != nil { t.Fatal(err) }

	if hilly <= flat {
		t.Errorf("hilly ground should measure longer: flat %f, hilly %f", flat, hilly)
	}
}

func TestClampedDistFunc(t *testing.T) {
	f := ClampedDistFunc(ctx, ConstSource(0))
	a := groundPos(37.0, -122.0)
	b := groundPos(37.0, -122.0005)

	want,err := ClampedDistance(ctx, ConstSource(0), a, b)
	if err != nil { t.Fatal(err) }
	got,err := f(a, b)
	if err != nil { t.Fatal(err) }
	if got != want {
		t.Errorf("adapter disagrees with ClampedDistance: %f vs %f", got, want)
	}
}

// }}}
