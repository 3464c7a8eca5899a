package measure

// go test -v github.com/terravue/measure

import (
	"errors"
	"math"
	"testing"
)

func pt(x,y,z float64) Position { return Position{X:x, Y:y, Z:z} }

func closeEnough(a,b float64) bool { return math.Abs(a-b) < 0.000001 }

func TestDistance(t *testing.T) {
	d,err := Distance(pt(0,0,0), pt(3,4,0))
	if err != nil { t.Fatal(err) }
	if !closeEnough(d, 5) {
		t.Errorf("3-4-5 triangle - expected 5, got %f", d)
	}

	d,err = Distance(pt(1,1,1), pt(1,1,1))
	if err != nil { t.Fatal(err) }
	if d != 0 {
		t.Errorf("identical points - expected 0, got %f", d)
	}

	if _,err := Distance(pt(math.NaN(),0,0), pt(0,0,0)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NaN input - expected ErrInvalidInput, got %v", err)
	}
}

func TestCumulativeDistances(t *testing.T) {
	positions := []Position{ pt(0,0,0), pt(3,4,0), pt(3,4,3) }

	dists,total,err := CumulativeDistances(positions)
	if err != nil { t.Fatal(err) }

	if len(dists) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(dists))
	}
	if !closeEnough(dists[0], 5) || !closeEnough(dists[1], 3) {
		t.Errorf("expected segments [5,3], got %v", dists)
	}
	if !closeEnough(total, 8) {
		t.Errorf("expected total 8, got %f", total)
	}

	// Degenerate inputs yield empty, zero results
	for _,positions := range [][]Position{ nil, {}, {pt(1,2,3)} } {
		dists,total,err := CumulativeDistances(positions)
		if err != nil { t.Fatal(err) }
		if len(dists) != 0 || total != 0 {
			t.Errorf("%d point(s) - expected empty result, got %v / %f",
				len(positions), dists, total)
		}
	}
}

type AreaTest struct {
	Positions []Position
	Expected  float64
	Descrip   string
}

func TestPolygonArea(t *testing.T) {
	tests := []AreaTest{
		{ []Position{ pt(0,0,0), pt(1,0,0), pt(1,1,0), pt(0,1,0) }, 1.0, "unit square" },
		{ []Position{ pt(0,0,0), pt(3,0,0), pt(0,4,0) },            6.0, "3-4-5 right triangle" },
		{ []Position{ pt(0,0,0), pt(0,2,0), pt(0,2,2), pt(0,0,2) }, 4.0, "square in the yz plane" },
		{ []Position{ pt(0,0,0), pt(1,0,0), pt(1,1,0), pt(0,1,0), pt(0,0,0) },
			1.0, "explicitly closed unit square" },
		{ []Position{ pt(0,0,0), pt(4,0,0), pt(4,4,0), pt(2,1,0), pt(0,4,0) },
			10.0, "concave arrowhead" },
		{ []Position{ pt(0,0,0), pt(4,0,0), pt(4,4,0), pt(3,1,0), pt(2,3,0), pt(1,1,0), pt(0,4,0) },
			9.0, "doubly concave comb" },
	}

	for _,test := range tests {
		area,err := PolygonArea(test.Positions)
		if err != nil { t.Fatal(err) }
		if !closeEnough(area, test.Expected) {
			t.Errorf("'%s' - expected %f, got %f", test.Descrip, test.Expected, area)
		}
	}

	if _,err := PolygonArea([]Position{ pt(0,0,0), pt(1,0,0) }); !errors.Is(err, ErrInsufficientPoints) {
		t.Errorf("2 points - expected ErrInsufficientPoints, got %v", err)
	}
	bad := []Position{ pt(0,0,0), pt(1,0,0), pt(math.Inf(1),1,0) }
	if _,err := PolygonArea(bad); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Inf vertex - expected ErrInvalidInput, got %v", err)
	}
}
