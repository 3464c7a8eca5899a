package report

// go test -v github.com/terravue/measure/report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/terravue/measure"
)

func pt(x,y,z float64) measure.Position { return measure.Position{X:x, Y:y, Z:z} }

// A store with one completed triangle (sides 3,4,5) and one pending pair.
func testStore(t *testing.T) *measure.Store {
	s := measure.NewStore()

	id := s.StartGroup()
	for _,pos := range []measure.Position{ pt(0,0,0), pt(3,0,0), pt(3,4,0) } {
		if err := s.AppendPosition(id, pos); err != nil { t.Fatal(err) }
	}
	if err := s.MarkCompleted(id); err != nil { t.Fatal(err) }

	id2 := s.StartGroup()
	s.AppendPosition(id2, pt(100,0,0))
	s.AppendPosition(id2, pt(110,0,0))

	return s
}

func TestSegmentsReport(t *testing.T) {
	rep,err := Run("segments", testStore(t))
	if err != nil { t.Fatal(err) }

	// Completed triangle (2 segments) plus the pending pair (1 segment)
	if len(rep.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %v", rep.Rows)
	}
	if rep.Rows[0][1] != "a0" || rep.Rows[0][2] != "3.00" {
		t.Errorf("expected [_, a0, 3.00], got %v", rep.Rows[0])
	}
	if rep.Rows[1][1] != "b0" || rep.Rows[1][2] != "4.00" {
		t.Errorf("expected [_, b0, 4.00], got %v", rep.Rows[1])
	}
}

func TestTotalsReport(t *testing.T) {
	rep,err := Run("totals", testStore(t))
	if err != nil { t.Fatal(err) }

	// Only completed groups count
	if len(rep.Rows) != 1 {
		t.Fatalf("expected 1 row, got %v", rep.Rows)
	}
	row := rep.Rows[0]
	if row[1] != "0" || row[2] != "3" || row[3] != "7.00" {
		t.Errorf("expected [_, 0, 3, 7.00], got %v", row)
	}
}

func TestAreasReport(t *testing.T) {
	rep,err := Run("areas", testStore(t))
	if err != nil { t.Fatal(err) }

	if len(rep.Rows) != 1 {
		t.Fatalf("expected 1 row, got %v", rep.Rows)
	}
	// The 3-4-5 triangle encloses 6
	if rep.Rows[0][2] != "6.00" {
		t.Errorf("expected area 6.00, got %v", rep.Rows[0])
	}
}

func TestUnknownReport(t *testing.T) {
	if _,err := Run("nosuchreport", testStore(t)); err == nil {
		t.Errorf("unknown report should fail")
	}
}

func TestListReports(t *testing.T) {
	names := []string{}
	for _,entry := range ListReports() {
		names = append(names, entry.Name)
	}
	for _,want := range []string{"areas", "segments", "totals"} {
		found := false
		for _,n := range names {
			if n == want { found = true }
		}
		if !found {
			t.Errorf("expected report %q in %v", want, names)
		}
	}
}

func TestForGroup(t *testing.T) {
	s := testStore(t)
	recs := ForGroup(s.Groups()[0])

	if len(recs.Distances) != 2 || recs.Distances[0] != "3.00" || recs.Distances[1] != "4.00" {
		t.Errorf("expected [3.00 4.00], got %v", recs.Distances)
	}
	if recs.TotalDistance != "7.00" {
		t.Errorf("expected total 7.00, got %s", recs.TotalDistance)
	}
}

func TestOutputAsCSV(t *testing.T) {
	rep,err := Run("totals", testStore(t))
	if err != nil { t.Fatal(err) }

	buf := bytes.Buffer{}
	if err := rep.OutputAsCSV(&buf); err != nil { t.Fatal(err) }

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %q", buf.String())
	}
	if lines[0] != "group,index,points,total_m" {
		t.Errorf("unexpected header %q", lines[0])
	}
}
