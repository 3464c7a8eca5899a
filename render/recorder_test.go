package render

// go test -v github.com/terravue/measure/render

import (
	"testing"

	"github.com/terravue/measure"
)

func pt(x,y,z float64) measure.Position { return measure.Position{X:x, Y:y, Z:z} }

func TestRecorderPrimitives(t *testing.T) {
	r := NewRecorder()

	hp := r.AddPoint(pt(0,0,0), measure.MarkPending)
	hl := r.AddLine(pt(0,0,0), pt(10,0,0), measure.MarkPending)
	hb := r.AddLabel(pt(5,0,0), "a0: 10.00m", measure.MarkPending)

	if len(r.Points) != 1 || len(r.Lines) != 1 || len(r.Labels) != 1 {
		t.Fatalf("expected 1/1/1, got %d/%d/%d", len(r.Points), len(r.Lines), len(r.Labels))
	}

	r.SetMark(hl, measure.MarkMoving)
	if r.Lines[hl].Mark != measure.MarkMoving {
		t.Errorf("SetMark on a line didn't take")
	}

	r.UpdateLabelText(hb, "a0: 12.00m")
	r.UpdateLabelPos(hb, pt(6,0,0))
	if r.Labels[hb].Text != "a0: 12.00m" || !r.Labels[hb].Pos.Equal(pt(6,0,0)) {
		t.Errorf("label update didn't take: %+v", r.Labels[hb])
	}

	r.RemovePoint(hp)
	r.RemoveLine(hl)
	r.RemoveLabel(hb)
	if len(r.Points)+len(r.Lines)+len(r.Labels) != 0 {
		t.Errorf("removal left primitives behind")
	}

	// Handles are never reused
	if h := r.AddPoint(pt(1,1,1), measure.MarkPending); h == hp || h == hl || h == hb {
		t.Errorf("handle %d reused", h)
	}
}

func TestRecorderPickAt(t *testing.T) {
	r := NewRecorder()

	hp := r.AddPoint(pt(0,0,0), measure.MarkCommitted)
	hl := r.AddLine(pt(0,0,0), pt(10,0,0), measure.MarkCommitted)
	hb := r.AddLabel(pt(5,3,0), "a0", measure.MarkCommitted)

	// Points win over the line that starts at them
	if kind,h := r.PickAt(pt(0.1,0,0), 0.5); kind != PickPoint || h != hp {
		t.Errorf("expected the point, got %v/%d", kind, h)
	}

	// Mid-segment, only the line is near
	if kind,h := r.PickAt(pt(5,0.2,0), 0.5); kind != PickLine || h != hl {
		t.Errorf("expected the line, got %v/%d", kind, h)
	}

	if kind,h := r.PickAt(pt(5,3,0), 0.5); kind != PickLabel || h != hb {
		t.Errorf("expected the label, got %v/%d", kind, h)
	}

	if kind,_ := r.PickAt(pt(50,50,50), 0.5); kind != PickNone {
		t.Errorf("expected no pick, got %v", kind)
	}

	// Beyond the segment's extent, the distance is to its endpoint
	if kind,_ := r.PickAt(pt(12,0,0), 0.5); kind != PickNone {
		t.Errorf("pick past the line's end should miss, got %v", kind)
	}
}
