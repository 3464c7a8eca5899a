// Package render provides an in-memory RenderSync implementation. It stands
// in for a host engine adapter in tests and CLI replays, and doubles as the
// reference for the incremental id->handle bookkeeping the core expects
// (instead of the scene-scanning the original tools did).
package render

import (
	"math"

	"github.com/terravue/measure"
)

type PickKind int
const(
	PickNone PickKind = iota
	PickPoint
	PickLine
	PickLabel
)

type Point struct {
	Pos  measure.Position
	Mark measure.MarkState
}

type Line struct {
	A, B measure.Position
	Mark measure.MarkState
}

type Label struct {
	Pos  measure.Position
	Text string
	Mark measure.MarkState
}

type Recorder struct {
	next   measure.Handle
	Points map[measure.Handle]*Point
	Lines  map[measure.Handle]*Line
	Labels map[measure.Handle]*Label
}

func NewRecorder() *Recorder {
	return &Recorder{
		Points: map[measure.Handle]*Point{},
		Lines:  map[measure.Handle]*Line{},
		Labels: map[measure.Handle]*Label{},
	}
}

func (r *Recorder)alloc() measure.Handle {
	r.next++
	return r.next
}

func (r *Recorder)AddPoint(pos measure.Position, m measure.MarkState) measure.Handle {
	h := r.alloc()
	r.Points[h] = &Point{Pos: pos, Mark: m}
	return h
}
func (r *Recorder)RemovePoint(h measure.Handle) { delete(r.Points, h) }

func (r *Recorder)AddLine(a, b measure.Position, m measure.MarkState) measure.Handle {
	h := r.alloc()
	r.Lines[h] = &Line{A: a, B: b, Mark: m}
	return h
}
func (r *Recorder)RemoveLine(h measure.Handle) { delete(r.Lines, h) }

func (r *Recorder)AddLabel(pos measure.Position, text string, m measure.MarkState) measure.Handle {
	h := r.alloc()
	r.Labels[h] = &Label{Pos: pos, Text: text, Mark: m}
	return h
}
func (r *Recorder)UpdateLabelText(h measure.Handle, text string) {
	if l,exists := r.Labels[h]; exists { l.Text = text }
}
func (r *Recorder)UpdateLabelPos(h measure.Handle, pos measure.Position) {
	if l,exists := r.Labels[h]; exists { l.Pos = pos }
}
func (r *Recorder)RemoveLabel(h measure.Handle) { delete(r.Labels, h) }

func (r *Recorder)SetMark(h measure.Handle, m measure.MarkState) {
	if p,exists := r.Points[h]; exists { p.Mark = m; return }
	if l,exists := r.Lines[h];  exists { l.Mark = m; return }
	if l,exists := r.Labels[h]; exists { l.Mark = m }
}

// PickAt translates a world position into the primitive under it, points
// first (they're smaller targets drawn on top), then lines, then labels.
// This is the findPickedPrimitiveAt contract from the host engine boundary.
func (r *Recorder)PickAt(pos measure.Position, radiusM float64) (PickKind, measure.Handle) {
	for h,p := range r.Points {
		if p.Pos.NearTo(pos, radiusM) { return PickPoint, h }
	}
	for h,l := range r.Lines {
		if distToSegment(pos, l.A, l.B) <= radiusM { return PickLine, h }
	}
	for h,l := range r.Labels {
		if l.Pos.NearTo(pos, radiusM) { return PickLabel, h }
	}
	return PickNone, measure.NoHandle
}

func distToSegment(p, a, b measure.Position) float64 {
	abx,aby,abz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	apx,apy,apz := p.X-a.X, p.Y-a.Y, p.Z-a.Z

	den := abx*abx + aby*aby + abz*abz
	t := 0.0
	if den > 0 {
		t = (apx*abx + apy*aby + apz*abz) / den
	}
	if t < 0 { t = 0 }
	if t > 1 { t = 1 }

	cx,cy,cz := a.X+t*abx - p.X, a.Y+t*aby - p.Y, a.Z+t*abz - p.Z
	return math.Sqrt(cx*cx + cy*cy + cz*cz)
}
