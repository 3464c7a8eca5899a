package measure

import (
	"fmt"
)

// Structural edits to completed chains: point removal (with neighbour
// reconnection) and mid-segment insertion (add mode).

// {{{ ed.RemovePoint

// RemovePoint deletes the point at pos (exact match) from whichever group
// owns it, after user confirmation. Interior removals get one reconnecting
// segment between the former neighbours; downstream labels are rewritten so
// letters stay contiguous. A group left with one point is dissolved outright.
func (ed *Editor)RemovePoint(pos Position) error {
	if ed.drag != nil { return nil } // not while dragging

	gid,idx,err := ed.Store.FindGroupContaining(pos)
	if err != nil { return fmt.Errorf("RemovePoint %s: %w", pos, ErrNotFound) }

	if !ed.Confirm("Remove this point?") { return nil }

	g := ed.Store.Lookup(gid)
	n := len(g.Positions)

	if n-1 <= 1 {
		// Removing this point leaves at most a lone point; the chain is no
		// longer a measurement, so it goes entirely.
		wasCurrent := gid == ed.currentId
		ed.dissolveGroup(gid)
		if wasCurrent && ed.state == StateMeasuring { ed.state = StateIdle }
		ed.emitLogRecords(nil)
		return nil
	}

	gh := ed.handles[gid]
	interior := idx > 0 && idx < n-1

	if _,err := ed.Store.RemovePositionAt(gid, idx); err != nil { return err }

	ed.Renderer.RemovePoint(gh.points[idx])
	gh.points = removeHandleAt(gh.points, idx)

	switch {
	case interior:
		// Both segments around the point go; one reconnecting segment comes
		// back, labeled for the next remaining point.
		ed.Renderer.RemoveLine(gh.lines[idx])
		ed.Renderer.RemoveLine(gh.lines[idx-1])
		ed.Renderer.RemoveLabel(gh.labels[idx])
		ed.Renderer.RemoveLabel(gh.labels[idx-1])
		gh.lines = removeHandleAt(gh.lines, idx)
		gh.lines = removeHandleAt(gh.lines, idx-1)
		gh.labels = removeHandleAt(gh.labels, idx)
		gh.labels = removeHandleAt(gh.labels, idx-1)

		mark := MarkCommitted
		if g.Status == StatusPending { mark = MarkPending }

		a,b := g.Positions[idx-1], g.Positions[idx]
		d,derr := ed.DistFunc(a, b)
		if derr != nil { d = 0 }
		lbl := LabelFor(g, idx)
		gh.lines = insertHandleAt(gh.lines, idx-1, ed.Renderer.AddLine(a, b, mark))
		gh.labels = insertHandleAt(gh.labels, idx-1,
			ed.Renderer.AddLabel(a.MidpointTo(b), lbl.Text(d), mark))

	case idx == 0:
		ed.Renderer.RemoveLine(gh.lines[0])
		ed.Renderer.RemoveLabel(gh.labels[0])
		gh.lines = removeHandleAt(gh.lines, 0)
		gh.labels = removeHandleAt(gh.labels, 0)

	default: // last point
		ed.Renderer.RemoveLine(gh.lines[n-2])
		ed.Renderer.RemoveLabel(gh.labels[n-2])
		gh.lines = removeHandleAt(gh.lines, n-2)
		gh.labels = removeHandleAt(gh.labels, n-2)
	}

	from := idx-1
	if from < 0 { from = 0 }
	ed.relabelSegments(g, from)
	ed.refreshTotal(g)
	ed.emitLogRecords(g)
	return nil
}

// }}}
// {{{ ed.SelectSegment

// SelectSegment enters add mode for the segment drawn by line handle h: the
// segment highlights, and the next Click splits it at the clicked position.
// Only completed chains can be edited this way.
func (ed *Editor)SelectSegment(h Handle) error {
	if ed.state != StateIdle && ed.state != StateCompleted { return nil }

	for gid,gh := range ed.handles {
		for i,lh := range gh.lines {
			if lh != h { continue }
			if g := ed.Store.Lookup(gid); g == nil || g.Status != StatusCompleted {
				return nil
			}
			ed.selected = &segmentRef{Gid: gid, Index: i}
			ed.Renderer.SetMark(h, MarkMoving)
			ed.state = StateAddMode
			return nil
		}
	}
	return fmt.Errorf("SelectSegment %d: %w", h, ErrNotFound)
}

// CancelSelection leaves add mode without editing anything.
func (ed *Editor)CancelSelection() {
	if ed.state != StateAddMode { return }
	if sel := ed.selected; sel != nil {
		if gh,exists := ed.handles[sel.Gid]; exists && sel.Index < len(gh.lines) {
			ed.Renderer.SetMark(gh.lines[sel.Index], MarkCommitted)
		}
	}
	ed.selected = nil
	ed.state = StateCompleted
}

// }}}
// {{{ ed.insertOnSelected

// insertOnSelected splits the selected segment (A,B) at pos into (A,pos) and
// (pos,B), recomputes the two distances plus the group total, rewrites
// downstream labels, and leaves add mode.
func (ed *Editor)insertOnSelected(pos Position) error {
	sel := ed.selected
	if sel == nil {
		ed.state = StateCompleted
		return ErrNotFound
	}
	g := ed.Store.Lookup(sel.Gid)
	if g == nil {
		ed.CancelSelection()
		return ErrNotFound
	}

	a,b := g.Positions[sel.Index], g.Positions[sel.Index+1]
	d1,err := ed.DistFunc(a, pos)
	if err != nil { return err }
	d2,err := ed.DistFunc(pos, b)
	if err != nil { return err }

	if err := ed.Store.InsertPositionAfter(sel.Gid, sel.Index, pos); err != nil {
		return err
	}

	gh := ed.handles[sel.Gid]
	ed.Renderer.RemoveLine(gh.lines[sel.Index])
	ed.Renderer.RemoveLabel(gh.labels[sel.Index])
	gh.lines = removeHandleAt(gh.lines, sel.Index)
	gh.labels = removeHandleAt(gh.labels, sel.Index)

	gh.points = insertHandleAt(gh.points, sel.Index+1,
		ed.Renderer.AddPoint(pos, MarkCommitted))

	l1 := LabelFor(g, sel.Index+1)
	l2 := LabelFor(g, sel.Index+2)
	gh.lines = insertHandleAt(gh.lines, sel.Index,
		ed.Renderer.AddLine(a, pos, MarkCommitted))
	gh.lines = insertHandleAt(gh.lines, sel.Index+1,
		ed.Renderer.AddLine(pos, b, MarkCommitted))
	gh.labels = insertHandleAt(gh.labels, sel.Index,
		ed.Renderer.AddLabel(a.MidpointTo(pos), l1.Text(d1), MarkCommitted))
	gh.labels = insertHandleAt(gh.labels, sel.Index+1,
		ed.Renderer.AddLabel(pos.MidpointTo(b), l2.Text(d2), MarkCommitted))

	ed.relabelSegments(g, sel.Index)
	ed.refreshTotal(g)

	ed.selected = nil
	ed.state = StateCompleted
	ed.emitLogRecords(g)
	return nil
}

// }}}

func removeHandleAt(hs []Handle, i int) []Handle {
	return append(hs[:i], hs[i+1:]...)
}

func insertHandleAt(hs []Handle, i int, h Handle) []Handle {
	hs = append(hs, NoHandle)
	copy(hs[i+1:], hs[i:])
	hs[i] = h
	return hs
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
