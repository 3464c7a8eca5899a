package measure

import (
	"math"
)

var(
	// How far the cursor must travel, in screen units, before a drag-start is
	// treated as a real drag rather than a sloppy click.
	KDragThresholdPx = 5.0
)

// ScreenPos is a 2D cursor position in screen space, used only for the drag
// qualification threshold.
type ScreenPos struct {
	U, V float64
}

func (sp ScreenPos)DistTo(other ScreenPos) float64 {
	du,dv := sp.U-other.U, sp.V-other.V
	return math.Sqrt(du*du + dv*dv)
}

// dragSession is the transient state between drag-start and drag-end. The
// store is not touched until the drag ends; everything in between is
// provisional rendering only.
type dragSession struct {
	Gid         GroupId
	PointIndex  int
	Original    Position
	startScreen ScreenPos
	qualified   bool
	provisional Position
	prevState   ChainState
}

// {{{ ed.DragStart

// DragStart arms a drag on the point at pos (exact match). Nothing happens
// visually or structurally until the cursor moves past the qualification
// threshold.
func (ed *Editor)DragStart(pos Position, screen ScreenPos) error {
	if ed.state == StateDragMode || ed.state == StateAddMode { return nil }

	gid,idx,err := ed.Store.FindGroupContaining(pos)
	if err != nil { return ErrNotFound }

	ed.drag = &dragSession{
		Gid: gid,
		PointIndex: idx,
		Original: pos,
		startScreen: screen,
		provisional: pos,
		prevState: ed.state,
	}
	return nil
}

// }}}
// {{{ ed.DragMove

// DragMove is a per-tick cursor update. ground is the terrain-resolved world
// position under the cursor, or nil when the engine couldn't resolve one; an
// unresolved tick is skipped entirely (no partial update).
func (ed *Editor)DragMove(ground *Position, screen ScreenPos) error {
	ds := ed.drag
	if ds == nil { return nil }
	if ground == nil || !ground.IsValid() { return nil }

	if !ds.qualified {
		if screen.DistTo(ds.startScreen) < KDragThresholdPx { return nil }
		ds.qualified = true
		ed.state = StateDragMode
	}

	ds.provisional = *ground
	ed.redrawDragged(ds, *ground, MarkMoving)
	return nil
}

// }}}
// {{{ ed.DragEnd

// DragEnd commits the relocation. An unqualified drag (never crossed the
// threshold) is a no-op; a qualified drag ending with no resolvable ground
// position, or landing exactly on a neighbouring point, is cancelled,
// restoring the original point. Only the one or two adjacent segments are
// recomputed.
func (ed *Editor)DragEnd(ground *Position) error {
	ds := ed.drag
	if ds == nil { return nil }
	ed.drag = nil

	if !ds.qualified { return nil }

	final := ds.Original // cancellation restores this
	commit := false
	if ground != nil && ground.IsValid() {
		final = *ground
		commit = true
	}

	ed.state = ds.prevState

	if commit {
		if err := ed.Store.ReplacePositionAt(ds.Gid, ds.PointIndex, final); err != nil {
			// Landed exactly on a neighbour, or the group vanished mid-drag;
			// either way the edit cancels and the original point comes back.
			final = ds.Original
			commit = false
		}
	}

	ed.redrawDragged(ds, final, MarkCommitted)

	g := ed.Store.Lookup(ds.Gid)
	if g == nil { return nil }

	// Only the adjacent segment labels change; relabel just those.
	from := ds.PointIndex-1
	if from < 0 { from = 0 }
	ed.relabelSegments(g, from) // runs to the end, but letters beyond idx are already right
	ed.refreshTotal(g)
	if commit {
		ed.emitLogRecords(g)
	}
	return nil
}

// }}}
// {{{ ed.redrawDragged

// redrawDragged re-renders the dragged point and its adjacent segments at a
// given position. Remove-and-re-add, so the mark state is carried explicitly.
func (ed *Editor)redrawDragged(ds *dragSession, at Position, m MarkState) {
	g := ed.Store.Lookup(ds.Gid)
	gh := ed.handles[ds.Gid]
	if g == nil || gh == nil { return }

	idx := ds.PointIndex
	if idx >= len(gh.points) { return }

	ed.Renderer.RemovePoint(gh.points[idx])
	gh.points[idx] = ed.Renderer.AddPoint(at, m)

	if idx > 0 {
		prev := g.Positions[idx-1]
		ed.Renderer.RemoveLine(gh.lines[idx-1])
		gh.lines[idx-1] = ed.Renderer.AddLine(prev, at, m)
	}
	if idx < len(g.Positions)-1 {
		next := g.Positions[idx+1]
		ed.Renderer.RemoveLine(gh.lines[idx])
		gh.lines[idx] = ed.Renderer.AddLine(at, next, m)
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
