package measure

import (
	"fmt"
)

// ChainState is the single mode enum for the editor. The original tools
// juggled independent isDragMode/isAddMode/isComplete flags with implicit
// mutual exclusion; one enum makes the illegal combinations unrepresentable.
type ChainState int
const(
	StateIdle ChainState = iota
	StateMeasuring           // a pending group is accumulating points
	StateCompleted           // last group finished; next click starts a new one
	StateAddMode             // a segment is selected; next click splits it
	StateDragMode            // a qualified drag is in progress
)

func (cs ChainState)String() string {
	switch cs {
	case StateIdle:      return "idle"
	case StateMeasuring: return "measuring"
	case StateCompleted: return "completed"
	case StateAddMode:   return "add-mode"
	case StateDragMode:  return "drag-mode"
	}
	return fmt.Sprintf("state(%d)", int(cs))
}

// groupHandles is the incremental id->handle bookkeeping for one group's
// primitives. points has one entry per position; lines[i] and labels[i]
// cover the segment positions[i]..positions[i+1].
type groupHandles struct {
	points     []Handle
	lines      []Handle
	labels     []Handle
	totalLabel Handle
}

type segmentRef struct {
	Gid   GroupId
	Index int // segment index: between points Index and Index+1
}

// Editor is the editable-chain state machine. All input events are dispatched
// into it synchronously on a single thread; it owns no goroutines.
type Editor struct {
	Store    *Store
	Renderer RenderSync

	// DistFunc is how segment distances are measured. Defaults to straight-line
	// Distance; hosts wanting terrain-clamped measurements plug in
	// terrain.ClampedDistance via a closure.
	DistFunc func(a, b Position) (float64, error)

	Confirm      ConfirmFunc
	Notify       NotifyFunc
	OnLogRecords LogRecordsFunc

	Submitter Submitter

	state     ChainState
	currentId GroupId                  // borrowed by id, never a cached struct ref
	handles   map[GroupId]*groupHandles
	selected  *segmentRef
	drag      *dragSession

	submitted  SubmitLog
	submitBusy bool
}

func NewEditor(s *Store, r RenderSync) *Editor {
	return &Editor{
		Store: s,
		Renderer: r,
		DistFunc: Distance,
		Confirm: func(string) bool { return true },
		Notify: func(string) {},
		handles: map[GroupId]*groupHandles{},
		submitted: SubmitLog{},
	}
}

func (ed *Editor)State() ChainState { return ed.state }
func (ed *Editor)CurrentGroupId() GroupId { return ed.currentId }

// {{{ ed.Click

// Click is the primary input: start a new chain, or extend the current one.
// In add mode it instead splits the selected segment. Near-duplicate clicks
// (within KNearPointThresholdM of any existing point) are silently ignored.
func (ed *Editor)Click(pos Position) error {
	if !pos.IsValid() { return ErrInvalidInput }

	switch ed.state {
	case StateAddMode:
		return ed.insertOnSelected(pos)
	case StateDragMode:
		return nil // clicks mid-drag are noise
	}

	// The near-dup check comes before group creation, so an ignored click
	// can't strand an empty pending group.
	if _,_,err := ed.Store.FindGroupNear(pos, KNearPointThresholdM); err == nil {
		return nil
	}

	if ed.state == StateIdle || ed.state == StateCompleted {
		ed.currentId = ed.Store.StartGroup()
		ed.handles[ed.currentId] = &groupHandles{}
		ed.state = StateMeasuring
	}
	return ed.placePoint(pos, MarkPending)
}

// }}}
// {{{ ed.Finish

// Finish is the secondary input (right-click): place a final point unless the
// cursor is already on one, close out the chain, and report totals. A nil pos
// means no final point. A no-op unless measuring with at least one cached
// point.
func (ed *Editor)Finish(pos *Position) error {
	if ed.state != StateMeasuring { return nil }
	g := ed.Store.Lookup(ed.currentId)
	if g == nil || len(g.Positions) == 0 { return nil }

	if pos != nil && pos.IsValid() {
		if _,_,err := ed.Store.FindGroupNear(*pos, KNearPointThresholdM); err != nil {
			if err := ed.placePoint(*pos, MarkPending); err != nil {
				return err
			}
		}
	}

	if len(g.Positions) < 2 {
		// A one-point chain isn't a measurement; dissolve it rather than
		// completing it.
		ed.dissolveGroup(g.Id)
		ed.state = StateIdle
		ed.emitLogRecords(nil)
		return nil
	}

	if err := ed.Store.MarkCompleted(g.Id); err != nil { return err }

	gh := ed.handles[g.Id]
	for _,h := range gh.points { ed.Renderer.SetMark(h, MarkCommitted) }
	for _,h := range gh.lines  { ed.Renderer.SetMark(h, MarkCommitted) }
	for _,h := range gh.labels { ed.Renderer.SetMark(h, MarkCommitted) }

	_,total := ed.groupDistances(g)
	gh.totalLabel = ed.Renderer.AddLabel(g.Positions[len(g.Positions)-1],
		fmt.Sprintf("Total: %sm", FormatDistance(total)), MarkCommitted)

	ed.state = StateCompleted
	ed.emitLogRecords(g)
	return nil
}

// }}}
// {{{ ed.placePoint

// placePoint appends pos to the current group and draws the point plus its
// connecting segment. The distance is computed before any mutation, so a
// failed DistFunc (e.g. terrain unavailable) leaves everything untouched.
func (ed *Editor)placePoint(pos Position, m MarkState) error {
	g := ed.Store.Lookup(ed.currentId)
	if g == nil { return ErrNotFound }

	var dist float64
	n := len(g.Positions)
	if n > 0 {
		d,err := ed.DistFunc(g.Positions[n-1], pos)
		if err != nil { return err }
		dist = d
	}

	if err := ed.Store.AppendPosition(g.Id, pos); err != nil { return err }

	gh := ed.handles[g.Id]
	gh.points = append(gh.points, ed.Renderer.AddPoint(pos, m))

	if n > 0 {
		prev := g.Positions[n-1]
		gh.lines = append(gh.lines, ed.Renderer.AddLine(prev, pos, m))
		lbl := LabelFor(g, n)
		gh.labels = append(gh.labels,
			ed.Renderer.AddLabel(prev.MidpointTo(pos), lbl.Text(dist), m))
	}
	return nil
}

// }}}
// {{{ ed.relabelSegments

// relabelSegments rewrites every segment label of the group from segment
// index `from` onwards, so letters stay contiguous after a structural edit.
// Positions move too (labels sit on midpoints).
func (ed *Editor)relabelSegments(g *Group, from int) {
	gh := ed.handles[g.Id]
	dists,_ := ed.groupDistances(g)
	if from < 0 { from = 0 }

	for i:=from; i<len(gh.labels) && i<len(dists); i++ {
		lbl := LabelFor(g, i+1)
		ed.Renderer.UpdateLabelText(gh.labels[i], lbl.Text(dists[i]))
		ed.Renderer.UpdateLabelPos(gh.labels[i],
			g.Positions[i].MidpointTo(g.Positions[i+1]))
	}
}

// }}}
// {{{ ed.groupDistances

// groupDistances is CumulativeDistances via the editor's DistFunc, so labels
// and totals agree with however segments were measured. A failing segment
// contributes zero rather than aborting the whole readout.
func (ed *Editor)groupDistances(g *Group) ([]float64, float64) {
	dists := []float64{}
	total := 0.0
	for i:=0; i<len(g.Positions)-1; i++ {
		d,err := ed.DistFunc(g.Positions[i], g.Positions[i+1])
		if err != nil { d = 0 }
		dists = append(dists, d)
		total += d
	}
	return dists, total
}

// }}}
// {{{ ed.refreshTotal

func (ed *Editor)refreshTotal(g *Group) {
	gh := ed.handles[g.Id]
	if gh.totalLabel == NoHandle { return }
	_,total := ed.groupDistances(g)
	ed.Renderer.UpdateLabelText(gh.totalLabel,
		fmt.Sprintf("Total: %sm", FormatDistance(total)))
	ed.Renderer.UpdateLabelPos(gh.totalLabel, g.Positions[len(g.Positions)-1])
}

// }}}
// {{{ ed.dissolveGroup

// dissolveGroup erases a group and everything it drew.
func (ed *Editor)dissolveGroup(id GroupId) {
	if gh,exists := ed.handles[id]; exists {
		for _,h := range gh.points { ed.Renderer.RemovePoint(h) }
		for _,h := range gh.lines  { ed.Renderer.RemoveLine(h) }
		for _,h := range gh.labels { ed.Renderer.RemoveLabel(h) }
		if gh.totalLabel != NoHandle { ed.Renderer.RemoveLabel(gh.totalLabel) }
		delete(ed.handles, id)
	}
	ed.Store.DeleteGroup(id)

	if ed.currentId == id {
		ed.currentId = ""
	}
}

// }}}
// {{{ ed.Reset

// Reset erases every group and returns to idle.
func (ed *Editor)Reset() {
	for _,g := range append([]*Group{}, ed.Store.Groups()...) {
		ed.dissolveGroup(g.Id)
	}
	ed.selected = nil
	ed.drag = nil
	ed.state = StateIdle
}

// }}}
// {{{ ed.emitLogRecords

// emitLogRecords surfaces the group's measured values, display-formatted.
// A nil group reports the empty/zero record (dissolved group).
func (ed *Editor)emitLogRecords(g *Group) {
	if ed.OnLogRecords == nil { return }

	recs := LogRecords{ Distances: []string{}, TotalDistance: FormatDistance(0) }
	if g != nil {
		dists,total := ed.groupDistances(g)
		for _,d := range dists {
			recs.Distances = append(recs.Distances, FormatDistance(d))
		}
		recs.TotalDistance = FormatDistance(total)
	}
	ed.OnLogRecords(recs)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
