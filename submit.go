package measure

import (
	"context"
	"fmt"
)

// A Submitter pushes a completed measurement to a persistence backend. The
// call may block; the editor's single-flight guard rejects a second
// submission attempt while one is outstanding rather than queueing it.
type Submitter interface {
	Submit(ctx context.Context, trackId string, payload SubmitPayload) error
}

// SubmitPayload is the serialized form of a group: lon/lat/height points plus
// the computed total length.
type SubmitPayload struct {
	GroupId    string
	GroupIndex int
	Points     []SubmitPoint
	TotalM     float64
}

type SubmitPoint struct {
	Lat, Long float64
	HeightM   float64
}

func (ed *Editor)BuildPayload(g *Group) SubmitPayload {
	_,total := ed.groupDistances(g)
	p := SubmitPayload{
		GroupId: string(g.Id),
		GroupIndex: g.GroupIndex,
		Points: []SubmitPoint{},
		TotalM: total,
	}
	for _,pos := range g.Positions {
		ll,h := pos.Latlong()
		p.Points = append(p.Points, SubmitPoint{Lat: ll.Lat, Long: ll.Long, HeightM: h})
	}
	return p
}

// {{{ ed.SubmitGroup

// SubmitGroup sends a completed group to the configured Submitter.
// Re-submitting an unchanged group fails with ErrNothingToSubmit; a
// submission while another is in flight fails with ErrSubmissionInFlight.
// Both are surfaced to the user via Notify, and neither mutates anything.
func (ed *Editor)SubmitGroup(ctx context.Context, trackId string, id GroupId) error {
	if ed.submitBusy {
		ed.Notify("A submission is already in progress")
		return ErrSubmissionInFlight
	}

	g := ed.Store.Lookup(id)
	if g == nil { return fmt.Errorf("submit %s: %w", id, ErrNotFound) }
	if g.Status != StatusCompleted { return ErrNotPending }

	fp := FingerprintPositions(g.Positions)
	if ed.submitted.Exists(string(id), fp) {
		ed.Notify("Nothing new to submit")
		return ErrNothingToSubmit
	}

	if ed.Submitter == nil {
		return fmt.Errorf("submit %s: no submitter configured", id)
	}

	ed.submitBusy = true
	err := ed.Submitter.Submit(ctx, trackId, ed.BuildPayload(g))
	ed.submitBusy = false

	if err != nil {
		return fmt.Errorf("submit %s: %v", id, err)
	}
	ed.submitted.AddIfNew(string(id), fp)
	return nil
}

// }}}
