package persist

import(
	"fmt"

	"golang.org/x/net/context"

	ds "github.com/skypies/util/gcp/ds"

	"github.com/terravue/measure"
)

// {{{ db.Submit

// Submit implements measure.Submitter: persist a group's payload under its
// track. Keyed by (trackId, groupId), so re-submitting an edited group
// overwrites its previous record instead of duplicating it.
func (db *MeasureDB)Submit(ctx context.Context, trackId string, p measure.SubmitPayload) error {
	blob,err := PayloadToBlob(trackId, p)
	if err != nil { return fmt.Errorf("Submit: %v", err) }

	keyer := db.groupKey(ctx, trackId, p.GroupId)
	if _,err := db.Backend.Put(ctx, keyer, blob); err != nil {
		return fmt.Errorf("Submit: %v", err)
	}

	db.Infof("persisted group %s (%d points, %.2fm) under track %s",
		p.GroupId, len(p.Points), p.TotalM, trackId)
	return nil
}

// }}}
// {{{ db.LookupGroup

func (db *MeasureDB)LookupGroup(trackId, groupId string) (*measure.SubmitPayload, error) {
	blob := IndexedGroupBlob{}

	keyer := db.groupKey(db.Ctx(), trackId, groupId)
	if err := db.Backend.Get(db.Ctx(), keyer, &blob); err != nil {
		return nil, fmt.Errorf("LookupGroup: %v", err)
	}
	return blob.ToPayload()
}

// }}}
// {{{ db.LookupTrack

// LookupTrack returns every submitted group for a track, most recent first.
func (db *MeasureDB)LookupTrack(trackId string) ([]*measure.SubmitPayload, error) {
	mq := NewGroupQuery().ByTrackId(trackId).Order("-LastUpdate")

	blobs := []IndexedGroupBlob{}
	if _,err := db.Backend.GetAll(db.Ctx(), (*ds.Query)(mq), &blobs); err != nil {
		return nil, fmt.Errorf("LookupTrack: %v", err)
	}

	out := []*measure.SubmitPayload{}
	for _,blob := range blobs {
		p,err := blob.ToPayload()
		if err != nil { return nil, fmt.Errorf("LookupTrack: %v", err) }
		out = append(out, p)
	}
	return out, nil
}

// }}}
// {{{ db.DeleteGroup

func (db *MeasureDB)DeleteGroup(trackId, groupId string) error {
	return db.Backend.Delete(db.Ctx(), db.groupKey(db.Ctx(), trackId, groupId))
}

// }}}
// {{{ db.groupKey

func (db *MeasureDB)groupKey(ctx context.Context, trackId, groupId string) ds.Keyer {
	// Track as ancestor, so per-track queries are strongly consistent
	// (read-your-writes; a submit followed by a track listing must see it).
	rootKey := db.Backend.NewNameKey(ctx, kGroupKind, "t:"+trackId, nil)
	return db.Backend.NewNameKey(ctx, kGroupKind, groupId, rootKey)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
