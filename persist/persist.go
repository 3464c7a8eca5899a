// Package persist stores submitted measurement groups in a datastore-shaped
// backend, behind the DatastoreProvider abstraction so the same code runs
// against Cloud Datastore or an in-memory provider.
package persist

import(
	"fmt"
	"time"

	"golang.org/x/net/context"

	"github.com/skypies/util/gcp/ds"
)

const kGroupKind = "MeasurementGroup"

type MeasureDB struct {
	ctx        context.Context
	StartTime  time.Time
	Backend    ds.DatastoreProvider
}

func New(ctx context.Context, p ds.DatastoreProvider) MeasureDB {
	return MeasureDB{
		ctx: ctx,
		StartTime: time.Now(),
		Backend: p,
	}
}

func (db *MeasureDB)Ctx() context.Context { return db.ctx }

func (db *MeasureDB)Debugf(format string, args ...interface{}) {
	db.Backend.Debugf(db.Ctx(), format, args...)
}
func (db *MeasureDB)Infof(format string, args ...interface{}) {
	db.Backend.Infof(db.Ctx(), format, args...)
}
func (db *MeasureDB)Errorf(format string, args ...interface{}) {
	db.Backend.Errorf(db.Ctx(), format, args...)
}
func (db *MeasureDB)Warningf(format string, args ...interface{}) {
	db.Backend.Warningf(db.Ctx(), format, args...)
}

// Perff is a debugf with a 'step' arg, and adds its own latency timings
func (db *MeasureDB)Perff(step string, format string, args ...interface{}) {
	payload := fmt.Sprintf(format, args...)
	db.Debugf("[%s] %9.6f %s", step, time.Since(db.StartTime).Seconds(), payload)
}

type MQuery ds.Query // Our own type, so we can hang a fluent API off it

func NewGroupQuery() *MQuery { return (*MQuery)(ds.NewQuery(kGroupKind)) }

func (mq *MQuery)Order(str string) *MQuery { return (*MQuery)((*ds.Query)(mq).Order(str)) }
func (mq *MQuery)Limit(val int) *MQuery { return (*MQuery)((*ds.Query)(mq).Limit(val)) }
func (mq *MQuery)Filter(str string, val interface{}) *MQuery {
	return (*MQuery)((*ds.Query)(mq).Filter(str,val))
}

func (mq *MQuery)ByTrackId(trackId string) *MQuery {
	return mq.Filter("TrackId = ", trackId)
}
