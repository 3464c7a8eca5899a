package persist

import(
	"bytes"
	"encoding/gob"
	"time"

	"github.com/terravue/measure"
)

// An indexed group blob is the thing we persist into datastore (or other
// blobstores): the full payload gob-encoded, plus a few indexed fields for
// querying.
type IndexedGroupBlob struct {
	Blob       []byte    `datastore:",noindex"`

	TrackId    string
	GroupId    string
	GroupIndex int
	TotalM     float64
	LastUpdate time.Time
}

func PayloadToBlob(trackId string, p measure.SubmitPayload) (*IndexedGroupBlob, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(p); err != nil {
		return nil,err
	}

	return &IndexedGroupBlob{
		Blob: buf.Bytes(),
		TrackId: trackId,
		GroupId: p.GroupId,
		GroupIndex: p.GroupIndex,
		TotalM: p.TotalM,
		LastUpdate: time.Now(),
	}, nil
}

func (blob *IndexedGroupBlob)ToPayload() (*measure.SubmitPayload, error) {
	buf := bytes.NewBuffer(blob.Blob)
	p := measure.SubmitPayload{}
	err := gob.NewDecoder(buf).Decode(&p)
	return &p, err
}
