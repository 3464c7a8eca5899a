// Package archive publishes submitted measurement groups for offline
// analysis: a JSON-lines file in Cloud Storage, plus a BigQuery load job to
// pull that file into a table.
package archive

import(
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/terravue/measure"
)

// GroupForBigQuery is a denormalized representation of a submitted group,
// designed for import into BigQuery.
type GroupForBigQuery struct {
	TrackId    string
	GroupId    string
	GroupIndex int

	NumPoints  int
	TotalM     float64

	Point      []PointForBigQuery // Not 'Points', so the SQL reads more naturally
	Submitted  time.Time
	Date       string // Same format as BQ's DATE() function
}

type PointForBigQuery struct {
	Lat, Long float64
	HeightM   float64
}

func ForBigQuery(trackId string, p *measure.SubmitPayload) *GroupForBigQuery {
	now := time.Now().UTC()
	out := &GroupForBigQuery{
		TrackId: trackId,
		GroupId: p.GroupId,
		GroupIndex: p.GroupIndex,
		NumPoints: len(p.Points),
		TotalM: p.TotalM,
		Point: []PointForBigQuery{},
		Submitted: now,
		Date: now.Format("2006-01-02"),
	}
	for _,pt := range p.Points {
		out.Point = append(out.Point, PointForBigQuery{pt.Lat, pt.Long, pt.HeightM})
	}
	return out
}

// {{{ Publisher{}

type Publisher struct {
	Project   string
	Dataset   string
	TableName string
	Bucket    string
	Folder    string

	sc *storage.Client
	bq *bigquery.Client
}

func NewPublisher(ctx context.Context, project string, opts ...option.ClientOption) (*Publisher, error) {
	sc,err := storage.NewClient(ctx, opts...)
	if err != nil { return nil, fmt.Errorf("storage client: %v", err) }

	bq,err := bigquery.NewClient(ctx, project, opts...)
	if err != nil { return nil, fmt.Errorf("bigquery client: %v", err) }

	return &Publisher{
		Project: project,
		Dataset: "public",
		TableName: "measurements",
		Folder: "bigquery-measurements",
		sc: sc,
		bq: bq,
	}, nil
}

func (pub *Publisher)Close() {
	pub.sc.Close()
	pub.bq.Close()
}

// }}}
// {{{ pub.WriteGroupsGCSFile

// WriteGroupsGCSFile writes the groups as JSON lines into gs://bucket/folder/
// filename. Returns the number of records written, which is zero if the file
// already exists (reruns must not generate dupes in the aggregate output).
func (pub *Publisher)WriteGroupsGCSFile(ctx context.Context, filename string, groups []*GroupForBigQuery) (int, error) {
	obj := pub.sc.Bucket(pub.Bucket).Object(pub.Folder + "/" + filename)

	if _,err := obj.Attrs(ctx); err == nil {
		return 0, nil
	} else if err != storage.ErrObjectNotExist {
		return 0, err
	}

	w := obj.NewWriter(ctx)
	w.ContentType = "application/json"
	encoder := json.NewEncoder(w)

	n := 0
	for _,g := range groups {
		if err := encoder.Encode(g); err != nil {
			w.Close()
			return 0, err
		}
		n++
	}
	if err := w.Close(); err != nil {
		return 0, err
	}

	return n, nil
}

// }}}
// {{{ pub.SubmitLoadJob

// SubmitLoadJob asks BigQuery to load a previously written GCS file into the
// measurements table.
// https://cloud.google.com/bigquery/docs/loading-data-cloud-storage
func (pub *Publisher)SubmitLoadJob(ctx context.Context, filename string) error {
	gcsSrc := bigquery.NewGCSReference(fmt.Sprintf("gs://%s/%s/%s",
		pub.Bucket, pub.Folder, filename))
	gcsSrc.SourceFormat = bigquery.JSON
	gcsSrc.AllowJaggedRows = true

	destTable := pub.bq.Dataset(pub.Dataset).Table(pub.TableName)

	loader := destTable.LoaderFrom(gcsSrc)
	loader.CreateDisposition = bigquery.CreateNever
	job,err := loader.Run(ctx)
	if err != nil {
		return fmt.Errorf("submission of load job: %v", err)
	}

	status,err := job.Wait(ctx)
	if err != nil {
		return fmt.Errorf("failure determining status: %v", err)
	}
	if err := status.Err(); err != nil {
		detailedErrStr := ""
		for i,innerErr := range status.Errors {
			detailedErrStr += fmt.Sprintf(" [%2d] %v\n", i, innerErr)
		}
		return fmt.Errorf("load job error: %v\n--\n%s", err, detailedErrStr)
	}

	return nil
}

// }}}
// {{{ pub.PublishTrack

// PublishTrack writes one GCS file for a track's submitted groups and then
// loads it into BigQuery. Skips the load when nothing new was written.
func (pub *Publisher)PublishTrack(ctx context.Context, trackId string, payloads []*measure.SubmitPayload) (int, error) {
	groups := []*GroupForBigQuery{}
	for _,p := range payloads {
		groups = append(groups, ForBigQuery(trackId, p))
	}

	filename := fmt.Sprintf("measurements-%s-%s.json",
		trackId, time.Now().UTC().Format("2006.01.02"))

	n,err := pub.WriteGroupsGCSFile(ctx, filename, groups)
	if err != nil { return 0, err }
	if n == 0 { return 0, nil }

	if err := pub.SubmitLoadJob(ctx, filename); err != nil {
		return n, err
	}
	return n, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
