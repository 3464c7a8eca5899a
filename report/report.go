// Package report turns a store of measurement groups into tabular readouts:
// the data-log records the UI shows, plus named reports with CSV output.
package report

import(
	"fmt"
	"sort"

	"github.com/terravue/measure"
)

type Report struct {
	Name    string
	Headers []string
	Rows    [][]string
}

type ReportFunc func(s *measure.Store) ([][]string, error)

// A simple registry of all known reports.
type ReportEntry struct {
	ReportFunc
	Name, Description string
	Headers           []string
}

var reportRegistry = map[string]ReportEntry{}

func HandleReport(name string, headers []string, f ReportFunc, description string) {
	reportRegistry[name] = ReportEntry{
		ReportFunc: f,
		Name: name,
		Description: description,
		Headers: headers,
	}
}

func ListReports() []ReportEntry {
	out := []ReportEntry{}

	keys := []string{}
	for k,_ := range reportRegistry { keys = append(keys, k) }
	sort.Strings(keys)

	for _,k := range keys {
		out = append(out, reportRegistry[k])
	}
	return out
}

func Run(name string, s *measure.Store) (*Report, error) {
	entry,exists := reportRegistry[name]
	if !exists {
		return nil, fmt.Errorf("report '%s' not known", name)
	}

	rows,err := entry.ReportFunc(s)
	if err != nil { return nil, err }

	return &Report{Name: name, Headers: entry.Headers, Rows: rows}, nil
}

// ForGroup builds the data-log record for one group, display-formatted.
func ForGroup(g *measure.Group) measure.LogRecords {
	recs := measure.LogRecords{ Distances: []string{} }
	dists,total := g.Distances()
	for _,d := range dists {
		recs.Distances = append(recs.Distances, measure.FormatDistance(d))
	}
	recs.TotalDistance = measure.FormatDistance(total)
	return recs
}
