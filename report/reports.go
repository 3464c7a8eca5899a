package report

import(
	"fmt"

	"github.com/terravue/measure"
)

// The built-in reports.

func init() {
	HandleReport("segments",
		[]string{"group", "label", "distance_m"},
		segmentsReport,
		"one row per segment, with its label and distance")
	HandleReport("totals",
		[]string{"group", "index", "points", "total_m"},
		totalsReport,
		"one row per completed group, with its total length")
	HandleReport("areas",
		[]string{"group", "points", "area_m2"},
		areasReport,
		"one row per completed group of 3+ points, treated as a polygon")
}

func segmentsReport(s *measure.Store) ([][]string, error) {
	rows := [][]string{}
	for _,g := range s.Groups() {
		dists,_ := g.Distances()
		for i,d := range dists {
			lbl := measure.LabelFor(g, i+1)
			rows = append(rows, []string{
				string(g.Id), lbl.Name(), measure.FormatDistance(d),
			})
		}
	}
	return rows, nil
}

func totalsReport(s *measure.Store) ([][]string, error) {
	rows := [][]string{}
	for _,g := range s.ByStatus(measure.StatusCompleted) {
		_,total := g.Distances()
		rows = append(rows, []string{
			string(g.Id),
			fmt.Sprintf("%d", g.GroupIndex),
			fmt.Sprintf("%d", g.NumPoints()),
			measure.FormatDistance(total),
		})
	}
	return rows, nil
}

func areasReport(s *measure.Store) ([][]string, error) {
	rows := [][]string{}
	for _,g := range s.ByStatus(measure.StatusCompleted) {
		area,err := measure.PolygonArea(g.Positions)
		if err != nil { continue } // not enough points for an area; skip
		rows = append(rows, []string{
			string(g.Id),
			fmt.Sprintf("%d", g.NumPoints()),
			measure.FormatDistance(area),
		})
	}
	return rows, nil
}
