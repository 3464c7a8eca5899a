// mtool replays a script of editing events through a measurement editor,
// and prints the resulting groups and reports.
//
// The script is JSON, one event per line:
//   {"op":"click",     "pos":[x,y,z]}
//   {"op":"finish"}                          (or with a final "pos")
//   {"op":"remove",    "pos":[x,y,z]}
//   {"op":"select",    "pos":[x,y,z]}        (picks the nearest drawn line)
//   {"op":"cancel"}
//   {"op":"dragstart", "pos":[x,y,z], "screen":[u,v]}
//   {"op":"dragmove",  "pos":[x,y,z], "screen":[u,v]}
//   {"op":"dragend",   "pos":[x,y,z]}
//   {"op":"reset"}
package main

import(
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/terravue/measure"
	"github.com/terravue/measure/render"
	"github.com/terravue/measure/report"
)

var(
	fVerbosity int
	fReport string
	fCsv bool
	fPickRadiusM float64
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "verbosity level")
	flag.StringVar(&fReport, "report", "", "name of report to run at the end ('list' to list them)")
	flag.BoolVar(&fCsv, "csv", false, "report output as CSV")
	flag.Float64Var(&fPickRadiusM, "pickradius", 1.0, "pick radius for 'select' events, meters")
	flag.Parse()
}

type Event struct {
	Op     string    `json:"op"`
	Pos    []float64 `json:"pos"`
	Screen []float64 `json:"screen"`
}

func (ev Event)Position() *measure.Position {
	if len(ev.Pos) != 3 { return nil }
	return &measure.Position{X:ev.Pos[0], Y:ev.Pos[1], Z:ev.Pos[2]}
}

func (ev Event)ScreenPos() measure.ScreenPos {
	if len(ev.Screen) != 2 { return measure.ScreenPos{} }
	return measure.ScreenPos{U:ev.Screen[0], V:ev.Screen[1]}
}

// {{{ apply

func apply(ed *measure.Editor, rec *render.Recorder, ev Event) error {
	switch ev.Op {
	case "click":
		pos := ev.Position()
		if pos == nil { return fmt.Errorf("click needs a pos") }
		return ed.Click(*pos)

	case "finish":
		return ed.Finish(ev.Position())

	case "remove":
		pos := ev.Position()
		if pos == nil { return fmt.Errorf("remove needs a pos") }
		return ed.RemovePoint(*pos)

	case "select":
		pos := ev.Position()
		if pos == nil { return fmt.Errorf("select needs a pos") }
		kind,h := rec.PickAt(*pos, fPickRadiusM)
		if kind != render.PickLine {
			return fmt.Errorf("select found no line near %s", pos)
		}
		return ed.SelectSegment(h)

	case "cancel":
		ed.CancelSelection()
		return nil

	case "dragstart":
		pos := ev.Position()
		if pos == nil { return fmt.Errorf("dragstart needs a pos") }
		return ed.DragStart(*pos, ev.ScreenPos())

	case "dragmove":
		return ed.DragMove(ev.Position(), ev.ScreenPos())

	case "dragend":
		return ed.DragEnd(ev.Position())

	case "reset":
		ed.Reset()
		return nil
	}

	return fmt.Errorf("unknown op '%s'", ev.Op)
}

// }}}
// {{{ dumpStore

func dumpStore(s *measure.Store) {
	fmt.Printf("%d group(s) in store\n", s.NumGroups())
	for i,g := range s.Groups() {
		_,total := g.Distances()
		fmt.Printf("[%2d] %s (idx %d, %s): %d point(s), total %sm\n",
			i, g.Id, g.GroupIndex, g.Status, g.NumPoints(), measure.FormatDistance(total))
		if fVerbosity > 0 {
			for j,pos := range g.Positions {
				fmt.Printf("      - [%2d] %s\n", j, pos)
			}
		}
	}
}

// }}}
// {{{ runReport

func runReport(s *measure.Store) {
	if fReport == "list" {
		for _,entry := range report.ListReports() {
			fmt.Printf("%-12.12s %s\n", entry.Name, entry.Description)
		}
		return
	}

	rep,err := report.Run(fReport, s)
	if err != nil { log.Fatal(err) }

	if fCsv {
		if err := rep.OutputAsCSV(os.Stdout); err != nil { log.Fatal(err) }
		return
	}

	fmt.Printf("---- report: %s ----\n", rep.Name)
	fmt.Printf("%v\n", rep.Headers)
	for _,row := range rep.Rows {
		fmt.Printf("%v\n", row)
	}
}

// }}}

func main() {
	in := os.Stdin
	if len(flag.Args()) > 0 {
		f,err := os.Open(flag.Args()[0])
		if err != nil { log.Fatal(err) }
		defer f.Close()
		in = f
	}

	rec := render.NewRecorder()
	ed := measure.NewEditor(measure.NewStore(), rec)
	ed.Notify = func(msg string) { fmt.Printf("  !! %s\n", msg) }
	if fVerbosity > 0 {
		ed.OnLogRecords = func(recs measure.LogRecords) {
			fmt.Printf("  .. log: %v (total %s)\n", recs.Distances, recs.TotalDistance)
		}
	}

	scanner := bufio.NewScanner(in)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 { continue }

		ev := Event{}
		if err := json.Unmarshal(line, &ev); err != nil {
			log.Fatalf("line %d: bad event: %v\n", lineNum, err)
		}
		if err := apply(ed, rec, ev); err != nil {
			log.Fatalf("line %d: %s: %v\n", lineNum, ev.Op, err)
		}
	}
	if err := scanner.Err(); err != nil { log.Fatal(err) }

	dumpStore(ed.Store)
	if fReport != "" { runReport(ed.Store) }
}


// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
