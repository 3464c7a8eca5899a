package main

import(
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/skypies/geo"

	"github.com/terravue/measure"
)

var(
	fVerbosity int
	fHeightM float64
	fFromEcef bool
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "verbosity level")
	flag.Float64Var(&fHeightM, "h", 0.0, "height above the ellipsoid, in meters")
	flag.BoolVar(&fFromEcef, "ecef", false, "treat args as ECEF x,y,z and convert back")
	flag.Parse()
}

func main() {
	if len(flag.Args()) == 0 {
		log.Fatal("usage: mgeo 123.123, 123.123   (or: mgeo -ecef x y z)\n")
	}

	if fFromEcef {
		vals := []float64{}
		for _,arg := range flag.Args() {
			for _,field := range strings.Split(arg, ",") {
				if field = strings.TrimSpace(field); field == "" { continue }
				v,err := strconv.ParseFloat(field, 64)
				if err != nil { log.Fatal(err) }
				vals = append(vals, v)
			}
		}
		if len(vals) != 3 {
			log.Fatal("-ecef needs exactly three values\n")
		}
		pos := measure.Position{X:vals[0], Y:vals[1], Z:vals[2]}
		ll,h := pos.Latlong()
		fmt.Printf(">>>> %s\n  << (%.7f, %.7f) @ %.2fm\n", pos, ll.Lat, ll.Long, h)
		return
	}

	in := strings.Join(flag.Args(), " ")
	ll := geo.NewLatlong(in)
	pos := measure.PositionFromLatlong(ll, fHeightM)

	fmt.Printf(">>>> %s @ %.2fm\n  << (%.7f, %.7f)\n", in, fHeightM, ll.Lat, ll.Long)
	fmt.Printf("  << %s\n", pos)
	fmt.Printf("  << %T{X:%.3f, Y:%.3f, Z:%.3f}\n", pos, pos.X, pos.Y, pos.Z)
}


// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
