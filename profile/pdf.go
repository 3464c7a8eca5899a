package profile

import (
	"io"

	"github.com/jung-kurt/gofpdf"
)

var (
	BlackRGB = []int{0, 0, 0}
	RedRGB   = []int{0xff, 0, 0}
	GreenRGB = []int{0, 0x80, 0}
)

// ProfilePdf renders a terrain profile as a one-page chart: distance along
// the chain on the x axis, ground height on the y axis.
type ProfilePdf struct {
	Grid          *BaseGrid
	LineThickness float64

	*gofpdf.Fpdf  // embedded

	Caption       string
}

// {{{ pp.Init

func (pp *ProfilePdf)Init(p *Profile) {
	pp.Fpdf = gofpdf.New("P", "mm", "Letter", "")
	pp.AddPage()
	pp.SetFont("Arial", "", 10)

	if pp.LineThickness == 0.0 { pp.LineThickness = 0.25 }

	// Pad the height range a little so a flat profile isn't a line on the
	// grid border.
	minH,maxH := p.MinH, p.MaxH
	if maxH-minH < 10 {
		minH -= 5
		maxH += 5
	}

	pp.Grid = &BaseGrid{
		Fpdf: pp.Fpdf,
		OffsetU: 22.0,
		OffsetV: 35.0,
		W: 170,
		H: 100,
		MinX: 0,
		MaxX: p.TotalM,
		MinY: minH,
		MaxY: maxH,
		Clip: true,
		XGridlineEvery: niceStep(p.TotalM, 8),
		YGridlineEvery: niceStep(maxH-minH, 6),
		XTickFmt: "%.0fm",
		YTickFmt: "%.0fm",
		LineColor: GreenRGB,
	}
}

// }}}
// {{{ pp.Draw

func (pp *ProfilePdf)Draw(p *Profile) {
	pp.Grid.DrawGridlines()

	xs := make([]float64, len(p.Samples))
	ys := make([]float64, len(p.Samples))
	for i,s := range p.Samples {
		xs[i] = s.DistM
		ys[i] = s.HeightM
	}

	pp.SetLineWidth(pp.LineThickness)
	pp.Grid.Polyline(xs, ys)

	if pp.Caption != "" {
		pp.SetFont("Arial", "", 10)
		pp.SetTextColor(0x50, 0x70, 0xc0)
		pp.MoveTo(10, 10)
		pp.MultiCell(0, 4, pp.Caption, "", "", false)
		pp.SetTextColor(0,0,0)
	}
}

// }}}
// {{{ pp.Output

func (pp *ProfilePdf)Output(w io.Writer) error {
	return pp.Fpdf.Output(w)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
