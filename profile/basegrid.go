package profile

import (
	"fmt"
	"math"

	"github.com/jung-kurt/gofpdf"
)

// BaseGrid maps profile values (x=distance, y=height) onto a rectangle of PDF
// page space, and draws the axes for it.
type BaseGrid struct {
	*gofpdf.Fpdf        // Embed the thing we're writing to

	OffsetU, OffsetV float64 // top-left corner, in PDF coords (mm)
	W, H             float64

	MinX, MaxX float64 // value ranges scaled onto the grid
	MinY, MaxY float64
	Clip       bool    // drop lines with an endpoint outside the grid

	XGridlineEvery, YGridlineEvery float64
	XTickFmt, YTickFmt             string // fmt.Sprintf verbs for a float64; blank==none

	LineColor []int // rgb, each [0,255]
}

// U maps an x value into PDF space; the bool is whether it fell outside the grid.
func (bg BaseGrid)U(x float64) (float64, bool) {
	xRatio := (x - bg.MinX) / (bg.MaxX - bg.MinX)
	return bg.OffsetU + xRatio*bg.W, xRatio<0 || xRatio>1
}

func (bg BaseGrid)V(y float64) (float64, bool) {
	yRatio := (y - bg.MinY) / (bg.MaxY - bg.MinY)
	// PDF v grows downwards; grid y grows upwards
	return bg.OffsetV + (bg.H - yRatio*bg.H), yRatio<0 || yRatio>1
}

func (bg BaseGrid)UV(x,y float64) (float64, float64, bool) {
	u,oobU := bg.U(x)
	v,oobV := bg.V(y)
	return u, v, (oobU || oobV)
}

func (bg BaseGrid)MaybeSetDrawColor() {
	if len(bg.LineColor) == 3 {
		bg.SetDrawColor(bg.LineColor[0], bg.LineColor[1], bg.LineColor[2])
	}
}

// Line draws a single segment, in grid space.
func (bg BaseGrid)Line(x1,y1,x2,y2 float64) {
	u1,v1,oob1 := bg.UV(x1,y1)
	u2,v2,oob2 := bg.UV(x2,y2)

	if !bg.Clip || (!oob1 && !oob2) {
		bg.MaybeSetDrawColor()
		bg.Fpdf.MoveTo(u1,v1)
		bg.Fpdf.LineTo(u2,v2)
	}

	bg.DrawPath("D")
}

// Polyline draws a connected path through the points, in grid space.
func (bg BaseGrid)Polyline(xs, ys []float64) {
	if len(xs) < 2 { return }

	bg.MaybeSetDrawColor()
	u,v,_ := bg.UV(xs[0], ys[0])
	bg.Fpdf.MoveTo(u,v)
	for i:=1; i<len(xs); i++ {
		u,v,oob := bg.UV(xs[i], ys[i])
		if bg.Clip && oob { continue }
		bg.Fpdf.LineTo(u,v)
	}
	bg.DrawPath("D")
}

// {{{ bg.DrawGridlines

func (bg BaseGrid)DrawGridlines() {
	bg.SetFont("Arial", "", 8)
	bg.SetLineWidth(0.03)
	bg.SetDrawColor(0xe0, 0xe0, 0xe0)

	if bg.XGridlineEvery > 0 {
		for x := bg.MinX; x <= bg.MaxX+0.0001; x += bg.XGridlineEvery {
			u,_ := bg.U(x)
			bg.Fpdf.MoveTo(u, bg.OffsetV)
			bg.Fpdf.LineTo(u, bg.OffsetV+bg.H)
			if bg.XTickFmt != "" {
				bg.Fpdf.MoveTo(u-4, bg.OffsetV+bg.H+2)
				bg.Fpdf.CellFormat(8, 4, fmt.Sprintf(bg.XTickFmt, x), "", 0, "C", false, 0, "")
			}
		}
	}
	if bg.YGridlineEvery > 0 {
		for y := bg.MinY; y <= bg.MaxY+0.0001; y += bg.YGridlineEvery {
			v,_ := bg.V(y)
			bg.Fpdf.MoveTo(bg.OffsetU, v)
			bg.Fpdf.LineTo(bg.OffsetU+bg.W, v)
			if bg.YTickFmt != "" {
				bg.Fpdf.MoveTo(bg.OffsetU-14, v-2)
				bg.Fpdf.CellFormat(12, 4, fmt.Sprintf(bg.YTickFmt, y), "", 0, "R", false, 0, "")
			}
		}
	}

	bg.DrawPath("D")
}

// }}}

// niceStep picks a 1/2/5 * 10^k gridline spacing giving roughly `want` lines.
func niceStep(span float64, want int) float64 {
	if span <= 0 || want < 1 { return 1 }
	raw := span / float64(want)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch {
	case raw/mag < 1.5: return mag
	case raw/mag < 3.5: return 2*mag
	case raw/mag < 7.5: return 5*mag
	}
	return 10*mag
}
