// Package terrain models the ground-height boundary: an async height query,
// an in-memory gridded elevation source for tests and offline use, and the
// terrain-clamped distance measurement built on top of them.
package terrain

import (
	"context"
	"fmt"

	"github.com/skypies/geo"
)

// Query is the height-sampling collaborator. Implementations may be remote
// and slow; everything takes a context.
type Query interface {
	HeightAt(ctx context.Context, ll geo.Latlong) (float64, error)
	HeightsAt(ctx context.Context, lls []geo.Latlong) ([]float64, error)
}

// GridSource is a regular lat/long elevation grid with bilinear
// interpolation. Heights[row][col]: row walks latitude up from Origin, col
// walks longitude east.
type GridSource struct {
	Origin  geo.Latlong
	CellDeg float64
	Heights [][]float64
}

func NewGridSource(origin geo.Latlong, cellDeg float64, heights [][]float64) *GridSource {
	return &GridSource{Origin: origin, CellDeg: cellDeg, Heights: heights}
}

func (gs *GridSource)String() string {
	rows := len(gs.Heights)
	cols := 0
	if rows > 0 { cols = len(gs.Heights[0]) }
	return fmt.Sprintf("grid %dx%d cells of %.4fdeg at %s", rows, cols, gs.CellDeg, gs.Origin)
}

func (gs *GridSource)HeightAt(ctx context.Context, ll geo.Latlong) (float64, error) {
	fRow := (ll.Lat - gs.Origin.Lat) / gs.CellDeg
	fCol := (ll.Long - gs.Origin.Long) / gs.CellDeg

	rows := len(gs.Heights)
	if rows == 0 { return 0, fmt.Errorf("grid is empty") }
	cols := len(gs.Heights[0])

	if fRow < 0 || fCol < 0 || fRow > float64(rows-1) || fCol > float64(cols-1) {
		return 0, fmt.Errorf("%s outside grid", ll)
	}

	r0 := int(fRow)
	c0 := int(fCol)
	r1,c1 := r0+1, c0+1
	if r1 > rows-1 { r1 = rows-1 }
	if c1 > cols-1 { c1 = cols-1 }
	dr := fRow - float64(r0)
	dc := fCol - float64(c0)

	h00 := gs.Heights[r0][c0]
	h01 := gs.Heights[r0][c1]
	h10 := gs.Heights[r1][c0]
	h11 := gs.Heights[r1][c1]

	top := h00 + (h01-h00)*dc
	bot := h10 + (h11-h10)*dc
	return top + (bot-top)*dr, nil
}

func (gs *GridSource)HeightsAt(ctx context.Context, lls []geo.Latlong) ([]float64, error) {
	out := make([]float64, len(lls))
	for i,ll := range lls {
		h,err := gs.HeightAt(ctx, ll)
		if err != nil { return nil, err }
		out[i] = h
	}
	return out, nil
}

// ConstSource is flat ground at a fixed height. Handy in tests.
type ConstSource float64

func (cs ConstSource)HeightAt(ctx context.Context, ll geo.Latlong) (float64, error) {
	return float64(cs), nil
}
func (cs ConstSource)HeightsAt(ctx context.Context, lls []geo.Latlong) ([]float64, error) {
	out := make([]float64, len(lls))
	for i := range out { out[i] = float64(cs) }
	return out, nil
}
