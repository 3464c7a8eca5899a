package measure

import (
	"fmt"
)

// A SegmentLabel names the segment that ends at a given point: letter cycles
// a..z by position within the group, number is the group's creation-order
// index. So the first measurement reads "a0", "b0", ...; the next group starts
// over at "a1".
type SegmentLabel struct {
	Letter byte
	Number int
}

func (sl SegmentLabel)Name() string {
	return fmt.Sprintf("%c%d", sl.Letter, sl.Number)
}

// Text is the display form, with the segment's distance appended.
func (sl SegmentLabel)Text(distM float64) string {
	return fmt.Sprintf("%s: %sm", sl.Name(), FormatDistance(distM))
}

// LabelFor names the segment ending at pointIndex. The label belongs to the
// segment, so pointIndex is counted from the group's second point; indexes
// below 1 clamp to 'a'.
func LabelFor(g *Group, pointIndex int) SegmentLabel {
	i := pointIndex - 1
	if i < 0 { i = 0 }
	return SegmentLabel{
		Letter: byte('a' + i%26),
		Number: g.GroupIndex,
	}
}

// FormatDistance is the display rounding (2dp). Internal math keeps full
// float precision; only surfaced strings get rounded.
func FormatDistance(distM float64) string {
	return fmt.Sprintf("%.2f", distM)
}
