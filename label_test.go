package measure

import "testing"

type LabelTest struct {
	GroupIndex int
	PointIndex int
	Expected   string
}

func TestLabelFor(t *testing.T) {
	tests := []LabelTest{
		{0,  1, "a0"},
		{0,  2, "b0"},
		{0, 26, "z0"},
		{0, 27, "a0"}, // letters wrap
		{3,  1, "a3"},
		{0,  0, "a0"}, // clamped
		{0, -1, "a0"},
	}

	for _,test := range tests {
		g := &Group{GroupIndex: test.GroupIndex}
		if got := LabelFor(g, test.PointIndex).Name(); got != test.Expected {
			t.Errorf("group %d point %d - expected %q, got %q",
				test.GroupIndex, test.PointIndex, test.Expected, got)
		}
	}
}

func TestLabelText(t *testing.T) {
	g := &Group{GroupIndex: 2}
	if got := LabelFor(g, 1).Text(5.0); got != "a2: 5.00m" {
		t.Errorf("expected 'a2: 5.00m', got %q", got)
	}
	// Display rounding is 2dp, half-up per Sprintf
	if got := LabelFor(g, 2).Text(3.14159); got != "b2: 3.14m" {
		t.Errorf("expected 'b2: 3.14m', got %q", got)
	}
}

func TestFormatDistance(t *testing.T) {
	if got := FormatDistance(0); got != "0.00" {
		t.Errorf("expected '0.00', got %q", got)
	}
	if got := FormatDistance(123.456); got != "123.46" {
		t.Errorf("expected '123.46', got %q", got)
	}
}
