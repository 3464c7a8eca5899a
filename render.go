package measure

// Handle is an opaque reference to a primitive owned by the host renderer.
// The Editor keeps its own handle bookkeeping per group, so it never needs to
// scan renderer state to find its primitives.
type Handle int64

const NoHandle Handle = 0

// MarkState is the explicit per-primitive state that replaces the original
// id-string suffix conventions ("_pending", "_moving").
type MarkState int
const(
	MarkPending MarkState = iota // part of an in-progress measurement
	MarkCommitted                // part of a completed measurement
	MarkMoving                   // provisional: mid-drag, or a selected segment
)

// RenderSync is the boundary to the host rendering engine. The core only
// requests create/update/remove; it never queries scene contents.
type RenderSync interface {
	AddPoint(pos Position, m MarkState) Handle
	RemovePoint(h Handle)

	AddLine(a, b Position, m MarkState) Handle
	RemoveLine(h Handle)

	AddLabel(pos Position, text string, m MarkState) Handle
	UpdateLabelText(h Handle, text string)
	UpdateLabelPos(h Handle, pos Position)
	RemoveLabel(h Handle)

	SetMark(h Handle, m MarkState)
}

// ConfirmFunc asks the user before a destructive edit. Modeled as a plain
// callback; hosts wrap whatever dialog machinery they have.
type ConfirmFunc func(msg string) bool

// NotifyFunc surfaces non-fatal, user-visible outcomes ("nothing new to
// submit", etc).
type NotifyFunc func(msg string)

// LogRecords is what the data-log table renders: per-segment distances and
// the group total, already display-formatted (2dp).
type LogRecords struct {
	Distances     []string
	TotalDistance string
}

// LogRecordsFunc is invoked after every completing or editing operation that
// changes a group's measured values.
type LogRecordsFunc func(recs LogRecords)
