// Package measure implements the editable multi-point measurement chains that
// sit behind interactive distance / area / profile tools. The core is an
// event-driven state machine over a store of point groups; everything visual
// or asynchronous (rendering, terrain sampling, confirmation dialogs,
// persistence) lives behind small interfaces.
package measure

func Version() string { return "0.2" }
