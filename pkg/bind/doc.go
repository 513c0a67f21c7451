// Package bind synchronizes form controls with a single document value.
//
// A Binder owns an append-only registry of control/property pairs for one
// document instance. User edits flow control→document immediately and set a
// single aggregate dirty flag; LoadValues and ClearValues flow the other way
// with control change events suppressed, so programmatic updates are never
// mistaken for user edits.
//
// The binder knows nothing about any concrete widget toolkit. Controls are
// registered through the small Control and Selector interfaces; adapter
// packages (see pkg/tvbind) map real widgets onto them. Everything runs on
// the host toolkit's event-dispatch goroutine; the binder has no locks.
package bind
