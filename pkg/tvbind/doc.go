// Package tvbind adapts tview form widgets to the pkg/bind control
// interfaces: input fields for text, numeric, and date values, checkboxes
// for booleans, and drop-downs for selections.
//
// The adapters hold no state of their own beyond the widget and a value
// codec (date layout, number parsing); all synchronization policy lives in
// the binder. Numeric and date fields follow the underlying widget's
// permissiveness: unparsable display text reads as the zero value, since the
// binder performs no validation beyond what the widget enforces.
//
// Known limitation: tview's input field applies programmatic text
// replacement reliably only after the widget has been drawn at least once.
// Setting a value into a still-empty, never-drawn field works (that covers
// loading a document before Application.Run), but replacing a non-empty
// value requires a draw cycle in between. Inside a running application every
// event is followed by a redraw, so this only matters for loads issued
// before the first draw.
package tvbind
