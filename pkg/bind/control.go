package bind

// Control is the surface the binder needs from a value-holding widget.
//
// Implementations must be comparable (in practice, pointers to widgets);
// the binder uses control identity to reject double registration.
type Control[V any] interface {
	// Value returns the widget's current display value.
	Value() V

	// SetValue pushes a value into the widget's display. Implementations may
	// re-fire their change callback here (many toolkits do); the binder's
	// suspend flag makes that harmless during bulk loads.
	SetValue(v V)

	// Reset returns the widget to its empty display state, which is not
	// necessarily the document's value.
	Reset()

	// OnChanged installs the binder's change listener. Called exactly once,
	// at registration; the subscription lives as long as the widget.
	OnChanged(fn func())
}

// Selector is the surface the binder needs from a list-backed selection
// widget (drop-down, combo box). Selection is by index; -1 means no
// selection and is the reset state.
type Selector interface {
	// SetOptions replaces the widget's choice list.
	SetOptions(labels []string)

	// Select sets the selected index. -1 clears the selection.
	Select(index int)

	// SelectedIndex returns the selected index, or -1 if nothing is selected.
	SelectedIndex() int

	// OnChanged installs the binder's selection-change listener.
	OnChanged(fn func())
}
