package bind

import (
	"errors"
	"fmt"
)

// Binder synchronizes a set of registered controls with one document of
// type D. The registry is append-only; entries live for the binder's life.
//
// Not safe for concurrent use. All operations are expected to run on the
// toolkit's event-dispatch goroutine.
type Binder[D any] struct {
	doc *D

	entries []entry[D]
	bound   map[any]struct{}

	// suspended suppresses control→document propagation while LoadValues or
	// ClearValues push values into controls. It is the only guard between
	// programmatic updates and user edits.
	suspended bool

	dirty        bool
	dirtyChanged func(dirty bool)
}

// entry is one control/property association: a document→control copy and a
// display reset. The control→document direction lives in the change listener
// installed at registration.
type entry[D any] struct {
	load  func(doc *D) error
	reset func()
}

// New creates a binder for doc. Panics if doc is nil; a binder always has a
// document.
func New[D any](doc *D) *Binder[D] {
	if doc == nil {
		panic("bind: document is nil")
	}

	return &Binder[D]{
		doc:   doc,
		bound: make(map[any]struct{}),
	}
}

// Document returns the current document.
func (b *Binder[D]) Document() *D {
	return b.doc
}

// SetDocument replaces the document wholesale. It does not touch the
// controls or the dirty flag; callers follow up with LoadValues or
// ClearValues. Panics if doc is nil.
func (b *Binder[D]) SetDocument(doc *D) {
	if doc == nil {
		panic("bind: document is nil")
	}

	b.doc = doc
}

// IsDirty reports whether a user edit occurred since the last load, clear,
// or MarkClean.
func (b *Binder[D]) IsDirty() bool {
	return b.dirty
}

// OnDirtyChanged installs a notification callback. It fires exactly on
// dirty-flag transitions, never on repeated edits.
func (b *Binder[D]) OnDirtyChanged(fn func(dirty bool)) {
	b.dirtyChanged = fn
}

// MarkClean clears the dirty flag without touching any control. Used after
// a successful save.
func (b *Binder[D]) MarkClean() {
	b.setDirty(false)
}

// LoadValues pushes every bound document property into its control, with
// control change events suppressed for the duration, then clears the dirty
// flag.
//
// The returned error is non-nil only when a selection binding registered
// with FailOnMissing hit a document value absent from its option list; all
// other controls are still loaded.
func (b *Binder[D]) LoadValues() error {
	b.suspended = true
	defer func() { b.suspended = false }()

	var errs []error

	for _, e := range b.entries {
		err := e.load(b.doc)
		if err != nil {
			errs = append(errs, err)
		}
	}

	b.setDirty(false)

	return errors.Join(errs...)
}

// ClearValues resets every bound control to its empty display state, with
// control change events suppressed, then clears the dirty flag. The document
// itself is not modified.
func (b *Binder[D]) ClearValues() {
	b.suspended = true
	defer func() { b.suspended = false }()

	for _, e := range b.entries {
		e.reset()
	}

	b.setDirty(false)
}

// Add registers a control against a document property and immediately
// installs its change listener. One registration per control; a second
// registration of the same control fails.
func Add[D, V any](b *Binder[D], c Control[V], acc Accessor[D, V]) error {
	if c == nil {
		return ErrNilControl
	}

	regErr := b.register(c)
	if regErr != nil {
		return regErr
	}

	b.entries = append(b.entries, entry[D]{
		load: func(doc *D) error {
			c.SetValue(acc.Get(doc))
			return nil
		},
		reset: c.Reset,
	})

	c.OnChanged(func() {
		if b.suspended {
			return
		}

		acc.Set(b.doc, c.Value())
		b.setDirty(true)
	})

	return nil
}

func (b *Binder[D]) register(c any) error {
	if _, dup := b.bound[c]; dup {
		return fmt.Errorf("%w: %T", ErrControlBound, c)
	}

	b.bound[c] = struct{}{}

	return nil
}

func (b *Binder[D]) setDirty(dirty bool) {
	if b.dirty == dirty {
		return
	}

	b.dirty = dirty

	if b.dirtyChanged != nil {
		b.dirtyChanged(dirty)
	}
}
