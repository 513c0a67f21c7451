package bind

import "fmt"

// Item pairs a document value with its display label for selection bindings.
type Item[V comparable] struct {
	Value V
	Label string
}

// Items builds the item list for an enumeration: one item per member, in the
// given order, labelled by label. A nil label falls back to fmt.Sprint.
func Items[V comparable](members []V, label func(V) string) []Item[V] {
	if label == nil {
		label = func(v V) string { return fmt.Sprint(v) }
	}

	items := make([]Item[V], len(members))
	for i, m := range members {
		items[i] = Item[V]{Value: m, Label: label(m)}
	}

	return items
}

// SelectOption configures a selection binding.
type SelectOption func(*selectConfig)

type selectConfig struct {
	failOnMissing bool
}

// FailOnMissing makes LoadValues report a document value that is absent from
// the binding's option list instead of silently showing no selection. The
// control still ends up with no selection either way.
func FailOnMissing() SelectOption {
	return func(cfg *selectConfig) {
		cfg.failOnMissing = true
	}
}

// AddSelect registers a selection control whose choice list is populated
// from items. A selection change writes the matching item's value to the
// document; loading selects the option matching the document value, or no
// selection if the value is absent from items.
func AddSelect[D any, V comparable](b *Binder[D], c Selector, acc Accessor[D, V], items []Item[V], opts ...SelectOption) error {
	if c == nil {
		return ErrNilControl
	}

	if len(items) == 0 {
		return ErrNoOptions
	}

	cfg := selectConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Value→index is the inverse of the option list. Building it once here is
	// also the uniqueness check: values and labels must not collide.
	labels := make([]string, len(items))
	byValue := make(map[V]int, len(items))
	byLabel := make(map[string]struct{}, len(items))

	for i, item := range items {
		if _, dup := byValue[item.Value]; dup {
			return fmt.Errorf("%w: value %v", ErrDuplicateOption, item.Value)
		}

		if _, dup := byLabel[item.Label]; dup {
			return fmt.Errorf("%w: label %q", ErrDuplicateOption, item.Label)
		}

		byValue[item.Value] = i
		byLabel[item.Label] = struct{}{}
		labels[i] = item.Label
	}

	regErr := b.register(c)
	if regErr != nil {
		return regErr
	}

	c.SetOptions(labels)

	b.entries = append(b.entries, entry[D]{
		load: func(doc *D) error {
			v := acc.Get(doc)

			idx, present := byValue[v]
			if !present {
				c.Select(-1)

				if cfg.failOnMissing {
					return fmt.Errorf("%w: %v", ErrValueMissing, v)
				}

				return nil
			}

			c.Select(idx)

			return nil
		},
		reset: func() { c.Select(-1) },
	})

	c.OnChanged(func() {
		if b.suspended {
			return
		}

		idx := c.SelectedIndex()
		if idx < 0 || idx >= len(items) {
			return
		}

		acc.Set(b.doc, items[idx].Value)
		b.setDirty(true)
	})

	return nil
}

// KeyedItem pairs a document key with the display label shown for it.
type KeyedItem[K comparable] struct {
	Key   K
	Label string
}

// AddKeyed registers a selection control over key→label pairs: the document
// stores the key, the control displays the label. The inverse mapping is
// precomputed here, so keys and labels must each be unique; write-back
// recovers the key from the selected index without reversing anything at
// runtime.
func AddKeyed[D any, K comparable](b *Binder[D], c Selector, acc Accessor[D, K], items []KeyedItem[K], opts ...SelectOption) error {
	pairs := make([]Item[K], len(items))
	for i, item := range items {
		pairs[i] = Item[K]{Value: item.Key, Label: item.Label}
	}

	return AddSelect(b, c, acc, pairs, opts...)
}
