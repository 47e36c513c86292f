package sketch

import (
	"fmt"
	"iter"

	"github.com/kamstrup/intmap"

	"honnef.co/go/sketch/handle"
)

// Table stores objects keyed by handle, in insertion order.
//
// Every rebuild of the table (see [Table.Clear]) starts a new generation.
// References taken with [Table.Ref] remember the generation they were taken
// in and fail to resolve once the table has been rebuilt, even if an object
// with the same handle exists again.
//
// The zero value is an empty table ready to use.
type Table[H handle.Handle, T any] struct {
	keys  []H
	items []*T
	index *intmap.Map[H, int32]
	gen   uint32
}

// Ref is a generation-checked reference into a [Table].
type Ref[H handle.Handle] struct {
	H   H
	gen uint32
}

// Len returns the number of objects in the table.
func (t *Table[H, T]) Len() int { return len(t.items) }

// Generation returns the number of times the table has been cleared.
func (t *Table[H, T]) Generation() uint32 { return t.gen }

// Add adds v under handle h and returns a pointer to the stored copy. Adding
// a handle that is already present is a contract violation.
func (t *Table[H, T]) Add(h H, v T) *T {
	if t.index == nil {
		t.index = intmap.New[H, int32](64)
	}
	if t.index.Has(h) {
		violate("Table.Add", "duplicate handle %v", h)
	}
	p := new(T)
	*p = v
	t.index.Put(h, int32(len(t.items)))
	t.keys = append(t.keys, h)
	t.items = append(t.items, p)
	return p
}

// Get returns the object stored under h.
func (t *Table[H, T]) Get(h H) (*T, bool) {
	if t.index == nil {
		return nil, false
	}
	i, ok := t.index.Get(h)
	if !ok {
		return nil, false
	}
	return t.items[i], true
}

// Has reports whether h is present.
func (t *Table[H, T]) Has(h H) bool {
	return t.index != nil && t.index.Has(h)
}

// Delete removes the object stored under h, preserving the order of the
// remaining objects. It reports whether h was present.
func (t *Table[H, T]) Delete(h H) bool {
	if t.index == nil {
		return false
	}
	i, ok := t.index.Get(h)
	if !ok {
		return false
	}
	t.keys = append(t.keys[:i], t.keys[i+1:]...)
	t.items = append(t.items[:i], t.items[i+1:]...)
	t.reindex()
	return true
}

func (t *Table[H, T]) reindex() {
	t.index = intmap.New[H, int32](max(64, len(t.keys)))
	for i, h := range t.keys {
		t.index.Put(h, int32(i))
	}
}

// Clear removes all objects and starts a new generation.
func (t *Table[H, T]) Clear() {
	t.keys = nil
	t.items = nil
	t.index = nil
	t.gen++
}

// All iterates over handles and objects in insertion order.
func (t *Table[H, T]) All() iter.Seq2[H, *T] {
	return func(yield func(H, *T) bool) {
		for i, h := range t.keys {
			if !yield(h, t.items[i]) {
				return
			}
		}
	}
}

// Handles returns the handles in insertion order.
func (t *Table[H, T]) Handles() []H {
	return append([]H(nil), t.keys...)
}

// Ref returns a reference to h that is valid for the current generation.
func (t *Table[H, T]) Ref(h H) Ref[H] {
	return Ref[H]{H: h, gen: t.gen}
}

// Resolve returns the object ref refers to. It fails with [ErrStale] if the
// table was cleared since the reference was taken, and with [ErrNotFound] if
// the handle is absent.
func (t *Table[H, T]) Resolve(ref Ref[H]) (*T, error) {
	if ref.gen != t.gen {
		return nil, fmt.Errorf("%v (generation %d, table at %d): %w", ref.H, ref.gen, t.gen, ErrStale)
	}
	v, ok := t.Get(ref.H)
	if !ok {
		return nil, fmt.Errorf("%v: %w", ref.H, ErrNotFound)
	}
	return v, nil
}
