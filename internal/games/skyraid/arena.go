package skyraid

// ID identifies an entity for the lifetime of its arena. IDs are never reused.
type ID uint64

type slot[T any] struct {
	id    ID
	alive bool
	value T
}

// Arena stores entities in a flat slice of slots. Removing an entity only
// clears its alive flag; dead slots are compacted by Sweep, which callers run
// once iteration for the tick is over.
//
// Slot indices passed to Each stay valid until the next Sweep or Reset.
type Arena[T any] struct {
	slots  []slot[T]
	nextID ID
	live   int
}

// NewArena creates an empty arena with room for capacity entities.
func NewArena[T any](capacity int) *Arena[T] {
	return &Arena[T]{slots: make([]slot[T], 0, capacity)}
}

// Add appends a live entity and returns its ID.
func (a *Arena[T]) Add(v T) ID {
	a.nextID++
	a.slots = append(a.slots, slot[T]{id: a.nextID, alive: true, value: v})
	a.live++
	return a.nextID
}

// Each calls fn for every live entity in insertion order.
// Entities added during iteration are not visited, and an entity killed
// during iteration is skipped if not yet reached. The pointer is only valid
// until the next Add.
func (a *Arena[T]) Each(fn func(i int, v *T)) {
	n := len(a.slots)
	for i := 0; i < n; i++ {
		if !a.slots[i].alive {
			continue
		}
		fn(i, &a.slots[i].value)
	}
}

// Kill marks the entity in slot i as dead. Returns false if it already was.
func (a *Arena[T]) Kill(i int) bool {
	if i < 0 || i >= len(a.slots) || !a.slots[i].alive {
		return false
	}
	a.slots[i].alive = false
	a.live--
	return true
}

// Alive reports whether slot i holds a live entity.
func (a *Arena[T]) Alive(i int) bool {
	return i >= 0 && i < len(a.slots) && a.slots[i].alive
}

// Get returns the entity in slot i, or nil if the slot is empty or dead.
func (a *Arena[T]) Get(i int) *T {
	if !a.Alive(i) {
		return nil
	}
	return &a.slots[i].value
}

// ID returns the ID of the entity in slot i, or 0 if out of range.
func (a *Arena[T]) ID(i int) ID {
	if i < 0 || i >= len(a.slots) {
		return 0
	}
	return a.slots[i].id
}

// Len returns the number of live entities.
func (a *Arena[T]) Len() int {
	return a.live
}

// Slots returns the number of slots including dead ones awaiting Sweep.
func (a *Arena[T]) Slots() int {
	return len(a.slots)
}

// Sweep drops dead slots, preserving the order of live ones.
// Returns the number of slots removed.
func (a *Arena[T]) Sweep() int {
	kept := a.slots[:0]
	for _, s := range a.slots {
		if s.alive {
			kept = append(kept, s)
		}
	}
	removed := len(a.slots) - len(kept)

	// Zero the tail so swept values can be collected
	clear(a.slots[len(kept):])
	a.slots = kept
	return removed
}

// Reset removes every entity. IDs keep increasing.
func (a *Arena[T]) Reset() {
	clear(a.slots)
	a.slots = a.slots[:0]
	a.live = 0
}
