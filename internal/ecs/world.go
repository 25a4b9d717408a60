// Package ecs is a small entity/component store for fixed-tick simulations.
//
// Entities are monotonically increasing identifiers that are never reused.
// Components live in typed side tables (Store) keyed by entity. Queries visit
// entities in creation order, so a seeded simulation iterates the same way
// on every run. Spawning is immediate; despawning is deferred to Flush, the
// single structural barrier the scheduler runs between systems.
package ecs

// Entity is an opaque identity in a World. The zero value is never issued.
type Entity uint64

// table is the type-erased view of a Store the World needs for teardown.
type table interface {
	remove(e Entity)
	clear()
}

// World owns the entity arena and every registered component table.
type World struct {
	next    Entity
	alive   []Entity // ascending; rebuilt on Flush
	live    map[Entity]struct{}
	pending map[Entity]struct{}
	order   []Entity // pending despawns in request order
	tables  []table
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		next:    1,
		live:    make(map[Entity]struct{}),
		pending: make(map[Entity]struct{}),
	}
}

// Spawn reserves a new entity. It is visible to queries immediately.
func (w *World) Spawn() Entity {
	e := w.next
	w.next++
	w.alive = append(w.alive, e)
	w.live[e] = struct{}{}
	return e
}

// Despawn schedules e for removal at the next Flush.
// Unknown or already scheduled entities are ignored.
func (w *World) Despawn(e Entity) {
	if _, ok := w.live[e]; !ok {
		return
	}
	if _, ok := w.pending[e]; ok {
		return
	}
	w.pending[e] = struct{}{}
	w.order = append(w.order, e)
}

// Pending reports whether e is scheduled for removal.
func (w *World) Pending(e Entity) bool {
	_, ok := w.pending[e]
	return ok
}

// Flush applies every scheduled despawn and returns how many entities were removed.
func (w *World) Flush() int {
	if len(w.order) == 0 {
		return 0
	}

	for _, e := range w.order {
		delete(w.live, e)
		for _, t := range w.tables {
			t.remove(e)
		}
	}

	kept := w.alive[:0]
	for _, e := range w.alive {
		if _, gone := w.pending[e]; !gone {
			kept = append(kept, e)
		}
	}
	w.alive = kept

	n := len(w.order)
	w.order = w.order[:0]
	clear(w.pending)
	return n
}

// Alive reports whether e exists (including entities pending removal).
func (w *World) Alive(e Entity) bool {
	_, ok := w.live[e]
	return ok
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.alive)
}

// Entities returns a snapshot of live entities in creation order.
func (w *World) Entities() []Entity {
	out := make([]Entity, len(w.alive))
	copy(out, w.alive)
	return out
}

// Clear drops every entity, component and pending despawn.
// Entity IDs keep increasing so stale handles never alias new entities.
func (w *World) Clear() {
	w.alive = w.alive[:0]
	clear(w.live)
	clear(w.pending)
	w.order = w.order[:0]
	for _, t := range w.tables {
		t.clear()
	}
}

func (w *World) register(t table) {
	w.tables = append(w.tables, t)
}
