package ecs

// Store is a typed component table. Components are stored by pointer so
// systems mutate them in place.
type Store[T any] struct {
	world *World
	data  map[Entity]*T
}

// NewStore creates a component table and registers it with w so that
// Flush and Clear reach it.
func NewStore[T any](w *World) *Store[T] {
	s := &Store[T]{
		world: w,
		data:  make(map[Entity]*T),
	}
	w.register(s)
	return s
}

// Set attaches (or replaces) the component on e.
// Setting a component on an entity that does not exist is a no-op.
func (s *Store[T]) Set(e Entity, v T) {
	if !s.world.Alive(e) {
		return
	}
	c := v
	s.data[e] = &c
}

// Get returns the component attached to e.
func (s *Store[T]) Get(e Entity) (*T, bool) {
	c, ok := s.data[e]
	return c, ok
}

// Has reports whether e carries this component.
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.data[e]
	return ok
}

// Remove detaches the component from e.
func (s *Store[T]) Remove(e Entity) {
	delete(s.data, e)
}

// Len returns the number of entities carrying this component.
func (s *Store[T]) Len() int {
	return len(s.data)
}

// Each visits every entity carrying this component in creation order.
// Entities spawned during the visit are not included.
func (s *Store[T]) Each(fn func(Entity, *T)) {
	alive := s.world.alive
	for _, e := range alive {
		if c, ok := s.data[e]; ok {
			fn(e, c)
		}
	}
}

// First returns the first entity (in creation order) carrying this component.
func (s *Store[T]) First() (Entity, *T, bool) {
	for _, e := range s.world.alive {
		if c, ok := s.data[e]; ok {
			return e, c, true
		}
	}
	return 0, nil, false
}

func (s *Store[T]) remove(e Entity) {
	delete(s.data, e)
}

func (s *Store[T]) clear() {
	clear(s.data)
}

// Join visits entities carrying both components in creation order.
func Join[A, B any](a *Store[A], b *Store[B], fn func(Entity, *A, *B)) {
	a.Each(func(e Entity, ca *A) {
		if cb, ok := b.data[e]; ok {
			fn(e, ca, cb)
		}
	})
}
