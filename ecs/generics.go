package ecs

import "github.com/milk9111/glowsnake/ecs/component"

// Add attaches value to e, replacing any existing component of the same kind.
// The world keeps the pointer; callers mutate components in place.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	kind := handle.Kind()
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

// Remove detaches the component of that kind from e.
func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil {
		return false
	}
	return w.store(handle.Kind().ID(), false).Remove(e)
}

// Has reports whether e carries a component of kind.
func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil {
		return false
	}
	return w.store(handle.Kind().ID(), false).Has(e)
}

// Get returns the component of kind stored on e.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if w == nil {
		return nil, false
	}
	value, ok := w.store(handle.Kind().ID(), false).Get(e).(*T)
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// ForEach calls fn for every entity carrying kind. Entities may be destroyed
// from inside fn.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.store(handle.Kind().ID(), false)
	for _, e := range s.Entities() {
		value, ok := s.Get(e).(*T)
		if !ok {
			continue
		}
		fn(e, value)
	}
}

// First returns any one entity carrying kind. Singletons such as the scene
// entity are looked up this way.
func First[T any](w *World, handle component.ComponentHandle[T]) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	s := w.store(handle.Kind().ID(), false)
	if s.Len() == 0 {
		return 0, false
	}
	return s.denseEntities[0], true
}

// Single returns the component of kind on the first entity that carries it.
func Single[T any](w *World, handle component.ComponentHandle[T]) (*T, bool) {
	e, ok := First(w, handle)
	if !ok {
		return nil, false
	}
	return Get(w, e, handle)
}

// Count returns how many entities carry kind.
func Count[T any](w *World, handle component.ComponentHandle[T]) int {
	if w == nil {
		return 0
	}
	return w.store(handle.Kind().ID(), false).Len()
}

// ForEach2 calls fn for every entity carrying both kinds.
func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	sa := w.store(ha.Kind().ID(), false)
	sb := w.store(hb.Kind().ID(), false)
	for _, e := range IntersectEntities(sa, sb) {
		a, okA := sa.Get(e).(*A)
		b, okB := sb.Get(e).(*B)
		if okA && okB {
			fn(e, a, b)
		}
	}
}
