package ecs

// IntersectEntities returns the entities present in both sets, in the dense
// order of the smaller one. The result is a fresh slice, safe to hold while
// entities are destroyed.
func IntersectEntities(a, b *SparseSet) []Entity {
	if a.Len() == 0 || b.Len() == 0 {
		return nil
	}
	// iterate smaller set
	if a.Len() > b.Len() {
		a, b = b, a
	}
	out := make([]Entity, 0, a.Len())
	for _, e := range a.denseEntities {
		if b.Has(e) {
			out = append(out, e)
		}
	}
	return out
}
