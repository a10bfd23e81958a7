package crud

// Projection is the pure conversion pair of one entity type, plus the
// partial-update merge used by PATCH.
type Projection[E any, D any] struct {
	// ToDTO copies scalars and flattens each to-one relation into its id and label.
	ToDTO func(*E) *D
	// ToEntity copies scalars and turns each relation id into a reference stub.
	ToEntity func(*D) *E
	// Patch copies only the fields present in the DTO onto an existing entity.
	Patch func(*E, *D)
}

// ToDTOs projects a slice of entities
func (p Projection[E, D]) ToDTOs(entities []E) []D {
	out := make([]D, 0, len(entities))
	for i := range entities {
		out = append(out, *p.ToDTO(&entities[i]))
	}
	return out
}
