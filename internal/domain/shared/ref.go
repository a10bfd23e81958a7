package shared

import "fmt"

// RefKind tells which state a Ref is in
type RefKind uint8

const (
	// RefUnset means the relation is absent
	RefUnset RefKind = iota
	// RefByID means only the related entity's identifier is known
	RefByID
	// RefLoaded means the related entity itself is held
	RefLoaded
)

func (k RefKind) String() string {
	switch k {
	case RefByID:
		return "reference"
	case RefLoaded:
		return "loaded"
	default:
		return "unset"
	}
}

// Ref is a to-one relation value. The zero value is an unset relation.
//
// A Ref created from an identifier alone (RefTo, RefFromID) is a reference
// stub: it attaches a foreign key without carrying any attribute of the
// related entity, so persisting it must never write the related row.
type Ref[T any] struct {
	kind  RefKind
	id    int64
	value *T
}

// RefTo returns a reference stub carrying only id
func RefTo[T any](id int64) Ref[T] {
	return Ref[T]{kind: RefByID, id: id}
}

// RefFromID returns a reference stub for id, or an unset Ref when id is nil
func RefFromID[T any](id *int64) Ref[T] {
	if id == nil {
		return Ref[T]{}
	}
	return RefTo[T](*id)
}

// LoadedRef wraps a fully loaded related entity. A nil entity yields an
// unset Ref. The identifier is taken from the entity when *T implements Entity.
func LoadedRef[T any](v *T) Ref[T] {
	if v == nil {
		return Ref[T]{}
	}
	r := Ref[T]{kind: RefLoaded, value: v}
	if e, ok := any(v).(Entity); ok {
		r.id = e.GetID()
	}
	return r
}

// Kind returns the state of the relation
func (r Ref[T]) Kind() RefKind {
	return r.kind
}

// IsSet reports whether the relation is present
func (r Ref[T]) IsSet() bool {
	return r.kind != RefUnset
}

// ID returns the related identifier
func (r Ref[T]) ID() (int64, bool) {
	if r.kind == RefUnset {
		return 0, false
	}
	return r.id, true
}

// IDPtr returns a pointer to a copy of the related identifier, nil when unset
func (r Ref[T]) IDPtr() *int64 {
	if r.kind == RefUnset {
		return nil
	}
	id := r.id
	return &id
}

// Loaded returns the related entity when the Ref holds one
func (r Ref[T]) Loaded() (*T, bool) {
	if r.kind != RefLoaded {
		return nil, false
	}
	return r.value, true
}

func (r Ref[T]) String() string {
	if r.kind == RefUnset {
		return "unset"
	}
	return fmt.Sprintf("%s(%d)", r.kind, r.id)
}

// RefLabel reads the denormalized label of a loaded relation. It returns nil
// when the relation is unset, holds only an id, or the label is empty.
func RefLabel[T any](r Ref[T], label func(*T) string) *string {
	v, ok := r.Loaded()
	if !ok || v == nil {
		return nil
	}
	return StringPtr(label(v))
}
