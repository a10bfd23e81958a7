package shared

// Entity is implemented by every persisted domain entity
type Entity interface {
	GetID() int64
	SetID(id int64)
}

// BaseEntity holds the synthetic identifier shared by all entities.
// Zero means the entity has not been stored yet.
type BaseEntity struct {
	ID int64
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() int64 {
	return e.ID
}

// SetID assigns the entity ID
func (e *BaseEntity) SetID(id int64) {
	e.ID = id
}

// IsNew reports whether the entity has no identifier yet
func (e *BaseEntity) IsNew() bool {
	return e.ID == 0
}
