package models

import (
	"time"

	"github.com/ceilingworks/erp/internal/domain/shared"
)

// BaseModel provides common persistence fields for all models.
// The audit timestamps exist only at this layer.
type BaseModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{ID: m.ID}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
}

type domainModel[E any, M any] interface {
	*M
	ToDomain() *E
}

// toRef rebuilds a to-one relation. A preloaded association yields a loaded
// Ref; otherwise the foreign key column alone yields a reference stub.
func toRef[E any, M any, PM domainModel[E, M]](fk *int64, assoc *M) shared.Ref[E] {
	if assoc != nil {
		return shared.LoadedRef(PM(assoc).ToDomain())
	}
	return shared.RefFromID[E](fk)
}

func toDomainSlice[E any, M any, PM domainModel[E, M]](rows []M) []E {
	if rows == nil {
		return nil
	}
	out := make([]E, 0, len(rows))
	for i := range rows {
		out = append(out, *PM(&rows[i]).ToDomain())
	}
	return out
}

func enumPtr[S ~string](s *string) *S {
	if s == nil {
		return nil
	}
	v := S(*s)
	return &v
}

func enumString[S ~string](s *S) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}
