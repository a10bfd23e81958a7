package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/ceilingworks/erp/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Model is the contract between a persistence model and its domain entity
type Model[E any, M any] interface {
	*M
	ToDomain() *E
	FromDomain(*E)
}

// RepositoryOption configures a GormRepository
type RepositoryOption func(*repositoryOptions)

type repositoryOptions struct {
	preloads []string
}

// WithPreload loads the named associations on every read, e.g.
// WithPreload("Facility"). Loaded associations become loaded relations
// on the entity and provide the labels of its transfer object.
func WithPreload(associations ...string) RepositoryOption {
	return func(o *repositoryOptions) {
		o.preloads = append(o.preloads, associations...)
	}
}

// GormRepository implements shared.Repository[E] over the model M
type GormRepository[E any, M any, PM Model[E, M]] struct {
	db       *gorm.DB
	name     string
	preloads []string
	columns  map[string]bool
}

// NewGormRepository creates a repository for the model M. It panics when M
// cannot be parsed, which only happens for a malformed model definition.
func NewGormRepository[E any, M any, PM Model[E, M]](db *gorm.DB, opts ...RepositoryOption) *GormRepository[E, M, PM] {
	var o repositoryOptions
	for _, opt := range opts {
		opt(&o)
	}

	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(new(M)); err != nil {
		panic(fmt.Sprintf("persistence: cannot parse model %T: %v", new(M), err))
	}

	return &GormRepository[E, M, PM]{
		db:       db,
		name:     stmt.Schema.Table,
		preloads: o.preloads,
		columns:  columnSet(stmt.Schema),
	}
}

// FindByID finds an entity by its ID
func (r *GormRepository[E, M, PM]) FindByID(ctx context.Context, id int64) (*E, error) {
	var m M
	if err := r.query(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, r.translate(err)
	}
	return PM(&m).ToDomain(), nil
}

// FindAll finds all entities matching the filter, one page at a time
func (r *GormRepository[E, M, PM]) FindAll(ctx context.Context, filter shared.Filter) ([]E, error) {
	filter = filter.Normalize()
	q, err := r.applyFilter(r.query(ctx), filter)
	if err != nil {
		return nil, err
	}

	orderBy := ValidateSortField(columnName(r.db.NamingStrategy, filter.OrderBy), r.columns, "id")
	q = q.Order(clause.OrderByColumn{
		Column: clause.Column{Name: orderBy},
		Desc:   ValidateSortOrder(filter.OrderDir) == "DESC",
	})

	var rows []M
	if err := q.Offset(filter.Offset()).Limit(filter.PageSize).Find(&rows).Error; err != nil {
		return nil, r.translate(err)
	}

	entities := make([]E, 0, len(rows))
	for i := range rows {
		entities = append(entities, *PM(&rows[i]).ToDomain())
	}
	return entities, nil
}

// Count counts entities matching the filter
func (r *GormRepository[E, M, PM]) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	q, err := r.applyFilter(r.db.WithContext(ctx).Model(new(M)), filter)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, r.translate(err)
	}
	return count, nil
}

// Save creates the entity when it has no ID and updates its row otherwise.
// Only the entity's own columns and foreign keys are written; related rows
// are never inserted or updated through it.
func (r *GormRepository[E, M, PM]) Save(ctx context.Context, entity *E) error {
	m := PM(new(M))
	m.FromDomain(entity)

	var result *gorm.DB
	if isNew(entity) {
		result = r.db.WithContext(ctx).Omit(clause.Associations).Create(m)
	} else {
		result = r.db.WithContext(ctx).Model(m).
			Select("*").
			Omit(clause.Associations, "created_at").
			Updates(m)
		if result.Error == nil && result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
	}
	if result.Error != nil {
		return r.translateWrite(result.Error)
	}

	*entity = *m.ToDomain()
	return nil
}

// Delete removes the entity's row
func (r *GormRepository[E, M, PM]) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(new(M), "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return shared.NewDomainError(shared.ErrInUse.Code,
				fmt.Sprintf("%s %d is still referenced by other records", r.name, id))
		}
		return r.translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormRepository[E, M, PM]) query(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	return q
}

// applyFilter adds one equality condition per filter entry. Unknown
// columns are rejected rather than ignored.
func (r *GormRepository[E, M, PM]) applyFilter(q *gorm.DB, filter shared.Filter) (*gorm.DB, error) {
	for name, value := range filter.Filters {
		col := columnName(r.db.NamingStrategy, name)
		if !r.columns[col] {
			return nil, shared.InvalidInput("Unknown filter field %q", name)
		}
		q = q.Where(clause.Eq{Column: clause.Column{Name: col}, Value: value})
	}
	return q, nil
}

func (r *GormRepository[E, M, PM]) translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	return fmt.Errorf("%s: %w", r.name, err)
}

func (r *GormRepository[E, M, PM]) translateWrite(err error) error {
	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return shared.InvalidInput("A related entity referenced by this %s does not exist", r.name)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.ErrAlreadyExists
	default:
		return r.translate(err)
	}
}

func isNew(entity any) bool {
	if e, ok := entity.(shared.Entity); ok {
		return e.GetID() == 0
	}
	return true
}
