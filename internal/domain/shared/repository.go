package shared

import "context"

// Repository is the persistence contract of every entity
type Repository[T any] interface {
	FindByID(ctx context.Context, id int64) (*T, error)
	FindAll(ctx context.Context, filter Filter) ([]T, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id int64) error
}

// Filter represents query filter options. Filters holds column equality
// conditions, e.g. {"facility_id": int64(4)}.
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Filters  map[string]any
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 1000
)

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: DefaultPageSize,
		OrderBy:  "id",
		OrderDir: "asc",
		Filters:  make(map[string]any),
	}
}

// Where returns a copy of f with an additional equality condition
func (f Filter) Where(column string, value any) Filter {
	filters := make(map[string]any, len(f.Filters)+1)
	for k, v := range f.Filters {
		filters[k] = v
	}
	filters[column] = value
	f.Filters = filters
	return f
}

// Normalize clamps paging values into their valid ranges
func (f Filter) Normalize() Filter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
	if f.OrderDir != "desc" {
		f.OrderDir = "asc"
	}
	return f
}

// Offset returns the number of rows skipped by the filter's page
func (f Filter) Offset() int {
	return (f.Page - 1) * f.PageSize
}
