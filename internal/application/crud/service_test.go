package crud_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ceilingworks/erp/internal/application/crud"
	partnerapp "github.com/ceilingworks/erp/internal/application/partner"
	"github.com/ceilingworks/erp/internal/domain/partner"
	"github.com/ceilingworks/erp/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test doubles
// =============================================================================

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id int64) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, c *partner.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mapCache struct {
	data    map[string]map[int64][]byte
	cleared []string
	failGet bool
}

func newMapCache() *mapCache {
	return &mapCache{data: make(map[string]map[int64][]byte)}
}

func (c *mapCache) Get(_ context.Context, region string, key int64) ([]byte, bool, error) {
	if c.failGet {
		return nil, false, errors.New("cache down")
	}
	v, ok := c.data[region][key]
	return v, ok, nil
}

func (c *mapCache) Set(_ context.Context, region string, key int64, value []byte) error {
	if c.data[region] == nil {
		c.data[region] = make(map[int64][]byte)
	}
	c.data[region][key] = value
	return nil
}

func (c *mapCache) Evict(_ context.Context, region string, key int64) error {
	delete(c.data[region], key)
	return nil
}

func (c *mapCache) Clear(_ context.Context, region string) error {
	delete(c.data, region)
	c.cleared = append(c.cleared, region)
	return nil
}

func newCustomerService(repo *MockCustomerRepository, opts ...crud.Option) *crud.Service[partner.Customer, partnerapp.CustomerDTO, *partner.Customer, *partnerapp.CustomerDTO] {
	return crud.NewService[partner.Customer, partnerapp.CustomerDTO]("customer", repo, partnerapp.CustomerProjection, opts...)
}

func ptr[T any](v T) *T { return &v }

func assertCode(t *testing.T, err error, code, message string) {
	t.Helper()
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr), "expected a domain error, got %v", err)
	assert.Equal(t, code, domainErr.Code)
	if message != "" {
		assert.Equal(t, message, domainErr.Message)
	}
}

// =============================================================================
// Create / Update / Patch
// =============================================================================

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and re-reads", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		svc := newCustomerService(repo)
		repo.On("Save", ctx, mock.MatchedBy(func(c *partner.Customer) bool {
			return c.ID == 0 && c.CustomerSummary == "ACME"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*partner.Customer).ID = 10
		}).Return(nil)
		repo.On("FindByID", ctx, int64(10)).Return(&partner.Customer{BaseEntity: shared.BaseEntity{ID: 10}, CustomerSummary: "ACME"}, nil)

		got, err := svc.Create(ctx, &partnerapp.CustomerDTO{CustomerSummary: ptr("ACME")})

		require.NoError(t, err)
		assert.Equal(t, ptr(int64(10)), got.ID)
		repo.AssertExpectations(t)
	})

	t.Run("rejects an id", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		svc := newCustomerService(repo)

		_, err := svc.Create(ctx, &partnerapp.CustomerDTO{ID: ptr(int64(1)), CustomerSummary: ptr("ACME")})

		assertCode(t, err, "INVALID_INPUT", "A new customer cannot already have an ID")
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects an invalid entity", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		svc := newCustomerService(repo)

		_, err := svc.Create(ctx, &partnerapp.CustomerDTO{})

		assertCode(t, err, "VALIDATION_ERROR", "customerSummary is required")
	})

	t.Run("clears collection regions", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		cache := newMapCache()
		svc := newCustomerService(repo, crud.WithCache(cache), crud.WithCollection("region.customers", "region_id"))
		repo.On("Save", ctx, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*partner.Customer).ID = 3
		}).Return(nil)
		repo.On("FindByID", ctx, int64(3)).Return(&partner.Customer{BaseEntity: shared.BaseEntity{ID: 3}, CustomerSummary: "B"}, nil)

		_, err := svc.Create(ctx, &partnerapp.CustomerDTO{CustomerSummary: ptr("B")})

		require.NoError(t, err)
		assert.Equal(t, []string{"region.customers"}, cache.cleared)
		assert.Contains(t, cache.data["customer"], int64(3))
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		pathID  int64
		dto     *partnerapp.CustomerDTO
		message string
	}{
		{"missing body id", 5, &partnerapp.CustomerDTO{CustomerSummary: ptr("A")}, "Invalid id"},
		{"mismatched id", 5, &partnerapp.CustomerDTO{ID: ptr(int64(6)), CustomerSummary: ptr("A")}, "Invalid ID"},
		{"nil body", 5, nil, "Request body is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockCustomerRepository)
			svc := newCustomerService(repo)

			_, err := svc.Update(ctx, tt.pathID, tt.dto)

			assertCode(t, err, "INVALID_INPUT", tt.message)
			repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}

	t.Run("unknown id", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		svc := newCustomerService(repo)
		repo.On("FindByID", ctx, int64(5)).Return(nil, shared.ErrNotFound)

		_, err := svc.Update(ctx, 5, &partnerapp.CustomerDTO{ID: ptr(int64(5)), CustomerSummary: ptr("A")})

		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})

	t.Run("replaces every attribute", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		svc := newCustomerService(repo)
		stored := &partner.Customer{BaseEntity: shared.BaseEntity{ID: 5}, CustomerSummary: "Old", Notes: ptr("dropped")}
		repo.On("FindByID", ctx, int64(5)).Return(stored, nil).Once()
		repo.On("Save", ctx, mock.MatchedBy(func(c *partner.Customer) bool {
			return c.ID == 5 && c.CustomerSummary == "New" && c.Notes == nil
		})).Return(nil)
		repo.On("FindByID", ctx, int64(5)).Return(&partner.Customer{BaseEntity: shared.BaseEntity{ID: 5}, CustomerSummary: "New"}, nil).Once()

		got, err := svc.Update(ctx, 5, &partnerapp.CustomerDTO{ID: ptr(int64(5)), CustomerSummary: ptr("New")})

		require.NoError(t, err)
		assert.Equal(t, ptr("New"), got.CustomerSummary)
		assert.Nil(t, got.Notes)
		repo.AssertExpectations(t)
	})
}

func TestService_Patch(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCustomerRepository)
	cache := newMapCache()
	svc := newCustomerService(repo, crud.WithCache(cache))
	cache.data["customer"] = map[int64][]byte{5: []byte(`{"id":5,"customerSummary":"stale"}`)}

	stored := &partner.Customer{BaseEntity: shared.BaseEntity{ID: 5}, CustomerSummary: "ACME", Notes: ptr("kept")}
	repo.On("FindByID", ctx, int64(5)).Return(stored, nil).Once()
	repo.On("Save", ctx, mock.MatchedBy(func(c *partner.Customer) bool {
		return c.CustomerSummary == "ACME" && *c.Notes == "kept" && *c.Phone == "555"
	})).Return(nil)
	repo.On("FindByID", ctx, int64(5)).Return(&partner.Customer{BaseEntity: shared.BaseEntity{ID: 5}, CustomerSummary: "ACME", Notes: ptr("kept"), Phone: ptr("555")}, nil).Once()

	got, err := svc.Patch(ctx, 5, &partnerapp.CustomerDTO{ID: ptr(int64(5)), Phone: ptr("555")})

	require.NoError(t, err)
	assert.Equal(t, ptr("555"), got.Phone)
	assert.Equal(t, ptr("kept"), got.Notes)
	assert.NotContains(t, string(cache.data["customer"][5]), "stale")
	repo.AssertExpectations(t)
}

// =============================================================================
// Reads
// =============================================================================

func TestService_Get_UsesCache(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCustomerRepository)
	cache := newMapCache()
	svc := newCustomerService(repo, crud.WithCache(cache))
	repo.On("FindByID", ctx, int64(1)).Return(&partner.Customer{BaseEntity: shared.BaseEntity{ID: 1}, CustomerSummary: "ACME"}, nil).Once()

	first, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	second, err := svc.Get(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	repo.AssertNumberOfCalls(t, "FindByID", 1)
}

func TestService_Get_CacheFailureFallsBack(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCustomerRepository)
	cache := newMapCache()
	cache.failGet = true
	svc := newCustomerService(repo, crud.WithCache(cache))
	repo.On("FindByID", ctx, int64(1)).Return(&partner.Customer{BaseEntity: shared.BaseEntity{ID: 1}, CustomerSummary: "ACME"}, nil)

	got, err := svc.Get(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, ptr("ACME"), got.CustomerSummary)
}

func TestService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCustomerRepository)
	svc := newCustomerService(repo)
	repo.On("FindByID", ctx, int64(404)).Return(nil, shared.ErrNotFound)

	_, err := svc.Get(ctx, 404)

	assertCode(t, err, "NOT_FOUND", "")
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCustomerRepository)
	svc := newCustomerService(repo)
	filter := shared.Filter{Page: 2, PageSize: 1}
	normalized := filter.Normalize()
	repo.On("FindAll", ctx, normalized).Return([]partner.Customer{{BaseEntity: shared.BaseEntity{ID: 2}, CustomerSummary: "B"}}, nil)
	repo.On("Count", ctx, normalized).Return(int64(3), nil)

	items, total, err := svc.List(ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 1)
	assert.Equal(t, ptr("B"), items[0].CustomerSummary)
}

func TestService_Related(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCustomerRepository)
	cache := newMapCache()
	svc := newCustomerService(repo, crud.WithCache(cache), crud.WithCollection("region.customers", "region_id"))
	repo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Filters["region_id"] == int64(9) && f.PageSize == shared.MaxPageSize
	})).Return([]partner.Customer{{BaseEntity: shared.BaseEntity{ID: 1}, CustomerSummary: "A"}}, nil).Once()

	first, err := svc.Related(ctx, "region.customers", 9)
	require.NoError(t, err)
	second, err := svc.Related(ctx, "region.customers", 9)
	require.NoError(t, err)

	assert.Len(t, first, 1)
	assert.Equal(t, first, second)
	repo.AssertNumberOfCalls(t, "FindAll", 1)

	_, err = svc.Related(ctx, "region.unknown", 9)
	assert.Error(t, err)
}

func TestService_RelatedReadsEveryPage(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCustomerRepository)
	svc := newCustomerService(repo, crud.WithCollection("region.customers", "region_id"))

	full := make([]partner.Customer, shared.MaxPageSize)
	for i := range full {
		full[i] = partner.Customer{BaseEntity: shared.BaseEntity{ID: int64(i + 1)}}
	}
	onPage := func(page int) any {
		return mock.MatchedBy(func(f shared.Filter) bool { return f.Page == page })
	}
	repo.On("FindAll", ctx, onPage(1)).Return(full, nil).Once()
	repo.On("FindAll", ctx, onPage(2)).Return([]partner.Customer{{BaseEntity: shared.BaseEntity{ID: 5000}}}, nil).Once()

	items, err := svc.Related(ctx, "region.customers", 9)

	require.NoError(t, err)
	assert.Len(t, items, shared.MaxPageSize+1)
	assert.Equal(t, ptr(int64(5000)), items[shared.MaxPageSize].ID)
	repo.AssertExpectations(t)
}

func TestService_ReadDoesNotCacheAcrossWrite(t *testing.T) {
	ctx := context.Background()

	t.Run("get", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		cache := newMapCache()
		svc := newCustomerService(repo, crud.WithCache(cache))
		repo.On("Delete", ctx, int64(7)).Return(nil)
		// the row is deleted between the read and the cache fill
		repo.On("FindByID", ctx, int64(7)).
			Run(func(mock.Arguments) { require.NoError(t, svc.Delete(ctx, 7)) }).
			Return(&partner.Customer{BaseEntity: shared.BaseEntity{ID: 7}, CustomerSummary: "Old"}, nil).Once()

		got, err := svc.Get(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, ptr("Old"), got.CustomerSummary)
		assert.NotContains(t, cache.data["customer"], int64(7))
	})

	t.Run("related", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		cache := newMapCache()
		svc := newCustomerService(repo, crud.WithCache(cache), crud.WithCollection("region.customers", "region_id"))
		repo.On("Delete", ctx, int64(1)).Return(nil)
		repo.On("FindAll", ctx, mock.Anything).
			Run(func(mock.Arguments) { require.NoError(t, svc.Delete(ctx, 1)) }).
			Return([]partner.Customer{{BaseEntity: shared.BaseEntity{ID: 1}}}, nil).Once()

		_, err := svc.Related(ctx, "region.customers", 9)

		require.NoError(t, err)
		assert.NotContains(t, cache.data["region.customers"], int64(9))
	})

	t.Run("later reads fill again", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		cache := newMapCache()
		svc := newCustomerService(repo, crud.WithCache(cache))
		repo.On("Delete", ctx, int64(3)).Return(nil)
		require.NoError(t, svc.Delete(ctx, 3))
		repo.On("FindByID", ctx, int64(8)).Return(&partner.Customer{BaseEntity: shared.BaseEntity{ID: 8}}, nil).Once()

		_, err := svc.Get(ctx, 8)

		require.NoError(t, err)
		assert.Contains(t, cache.data["customer"], int64(8))
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCustomerRepository)
	cache := newMapCache()
	cache.data["customer"] = map[int64][]byte{4: []byte(`{}`)}
	svc := newCustomerService(repo, crud.WithCache(cache))
	repo.On("Delete", ctx, int64(4)).Return(nil)
	repo.On("Delete", ctx, int64(5)).Return(shared.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, 4))
	assert.NotContains(t, cache.data["customer"], int64(4))
	assert.True(t, errors.Is(svc.Delete(ctx, 5), shared.ErrNotFound))
}
