package crud

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ceilingworks/erp/internal/domain/shared"
	"go.uber.org/zap"
)

type entity[E any] interface {
	*E
	GetID() int64
	SetID(id int64)
	Validate() error
}

type transfer[D any] interface {
	*D
	GetID() *int64
	SetID(id *int64)
}

// Option configures a Service
type Option func(*options)

type options struct {
	cache       Cache
	logger      *zap.Logger
	collections map[string]string
}

// WithCache enables caching of single-entity reads and collection listings
func WithCache(c Cache) Option {
	return func(o *options) {
		if c != nil {
			o.cache = c
		}
	}
}

// WithLogger sets the logger used for cache failures
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCollection registers a collection region listing this entity by the
// given foreign key column, e.g. ("facility.zones", "facility_id").
func WithCollection(region, column string) Option {
	return func(o *options) {
		o.collections[region] = column
	}
}

// Service implements create, update, partial update, read, list and delete
// for one entity type on top of its repository and projection.
type Service[E any, D any, PE entity[E], PD transfer[D]] struct {
	name        string
	repo        shared.Repository[E]
	projection  Projection[E, D]
	cache       Cache
	logger      *zap.Logger
	collections map[string]string

	// writes counts cache invalidations. A read fills the cache only if no
	// invalidation happened while it ran. Other processes sharing the cache
	// are bounded by the region TTL.
	mu     sync.Mutex
	writes uint64
}

// NewService creates a Service. name is the entity's cache region and
// appears in error messages.
func NewService[E any, D any, PE entity[E], PD transfer[D]](
	name string,
	repo shared.Repository[E],
	projection Projection[E, D],
	opts ...Option,
) *Service[E, D, PE, PD] {
	o := options{
		cache:       noCache{},
		logger:      zap.NewNop(),
		collections: make(map[string]string),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Service[E, D, PE, PD]{
		name:        name,
		repo:        repo,
		projection:  projection,
		cache:       o.cache,
		logger:      o.logger.With(zap.String("resource", name)),
		collections: o.collections,
	}
}

// Name returns the entity name the service was created with
func (s *Service[E, D, PE, PD]) Name() string {
	return s.name
}

// Create stores a new entity. The DTO must not carry an id.
func (s *Service[E, D, PE, PD]) Create(ctx context.Context, dto *D) (*D, error) {
	if dto == nil {
		return nil, shared.InvalidInput("Request body is required")
	}
	if PD(dto).GetID() != nil {
		return nil, shared.InvalidInput("A new %s cannot already have an ID", s.name)
	}

	e := s.projection.ToEntity(dto)
	if err := PE(e).Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, e); err != nil {
		return nil, fmt.Errorf("create %s: %w", s.name, err)
	}
	gen := s.invalidate(func() { s.clearCollections(ctx) })
	return s.reload(ctx, PE(e).GetID(), gen)
}

// Update replaces every attribute of the entity id with the DTO's
func (s *Service[E, D, PE, PD]) Update(ctx context.Context, id int64, dto *D) (*D, error) {
	if err := s.checkID(id, dto); err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	e := s.projection.ToEntity(dto)
	if err := PE(e).Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, e); err != nil {
		return nil, fmt.Errorf("update %s: %w", s.name, err)
	}
	return s.reload(ctx, id, s.evict(ctx, id))
}

// Patch merges the attributes present in the DTO into the stored entity
func (s *Service[E, D, PE, PD]) Patch(ctx context.Context, id int64, dto *D) (*D, error) {
	if err := s.checkID(id, dto); err != nil {
		return nil, err
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.projection.Patch(existing, dto)
	if err := PE(existing).Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, fmt.Errorf("patch %s: %w", s.name, err)
	}
	return s.reload(ctx, id, s.evict(ctx, id))
}

// Get returns the entity id, served from cache when possible
func (s *Service[E, D, PE, PD]) Get(ctx context.Context, id int64) (*D, error) {
	if cached := s.cached(ctx, s.name, id); cached != nil {
		var dto D
		if err := json.Unmarshal(cached, &dto); err == nil {
			return &dto, nil
		}
	}
	return s.reload(ctx, id, s.generation())
}

// List returns one page of entities and the total number of matches
func (s *Service[E, D, PE, PD]) List(ctx context.Context, filter shared.Filter) ([]D, int64, error) {
	filter = filter.Normalize()
	entities, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return s.projection.ToDTOs(entities), total, nil
}

// Related lists every entity of a registered collection region that
// belongs to parentID, e.g. the zones of facility 4.
func (s *Service[E, D, PE, PD]) Related(ctx context.Context, region string, parentID int64) ([]D, error) {
	column, ok := s.collections[region]
	if !ok {
		return nil, fmt.Errorf("%s: unknown collection %q", s.name, region)
	}
	if cached := s.cached(ctx, region, parentID); cached != nil {
		var dtos []D
		if err := json.Unmarshal(cached, &dtos); err == nil {
			return dtos, nil
		}
	}

	gen := s.generation()
	filter := shared.DefaultFilter().Where(column, parentID)
	filter.PageSize = shared.MaxPageSize
	var dtos []D
	for {
		entities, err := s.repo.FindAll(ctx, filter)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, s.projection.ToDTOs(entities)...)
		if len(entities) < filter.PageSize {
			break
		}
		filter.Page++
	}
	if dtos == nil {
		dtos = []D{}
	}
	s.storeIfCurrent(ctx, region, parentID, dtos, gen)
	return dtos, nil
}

// Delete removes the entity id
func (s *Service[E, D, PE, PD]) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.evict(ctx, id)
	return nil
}

func (s *Service[E, D, PE, PD]) checkID(id int64, dto *D) error {
	if dto == nil {
		return shared.InvalidInput("Request body is required")
	}
	bodyID := PD(dto).GetID()
	if bodyID == nil {
		return shared.InvalidInput("Invalid id")
	}
	if *bodyID != id {
		return shared.InvalidInput("Invalid ID")
	}
	return nil
}

// reload reads the stored row so that labels reflect the current state
// of related entities, and refreshes the cache unless a write happened
// after gen.
func (s *Service[E, D, PE, PD]) reload(ctx context.Context, id int64, gen uint64) (*D, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := s.projection.ToDTO(e)
	s.storeIfCurrent(ctx, s.name, id, dto, gen)
	return dto, nil
}

func (s *Service[E, D, PE, PD]) generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// invalidate runs drop as a write and returns the generation it started
func (s *Service[E, D, PE, PD]) invalidate(drop func()) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	drop()
	return s.writes
}

func (s *Service[E, D, PE, PD]) storeIfCurrent(ctx context.Context, region string, key int64, v any, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writes != gen {
		return
	}
	s.store(ctx, region, key, v)
}

func (s *Service[E, D, PE, PD]) cached(ctx context.Context, region string, key int64) []byte {
	data, ok, err := s.cache.Get(ctx, region, key)
	if err != nil {
		s.logger.Warn("cache read failed", zap.String("region", region), zap.Int64("key", key), zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	return data
}

func (s *Service[E, D, PE, PD]) store(ctx context.Context, region string, key int64, v any) {
	data, err := json.Marshal(v)
	if err == nil {
		err = s.cache.Set(ctx, region, key, data)
	}
	if err != nil {
		s.logger.Warn("cache write failed", zap.String("region", region), zap.Int64("key", key), zap.Error(err))
	}
}

func (s *Service[E, D, PE, PD]) evict(ctx context.Context, id int64) uint64 {
	return s.invalidate(func() {
		if err := s.cache.Evict(ctx, s.name, id); err != nil {
			s.logger.Warn("cache evict failed", zap.String("region", s.name), zap.Int64("key", id), zap.Error(err))
		}
		s.clearCollections(ctx)
	})
}

func (s *Service[E, D, PE, PD]) clearCollections(ctx context.Context) {
	for region := range s.collections {
		if err := s.cache.Clear(ctx, region); err != nil {
			s.logger.Warn("cache clear failed", zap.String("region", region), zap.Error(err))
		}
	}
}
