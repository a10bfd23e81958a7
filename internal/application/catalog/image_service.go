package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/ceilingworks/erp/internal/application/crud"
	"github.com/ceilingworks/erp/internal/domain/catalog"
	"github.com/ceilingworks/erp/internal/domain/shared"
	"github.com/ceilingworks/erp/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ObjectStorage keeps image bytes outside the database
type ObjectStorage interface {
	Upload(ctx context.Context, storageKey string, data []byte, contentType string) error
	Download(ctx context.Context, storageKey string) ([]byte, error)
	DeleteObject(ctx context.Context, storageKey string) error
}

// AttachedImageService is the CRUD service of attached images
type AttachedImageService = crud.Service[catalog.AttachedImage, AttachedImageDTO, *catalog.AttachedImage, *AttachedImageDTO]

// ImageService attaches uploaded pictures to materials and serves their bytes.
// Without object storage the bytes are kept inline in the image row.
type ImageService struct {
	images    *AttachedImageService
	storage   ObjectStorage
	keyPrefix string
	logger    *zap.Logger
}

// ImageServiceOption configures an ImageService
type ImageServiceOption func(*ImageService)

// WithObjectStorage offloads image bytes to s under keyPrefix
func WithObjectStorage(s ObjectStorage, keyPrefix string) ImageServiceOption {
	return func(svc *ImageService) {
		svc.storage = s
		svc.keyPrefix = keyPrefix
	}
}

// WithImageLogger sets the logger
func WithImageLogger(l *zap.Logger) ImageServiceOption {
	return func(svc *ImageService) {
		if l != nil {
			svc.logger = l
		}
	}
}

// NewImageService creates an ImageService over the attached image CRUD service
func NewImageService(images *AttachedImageService, opts ...ImageServiceOption) *ImageService {
	svc := &ImageService{
		images: images,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Upload attaches data to the material materialID. The material is referenced
// by id only; a missing material is reported by the store's foreign key check.
func (s *ImageService) Upload(ctx context.Context, materialID int64, data []byte, contentType string, caption *string) (dto *AttachedImageDTO, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "image", "upload",
		"material_id", materialID, "size", len(data), "offloaded", s.storage != nil)
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if len(data) == 0 {
		return nil, shared.InvalidInput("Image file is required")
	}
	if len(data) > catalog.MaxImageSize {
		return nil, shared.Validation("image cannot exceed %d bytes", catalog.MaxImageSize)
	}
	contentType = imageContentType(data, contentType)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, shared.Validation("imageContentType must be an image type")
	}

	dto = &AttachedImageDTO{
		ImageContentType: &contentType,
		Caption:          caption,
		MaterialID:       &materialID,
	}

	if s.storage == nil {
		dto.Image = data
		return s.images.Create(ctx, dto)
	}

	key := s.storageKey(materialID)
	if err := s.storage.Upload(ctx, key, data, contentType); err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}
	dto.StorageKey = &key

	created, err := s.images.Create(ctx, dto)
	if err != nil {
		s.deleteObject(ctx, key)
		return nil, err
	}
	return created, nil
}

// Content returns the bytes and content type of image id
func (s *ImageService) Content(ctx context.Context, id int64) ([]byte, string, error) {
	img, err := s.images.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}

	contentType := "application/octet-stream"
	if img.ImageContentType != nil {
		contentType = *img.ImageContentType
	}

	if !hasStorageKey(img) {
		if len(img.Image) == 0 {
			return nil, "", noContent()
		}
		return img.Image, contentType, nil
	}
	if s.storage == nil {
		return nil, "", fmt.Errorf("image %d is stored under %q but no object storage is configured", id, *img.StorageKey)
	}
	if !s.ownsKey(img.MaterialID, *img.StorageKey) {
		s.logger.Warn("image references an object outside its material",
			zap.Int64("image_id", id), zap.String("storage_key", *img.StorageKey))
		return nil, "", noContent()
	}

	data, err := s.storage.Download(ctx, *img.StorageKey)
	if err != nil {
		return nil, "", fmt.Errorf("load image %d: %w", id, err)
	}
	return data, contentType, nil
}

// Delete removes image id and its stored object. Objects outside the
// material's key space are left in place.
func (s *ImageService) Delete(ctx context.Context, id int64) error {
	img, err := s.images.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.images.Delete(ctx, id); err != nil {
		return err
	}
	if !hasStorageKey(img) || s.storage == nil {
		return nil
	}
	if !s.ownsKey(img.MaterialID, *img.StorageKey) {
		s.logger.Warn("kept object outside the material of deleted image",
			zap.Int64("image_id", id), zap.String("storage_key", *img.StorageKey))
		return nil
	}
	s.deleteObject(ctx, *img.StorageKey)
	return nil
}

// Name returns the entity name of attached images
func (s *ImageService) Name() string {
	return s.images.Name()
}

// Create stores image metadata sent as JSON. Storage keys are only
// assigned by Upload.
func (s *ImageService) Create(ctx context.Context, dto *AttachedImageDTO) (*AttachedImageDTO, error) {
	if dto != nil && dto.StorageKey != nil {
		return nil, errServerOwnedKey()
	}
	return s.images.Create(ctx, dto)
}

// Update replaces the attributes of image id, keeping its storage key
func (s *ImageService) Update(ctx context.Context, id int64, dto *AttachedImageDTO) (*AttachedImageDTO, error) {
	if dto == nil {
		return s.images.Update(ctx, id, dto)
	}
	stored, err := s.images.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.keepStorageKey(stored, dto, true); err != nil {
		return nil, err
	}
	return s.images.Update(ctx, id, dto)
}

// Patch merges the attributes present in dto into image id, keeping its
// storage key
func (s *ImageService) Patch(ctx context.Context, id int64, dto *AttachedImageDTO) (*AttachedImageDTO, error) {
	if dto == nil {
		return s.images.Patch(ctx, id, dto)
	}
	stored, err := s.images.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.keepStorageKey(stored, dto, false); err != nil {
		return nil, err
	}
	return s.images.Patch(ctx, id, dto)
}

// Get returns image id
func (s *ImageService) Get(ctx context.Context, id int64) (*AttachedImageDTO, error) {
	return s.images.Get(ctx, id)
}

// List returns one page of images
func (s *ImageService) List(ctx context.Context, filter shared.Filter) ([]AttachedImageDTO, int64, error) {
	return s.images.List(ctx, filter)
}

// Related lists the images of a material
func (s *ImageService) Related(ctx context.Context, region string, parentID int64) ([]AttachedImageDTO, error) {
	return s.images.Related(ctx, region, parentID)
}

// keepStorageKey copies the stored key into dto. A stored object is bound to
// its material's key space, so its bytes and material cannot be replaced by a
// JSON write. full is set for a PUT, where an absent material is a change.
func (s *ImageService) keepStorageKey(stored, dto *AttachedImageDTO, full bool) error {
	if dto.StorageKey != nil && (stored.StorageKey == nil || *dto.StorageKey != *stored.StorageKey) {
		return errServerOwnedKey()
	}
	dto.StorageKey = stored.StorageKey
	if !hasStorageKey(stored) {
		return nil
	}

	if dto.Image != nil {
		return shared.InvalidInput("Upload a new image to replace stored image content")
	}
	if full || dto.MaterialID != nil {
		if dto.MaterialID == nil || stored.MaterialID == nil || *dto.MaterialID != *stored.MaterialID {
			return shared.InvalidInput("The material of a stored image cannot change")
		}
	}
	return nil
}

// ownsKey reports whether key lies in the key space Upload assigns to
// materialID
func (s *ImageService) ownsKey(materialID *int64, key string) bool {
	if materialID == nil {
		return false
	}
	rest, ok := strings.CutPrefix(key, s.materialPrefix(*materialID))
	if !ok {
		return false
	}
	_, err := uuid.Parse(rest)
	return err == nil
}

func (s *ImageService) materialPrefix(materialID int64) string {
	return s.keyPrefix + "materials/" + strconv.FormatInt(materialID, 10) + "/"
}

func (s *ImageService) storageKey(materialID int64) string {
	return s.materialPrefix(materialID) + uuid.NewString()
}

func (s *ImageService) deleteObject(ctx context.Context, key string) {
	if err := s.storage.DeleteObject(ctx, key); err != nil {
		s.logger.Warn("failed to delete image object", zap.String("storage_key", key), zap.Error(err))
	}
}

func hasStorageKey(img *AttachedImageDTO) bool {
	return img.StorageKey != nil && *img.StorageKey != ""
}

func noContent() error {
	return shared.NewDomainError(shared.ErrNotFound.Code, "Image has no content")
}

func errServerOwnedKey() error {
	return shared.InvalidInput("storageKey is assigned by the server")
}

// imageContentType trusts the declared type unless it is missing or generic
func imageContentType(data []byte, declared string) string {
	declared = strings.TrimSpace(declared)
	if declared == "" || declared == "application/octet-stream" {
		return http.DetectContentType(data)
	}
	return declared
}
