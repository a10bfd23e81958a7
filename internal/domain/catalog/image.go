package catalog

import (
	"strings"

	"github.com/ceilingworks/erp/internal/domain/shared"
)

// MaxImageSize is the largest accepted image payload in bytes
const MaxImageSize = 10 << 20

// AttachedImage is a picture of a material. Its bytes live either inline in
// Image or in object storage under StorageKey.
type AttachedImage struct {
	shared.BaseEntity
	Image            []byte
	ImageContentType *string
	Caption          *string
	StorageKey       *string
	Material         shared.Ref[Material]
}

// Validate checks the image's attribute constraints
func (i *AttachedImage) Validate() error {
	if len(i.Image) > MaxImageSize {
		return shared.Validation("image cannot exceed %d bytes", MaxImageSize)
	}
	if len(i.Image) > 0 && i.ImageContentType == nil {
		return shared.Validation("imageContentType is required when image is set")
	}
	if i.ImageContentType != nil && !strings.HasPrefix(*i.ImageContentType, "image/") {
		return shared.Validation("imageContentType must be an image type")
	}
	return shared.MaxLength("caption", i.Caption, 500)
}

// IsOffloaded reports whether the bytes live in object storage
func (i *AttachedImage) IsOffloaded() bool {
	return i.StorageKey != nil && *i.StorageKey != ""
}
