package catalog

import "github.com/shopspring/decimal"

// =============================================================================
// Measurement DTOs
// =============================================================================

// MeasurementDTO is the transfer object of a measurement
type MeasurementDTO struct {
	ID              *int64  `json:"id,omitempty"`
	MeasurementName *string `json:"measurementName,omitempty" binding:"omitempty,max=100"`
	Description     *string `json:"description,omitempty"`
}

// GetID returns the id, nil for a measurement not yet stored
func (d *MeasurementDTO) GetID() *int64 { return d.ID }

// SetID sets the id
func (d *MeasurementDTO) SetID(id *int64) { d.ID = id }

// MaterialMeasurementDTO is the transfer object of a measured material value
type MaterialMeasurementDTO struct {
	ID                         *int64           `json:"id,omitempty"`
	Value                      *decimal.Decimal `json:"value,omitempty"`
	Notes                      *string          `json:"notes,omitempty"`
	MaterialID                 *int64           `json:"materialId,omitempty"`
	MaterialMaterialName       *string          `json:"materialMaterialName,omitempty"`
	MeasurementID              *int64           `json:"measurementId,omitempty"`
	MeasurementMeasurementName *string          `json:"measurementMeasurementName,omitempty"`
}

// GetID returns the id, nil for a material measurement not yet stored
func (d *MaterialMeasurementDTO) GetID() *int64 { return d.ID }

// SetID sets the id
func (d *MaterialMeasurementDTO) SetID(id *int64) { d.ID = id }

// =============================================================================
// Material and Service DTOs
// =============================================================================

// MaterialDTO is the transfer object of a material. Images and measurements
// are served by the material's listings.
type MaterialDTO struct {
	ID                         *int64           `json:"id,omitempty"`
	MaterialName               *string          `json:"materialName,omitempty" binding:"omitempty,max=200"`
	Description                *string          `json:"description,omitempty"`
	UnitPrice                  *decimal.Decimal `json:"unitPrice,omitempty"`
	MeasurementID              *int64           `json:"measurementId,omitempty"`
	MeasurementMeasurementName *string          `json:"measurementMeasurementName,omitempty"`
}

// GetID returns the id, nil for a material not yet stored
func (d *MaterialDTO) GetID() *int64 { return d.ID }

// SetID sets the id
func (d *MaterialDTO) SetID(id *int64) { d.ID = id }

// ServiceDTO is the transfer object of a service
type ServiceDTO struct {
	ID                         *int64           `json:"id,omitempty"`
	ServiceName                *string          `json:"serviceName,omitempty" binding:"omitempty,max=200"`
	Description                *string          `json:"description,omitempty"`
	UnitPrice                  *decimal.Decimal `json:"unitPrice,omitempty"`
	MeasurementID              *int64           `json:"measurementId,omitempty"`
	MeasurementMeasurementName *string          `json:"measurementMeasurementName,omitempty"`
}

// GetID returns the id, nil for a service not yet stored
func (d *ServiceDTO) GetID() *int64 { return d.ID }

// SetID sets the id
func (d *ServiceDTO) SetID(id *int64) { d.ID = id }

// =============================================================================
// Attached image DTOs
// =============================================================================

// AttachedImageDTO is the transfer object of a material image. Image is
// base64 in JSON.
type AttachedImageDTO struct {
	ID                   *int64  `json:"id,omitempty"`
	Image                []byte  `json:"image,omitempty"`
	ImageContentType     *string `json:"imageContentType,omitempty" binding:"omitempty,max=100"`
	Caption              *string `json:"caption,omitempty" binding:"omitempty,max=500"`
	StorageKey           *string `json:"storageKey,omitempty"`
	MaterialID           *int64  `json:"materialId,omitempty"`
	MaterialMaterialName *string `json:"materialMaterialName,omitempty"`
}

// GetID returns the id, nil for an attached image not yet stored
func (d *AttachedImageDTO) GetID() *int64 { return d.ID }

// SetID sets the id
func (d *AttachedImageDTO) SetID(id *int64) { d.ID = id }
