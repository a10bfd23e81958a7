package models

import (
	"github.com/ceilingworks/erp/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// MeasurementModel is the persistence model for the Measurement domain entity.
type MeasurementModel struct {
	BaseModel
	MeasurementName string  `gorm:"type:varchar(100);not null"`
	Description     *string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (MeasurementModel) TableName() string {
	return "measurements"
}

// ToDomain converts the persistence model to a domain Measurement entity.
func (m *MeasurementModel) ToDomain() *catalog.Measurement {
	return &catalog.Measurement{
		BaseEntity:      m.BaseModel.ToDomain(),
		MeasurementName: m.MeasurementName,
		Description:     m.Description,
	}
}

// FromDomain populates the persistence model from a domain Measurement entity.
func (m *MeasurementModel) FromDomain(e *catalog.Measurement) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.MeasurementName = e.MeasurementName
	m.Description = e.Description
}

// MaterialModel is the persistence model for the Material domain entity.
type MaterialModel struct {
	BaseModel
	MaterialName  string                     `gorm:"type:varchar(200);not null"`
	Description   *string                    `gorm:"type:text"`
	UnitPrice     *decimal.Decimal           `gorm:"type:decimal(18,4)"`
	MeasurementID *int64                     `gorm:"index"`
	Measurement   *MeasurementModel          `gorm:"foreignKey:MeasurementID"`
	Images        []AttachedImageModel       `gorm:"foreignKey:MaterialID"`
	Measurements  []MaterialMeasurementModel `gorm:"foreignKey:MaterialID"`
}

// TableName returns the table name for GORM
func (MaterialModel) TableName() string {
	return "materials"
}

// ToDomain converts the persistence model to a domain Material entity.
func (m *MaterialModel) ToDomain() *catalog.Material {
	return &catalog.Material{
		BaseEntity:   m.BaseModel.ToDomain(),
		MaterialName: m.MaterialName,
		Description:  m.Description,
		UnitPrice:    m.UnitPrice,
		Measurement:  toRef[catalog.Measurement](m.MeasurementID, m.Measurement),
		Images:       toDomainSlice[catalog.AttachedImage](m.Images),
		Measurements: toDomainSlice[catalog.MaterialMeasurement](m.Measurements),
	}
}

// FromDomain populates the persistence model from a domain Material entity.
func (m *MaterialModel) FromDomain(e *catalog.Material) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.MaterialName = e.MaterialName
	m.Description = e.Description
	m.UnitPrice = e.UnitPrice
	m.MeasurementID = e.Measurement.IDPtr()
}

// MaterialMeasurementModel is the persistence model for the MaterialMeasurement domain entity.
type MaterialMeasurementModel struct {
	BaseModel
	Value         *decimal.Decimal  `gorm:"type:decimal(18,4)"`
	Notes         *string           `gorm:"type:text"`
	MaterialID    *int64            `gorm:"index"`
	Material      *MaterialModel    `gorm:"foreignKey:MaterialID"`
	MeasurementID *int64            `gorm:"index"`
	Measurement   *MeasurementModel `gorm:"foreignKey:MeasurementID"`
}

// TableName returns the table name for GORM
func (MaterialMeasurementModel) TableName() string {
	return "material_measurements"
}

// ToDomain converts the persistence model to a domain MaterialMeasurement entity.
func (m *MaterialMeasurementModel) ToDomain() *catalog.MaterialMeasurement {
	return &catalog.MaterialMeasurement{
		BaseEntity:  m.BaseModel.ToDomain(),
		Value:       m.Value,
		Notes:       m.Notes,
		Material:    toRef[catalog.Material](m.MaterialID, m.Material),
		Measurement: toRef[catalog.Measurement](m.MeasurementID, m.Measurement),
	}
}

// FromDomain populates the persistence model from a domain MaterialMeasurement entity.
func (m *MaterialMeasurementModel) FromDomain(e *catalog.MaterialMeasurement) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.Value = e.Value
	m.Notes = e.Notes
	m.MaterialID = e.Material.IDPtr()
	m.MeasurementID = e.Measurement.IDPtr()
}

// ServiceModel is the persistence model for the Service domain entity.
type ServiceModel struct {
	BaseModel
	ServiceName   string            `gorm:"type:varchar(200);not null"`
	Description   *string           `gorm:"type:text"`
	UnitPrice     *decimal.Decimal  `gorm:"type:decimal(18,4)"`
	MeasurementID *int64            `gorm:"index"`
	Measurement   *MeasurementModel `gorm:"foreignKey:MeasurementID"`
}

// TableName returns the table name for GORM
func (ServiceModel) TableName() string {
	return "services"
}

// ToDomain converts the persistence model to a domain Service entity.
func (m *ServiceModel) ToDomain() *catalog.Service {
	return &catalog.Service{
		BaseEntity:  m.BaseModel.ToDomain(),
		ServiceName: m.ServiceName,
		Description: m.Description,
		UnitPrice:   m.UnitPrice,
		Measurement: toRef[catalog.Measurement](m.MeasurementID, m.Measurement),
	}
}

// FromDomain populates the persistence model from a domain Service entity.
func (m *ServiceModel) FromDomain(e *catalog.Service) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.ServiceName = e.ServiceName
	m.Description = e.Description
	m.UnitPrice = e.UnitPrice
	m.MeasurementID = e.Measurement.IDPtr()
}

// AttachedImageModel is the persistence model for the AttachedImage domain entity.
// Image is empty when the bytes live in object storage under StorageKey.
type AttachedImageModel struct {
	BaseModel
	Image            []byte
	ImageContentType *string        `gorm:"type:varchar(100)"`
	Caption          *string        `gorm:"type:varchar(500)"`
	StorageKey       *string        `gorm:"type:varchar(300)"`
	MaterialID       *int64         `gorm:"index"`
	Material         *MaterialModel `gorm:"foreignKey:MaterialID"`
}

// TableName returns the table name for GORM
func (AttachedImageModel) TableName() string {
	return "attached_images"
}

// ToDomain converts the persistence model to a domain AttachedImage entity.
func (m *AttachedImageModel) ToDomain() *catalog.AttachedImage {
	return &catalog.AttachedImage{
		BaseEntity:       m.BaseModel.ToDomain(),
		Image:            m.Image,
		ImageContentType: m.ImageContentType,
		Caption:          m.Caption,
		StorageKey:       m.StorageKey,
		Material:         toRef[catalog.Material](m.MaterialID, m.Material),
	}
}

// FromDomain populates the persistence model from a domain AttachedImage entity.
func (m *AttachedImageModel) FromDomain(e *catalog.AttachedImage) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.Image = e.Image
	m.ImageContentType = e.ImageContentType
	m.Caption = e.Caption
	m.StorageKey = e.StorageKey
	m.MaterialID = e.Material.IDPtr()
}
