package catalog

import (
	"github.com/ceilingworks/erp/internal/application/crud"
	"github.com/ceilingworks/erp/internal/domain/catalog"
	"github.com/ceilingworks/erp/internal/domain/shared"
)

var (
	MeasurementProjection = crud.Projection[catalog.Measurement, MeasurementDTO]{
		ToDTO:    ToMeasurementDTO,
		ToEntity: MeasurementFromDTO,
		Patch:    ApplyMeasurementPatch,
	}
	MaterialMeasurementProjection = crud.Projection[catalog.MaterialMeasurement, MaterialMeasurementDTO]{
		ToDTO:    ToMaterialMeasurementDTO,
		ToEntity: MaterialMeasurementFromDTO,
		Patch:    ApplyMaterialMeasurementPatch,
	}
	MaterialProjection = crud.Projection[catalog.Material, MaterialDTO]{
		ToDTO:    ToMaterialDTO,
		ToEntity: MaterialFromDTO,
		Patch:    ApplyMaterialPatch,
	}
	ServiceProjection = crud.Projection[catalog.Service, ServiceDTO]{
		ToDTO:    ToServiceDTO,
		ToEntity: ServiceFromDTO,
		Patch:    ApplyServicePatch,
	}
	AttachedImageProjection = crud.Projection[catalog.AttachedImage, AttachedImageDTO]{
		ToDTO:    ToAttachedImageDTO,
		ToEntity: AttachedImageFromDTO,
		Patch:    ApplyAttachedImagePatch,
	}
)

func measurementName(m *catalog.Measurement) string { return m.MeasurementName }
func materialName(m *catalog.Material) string       { return m.MaterialName }

// ToMeasurementDTO converts a measurement to its transfer object
func ToMeasurementDTO(m *catalog.Measurement) *MeasurementDTO {
	if m == nil {
		return nil
	}
	return &MeasurementDTO{
		ID:              shared.IDPtr(m.ID),
		MeasurementName: shared.StringPtr(m.MeasurementName),
		Description:     shared.Copy(m.Description),
	}
}

// MeasurementFromDTO converts a transfer object to a measurement
func MeasurementFromDTO(d *MeasurementDTO) *catalog.Measurement {
	if d == nil {
		return nil
	}
	return &catalog.Measurement{
		BaseEntity:      shared.BaseEntity{ID: shared.IDValue(d.ID)},
		MeasurementName: shared.StringValue(d.MeasurementName),
		Description:     shared.Copy(d.Description),
	}
}

// ApplyMeasurementPatch copies the fields present in d onto m
func ApplyMeasurementPatch(m *catalog.Measurement, d *MeasurementDTO) {
	shared.PatchValue(&m.MeasurementName, d.MeasurementName)
	shared.PatchPtr(&m.Description, d.Description)
}

// ToMaterialMeasurementDTO converts a material measurement to its transfer object
func ToMaterialMeasurementDTO(m *catalog.MaterialMeasurement) *MaterialMeasurementDTO {
	if m == nil {
		return nil
	}
	return &MaterialMeasurementDTO{
		ID:                         shared.IDPtr(m.ID),
		Value:                      shared.Copy(m.Value),
		Notes:                      shared.Copy(m.Notes),
		MaterialID:                 m.Material.IDPtr(),
		MaterialMaterialName:       shared.RefLabel(m.Material, materialName),
		MeasurementID:              m.Measurement.IDPtr(),
		MeasurementMeasurementName: shared.RefLabel(m.Measurement, measurementName),
	}
}

// MaterialMeasurementFromDTO converts a transfer object to a material measurement
func MaterialMeasurementFromDTO(d *MaterialMeasurementDTO) *catalog.MaterialMeasurement {
	if d == nil {
		return nil
	}
	return &catalog.MaterialMeasurement{
		BaseEntity:  shared.BaseEntity{ID: shared.IDValue(d.ID)},
		Value:       shared.Copy(d.Value),
		Notes:       shared.Copy(d.Notes),
		Material:    shared.RefFromID[catalog.Material](d.MaterialID),
		Measurement: shared.RefFromID[catalog.Measurement](d.MeasurementID),
	}
}

// ApplyMaterialMeasurementPatch copies the fields present in d onto m
func ApplyMaterialMeasurementPatch(m *catalog.MaterialMeasurement, d *MaterialMeasurementDTO) {
	shared.PatchPtr(&m.Value, d.Value)
	shared.PatchPtr(&m.Notes, d.Notes)
	shared.PatchRef(&m.Material, d.MaterialID)
	shared.PatchRef(&m.Measurement, d.MeasurementID)
}

// ToMaterialDTO converts a material to its transfer object
func ToMaterialDTO(m *catalog.Material) *MaterialDTO {
	if m == nil {
		return nil
	}
	return &MaterialDTO{
		ID:                         shared.IDPtr(m.ID),
		MaterialName:               shared.StringPtr(m.MaterialName),
		Description:                shared.Copy(m.Description),
		UnitPrice:                  shared.Copy(m.UnitPrice),
		MeasurementID:              m.Measurement.IDPtr(),
		MeasurementMeasurementName: shared.RefLabel(m.Measurement, measurementName),
	}
}

// MaterialFromDTO converts a transfer object to a material. Images and
// Measurements stay nil.
func MaterialFromDTO(d *MaterialDTO) *catalog.Material {
	if d == nil {
		return nil
	}
	return &catalog.Material{
		BaseEntity:   shared.BaseEntity{ID: shared.IDValue(d.ID)},
		MaterialName: shared.StringValue(d.MaterialName),
		Description:  shared.Copy(d.Description),
		UnitPrice:    shared.Copy(d.UnitPrice),
		Measurement:  shared.RefFromID[catalog.Measurement](d.MeasurementID),
	}
}

// ApplyMaterialPatch copies the fields present in d onto m
func ApplyMaterialPatch(m *catalog.Material, d *MaterialDTO) {
	shared.PatchValue(&m.MaterialName, d.MaterialName)
	shared.PatchPtr(&m.Description, d.Description)
	shared.PatchPtr(&m.UnitPrice, d.UnitPrice)
	shared.PatchRef(&m.Measurement, d.MeasurementID)
}

// ToServiceDTO converts a service to its transfer object
func ToServiceDTO(s *catalog.Service) *ServiceDTO {
	if s == nil {
		return nil
	}
	return &ServiceDTO{
		ID:                         shared.IDPtr(s.ID),
		ServiceName:                shared.StringPtr(s.ServiceName),
		Description:                shared.Copy(s.Description),
		UnitPrice:                  shared.Copy(s.UnitPrice),
		MeasurementID:              s.Measurement.IDPtr(),
		MeasurementMeasurementName: shared.RefLabel(s.Measurement, measurementName),
	}
}

// ServiceFromDTO converts a transfer object to a service
func ServiceFromDTO(d *ServiceDTO) *catalog.Service {
	if d == nil {
		return nil
	}
	return &catalog.Service{
		BaseEntity:  shared.BaseEntity{ID: shared.IDValue(d.ID)},
		ServiceName: shared.StringValue(d.ServiceName),
		Description: shared.Copy(d.Description),
		UnitPrice:   shared.Copy(d.UnitPrice),
		Measurement: shared.RefFromID[catalog.Measurement](d.MeasurementID),
	}
}

// ApplyServicePatch copies the fields present in d onto s
func ApplyServicePatch(s *catalog.Service, d *ServiceDTO) {
	shared.PatchValue(&s.ServiceName, d.ServiceName)
	shared.PatchPtr(&s.Description, d.Description)
	shared.PatchPtr(&s.UnitPrice, d.UnitPrice)
	shared.PatchRef(&s.Measurement, d.MeasurementID)
}

// ToAttachedImageDTO converts an image to its transfer object
func ToAttachedImageDTO(i *catalog.AttachedImage) *AttachedImageDTO {
	if i == nil {
		return nil
	}
	return &AttachedImageDTO{
		ID:                   shared.IDPtr(i.ID),
		Image:                shared.CopyBytes(i.Image),
		ImageContentType:     shared.Copy(i.ImageContentType),
		Caption:              shared.Copy(i.Caption),
		StorageKey:           shared.Copy(i.StorageKey),
		MaterialID:           i.Material.IDPtr(),
		MaterialMaterialName: shared.RefLabel(i.Material, materialName),
	}
}

// AttachedImageFromDTO converts a transfer object to an image
func AttachedImageFromDTO(d *AttachedImageDTO) *catalog.AttachedImage {
	if d == nil {
		return nil
	}
	return &catalog.AttachedImage{
		BaseEntity:       shared.BaseEntity{ID: shared.IDValue(d.ID)},
		Image:            shared.CopyBytes(d.Image),
		ImageContentType: shared.Copy(d.ImageContentType),
		Caption:          shared.Copy(d.Caption),
		StorageKey:       shared.Copy(d.StorageKey),
		Material:         shared.RefFromID[catalog.Material](d.MaterialID),
	}
}

// ApplyAttachedImagePatch copies the fields present in d onto i. A present
// image replaces the bytes together with any storage key.
func ApplyAttachedImagePatch(i *catalog.AttachedImage, d *AttachedImageDTO) {
	if d.Image != nil {
		i.Image = shared.CopyBytes(d.Image)
		i.StorageKey = shared.Copy(d.StorageKey)
	} else {
		shared.PatchPtr(&i.StorageKey, d.StorageKey)
	}
	shared.PatchPtr(&i.ImageContentType, d.ImageContentType)
	shared.PatchPtr(&i.Caption, d.Caption)
	shared.PatchRef(&i.Material, d.MaterialID)
}
