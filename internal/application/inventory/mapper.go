package inventory

import (
	"github.com/ceilingworks/erp/internal/application/crud"
	"github.com/ceilingworks/erp/internal/domain/catalog"
	"github.com/ceilingworks/erp/internal/domain/facility"
	"github.com/ceilingworks/erp/internal/domain/inventory"
	"github.com/ceilingworks/erp/internal/domain/partner"
	"github.com/ceilingworks/erp/internal/domain/shared"
)

var (
	MaterialAvailabilityProjection = crud.Projection[inventory.MaterialAvailability, MaterialAvailabilityDTO]{
		ToDTO:    ToMaterialAvailabilityDTO,
		ToEntity: MaterialAvailabilityFromDTO,
		Patch:    ApplyMaterialAvailabilityPatch,
	}
	ServiceAvailabilityProjection = crud.Projection[inventory.ServiceAvailability, ServiceAvailabilityDTO]{
		ToDTO:    ToServiceAvailabilityDTO,
		ToEntity: ServiceAvailabilityFromDTO,
		Patch:    ApplyServiceAvailabilityPatch,
	}
	MaterialRequestProjection = crud.Projection[inventory.MaterialRequest, MaterialRequestDTO]{
		ToDTO:    ToMaterialRequestDTO,
		ToEntity: MaterialRequestFromDTO,
		Patch:    ApplyMaterialRequestPatch,
	}
	MaterialArrivalProjection = crud.Projection[inventory.MaterialArrival, MaterialArrivalDTO]{
		ToDTO:    ToMaterialArrivalDTO,
		ToEntity: MaterialArrivalFromDTO,
		Patch:    ApplyMaterialArrivalPatch,
	}
)

// label sources of the related entities
var (
	materialName   = func(m *catalog.Material) string { return m.MaterialName }
	serviceName    = func(s *catalog.Service) string { return s.ServiceName }
	zoneName       = func(z *facility.Zone) string { return z.ZoneName }
	facilityName   = func(f *facility.Facility) string { return f.FacilityName }
	employeeName   = func(e *partner.Employee) string { return e.EmployeeName }
	requestSummary = func(r *inventory.MaterialRequest) string { return r.RequestSummary }
)

// ToMaterialAvailabilityDTO converts a material availability to its transfer object
func ToMaterialAvailabilityDTO(a *inventory.MaterialAvailability) *MaterialAvailabilityDTO {
	if a == nil {
		return nil
	}
	return &MaterialAvailabilityDTO{
		ID:                   shared.IDPtr(a.ID),
		Quantity:             shared.Copy(a.Quantity),
		CountedOn:            shared.Copy(a.CountedOn),
		MaterialID:           a.Material.IDPtr(),
		MaterialMaterialName: shared.RefLabel(a.Material, materialName),
		ZoneID:               a.Zone.IDPtr(),
		ZoneZoneName:         shared.RefLabel(a.Zone, zoneName),
	}
}

// MaterialAvailabilityFromDTO converts a transfer object to a material availability
func MaterialAvailabilityFromDTO(d *MaterialAvailabilityDTO) *inventory.MaterialAvailability {
	if d == nil {
		return nil
	}
	return &inventory.MaterialAvailability{
		BaseEntity: shared.BaseEntity{ID: shared.IDValue(d.ID)},
		Quantity:   shared.Copy(d.Quantity),
		CountedOn:  shared.Copy(d.CountedOn),
		Material:   shared.RefFromID[catalog.Material](d.MaterialID),
		Zone:       shared.RefFromID[facility.Zone](d.ZoneID),
	}
}

// ApplyMaterialAvailabilityPatch copies the fields present in d onto a
func ApplyMaterialAvailabilityPatch(a *inventory.MaterialAvailability, d *MaterialAvailabilityDTO) {
	shared.PatchPtr(&a.Quantity, d.Quantity)
	shared.PatchPtr(&a.CountedOn, d.CountedOn)
	shared.PatchRef(&a.Material, d.MaterialID)
	shared.PatchRef(&a.Zone, d.ZoneID)
}

// ToServiceAvailabilityDTO converts a service availability to its transfer object
func ToServiceAvailabilityDTO(a *inventory.ServiceAvailability) *ServiceAvailabilityDTO {
	if a == nil {
		return nil
	}
	return &ServiceAvailabilityDTO{
		ID:                   shared.IDPtr(a.ID),
		DateFrom:             shared.Copy(a.DateFrom),
		DateTo:               shared.Copy(a.DateTo),
		ServiceID:            a.Service.IDPtr(),
		ServiceServiceName:   shared.RefLabel(a.Service, serviceName),
		EmployeeID:           a.Employee.IDPtr(),
		EmployeeEmployeeName: shared.RefLabel(a.Employee, employeeName),
	}
}

// ServiceAvailabilityFromDTO converts a transfer object to a service availability
func ServiceAvailabilityFromDTO(d *ServiceAvailabilityDTO) *inventory.ServiceAvailability {
	if d == nil {
		return nil
	}
	return &inventory.ServiceAvailability{
		BaseEntity: shared.BaseEntity{ID: shared.IDValue(d.ID)},
		DateFrom:   shared.Copy(d.DateFrom),
		DateTo:     shared.Copy(d.DateTo),
		Service:    shared.RefFromID[catalog.Service](d.ServiceID),
		Employee:   shared.RefFromID[partner.Employee](d.EmployeeID),
	}
}

// ApplyServiceAvailabilityPatch copies the fields present in d onto a
func ApplyServiceAvailabilityPatch(a *inventory.ServiceAvailability, d *ServiceAvailabilityDTO) {
	shared.PatchPtr(&a.DateFrom, d.DateFrom)
	shared.PatchPtr(&a.DateTo, d.DateTo)
	shared.PatchRef(&a.Service, d.ServiceID)
	shared.PatchRef(&a.Employee, d.EmployeeID)
}

// ToMaterialRequestDTO converts a material request to its transfer object
func ToMaterialRequestDTO(r *inventory.MaterialRequest) *MaterialRequestDTO {
	if r == nil {
		return nil
	}
	return &MaterialRequestDTO{
		ID:                    shared.IDPtr(r.ID),
		RequestSummary:        shared.StringPtr(r.RequestSummary),
		Quantity:              shared.Copy(r.Quantity),
		RequestedOn:           shared.Copy(r.RequestedOn),
		Status:                shared.Copy(r.Status),
		MaterialID:            r.Material.IDPtr(),
		MaterialMaterialName:  shared.RefLabel(r.Material, materialName),
		RequesterID:           r.Requester.IDPtr(),
		RequesterEmployeeName: shared.RefLabel(r.Requester, employeeName),
		FacilityID:            r.Facility.IDPtr(),
		FacilityFacilityName:  shared.RefLabel(r.Facility, facilityName),
	}
}

// MaterialRequestFromDTO converts a transfer object to a material request
func MaterialRequestFromDTO(d *MaterialRequestDTO) *inventory.MaterialRequest {
	if d == nil {
		return nil
	}
	return &inventory.MaterialRequest{
		BaseEntity:     shared.BaseEntity{ID: shared.IDValue(d.ID)},
		RequestSummary: shared.StringValue(d.RequestSummary),
		Quantity:       shared.Copy(d.Quantity),
		RequestedOn:    shared.Copy(d.RequestedOn),
		Status:         shared.Copy(d.Status),
		Material:       shared.RefFromID[catalog.Material](d.MaterialID),
		Requester:      shared.RefFromID[partner.Employee](d.RequesterID),
		Facility:       shared.RefFromID[facility.Facility](d.FacilityID),
	}
}

// ApplyMaterialRequestPatch copies the fields present in d onto r
func ApplyMaterialRequestPatch(r *inventory.MaterialRequest, d *MaterialRequestDTO) {
	shared.PatchValue(&r.RequestSummary, d.RequestSummary)
	shared.PatchPtr(&r.Quantity, d.Quantity)
	shared.PatchPtr(&r.RequestedOn, d.RequestedOn)
	shared.PatchPtr(&r.Status, d.Status)
	shared.PatchRef(&r.Material, d.MaterialID)
	shared.PatchRef(&r.Requester, d.RequesterID)
	shared.PatchRef(&r.Facility, d.FacilityID)
}

// ToMaterialArrivalDTO converts a material arrival to its transfer object
func ToMaterialArrivalDTO(a *inventory.MaterialArrival) *MaterialArrivalDTO {
	if a == nil {
		return nil
	}
	return &MaterialArrivalDTO{
		ID:                    shared.IDPtr(a.ID),
		ArrivalSummary:        shared.StringPtr(a.ArrivalSummary),
		Quantity:              shared.Copy(a.Quantity),
		ArrivedOn:             shared.Copy(a.ArrivedOn),
		Notes:                 shared.Copy(a.Notes),
		MaterialID:            a.Material.IDPtr(),
		MaterialMaterialName:  shared.RefLabel(a.Material, materialName),
		RequestID:             a.Request.IDPtr(),
		RequestRequestSummary: shared.RefLabel(a.Request, requestSummary),
		ZoneID:                a.Zone.IDPtr(),
		ZoneZoneName:          shared.RefLabel(a.Zone, zoneName),
	}
}

// MaterialArrivalFromDTO converts a transfer object to a material arrival
func MaterialArrivalFromDTO(d *MaterialArrivalDTO) *inventory.MaterialArrival {
	if d == nil {
		return nil
	}
	return &inventory.MaterialArrival{
		BaseEntity:     shared.BaseEntity{ID: shared.IDValue(d.ID)},
		ArrivalSummary: shared.StringValue(d.ArrivalSummary),
		Quantity:       shared.Copy(d.Quantity),
		ArrivedOn:      shared.Copy(d.ArrivedOn),
		Notes:          shared.Copy(d.Notes),
		Material:       shared.RefFromID[catalog.Material](d.MaterialID),
		Request:        shared.RefFromID[inventory.MaterialRequest](d.RequestID),
		Zone:           shared.RefFromID[facility.Zone](d.ZoneID),
	}
}

// ApplyMaterialArrivalPatch copies the fields present in d onto a
func ApplyMaterialArrivalPatch(a *inventory.MaterialArrival, d *MaterialArrivalDTO) {
	shared.PatchValue(&a.ArrivalSummary, d.ArrivalSummary)
	shared.PatchPtr(&a.Quantity, d.Quantity)
	shared.PatchPtr(&a.ArrivedOn, d.ArrivedOn)
	shared.PatchPtr(&a.Notes, d.Notes)
	shared.PatchRef(&a.Material, d.MaterialID)
	shared.PatchRef(&a.Request, d.RequestID)
	shared.PatchRef(&a.Zone, d.ZoneID)
}
