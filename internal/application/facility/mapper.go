package facility

import (
	"github.com/ceilingworks/erp/internal/application/crud"
	"github.com/ceilingworks/erp/internal/domain/facility"
	"github.com/ceilingworks/erp/internal/domain/shared"
)

var (
	FacilityProjection = crud.Projection[facility.Facility, FacilityDTO]{
		ToDTO:    ToFacilityDTO,
		ToEntity: FacilityFromDTO,
		Patch:    ApplyFacilityPatch,
	}
	ZoneProjection = crud.Projection[facility.Zone, ZoneDTO]{
		ToDTO:    ToZoneDTO,
		ToEntity: ZoneFromDTO,
		Patch:    ApplyZonePatch,
	}
)

func facilityName(f *facility.Facility) string { return f.FacilityName }

// ToFacilityDTO converts a facility to its transfer object
func ToFacilityDTO(f *facility.Facility) *FacilityDTO {
	if f == nil {
		return nil
	}
	return &FacilityDTO{
		ID:           shared.IDPtr(f.ID),
		FacilityName: shared.StringPtr(f.FacilityName),
		Address:      shared.Copy(f.Address),
		Description:  shared.Copy(f.Description),
	}
}

// FacilityFromDTO never fills Zones
func FacilityFromDTO(d *FacilityDTO) *facility.Facility {
	if d == nil {
		return nil
	}
	return &facility.Facility{
		BaseEntity:   shared.BaseEntity{ID: shared.IDValue(d.ID)},
		FacilityName: shared.StringValue(d.FacilityName),
		Address:      shared.Copy(d.Address),
		Description:  shared.Copy(d.Description),
	}
}

// ApplyFacilityPatch copies the fields present in d onto f
func ApplyFacilityPatch(f *facility.Facility, d *FacilityDTO) {
	shared.PatchValue(&f.FacilityName, d.FacilityName)
	shared.PatchPtr(&f.Address, d.Address)
	shared.PatchPtr(&f.Description, d.Description)
}

// ToZoneDTO converts a zone to its transfer object
func ToZoneDTO(z *facility.Zone) *ZoneDTO {
	if z == nil {
		return nil
	}
	return &ZoneDTO{
		ID:                   shared.IDPtr(z.ID),
		ZoneName:             shared.StringPtr(z.ZoneName),
		Description:          shared.Copy(z.Description),
		FacilityID:           z.Facility.IDPtr(),
		FacilityFacilityName: shared.RefLabel(z.Facility, facilityName),
	}
}

// ZoneFromDTO converts a transfer object to a zone
func ZoneFromDTO(d *ZoneDTO) *facility.Zone {
	if d == nil {
		return nil
	}
	return &facility.Zone{
		BaseEntity:  shared.BaseEntity{ID: shared.IDValue(d.ID)},
		ZoneName:    shared.StringValue(d.ZoneName),
		Description: shared.Copy(d.Description),
		Facility:    shared.RefFromID[facility.Facility](d.FacilityID),
	}
}

// ApplyZonePatch copies the fields present in d onto z
func ApplyZonePatch(z *facility.Zone, d *ZoneDTO) {
	shared.PatchValue(&z.ZoneName, d.ZoneName)
	shared.PatchPtr(&z.Description, d.Description)
	shared.PatchRef(&z.Facility, d.FacilityID)
}
