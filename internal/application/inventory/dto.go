package inventory

import (
	"time"

	"github.com/ceilingworks/erp/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// MaterialAvailabilityDTO is the transfer object of counted stock
type MaterialAvailabilityDTO struct {
	ID                   *int64           `json:"id,omitempty"`
	Quantity             *decimal.Decimal `json:"quantity,omitempty"`
	CountedOn            *time.Time       `json:"countedOn,omitempty"`
	MaterialID           *int64           `json:"materialId,omitempty"`
	MaterialMaterialName *string          `json:"materialMaterialName,omitempty"`
	ZoneID               *int64           `json:"zoneId,omitempty"`
	ZoneZoneName         *string          `json:"zoneZoneName,omitempty"`
}

// GetID returns the id, nil for a material availability not yet stored
func (d *MaterialAvailabilityDTO) GetID() *int64 { return d.ID }

// SetID sets the id
func (d *MaterialAvailabilityDTO) SetID(id *int64) { d.ID = id }

// ServiceAvailabilityDTO is the transfer object of an employee's availability window
type ServiceAvailabilityDTO struct {
	ID                   *int64     `json:"id,omitempty"`
	DateFrom             *time.Time `json:"dateFrom,omitempty"`
	DateTo               *time.Time `json:"dateTo,omitempty"`
	ServiceID            *int64     `json:"serviceId,omitempty"`
	ServiceServiceName   *string    `json:"serviceServiceName,omitempty"`
	EmployeeID           *int64     `json:"employeeId,omitempty"`
	EmployeeEmployeeName *string    `json:"employeeEmployeeName,omitempty"`
}

// GetID returns the id, nil for a service availability not yet stored
func (d *ServiceAvailabilityDTO) GetID() *int64 { return d.ID }

// SetID sets the id
func (d *ServiceAvailabilityDTO) SetID(id *int64) { d.ID = id }

// MaterialRequestDTO is the transfer object of a material request
type MaterialRequestDTO struct {
	ID                    *int64                           `json:"id,omitempty"`
	RequestSummary        *string                          `json:"requestSummary,omitempty" binding:"omitempty,max=200"`
	Quantity              *decimal.Decimal                 `json:"quantity,omitempty"`
	RequestedOn           *time.Time                       `json:"requestedOn,omitempty"`
	Status                *inventory.MaterialRequestStatus `json:"status,omitempty" binding:"omitempty,material_request_status"`
	MaterialID            *int64                           `json:"materialId,omitempty"`
	MaterialMaterialName  *string                          `json:"materialMaterialName,omitempty"`
	RequesterID           *int64                           `json:"requesterId,omitempty"`
	RequesterEmployeeName *string                          `json:"requesterEmployeeName,omitempty"`
	FacilityID            *int64                           `json:"facilityId,omitempty"`
	FacilityFacilityName  *string                          `json:"facilityFacilityName,omitempty"`
}

// GetID returns the id, nil for a material request not yet stored
func (d *MaterialRequestDTO) GetID() *int64 { return d.ID }

// SetID sets the id
func (d *MaterialRequestDTO) SetID(id *int64) { d.ID = id }

// MaterialArrivalDTO is the transfer object of a delivery
type MaterialArrivalDTO struct {
	ID                    *int64           `json:"id,omitempty"`
	ArrivalSummary        *string          `json:"arrivalSummary,omitempty" binding:"omitempty,max=200"`
	Quantity              *decimal.Decimal `json:"quantity,omitempty"`
	ArrivedOn             *time.Time       `json:"arrivedOn,omitempty"`
	Notes                 *string          `json:"notes,omitempty"`
	MaterialID            *int64           `json:"materialId,omitempty"`
	MaterialMaterialName  *string          `json:"materialMaterialName,omitempty"`
	RequestID             *int64           `json:"requestId,omitempty"`
	RequestRequestSummary *string          `json:"requestRequestSummary,omitempty"`
	ZoneID                *int64           `json:"zoneId,omitempty"`
	ZoneZoneName          *string          `json:"zoneZoneName,omitempty"`
}

// GetID returns the id, nil for a material arrival not yet stored
func (d *MaterialArrivalDTO) GetID() *int64 { return d.ID }

// SetID sets the id
func (d *MaterialArrivalDTO) SetID(id *int64) { d.ID = id }
