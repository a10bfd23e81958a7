package models

import (
	"time"

	"github.com/ceilingworks/erp/internal/domain/catalog"
	"github.com/ceilingworks/erp/internal/domain/facility"
	"github.com/ceilingworks/erp/internal/domain/inventory"
	"github.com/ceilingworks/erp/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// MaterialAvailabilityModel is the persistence model for the MaterialAvailability domain entity.
type MaterialAvailabilityModel struct {
	BaseModel
	Quantity   *decimal.Decimal `gorm:"type:decimal(18,4)"`
	CountedOn  *time.Time
	MaterialID *int64         `gorm:"index"`
	Material   *MaterialModel `gorm:"foreignKey:MaterialID"`
	ZoneID     *int64         `gorm:"index"`
	Zone       *ZoneModel     `gorm:"foreignKey:ZoneID"`
}

// TableName returns the table name for GORM
func (MaterialAvailabilityModel) TableName() string {
	return "material_availabilities"
}

// ToDomain converts the persistence model to a domain MaterialAvailability entity.
func (m *MaterialAvailabilityModel) ToDomain() *inventory.MaterialAvailability {
	return &inventory.MaterialAvailability{
		BaseEntity: m.BaseModel.ToDomain(),
		Quantity:   m.Quantity,
		CountedOn:  m.CountedOn,
		Material:   toRef[catalog.Material](m.MaterialID, m.Material),
		Zone:       toRef[facility.Zone](m.ZoneID, m.Zone),
	}
}

// FromDomain populates the persistence model from a domain MaterialAvailability entity.
func (m *MaterialAvailabilityModel) FromDomain(e *inventory.MaterialAvailability) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.Quantity = e.Quantity
	m.CountedOn = e.CountedOn
	m.MaterialID = e.Material.IDPtr()
	m.ZoneID = e.Zone.IDPtr()
}

// ServiceAvailabilityModel is the persistence model for the ServiceAvailability domain entity.
type ServiceAvailabilityModel struct {
	BaseModel
	DateFrom   *time.Time
	DateTo     *time.Time
	ServiceID  *int64         `gorm:"index"`
	Service    *ServiceModel  `gorm:"foreignKey:ServiceID"`
	EmployeeID *int64         `gorm:"index"`
	Employee   *EmployeeModel `gorm:"foreignKey:EmployeeID"`
}

// TableName returns the table name for GORM
func (ServiceAvailabilityModel) TableName() string {
	return "service_availabilities"
}

// ToDomain converts the persistence model to a domain ServiceAvailability entity.
func (m *ServiceAvailabilityModel) ToDomain() *inventory.ServiceAvailability {
	return &inventory.ServiceAvailability{
		BaseEntity: m.BaseModel.ToDomain(),
		DateFrom:   m.DateFrom,
		DateTo:     m.DateTo,
		Service:    toRef[catalog.Service](m.ServiceID, m.Service),
		Employee:   toRef[partner.Employee](m.EmployeeID, m.Employee),
	}
}

// FromDomain populates the persistence model from a domain ServiceAvailability entity.
func (m *ServiceAvailabilityModel) FromDomain(e *inventory.ServiceAvailability) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.DateFrom = e.DateFrom
	m.DateTo = e.DateTo
	m.ServiceID = e.Service.IDPtr()
	m.EmployeeID = e.Employee.IDPtr()
}

// MaterialRequestModel is the persistence model for the MaterialRequest domain entity.
type MaterialRequestModel struct {
	BaseModel
	RequestSummary string           `gorm:"type:varchar(200);not null"`
	Quantity       *decimal.Decimal `gorm:"type:decimal(18,4)"`
	RequestedOn    *time.Time
	Status         *string        `gorm:"type:varchar(20)"`
	MaterialID     *int64         `gorm:"index"`
	Material       *MaterialModel `gorm:"foreignKey:MaterialID"`
	RequesterID    *int64         `gorm:"index"`
	Requester      *EmployeeModel `gorm:"foreignKey:RequesterID"`
	FacilityID     *int64         `gorm:"index"`
	Facility       *FacilityModel `gorm:"foreignKey:FacilityID"`
}

// TableName returns the table name for GORM
func (MaterialRequestModel) TableName() string {
	return "material_requests"
}

// ToDomain converts the persistence model to a domain MaterialRequest entity.
func (m *MaterialRequestModel) ToDomain() *inventory.MaterialRequest {
	return &inventory.MaterialRequest{
		BaseEntity:     m.BaseModel.ToDomain(),
		RequestSummary: m.RequestSummary,
		Quantity:       m.Quantity,
		RequestedOn:    m.RequestedOn,
		Status:         enumPtr[inventory.MaterialRequestStatus](m.Status),
		Material:       toRef[catalog.Material](m.MaterialID, m.Material),
		Requester:      toRef[partner.Employee](m.RequesterID, m.Requester),
		Facility:       toRef[facility.Facility](m.FacilityID, m.Facility),
	}
}

// FromDomain populates the persistence model from a domain MaterialRequest entity.
func (m *MaterialRequestModel) FromDomain(e *inventory.MaterialRequest) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.RequestSummary = e.RequestSummary
	m.Quantity = e.Quantity
	m.RequestedOn = e.RequestedOn
	m.Status = enumString(e.Status)
	m.MaterialID = e.Material.IDPtr()
	m.RequesterID = e.Requester.IDPtr()
	m.FacilityID = e.Facility.IDPtr()
}

// MaterialArrivalModel is the persistence model for the MaterialArrival domain entity.
type MaterialArrivalModel struct {
	BaseModel
	ArrivalSummary string           `gorm:"type:varchar(200);not null"`
	Quantity       *decimal.Decimal `gorm:"type:decimal(18,4)"`
	ArrivedOn      *time.Time
	Notes          *string               `gorm:"type:text"`
	MaterialID     *int64                `gorm:"index"`
	Material       *MaterialModel        `gorm:"foreignKey:MaterialID"`
	RequestID      *int64                `gorm:"index"`
	Request        *MaterialRequestModel `gorm:"foreignKey:RequestID"`
	ZoneID         *int64                `gorm:"index"`
	Zone           *ZoneModel            `gorm:"foreignKey:ZoneID"`
}

// TableName returns the table name for GORM
func (MaterialArrivalModel) TableName() string {
	return "material_arrivals"
}

// ToDomain converts the persistence model to a domain MaterialArrival entity.
func (m *MaterialArrivalModel) ToDomain() *inventory.MaterialArrival {
	return &inventory.MaterialArrival{
		BaseEntity:     m.BaseModel.ToDomain(),
		ArrivalSummary: m.ArrivalSummary,
		Quantity:       m.Quantity,
		ArrivedOn:      m.ArrivedOn,
		Notes:          m.Notes,
		Material:       toRef[catalog.Material](m.MaterialID, m.Material),
		Request:        toRef[inventory.MaterialRequest](m.RequestID, m.Request),
		Zone:           toRef[facility.Zone](m.ZoneID, m.Zone),
	}
}

// FromDomain populates the persistence model from a domain MaterialArrival entity.
func (m *MaterialArrivalModel) FromDomain(e *inventory.MaterialArrival) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.ArrivalSummary = e.ArrivalSummary
	m.Quantity = e.Quantity
	m.ArrivedOn = e.ArrivedOn
	m.Notes = e.Notes
	m.MaterialID = e.Material.IDPtr()
	m.RequestID = e.Request.IDPtr()
	m.ZoneID = e.Zone.IDPtr()
}
