package models

import (
	"time"

	"github.com/ceilingworks/erp/internal/domain/catalog"
	"github.com/ceilingworks/erp/internal/domain/facility"
	"github.com/ceilingworks/erp/internal/domain/inventory"
	"github.com/ceilingworks/erp/internal/domain/partner"
	"github.com/ceilingworks/erp/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// CustomerOrderModel is the persistence model for the CustomerOrder domain entity.
type CustomerOrderModel struct {
	BaseModel
	OrderSummary string `gorm:"type:varchar(200);not null"`
	OrderDate    *time.Time
	DueDate      *time.Time
	Address      *string              `gorm:"type:varchar(500)"`
	Status       *string              `gorm:"type:varchar(20);index"`
	Notes        *string              `gorm:"type:text"`
	CustomerID   *int64               `gorm:"index"`
	Customer     *CustomerModel       `gorm:"foreignKey:CustomerID"`
	ManagerID    *int64               `gorm:"index"`
	Manager      *EmployeeModel       `gorm:"foreignKey:ManagerID"`
	FacilityID   *int64               `gorm:"index"`
	Facility     *FacilityModel       `gorm:"foreignKey:FacilityID"`
	Materials    []OrderMaterialModel `gorm:"foreignKey:OrderID"`
	Services     []OrderServiceModel  `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (CustomerOrderModel) TableName() string {
	return "customer_orders"
}

// ToDomain converts the persistence model to a domain CustomerOrder entity.
// Order lines are only present when preloaded.
func (m *CustomerOrderModel) ToDomain() *trade.CustomerOrder {
	return &trade.CustomerOrder{
		BaseEntity:   m.BaseModel.ToDomain(),
		OrderSummary: m.OrderSummary,
		OrderDate:    m.OrderDate,
		DueDate:      m.DueDate,
		Address:      m.Address,
		Status:       enumPtr[trade.OrderStatus](m.Status),
		Notes:        m.Notes,
		Customer:     toRef[partner.Customer](m.CustomerID, m.Customer),
		Manager:      toRef[partner.Employee](m.ManagerID, m.Manager),
		Facility:     toRef[facility.Facility](m.FacilityID, m.Facility),
		Materials:    toDomainSlice[trade.OrderMaterial](m.Materials),
		Services:     toDomainSlice[trade.OrderService](m.Services),
	}
}

// FromDomain populates the persistence model from a domain CustomerOrder entity.
// Order lines are stored through their own repositories.
func (m *CustomerOrderModel) FromDomain(e *trade.CustomerOrder) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.OrderSummary = e.OrderSummary
	m.OrderDate = e.OrderDate
	m.DueDate = e.DueDate
	m.Address = e.Address
	m.Status = enumString(e.Status)
	m.Notes = e.Notes
	m.CustomerID = e.Customer.IDPtr()
	m.ManagerID = e.Manager.IDPtr()
	m.FacilityID = e.Facility.IDPtr()
}

// OrderMaterialModel is the persistence model for the OrderMaterial domain entity.
type OrderMaterialModel struct {
	BaseModel
	Quantity   *decimal.Decimal    `gorm:"type:decimal(18,4)"`
	UnitPrice  *decimal.Decimal    `gorm:"type:decimal(18,4)"`
	Notes      *string             `gorm:"type:text"`
	OrderID    *int64              `gorm:"index"`
	Order      *CustomerOrderModel `gorm:"foreignKey:OrderID"`
	MaterialID *int64              `gorm:"index"`
	Material   *MaterialModel      `gorm:"foreignKey:MaterialID"`
}

// TableName returns the table name for GORM
func (OrderMaterialModel) TableName() string {
	return "order_materials"
}

// ToDomain converts the persistence model to a domain OrderMaterial entity.
func (m *OrderMaterialModel) ToDomain() *trade.OrderMaterial {
	return &trade.OrderMaterial{
		BaseEntity: m.BaseModel.ToDomain(),
		Quantity:   m.Quantity,
		UnitPrice:  m.UnitPrice,
		Notes:      m.Notes,
		Order:      toRef[trade.CustomerOrder](m.OrderID, m.Order),
		Material:   toRef[catalog.Material](m.MaterialID, m.Material),
	}
}

// FromDomain populates the persistence model from a domain OrderMaterial entity.
func (m *OrderMaterialModel) FromDomain(e *trade.OrderMaterial) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.Quantity = e.Quantity
	m.UnitPrice = e.UnitPrice
	m.Notes = e.Notes
	m.OrderID = e.Order.IDPtr()
	m.MaterialID = e.Material.IDPtr()
}

// OrderServiceModel is the persistence model for the OrderService domain entity.
type OrderServiceModel struct {
	BaseModel
	Quantity  *decimal.Decimal    `gorm:"type:decimal(18,4)"`
	UnitPrice *decimal.Decimal    `gorm:"type:decimal(18,4)"`
	Notes     *string             `gorm:"type:text"`
	OrderID   *int64              `gorm:"index"`
	Order     *CustomerOrderModel `gorm:"foreignKey:OrderID"`
	ServiceID *int64              `gorm:"index"`
	Service   *ServiceModel       `gorm:"foreignKey:ServiceID"`
}

// TableName returns the table name for GORM
func (OrderServiceModel) TableName() string {
	return "order_services"
}

// ToDomain converts the persistence model to a domain OrderService entity.
func (m *OrderServiceModel) ToDomain() *trade.OrderService {
	return &trade.OrderService{
		BaseEntity: m.BaseModel.ToDomain(),
		Quantity:   m.Quantity,
		UnitPrice:  m.UnitPrice,
		Notes:      m.Notes,
		Order:      toRef[trade.CustomerOrder](m.OrderID, m.Order),
		Service:    toRef[catalog.Service](m.ServiceID, m.Service),
	}
}

// FromDomain populates the persistence model from a domain OrderService entity.
func (m *OrderServiceModel) FromDomain(e *trade.OrderService) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.Quantity = e.Quantity
	m.UnitPrice = e.UnitPrice
	m.Notes = e.Notes
	m.OrderID = e.Order.IDPtr()
	m.ServiceID = e.Service.IDPtr()
}

// MaterialReserveModel is the persistence model for the MaterialReserve domain entity.
type MaterialReserveModel struct {
	BaseModel
	Quantity        *decimal.Decimal `gorm:"type:decimal(18,4)"`
	ReservedOn      *time.Time
	Status          *string                    `gorm:"type:varchar(20)"`
	OrderMaterialID *int64                     `gorm:"index"`
	OrderMaterial   *OrderMaterialModel        `gorm:"foreignKey:OrderMaterialID"`
	AvailabilityID  *int64                     `gorm:"index"`
	Availability    *MaterialAvailabilityModel `gorm:"foreignKey:AvailabilityID"`
}

// TableName returns the table name for GORM
func (MaterialReserveModel) TableName() string {
	return "material_reserves"
}

// ToDomain converts the persistence model to a domain MaterialReserve entity.
func (m *MaterialReserveModel) ToDomain() *trade.MaterialReserve {
	return &trade.MaterialReserve{
		BaseEntity:    m.BaseModel.ToDomain(),
		Quantity:      m.Quantity,
		ReservedOn:    m.ReservedOn,
		Status:        enumPtr[trade.MaterialReserveStatus](m.Status),
		OrderMaterial: toRef[trade.OrderMaterial](m.OrderMaterialID, m.OrderMaterial),
		Availability:  toRef[inventory.MaterialAvailability](m.AvailabilityID, m.Availability),
	}
}

// FromDomain populates the persistence model from a domain MaterialReserve entity.
func (m *MaterialReserveModel) FromDomain(e *trade.MaterialReserve) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.Quantity = e.Quantity
	m.ReservedOn = e.ReservedOn
	m.Status = enumString(e.Status)
	m.OrderMaterialID = e.OrderMaterial.IDPtr()
	m.AvailabilityID = e.Availability.IDPtr()
}

// ServiceQuotaModel is the persistence model for the ServiceQuota domain entity.
type ServiceQuotaModel struct {
	BaseModel
	DateFrom       *time.Time
	DateTo         *time.Time
	Status         *string                   `gorm:"type:varchar(20)"`
	OrderServiceID *int64                    `gorm:"index"`
	OrderService   *OrderServiceModel        `gorm:"foreignKey:OrderServiceID"`
	AvailabilityID *int64                    `gorm:"index"`
	Availability   *ServiceAvailabilityModel `gorm:"foreignKey:AvailabilityID"`
}

// TableName returns the table name for GORM
func (ServiceQuotaModel) TableName() string {
	return "service_quotas"
}

// ToDomain converts the persistence model to a domain ServiceQuota entity.
func (m *ServiceQuotaModel) ToDomain() *trade.ServiceQuota {
	return &trade.ServiceQuota{
		BaseEntity:   m.BaseModel.ToDomain(),
		DateFrom:     m.DateFrom,
		DateTo:       m.DateTo,
		Status:       enumPtr[trade.ServiceQuotingStatus](m.Status),
		OrderService: toRef[trade.OrderService](m.OrderServiceID, m.OrderService),
		Availability: toRef[inventory.ServiceAvailability](m.AvailabilityID, m.Availability),
	}
}

// FromDomain populates the persistence model from a domain ServiceQuota entity.
func (m *ServiceQuotaModel) FromDomain(e *trade.ServiceQuota) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.DateFrom = e.DateFrom
	m.DateTo = e.DateTo
	m.Status = enumString(e.Status)
	m.OrderServiceID = e.OrderService.IDPtr()
	m.AvailabilityID = e.Availability.IDPtr()
}

// FeedbackModel is the persistence model for the Feedback domain entity.
type FeedbackModel struct {
	BaseModel
	Rating      *int
	Comment     *string `gorm:"type:text"`
	SubmittedOn *time.Time
	OrderID     *int64              `gorm:"index"`
	Order       *CustomerOrderModel `gorm:"foreignKey:OrderID"`
	CustomerID  *int64              `gorm:"index"`
	Customer    *CustomerModel      `gorm:"foreignKey:CustomerID"`
}

// TableName returns the table name for GORM
func (FeedbackModel) TableName() string {
	return "feedbacks"
}

// ToDomain converts the persistence model to a domain Feedback entity.
func (m *FeedbackModel) ToDomain() *trade.Feedback {
	return &trade.Feedback{
		BaseEntity:  m.BaseModel.ToDomain(),
		Rating:      m.Rating,
		Comment:     m.Comment,
		SubmittedOn: m.SubmittedOn,
		Order:       toRef[trade.CustomerOrder](m.OrderID, m.Order),
		Customer:    toRef[partner.Customer](m.CustomerID, m.Customer),
	}
}

// FromDomain populates the persistence model from a domain Feedback entity.
func (m *FeedbackModel) FromDomain(e *trade.Feedback) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.Rating = e.Rating
	m.Comment = e.Comment
	m.SubmittedOn = e.SubmittedOn
	m.OrderID = e.Order.IDPtr()
	m.CustomerID = e.Customer.IDPtr()
}
