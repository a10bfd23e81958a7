package trade

import (
	"time"

	"github.com/ceilingworks/erp/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Customer order DTOs
// =============================================================================

// CustomerOrderDTO is the transfer object of a customer order. Its
// materials and services are served by the order's listings.
type CustomerOrderDTO struct {
	ID                      *int64             `json:"id,omitempty"`
	OrderSummary            *string            `json:"orderSummary,omitempty" binding:"omitempty,max=200"`
	OrderDate               *time.Time         `json:"orderDate,omitempty"`
	DueDate                 *time.Time         `json:"dueDate,omitempty"`
	Address                 *string            `json:"address,omitempty" binding:"omitempty,max=500"`
	Status                  *trade.OrderStatus `json:"status,omitempty" binding:"omitempty,order_status"`
	Notes                   *string            `json:"notes,omitempty"`
	CustomerID              *int64             `json:"customerId,omitempty"`
	CustomerCustomerSummary *string            `json:"customerCustomerSummary,omitempty"`
	ManagerID               *int64             `json:"managerId,omitempty"`
	ManagerEmployeeName     *string            `json:"managerEmployeeName,omitempty"`
	FacilityID              *int64             `json:"facilityId,omitempty"`
	FacilityFacilityName    *string            `json:"facilityFacilityName,omitempty"`
}

// GetID returns the id, nil for a customer order not yet stored
func (d *CustomerOrderDTO) GetID() *int64 { return d.ID }

// SetID sets the id
func (d *CustomerOrderDTO) SetID(id *int64) { d.ID = id }

// OrderMaterialDTO is the transfer object of an order material line
type OrderMaterialDTO struct {
	ID                   *int64           `json:"id,omitempty"`
	Quantity             *decimal.Decimal `json:"quantity,omitempty"`
	UnitPrice            *decimal.Decimal `json:"unitPrice,omitempty"`
	Notes                *string          `json:"notes,omitempty"`
	OrderID              *int64           `json:"orderId,omitempty"`
	OrderOrderSummary    *string          `json:"orderOrderSummary,omitempty"`
	MaterialID           *int64           `json:"materialId,omitempty"`
	MaterialMaterialName *string          `json:"materialMaterialName,omitempty"`
}

// GetID returns the id, nil for an order material not yet stored
func (d *OrderMaterialDTO) GetID() *int64 { return d.ID }

// SetID sets the id
func (d *OrderMaterialDTO) SetID(id *int64) { d.ID = id }

// OrderServiceDTO is the transfer object of an order service line
type OrderServiceDTO struct {
	ID                 *int64           `json:"id,omitempty"`
	Quantity           *decimal.Decimal `json:"quantity,omitempty"`
	UnitPrice          *decimal.Decimal `json:"unitPrice,omitempty"`
	Notes              *string          `json:"notes,omitempty"`
	OrderID            *int64           `json:"orderId,omitempty"`
	OrderOrderSummary  *string          `json:"orderOrderSummary,omitempty"`
	ServiceID          *int64           `json:"serviceId,omitempty"`
	ServiceServiceName *string          `json:"serviceServiceName,omitempty"`
}

// GetID returns the id, nil for an order service not yet stored
func (d *OrderServiceDTO) GetID() *int64 { return d.ID }

// SetID sets the id
func (d *OrderServiceDTO) SetID(id *int64) { d.ID = id }

// =============================================================================
// Reservation DTOs
// =============================================================================

// MaterialReserveDTO is the transfer object of a material reserve. Its
// relations carry ids only.
type MaterialReserveDTO struct {
	ID              *int64                       `json:"id,omitempty"`
	Quantity        *decimal.Decimal             `json:"quantity,omitempty"`
	ReservedOn      *time.Time                   `json:"reservedOn,omitempty"`
	Status          *trade.MaterialReserveStatus `json:"status,omitempty" binding:"omitempty,material_reserve_status"`
	OrderMaterialID *int64                       `json:"orderMaterialId,omitempty"`
	AvailabilityID  *int64                       `json:"availabilityId,omitempty"`
}

// GetID returns the id, nil for a material reserve not yet stored
func (d *MaterialReserveDTO) GetID() *int64 { return d.ID }

// SetID sets the id
func (d *MaterialReserveDTO) SetID(id *int64) { d.ID = id }

// ServiceQuotaDTO is the transfer object of a service quota. Its relations
// carry ids only.
type ServiceQuotaDTO struct {
	ID             *int64                      `json:"id,omitempty"`
	DateFrom       *time.Time                  `json:"dateFrom,omitempty"`
	DateTo         *time.Time                  `json:"dateTo,omitempty"`
	Status         *trade.ServiceQuotingStatus `json:"status,omitempty" binding:"omitempty,service_quoting_status"`
	OrderServiceID *int64                      `json:"orderServiceId,omitempty"`
	AvailabilityID *int64                      `json:"availabilityId,omitempty"`
}

// GetID returns the id, nil for a service quota not yet stored
func (d *ServiceQuotaDTO) GetID() *int64 { return d.ID }

// SetID sets the id
func (d *ServiceQuotaDTO) SetID(id *int64) { d.ID = id }

// =============================================================================
// Feedback DTOs
// =============================================================================

// FeedbackDTO is the transfer object of customer feedback
type FeedbackDTO struct {
	ID                      *int64     `json:"id,omitempty"`
	Rating                  *int       `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	Comment                 *string    `json:"comment,omitempty" binding:"omitempty,max=2000"`
	SubmittedOn             *time.Time `json:"submittedOn,omitempty"`
	OrderID                 *int64     `json:"orderId,omitempty"`
	OrderOrderSummary       *string    `json:"orderOrderSummary,omitempty"`
	CustomerID              *int64     `json:"customerId,omitempty"`
	CustomerCustomerSummary *string    `json:"customerCustomerSummary,omitempty"`
}

// GetID returns the id, nil for a feedback not yet stored
func (d *FeedbackDTO) GetID() *int64 { return d.ID }

// SetID sets the id
func (d *FeedbackDTO) SetID(id *int64) { d.ID = id }
