package trade

import (
	"time"

	"github.com/ceilingworks/erp/internal/domain/inventory"
	"github.com/ceilingworks/erp/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MaterialReserve holds counted stock for an order material line
type MaterialReserve struct {
	shared.BaseEntity
	Quantity      *decimal.Decimal
	ReservedOn    *time.Time
	Status        *MaterialReserveStatus
	OrderMaterial shared.Ref[OrderMaterial]
	Availability  shared.Ref[inventory.MaterialAvailability]
}

// Validate checks the reserve's attribute constraints
func (r *MaterialReserve) Validate() error {
	return shared.FirstError(
		shared.NonNegative("quantity", r.Quantity),
		shared.OneOf("status", r.Status, MaterialReserveStatusValues()),
	)
}

// ServiceQuota books part of an employee's availability for an order service line
type ServiceQuota struct {
	shared.BaseEntity
	DateFrom     *time.Time
	DateTo       *time.Time
	Status       *ServiceQuotingStatus
	OrderService shared.Ref[OrderService]
	Availability shared.Ref[inventory.ServiceAvailability]
}

// Validate checks the quota's attribute constraints
func (q *ServiceQuota) Validate() error {
	return shared.FirstError(
		shared.Ordered("dateFrom", q.DateFrom, "dateTo", q.DateTo),
		shared.OneOf("status", q.Status, ServiceQuotingStatusValues()),
	)
}
