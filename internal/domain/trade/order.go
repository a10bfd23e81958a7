package trade

import (
	"time"

	"github.com/ceilingworks/erp/internal/domain/catalog"
	"github.com/ceilingworks/erp/internal/domain/facility"
	"github.com/ceilingworks/erp/internal/domain/partner"
	"github.com/ceilingworks/erp/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CustomerOrder is a ceiling job ordered by a customer. Materials and
// Services are only populated by loads that ask for order lines.
type CustomerOrder struct {
	shared.BaseEntity
	OrderSummary string
	OrderDate    *time.Time
	DueDate      *time.Time
	Address      *string
	Status       *OrderStatus
	Notes        *string
	Customer     shared.Ref[partner.Customer]
	Manager      shared.Ref[partner.Employee]
	Facility     shared.Ref[facility.Facility]
	Materials    []OrderMaterial
	Services     []OrderService
}

// Validate checks the order's attribute constraints
func (o *CustomerOrder) Validate() error {
	return shared.FirstError(
		shared.RequireText("orderSummary", o.OrderSummary, 200),
		shared.MaxLength("address", o.Address, 500),
		shared.Ordered("orderDate", o.OrderDate, "dueDate", o.DueDate),
		shared.OneOf("status", o.Status, OrderStatusValues()),
	)
}

// Total sums the loaded order lines. Lines without quantity or price count as zero.
func (o *CustomerOrder) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Materials {
		total = total.Add(lineTotal(o.Materials[i].Quantity, o.Materials[i].UnitPrice))
	}
	for i := range o.Services {
		total = total.Add(lineTotal(o.Services[i].Quantity, o.Services[i].UnitPrice))
	}
	return total
}

func lineTotal(quantity, unitPrice *decimal.Decimal) decimal.Decimal {
	if quantity == nil || unitPrice == nil {
		return decimal.Zero
	}
	return quantity.Mul(*unitPrice)
}

// OrderMaterial is a material line of an order
type OrderMaterial struct {
	shared.BaseEntity
	Quantity  *decimal.Decimal
	UnitPrice *decimal.Decimal
	Notes     *string
	Order     shared.Ref[CustomerOrder]
	Material  shared.Ref[catalog.Material]
}

// Validate checks the line's attribute constraints
func (l *OrderMaterial) Validate() error {
	if !l.Order.IsSet() {
		return shared.Validation("order is required")
	}
	return shared.FirstError(
		shared.NonNegative("quantity", l.Quantity),
		shared.NonNegative("unitPrice", l.UnitPrice),
	)
}

// OrderService is a service line of an order
type OrderService struct {
	shared.BaseEntity
	Quantity  *decimal.Decimal
	UnitPrice *decimal.Decimal
	Notes     *string
	Order     shared.Ref[CustomerOrder]
	Service   shared.Ref[catalog.Service]
}

// Validate checks the line's attribute constraints
func (l *OrderService) Validate() error {
	if !l.Order.IsSet() {
		return shared.Validation("order is required")
	}
	return shared.FirstError(
		shared.NonNegative("quantity", l.Quantity),
		shared.NonNegative("unitPrice", l.UnitPrice),
	)
}
