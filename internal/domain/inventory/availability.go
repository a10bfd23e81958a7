package inventory

import (
	"time"

	"github.com/ceilingworks/erp/internal/domain/catalog"
	"github.com/ceilingworks/erp/internal/domain/facility"
	"github.com/ceilingworks/erp/internal/domain/partner"
	"github.com/ceilingworks/erp/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MaterialAvailability is the counted stock of a material in a zone
type MaterialAvailability struct {
	shared.BaseEntity
	Quantity  *decimal.Decimal
	CountedOn *time.Time
	Material  shared.Ref[catalog.Material]
	Zone      shared.Ref[facility.Zone]
}

// Validate checks the availability's attribute constraints
func (a *MaterialAvailability) Validate() error {
	return shared.NonNegative("quantity", a.Quantity)
}

// ServiceAvailability is a time window in which an employee can perform a service
type ServiceAvailability struct {
	shared.BaseEntity
	DateFrom *time.Time
	DateTo   *time.Time
	Service  shared.Ref[catalog.Service]
	Employee shared.Ref[partner.Employee]
}

// Validate checks the availability's attribute constraints
func (a *ServiceAvailability) Validate() error {
	return shared.Ordered("dateFrom", a.DateFrom, "dateTo", a.DateTo)
}
