package inventory

import (
	"time"

	"github.com/ceilingworks/erp/internal/domain/catalog"
	"github.com/ceilingworks/erp/internal/domain/facility"
	"github.com/ceilingworks/erp/internal/domain/partner"
	"github.com/ceilingworks/erp/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MaterialRequestStatus is the lifecycle state of a material request.
// Every member may be set at any time.
type MaterialRequestStatus string

const (
	MaterialRequestStatusNew       MaterialRequestStatus = "NEW"
	MaterialRequestStatusOrdered   MaterialRequestStatus = "ORDERED"
	MaterialRequestStatusArrived   MaterialRequestStatus = "ARRIVED"
	MaterialRequestStatusCancelled MaterialRequestStatus = "CANCELLED"
)

// MaterialRequestStatusValues lists every MaterialRequestStatus member
func MaterialRequestStatusValues() []string {
	return []string{
		string(MaterialRequestStatusNew),
		string(MaterialRequestStatusOrdered),
		string(MaterialRequestStatusArrived),
		string(MaterialRequestStatusCancelled),
	}
}

// MaterialRequest asks purchasing to bring a material to a facility
type MaterialRequest struct {
	shared.BaseEntity
	RequestSummary string
	Quantity       *decimal.Decimal
	RequestedOn    *time.Time
	Status         *MaterialRequestStatus
	Material       shared.Ref[catalog.Material]
	Requester      shared.Ref[partner.Employee]
	Facility       shared.Ref[facility.Facility]
}

// Validate checks the request's attribute constraints
func (r *MaterialRequest) Validate() error {
	return shared.FirstError(
		shared.RequireText("requestSummary", r.RequestSummary, 200),
		shared.NonNegative("quantity", r.Quantity),
		shared.OneOf("status", r.Status, MaterialRequestStatusValues()),
	)
}

// MaterialArrival records a delivery that fulfils a material request
type MaterialArrival struct {
	shared.BaseEntity
	ArrivalSummary string
	Quantity       *decimal.Decimal
	ArrivedOn      *time.Time
	Notes          *string
	Material       shared.Ref[catalog.Material]
	Request        shared.Ref[MaterialRequest]
	Zone           shared.Ref[facility.Zone]
}

// Validate checks the arrival's attribute constraints
func (a *MaterialArrival) Validate() error {
	return shared.FirstError(
		shared.RequireText("arrivalSummary", a.ArrivalSummary, 200),
		shared.NonNegative("quantity", a.Quantity),
	)
}
