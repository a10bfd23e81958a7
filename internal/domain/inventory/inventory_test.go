package inventory

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestServiceAvailability_Validate(t *testing.T) {
	from := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	to := from.Add(8 * time.Hour)

	assert.NoError(t, (&ServiceAvailability{DateFrom: &from, DateTo: &to}).Validate())
	assert.NoError(t, (&ServiceAvailability{DateFrom: &from}).Validate())
	assert.ErrorContains(t, (&ServiceAvailability{DateFrom: &to, DateTo: &from}).Validate(), "dateFrom cannot be after dateTo")
}

func TestMaterialRequest_Validate(t *testing.T) {
	arrived := MaterialRequestStatusArrived
	bogus := MaterialRequestStatus("LOST")
	negative := decimal.NewFromInt(-3)

	assert.NoError(t, (&MaterialRequest{RequestSummary: "Panels for order 7", Status: &arrived}).Validate())
	assert.ErrorContains(t, (&MaterialRequest{}).Validate(), "requestSummary is required")
	assert.ErrorContains(t, (&MaterialRequest{RequestSummary: "x", Status: &bogus}).Validate(), "status must be one of")
	assert.ErrorContains(t, (&MaterialRequest{RequestSummary: "x", Quantity: &negative}).Validate(), "quantity cannot be negative")
}

func TestMaterialRequestStatus_AnyMemberSettable(t *testing.T) {
	r := &MaterialRequest{RequestSummary: "x"}
	for _, v := range MaterialRequestStatusValues() {
		s := MaterialRequestStatus(v)
		r.Status = &s
		assert.NoError(t, r.Validate(), v)
	}
}

func TestMaterialArrival_Validate(t *testing.T) {
	assert.NoError(t, (&MaterialArrival{ArrivalSummary: "Truck 12"}).Validate())
	assert.ErrorContains(t, (&MaterialArrival{}).Validate(), "arrivalSummary is required")
}

func TestMaterialAvailability_Validate(t *testing.T) {
	q := decimal.NewFromInt(-1)
	assert.ErrorContains(t, (&MaterialAvailability{Quantity: &q}).Validate(), "quantity cannot be negative")
}
