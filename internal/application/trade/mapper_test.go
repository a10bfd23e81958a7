package trade

import (
	"testing"
	"time"

	"github.com/ceilingworks/erp/internal/domain/catalog"
	"github.com/ceilingworks/erp/internal/domain/facility"
	"github.com/ceilingworks/erp/internal/domain/inventory"
	"github.com/ceilingworks/erp/internal/domain/partner"
	"github.com/ceilingworks/erp/internal/domain/shared"
	"github.com/ceilingworks/erp/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestToCustomerOrderDTO_ManagerLoadedCustomerAbsent(t *testing.T) {
	order := &trade.CustomerOrder{
		BaseEntity:   shared.BaseEntity{ID: 7},
		OrderSummary: "Order A",
		Manager:      shared.LoadedRef(&partner.Employee{BaseEntity: shared.BaseEntity{ID: 3}, EmployeeName: "Alice"}),
	}

	dto := ToCustomerOrderDTO(order)

	require.NotNil(t, dto)
	assert.Equal(t, ptr(int64(7)), dto.ID)
	assert.Equal(t, ptr("Order A"), dto.OrderSummary)
	assert.Equal(t, ptr(int64(3)), dto.ManagerID)
	assert.Equal(t, ptr("Alice"), dto.ManagerEmployeeName)
	assert.Nil(t, dto.CustomerID)
	assert.Nil(t, dto.CustomerCustomerSummary)
	assert.Nil(t, dto.FacilityID)
	assert.Nil(t, dto.FacilityFacilityName)
}

func TestCustomerOrderFromDTO_StubsAndNoLines(t *testing.T) {
	dto := &CustomerOrderDTO{
		ID:           ptr(int64(7)),
		OrderSummary: ptr("Order A"),
		ManagerID:    ptr(int64(3)),
		// a stale label on input is ignored
		ManagerEmployeeName: ptr("Someone else"),
	}

	order := CustomerOrderFromDTO(dto)

	require.NotNil(t, order)
	assert.Equal(t, int64(7), order.ID)
	assert.Equal(t, "Order A", order.OrderSummary)
	assert.Equal(t, shared.RefTo[partner.Employee](3), order.Manager)
	_, loaded := order.Manager.Loaded()
	assert.False(t, loaded)
	assert.False(t, order.Customer.IsSet())
	assert.False(t, order.Facility.IsSet())
	assert.Nil(t, order.Materials)
	assert.Nil(t, order.Services)
}

func TestToCustomerOrderDTO_RelationWithoutLabel(t *testing.T) {
	order := &trade.CustomerOrder{
		OrderSummary: "B",
		Customer:     shared.RefTo[partner.Customer](11),
		Facility:     shared.LoadedRef(&facility.Facility{BaseEntity: shared.BaseEntity{ID: 2}}),
	}

	dto := ToCustomerOrderDTO(order)

	assert.Nil(t, dto.ID)
	assert.Equal(t, ptr(int64(11)), dto.CustomerID)
	assert.Nil(t, dto.CustomerCustomerSummary)
	assert.Equal(t, ptr(int64(2)), dto.FacilityID)
	assert.Nil(t, dto.FacilityFacilityName)
}

func TestCustomerOrder_ScalarRoundTrip(t *testing.T) {
	orderDate := time.Date(2024, 4, 2, 9, 30, 0, 0, time.UTC)
	status := trade.OrderStatusInProgress
	original := &trade.CustomerOrder{
		BaseEntity:   shared.BaseEntity{ID: 12},
		OrderSummary: "Office ceiling, 3rd floor",
		OrderDate:    &orderDate,
		DueDate:      ptr(orderDate.AddDate(0, 1, 0)),
		Address:      ptr("12 Main St"),
		Status:       &status,
		Notes:        ptr("Access via loading bay"),
		Customer:     shared.LoadedRef(&partner.Customer{BaseEntity: shared.BaseEntity{ID: 1}, CustomerSummary: "ACME"}),
		Materials:    []trade.OrderMaterial{{BaseEntity: shared.BaseEntity{ID: 99}}},
	}

	back := CustomerOrderFromDTO(ToCustomerOrderDTO(original))

	assert.Equal(t, original.ID, back.ID)
	assert.Equal(t, original.OrderSummary, back.OrderSummary)
	assert.Equal(t, original.OrderDate, back.OrderDate)
	assert.Equal(t, original.DueDate, back.DueDate)
	assert.Equal(t, original.Address, back.Address)
	assert.Equal(t, original.Status, back.Status)
	assert.Equal(t, original.Notes, back.Notes)
	assert.Equal(t, shared.RefTo[partner.Customer](1), back.Customer)
	assert.Nil(t, back.Materials)
	assert.NotSame(t, original.Address, back.Address)
}

func TestCustomerOrderFromDTO_Nil(t *testing.T) {
	assert.Nil(t, CustomerOrderFromDTO(nil))
	assert.Nil(t, ToCustomerOrderDTO(nil))
}

func TestApplyCustomerOrderPatch(t *testing.T) {
	order := &trade.CustomerOrder{
		BaseEntity:   shared.BaseEntity{ID: 7},
		OrderSummary: "Order A",
		Notes:        ptr("keep"),
		Manager:      shared.LoadedRef(&partner.Employee{BaseEntity: shared.BaseEntity{ID: 3}, EmployeeName: "Alice"}),
		Materials:    []trade.OrderMaterial{{}},
	}
	completed := trade.OrderStatusCompleted

	ApplyCustomerOrderPatch(order, &CustomerOrderDTO{
		Status:     &completed,
		CustomerID: ptr(int64(5)),
	})

	assert.Equal(t, "Order A", order.OrderSummary)
	assert.Equal(t, ptr("keep"), order.Notes)
	assert.Equal(t, &completed, order.Status)
	assert.Equal(t, shared.RefTo[partner.Customer](5), order.Customer)
	assert.Equal(t, shared.RefLoaded, order.Manager.Kind())
	assert.Len(t, order.Materials, 1)
}

func TestOrderLines_Projection(t *testing.T) {
	order := &trade.CustomerOrder{BaseEntity: shared.BaseEntity{ID: 7}, OrderSummary: "Order A"}
	line := &trade.OrderMaterial{
		BaseEntity: shared.BaseEntity{ID: 30},
		Quantity:   ptr(decimal.RequireFromString("4.5")),
		UnitPrice:  ptr(decimal.RequireFromString("12.00")),
		Order:      shared.LoadedRef(order),
		Material:   shared.LoadedRef(&catalog.Material{BaseEntity: shared.BaseEntity{ID: 8}, MaterialName: "Mineral tile"}),
	}

	dto := ToOrderMaterialDTO(line)
	assert.Equal(t, ptr("Order A"), dto.OrderOrderSummary)
	assert.Equal(t, ptr("Mineral tile"), dto.MaterialMaterialName)
	assert.True(t, line.Quantity.Equal(*dto.Quantity))

	svc := ToOrderServiceDTO(&trade.OrderService{
		Order:   shared.LoadedRef(order),
		Service: shared.LoadedRef(&catalog.Service{BaseEntity: shared.BaseEntity{ID: 4}, ServiceName: "Installation"}),
	})
	assert.Equal(t, ptr(int64(4)), svc.ServiceID)
	assert.Equal(t, ptr("Installation"), svc.ServiceServiceName)

	back := OrderServiceFromDTO(svc)
	assert.Equal(t, shared.RefTo[trade.CustomerOrder](7), back.Order)
	assert.Equal(t, shared.RefTo[catalog.Service](4), back.Service)
}

func TestReservations_IDOnlyRelations(t *testing.T) {
	reserve := &trade.MaterialReserve{
		Status:        ptr(trade.MaterialReserveStatusReserved),
		OrderMaterial: shared.LoadedRef(&trade.OrderMaterial{BaseEntity: shared.BaseEntity{ID: 30}}),
		Availability:  shared.RefTo[inventory.MaterialAvailability](40),
	}

	dto := ToMaterialReserveDTO(reserve)
	assert.Equal(t, ptr(int64(30)), dto.OrderMaterialID)
	assert.Equal(t, ptr(int64(40)), dto.AvailabilityID)

	quota := ServiceQuotaFromDTO(&ServiceQuotaDTO{OrderServiceID: ptr(int64(2))})
	assert.Equal(t, shared.RefTo[trade.OrderService](2), quota.OrderService)
	assert.False(t, quota.Availability.IsSet())
}

func TestFeedback_Projection(t *testing.T) {
	fb := &trade.Feedback{
		Rating:   ptr(5),
		Order:    shared.LoadedRef(&trade.CustomerOrder{BaseEntity: shared.BaseEntity{ID: 7}, OrderSummary: "Order A"}),
		Customer: shared.LoadedRef(&partner.Customer{BaseEntity: shared.BaseEntity{ID: 1}, CustomerSummary: "ACME"}),
	}

	dto := ToFeedbackDTO(fb)
	assert.Equal(t, ptr("Order A"), dto.OrderOrderSummary)
	assert.Equal(t, ptr("ACME"), dto.CustomerCustomerSummary)

	ApplyFeedbackPatch(fb, &FeedbackDTO{Comment: ptr("Great job")})
	assert.Equal(t, ptr(5), fb.Rating)
	assert.Equal(t, ptr("Great job"), fb.Comment)
}
