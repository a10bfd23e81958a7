package trade

import (
	"github.com/ceilingworks/erp/internal/application/crud"
	"github.com/ceilingworks/erp/internal/domain/catalog"
	"github.com/ceilingworks/erp/internal/domain/facility"
	"github.com/ceilingworks/erp/internal/domain/inventory"
	"github.com/ceilingworks/erp/internal/domain/partner"
	"github.com/ceilingworks/erp/internal/domain/shared"
	"github.com/ceilingworks/erp/internal/domain/trade"
)

var (
	CustomerOrderProjection = crud.Projection[trade.CustomerOrder, CustomerOrderDTO]{
		ToDTO:    ToCustomerOrderDTO,
		ToEntity: CustomerOrderFromDTO,
		Patch:    ApplyCustomerOrderPatch,
	}
	OrderMaterialProjection = crud.Projection[trade.OrderMaterial, OrderMaterialDTO]{
		ToDTO:    ToOrderMaterialDTO,
		ToEntity: OrderMaterialFromDTO,
		Patch:    ApplyOrderMaterialPatch,
	}
	OrderServiceProjection = crud.Projection[trade.OrderService, OrderServiceDTO]{
		ToDTO:    ToOrderServiceDTO,
		ToEntity: OrderServiceFromDTO,
		Patch:    ApplyOrderServicePatch,
	}
	MaterialReserveProjection = crud.Projection[trade.MaterialReserve, MaterialReserveDTO]{
		ToDTO:    ToMaterialReserveDTO,
		ToEntity: MaterialReserveFromDTO,
		Patch:    ApplyMaterialReservePatch,
	}
	ServiceQuotaProjection = crud.Projection[trade.ServiceQuota, ServiceQuotaDTO]{
		ToDTO:    ToServiceQuotaDTO,
		ToEntity: ServiceQuotaFromDTO,
		Patch:    ApplyServiceQuotaPatch,
	}
	FeedbackProjection = crud.Projection[trade.Feedback, FeedbackDTO]{
		ToDTO:    ToFeedbackDTO,
		ToEntity: FeedbackFromDTO,
		Patch:    ApplyFeedbackPatch,
	}
)

func customerSummary(c *partner.Customer) string { return c.CustomerSummary }
func employeeName(e *partner.Employee) string    { return e.EmployeeName }
func facilityName(f *facility.Facility) string   { return f.FacilityName }
func materialName(m *catalog.Material) string    { return m.MaterialName }
func serviceName(s *catalog.Service) string      { return s.ServiceName }
func orderSummary(o *trade.CustomerOrder) string { return o.OrderSummary }

// =============================================================================
// Customer order
// =============================================================================

// ToCustomerOrderDTO converts an order to its transfer object. Order lines
// are not part of the result.
func ToCustomerOrderDTO(o *trade.CustomerOrder) *CustomerOrderDTO {
	if o == nil {
		return nil
	}
	return &CustomerOrderDTO{
		ID:                      shared.IDPtr(o.ID),
		OrderSummary:            shared.StringPtr(o.OrderSummary),
		OrderDate:               shared.Copy(o.OrderDate),
		DueDate:                 shared.Copy(o.DueDate),
		Address:                 shared.Copy(o.Address),
		Status:                  shared.Copy(o.Status),
		Notes:                   shared.Copy(o.Notes),
		CustomerID:              o.Customer.IDPtr(),
		CustomerCustomerSummary: shared.RefLabel(o.Customer, customerSummary),
		ManagerID:               o.Manager.IDPtr(),
		ManagerEmployeeName:     shared.RefLabel(o.Manager, employeeName),
		FacilityID:              o.Facility.IDPtr(),
		FacilityFacilityName:    shared.RefLabel(o.Facility, facilityName),
	}
}

// CustomerOrderFromDTO converts a transfer object to an order. Related
// entities become reference stubs; Materials and Services stay nil.
func CustomerOrderFromDTO(d *CustomerOrderDTO) *trade.CustomerOrder {
	if d == nil {
		return nil
	}
	return &trade.CustomerOrder{
		BaseEntity:   shared.BaseEntity{ID: shared.IDValue(d.ID)},
		OrderSummary: shared.StringValue(d.OrderSummary),
		OrderDate:    shared.Copy(d.OrderDate),
		DueDate:      shared.Copy(d.DueDate),
		Address:      shared.Copy(d.Address),
		Status:       shared.Copy(d.Status),
		Notes:        shared.Copy(d.Notes),
		Customer:     shared.RefFromID[partner.Customer](d.CustomerID),
		Manager:      shared.RefFromID[partner.Employee](d.ManagerID),
		Facility:     shared.RefFromID[facility.Facility](d.FacilityID),
	}
}

// ApplyCustomerOrderPatch copies the fields present in d onto o
func ApplyCustomerOrderPatch(o *trade.CustomerOrder, d *CustomerOrderDTO) {
	shared.PatchValue(&o.OrderSummary, d.OrderSummary)
	shared.PatchPtr(&o.OrderDate, d.OrderDate)
	shared.PatchPtr(&o.DueDate, d.DueDate)
	shared.PatchPtr(&o.Address, d.Address)
	shared.PatchPtr(&o.Status, d.Status)
	shared.PatchPtr(&o.Notes, d.Notes)
	shared.PatchRef(&o.Customer, d.CustomerID)
	shared.PatchRef(&o.Manager, d.ManagerID)
	shared.PatchRef(&o.Facility, d.FacilityID)
}

// =============================================================================
// Order lines
// =============================================================================

// ToOrderMaterialDTO converts an order material to its transfer object
func ToOrderMaterialDTO(l *trade.OrderMaterial) *OrderMaterialDTO {
	if l == nil {
		return nil
	}
	return &OrderMaterialDTO{
		ID:                   shared.IDPtr(l.ID),
		Quantity:             shared.Copy(l.Quantity),
		UnitPrice:            shared.Copy(l.UnitPrice),
		Notes:                shared.Copy(l.Notes),
		OrderID:              l.Order.IDPtr(),
		OrderOrderSummary:    shared.RefLabel(l.Order, orderSummary),
		MaterialID:           l.Material.IDPtr(),
		MaterialMaterialName: shared.RefLabel(l.Material, materialName),
	}
}

// OrderMaterialFromDTO converts a transfer object to an order material
func OrderMaterialFromDTO(d *OrderMaterialDTO) *trade.OrderMaterial {
	if d == nil {
		return nil
	}
	return &trade.OrderMaterial{
		BaseEntity: shared.BaseEntity{ID: shared.IDValue(d.ID)},
		Quantity:   shared.Copy(d.Quantity),
		UnitPrice:  shared.Copy(d.UnitPrice),
		Notes:      shared.Copy(d.Notes),
		Order:      shared.RefFromID[trade.CustomerOrder](d.OrderID),
		Material:   shared.RefFromID[catalog.Material](d.MaterialID),
	}
}

// ApplyOrderMaterialPatch copies the fields present in d onto l
func ApplyOrderMaterialPatch(l *trade.OrderMaterial, d *OrderMaterialDTO) {
	shared.PatchPtr(&l.Quantity, d.Quantity)
	shared.PatchPtr(&l.UnitPrice, d.UnitPrice)
	shared.PatchPtr(&l.Notes, d.Notes)
	shared.PatchRef(&l.Order, d.OrderID)
	shared.PatchRef(&l.Material, d.MaterialID)
}

// ToOrderServiceDTO converts an order service to its transfer object
func ToOrderServiceDTO(l *trade.OrderService) *OrderServiceDTO {
	if l == nil {
		return nil
	}
	return &OrderServiceDTO{
		ID:                 shared.IDPtr(l.ID),
		Quantity:           shared.Copy(l.Quantity),
		UnitPrice:          shared.Copy(l.UnitPrice),
		Notes:              shared.Copy(l.Notes),
		OrderID:            l.Order.IDPtr(),
		OrderOrderSummary:  shared.RefLabel(l.Order, orderSummary),
		ServiceID:          l.Service.IDPtr(),
		ServiceServiceName: shared.RefLabel(l.Service, serviceName),
	}
}

// OrderServiceFromDTO converts a transfer object to an order service
func OrderServiceFromDTO(d *OrderServiceDTO) *trade.OrderService {
	if d == nil {
		return nil
	}
	return &trade.OrderService{
		BaseEntity: shared.BaseEntity{ID: shared.IDValue(d.ID)},
		Quantity:   shared.Copy(d.Quantity),
		UnitPrice:  shared.Copy(d.UnitPrice),
		Notes:      shared.Copy(d.Notes),
		Order:      shared.RefFromID[trade.CustomerOrder](d.OrderID),
		Service:    shared.RefFromID[catalog.Service](d.ServiceID),
	}
}

// ApplyOrderServicePatch copies the fields present in d onto l
func ApplyOrderServicePatch(l *trade.OrderService, d *OrderServiceDTO) {
	shared.PatchPtr(&l.Quantity, d.Quantity)
	shared.PatchPtr(&l.UnitPrice, d.UnitPrice)
	shared.PatchPtr(&l.Notes, d.Notes)
	shared.PatchRef(&l.Order, d.OrderID)
	shared.PatchRef(&l.Service, d.ServiceID)
}

// =============================================================================
// Reservations
// =============================================================================

// ToMaterialReserveDTO converts a material reserve to its transfer object
func ToMaterialReserveDTO(r *trade.MaterialReserve) *MaterialReserveDTO {
	if r == nil {
		return nil
	}
	return &MaterialReserveDTO{
		ID:              shared.IDPtr(r.ID),
		Quantity:        shared.Copy(r.Quantity),
		ReservedOn:      shared.Copy(r.ReservedOn),
		Status:          shared.Copy(r.Status),
		OrderMaterialID: r.OrderMaterial.IDPtr(),
		AvailabilityID:  r.Availability.IDPtr(),
	}
}

// MaterialReserveFromDTO converts a transfer object to a material reserve
func MaterialReserveFromDTO(d *MaterialReserveDTO) *trade.MaterialReserve {
	if d == nil {
		return nil
	}
	return &trade.MaterialReserve{
		BaseEntity:    shared.BaseEntity{ID: shared.IDValue(d.ID)},
		Quantity:      shared.Copy(d.Quantity),
		ReservedOn:    shared.Copy(d.ReservedOn),
		Status:        shared.Copy(d.Status),
		OrderMaterial: shared.RefFromID[trade.OrderMaterial](d.OrderMaterialID),
		Availability:  shared.RefFromID[inventory.MaterialAvailability](d.AvailabilityID),
	}
}

// ApplyMaterialReservePatch copies the fields present in d onto r
func ApplyMaterialReservePatch(r *trade.MaterialReserve, d *MaterialReserveDTO) {
	shared.PatchPtr(&r.Quantity, d.Quantity)
	shared.PatchPtr(&r.ReservedOn, d.ReservedOn)
	shared.PatchPtr(&r.Status, d.Status)
	shared.PatchRef(&r.OrderMaterial, d.OrderMaterialID)
	shared.PatchRef(&r.Availability, d.AvailabilityID)
}

// ToServiceQuotaDTO converts a service quota to its transfer object
func ToServiceQuotaDTO(q *trade.ServiceQuota) *ServiceQuotaDTO {
	if q == nil {
		return nil
	}
	return &ServiceQuotaDTO{
		ID:             shared.IDPtr(q.ID),
		DateFrom:       shared.Copy(q.DateFrom),
		DateTo:         shared.Copy(q.DateTo),
		Status:         shared.Copy(q.Status),
		OrderServiceID: q.OrderService.IDPtr(),
		AvailabilityID: q.Availability.IDPtr(),
	}
}

// ServiceQuotaFromDTO converts a transfer object to a service quota
func ServiceQuotaFromDTO(d *ServiceQuotaDTO) *trade.ServiceQuota {
	if d == nil {
		return nil
	}
	return &trade.ServiceQuota{
		BaseEntity:   shared.BaseEntity{ID: shared.IDValue(d.ID)},
		DateFrom:     shared.Copy(d.DateFrom),
		DateTo:       shared.Copy(d.DateTo),
		Status:       shared.Copy(d.Status),
		OrderService: shared.RefFromID[trade.OrderService](d.OrderServiceID),
		Availability: shared.RefFromID[inventory.ServiceAvailability](d.AvailabilityID),
	}
}

// ApplyServiceQuotaPatch copies the fields present in d onto q
func ApplyServiceQuotaPatch(q *trade.ServiceQuota, d *ServiceQuotaDTO) {
	shared.PatchPtr(&q.DateFrom, d.DateFrom)
	shared.PatchPtr(&q.DateTo, d.DateTo)
	shared.PatchPtr(&q.Status, d.Status)
	shared.PatchRef(&q.OrderService, d.OrderServiceID)
	shared.PatchRef(&q.Availability, d.AvailabilityID)
}

// =============================================================================
// Feedback
// =============================================================================

// ToFeedbackDTO converts a feedback to its transfer object
func ToFeedbackDTO(f *trade.Feedback) *FeedbackDTO {
	if f == nil {
		return nil
	}
	return &FeedbackDTO{
		ID:                      shared.IDPtr(f.ID),
		Rating:                  shared.Copy(f.Rating),
		Comment:                 shared.Copy(f.Comment),
		SubmittedOn:             shared.Copy(f.SubmittedOn),
		OrderID:                 f.Order.IDPtr(),
		OrderOrderSummary:       shared.RefLabel(f.Order, orderSummary),
		CustomerID:              f.Customer.IDPtr(),
		CustomerCustomerSummary: shared.RefLabel(f.Customer, customerSummary),
	}
}

// FeedbackFromDTO converts a transfer object to a feedback
func FeedbackFromDTO(d *FeedbackDTO) *trade.Feedback {
	if d == nil {
		return nil
	}
	return &trade.Feedback{
		BaseEntity:  shared.BaseEntity{ID: shared.IDValue(d.ID)},
		Rating:      shared.Copy(d.Rating),
		Comment:     shared.Copy(d.Comment),
		SubmittedOn: shared.Copy(d.SubmittedOn),
		Order:       shared.RefFromID[trade.CustomerOrder](d.OrderID),
		Customer:    shared.RefFromID[partner.Customer](d.CustomerID),
	}
}

// ApplyFeedbackPatch copies the fields present in d onto f
func ApplyFeedbackPatch(f *trade.Feedback, d *FeedbackDTO) {
	shared.PatchPtr(&f.Rating, d.Rating)
	shared.PatchPtr(&f.Comment, d.Comment)
	shared.PatchPtr(&f.SubmittedOn, d.SubmittedOn)
	shared.PatchRef(&f.Order, d.OrderID)
	shared.PatchRef(&f.Customer, d.CustomerID)
}
