package main

import (
	catalogapp "github.com/ceilingworks/erp/internal/application/catalog"
	"github.com/ceilingworks/erp/internal/application/crud"
	facilityapp "github.com/ceilingworks/erp/internal/application/facility"
	inventoryapp "github.com/ceilingworks/erp/internal/application/inventory"
	partnerapp "github.com/ceilingworks/erp/internal/application/partner"
	tradeapp "github.com/ceilingworks/erp/internal/application/trade"
	"github.com/ceilingworks/erp/internal/domain/catalog"
	"github.com/ceilingworks/erp/internal/domain/facility"
	"github.com/ceilingworks/erp/internal/domain/inventory"
	"github.com/ceilingworks/erp/internal/domain/partner"
	"github.com/ceilingworks/erp/internal/domain/trade"
	"github.com/ceilingworks/erp/internal/infrastructure/persistence"
	"github.com/ceilingworks/erp/internal/interfaces/http/handler"
	"github.com/ceilingworks/erp/internal/interfaces/http/router"
)

// services holds the CRUD service of every entity
type services struct {
	customers            *crud.Service[partner.Customer, partnerapp.CustomerDTO, *partner.Customer, *partnerapp.CustomerDTO]
	employees            *crud.Service[partner.Employee, partnerapp.EmployeeDTO, *partner.Employee, *partnerapp.EmployeeDTO]
	facilities           *crud.Service[facility.Facility, facilityapp.FacilityDTO, *facility.Facility, *facilityapp.FacilityDTO]
	zones                *crud.Service[facility.Zone, facilityapp.ZoneDTO, *facility.Zone, *facilityapp.ZoneDTO]
	measurements         *crud.Service[catalog.Measurement, catalogapp.MeasurementDTO, *catalog.Measurement, *catalogapp.MeasurementDTO]
	materials            *crud.Service[catalog.Material, catalogapp.MaterialDTO, *catalog.Material, *catalogapp.MaterialDTO]
	materialMeasurements *crud.Service[catalog.MaterialMeasurement, catalogapp.MaterialMeasurementDTO, *catalog.MaterialMeasurement, *catalogapp.MaterialMeasurementDTO]
	services             *crud.Service[catalog.Service, catalogapp.ServiceDTO, *catalog.Service, *catalogapp.ServiceDTO]
	attachedImages       *catalogapp.AttachedImageService
	materialAvailability *crud.Service[inventory.MaterialAvailability, inventoryapp.MaterialAvailabilityDTO, *inventory.MaterialAvailability, *inventoryapp.MaterialAvailabilityDTO]
	serviceAvailability  *crud.Service[inventory.ServiceAvailability, inventoryapp.ServiceAvailabilityDTO, *inventory.ServiceAvailability, *inventoryapp.ServiceAvailabilityDTO]
	materialRequests     *crud.Service[inventory.MaterialRequest, inventoryapp.MaterialRequestDTO, *inventory.MaterialRequest, *inventoryapp.MaterialRequestDTO]
	materialArrivals     *crud.Service[inventory.MaterialArrival, inventoryapp.MaterialArrivalDTO, *inventory.MaterialArrival, *inventoryapp.MaterialArrivalDTO]
	customerOrders       *crud.Service[trade.CustomerOrder, tradeapp.CustomerOrderDTO, *trade.CustomerOrder, *tradeapp.CustomerOrderDTO]
	orderMaterials       *crud.Service[trade.OrderMaterial, tradeapp.OrderMaterialDTO, *trade.OrderMaterial, *tradeapp.OrderMaterialDTO]
	orderServices        *crud.Service[trade.OrderService, tradeapp.OrderServiceDTO, *trade.OrderService, *tradeapp.OrderServiceDTO]
	materialReserves     *crud.Service[trade.MaterialReserve, tradeapp.MaterialReserveDTO, *trade.MaterialReserve, *tradeapp.MaterialReserveDTO]
	serviceQuotas        *crud.Service[trade.ServiceQuota, tradeapp.ServiceQuotaDTO, *trade.ServiceQuota, *tradeapp.ServiceQuotaDTO]
	feedback             *crud.Service[trade.Feedback, tradeapp.FeedbackDTO, *trade.Feedback, *tradeapp.FeedbackDTO]
}

func newServices(repos *persistence.Repositories, opts ...crud.Option) *services {
	with := func(extra ...crud.Option) []crud.Option {
		return append(append([]crud.Option{}, opts...), extra...)
	}

	return &services{
		customers: crud.NewService[partner.Customer, partnerapp.CustomerDTO](
			"customer", repos.Customers, partnerapp.CustomerProjection, opts...),
		employees: crud.NewService[partner.Employee, partnerapp.EmployeeDTO](
			"employee", repos.Employees, partnerapp.EmployeeProjection, opts...),
		facilities: crud.NewService[facility.Facility, facilityapp.FacilityDTO](
			"facility", repos.Facilities, facilityapp.FacilityProjection, opts...),
		zones: crud.NewService[facility.Zone, facilityapp.ZoneDTO](
			"zone", repos.Zones, facilityapp.ZoneProjection,
			with(crud.WithCollection("facility.zones", "facility_id"))...),
		measurements: crud.NewService[catalog.Measurement, catalogapp.MeasurementDTO](
			"measurement", repos.Measurements, catalogapp.MeasurementProjection, opts...),
		materials: crud.NewService[catalog.Material, catalogapp.MaterialDTO](
			"material", repos.Materials, catalogapp.MaterialProjection, opts...),
		materialMeasurements: crud.NewService[catalog.MaterialMeasurement, catalogapp.MaterialMeasurementDTO](
			"material-measurement", repos.MaterialMeasurements, catalogapp.MaterialMeasurementProjection,
			with(crud.WithCollection("material.measurements", "material_id"))...),
		services: crud.NewService[catalog.Service, catalogapp.ServiceDTO](
			"service", repos.Services, catalogapp.ServiceProjection, opts...),
		attachedImages: crud.NewService[catalog.AttachedImage, catalogapp.AttachedImageDTO](
			"attached-image", repos.AttachedImages, catalogapp.AttachedImageProjection,
			with(crud.WithCollection("material.images", "material_id"))...),
		materialAvailability: crud.NewService[inventory.MaterialAvailability, inventoryapp.MaterialAvailabilityDTO](
			"material-availability", repos.MaterialAvailability, inventoryapp.MaterialAvailabilityProjection, opts...),
		serviceAvailability: crud.NewService[inventory.ServiceAvailability, inventoryapp.ServiceAvailabilityDTO](
			"service-availability", repos.ServiceAvailability, inventoryapp.ServiceAvailabilityProjection, opts...),
		materialRequests: crud.NewService[inventory.MaterialRequest, inventoryapp.MaterialRequestDTO](
			"material-request", repos.MaterialRequests, inventoryapp.MaterialRequestProjection, opts...),
		materialArrivals: crud.NewService[inventory.MaterialArrival, inventoryapp.MaterialArrivalDTO](
			"material-arrival", repos.MaterialArrivals, inventoryapp.MaterialArrivalProjection, opts...),
		customerOrders: crud.NewService[trade.CustomerOrder, tradeapp.CustomerOrderDTO](
			"customer-order", repos.CustomerOrders, tradeapp.CustomerOrderProjection, opts...),
		orderMaterials: crud.NewService[trade.OrderMaterial, tradeapp.OrderMaterialDTO](
			"order-material", repos.OrderMaterials, tradeapp.OrderMaterialProjection,
			with(crud.WithCollection("customer-order.materials", "order_id"))...),
		orderServices: crud.NewService[trade.OrderService, tradeapp.OrderServiceDTO](
			"order-service", repos.OrderServices, tradeapp.OrderServiceProjection,
			with(crud.WithCollection("customer-order.services", "order_id"))...),
		materialReserves: crud.NewService[trade.MaterialReserve, tradeapp.MaterialReserveDTO](
			"material-reserve", repos.MaterialReserves, tradeapp.MaterialReserveProjection, opts...),
		serviceQuotas: crud.NewService[trade.ServiceQuota, tradeapp.ServiceQuotaDTO](
			"service-quota", repos.ServiceQuotas, tradeapp.ServiceQuotaProjection, opts...),
		feedback: crud.NewService[trade.Feedback, tradeapp.FeedbackDTO](
			"feedback", repos.Feedback, tradeapp.FeedbackProjection, opts...),
	}
}

// resourceHandlers exposes every service. Attached images go through images,
// which owns their storage keys.
func (s *services) resourceHandlers(images *catalogapp.ImageService) router.ResourceHandlers {
	return router.ResourceHandlers{
		Customers:            handler.NewResourceHandler[partnerapp.CustomerDTO](s.customers),
		Employees:            handler.NewResourceHandler[partnerapp.EmployeeDTO](s.employees),
		Facilities:           handler.NewResourceHandler[facilityapp.FacilityDTO](s.facilities),
		Zones:                handler.NewResourceHandler[facilityapp.ZoneDTO](s.zones),
		Measurements:         handler.NewResourceHandler[catalogapp.MeasurementDTO](s.measurements),
		Materials:            handler.NewResourceHandler[catalogapp.MaterialDTO](s.materials),
		MaterialMeasurements: handler.NewResourceHandler[catalogapp.MaterialMeasurementDTO](s.materialMeasurements),
		Services:             handler.NewResourceHandler[catalogapp.ServiceDTO](s.services),
		AttachedImages:       handler.NewResourceHandler[catalogapp.AttachedImageDTO](images),
		MaterialAvailability: handler.NewResourceHandler[inventoryapp.MaterialAvailabilityDTO](s.materialAvailability),
		ServiceAvailability:  handler.NewResourceHandler[inventoryapp.ServiceAvailabilityDTO](s.serviceAvailability),
		MaterialRequests:     handler.NewResourceHandler[inventoryapp.MaterialRequestDTO](s.materialRequests),
		MaterialArrivals:     handler.NewResourceHandler[inventoryapp.MaterialArrivalDTO](s.materialArrivals),
		CustomerOrders:       handler.NewResourceHandler[tradeapp.CustomerOrderDTO](s.customerOrders),
		OrderMaterials:       handler.NewResourceHandler[tradeapp.OrderMaterialDTO](s.orderMaterials),
		OrderServices:        handler.NewResourceHandler[tradeapp.OrderServiceDTO](s.orderServices),
		MaterialReserves:     handler.NewResourceHandler[tradeapp.MaterialReserveDTO](s.materialReserves),
		ServiceQuotas:        handler.NewResourceHandler[tradeapp.ServiceQuotaDTO](s.serviceQuotas),
		Feedback:             handler.NewResourceHandler[tradeapp.FeedbackDTO](s.feedback),
	}
}
