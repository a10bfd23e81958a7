package persistence

import (
	"github.com/ceilingworks/erp/internal/domain/catalog"
	"github.com/ceilingworks/erp/internal/domain/facility"
	"github.com/ceilingworks/erp/internal/domain/inventory"
	"github.com/ceilingworks/erp/internal/domain/partner"
	"github.com/ceilingworks/erp/internal/domain/shared"
	"github.com/ceilingworks/erp/internal/domain/trade"
	"github.com/ceilingworks/erp/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// Repositories bundles one repository per entity. Every repository preloads
// the to-one relations whose labels its transfer object carries.
type Repositories struct {
	Customers             shared.Repository[partner.Customer]
	Employees             shared.Repository[partner.Employee]
	Facilities            shared.Repository[facility.Facility]
	Zones                 shared.Repository[facility.Zone]
	Measurements          shared.Repository[catalog.Measurement]
	Materials             shared.Repository[catalog.Material]
	MaterialMeasurements  shared.Repository[catalog.MaterialMeasurement]
	Services              shared.Repository[catalog.Service]
	AttachedImages        shared.Repository[catalog.AttachedImage]
	MaterialAvailability  shared.Repository[inventory.MaterialAvailability]
	ServiceAvailability   shared.Repository[inventory.ServiceAvailability]
	MaterialRequests      shared.Repository[inventory.MaterialRequest]
	MaterialArrivals      shared.Repository[inventory.MaterialArrival]
	CustomerOrders        shared.Repository[trade.CustomerOrder]
	OrderMaterials        shared.Repository[trade.OrderMaterial]
	OrderServices         shared.Repository[trade.OrderService]
	MaterialReserves      shared.Repository[trade.MaterialReserve]
	ServiceQuotas         shared.Repository[trade.ServiceQuota]
	Feedback              shared.Repository[trade.Feedback]
	CustomerOrdersDetails shared.Repository[trade.CustomerOrder]
}

// NewRepositories creates every repository on db
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Customers:  NewGormRepository[partner.Customer, models.CustomerModel](db),
		Employees:  NewGormRepository[partner.Employee, models.EmployeeModel](db),
		Facilities: NewGormRepository[facility.Facility, models.FacilityModel](db),
		Zones: NewGormRepository[facility.Zone, models.ZoneModel](db,
			WithPreload("Facility")),
		Measurements: NewGormRepository[catalog.Measurement, models.MeasurementModel](db),
		Materials: NewGormRepository[catalog.Material, models.MaterialModel](db,
			WithPreload("Measurement")),
		MaterialMeasurements: NewGormRepository[catalog.MaterialMeasurement, models.MaterialMeasurementModel](db,
			WithPreload("Material", "Measurement")),
		Services: NewGormRepository[catalog.Service, models.ServiceModel](db,
			WithPreload("Measurement")),
		AttachedImages: NewGormRepository[catalog.AttachedImage, models.AttachedImageModel](db,
			WithPreload("Material")),
		MaterialAvailability: NewGormRepository[inventory.MaterialAvailability, models.MaterialAvailabilityModel](db,
			WithPreload("Material", "Zone")),
		ServiceAvailability: NewGormRepository[inventory.ServiceAvailability, models.ServiceAvailabilityModel](db,
			WithPreload("Service", "Employee")),
		MaterialRequests: NewGormRepository[inventory.MaterialRequest, models.MaterialRequestModel](db,
			WithPreload("Material", "Requester", "Facility")),
		MaterialArrivals: NewGormRepository[inventory.MaterialArrival, models.MaterialArrivalModel](db,
			WithPreload("Material", "Request", "Zone")),
		CustomerOrders: NewGormRepository[trade.CustomerOrder, models.CustomerOrderModel](db,
			WithPreload("Customer", "Manager", "Facility")),
		OrderMaterials: NewGormRepository[trade.OrderMaterial, models.OrderMaterialModel](db,
			WithPreload("Order", "Material")),
		OrderServices: NewGormRepository[trade.OrderService, models.OrderServiceModel](db,
			WithPreload("Order", "Service")),
		MaterialReserves: NewGormRepository[trade.MaterialReserve, models.MaterialReserveModel](db),
		ServiceQuotas:    NewGormRepository[trade.ServiceQuota, models.ServiceQuotaModel](db),
		Feedback: NewGormRepository[trade.Feedback, models.FeedbackModel](db,
			WithPreload("Order", "Customer")),
		CustomerOrdersDetails: NewGormRepository[trade.CustomerOrder, models.CustomerOrderModel](db,
			WithPreload("Customer", "Manager", "Facility", "Materials.Material", "Services.Service")),
	}
}
