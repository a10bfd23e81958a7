package main

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
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
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Counts controls how many rows of each kind are generated
type Counts struct {
	Customers  int
	Employees  int
	Facilities int
	Materials  int
	Orders     int
}

// DefaultCounts returns a small data set suitable for local development
func DefaultCounts() Counts {
	return Counts{Customers: 20, Employees: 8, Facilities: 2, Materials: 15, Orders: 30}
}

// Summary reports what a seed run created
type Summary struct {
	Customers    int
	Employees    int
	Facilities   int
	Zones        int
	Materials    int
	Services     int
	Availability int
	Orders       int
	OrderLines   int
	Feedback     int
}

var measurementNames = []string{"m²", "m", "pcs", "kg"}

var serviceNames = []string{
	"Stretch ceiling installation",
	"Suspended ceiling installation",
	"Light fixture mounting",
	"Old ceiling removal",
	"Site measurement",
}

// seeder writes fake data through the CRUD services so every row passes the
// same validation and projection as API traffic.
type seeder struct {
	faker *gofakeit.Faker
	now   time.Time
	log   *zap.Logger

	customers      *crud.Service[partner.Customer, partnerapp.CustomerDTO, *partner.Customer, *partnerapp.CustomerDTO]
	employees      *crud.Service[partner.Employee, partnerapp.EmployeeDTO, *partner.Employee, *partnerapp.EmployeeDTO]
	facilities     *crud.Service[facility.Facility, facilityapp.FacilityDTO, *facility.Facility, *facilityapp.FacilityDTO]
	zones          *crud.Service[facility.Zone, facilityapp.ZoneDTO, *facility.Zone, *facilityapp.ZoneDTO]
	measurements   *crud.Service[catalog.Measurement, catalogapp.MeasurementDTO, *catalog.Measurement, *catalogapp.MeasurementDTO]
	materials      *crud.Service[catalog.Material, catalogapp.MaterialDTO, *catalog.Material, *catalogapp.MaterialDTO]
	services       *crud.Service[catalog.Service, catalogapp.ServiceDTO, *catalog.Service, *catalogapp.ServiceDTO]
	stock          *crud.Service[inventory.MaterialAvailability, inventoryapp.MaterialAvailabilityDTO, *inventory.MaterialAvailability, *inventoryapp.MaterialAvailabilityDTO]
	schedule       *crud.Service[inventory.ServiceAvailability, inventoryapp.ServiceAvailabilityDTO, *inventory.ServiceAvailability, *inventoryapp.ServiceAvailabilityDTO]
	orders         *crud.Service[trade.CustomerOrder, tradeapp.CustomerOrderDTO, *trade.CustomerOrder, *tradeapp.CustomerOrderDTO]
	orderMaterials *crud.Service[trade.OrderMaterial, tradeapp.OrderMaterialDTO, *trade.OrderMaterial, *tradeapp.OrderMaterialDTO]
	orderServices  *crud.Service[trade.OrderService, tradeapp.OrderServiceDTO, *trade.OrderService, *tradeapp.OrderServiceDTO]
	reserves       *crud.Service[trade.MaterialReserve, tradeapp.MaterialReserveDTO, *trade.MaterialReserve, *tradeapp.MaterialReserveDTO]
	quotas         *crud.Service[trade.ServiceQuota, tradeapp.ServiceQuotaDTO, *trade.ServiceQuota, *tradeapp.ServiceQuotaDTO]
	feedback       *crud.Service[trade.Feedback, tradeapp.FeedbackDTO, *trade.Feedback, *tradeapp.FeedbackDTO]
}

func newSeeder(repos *persistence.Repositories, seed uint64, log *zap.Logger) *seeder {
	return &seeder{
		faker: gofakeit.New(seed),
		now:   time.Now().UTC().Truncate(24 * time.Hour),
		log:   log,

		customers:      crud.NewService[partner.Customer, partnerapp.CustomerDTO]("customer", repos.Customers, partnerapp.CustomerProjection),
		employees:      crud.NewService[partner.Employee, partnerapp.EmployeeDTO]("employee", repos.Employees, partnerapp.EmployeeProjection),
		facilities:     crud.NewService[facility.Facility, facilityapp.FacilityDTO]("facility", repos.Facilities, facilityapp.FacilityProjection),
		zones:          crud.NewService[facility.Zone, facilityapp.ZoneDTO]("zone", repos.Zones, facilityapp.ZoneProjection),
		measurements:   crud.NewService[catalog.Measurement, catalogapp.MeasurementDTO]("measurement", repos.Measurements, catalogapp.MeasurementProjection),
		materials:      crud.NewService[catalog.Material, catalogapp.MaterialDTO]("material", repos.Materials, catalogapp.MaterialProjection),
		services:       crud.NewService[catalog.Service, catalogapp.ServiceDTO]("service", repos.Services, catalogapp.ServiceProjection),
		stock:          crud.NewService[inventory.MaterialAvailability, inventoryapp.MaterialAvailabilityDTO]("material-availability", repos.MaterialAvailability, inventoryapp.MaterialAvailabilityProjection),
		schedule:       crud.NewService[inventory.ServiceAvailability, inventoryapp.ServiceAvailabilityDTO]("service-availability", repos.ServiceAvailability, inventoryapp.ServiceAvailabilityProjection),
		orders:         crud.NewService[trade.CustomerOrder, tradeapp.CustomerOrderDTO]("customer-order", repos.CustomerOrders, tradeapp.CustomerOrderProjection),
		orderMaterials: crud.NewService[trade.OrderMaterial, tradeapp.OrderMaterialDTO]("order-material", repos.OrderMaterials, tradeapp.OrderMaterialProjection),
		orderServices:  crud.NewService[trade.OrderService, tradeapp.OrderServiceDTO]("order-service", repos.OrderServices, tradeapp.OrderServiceProjection),
		reserves:       crud.NewService[trade.MaterialReserve, tradeapp.MaterialReserveDTO]("material-reserve", repos.MaterialReserves, tradeapp.MaterialReserveProjection),
		quotas:         crud.NewService[trade.ServiceQuota, tradeapp.ServiceQuotaDTO]("service-quota", repos.ServiceQuotas, tradeapp.ServiceQuotaProjection),
		feedback:       crud.NewService[trade.Feedback, tradeapp.FeedbackDTO]("feedback", repos.Feedback, tradeapp.FeedbackProjection),
	}
}

// Run generates the data set described by n
func (s *seeder) Run(ctx context.Context, n Counts) (Summary, error) {
	var sum Summary

	measurementIDs := make([]int64, 0, len(measurementNames))
	for _, name := range measurementNames {
		m, err := s.measurements.Create(ctx, &catalogapp.MeasurementDTO{MeasurementName: str(name)})
		if err != nil {
			return sum, fmt.Errorf("create measurement %q: %w", name, err)
		}
		measurementIDs = append(measurementIDs, *m.ID)
	}

	customerIDs := make([]int64, 0, n.Customers)
	for range n.Customers {
		c, err := s.customers.Create(ctx, s.customer())
		if err != nil {
			return sum, fmt.Errorf("create customer: %w", err)
		}
		customerIDs = append(customerIDs, *c.ID)
	}
	sum.Customers = len(customerIDs)

	employeeIDs := make([]int64, 0, n.Employees)
	for range n.Employees {
		e, err := s.employees.Create(ctx, s.employee())
		if err != nil {
			return sum, fmt.Errorf("create employee: %w", err)
		}
		employeeIDs = append(employeeIDs, *e.ID)
	}
	sum.Employees = len(employeeIDs)

	facilityIDs := make([]int64, 0, n.Facilities)
	zoneIDs := make([]int64, 0)
	for i := range n.Facilities {
		f, err := s.facilities.Create(ctx, &facilityapp.FacilityDTO{
			FacilityName: str(fmt.Sprintf("Warehouse %s", s.faker.City())),
			Address:      str(s.faker.Address().Address),
		})
		if err != nil {
			return sum, fmt.Errorf("create facility: %w", err)
		}
		facilityIDs = append(facilityIDs, *f.ID)

		for j := range 3 {
			z, err := s.zones.Create(ctx, &facilityapp.ZoneDTO{
				ZoneName:   str(fmt.Sprintf("Zone %c%d", 'A'+rune(j), i+1)),
				FacilityID: f.ID,
			})
			if err != nil {
				return sum, fmt.Errorf("create zone: %w", err)
			}
			zoneIDs = append(zoneIDs, *z.ID)
		}
	}
	sum.Facilities = len(facilityIDs)
	sum.Zones = len(zoneIDs)

	type stocked struct {
		material     int64
		price        decimal.Decimal
		availability *int64
	}
	materials := make([]stocked, 0, n.Materials)
	for range n.Materials {
		price := s.price(5, 300)
		m, err := s.materials.Create(ctx, &catalogapp.MaterialDTO{
			MaterialName:  str(s.faker.ProductName()),
			Description:   str(s.faker.Sentence(8)),
			UnitPrice:     &price,
			MeasurementID: &measurementIDs[s.faker.Number(0, len(measurementIDs)-1)],
		})
		if err != nil {
			return sum, fmt.Errorf("create material: %w", err)
		}
		item := stocked{material: *m.ID, price: price}

		if len(zoneIDs) > 0 {
			qty := decimal.NewFromInt(int64(s.faker.Number(10, 500)))
			a, err := s.stock.Create(ctx, &inventoryapp.MaterialAvailabilityDTO{
				Quantity:   &qty,
				CountedOn:  s.day(-s.faker.Number(0, 30)),
				MaterialID: m.ID,
				ZoneID:     &zoneIDs[s.faker.Number(0, len(zoneIDs)-1)],
			})
			if err != nil {
				return sum, fmt.Errorf("create material availability: %w", err)
			}
			item.availability = a.ID
			sum.Availability++
		}
		materials = append(materials, item)
	}
	sum.Materials = len(materials)

	type offered struct {
		service  int64
		price    decimal.Decimal
		schedule *int64
	}
	services := make([]offered, 0, len(serviceNames))
	for _, name := range serviceNames {
		price := s.price(20, 150)
		sv, err := s.services.Create(ctx, &catalogapp.ServiceDTO{
			ServiceName:   str(name),
			UnitPrice:     &price,
			MeasurementID: &measurementIDs[0],
		})
		if err != nil {
			return sum, fmt.Errorf("create service %q: %w", name, err)
		}
		item := offered{service: *sv.ID, price: price}

		if len(employeeIDs) > 0 {
			a, err := s.schedule.Create(ctx, &inventoryapp.ServiceAvailabilityDTO{
				DateFrom:   s.day(0),
				DateTo:     s.day(60),
				ServiceID:  sv.ID,
				EmployeeID: &employeeIDs[s.faker.Number(0, len(employeeIDs)-1)],
			})
			if err != nil {
				return sum, fmt.Errorf("create service availability: %w", err)
			}
			item.schedule = a.ID
			sum.Availability++
		}
		services = append(services, item)
	}
	sum.Services = len(services)

	statuses := trade.OrderStatusValues()
	for range n.Orders {
		if len(customerIDs) == 0 {
			break
		}
		status := trade.OrderStatus(s.faker.RandomString(statuses))
		start := -s.faker.Number(0, 90)
		order := &tradeapp.CustomerOrderDTO{
			OrderSummary: str(fmt.Sprintf("%s ceiling, %d m²", s.faker.RandomString([]string{"Kitchen", "Hall", "Bedroom", "Office", "Lobby"}), s.faker.Number(8, 120))),
			OrderDate:    s.day(start),
			DueDate:      s.day(start + s.faker.Number(3, 30)),
			Address:      str(s.faker.Address().Address),
			Status:       &status,
			CustomerID:   &customerIDs[s.faker.Number(0, len(customerIDs)-1)],
		}
		if len(employeeIDs) > 0 {
			order.ManagerID = &employeeIDs[s.faker.Number(0, len(employeeIDs)-1)]
		}
		if len(facilityIDs) > 0 {
			order.FacilityID = &facilityIDs[s.faker.Number(0, len(facilityIDs)-1)]
		}
		o, err := s.orders.Create(ctx, order)
		if err != nil {
			return sum, fmt.Errorf("create order: %w", err)
		}
		sum.Orders++

		for range s.faker.Number(1, 3) {
			if len(materials) == 0 {
				break
			}
			m := materials[s.faker.Number(0, len(materials)-1)]
			qty := decimal.NewFromInt(int64(s.faker.Number(1, 40)))
			line, err := s.orderMaterials.Create(ctx, &tradeapp.OrderMaterialDTO{
				Quantity:   &qty,
				UnitPrice:  &m.price,
				OrderID:    o.ID,
				MaterialID: &m.material,
			})
			if err != nil {
				return sum, fmt.Errorf("create order material: %w", err)
			}
			sum.OrderLines++

			if m.availability != nil && status != trade.OrderStatusCancelled {
				rs := trade.MaterialReserveStatusReserved
				if status == trade.OrderStatusCompleted {
					rs = trade.MaterialReserveStatusIssued
				}
				if _, err := s.reserves.Create(ctx, &tradeapp.MaterialReserveDTO{
					Quantity:        &qty,
					ReservedOn:      o.OrderDate,
					Status:          &rs,
					OrderMaterialID: line.ID,
					AvailabilityID:  m.availability,
				}); err != nil {
					return sum, fmt.Errorf("create material reserve: %w", err)
				}
			}
		}

		if len(services) > 0 {
			sv := services[s.faker.Number(0, len(services)-1)]
			qty := decimal.NewFromInt(int64(s.faker.Number(1, 60)))
			line, err := s.orderServices.Create(ctx, &tradeapp.OrderServiceDTO{
				Quantity:  &qty,
				UnitPrice: &sv.price,
				OrderID:   o.ID,
				ServiceID: &sv.service,
			})
			if err != nil {
				return sum, fmt.Errorf("create order service: %w", err)
			}
			sum.OrderLines++

			if sv.schedule != nil {
				qs := trade.ServiceQuotingStatusRequested
				if status == trade.OrderStatusCompleted {
					qs = trade.ServiceQuotingStatusDone
				}
				if _, err := s.quotas.Create(ctx, &tradeapp.ServiceQuotaDTO{
					DateFrom:       o.DueDate,
					DateTo:         o.DueDate,
					Status:         &qs,
					OrderServiceID: line.ID,
					AvailabilityID: sv.schedule,
				}); err != nil {
					return sum, fmt.Errorf("create service quota: %w", err)
				}
			}
		}

		if status == trade.OrderStatusCompleted {
			rating := s.faker.Number(trade.MinRating, trade.MaxRating)
			if _, err := s.feedback.Create(ctx, &tradeapp.FeedbackDTO{
				Rating:      &rating,
				Comment:     str(s.faker.Sentence(12)),
				SubmittedOn: o.DueDate,
				OrderID:     o.ID,
				CustomerID:  o.CustomerID,
			}); err != nil {
				return sum, fmt.Errorf("create feedback: %w", err)
			}
			sum.Feedback++
		}
	}

	s.log.Info("Seed data created",
		zap.Int("customers", sum.Customers),
		zap.Int("employees", sum.Employees),
		zap.Int("materials", sum.Materials),
		zap.Int("orders", sum.Orders),
		zap.Int("order_lines", sum.OrderLines),
	)
	return sum, nil
}

func (s *seeder) customer() *partnerapp.CustomerDTO {
	name := s.faker.Name()
	summary := name
	if s.faker.Bool() {
		summary = s.faker.Company()
	}
	return &partnerapp.CustomerDTO{
		CustomerSummary: str(summary),
		FullName:        str(name),
		Phone:           str(s.faker.Phone()),
		Email:           str(s.faker.Email()),
		Address:         str(s.faker.Address().Address),
	}
}

func (s *seeder) employee() *partnerapp.EmployeeDTO {
	return &partnerapp.EmployeeDTO{
		EmployeeName: str(s.faker.Name()),
		Position:     str(s.faker.RandomString([]string{"Installer", "Senior installer", "Measurer", "Project manager"})),
		Phone:        str(s.faker.Phone()),
		Email:        str(s.faker.Email()),
		HiredOn:      s.day(-s.faker.Number(30, 2000)),
	}
}

func (s *seeder) price(lo, hi float64) decimal.Decimal {
	return decimal.NewFromFloat(s.faker.Price(lo, hi)).Round(2)
}

func (s *seeder) day(offset int) *time.Time {
	d := s.now.AddDate(0, 0, offset)
	return &d
}

func str(s string) *string {
	return &s
}
