package router

import (
	"github.com/ceilingworks/erp/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
)

// CRUDHandler serves the six routes of one REST resource
type CRUDHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Patch(c *gin.Context)
	Delete(c *gin.Context)
}

// RelatedLister builds handlers that list the members of a collection
// region owned by the :id path parameter
type RelatedLister interface {
	Related(region string) gin.HandlerFunc
}

// ResourceGroup registers the CRUD routes of h under prefix
func ResourceGroup(name, prefix string, h CRUDHandler) *DomainGroup {
	return NewDomainGroup(name, prefix).
		GET("", h.List).
		POST("", h.Create).
		GET("/:id", h.Get).
		PUT("/:id", h.Update).
		PATCH("/:id", h.Patch).
		DELETE("/:id", h.Delete)
}

// RelatedResource is a resource that is also listed under its owner
type RelatedResource interface {
	CRUDHandler
	RelatedLister
}

// ResourceHandlers holds the handler of every entity resource
type ResourceHandlers struct {
	Customers            CRUDHandler
	Employees            CRUDHandler
	Facilities           CRUDHandler
	Zones                RelatedResource
	Measurements         CRUDHandler
	Materials            CRUDHandler
	MaterialMeasurements RelatedResource
	Services             CRUDHandler
	AttachedImages       RelatedResource
	MaterialAvailability CRUDHandler
	ServiceAvailability  CRUDHandler
	MaterialRequests     CRUDHandler
	MaterialArrivals     CRUDHandler
	CustomerOrders       CRUDHandler
	OrderMaterials       RelatedResource
	OrderServices        RelatedResource
	MaterialReserves     CRUDHandler
	ServiceQuotas        CRUDHandler
	Feedback             CRUDHandler
}

// API registers the ERP resources, their relation listings and the
// image and export endpoints
type API struct {
	Resources ResourceHandlers
	Images    *handler.ImageHandler
	Export    *handler.ExportHandler
	System    *handler.SystemHandler
}

// RegisterRoutes implements RouteRegistrar
func (a *API) RegisterRoutes(rg *gin.RouterGroup) {
	for _, g := range a.Groups() {
		g.RegisterRoutes(rg)
	}
}

// Groups returns one route group per resource
func (a *API) Groups() []*DomainGroup {
	r := a.Resources

	facilities := ResourceGroup("facility", "/facilities", r.Facilities)
	facilities.GET("/:id/zones", r.Zones.Related("facility.zones"))

	materials := ResourceGroup("material", "/materials", r.Materials)
	materials.GET("/:id/images", r.AttachedImages.Related("material.images"))
	materials.GET("/:id/measurements", r.MaterialMeasurements.Related("material.measurements"))

	// Deleting an image goes through the image handler so its stored
	// object is removed too.
	images := NewDomainGroup("attached-image", "/attached-images").
		GET("", r.AttachedImages.List).
		POST("", r.AttachedImages.Create).
		GET("/:id", r.AttachedImages.Get).
		PUT("/:id", r.AttachedImages.Update).
		PATCH("/:id", r.AttachedImages.Patch)

	orders := NewDomainGroup("customer-order", "/customer-orders")
	if a.Export != nil {
		orders.GET("/export", a.Export.ExportOrders)
	}
	orders.GET("", r.CustomerOrders.List).
		POST("", r.CustomerOrders.Create).
		GET("/:id", r.CustomerOrders.Get).
		PUT("/:id", r.CustomerOrders.Update).
		PATCH("/:id", r.CustomerOrders.Patch).
		DELETE("/:id", r.CustomerOrders.Delete).
		GET("/:id/materials", r.OrderMaterials.Related("customer-order.materials")).
		GET("/:id/services", r.OrderServices.Related("customer-order.services"))

	if a.Images != nil {
		materials.POST("/:id/images", a.Images.Upload)
		images.GET("/:id/content", a.Images.Content).
			DELETE("/:id", a.Images.Delete)
	} else {
		images.DELETE("/:id", r.AttachedImages.Delete)
	}

	groups := []*DomainGroup{
		ResourceGroup("customer", "/customers", r.Customers),
		ResourceGroup("employee", "/employees", r.Employees),
		facilities,
		ResourceGroup("zone", "/zones", r.Zones),
		ResourceGroup("measurement", "/measurements", r.Measurements),
		materials,
		ResourceGroup("material-measurement", "/material-measurements", r.MaterialMeasurements),
		ResourceGroup("service", "/services", r.Services),
		images,
		ResourceGroup("material-availability", "/material-availabilities", r.MaterialAvailability),
		ResourceGroup("service-availability", "/service-availabilities", r.ServiceAvailability),
		ResourceGroup("material-request", "/material-requests", r.MaterialRequests),
		ResourceGroup("material-arrival", "/material-arrivals", r.MaterialArrivals),
		orders,
		ResourceGroup("order-material", "/order-materials", r.OrderMaterials),
		ResourceGroup("order-service", "/order-services", r.OrderServices),
		ResourceGroup("material-reserve", "/material-reserves", r.MaterialReserves),
		ResourceGroup("service-quota", "/service-quotas", r.ServiceQuotas),
		ResourceGroup("feedback", "/feedbacks", r.Feedback),
	}

	if a.System != nil {
		groups = append(groups, NewDomainGroup("system", "/system").
			GET("/info", a.System.GetSystemInfo).
			GET("/ping", a.System.Ping))
	}
	return groups
}
