package router

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	catalogapp "github.com/ceilingworks/erp/internal/application/catalog"
	"github.com/ceilingworks/erp/internal/domain/shared"
	"github.com/ceilingworks/erp/internal/interfaces/http/handler"
	"github.com/ceilingworks/erp/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())

	assert.Empty(t, r.apiVersion)
	assert.Equal(t, "/api", r.BasePath())
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	r := NewRouter(gin.New(), WithAPIVersion("v2"))

	assert.Equal(t, "v2", r.apiVersion)
	assert.Equal(t, "/api/v2", r.BasePath())
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()

	group := NewDomainGroup("system", "/system").
		GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	NewRouter(engine).Register(group).Setup()

	w := serve(engine, http.MethodGet, "/api/system/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestDomainGroup(t *testing.T) {
	t.Run("name and prefix", func(t *testing.T) {
		g := NewDomainGroup("facility", "/facilities")
		assert.Equal(t, "facility", g.Name())
		assert.Equal(t, "/facilities", g.Prefix())
	})

	t.Run("every method is registered", func(t *testing.T) {
		engine := gin.New()
		ok := func(c *gin.Context) { c.String(http.StatusOK, c.Request.Method) }
		g := NewDomainGroup("zone", "/zones").
			GET("/:id", ok).
			POST("", ok).
			PUT("/:id", ok).
			PATCH("/:id", ok).
			DELETE("/:id", ok)
		g.RegisterRoutes(engine.Group("/api"))

		for _, tc := range []struct{ method, path string }{
			{http.MethodGet, "/api/zones/1"},
			{http.MethodPost, "/api/zones"},
			{http.MethodPut, "/api/zones/1"},
			{http.MethodPatch, "/api/zones/1"},
			{http.MethodDelete, "/api/zones/1"},
		} {
			w := serve(engine, tc.method, tc.path)
			assert.Equal(t, http.StatusOK, w.Code, "%s %s", tc.method, tc.path)
			assert.Equal(t, tc.method, w.Body.String())
		}
	})

	t.Run("group middleware", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("customer-order", "/customer-orders").
			Use(func(c *gin.Context) {
				c.Header("X-Group", "customer-order")
				c.Next()
			}).
			GET("", func(c *gin.Context) { c.String(http.StatusOK, "orders") })
		g.RegisterRoutes(engine.Group("/api"))

		w := serve(engine, http.MethodGet, "/api/customer-orders")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "customer-order", w.Header().Get("X-Group"))
	})
}

// stubResource answers every route with "<name> <operation>"
type stubResource struct {
	name string
}

func (s stubResource) reply(op string) gin.HandlerFunc {
	return func(c *gin.Context) { c.String(http.StatusOK, s.name+" "+op) }
}

func (s stubResource) List(c *gin.Context)   { s.reply("list")(c) }
func (s stubResource) Create(c *gin.Context) { s.reply("create")(c) }
func (s stubResource) Get(c *gin.Context)    { s.reply("get")(c) }
func (s stubResource) Update(c *gin.Context) { s.reply("update")(c) }
func (s stubResource) Patch(c *gin.Context)  { s.reply("patch")(c) }
func (s stubResource) Delete(c *gin.Context) { s.reply("delete")(c) }
func (s stubResource) Related(region string) gin.HandlerFunc {
	return s.reply("related " + region)
}

type stubImages struct{ deleted bool }

func (s *stubImages) Upload(context.Context, int64, []byte, string, *string) (*catalogapp.AttachedImageDTO, error) {
	return &catalogapp.AttachedImageDTO{}, nil
}

func (s *stubImages) Content(context.Context, int64) ([]byte, string, error) {
	return []byte("img"), "image/png", nil
}

func (s *stubImages) Delete(context.Context, int64) error {
	s.deleted = true
	return nil
}

type stubExporter struct{}

func (stubExporter) Export(_ context.Context, _ shared.Filter, w io.Writer) (int, error) {
	_, err := w.Write([]byte("xlsx"))
	return 0, err
}

func newAPIEngine(images *stubImages) *gin.Engine {
	res := func(name string) stubResource { return stubResource{name: name} }
	api := &API{
		Resources: ResourceHandlers{
			Customers:            res("customer"),
			Employees:            res("employee"),
			Facilities:           res("facility"),
			Zones:                res("zone"),
			Measurements:         res("measurement"),
			Materials:            res("material"),
			MaterialMeasurements: res("material-measurement"),
			Services:             res("service"),
			AttachedImages:       res("attached-image"),
			MaterialAvailability: res("material-availability"),
			ServiceAvailability:  res("service-availability"),
			MaterialRequests:     res("material-request"),
			MaterialArrivals:     res("material-arrival"),
			CustomerOrders:       res("customer-order"),
			OrderMaterials:       res("order-material"),
			OrderServices:        res("order-service"),
			MaterialReserves:     res("material-reserve"),
			ServiceQuotas:        res("service-quota"),
			Feedback:             res("feedback"),
		},
		Export: handler.NewExportHandler(stubExporter{}),
		System: handler.NewSystemHandler("ceiling-erp", "test", nil),
	}
	if images != nil {
		api.Images = handler.NewImageHandler(images)
	}

	engine := gin.New()
	NewRouter(engine).Register(api).Setup()
	return engine
}

func TestAPI_ResourceRoutes(t *testing.T) {
	engine := newAPIEngine(&stubImages{})

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/customers", "customer list"},
		{http.MethodPost, "/api/employees", "employee create"},
		{http.MethodGet, "/api/facilities/3", "facility get"},
		{http.MethodPut, "/api/zones/3", "zone update"},
		{http.MethodPatch, "/api/measurements/3", "measurement patch"},
		{http.MethodDelete, "/api/materials/3", "material delete"},
		{http.MethodGet, "/api/material-measurements", "material-measurement list"},
		{http.MethodGet, "/api/services/1", "service get"},
		{http.MethodGet, "/api/attached-images/1", "attached-image get"},
		{http.MethodGet, "/api/material-availabilities", "material-availability list"},
		{http.MethodGet, "/api/service-availabilities", "service-availability list"},
		{http.MethodPost, "/api/material-requests", "material-request create"},
		{http.MethodPost, "/api/material-arrivals", "material-arrival create"},
		{http.MethodGet, "/api/customer-orders/9", "customer-order get"},
		{http.MethodDelete, "/api/customer-orders/9", "customer-order delete"},
		{http.MethodGet, "/api/order-materials", "order-material list"},
		{http.MethodGet, "/api/order-services", "order-service list"},
		{http.MethodGet, "/api/material-reserves", "material-reserve list"},
		{http.MethodGet, "/api/service-quotas", "service-quota list"},
		{http.MethodGet, "/api/feedbacks", "feedback list"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := serve(engine, tt.method, tt.path)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}

func TestAPI_RelatedRoutes(t *testing.T) {
	engine := newAPIEngine(&stubImages{})

	tests := map[string]string{
		"/api/facilities/4/zones":          "zone related facility.zones",
		"/api/materials/4/images":          "attached-image related material.images",
		"/api/materials/4/measurements":    "material-measurement related material.measurements",
		"/api/customer-orders/4/materials": "order-material related customer-order.materials",
		"/api/customer-orders/4/services":  "order-service related customer-order.services",
	}

	for path, body := range tests {
		w := serve(engine, http.MethodGet, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, body, w.Body.String(), path)
	}
}

func TestAPI_ExportAndImages(t *testing.T) {
	images := &stubImages{}
	engine := newAPIEngine(images)

	w := serve(engine, http.MethodGet, "/api/customer-orders/export")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "xlsx", w.Body.String())

	w = serve(engine, http.MethodGet, "/api/attached-images/2/content")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "img", w.Body.String())

	w = serve(engine, http.MethodDelete, "/api/attached-images/2")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, images.deleted)
}

func TestAPI_WithoutImageHandler(t *testing.T) {
	engine := newAPIEngine(nil)

	w := serve(engine, http.MethodDelete, "/api/attached-images/2")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attached-image delete", w.Body.String())

	w = serve(engine, http.MethodGet, "/api/attached-images/2/content")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_SystemRoutes(t *testing.T) {
	engine := newAPIEngine(nil)

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/api/system/ping").Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/api/system/info").Code)
}
