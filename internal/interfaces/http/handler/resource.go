package handler

import (
	"context"
	"strconv"
	"strings"

	"github.com/ceilingworks/erp/internal/domain/shared"
	"github.com/ceilingworks/erp/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// TotalCountHeader carries the unpaged number of matches of a list request
const TotalCountHeader = "X-Total-Count"

// Resource is the CRUD contract served by ResourceHandler. crud.Service
// implements it for every entity.
type Resource[D any] interface {
	Name() string
	Create(ctx context.Context, dto *D) (*D, error)
	Update(ctx context.Context, id int64, dto *D) (*D, error)
	Patch(ctx context.Context, id int64, dto *D) (*D, error)
	Get(ctx context.Context, id int64) (*D, error)
	List(ctx context.Context, filter shared.Filter) ([]D, int64, error)
	Related(ctx context.Context, region string, parentID int64) ([]D, error)
	Delete(ctx context.Context, id int64) error
}

// ResourceHandler exposes one entity as a REST resource
type ResourceHandler[D any] struct {
	BaseHandler
	service Resource[D]
}

// NewResourceHandler creates a ResourceHandler over service
func NewResourceHandler[D any](service Resource[D]) *ResourceHandler[D] {
	return &ResourceHandler[D]{service: service}
}

// Create handles POST /<resource>
// @Summary      Create an entity
// @Description  The body must not carry an id
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        resource path string true "Resource collection, e.g. customers"
// @Param        request body object true "Entity attributes"
// @Success      201 {object} dto.Response
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /{resource} [post]
func (h *ResourceHandler[D]) Create(c *gin.Context) {
	var req D
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// Update handles PUT /<resource>/:id
// @Summary      Replace an entity
// @Description  Every attribute is replaced; the body id must match the path
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        resource path string true "Resource collection, e.g. customers"
// @Param        id path int true "Entity ID"
// @Param        request body object true "Entity attributes"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /{resource}/{id} [put]
func (h *ResourceHandler[D]) Update(c *gin.Context) {
	h.save(c, h.service.Update)
}

// Patch handles PATCH /<resource>/:id. Only the fields present in the
// body are applied.
// @Summary      Patch an entity
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        resource path string true "Resource collection, e.g. customers"
// @Param        id path int true "Entity ID"
// @Param        request body object true "Attributes to change"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /{resource}/{id} [patch]
func (h *ResourceHandler[D]) Patch(c *gin.Context) {
	h.save(c, h.service.Patch)
}

func (h *ResourceHandler[D]) save(c *gin.Context, op func(context.Context, int64, *D) (*D, error)) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid "+h.service.Name()+" ID format")
		return
	}

	var req D
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindError(c, err)
		return
	}

	saved, err := op(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, saved)
}

// Get handles GET /<resource>/:id
// @Summary      Get an entity
// @Tags         resources
// @Produce      json
// @Param        resource path string true "Resource collection, e.g. customers"
// @Param        id path int true "Entity ID"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /{resource}/{id} [get]
func (h *ResourceHandler[D]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid "+h.service.Name()+" ID format")
		return
	}

	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, found)
}

// List handles GET /<resource>?page=&size=&sort=&dir=
// @Summary      List entities
// @Description  The unpaged number of matches is returned in X-Total-Count
// @Tags         resources
// @Produce      json
// @Param        resource path string true "Resource collection, e.g. customers"
// @Param        page query int false "Page number" default(1)
// @Param        size query int false "Page size" default(20)
// @Param        sort query string false "Sort field"
// @Param        dir query string false "Sort direction" Enums(asc, desc)
// @Success      200 {object} dto.Response{meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /{resource} [get]
func (h *ResourceHandler[D]) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.HandleBindError(c, err)
		return
	}

	filter := listFilter(req)
	items, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if items == nil {
		items = []D{}
	}

	filter = filter.Normalize()
	c.Header(TotalCountHeader, strconv.FormatInt(total, 10))
	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

// Delete handles DELETE /<resource>/:id
// @Summary      Delete an entity
// @Tags         resources
// @Produce      json
// @Param        resource path string true "Resource collection, e.g. customers"
// @Param        id path int true "Entity ID"
// @Success      204
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /{resource}/{id} [delete]
func (h *ResourceHandler[D]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid "+h.service.Name()+" ID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Related returns a handler listing the members of region owned by the
// :id path parameter, e.g. GET /facilities/:id/zones.
// @Summary      List the members of a relation
// @Tags         resources
// @Produce      json
// @Param        resource path string true "Resource collection, e.g. customers"
// @Param        id path int true "Owner ID"
// @Param        relation path string true "Relation, e.g. zones"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /{resource}/{id}/{relation} [get]
func (h *ResourceHandler[D]) Related(region string) gin.HandlerFunc {
	return func(c *gin.Context) {
		parentID, ok := parseID(c)
		if !ok {
			h.BadRequest(c, "Invalid ID format")
			return
		}

		items, err := h.service.Related(c.Request.Context(), region, parentID)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		if items == nil {
			items = []D{}
		}
		h.Success(c, items)
	}
}

func listFilter(req dto.ListRequest) shared.Filter {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.Size > 0 {
		filter.PageSize = req.Size
	}
	if req.Sort != "" {
		filter.OrderBy = req.Sort
	}
	if req.Dir != "" {
		filter.OrderDir = strings.ToLower(req.Dir)
	}
	return filter
}
