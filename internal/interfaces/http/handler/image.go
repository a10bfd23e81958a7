package handler

import (
	"context"
	"io"
	"net/http"

	catalogapp "github.com/ceilingworks/erp/internal/application/catalog"
	"github.com/ceilingworks/erp/internal/domain/catalog"
	"github.com/ceilingworks/erp/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ImageStore attaches image bytes to materials
type ImageStore interface {
	Upload(ctx context.Context, materialID int64, data []byte, contentType string, caption *string) (*catalogapp.AttachedImageDTO, error)
	Content(ctx context.Context, id int64) ([]byte, string, error)
	Delete(ctx context.Context, id int64) error
}

// ImageHandler handles material image uploads and downloads
type ImageHandler struct {
	BaseHandler
	images ImageStore
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(images ImageStore) *ImageHandler {
	return &ImageHandler{images: images}
}

// Upload handles POST /materials/:id/images as multipart form data with a
// "file" part and an optional "caption" field.
// @Summary      Upload a material image
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path int true "Material ID"
// @Param        file formData file true "Image file"
// @Param        caption formData string false "Caption"
// @Success      201 {object} dto.Response{data=catalogapp.AttachedImageDTO}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      413 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /materials/{id}/images [post]
func (h *ImageHandler) Upload(c *gin.Context) {
	materialID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid material ID format")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "Image file is required")
		return
	}
	if file.Size > catalog.MaxImageSize {
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeRequestTooLarge, "Image exceeds maximum allowed size")
		return
	}

	f, err := file.Open()
	if err != nil {
		h.BadRequest(c, "Failed to read uploaded file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, catalog.MaxImageSize+1))
	if err != nil {
		h.BadRequest(c, "Failed to read uploaded file")
		return
	}

	var caption *string
	if v := c.PostForm("caption"); v != "" {
		caption = &v
	}

	created, err := h.images.Upload(c.Request.Context(), materialID, data, file.Header.Get("Content-Type"), caption)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// Content handles GET /attached-images/:id/content
// @Summary      Download image bytes
// @Tags         images
// @Produce      image/*
// @Param        id path int true "Image ID"
// @Success      200 {file} binary
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /attached-images/{id}/content [get]
func (h *ImageHandler) Content(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid image ID format")
		return
	}

	data, contentType, err := h.images.Content(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.Header("Cache-Control", "private, max-age=300")
	c.Data(http.StatusOK, contentType, data)
}

// Delete handles DELETE /attached-images/:id, removing the stored object too
// @Summary      Delete an image
// @Tags         images
// @Produce      json
// @Param        id path int true "Image ID"
// @Success      204
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /attached-images/{id} [delete]
func (h *ImageHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid image ID format")
		return
	}

	if err := h.images.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
