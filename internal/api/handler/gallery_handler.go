package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cardinal-capital/club-system/internal/core/domain"
	"github.com/cardinal-capital/club-system/internal/core/ports"
)

// GalleryHandler handles gallery images. Metadata lives in the gallery
// collection; the binary payload goes through the file store. Uploads are
// multipart form requests, not JSON.
type GalleryHandler struct {
	service ports.ContentService[domain.GalleryImage]
	files   ports.FileStore
}

func NewGalleryHandler(service ports.ContentService[domain.GalleryImage], files ports.FileStore) *GalleryHandler {
	return &GalleryHandler{service: service, files: files}
}

func (h *GalleryHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (h *GalleryHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Upload handles POST /v1/gallery: multipart form with title, optional
// caption and date (2006-01-02), and the image under "file".
func (h *GalleryHandler) Upload(c echo.Context) error {
	title := c.FormValue("title")
	if title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}

	date := time.Now().UTC()
	if raw := c.FormValue("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be formatted 2006-01-02")
		}
		date = parsed
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	fileID, err := h.files.Save(c.Request().Context(), fh.Filename, src)
	if err != nil {
		return err
	}

	item := domain.GalleryImage{
		Title:     title,
		Caption:   c.FormValue("caption"),
		FileID:    fileID,
		URL:       "/v1/gallery/" + fileID + "/file",
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
	created, err := h.service.Create(c.Request().Context(), &item)
	if err != nil {
		// Orphaned upload: the metadata write failed, remove the blob.
		_ = h.files.Delete(c.Request().Context(), fileID)
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// File handles GET /v1/gallery/:id/file and streams the stored image. The
// path parameter is the file id embedded in the image's URL field. The
// stream is opened before any response byte is written so a missing blob
// still renders as a 404.
func (h *GalleryHandler) File(c echo.Context) error {
	rc, err := h.files.Open(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	defer rc.Close()
	return c.Stream(http.StatusOK, "application/octet-stream", rc)
}

// Delete handles DELETE /v1/gallery/:id, removing both metadata and blob.
func (h *GalleryHandler) Delete(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	_ = h.files.Delete(c.Request().Context(), item.FileID)
	return c.JSON(http.StatusOK, messageResponse{Message: "image deleted"})
}
