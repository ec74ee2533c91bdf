package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cardinal-capital/club-system/internal/core/domain"
	"github.com/cardinal-capital/club-system/internal/core/ports"
)

// NewsletterHandler handles the newsletter archive. Reads are public;
// mutations are gated on SECRETARY by the router.
type NewsletterHandler struct {
	service ports.ContentService[domain.Newsletter]
}

func NewNewsletterHandler(service ports.ContentService[domain.Newsletter]) *NewsletterHandler {
	return &NewsletterHandler{service: service}
}

type newsletterRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	FileURL     string `json:"file_url"`
	Date        string `json:"date"        validate:"required,datetime=2006-01-02"`
}

func (r newsletterRequest) toDomain() domain.Newsletter {
	date, _ := time.Parse("2006-01-02", r.Date)
	return domain.Newsletter{
		Title:       r.Title,
		Description: r.Description,
		FileURL:     r.FileURL,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
}

// List handles GET /v1/newsletters with page/pageSize/year/search params.
func (h *NewsletterHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Get handles GET /v1/newsletters/:id.
func (h *NewsletterHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /v1/newsletters.
func (h *NewsletterHandler) Create(c echo.Context) error {
	var req newsletterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item := req.toDomain()
	created, err := h.service.Create(c.Request().Context(), &item)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /v1/newsletters/:id.
func (h *NewsletterHandler) Update(c echo.Context) error {
	var req newsletterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item := req.toDomain()
	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), &item)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/newsletters/:id.
func (h *NewsletterHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "newsletter deleted"})
}
