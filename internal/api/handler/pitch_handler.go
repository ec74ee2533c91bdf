package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cardinal-capital/club-system/internal/core/domain"
	"github.com/cardinal-capital/club-system/internal/core/ports"
)

// PitchHandler handles stock pitch records. Lists additionally support the
// exact-match symbol filter.
type PitchHandler struct {
	service ports.ContentService[domain.Pitch]
}

func NewPitchHandler(service ports.ContentService[domain.Pitch]) *PitchHandler {
	return &PitchHandler{service: service}
}

type pitchRequest struct {
	Title     string `json:"title"     validate:"required"`
	Symbol    string `json:"symbol"    validate:"required"`
	Presenter string `json:"presenter" validate:"required"`
	FileURL   string `json:"file_url"`
	Date      string `json:"date"      validate:"required,datetime=2006-01-02"`
}

func (r pitchRequest) toDomain() domain.Pitch {
	date, _ := time.Parse("2006-01-02", r.Date)
	return domain.Pitch{
		Title:     r.Title,
		Symbol:    strings.ToUpper(r.Symbol),
		Presenter: r.Presenter,
		FileURL:   r.FileURL,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
}

func (h *PitchHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (h *PitchHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *PitchHandler) Create(c echo.Context) error {
	var req pitchRequest
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

func (h *PitchHandler) Update(c echo.Context) error {
	var req pitchRequest
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

func (h *PitchHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "pitch deleted"})
}
