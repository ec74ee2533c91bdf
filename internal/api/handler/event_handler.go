package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cardinal-capital/club-system/internal/core/domain"
	"github.com/cardinal-capital/club-system/internal/core/ports"
)

// EventHandler handles club events. Lists additionally support the month
// filter variant (month=1..12, combined with year).
type EventHandler struct {
	service ports.ContentService[domain.Event]
}

func NewEventHandler(service ports.ContentService[domain.Event]) *EventHandler {
	return &EventHandler{service: service}
}

type eventRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location"    validate:"required"`
	Date        string `json:"date"        validate:"required"`
	EndsAt      string `json:"ends_at"`
}

func (r eventRequest) toDomain() (domain.Event, error) {
	date, err := time.Parse(time.RFC3339, r.Date)
	if err != nil {
		return domain.Event{}, echo.NewHTTPError(http.StatusBadRequest, "date must be RFC 3339")
	}
	ev := domain.Event{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
	if r.EndsAt != "" {
		endsAt, err := time.Parse(time.RFC3339, r.EndsAt)
		if err != nil {
			return domain.Event{}, echo.NewHTTPError(http.StatusBadRequest, "ends_at must be RFC 3339")
		}
		ev.EndsAt = endsAt
	}
	return ev, nil
}

func (h *EventHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (h *EventHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *EventHandler) Create(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := req.toDomain()
	if err != nil {
		return err
	}
	created, err := h.service.Create(c.Request().Context(), &item)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) Update(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := req.toDomain()
	if err != nil {
		return err
	}
	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), &item)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "event deleted"})
}
