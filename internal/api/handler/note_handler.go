package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cardinal-capital/club-system/internal/core/domain"
	"github.com/cardinal-capital/club-system/internal/core/ports"
)

// NoteHandler handles meeting minutes.
type NoteHandler struct {
	service ports.ContentService[domain.MeetingNote]
}

func NewNoteHandler(service ports.ContentService[domain.MeetingNote]) *NoteHandler {
	return &NoteHandler{service: service}
}

type noteRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body"  validate:"required"`
	Date  string `json:"date"  validate:"required,datetime=2006-01-02"`
}

func (r noteRequest) toDomain() domain.MeetingNote {
	date, _ := time.Parse("2006-01-02", r.Date)
	return domain.MeetingNote{
		Title:     r.Title,
		Body:      r.Body,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
}

func (h *NoteHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (h *NoteHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *NoteHandler) Create(c echo.Context) error {
	var req noteRequest
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

func (h *NoteHandler) Update(c echo.Context) error {
	var req noteRequest
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

func (h *NoteHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "note deleted"})
}
