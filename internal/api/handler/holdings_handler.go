package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cardinal-capital/club-system/internal/core/domain"
	"github.com/cardinal-capital/club-system/internal/core/ports"
)

// HoldingsHandler handles the portfolio tracker. Reads are gated on
// HOLDINGS_READ, mutations and the manual refresh on HOLDINGS_WRITE.
type HoldingsHandler struct {
	service ports.HoldingsService
}

func NewHoldingsHandler(service ports.HoldingsService) *HoldingsHandler {
	return &HoldingsHandler{service: service}
}

type holdingRequest struct {
	Symbol      string  `json:"symbol"       validate:"required"`
	Shares      float64 `json:"shares"       validate:"required,gt=0"`
	CostBasis   float64 `json:"cost_basis"   validate:"required,gt=0"`
	PurchasedAt string  `json:"purchased_at" validate:"required,datetime=2006-01-02"`
	Notes       string  `json:"notes"`
}

func (r holdingRequest) toDomain() domain.Holding {
	purchased, _ := time.Parse("2006-01-02", r.PurchasedAt)
	return domain.Holding{
		Symbol:      r.Symbol,
		Shares:      r.Shares,
		CostBasis:   r.CostBasis,
		PurchasedAt: purchased,
		Notes:       r.Notes,
	}
}

type refreshResponse struct {
	Message string `json:"message"`
	Updated int    `json:"updated"`
}

func (h *HoldingsHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (h *HoldingsHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *HoldingsHandler) Create(c echo.Context) error {
	var req holdingRequest
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

func (h *HoldingsHandler) Update(c echo.Context) error {
	var req holdingRequest
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

func (h *HoldingsHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "holding deleted"})
}

// Refresh handles POST /v1/holdings/refresh, pulling current prices for
// every held symbol from the market-data provider.
func (h *HoldingsHandler) Refresh(c echo.Context) error {
	updated, err := h.service.RefreshPrices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, refreshResponse{Message: "prices refreshed", Updated: updated})
}

// SymbolSearch handles GET /v1/holdings/symbol-search?q=... and proxies the
// market-data provider's ticker lookup.
func (h *HoldingsHandler) SymbolSearch(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}

	result, err := h.service.SearchSymbol(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
