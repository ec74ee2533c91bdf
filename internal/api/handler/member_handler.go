package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cardinal-capital/club-system/internal/core/domain"
	"github.com/cardinal-capital/club-system/internal/core/ports"
)

// MemberHandler handles member administration: roster listing, role changes,
// and the leadership transfer workflow.
type MemberHandler struct {
	service ports.MemberService
}

func NewMemberHandler(service ports.MemberService) *MemberHandler {
	return &MemberHandler{service: service}
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// transferRoleRequest deliberately does not constrain the role value: the
// service rejects any role other than the caller's own with a 403, and the
// schema must not shadow that with a 400.
type transferRoleRequest struct {
	TargetID string `json:"target_id" validate:"required"`
	Role     string `json:"role"      validate:"required"`
}

// List handles GET /v1/members.
func (h *MemberHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// UpdateRole handles PUT /v1/members/:id/role.
func (h *MemberHandler) UpdateRole(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.UpdateRole(c.Request().Context(), sess, c.Param("id"), domain.Role(req.Role)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "role updated"})
}

// TransferRole handles POST /v1/members/transfer-role. The caller hands
// their own leadership role to the target and is demoted to holdings_read.
func (h *MemberHandler) TransferRole(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req transferRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.TransferLeadership(c.Request().Context(), sess, req.TargetID, domain.Role(req.Role)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "leadership role transferred"})
}

// Deactivate handles PUT /v1/members/:id/deactivate.
func (h *MemberHandler) Deactivate(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.service.Deactivate(c.Request().Context(), sess, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "member deactivated"})
}
