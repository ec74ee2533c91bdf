package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/cardinal-capital/club-system/internal/core/domain"
	"github.com/cardinal-capital/club-system/internal/core/pagination"
	"github.com/cardinal-capital/club-system/internal/core/ports"
)

type stubMemberService struct {
	listResult *pagination.Result[domain.User]
	err        error

	gotCaller   ports.Session
	gotTargetID string
	gotRole     domain.Role
	gotQuery    pagination.Query
}

func (s *stubMemberService) List(_ context.Context, q pagination.Query) (*pagination.Result[domain.User], error) {
	s.gotQuery = q
	return s.listResult, s.err
}

func (s *stubMemberService) UpdateRole(_ context.Context, caller ports.Session, targetID string, role domain.Role) error {
	s.gotCaller, s.gotTargetID, s.gotRole = caller, targetID, role
	return s.err
}

func (s *stubMemberService) TransferLeadership(_ context.Context, caller ports.Session, targetID string, role domain.Role) error {
	s.gotCaller, s.gotTargetID, s.gotRole = caller, targetID, role
	return s.err
}

func (s *stubMemberService) Deactivate(_ context.Context, caller ports.Session, targetID string) error {
	s.gotCaller, s.gotTargetID = caller, targetID
	return s.err
}

func sessionContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, sess *ports.Session) echo.Context {
	c := e.NewContext(req, rec)
	if sess != nil {
		c.Set("session", sess)
	}
	return c
}

func TestMemberHandler_List(t *testing.T) {
	e := newTestEcho()
	svc := &stubMemberService{listResult: &pagination.Result[domain.User]{
		Data:       []domain.User{{ID: "u1", Name: "Ada"}},
		Total:      1,
		Page:       1,
		PageSize:   20,
		TotalPages: 1,
	}}
	h := NewMemberHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/v1/members?page=2&pageSize=5&search=ada", nil)
	rec := httptest.NewRecorder()

	if err := h.List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.gotQuery.Page != 2 || svc.gotQuery.PageSize != 5 || svc.gotQuery.Search != "ada" {
		t.Fatalf("query not forwarded: %+v", svc.gotQuery)
	}

	var resp struct {
		Total      int `json:"total"`
		TotalPages int `json:"totalPages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Total != 1 || resp.TotalPages != 1 {
		t.Fatalf("envelope = %+v", resp)
	}
}

func TestMemberHandler_UpdateRole(t *testing.T) {
	e := newTestEcho()
	svc := &stubMemberService{}
	h := NewMemberHandler(svc)

	req := jsonRequest(http.MethodPut, "/v1/members/u2/role", `{"role":"secretary"}`)
	rec := httptest.NewRecorder()
	c := sessionContext(e, req, rec, &ports.Session{UserID: "u1", Role: domain.RoleAdmin})
	c.SetParamNames("id")
	c.SetParamValues("u2")

	if err := h.UpdateRole(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.gotCaller.UserID != "u1" || svc.gotTargetID != "u2" || svc.gotRole != domain.RoleSecretary {
		t.Fatalf("call = caller %s target %s role %s", svc.gotCaller.UserID, svc.gotTargetID, svc.gotRole)
	}
}

func TestMemberHandler_UpdateRole_NoSession(t *testing.T) {
	e := newTestEcho()
	h := NewMemberHandler(&stubMemberService{})

	req := jsonRequest(http.MethodPut, "/v1/members/u2/role", `{"role":"secretary"}`)
	err := h.UpdateRole(sessionContext(e, req, httptest.NewRecorder(), nil))

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestMemberHandler_TransferRole(t *testing.T) {
	e := newTestEcho()
	svc := &stubMemberService{}
	h := NewMemberHandler(svc)

	req := jsonRequest(http.MethodPost, "/v1/members/transfer-role",
		`{"target_id":"u2","role":"president"}`)
	rec := httptest.NewRecorder()
	c := sessionContext(e, req, rec, &ports.Session{UserID: "u1", Role: domain.RolePresident})

	if err := h.TransferRole(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.gotTargetID != "u2" || svc.gotRole != domain.RolePresident {
		t.Fatalf("call = target %s role %s", svc.gotTargetID, svc.gotRole)
	}
}

// A role that differs from the caller's own is the service's call (403 via
// ErrRoleMismatch), not a schema rejection: the handler must forward it.
func TestMemberHandler_TransferRole_RoleMismatchIsForbiddenNotBadRequest(t *testing.T) {
	e := newTestEcho()
	svc := &stubMemberService{err: domain.ErrRoleMismatch}
	h := NewMemberHandler(svc)

	req := jsonRequest(http.MethodPost, "/v1/members/transfer-role",
		`{"target_id":"u2","role":"secretary"}`)
	c := sessionContext(e, req, httptest.NewRecorder(), &ports.Session{UserID: "u1", Role: domain.RolePresident})

	if err := h.TransferRole(c); err != domain.ErrRoleMismatch {
		t.Fatalf("got %v, want ErrRoleMismatch", err)
	}
	if svc.gotTargetID != "u2" || svc.gotRole != domain.RoleSecretary {
		t.Fatalf("service call = target %s role %s", svc.gotTargetID, svc.gotRole)
	}
}

func TestMemberHandler_TransferRole_MissingFields(t *testing.T) {
	e := newTestEcho()
	svc := &stubMemberService{}
	h := NewMemberHandler(svc)

	req := jsonRequest(http.MethodPost, "/v1/members/transfer-role", `{"role":"president"}`)
	c := sessionContext(e, req, httptest.NewRecorder(), &ports.Session{UserID: "u1", Role: domain.RolePresident})

	err := h.TransferRole(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	if svc.gotTargetID != "" {
		t.Fatal("service called despite validation failure")
	}
}

func TestMemberHandler_TransferRole_ServiceErrorsPropagate(t *testing.T) {
	e := newTestEcho()
	h := NewMemberHandler(&stubMemberService{err: domain.ErrTargetIsLeadership})

	req := jsonRequest(http.MethodPost, "/v1/members/transfer-role",
		`{"target_id":"u2","role":"president"}`)
	c := sessionContext(e, req, httptest.NewRecorder(), &ports.Session{UserID: "u1", Role: domain.RolePresident})

	if err := h.TransferRole(c); err != domain.ErrTargetIsLeadership {
		t.Fatalf("got %v, want ErrTargetIsLeadership", err)
	}
}

func TestMemberHandler_Deactivate(t *testing.T) {
	e := newTestEcho()
	svc := &stubMemberService{}
	h := NewMemberHandler(svc)

	req := httptest.NewRequest(http.MethodPut, "/v1/members/u2/deactivate", nil)
	rec := httptest.NewRecorder()
	c := sessionContext(e, req, rec, &ports.Session{UserID: "u1", Role: domain.RoleAdmin})
	c.SetParamNames("id")
	c.SetParamValues("u2")

	if err := h.Deactivate(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.gotTargetID != "u2" {
		t.Fatalf("target = %q, want u2", svc.gotTargetID)
	}
}
