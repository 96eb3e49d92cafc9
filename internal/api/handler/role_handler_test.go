package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/usermgmt/identity-service/internal/core/domain"
)

type stubRoleService struct {
	createFn func(ctx context.Context, rawName string) (*domain.Role, error)
	assignFn func(ctx context.Context, userID int64, rawName string) error
}

func (s *stubRoleService) CreateRole(ctx context.Context, rawName string) (*domain.Role, error) {
	return s.createFn(ctx, rawName)
}

func (s *stubRoleService) AssignRole(ctx context.Context, userID int64, rawName string) error {
	return s.assignFn(ctx, userID, rawName)
}

func TestRoleHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubRoleService{
		createFn: func(ctx context.Context, rawName string) (*domain.Role, error) {
			if rawName != "ADMIN" {
				t.Fatalf("unexpected raw name: %s", rawName)
			}
			return &domain.Role{ID: 1, Name: "ROLE_ADMIN"}, nil
		},
	}
	handler := NewRoleHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/admin/roles", strings.NewReader(`{"name":"ADMIN"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp roleConfirmation
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Role != "ROLE_ADMIN" {
		t.Fatalf("unexpected role in confirmation: %q", resp.Role)
	}
}

func TestRoleHandler_Create_Duplicate(t *testing.T) {
	e := newTestEcho()
	stub := &stubRoleService{
		createFn: func(ctx context.Context, rawName string) (*domain.Role, error) {
			return nil, domain.ErrDuplicateRole
		},
	}
	handler := NewRoleHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/admin/roles", strings.NewReader(`{"name":"ADMIN"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != domain.ErrDuplicateRole {
		t.Fatalf("expected ErrDuplicateRole, got %v", err)
	}
}

func TestRoleHandler_Assign_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubRoleService{
		assignFn: func(ctx context.Context, userID int64, rawName string) error {
			if userID != 7 || rawName != "ADMIN" {
				t.Fatalf("unexpected args: %d %s", userID, rawName)
			}
			return nil
		},
	}
	handler := NewRoleHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/admin/users/7/roles", strings.NewReader(`{"name":"ADMIN"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := handler.Assign(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRoleHandler_Assign_BadUserID(t *testing.T) {
	e := newTestEcho()
	handler := NewRoleHandler(&stubRoleService{})

	req := httptest.NewRequest(http.MethodPost, "/admin/users/abc/roles", strings.NewReader(`{"name":"ADMIN"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := handler.Assign(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
