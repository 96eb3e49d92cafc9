package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/usermgmt/identity-service/internal/core/domain"
)

func TestHTTPErrorHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"email exists", domain.ErrEmailExists, http.StatusConflict, "email already registered"},
		{"duplicate role", domain.ErrDuplicateRole, http.StatusConflict, "role already exists"},
		{"role already assigned", domain.ErrRoleAlreadyAssigned, http.StatusConflict, "role already assigned"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"role not found", domain.ErrRoleNotFound, http.StatusNotFound, "role not found"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"expired token", domain.ErrTokenExpired, http.StatusUnauthorized, "invalid token"},
		{"malformed token", domain.ErrTokenMalformed, http.StatusUnauthorized, "invalid token"},
		{"subject mismatch", domain.ErrTokenSubjectMismatch, http.StatusUnauthorized, "invalid token"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"default role missing", domain.ErrDefaultRoleMissing, http.StatusInternalServerError, "internal server error"},
		{"unknown", errors.New("store exploded"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := NewHTTPErrorHandler(zerolog.Nop())
			handler(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.Error != tc.msg {
				t.Fatalf("expected %q, got %q", tc.msg, body.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_TokenFailuresAreIndistinguishable(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())

	bodies := make(map[string]struct{})
	for _, err := range []error{domain.ErrTokenMalformed, domain.ErrTokenExpired, domain.ErrTokenSubjectMismatch} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler(err, c)
		bodies[rec.Body.String()] = struct{}{}
	}

	if len(bodies) != 1 {
		t.Fatalf("token failure responses must be identical, got %d variants", len(bodies))
	}
}

func TestHTTPErrorHandler_WrappedErrors(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(errWrap(domain.ErrEmailExists), c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for wrapped error, got %d", rec.Code)
	}
}

func errWrap(err error) error {
	return &wrapped{err}
}

type wrapped struct{ err error }

func (w *wrapped) Error() string { return "register: " + w.err.Error() }
func (w *wrapped) Unwrap() error { return w.err }
