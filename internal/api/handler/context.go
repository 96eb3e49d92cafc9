package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty email
// proves the middleware ran.
func ctxIdentity(c echo.Context) (email string, roles []string, err error) {
	email, _ = c.Get("email").(string)
	if email == "" {
		return "", nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	roles, _ = c.Get("roles").([]string)
	return email, roles, nil
}
