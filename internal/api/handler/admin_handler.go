package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/usermgmt/identity-service/internal/core/ports"
)

type AdminHandler struct {
	userService ports.UserService
}

func NewAdminHandler(userService ports.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

type statsResponse struct {
	TotalUsers int64 `json:"total_users"`
}

// Stats reports aggregate account numbers. Admin only.
func (h *AdminHandler) Stats(c echo.Context) error {
	total, err := h.userService.CountUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statsResponse{TotalUsers: total})
}
