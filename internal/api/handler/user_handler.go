package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/invenco/inventory-system/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type listUsersResponse struct {
	Data  []userResponse `json:"data"`
	Total int            `json:"total"`
}

// List handles GET /v1/users. Admin only.
//
// @Summary      List users with their roles
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	caller, err := CallerFrom(c)
	if err != nil {
		return err
	}

	users, err := h.service.ListUsers(c.Request().Context(), caller)
	if err != nil {
		return err
	}

	data := make([]userResponse, len(users))
	for i, u := range users {
		data[i] = userResponse{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			Role:      u.Role.String(),
			CreatedAt: u.CreatedAt,
		}
	}
	return c.JSON(http.StatusOK, listUsersResponse{Data: data, Total: len(data)})
}
