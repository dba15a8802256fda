package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/allanborges/restaurant-api/internal/application/dto"
	"github.com/allanborges/restaurant-api/internal/application/usecase"
	"github.com/allanborges/restaurant-api/pkg/logger"
)

// UserAdminHandler maneja el listado y la aprobación de cuentas (solo ADMIN).
type UserAdminHandler struct {
	uc  *usecase.UserAdminUseCase
	log *logger.Logger
}

// NewUserAdminHandler construye el handler de administración de cuentas.
func NewUserAdminHandler(uc *usecase.UserAdminUseCase, log *logger.Logger) *UserAdminHandler {
	return &UserAdminHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar todas las cuentas
// @Tags         admin
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /admin/users [get]
// @Security     BearerAuth
func (h *UserAdminHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.FindAll(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(users)
}

// Approve godoc
// @Summary      Aprobar cuenta pendiente
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "id de la cuenta"
// @Param        body  body  dto.ApproveUserRequest  false  "roles y enabled (cuerpo ausente = habilitar)"
// @Success      200   {object}  dto.UserResponse
// @Failure      403   {object}  dto.StandardError
// @Failure      404   {object}  dto.StandardError
// @Router       /admin/users/{id}/approve [put]
// @Security     BearerAuth
func (h *UserAdminHandler) Approve(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	// cuerpo ausente o vacío equivale a la aprobación por defecto
	var req *dto.ApproveUserRequest
	if len(c.Body()) > 0 {
		req = &dto.ApproveUserRequest{}
		if err := c.BodyParser(req); err != nil {
			return writeStatus(c, fiber.StatusBadRequest, "cuerpo inválido")
		}
	}
	user, err := h.uc.Approve(c.UserContext(), id, req, Username(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(user)
}
