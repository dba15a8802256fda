package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/allanborges/restaurant-api/internal/application/auth"
	"github.com/allanborges/restaurant-api/internal/application/dto"
	"github.com/allanborges/restaurant-api/pkg/logger"
)

// headerAdminSecret transporta el secreto de bootstrap del alta de admin.
const headerAdminSecret = "X-ADMIN-SECRET"

// AuthHandler maneja registro, alta de admin y login.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Register godoc
// @Summary      Registrar cuenta pendiente de aprobación
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterUserRequest  true  "datos de registro"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ValidationError
// @Failure      409   {object}  dto.StandardError
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterUserRequest
	if err := c.BodyParser(&in); err != nil {
		return writeStatus(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if errs := in.Validate(); len(errs) > 0 {
		return writeValidation(c, errs)
	}
	user, err := h.uc.RegisterPending(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// RegisterAdmin godoc
// @Summary      Alta directa de cuenta ADMIN (bootstrap)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        X-ADMIN-SECRET  header  string  true  "secreto de bootstrap"
// @Param        body  body  dto.RegisterUserRequest  true  "datos de registro"
// @Success      201   {object}  dto.UserResponse
// @Failure      403   {object}  dto.StandardError
// @Failure      409   {object}  dto.StandardError
// @Router       /auth/register-admin [post]
func (h *AuthHandler) RegisterAdmin(c *fiber.Ctx) error {
	var in dto.RegisterUserRequest
	if err := c.BodyParser(&in); err != nil {
		return writeStatus(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if errs := in.Validate(); len(errs) > 0 {
		return writeValidation(c, errs)
	}
	user, err := h.uc.RegisterAdmin(c.UserContext(), in, c.Get(headerAdminSecret))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AuthRequest  true  "credenciales"
// @Success      200   {object}  dto.AuthResponse
// @Failure      401   {object}  dto.StandardError
// @Failure      403   {object}  dto.StandardError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.AuthRequest
	if err := c.BodyParser(&in); err != nil {
		return writeStatus(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Username == "" || in.Password == "" {
		return writeStatus(c, fiber.StatusBadRequest, "username y password son requeridos")
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
