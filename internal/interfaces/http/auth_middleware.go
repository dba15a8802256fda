package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/allanborges/restaurant-api/internal/domain/entity"
	"github.com/allanborges/restaurant-api/pkg/jwt"
)

// Locals keys del contexto de seguridad.
const (
	LocalUsername    = "username"
	LocalRoles       = "roles"
	LocalAuthorities = "authorities"
)

// AccountLoader es el contrato mínimo que necesita el middleware para
// confirmar que la cuenta del token sigue existiendo y operativa.
type AccountLoader interface {
	FindByUsername(ctx context.Context, username string) (*entity.UserAccount, error)
}

// OptionalAuth autentica si hay un bearer token válido y deja pasar anónimo en
// caso contrario; el rechazo lo deciden las políticas de ruta. Un token válido
// solo autentica si la cuenta existe, está habilitada y no está inactivada.
func OptionalAuth(tokens *jwt.Service, accounts AccountLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c)
		if tokenString == "" || !tokens.Validate(tokenString) {
			return c.Next()
		}
		username, err := tokens.Username(tokenString)
		if err != nil || username == "" {
			return c.Next()
		}
		account, err := accounts.FindByUsername(c.UserContext(), username)
		if err != nil || account == nil || !account.CanAuthenticate() {
			return c.Next()
		}
		roles := tokens.Roles(tokenString)
		c.Locals(LocalUsername, username)
		c.Locals(LocalRoles, roles)
		c.Locals(LocalAuthorities, prefixAuthorities(roles))
		return c.Next()
	}
}

// RequireAuthenticated rechaza 401 si la petición no quedó autenticada.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if Username(c) == "" {
			return writeStatus(c, fiber.StatusUnauthorized, "autenticación requerida")
		}
		return c.Next()
	}
}

// RequireRole exige al menos uno de los roles dados: 401 si la petición es
// anónima, 403 si está autenticada sin el rol.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if Username(c) == "" {
			return writeStatus(c, fiber.StatusUnauthorized, "autenticación requerida")
		}
		roles := Roles(c)
		for _, want := range allowed {
			for _, have := range roles {
				if have == want {
					return c.Next()
				}
			}
		}
		return writeStatus(c, fiber.StatusForbidden, "rol insuficiente")
	}
}

// Username devuelve el username autenticado, o vacío si la petición es anónima.
func Username(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalUsername).(string)
	return v
}

// Roles devuelve los roles del token autenticado.
func Roles(c *fiber.Ctx) []string {
	v, _ := c.Locals(LocalRoles).([]string)
	return v
}

// Authorities devuelve los roles con el prefijo ROLE_ (forma de autoridad).
func Authorities(c *fiber.Ctx) []string {
	v, _ := c.Locals(LocalAuthorities).([]string)
	return v
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func prefixAuthorities(roles []string) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, "ROLE_"+r)
	}
	return out
}
