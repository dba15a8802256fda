package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LocalRequestID clave de c.Locals para el id de petición.
const LocalRequestID = "request_id"

const headerRequestID = "X-Request-ID"

// RequestIDMiddleware propaga el X-Request-ID entrante o genera uno nuevo, y
// lo devuelve siempre en la respuesta para correlación de logs.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set(headerRequestID, id)
		return c.Next()
	}
}

// RequestID devuelve el id de petición del contexto.
func RequestID(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalRequestID).(string)
	return v
}
