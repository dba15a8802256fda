// Package http expone la API sobre Fiber: router, middlewares de seguridad y
// handlers. La autenticación es opcional a nivel de middleware; cada grupo de
// rutas declara su política (pública, rol concreto o autenticada).
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/allanborges/restaurant-api/internal/application/auth"
	"github.com/allanborges/restaurant-api/internal/application/usecase"
	"github.com/allanborges/restaurant-api/internal/domain/entity"
	"github.com/allanborges/restaurant-api/pkg/jwt"
	"github.com/allanborges/restaurant-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserAdminUC *usecase.UserAdminUseCase
	DishUC      *usecase.DishUseCase
	Tokens      *jwt.Service
	Accounts    AccountLoader
	Log         *logger.Logger
}

// Router registra las rutas de la API con su política de acceso:
// públicas: registro, login, alta de admin, docs y lecturas del catálogo;
// ADMIN o KITCHEN: escrituras del catálogo; ADMIN: administración de cuentas;
// cualquier otra ruta exige autenticación.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestIDMiddleware())
	app.Use(OptionalAuth(deps.Tokens, deps.Accounts))

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/register-admin", authHandler.RegisterAdmin)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo: lecturas públicas, escrituras para ADMIN o KITCHEN
	dishHandler := NewDishHandler(deps.DishUC, deps.Log)
	dishes := app.Group("/v1/dishes")
	dishes.Get("/", dishHandler.List)
	dishes.Get("/paged", dishHandler.ListPaged)
	dishes.Get("/menu.pdf", dishHandler.MenuPDF)
	dishes.Get("/:id", dishHandler.GetByID)

	canWrite := RequireRole(entity.RoleAdmin, entity.RoleKitchen)
	dishes.Post("/", canWrite, dishHandler.Create)
	dishes.Put("/:id", canWrite, dishHandler.Update)
	dishes.Delete("/:id", canWrite, dishHandler.Delete)

	// Administración de cuentas (solo ADMIN)
	adminHandler := NewUserAdminHandler(deps.UserAdminUC, deps.Log)
	admin := app.Group("/admin/users", RequireRole(entity.RoleAdmin))
	admin.Get("/", adminHandler.List)
	admin.Put("/:id/approve", adminHandler.Approve)

	// Cualquier otra ruta no declarada exige autenticación
	app.Use(RequireAuthenticated())
}
