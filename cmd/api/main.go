package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/allanborges/restaurant-api/internal/application/auth"
	"github.com/allanborges/restaurant-api/internal/application/usecase"
	infrapdf "github.com/allanborges/restaurant-api/internal/infrastructure/pdf"
	"github.com/allanborges/restaurant-api/internal/infrastructure/postgres"
	httpRouter "github.com/allanborges/restaurant-api/internal/interfaces/http"
	"github.com/allanborges/restaurant-api/pkg/config"
	"github.com/allanborges/restaurant-api/pkg/jwt"
	"github.com/allanborges/restaurant-api/pkg/logger"

	_ "github.com/allanborges/restaurant-api/docs"
)

// @title        Restaurant API
// @version      1.0
// @description  Backend de gestión de restaurante: cuentas con aprobación y catálogo de platos.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	tokens, err := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		log.Fatal().Err(err).Msg("servicio JWT")
	}

	userRepo := postgres.NewUserAccountRepository(pool)
	dishRepo := postgres.NewDishRepository(pool)
	codeRepo := postgres.NewDishCodeRepository(pool)
	txRunner := postgres.NewDishTxRunner(pool)
	menuPDF := infrapdf.NewMarotoMenuGenerator(cfg.App.Name)

	authUC := auth.NewAuthUseCase(userRepo, tokens, cfg.Admin.BootstrapSecret, log)
	userAdminUC := usecase.NewUserAdminUseCase(userRepo, cfg.Approval.ProtectAdmins, log)
	dishUC := usecase.NewDishUseCase(txRunner, dishRepo, codeRepo, menuPDF, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserAdminUC: userAdminUC,
		DishUC:      dishUC,
		Tokens:      tokens,
		Accounts:    userRepo,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
