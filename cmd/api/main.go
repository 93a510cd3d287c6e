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

	"github.com/invorya/stock-adjust-api/internal/application/auth"
	"github.com/invorya/stock-adjust-api/internal/application/inventory"
	"github.com/invorya/stock-adjust-api/internal/domain/entity"
	"github.com/invorya/stock-adjust-api/internal/infrastructure/shopify"
	httpRouter "github.com/invorya/stock-adjust-api/internal/interfaces/http"
	"github.com/invorya/stock-adjust-api/pkg/config"
	"github.com/invorya/stock-adjust-api/pkg/logger"
)

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

	shopifyClient := shopify.NewClient(cfg.Shopify, log)
	creds := httpRouter.ContextCredentials{}

	readerUC := inventory.NewReaderUseCase(shopifyClient, creds, log)
	writerUC := inventory.NewWriterUseCase(shopifyClient, creds, log)
	authUC := auth.NewUseCase(shopifyClient, auth.Config{
		APIKey:      cfg.Shopify.APIKey,
		APISecret:   cfg.Shopify.APISecret,
		Scopes:      cfg.Shopify.Scopes,
		RedirectURI: cfg.App.RedirectURI(),
	}, log)

	locations := make([]entity.Location, 0, len(cfg.Locations))
	for _, l := range cfg.Locations {
		locations = append(locations, entity.Location{
			Key:        l.Key,
			ExternalID: l.ExternalID,
			Name:       l.Name,
		})
	}

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
		Title:    "Stock Adjust API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		Reader:    readerUC,
		Writer:    writerUC,
		Locations: locations,
		Shopify:   cfg.Shopify,
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
