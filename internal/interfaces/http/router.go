package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stock-adjust-api/internal/application/auth"
	"github.com/invorya/stock-adjust-api/internal/application/inventory"
	"github.com/invorya/stock-adjust-api/internal/domain/entity"
	"github.com/invorya/stock-adjust-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	Reader    *inventory.ReaderUseCase
	Writer    *inventory.WriterUseCase
	Locations []entity.Location
	Shopify   config.ShopifyConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Handshake OAuth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Shopify.Shop)
	app.Get("/authorize", authHandler.Authorize)
	app.Get("/callback", authHandler.Callback)

	// Inventario: credencial desde cookies con fallback al entorno
	withCred := CredentialMiddleware(deps.Shopify)
	invHandler := NewInventoryHandler(deps.Reader, deps.Writer, deps.Locations)
	app.Get("/products", withCred, invHandler.Products)
	app.Post("/update-inventory", withCred, invHandler.UpdateInventory)

	// Auxiliares sin credencial
	app.Get("/locations", invHandler.Locations)
	app.Post("/changes", invHandler.Changes)
}
