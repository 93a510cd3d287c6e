package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stock-adjust-api/internal/application/dto"
	"github.com/invorya/stock-adjust-api/internal/application/inventory"
	"github.com/invorya/stock-adjust-api/internal/domain"
	"github.com/invorya/stock-adjust-api/internal/domain/entity"
)

// InventoryHandler maneja lectura de surtido, aplicación de lotes y cálculo de cambios.
type InventoryHandler struct {
	reader    *inventory.ReaderUseCase
	writer    *inventory.WriterUseCase
	locations []entity.Location
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(reader *inventory.ReaderUseCase, writer *inventory.WriterUseCase, locations []entity.Location) *InventoryHandler {
	return &InventoryHandler{reader: reader, writer: writer, locations: locations}
}

// Products godoc
// @Summary      Surtido de una sede
// @Description  Devuelve las variantes con nivel de inventario en la sede,
//
//	ordenadas por SKU. Sin credencial responde 401 con needsAuth.
//
// @Tags         inventory
// @Produce      json
// @Param        locationId  query  string  true  "ID externo de la sede"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  map[string]bool
// @Failure      500  {object}  map[string]string
// @Router       /products [get]
func (h *InventoryHandler) Products(c *fiber.Ctx) error {
	locationID := c.Query("locationId")
	if locationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "locationId requerido"})
	}

	records, err := h.reader.ListLocationStock(c.UserContext(), locationID)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"needsAuth": true})
		}
		// Upstream o inesperado: el primer mensaje del proveedor ya viene desenvuelto.
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"products": records})
}

// UpdateInventory godoc
// @Summary      Aplicar un lote de actualizaciones de existencia
// @Description  Procesa las actualizaciones secuencialmente contra Shopify y
//
//	reporta conteos agregados; un fallo parcial sigue siendo HTTP 200.
//
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateInventoryRequest  true  "updates: [{inventoryItemId, locationId, quantity}]"
// @Success      200  {object}  entity.BatchResult
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  map[string]bool
// @Failure      500  {object}  map[string]string
// @Router       /update-inventory [post]
func (h *InventoryHandler) UpdateInventory(c *fiber.Ctx) error {
	var req dto.UpdateInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	result, err := h.writer.ApplyUpdates(c.UserContext(), req.ToEntities())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoUpdates):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_UPDATES", Message: "el lote está vacío"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "actualización malformada"})
		case errors.Is(err, domain.ErrUnauthenticated):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"needsAuth": true})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(result)
}

// Locations godoc
// @Summary      Sedes configuradas
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  map[string][]entity.Location
// @Router       /locations [get]
func (h *InventoryHandler) Locations(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"locations": h.locations})
}

// Changes godoc
// @Summary      Calcular cambios pendientes
// @Description  Diferencia pura entre la línea base y las ediciones: ediciones
//
//	vacías o iguales al stock actual no emiten cambio.
//
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangesRequest  true  "products + edits"
// @Success      200  {object}  map[string][]entity.StockChange
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /changes [post]
func (h *InventoryHandler) Changes(c *fiber.Ctx) error {
	var req dto.ChangesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	changes := inventory.ComputeChanges(req.Products, req.Edits)
	return c.JSON(fiber.Map{"changes": changes})
}
