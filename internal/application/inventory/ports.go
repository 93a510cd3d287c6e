package inventory

import (
	"context"

	"github.com/invorya/stock-adjust-api/internal/domain/entity"
)

// CredentialProvider resuelve la credencial {tienda, token} de la petición en
// curso. Se inyecta en los casos de uso en lugar de leer estado global: la
// implementación HTTP la saca de cookies con fallback al entorno.
type CredentialProvider interface {
	Resolve(ctx context.Context) (entity.Credential, error)
}

// StockGateway puerto hacia la Admin API de Shopify.
type StockGateway interface {
	// LocationStock ejecuta una única consulta paginada (productos con sus
	// variantes y el nivel de inventario en la sede dada) y devuelve el árbol
	// normalizado. Una variante sin nivel en esa sede llega con Level == nil.
	LocationStock(ctx context.Context, cred entity.Credential, locationID string) ([]ProductNode, error)

	// SetOnHandQuantity fija la cantidad absoluta disponible de un ítem en una
	// sede. Repetir la misma actualización es idempotente.
	SetOnHandQuantity(ctx context.Context, cred entity.Credential, upd entity.StockUpdate) error
}

// ProductNode producto con sus variantes, tal como lo normaliza el gateway.
type ProductNode struct {
	ID       string
	Title    string
	ImageURL string
	Variants []VariantNode
}

// VariantNode variante con su ítem de inventario y, si está surtida en la sede
// consultada, su nivel. Level nil significa "no surtida aquí".
type VariantNode struct {
	ID              string
	Title           string
	SKU             string
	InventoryItemID string
	Level           *LevelNode
}

// LevelNode nivel de inventario de un ítem en una sede.
type LevelNode struct {
	ID        string
	Available int
}
