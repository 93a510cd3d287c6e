package dto

import "github.com/invorya/stock-adjust-api/internal/domain/entity"

// StockUpdateDTO una actualización absoluta dentro del lote enviado por el cliente.
type StockUpdateDTO struct {
	InventoryItemID string `json:"inventoryItemId"`
	LocationID      string `json:"locationId"`
	Quantity        int    `json:"quantity"`
}

// UpdateInventoryRequest cuerpo de POST /update-inventory.
type UpdateInventoryRequest struct {
	Updates []StockUpdateDTO `json:"updates"`
}

// ToEntities convierte el lote a entidades de dominio preservando el orden de entrada.
func (r UpdateInventoryRequest) ToEntities() []entity.StockUpdate {
	out := make([]entity.StockUpdate, 0, len(r.Updates))
	for _, u := range r.Updates {
		out = append(out, entity.StockUpdate{
			InventoryItemID: u.InventoryItemID,
			LocationID:      u.LocationID,
			Quantity:        u.Quantity,
		})
	}
	return out
}

// ChangesRequest cuerpo de POST /changes: línea base leída más el mapa de
// ediciones (variantId -> texto numérico) tal como lo mantiene el cliente.
type ChangesRequest struct {
	Products []entity.InventoryRecord `json:"products"`
	Edits    map[string]string        `json:"edits"`
}
