package shopify

import (
	"context"

	"github.com/invorya/stock-adjust-api/internal/domain"
	"github.com/invorya/stock-adjust-api/internal/domain/entity"
)

// setOnHandMutation fija la cantidad absoluta disponible (no un delta) de un
// ítem en una sede; repetirla con el mismo valor es idempotente.
const setOnHandMutation = `
mutation inventorySetOnHandQuantities($input: InventorySetOnHandQuantitiesInput!) {
  inventorySetOnHandQuantities(input: $input) {
    userErrors {
      field
      message
    }
  }
}`

type setOnHandData struct {
	InventorySetOnHandQuantities struct {
		UserErrors []struct {
			Field   []string `json:"field"`
			Message string   `json:"message"`
		} `json:"userErrors"`
	} `json:"inventorySetOnHandQuantities"`
}

// SetOnHandQuantity implementa inventory.StockGateway. Los userErrors de campo
// se devuelven como *domain.MutationError con el primer mensaje.
func (c *Client) SetOnHandQuantity(ctx context.Context, cred entity.Credential, upd entity.StockUpdate) error {
	var data setOnHandData
	err := c.execute(ctx, cred, setOnHandMutation, map[string]any{
		"input": map[string]any{
			"reason": "correction",
			"setQuantities": []map[string]any{
				{
					"inventoryItemId": gidFor("InventoryItem", upd.InventoryItemID),
					"locationId":      gidFor("Location", upd.LocationID),
					"quantity":        upd.Quantity,
				},
			},
		},
	}, &data)
	if err != nil {
		return err
	}
	if errs := data.InventorySetOnHandQuantities.UserErrors; len(errs) > 0 {
		return &domain.MutationError{Message: errs[0].Message}
	}
	return nil
}
