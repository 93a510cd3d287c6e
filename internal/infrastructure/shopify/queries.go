package shopify

import (
	"context"

	"github.com/invorya/stock-adjust-api/internal/application/inventory"
	"github.com/invorya/stock-adjust-api/internal/domain/entity"
)

// locationStockQuery una única consulta paginada: primeros 250 productos por
// 100 variantes, pidiendo por variante su nivel de inventario en la sede dada.
const locationStockQuery = `
query locationStock($locationId: ID!) {
  products(first: 250) {
    edges {
      node {
        id
        title
        featuredImage { url }
        variants(first: 100) {
          edges {
            node {
              id
              title
              sku
              inventoryItem {
                id
                inventoryLevel(locationId: $locationId) {
                  id
                  quantities(names: ["available"]) {
                    name
                    quantity
                  }
                }
              }
            }
          }
        }
      }
    }
  }
}`

type locationStockData struct {
	Products struct {
		Edges []struct {
			Node struct {
				ID            string `json:"id"`
				Title         string `json:"title"`
				FeaturedImage *struct {
					URL string `json:"url"`
				} `json:"featuredImage"`
				Variants struct {
					Edges []struct {
						Node struct {
							ID            string `json:"id"`
							Title         string `json:"title"`
							SKU           string `json:"sku"`
							InventoryItem struct {
								ID             string `json:"id"`
								InventoryLevel *struct {
									ID         string `json:"id"`
									Quantities []struct {
										Name     string `json:"name"`
										Quantity int    `json:"quantity"`
									} `json:"quantities"`
								} `json:"inventoryLevel"`
							} `json:"inventoryItem"`
						} `json:"node"`
					} `json:"edges"`
				} `json:"variants"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"products"`
}

// LocationStock implementa inventory.StockGateway. Una variante cuyo ítem no
// tiene nivel en la sede consultada llega con Level nil.
func (c *Client) LocationStock(ctx context.Context, cred entity.Credential, locationID string) ([]inventory.ProductNode, error) {
	var data locationStockData
	err := c.execute(ctx, cred, locationStockQuery, map[string]any{
		"locationId": gidFor("Location", locationID),
	}, &data)
	if err != nil {
		return nil, err
	}

	products := make([]inventory.ProductNode, 0, len(data.Products.Edges))
	for _, pe := range data.Products.Edges {
		p := inventory.ProductNode{
			ID:    pe.Node.ID,
			Title: pe.Node.Title,
		}
		if pe.Node.FeaturedImage != nil {
			p.ImageURL = pe.Node.FeaturedImage.URL
		}
		for _, ve := range pe.Node.Variants.Edges {
			v := inventory.VariantNode{
				ID:              ve.Node.ID,
				Title:           ve.Node.Title,
				SKU:             ve.Node.SKU,
				InventoryItemID: ve.Node.InventoryItem.ID,
			}
			if lvl := ve.Node.InventoryItem.InventoryLevel; lvl != nil {
				available := 0
				for _, q := range lvl.Quantities {
					if q.Name == "available" {
						available = q.Quantity
						break
					}
				}
				v.Level = &inventory.LevelNode{ID: lvl.ID, Available: available}
			}
			p.Variants = append(p.Variants, v)
		}
		products = append(products, p)
	}
	return products, nil
}
