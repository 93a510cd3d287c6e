package entity

// NoSKU centinela para variantes sin SKU; el SKU no es único ni obligatorio.
const NoSKU = "No SKU"

// InventoryRecord una variante con su existencia en una sede concreta.
// Se produce fresco en cada lectura; nunca se cachea. Identificado por
// VariantID dentro del resultado de una sede.
type InventoryRecord struct {
	VariantID        string `json:"variantId"`
	ProductID        string `json:"productId"`
	ProductTitle     string `json:"productTitle"`
	VariantTitle     string `json:"variantTitle,omitempty"`
	SKU              string `json:"sku"`
	ImageURL         string `json:"imageUrl,omitempty"`
	InventoryItemID  string `json:"inventoryItemId"`
	InventoryLevelID string `json:"inventoryLevelId"`
	CurrentStock     int    `json:"currentStock"`
}

// StockUpdate una actualización absoluta de existencia para un ítem en una sede.
type StockUpdate struct {
	InventoryItemID string `json:"inventoryItemId"`
	LocationID      string `json:"locationId"`
	Quantity        int    `json:"quantity"`
}

// StockChange diferencia entre el valor editado y la línea base leída.
// Derivado y de solo lectura; no existe un flag de "sucio" independiente.
type StockChange struct {
	InventoryItemID string `json:"inventoryItemId"`
	SKU             string `json:"sku"`
	OldValue        int    `json:"oldValue"`
	NewValue        int    `json:"newValue"`
}

// BatchResult resultado agregado de un lote de actualizaciones.
// Siempre se cumple SuccessCount + FailedCount == número de updates.
type BatchResult struct {
	SuccessCount  int      `json:"success"`
	FailedCount   int      `json:"failed"`
	ErrorMessages []string `json:"errors"`
}
