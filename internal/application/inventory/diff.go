package inventory

import (
	"strconv"
	"strings"

	"github.com/invorya/stock-adjust-api/internal/domain/entity"
)

// SanitizeQuantity filtra la entrada carácter a carácter dejando solo dígitos.
// Los caracteres inválidos simplemente no entran al buffer de edición; no hay
// un estado de error de validación aparte.
func SanitizeQuantity(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ComputeChanges calcula el conjunto de cambios: por cada registro de la línea
// base cuya edición existe, no está vacía y parsea a un valor distinto del
// stock actual, emite un StockChange. Función pura de (baseline, edits);
// el conjunto siempre es derivable sin flags de "sucio" independientes.
func ComputeChanges(baseline []entity.InventoryRecord, edits map[string]string) []entity.StockChange {
	changes := make([]entity.StockChange, 0)
	for _, rec := range baseline {
		edit, ok := edits[rec.VariantID]
		if !ok || edit == "" {
			continue
		}
		value, err := strconv.Atoi(edit)
		if err != nil {
			continue
		}
		if value == rec.CurrentStock {
			continue
		}
		changes = append(changes, entity.StockChange{
			InventoryItemID: rec.InventoryItemID,
			SKU:             rec.SKU,
			OldValue:        rec.CurrentStock,
			NewValue:        value,
		})
	}
	return changes
}
