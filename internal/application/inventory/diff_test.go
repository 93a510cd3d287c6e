package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stock-adjust-api/internal/application/inventory"
	"github.com/invorya/stock-adjust-api/internal/domain/entity"
)

func baselineFixture() []entity.InventoryRecord {
	return []entity.InventoryRecord{
		{VariantID: "v1", InventoryItemID: "item-1", SKU: "AAA-1", CurrentStock: 5},
		{VariantID: "v2", InventoryItemID: "item-2", SKU: "BBB-2", CurrentStock: 0},
		{VariantID: "v3", InventoryItemID: "item-3", SKU: "CCC-3", CurrentStock: 12},
	}
}

// Solo las ediciones no vacías y distintas del stock actual emiten un cambio.
func TestComputeChanges_SoloEdicionesDistintas(t *testing.T) {
	edits := map[string]string{
		"v1": "7",  // distinto -> cambio
		"v2": "0",  // igual al stock actual -> sin cambio
		"v3": "",   // vacío -> sin cambio
	}

	changes := inventory.ComputeChanges(baselineFixture(), edits)

	require.Len(t, changes, 1)
	assert.Equal(t, entity.StockChange{
		InventoryItemID: "item-1",
		SKU:             "AAA-1",
		OldValue:        5,
		NewValue:        7,
	}, changes[0])
}

// El cálculo es idempotente: dos ejecuciones sobre la misma entrada dan lo mismo.
func TestComputeChanges_Idempotente(t *testing.T) {
	edits := map[string]string{"v1": "9", "v3": "2"}

	first := inventory.ComputeChanges(baselineFixture(), edits)
	second := inventory.ComputeChanges(baselineFixture(), edits)

	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}

// Una edición que vuelve al valor base no emite cambio, sin importar cuántas
// veces se haya alternado: no hay flag de "sucio" independiente.
func TestComputeChanges_EdicionIgualALaBase(t *testing.T) {
	edits := map[string]string{"v3": "12"}

	changes := inventory.ComputeChanges(baselineFixture(), edits)

	assert.Empty(t, changes)
}

// Ediciones de variantes que no están en la línea base se ignoran.
func TestComputeChanges_VarianteDesconocida(t *testing.T) {
	edits := map[string]string{"v99": "4"}

	changes := inventory.ComputeChanges(baselineFixture(), edits)

	assert.Empty(t, changes)
}

func TestComputeChanges_SinEdiciones(t *testing.T) {
	changes := inventory.ComputeChanges(baselineFixture(), nil)
	assert.Empty(t, changes)
}

// La entrada se filtra carácter a carácter a dígitos: no existe un estado de
// error de validación aparte, lo inválido simplemente no entra.
func TestSanitizeQuantity_SoloDigitos(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"123", "123"},
		{"12a3", "123"},
		{"-5", "5"},
		{"3.14", "314"},
		{"abc", ""},
		{"", ""},
		{" 42 ", "42"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, inventory.SanitizeQuantity(tc.in), "entrada %q", tc.in)
	}
}
