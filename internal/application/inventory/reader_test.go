package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stock-adjust-api/internal/application/inventory"
	"github.com/invorya/stock-adjust-api/internal/domain"
	"github.com/invorya/stock-adjust-api/internal/domain/entity"
	"github.com/invorya/stock-adjust-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes compartidos por los tests del paquete
// ──────────────────────────────────────────────────────────────────────────────

// fakeGateway implementa inventory.StockGateway con respuestas programadas.
type fakeGateway struct {
	products []inventory.ProductNode
	queryErr error

	// mutaciones: errores programados por inventoryItemId y registro de llamadas
	mutationErrs map[string]error
	calls        []entity.StockUpdate
}

func (f *fakeGateway) LocationStock(_ context.Context, _ entity.Credential, _ string) ([]inventory.ProductNode, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.products, nil
}

func (f *fakeGateway) SetOnHandQuantity(_ context.Context, _ entity.Credential, upd entity.StockUpdate) error {
	f.calls = append(f.calls, upd)
	if f.mutationErrs != nil {
		return f.mutationErrs[upd.InventoryItemID]
	}
	return nil
}

// fakeCreds implementa inventory.CredentialProvider.
type fakeCreds struct {
	cred entity.Credential
	err  error
}

func (f fakeCreds) Resolve(context.Context) (entity.Credential, error) {
	if f.err != nil {
		return entity.Credential{}, f.err
	}
	return f.cred, nil
}

func authedCreds() fakeCreds {
	return fakeCreds{cred: entity.Credential{Shop: "demo.myshopify.com", AccessToken: "shpat_test"}}
}

func variant(id, title, sku, itemID string, level *inventory.LevelNode) inventory.VariantNode {
	return inventory.VariantNode{ID: id, Title: title, SKU: sku, InventoryItemID: itemID, Level: level}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ReaderUseCase
// ──────────────────────────────────────────────────────────────────────────────

// Una variante sin nivel en la sede consultada nunca aparece en el resultado:
// producto con una variante surtida en Bristol y otra solo en London -> un registro.
func TestReader_ExcluyeVariantesSinNivelEnLaSede(t *testing.T) {
	gw := &fakeGateway{products: []inventory.ProductNode{
		{
			ID:    "gid://shopify/Product/1",
			Title: "Camiseta",
			Variants: []inventory.VariantNode{
				variant("v-bristol", "S", "TEE-S", "item-1", &inventory.LevelNode{ID: "lvl-1", Available: 4}),
				variant("v-london", "M", "TEE-M", "item-2", nil), // surtida solo en otra sede
			},
		},
	}}

	uc := inventory.NewReaderUseCase(gw, authedCreds(), logger.Nop())
	records, err := uc.ListLocationStock(context.Background(), "62584946887")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "v-bristol", records[0].VariantID)
	assert.Equal(t, 4, records[0].CurrentStock)
	assert.Equal(t, "lvl-1", records[0].InventoryLevelID)
}

// El resultado sale ordenado por SKU con comparación sensible al locale:
// "apple" precede a "Banana" aunque en orden de bytes sería al revés.
func TestReader_OrdenaPorSKUConLocale(t *testing.T) {
	gw := &fakeGateway{products: []inventory.ProductNode{
		{ID: "p1", Title: "P1", Variants: []inventory.VariantNode{
			variant("v1", "", "cherry", "i1", &inventory.LevelNode{ID: "l1", Available: 1}),
			variant("v2", "", "Banana", "i2", &inventory.LevelNode{ID: "l2", Available: 2}),
			variant("v3", "", "apple", "i3", &inventory.LevelNode{ID: "l3", Available: 3}),
		}},
	}}

	uc := inventory.NewReaderUseCase(gw, authedCreds(), logger.Nop())
	records, err := uc.ListLocationStock(context.Background(), "1")

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "apple", records[0].SKU)
	assert.Equal(t, "Banana", records[1].SKU)
	assert.Equal(t, "cherry", records[2].SKU)
}

// Los empates de SKU conservan el orden original (orden estable).
func TestReader_EmpatesConservanOrdenOriginal(t *testing.T) {
	gw := &fakeGateway{products: []inventory.ProductNode{
		{ID: "p1", Title: "P1", Variants: []inventory.VariantNode{
			variant("v-primera", "", "DUP-1", "i1", &inventory.LevelNode{ID: "l1", Available: 1}),
			variant("v-segunda", "", "DUP-1", "i2", &inventory.LevelNode{ID: "l2", Available: 2}),
		}},
	}}

	uc := inventory.NewReaderUseCase(gw, authedCreds(), logger.Nop())
	records, err := uc.ListLocationStock(context.Background(), "1")

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "v-primera", records[0].VariantID)
	assert.Equal(t, "v-segunda", records[1].VariantID)
}

// SKU vacío se sustituye por el centinela "No SKU".
func TestReader_SKUVacioUsaCentinela(t *testing.T) {
	gw := &fakeGateway{products: []inventory.ProductNode{
		{ID: "p1", Title: "P1", Variants: []inventory.VariantNode{
			variant("v1", "", "", "i1", &inventory.LevelNode{ID: "l1", Available: 9}),
		}},
	}}

	uc := inventory.NewReaderUseCase(gw, authedCreds(), logger.Nop())
	records, err := uc.ListLocationStock(context.Background(), "1")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, entity.NoSKU, records[0].SKU)
}

// Sin credencial el caso de uso falla con ErrUnauthenticated: señal para
// reiniciar el handshake, no un error del proveedor.
func TestReader_SinCredencial(t *testing.T) {
	gw := &fakeGateway{}
	uc := inventory.NewReaderUseCase(gw, fakeCreds{err: domain.ErrUnauthenticated}, logger.Nop())

	_, err := uc.ListLocationStock(context.Background(), "1")

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestReader_LocationIDRequerido(t *testing.T) {
	uc := inventory.NewReaderUseCase(&fakeGateway{}, authedCreds(), logger.Nop())

	_, err := uc.ListLocationStock(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un error de nivel superior del proveedor se clasifica como upstream y el
// primer mensaje queda disponible sin anidamiento.
func TestReader_ErrorUpstream(t *testing.T) {
	gw := &fakeGateway{queryErr: &domain.MutationError{Message: "Throttled"}}
	uc := inventory.NewReaderUseCase(gw, authedCreds(), logger.Nop())

	_, err := uc.ListLocationStock(context.Background(), "1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Equal(t, "Throttled", err.Error())
}
