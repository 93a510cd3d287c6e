package inventory

import (
	"context"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/invorya/stock-adjust-api/internal/domain"
	"github.com/invorya/stock-adjust-api/internal/domain/entity"
	"github.com/invorya/stock-adjust-api/pkg/logger"
)

// ReaderUseCase lee el surtido de una sede: una consulta paginada a la Admin
// API, aplanado a registros {producto, variante, existencia} y orden estable
// por SKU con comparación sensible al locale.
type ReaderUseCase struct {
	gateway StockGateway
	creds   CredentialProvider
	log     *logger.Logger
}

// NewReaderUseCase construye el caso de uso.
func NewReaderUseCase(gateway StockGateway, creds CredentialProvider, log *logger.Logger) *ReaderUseCase {
	return &ReaderUseCase{gateway: gateway, creds: creds, log: log}
}

// ListLocationStock devuelve los registros de inventario de la sede indicada.
// Una variante sin nivel de inventario en esa sede se excluye en silencio:
// ese es el mecanismo por el que cada sede ve solo su propio surtido.
func (uc *ReaderUseCase) ListLocationStock(ctx context.Context, locationID string) ([]entity.InventoryRecord, error) {
	if locationID == "" {
		return nil, domain.ErrInvalidInput
	}

	cred, err := uc.creds.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	products, err := uc.gateway.LocationStock(ctx, cred, locationID)
	if err != nil {
		return nil, err
	}

	records := make([]entity.InventoryRecord, 0, len(products))
	for _, p := range products {
		for _, v := range p.Variants {
			if v.Level == nil {
				continue // no surtida en esta sede
			}
			sku := v.SKU
			if sku == "" {
				sku = entity.NoSKU
			}
			records = append(records, entity.InventoryRecord{
				VariantID:        v.ID,
				ProductID:        p.ID,
				ProductTitle:     p.Title,
				VariantTitle:     v.Title,
				SKU:              sku,
				ImageURL:         p.ImageURL,
				InventoryItemID:  v.InventoryItemID,
				InventoryLevelID: v.Level.ID,
				CurrentStock:     v.Level.Available,
			})
		}
	}

	// Orden estable por SKU; los empates conservan el orden original.
	coll := collate.New(language.English)
	sort.SliceStable(records, func(i, j int) bool {
		return coll.CompareString(records[i].SKU, records[j].SKU) < 0
	})

	uc.log.Debug().
		Str("location_id", locationID).
		Int("records", len(records)).
		Msg("surtido de sede leído")

	return records, nil
}
