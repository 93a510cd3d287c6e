package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/invorya/stock-adjust-api/internal/domain"
	"github.com/invorya/stock-adjust-api/internal/domain/entity"
	"github.com/invorya/stock-adjust-api/pkg/logger"
)

// interCallDelay pausa fija tras cada mutación, con éxito o sin él, para no
// exceder el presupuesto de llamadas por segundo de la Admin API.
const interCallDelay = 100 * time.Millisecond

// WriterUseCase aplica un lote de actualizaciones absolutas de existencia.
// Estrictamente secuencial, una mutación por actualización en el orden de
// entrada; nunca en paralelo. Sin reintentos y sin rollback: el fallo del
// ítem i no bloquea los ítems i+1..n.
type WriterUseCase struct {
	gateway StockGateway
	creds   CredentialProvider
	log     *logger.Logger

	// Pace se ejecuta tras cada llamada. Por defecto duerme interCallDelay;
	// los tests lo sustituyen para no dormir.
	Pace func()
}

// NewWriterUseCase construye el caso de uso.
func NewWriterUseCase(gateway StockGateway, creds CredentialProvider, log *logger.Logger) *WriterUseCase {
	return &WriterUseCase{
		gateway: gateway,
		creds:   creds,
		log:     log,
		Pace:    func() { time.Sleep(interCallDelay) },
	}
}

// ApplyUpdates procesa el lote y clasifica cada resultado de forma
// independiente. Siempre SuccessCount + FailedCount == len(updates). El caller
// debe releer el inventario después para resincronizar su línea base; este
// caso de uso nunca reporta los valores nuevos.
func (uc *WriterUseCase) ApplyUpdates(ctx context.Context, updates []entity.StockUpdate) (entity.BatchResult, error) {
	result := entity.BatchResult{ErrorMessages: []string{}}

	if len(updates) == 0 {
		return result, domain.ErrNoUpdates
	}
	for _, u := range updates {
		if u.InventoryItemID == "" || u.LocationID == "" || u.Quantity < 0 {
			return result, domain.ErrInvalidInput
		}
	}

	cred, err := uc.creds.Resolve(ctx)
	if err != nil {
		return result, err
	}

	for _, u := range updates {
		err := uc.gateway.SetOnHandQuantity(ctx, cred, u)

		var apiErr *domain.APICallError
		var mutErr *domain.MutationError
		switch {
		case err == nil:
			result.SuccessCount++
		case errors.As(err, &mutErr):
			result.FailedCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Failed %s: %s", u.InventoryItemID, mutErr.Message))
		case errors.As(err, &apiErr):
			result.FailedCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("API error for %s: %s", u.InventoryItemID, apiErr.StatusText()))
		default:
			result.FailedCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("API error for %s: %s", u.InventoryItemID, err.Error()))
		}

		uc.Pace()
	}

	uc.log.Info().
		Int("updates", len(updates)).
		Int("success", result.SuccessCount).
		Int("failed", result.FailedCount).
		Msg("lote de inventario aplicado")

	return result, nil
}
