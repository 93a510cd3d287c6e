package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/invorya/stock-adjust-api/internal/domain"
)

// ExchangeCode implementa auth.TokenExchanger: POST servidor a servidor al
// endpoint de tokens de la tienda. Un status no exitoso es fatal para la
// petición; no se reintenta.
func (c *Client) ExchangeCode(ctx context.Context, shop, code string) (string, error) {
	endpoint := fmt.Sprintf("https://%s/admin/oauth/access_token", normalizeShopDomain(shop))

	body, err := json.Marshal(map[string]string{
		"client_id":     c.apiKey,
		"client_secret": c.apiSecret,
		"code":          code,
	})
	if err != nil {
		return "", fmt.Errorf("serializar petición de token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("crear petición de token: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &domain.APICallError{Cause: err}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error().Int("status", resp.StatusCode).Msg("intercambio de token rechazado")
		return "", &domain.APICallError{Status: resp.StatusCode}
	}

	var tok struct {
		AccessToken string `json:"access_token"`
		Scope       string `json:"scope"`
	}
	if err := json.Unmarshal(raw, &tok); err != nil || tok.AccessToken == "" {
		return "", fmt.Errorf("respuesta de token inválida: %w", domain.ErrUpstream)
	}
	return tok.AccessToken, nil
}
