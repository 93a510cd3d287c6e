// Package shopify implementa el gateway hacia la Admin API GraphQL y el
// endpoint de tokens OAuth. Las credenciales van por llamada: el cliente es
// compartido y sin estado de sesión.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/invorya/stock-adjust-api/internal/domain"
	"github.com/invorya/stock-adjust-api/internal/domain/entity"
	"github.com/invorya/stock-adjust-api/pkg/config"
	"github.com/invorya/stock-adjust-api/pkg/logger"
)

// Client cliente GraphQL de la Admin API de Shopify.
type Client struct {
	apiKey     string
	apiSecret  string
	apiVersion string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. El timeout de 30s aplica a toda llamada
// saliente, incluida el intercambio de tokens.
func NewClient(cfg config.ShopifyConfig, log *logger.Logger) *Client {
	return &Client{
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		apiVersion: cfg.APIVersion,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors,omitempty"`
}

// execute ejecuta una consulta o mutación y decodifica data en out.
// Fallos de transporte o HTTP no-2xx -> *domain.APICallError; lista de errores
// de nivel superior -> *domain.MutationError con el primer mensaje.
func (c *Client) execute(ctx context.Context, cred entity.Credential, query string, variables map[string]any, out any) error {
	endpoint := fmt.Sprintf("https://%s/admin/api/%s/graphql.json", normalizeShopDomain(cred.Shop), c.apiVersion)

	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("serializar petición graphql: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("crear petición graphql: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", cred.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.APICallError{Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.APICallError{Cause: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &domain.APICallError{Status: resp.StatusCode}
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("decodificar respuesta graphql: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return &domain.MutationError{Message: envelope.Errors[0].Message}
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decodificar data graphql: %w", err)
		}
	}
	return nil
}

// normalizeShopDomain limpia https://, http:// y slashes finales.
func normalizeShopDomain(shop string) string {
	shop = strings.TrimPrefix(shop, "https://")
	shop = strings.TrimPrefix(shop, "http://")
	return strings.TrimSuffix(shop, "/")
}

// gidFor convierte un ID numérico al GID global de la Admin API.
// Un valor que ya es GID se devuelve tal cual.
func gidFor(resource, id string) string {
	if strings.HasPrefix(id, "gid://") {
		return id
	}
	return fmt.Sprintf("gid://shopify/%s/%s", resource, id)
}
