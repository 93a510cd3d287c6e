package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stock-adjust-api/internal/domain"
	"github.com/invorya/stock-adjust-api/internal/domain/entity"
	"github.com/invorya/stock-adjust-api/pkg/config"
)

// Nombres de cookies de sesión y del flujo OAuth.
const (
	CookieAccessToken = "access_token"
	CookieShop        = "shop"
	CookieOAuthState  = "oauth_state"
)

type ctxKey int

const credentialKey ctxKey = iota

// WithCredential cuelga la credencial resuelta del context de la petición.
func WithCredential(ctx context.Context, cred entity.Credential) context.Context {
	return context.WithValue(ctx, credentialKey, cred)
}

// CredentialMiddleware resuelve {shop, access_token} desde cookies con
// fallback a la configuración de entorno (tienda única) y lo deja en el
// UserContext para que el CredentialProvider inyectado lo recoja.
func CredentialMiddleware(cfg config.ShopifyConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		shop := c.Cookies(CookieShop)
		if shop == "" {
			shop = cfg.Shop
		}
		token := c.Cookies(CookieAccessToken)
		if token == "" {
			token = cfg.AccessToken
		}
		c.SetUserContext(WithCredential(c.UserContext(), entity.Credential{
			Shop:        shop,
			AccessToken: token,
		}))
		return c.Next()
	}
}

// ContextCredentials implementa inventory.CredentialProvider leyendo la
// credencial que el middleware dejó en el context. Sin credencial utilizable
// retorna ErrUnauthenticated: señal para que el caller reinicie el OAuth.
type ContextCredentials struct{}

// Resolve devuelve la credencial de la petición en curso.
func (ContextCredentials) Resolve(ctx context.Context) (entity.Credential, error) {
	cred, ok := ctx.Value(credentialKey).(entity.Credential)
	if !ok || !cred.Valid() {
		return entity.Credential{}, domain.ErrUnauthenticated
	}
	return cred, nil
}
