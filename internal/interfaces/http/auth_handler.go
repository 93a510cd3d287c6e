package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stock-adjust-api/internal/application/auth"
	"github.com/invorya/stock-adjust-api/internal/application/dto"
	"github.com/invorya/stock-adjust-api/internal/domain"
	"github.com/invorya/stock-adjust-api/pkg/statetoken"
)

// sessionCookieTTL vida de las cookies de sesión (shop y access_token): 1 año.
const sessionCookieTTL = 365 * 24 * time.Hour

// AuthHandler maneja el flujo de autorización OAuth (redirect + callback).
type AuthHandler struct {
	uc          *auth.UseCase
	defaultShop string
}

// NewAuthHandler construye el handler. defaultShop se usa cuando /authorize
// llega sin query param (instalación de tienda única).
func NewAuthHandler(uc *auth.UseCase, defaultShop string) *AuthHandler {
	return &AuthHandler{uc: uc, defaultShop: defaultShop}
}

// Authorize godoc
// @Summary      Iniciar autorización OAuth con Shopify
// @Tags         auth
// @Param        shop  query  string  false  "Dominio de la tienda (*.myshopify.com); por defecto el configurado"
// @Success      302
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /authorize [get]
func (h *AuthHandler) Authorize(c *fiber.Ctx) error {
	shop := c.Query("shop")
	if shop == "" {
		shop = h.defaultShop
	}

	consentURL, stateJWT, err := h.uc.BeginAuth(shop)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "shop inválido (se espera *.myshopify.com)"})
		}
		if errors.Is(err, domain.ErrConfigMissing) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "CONFIG", Message: "faltan credenciales SHOPIFY_API_KEY/SHOPIFY_API_SECRET"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	// Cookie transitoria con el nonce firmado, acotada al flujo de autorización.
	c.Cookie(&fiber.Cookie{
		Name:     CookieOAuthState,
		Value:    stateJWT,
		MaxAge:   int(statetoken.DefaultTTL.Seconds()),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect(consentURL, fiber.StatusFound)
}

// Callback godoc
// @Summary      Callback OAuth: verifica state/HMAC e intercambia el code
// @Tags         auth
// @Param        code   query  string  true   "Authorization code"
// @Param        shop   query  string  true   "Dominio de la tienda"
// @Param        state  query  string  true   "Nonce emitido en /authorize"
// @Param        hmac   query  string  false  "Firma HMAC de los parámetros"
// @Success      302
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /callback [get]
func (h *AuthHandler) Callback(c *fiber.Ctx) error {
	params := c.Queries()
	stateCookie := c.Cookies(CookieOAuthState)

	cred, err := h.uc.CompleteAuth(c.UserContext(), params, stateCookie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros oauth incompletos"})
		case errors.Is(err, domain.ErrStateMismatch), errors.Is(err, domain.ErrHMACMismatch):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "verificación del callback falló"})
		case errors.Is(err, domain.ErrConfigMissing):
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "CONFIG", Message: "falta SHOPIFY_API_SECRET"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: err.Error()})
		}
	}

	// Sesión de larga vida; el token es la única copia, no hay almacenamiento local.
	c.Cookie(&fiber.Cookie{
		Name:     CookieAccessToken,
		Value:    cred.AccessToken,
		MaxAge:   int(sessionCookieTTL.Seconds()),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Cookie(&fiber.Cookie{
		Name:     CookieShop,
		Value:    cred.Shop,
		MaxAge:   int(sessionCookieTTL.Seconds()),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	// El nonce es de un solo uso: expira al consumirse.
	c.Cookie(&fiber.Cookie{
		Name:     CookieOAuthState,
		Value:    "",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect("/", fiber.StatusFound)
}
