package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/invorya/stock-adjust-api/internal/domain"
	"github.com/invorya/stock-adjust-api/internal/domain/entity"
	"github.com/invorya/stock-adjust-api/pkg/logger"
	"github.com/invorya/stock-adjust-api/pkg/statetoken"
)

// TokenExchanger intercambia el authorization code por un access token contra
// el endpoint de tokens de la plataforma (POST servidor a servidor).
type TokenExchanger interface {
	ExchangeCode(ctx context.Context, shop, code string) (string, error)
}

// Config parámetros del flujo OAuth.
type Config struct {
	APIKey      string
	APISecret   string
	Scopes      string
	RedirectURI string
}

// UseCase implementa el handshake de autorización en dos pasos:
// emitir nonce + redirigir al consentimiento, y verificar el callback
// (state contra nonce, HMAC opcional) antes de intercambiar el code.
// Sin reintentos: todo fallo es terminal para esa petición y el usuario
// debe reiniciar el flujo desde cero.
type UseCase struct {
	exchanger TokenExchanger
	cfg       Config
	log       *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(exchanger TokenExchanger, cfg Config, log *logger.Logger) *UseCase {
	return &UseCase{exchanger: exchanger, cfg: cfg, log: log}
}

// BeginAuth genera el nonce, lo firma para la cookie de estado y arma la URL
// del consentimiento. Devuelve (urlConsentimiento, jwtParaCookie).
func (uc *UseCase) BeginAuth(shop string) (string, string, error) {
	shop = strings.ToLower(strings.TrimSpace(shop))
	if !validShopDomain(shop) {
		return "", "", domain.ErrInvalidInput
	}
	if uc.cfg.APIKey == "" || uc.cfg.APISecret == "" {
		return "", "", domain.ErrConfigMissing
	}

	nonce, err := statetoken.NewNonce()
	if err != nil {
		return "", "", err
	}
	stateJWT, err := statetoken.Generate(uc.cfg.APISecret, nonce, shop, statetoken.DefaultTTL)
	if err != nil {
		return "", "", err
	}

	u, _ := url.Parse(fmt.Sprintf("https://%s/admin/oauth/authorize", shop))
	q := u.Query()
	q.Set("client_id", uc.cfg.APIKey)
	q.Set("scope", uc.cfg.Scopes)
	q.Set("redirect_uri", uc.cfg.RedirectURI)
	q.Set("state", nonce)
	u.RawQuery = q.Encode()

	uc.log.Info().Str("shop", shop).Msg("handshake oauth iniciado")

	return u.String(), stateJWT, nil
}

// CompleteAuth verifica el callback y, solo si ambas guardas pasan,
// intercambia el code por el access token. Guardas:
//  1. state debe ser byte-igual al nonce guardado en la cookie firmada.
//  2. si viene hmac, la firma HMAC-SHA256 sobre los parámetros ordenados
//     (excluyendo hmac) debe coincidir.
func (uc *UseCase) CompleteAuth(ctx context.Context, params map[string]string, stateCookie string) (entity.Credential, error) {
	shop := strings.ToLower(strings.TrimSpace(params["shop"]))
	code := strings.TrimSpace(params["code"])
	state := strings.TrimSpace(params["state"])
	if !validShopDomain(shop) || code == "" || state == "" {
		return entity.Credential{}, domain.ErrInvalidInput
	}
	if uc.cfg.APISecret == "" {
		return entity.Credential{}, domain.ErrConfigMissing
	}

	// Guarda 1: cookie ausente o nonce distinto -> rechazo duro, sin reintento.
	if stateCookie == "" {
		return entity.Credential{}, domain.ErrStateMismatch
	}
	nonce, boundShop, err := statetoken.Parse(uc.cfg.APISecret, stateCookie)
	if err != nil {
		return entity.Credential{}, domain.ErrStateMismatch
	}
	if !hmac.Equal([]byte(state), []byte(nonce)) || boundShop != shop {
		return entity.Credential{}, domain.ErrStateMismatch
	}

	// Guarda 2: solo se evalúa si el callback trae hmac.
	if hmacParam := strings.TrimSpace(params["hmac"]); hmacParam != "" {
		if !verifyHMAC(params, uc.cfg.APISecret, hmacParam) {
			return entity.Credential{}, domain.ErrHMACMismatch
		}
	}

	token, err := uc.exchanger.ExchangeCode(ctx, shop, code)
	if err != nil {
		uc.log.Error().Err(err).Str("shop", shop).Msg("intercambio de código falló")
		return entity.Credential{}, err
	}

	uc.log.Info().Str("shop", shop).Msg("handshake oauth completado")

	return entity.Credential{Shop: shop, AccessToken: token}, nil
}

// verifyHMAC recalcula HMAC-SHA256 sobre los pares key=value ordenados y
// unidos con &, excluyendo hmac y signature, y compara en tiempo constante.
func verifyHMAC(params map[string]string, secret, providedHex string) bool {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == "hmac" || k == "signature" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, params[k]))
	}
	msg := strings.Join(parts, "&")

	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write([]byte(msg))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(strings.ToLower(providedHex)))
}

func validShopDomain(shop string) bool {
	if !strings.HasSuffix(shop, ".myshopify.com") {
		return false
	}
	if strings.ContainsAny(shop, "/ ") {
		return false
	}
	return len(shop) > len(".myshopify.com")
}
