// Package statetoken firma el nonce del flujo OAuth como un JWT de vida corta.
// El token viaja en una cookie transitoria; el callback debe presentar el mismo
// nonce en el parámetro state para que el intercambio de código proceda.
package statetoken

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// NonceBytes tamaño del nonce aleatorio (el flujo exige >= 16 bytes).
const NonceBytes = 24

// DefaultTTL vida de la cookie de estado: suficiente para completar el consentimiento.
const DefaultTTL = 10 * time.Minute

// Claims claims estándar JWT más el nonce y la tienda a la que quedó atado el flujo.
type Claims struct {
	jwt.RegisteredClaims
	Nonce string `json:"nonce"`
	Shop  string `json:"shop"`
}

// NewNonce genera un nonce criptográficamente aleatorio en base64 URL-safe.
func NewNonce() (string, error) {
	b := make([]byte, NonceBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("statetoken: generar nonce: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Generate genera el JWT firmado que acompaña al nonce durante el handshake.
func Generate(secret, nonce, shop string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("statetoken: secret vacío")
	}
	if nonce == "" {
		return "", fmt.Errorf("statetoken: nonce vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   shop,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Nonce: nonce,
		Shop:  shop,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token de estado y devuelve el nonce y la tienda.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (nonce, shop string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("statetoken: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("claims inválidos")
	}
	return claims.Nonce, claims.Shop, nil
}
