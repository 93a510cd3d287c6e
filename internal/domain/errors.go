package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrConfigMissing   = errors.New("configuración requerida ausente")
	ErrUnauthenticated = errors.New("sin credencial de acceso")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrNoUpdates       = errors.New("sin actualizaciones que aplicar")
	ErrStateMismatch   = errors.New("state no coincide con el nonce emitido")
	ErrHMACMismatch    = errors.New("firma hmac del callback inválida")
	ErrUpstream        = errors.New("error de la API externa")
)

// APICallError fallo de transporte o HTTP no-2xx al llamar a la API externa.
// Status es 0 cuando la petición ni siquiera llegó a tener respuesta.
type APICallError struct {
	Status int
	Cause  error
}

func (e *APICallError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("llamada a la API externa falló con status %d", e.Status)
	}
	return fmt.Sprintf("llamada a la API externa falló: %v", e.Cause)
}

func (e *APICallError) Unwrap() error { return e.Cause }

// Is permite clasificar con errors.Is(err, ErrUpstream).
func (e *APICallError) Is(target error) bool { return target == ErrUpstream }

// StatusText devuelve el status HTTP como texto, o la causa si no hubo respuesta.
func (e *APICallError) StatusText() string {
	if e.Status > 0 {
		return fmt.Sprintf("%d", e.Status)
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "0"
}

// MutationError la mutación respondió, pero con userErrors de campo o con una
// lista de errores de nivel superior. Message es el primer mensaje, ya
// desenvuelto del anidamiento propio del proveedor.
type MutationError struct {
	Message string
}

func (e *MutationError) Error() string { return e.Message }

// Is permite clasificar con errors.Is(err, ErrUpstream).
func (e *MutationError) Is(target error) bool { return target == ErrUpstream }
