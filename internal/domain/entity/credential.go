package entity

// Credential par {tienda, token de acceso} con el que se firma cada llamada a
// la Admin API. Opaco para la lógica de inventario; viene de cookies o del
// entorno (tienda única).
type Credential struct {
	Shop        string
	AccessToken string
}

// Valid indica si hay credencial utilizable.
func (c Credential) Valid() bool {
	return c.Shop != "" && c.AccessToken != ""
}
