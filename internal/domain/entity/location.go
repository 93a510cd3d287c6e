package entity

// Location una sede física con niveles de inventario propios en Shopify.
// Estática y configurada; no se crea ni destruye en runtime.
type Location struct {
	Key        string `json:"key"`
	ExternalID string `json:"id"`
	Name       string `json:"name"`
}
