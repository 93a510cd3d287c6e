package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Shopify   ShopifyConfig
	Locations []LocationConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
	URL  string // URL pública de la app; base del redirect_uri del OAuth
}

// ShopifyConfig credenciales y parámetros de la Admin API de Shopify.
// AccessToken es el fallback de entorno cuando no hay cookie de sesión (tienda única).
type ShopifyConfig struct {
	Shop        string // dominio por defecto, ej. mi-tienda.myshopify.com
	APIKey      string
	APISecret   string
	APIVersion  string
	AccessToken string
	Scopes      string
}

// LocationConfig una sede física de la tienda con su ID externo en Shopify.
type LocationConfig struct {
	Key        string `json:"key"`
	ExternalID string `json:"id"`
	Name       string `json:"name"`
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RedirectURI devuelve el callback del flujo OAuth, derivado de la URL pública.
func (c AppConfig) RedirectURI() string {
	return strings.TrimRight(c.URL, "/") + "/callback"
}

// DefaultScopes alcances fijos que solicita la app en el consentimiento OAuth.
const DefaultScopes = "read_products,read_inventory,write_inventory,read_locations"

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, SHOPIFY_API_KEY, SHOPIFY_API_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "stock-adjust"),
			URL:  getString(v, "APP_URL", "http://localhost:8080"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Shopify: ShopifyConfig{
			Shop:        getString(v, "SHOPIFY_SHOP", ""),
			APIKey:      getString(v, "SHOPIFY_API_KEY", ""),
			APISecret:   getString(v, "SHOPIFY_API_SECRET", ""),
			APIVersion:  getString(v, "SHOPIFY_API_VERSION", "2024-01"),
			AccessToken: getString(v, "SHOPIFY_ACCESS_TOKEN", ""),
			Scopes:      getString(v, "SHOPIFY_SCOPES", DefaultScopes),
		},
		Locations: loadLocations(v),
	}

	return cfg, nil
}

// loadLocations construye la tabla de sedes. Son estáticas: cuatro instancias
// conocidas, con el ID externo sobreescribible por entorno (LOCATION_<KEY>_ID).
func loadLocations(v *viper.Viper) []LocationConfig {
	defaults := []LocationConfig{
		{Key: "bristol", ExternalID: "62584946887", Name: "Bristol"},
		{Key: "london", ExternalID: "62585012423", Name: "London"},
		{Key: "manchester", ExternalID: "62585045191", Name: "Manchester"},
		{Key: "glasgow", ExternalID: "62585077959", Name: "Glasgow"},
	}
	for i := range defaults {
		envKey := "LOCATION_" + strings.ToUpper(defaults[i].Key) + "_ID"
		defaults[i].ExternalID = getString(v, envKey, defaults[i].ExternalID)
	}
	return defaults
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
