package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// devJWTSecret solo se usa con APP_ENV=development cuando JWT_SECRET no está definido.
const devJWTSecret = "wms-almacen-dev-secret"

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	JWT       JWTConfig
	HTTP      HTTPConfig
	Log       LogConfig
	Store     StoreConfig
	Inventory InventoryConfig
	Docs      DocsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// IsDevelopment indica si se corre en modo desarrollo.
func (c AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
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

// LogConfig nivel de log.
type LogConfig struct {
	Level string
}

// StoreConfig almacén en memoria.
type StoreConfig struct {
	LatencyMS int  // demora artificial por operación
	Seed      bool // carga datos de demostración
}

// Latency devuelve la demora como Duration.
func (c StoreConfig) Latency() time.Duration {
	return time.Duration(c.LatencyMS) * time.Millisecond
}

// InventoryConfig reglas de stock.
type InventoryConfig struct {
	StrictStock bool // rechaza salidas que dejan stock negativo
}

// DocsConfig documento OpenAPI servido en /docs.
type DocsConfig struct {
	File string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Fuera de development JWT_SECRET es obligatorio.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "wms-almacen"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 1440),
			Issuer:     getString(v, "JWT_ISSUER", "wms-almacen"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Store: StoreConfig{
			LatencyMS: getInt(v, "STORE_LATENCY_MS", 0),
			Seed:      getBool(v, "STORE_SEED", true),
		},
		Inventory: InventoryConfig{
			StrictStock: getBool(v, "INVENTORY_STRICT_STOCK", false),
		},
		Docs: DocsConfig{
			File: getString(v, "DOCS_FILE", "./docs/swagger.json"),
		},
	}

	if cfg.JWT.Secret == "" {
		if !cfg.App.IsDevelopment() {
			return nil, fmt.Errorf("config: JWT_SECRET es obligatorio con APP_ENV=%s", cfg.App.Env)
		}
		cfg.JWT.Secret = devJWTSecret
	}
	if cfg.JWT.Expiration <= 0 {
		return nil, fmt.Errorf("config: JWT_EXPIRATION_MINUTES debe ser positivo")
	}
	if cfg.Store.LatencyMS < 0 {
		return nil, fmt.Errorf("config: STORE_LATENCY_MS no puede ser negativo")
	}
	return cfg, nil
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case bool:
			return v.GetBool(key)
		default:
			b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return b
		}
	}
	return def
}
