package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Destinos de compilación soportados para resolver la URL del backend.
const (
	TargetWeb      = "web"
	TargetEmulator = "emulator"
)

// Drivers de persistencia del token.
const (
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

const (
	defaultWebBaseURL      = "http://localhost:8000"
	defaultEmulatorBaseURL = "http://10.0.2.2:8000" // loopback del emulador Android
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App        AppConfig
	API        APIConfig
	TokenStore TokenStoreConfig
	Redis      RedisConfig
	HTTP       HTTPConfig
	Session    SessionConfig
	Telemetry  TelemetryConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// APIConfig backend REST consumido por el cliente.
type APIConfig struct {
	Target  string // web | emulator
	BaseURL string // ya resuelto según Target
	Timeout time.Duration
}

// TokenStoreConfig dónde se persiste el token de sesión.
type TokenStoreConfig struct {
	Driver string // file | redis | memory
	Path   string // archivo para el driver file
	Key    string // clave fija del token
	Secret string // opcional: passphrase para sellar el token en disco
}

// RedisConfig conexión para el driver redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr devuelve host:port de Redis.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// HTTPConfig configuración del host web local.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SessionConfig política de sesión.
type SessionConfig struct {
	// LogoutOn401 fuerza el cierre de sesión cuando el perfil responde 401.
	LogoutOn401 bool
}

// TelemetryConfig exportador OTLP (vacío = deshabilitado).
type TelemetryConfig struct {
	Endpoint string
	Insecure bool
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, TOKEN_STORE_DRIVER, etc.
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
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	target := strings.ToLower(getString(v, "API_TARGET", TargetWeb))
	if target != TargetWeb && target != TargetEmulator {
		return nil, fmt.Errorf("config: API_TARGET inválido %q (web|emulator)", target)
	}

	driver := strings.ToLower(getString(v, "TOKEN_STORE_DRIVER", DriverFile))
	switch driver {
	case DriverFile, DriverRedis, DriverMemory:
	default:
		return nil, fmt.Errorf("config: TOKEN_STORE_DRIVER inválido %q", driver)
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "mate-social"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			Target:  target,
			BaseURL: ResolveBaseURL(target, getString(v, "API_BASE_URL", "")),
			Timeout: time.Duration(getInt(v, "API_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		TokenStore: TokenStoreConfig{
			Driver: driver,
			Path:   getString(v, "TOKEN_STORE_PATH", ".mate-social/storage.json"),
			Key:    getString(v, "TOKEN_STORE_KEY", "userToken"),
			Secret: getString(v, "TOKEN_STORE_SECRET", ""),
		},
		Redis: RedisConfig{
			Host:     getString(v, "REDIS_HOST", "localhost"),
			Port:     getInt(v, "REDIS_PORT", 6379),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Session: SessionConfig{
			LogoutOn401: getBool(v, "SESSION_LOGOUT_ON_401", true),
		},
		Telemetry: TelemetryConfig{
			Endpoint: getString(v, "OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Insecure: getBool(v, "OTEL_EXPORTER_OTLP_INSECURE", false),
		},
	}

	return cfg, nil
}

// ResolveBaseURL elige la URL del backend según el destino de compilación.
// Una URL explícita siempre gana; sin ella, web usa localhost y emulator el loopback del emulador.
func ResolveBaseURL(target, explicit string) string {
	if explicit != "" {
		return strings.TrimRight(explicit, "/")
	}
	if target == TargetEmulator {
		return defaultEmulatorBaseURL
	}
	return defaultWebBaseURL
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
			n, err := strconv.Atoi(v.GetString(key))
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
		switch raw := v.Get(key).(type) {
		case bool:
			return raw
		case string:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return def
			}
			return b
		default:
			return v.GetBool(key)
		}
	}
	return def
}
