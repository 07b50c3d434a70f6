package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Storage StorageConfig
	AI      AIConfig
	Seed    SeedConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
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

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// StorageConfig rutas del snapshot JSON y del directorio de adjuntos.
// El portal no usa base de datos servidor: todo el estado vive en SnapshotPath.
type StorageConfig struct {
	SnapshotPath string
	UploadsDir   string
}

// AIConfig configuración del proveedor LLM para extracción de campos y resumen financiero.
// Provider: "gemini" (por defecto, como el portal original) o "anthropic".
type AIConfig struct {
	Provider        string
	GeminiAPIKey    string
	GeminiModel     string
	AnthropicAPIKey string
	AnthropicModel  string
}

// SeedConfig credenciales de los usuarios sembrados en el primer arranque.
// Solo se aplican cuando el snapshot no contiene ningún usuario.
type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
	AdminName     string
	UserEmail     string
	UserPassword  string
	UserName      string
	UserSector    string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, etc.
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
			Name: getString(v, "APP_NAME", "portal-notas"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "portal-notas"),
		},
		Storage: StorageConfig{
			SnapshotPath: getString(v, "STORAGE_PATH", "./data/portal.json"),
			UploadsDir:   getString(v, "UPLOADS_DIR", "./data/uploads"),
		},
		AI: AIConfig{
			Provider:        getString(v, "AI_PROVIDER", "gemini"),
			GeminiAPIKey:    getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:     getString(v, "GEMINI_MODEL", "gemini-1.5-flash"),
			AnthropicAPIKey: getString(v, "ANTHROPIC_API_KEY", ""),
			AnthropicModel:  getString(v, "ANTHROPIC_MODEL", "claude-3-5-haiku-20241022"),
		},
		Seed: SeedConfig{
			AdminEmail:    getString(v, "SEED_ADMIN_EMAIL", "delp"),
			AdminPassword: getString(v, "SEED_ADMIN_PASSWORD", "delp1234"),
			AdminName:     getString(v, "SEED_ADMIN_NAME", "Administrador Master"),
			UserEmail:     getString(v, "SEED_USER_EMAIL", "usuario@delp.com.br"),
			UserPassword:  getString(v, "SEED_USER_PASSWORD", "123"),
			UserName:      getString(v, "SEED_USER_NAME", "Colaborador Delp"),
			UserSector:    getString(v, "SEED_USER_SECTOR", "GERAL"),
		},
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
