package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Algoritmos de firma aceptados para el token de acceso.
var supportedAlgorithms = map[string]bool{"HS256": true, "HS384": true, "HS512": true}

// DefaultCORSOrigins se usa cuando CORS_ORIGINS no es un arreglo JSON válido.
var DefaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:3001",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:3001",
}

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
// Se construye una vez en main y se inyecta; no hay instancia global.
type Config struct {
	App    AppConfig
	DB     DBConfig
	JWT    JWTConfig
	HTTP   HTTPConfig
	Admin  AdminConfig
	Assets AssetsConfig
	Log    LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env       string // development, staging, production
	Name      string
	Version   string
	Provision bool // crear admin y ficha de empresa por defecto al arrancar
}

// IsProduction indica si la app corre en producción.
func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// DBConfig configuración de almacenamiento.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	Driver      string // postgres | memory
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con la contraseña escapada.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

// JWTConfig configuración del token de acceso.
type JWTConfig struct {
	Secret     string
	Algorithm  string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins []string
	DocsPath    string // swagger.json servido en /docs
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AdminConfig credenciales del administrador que se provisiona si no existe.
type AdminConfig struct {
	Username string
	Email    string
	Password string
}

// AssetsConfig imágenes de reemplazo que consume el frontend público.
type AssetsConfig struct {
	DefaultProductImage string
	DefaultLogoImage    string
}

// LogConfig nivel y archivo opcional (rotado) de logs.
type LogConfig struct {
	Level string
	File  string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // opcional

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // opcional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:       getString(v, "APP_ENV", "development"),
			Name:      getString(v, "APP_NAME", "SNS Backend API"),
			Version:   getString(v, "APP_VERSION", "1.0.0"),
			Provision: getBool(v, "APP_PROVISION", true),
		},
		DB: DBConfig{
			Driver:      strings.ToLower(getString(v, "DB_DRIVER", "postgres")),
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", "password"),
			DBName:      getString(v, "DB_NAME", "sns_db"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    getInt(v, "DB_MAX_CONNS", 10),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "SECRET_KEY", ""),
			Algorithm:  strings.ToUpper(getString(v, "ALGORITHM", "HS256")),
			Expiration: getInt(v, "ACCESS_TOKEN_EXPIRE_MINUTES", 30),
			Issuer:     getString(v, "JWT_ISSUER", "sns-api"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8000),
			CORSOrigins: ParseCORSOrigins(getString(v, "CORS_ORIGINS", "")),
			DocsPath:    getString(v, "DOCS_PATH", "./docs/swagger.json"),
		},
		Admin: AdminConfig{
			Username: getString(v, "ADMIN_USERNAME", "admin"),
			Email:    getString(v, "ADMIN_EMAIL", "admin@snsbd.com"),
			Password: getString(v, "ADMIN_PASSWORD", "admin123"),
		},
		Assets: AssetsConfig{
			DefaultProductImage: getString(v, "DEFAULT_PRODUCT_IMAGE", "https://picsum.photos/400/300?random=1"),
			DefaultLogoImage:    getString(v, "DEFAULT_LOGO_IMAGE", "https://picsum.photos/200/100?random=2"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
			File:  getString(v, "LOG_FILE", ""),
		},
	}
}

// Validate verifica lo mínimo para arrancar: secreto de firma y algoritmo soportado.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("config: SECRET_KEY es obligatorio")
	}
	if !supportedAlgorithms[c.JWT.Algorithm] {
		return fmt.Errorf("config: ALGORITHM %q no soportado", c.JWT.Algorithm)
	}
	if c.JWT.Expiration <= 0 {
		return fmt.Errorf("config: ACCESS_TOKEN_EXPIRE_MINUTES debe ser positivo")
	}
	if c.DB.Driver != "postgres" && c.DB.Driver != "memory" {
		return fmt.Errorf("config: DB_DRIVER %q no soportado", c.DB.Driver)
	}
	return nil
}

// ParseCORSOrigins interpreta CORS_ORIGINS como arreglo JSON de strings.
// Si está vacío o mal formado devuelve DefaultCORSOrigins en lugar de fallar.
func ParseCORSOrigins(raw string) []string {
	var origins []string
	if err := json.Unmarshal([]byte(raw), &origins); err != nil || len(origins) == 0 {
		return append([]string(nil), DefaultCORSOrigins...)
	}
	return origins
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	if s, ok := v.Get(key).(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return def
		}
		return n
	}
	return v.GetInt(key)
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	if s, ok := v.Get(key).(string); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			return def
		}
		return b
	}
	return v.GetBool(key)
}
