// Package config carga la configuración de la aplicación.
//
// Orden de carga (cada capa pisa a la anterior):
//   - defaults
//   - archivo de conexión (formato `clave='valor';`, ver ConnParser)
//   - variables de entorno con prefijo RECORDS_ (también desde `.env`)
//
// Las claves anidadas usan "__" en el entorno:
// RECORDS_DATABASE__HOST -> database.host -> Config.Database.Host.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	EnvPrefix = "RECORDS_"

	// DefaultConnFile es el nombre histórico del archivo de conexión.
	DefaultConnFile = "conexao.con"

	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	App      AppConfig      `koanf:"app" validate:"required"`
	HTTP     HTTPConfig     `koanf:"http" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"-"`
	Auth     AuthConfig     `koanf:"auth" validate:"required"`
	Log      LogConfig      `koanf:"log" validate:"required"`
	Storage  StorageConfig  `koanf:"storage" validate:"required"`
}

type AppConfig struct {
	Name string `koanf:"name" validate:"required"`
	Env  string `koanf:"env" validate:"required"`
}

type HTTPConfig struct {
	Addr         string        `koanf:"addr" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
}

// DatabaseConfig son los parámetros del archivo de conexión original
// (host, port, database, user, password) más sslmode y tamaño de pool.
type DatabaseConfig struct {
	Host         string `koanf:"host" validate:"required"`
	Port         int    `koanf:"port" validate:"required,min=1,max=65535"`
	Name         string `koanf:"name" validate:"required"`
	User         string `koanf:"user" validate:"required"`
	Password     string `koanf:"password"`
	SSLMode      string `koanf:"ssl_mode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns int    `koanf:"max_open_conns" validate:"min=1"`
}

type AuthConfig struct {
	TokenSecret string        `koanf:"token_secret" validate:"required,min=16"`
	TokenTTL    time.Duration `koanf:"token_ttl" validate:"required"`
	Issuer      string        `koanf:"issuer" validate:"required"`

	// Credencial que se siembra al arrancar con storage en memoria;
	// sin ella ninguna ruta protegida es alcanzable. Ambas o ninguna.
	BootstrapLogin    string `koanf:"bootstrap_login" validate:"required_with=BootstrapPassword"`
	BootstrapPassword string `koanf:"bootstrap_password" validate:"required_with=BootstrapLogin"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"required,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"required,oneof=text json"`
}

type StorageConfig struct {
	Driver string `koanf:"driver" validate:"required,oneof=postgres memory"`
}

func defaults() map[string]any {
	return map[string]any{
		"app.name":                "student-pet-records",
		"app.env":                 "local",
		"http.addr":               ":8080",
		"http.read_timeout":       "5s",
		"http.write_timeout":      "10s",
		"database.host":           "localhost",
		"database.port":           5432,
		"database.ssl_mode":       "disable",
		"database.max_open_conns": 1,
		"auth.token_ttl":          "8h",
		"auth.issuer":             "student-pet-records",
		"log.level":               "info",
		"log.format":              "text",
		"storage.driver":          DriverPostgres,
	}
}

// Load lee defaults, el archivo de conexión y el entorno.
// Si connFile es DefaultConnFile y no existe, se ignora; cualquier otra ruta
// inexistente es un error.
func Load(connFile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if connFile = strings.TrimSpace(connFile); connFile != "" {
		if _, err := os.Stat(connFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) || connFile != DefaultConnFile {
				return nil, fmt.Errorf("connection file %s: %w", connFile, err)
			}
		} else if err := k.Load(file.Provider(connFile), ConnParser()); err != nil {
			return nil, fmt.Errorf("load connection file %s: %w", connFile, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RECORDS_AUTH__TOKEN_SECRET -> auth.token_secret
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	// La base solo es obligatoria cuando efectivamente se usa.
	if c.Storage.Driver == DriverPostgres {
		if err := v.Struct(c.Database); err != nil {
			return fmt.Errorf("database config validation failed: %w", err)
		}
	}
	return nil
}

// DSN arma la URL de conexión para pgx. User y password se escapan.
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Name,
	}
	q := url.Values{}
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}
