package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config is the process environment, loaded once at boot. DBDSN selects the
// database snapshot backend; when empty the store falls back to StorePath on
// local disk.
type Config struct {
	Addr              string `envconfig:"ADDR" default:":8080"`
	JWTSecret         string `envconfig:"JWT_SECRET" required:"true"`
	GeminiAPIKey      string `envconfig:"GEMINI_API_KEY"`
	StorePath         string `envconfig:"STORE_PATH" default:"victory_pos.json"`
	DBDSN             string `envconfig:"DB_DSN"`
	AllowRegistration bool   `envconfig:"ALLOW_REGISTRATION" default:"false"`
	CORSOrigin        string `envconfig:"CORS_ORIGIN" default:"http://localhost:5173"`
}

// Load reads the config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
