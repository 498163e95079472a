// internal/config/config.go
//
// Environment-driven configuration. Variables are read from the
// process environment (a .env file is loaded by main in development)
// and mapped onto the Config struct via envconfig.
//
// Everything has a sensible default so the game runs with no
// environment at all; the serve-mode admin endpoints are the only
// part that needs explicit setup (JWT_SECRET, ADMIN_PASSWORD_HASH).

package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	// Gameplay tuning.
	StartHealth int `envconfig:"START_HEALTH" default:"100"`
	MovePenalty int `envconfig:"MOVE_PENALTY" default:"10"`
	TypeDelayMs int `envconfig:"TYPE_DELAY_MS" default:"30"`

	// Hall of Souls persistence. SoulsDB may be empty to disable the
	// SQLite leaderboard and keep only the text scroll.
	SoulsFile string `envconfig:"SOULS_FILE" default:"hall_of_souls.txt"`
	SoulsDB   string `envconfig:"SOULS_DB" default:"data/souls.db"`

	// Hall of Souls viewer (serve mode).
	SoulsAddr         string `envconfig:"SOULS_ADDR" default:":5176"`
	JWTSecret         string `envconfig:"JWT_SECRET" default:"dev_secret_change_me"`
	AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}
