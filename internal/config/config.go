package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings. Every field maps to an environment
// variable; a .env file is loaded first when present.
type Config struct {
	HTTPPort   string `envconfig:"HTTP_PORT" default:"4000"`
	CORSOrigin string `envconfig:"CORS_ORIGIN" default:"http://localhost:3000"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`

	JWTSecret    string        `envconfig:"JWT_SECRET" default:"your-secret-key"`
	JWTExpiresIn time.Duration `envconfig:"JWT_EXPIRES_IN" default:"168h"`

	JenkinsURL     string        `envconfig:"JENKINS_URL" default:"http://localhost:8080"`
	JenkinsUser    string        `envconfig:"JENKINS_USER" default:"admin"`
	JenkinsToken   string        `envconfig:"JENKINS_TOKEN" default:""`
	JenkinsTimeout time.Duration `envconfig:"JENKINS_TIMEOUT" default:"30s"`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
