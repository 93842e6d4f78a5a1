package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration shared by both services.
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	CORS    CORSConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MongoDBConfig struct {
	URI string
	// Database defaults to "details", the single logical database shared by
	// the retrieve and upload services.
	Database               string
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	MaxPoolSize            uint64
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Default CORS allow-lists. The two services historically ship different
// lists; that divergence is deliberate until product says otherwise.
var (
	RetrieveOrigins = []string{"http://localhost:3005", "https://vibefolio.vercel.app/"}
	UploadOrigins   = []string{"http://localhost:3005", "https://your-dummy-url-here.com"}
)

// Load reads configuration from environment variables and an optional .env
// file. defaultPort and defaultOrigins are service-specific; everything else
// is shared. MONGODB_URI is mandatory and its absence is fatal.
func Load(defaultPort string, defaultOrigins []string) (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", defaultPort)
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("MONGODB_DATABASE", "details")
	viper.SetDefault("MONGODB_TIMEOUT", 10)

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		MongoDB: MongoDBConfig{
			URI:                    getEnvOrPanic("MONGODB_URI"),
			Database:               viper.GetString("MONGODB_DATABASE"),
			ConnectTimeout:         time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
			ServerSelectionTimeout: 5 * time.Second,
			MaxPoolSize:            10,
		},
		CORS: CORSConfig{
			AllowedOrigins: defaultOrigins,
		},
	}

	if raw := viper.GetString("CORS_ALLOWED_ORIGINS"); raw != "" {
		cfg.CORS.AllowedOrigins = splitOrigins(raw)
	}

	return cfg, nil
}

// IsDevelopment reports whether error responses may carry stack traces.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Server.Environment, "development")
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvOrPanic(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("environment variable %s is required", key)
	}
	return v
}
