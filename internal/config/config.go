package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/PavaniTiago/socioteam-api/internal/domain/sociometry"
)

// Config reúne as configurações da API, lidas do ambiente (e opcionalmente de um .env)
type Config struct {
	Port           string
	Environment    string
	DatabaseURL    string
	Timezone       string
	AllowedOrigins string
	JWTSecret      string
	GraphCacheTTL  time.Duration
	LinkTTL        time.Duration

	Engine sociometry.Config
}

// Load carrega o .env (se existir) e monta a configuração a partir das variáveis de ambiente.
// Retorna também se o arquivo .env foi encontrado, para que o chamador possa registrar no log.
func Load(files ...string) (Config, bool, error) {
	envLoaded := godotenv.Load(files...) == nil

	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Timezone:       getEnv("TIMEZONE", "America/Sao_Paulo"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:5173, http://localhost:3000"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		Engine:         sociometry.DefaultConfig(),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, envLoaded, fmt.Errorf("DATABASE_URL is not defined in the environment")
	}
	if cfg.JWTSecret == "" {
		return Config{}, envLoaded, fmt.Errorf("JWT_SECRET is not defined in the environment")
	}

	var err error
	if cfg.GraphCacheTTL, err = getDuration("GRAPH_CACHE_TTL", 5*time.Minute); err != nil {
		return Config{}, envLoaded, err
	}
	if cfg.GraphCacheTTL <= 0 {
		return Config{}, envLoaded, fmt.Errorf("invalid GRAPH_CACHE_TTL: must be positive, got %s", cfg.GraphCacheTTL)
	}
	if cfg.LinkTTL, err = getDuration("SURVEY_LINK_TTL", 14*24*time.Hour); err != nil {
		return Config{}, envLoaded, err
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"GRAPH_NODE_BASE_SIZE", &cfg.Engine.BaseSize},
		{"GRAPH_NODE_SIZE_STEP", &cfg.Engine.SizeStep},
	}
	for _, v := range ints {
		if err := overrideInt(v.key, v.dst); err != nil {
			return Config{}, envLoaded, err
		}
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"COHESION_BASELINE", &cfg.Engine.CohesionBaseline},
		{"COHESION_POSITIVE_WEIGHT", &cfg.Engine.PositiveWeight},
		{"COHESION_NEGATIVE_WEIGHT", &cfg.Engine.NegativeWeight},
	}
	for _, v := range floats {
		if err := overrideFloat(v.key, v.dst); err != nil {
			return Config{}, envLoaded, err
		}
	}

	// pesos e passo negativos inverteriam o sentido das indicações
	nonNegative := []struct {
		key   string
		value float64
	}{
		{"GRAPH_NODE_BASE_SIZE", float64(cfg.Engine.BaseSize)},
		{"GRAPH_NODE_SIZE_STEP", float64(cfg.Engine.SizeStep)},
		{"COHESION_POSITIVE_WEIGHT", cfg.Engine.PositiveWeight},
		{"COHESION_NEGATIVE_WEIGHT", cfg.Engine.NegativeWeight},
	}
	for _, v := range nonNegative {
		if math.IsNaN(v.value) || v.value < 0 {
			return Config{}, envLoaded, fmt.Errorf("invalid %s: must not be negative, got %v", v.key, v.value)
		}
	}

	return cfg, envLoaded, nil
}

// IsProduction indica se a API roda em produção
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func overrideInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}

func overrideFloat(key string, dst *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = f
	return nil
}
