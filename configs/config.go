package configs

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is built once at startup and passed down explicitly; no package-level
// state. The admin credential and signing secret live here, never in code.
type Config struct {
	Port          string        `envconfig:"PORT" default:"8001"`
	MongoURL      string        `envconfig:"MONGO_URL" default:"mongodb://localhost:27017"`
	MongoDB       string        `envconfig:"MONGO_DB" default:"la_carreta_db"`
	JWTSecret     string        `envconfig:"JWT_SECRET" default:"la-carreta-secret-key-2024"`
	JWTTTL        time.Duration `envconfig:"JWT_TTL" default:"24h"`
	AdminUsername string        `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPassword string        `envconfig:"ADMIN_PASSWORD" default:"lacarreta2024"`
	StoreTimeout  time.Duration `envconfig:"STORE_TIMEOUT" default:"5s"`
	SeedCatalog   bool          `envconfig:"SEED_CATALOG" default:"true"`
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
