package config // package config loads application configuration from environment variables

import (
	"log"  // log reports configuration errors and halts execution
	"os"   // os provides access to environment variables
	"sync" // sync guards the one-time .env load

	"github.com/joho/godotenv"
)

// MovieConfig holds runtime settings for the movie-ranking site.  Each field
// corresponds to an environment variable.  Secrets such as the TMDB token are
// never hard-coded; they must be supplied through the environment or a .env file.
type MovieConfig struct {
	Env       string // application environment (e.g. "dev", "prod")
	Port      string // HTTP port to listen on
	DBPath    string // path of the sqlite database file
	TMDBToken string // bearer token for The Movie Database API
}

// CafeConfig holds runtime settings for the cafe directory API.
type CafeConfig struct {
	Env    string // application environment
	Port   string // HTTP port to listen on
	DBPath string // path of the sqlite database file
	APIKey string // shared secret gating the delete endpoint
}

var dotenvOnce sync.Once

// loadDotenv reads a .env file from the working directory into the process
// environment.  A missing file is not an error; deployments supply real
// environment variables instead.
func loadDotenv() {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})
}

// LoadMovies reads the movie service configuration.  Required variables are
// enforced by must() and missing values cause the program to exit with a
// fatal log message.
func LoadMovies() MovieConfig {
	loadDotenv()
	return MovieConfig{
		Env:       must("APP_ENV"),
		Port:      must("APP_PORT"),
		DBPath:    getenv("MOVIES_DB_PATH", "movies.db"),
		TMDBToken: must("TMDB_API_TOKEN"),
	}
}

// LoadCafes reads the cafe service configuration.
func LoadCafes() CafeConfig {
	loadDotenv()
	return CafeConfig{
		Env:    must("APP_ENV"),
		Port:   must("APP_PORT"),
		DBPath: getenv("CAFES_DB_PATH", "cafes.db"),
		APIKey: must("CAFE_API_KEY"),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv retrieves an optional environment variable, falling back to def
// when it is unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
