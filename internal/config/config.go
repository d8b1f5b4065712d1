package config // package config loads application configuration from environment variables

import (
	"log"     // log reports configuration errors and halts execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Storage driver names accepted in STORE_DRIVER.  The memory driver keeps all
// records in process memory and is intended for demos and tests; the mysql
// driver persists to a relational schema.
const (
	DriverMemory = "memory"
	DriverMySQL  = "mysql"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Strings for identifiers and secrets, ints for
// durations and costs.
type Config struct {
	Env             string // application environment (e.g. "dev", "prod")
	Port            string // HTTP port to listen on
	StoreDriver     string // storage backend: "memory" or "mysql"
	DBUser          string // database username
	DBPass          string // database password (optional)
	DBHost          string // database host address
	DBPort          string // database port number
	DBName          string // database name
	JWTSecret       string // secret used to sign access tokens
	AccessTTLMin    int    // access token time-to-live in minutes
	SessionTTLHours int    // session token lifetime in hours (default login)
	RememberTTLDays int    // session token lifetime in days with remember-me
	BcryptCost      int    // bcrypt cost for password hashing
	PublicDir       string // directory of static assets served to browsers

	RedisAddr     string // host:port of the Redis server
	RedisPassword string // optional Redis password
	RedisDB       int    // Redis database number
	RedisTLS      bool   // dial Redis over TLS
}

// Load reads configuration values from environment variables and returns a
// Config.  Every value has a development default so the memory-backed demo
// server starts without any environment at all; production deployments are
// expected to set JWT_SECRET and the DB_* variables explicitly.
func Load() Config {
	cfg := Config{
		Env:             getenv("APP_ENV", "dev"),
		Port:            getenv("APP_PORT", "5000"),
		StoreDriver:     getenv("STORE_DRIVER", DriverMemory),
		DBUser:          getenv("DB_USER", "root"),
		DBPass:          os.Getenv("DB_PASS"),
		DBHost:          getenv("DB_HOST", "localhost"),
		DBPort:          getenv("DB_PORT", "3306"),
		DBName:          getenv("DB_NAME", "tomotrip"),
		JWTSecret:       getenv("JWT_SECRET", "dev-secret-change-me"),
		AccessTTLMin:    envInt("ACCESS_TOKEN_TTL_MIN", 15),
		SessionTTLHours: envInt("SESSION_TTL_HOURS", 24),
		RememberTTLDays: envInt("REMEMBER_TTL_DAYS", 30),
		BcryptCost:      envInt("BCRYPT_COST", 10),
		PublicDir:       getenv("PUBLIC_DIR", "public"),

		RedisAddr:     redisAddr(),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envInt("REDIS_DB", 0),
		RedisTLS:      envBool("REDIS_TLS", false),
	}
	if cfg.StoreDriver != DriverMemory && cfg.StoreDriver != DriverMySQL {
		log.Fatalf("unknown STORE_DRIVER: %q (want %q or %q)", cfg.StoreDriver, DriverMemory, DriverMySQL)
	}
	if cfg.Env == "prod" && cfg.JWTSecret == "dev-secret-change-me" {
		log.Fatal("JWT_SECRET must be set in prod")
	}
	return cfg
}

// PersistCatalogFilters reports whether active catalog filters should
// survive a guide reload.  Off by default: a fresh dataset starts
// unfiltered.
func PersistCatalogFilters() bool {
	return envBool("CATALOG_PERSIST_FILTERS", false)
}

// redisAddr resolves the Redis address the same way the DB_* variables
// resolve the database: REDIS_HOST/REDIS_PORT win over the REDIS_ADDR
// shorthand, and localhost is the development default.
func redisAddr() string {
	host := os.Getenv("REDIS_HOST")
	port := os.Getenv("REDIS_PORT")
	if host != "" && port != "" {
		return host + ":" + port
	}
	return getenv("REDIS_ADDR", "localhost:6379")
}

// getenv returns the value of an environment variable or a default when the
// variable is unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envInt is like getenv but converts the value into an integer.  Invalid
// values fall back to the default rather than halting startup.
func envInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("config: invalid int for %s: %q, using %d", key, s, def)
		return def
	}
	return n
}
