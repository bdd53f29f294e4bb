package config // loads application configuration from environment variables

import (
    "log"     // report configuration errors and halt execution
    "os"      // access to environment variables
    "strconv" // convert strings to other types
    "time"    // duration parsing
)

// Config holds all runtime configuration values.  Each field
// corresponds to an environment variable.  Catalog and occupancy
// behavior is env-driven so the simulated data source can be swapped
// for the MySQL-backed one without code changes.
type Config struct {
    Env                    string        // application environment (e.g. "dev", "prod")
    Port                   string        // HTTP port to listen on
    JWTSecret              string        // secret used to sign JWTs
    AccessTTLMin           int           // access token time-to-live in minutes
    BcryptCost             int           // bcrypt cost for password hashing
    CatalogDriver          string        // "memory" or "mysql"
    DBUser                 string        // database username (mysql driver only)
    DBPass                 string        // database password (optional)
    DBHost                 string        // database host address
    DBPort                 string        // database port number
    DBName                 string        // database name
    CatalogLatency         time.Duration // simulated fetch latency (memory driver)
    DeterministicOccupancy bool          // keep one occupancy roll per showtime
    ConsumerEnabled        bool          // run the booking.confirmed consumer
}

// Load reads configuration values from environment variables and
// returns a Config.  Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
func Load() Config {
    cfg := Config{
        Env:                    must("APP_ENV"),
        Port:                   must("APP_PORT"),
        JWTSecret:              must("JWT_SECRET"),
        AccessTTLMin:           envInt("ACCESS_TOKEN_TTL_MIN", 60),
        BcryptCost:             envInt("BCRYPT_COST", 10),
        CatalogDriver:          envStr("CATALOG_DRIVER", "memory"),
        CatalogLatency:         envDur("CATALOG_LATENCY", 0),
        DeterministicOccupancy: envBool("DETERMINISTIC_OCCUPANCY", false),
        ConsumerEnabled:        envBool("BOOKING_CONSUMER_ENABLED", false),
    }
    if cfg.CatalogDriver == "mysql" {
        cfg.DBUser = must("DB_USER")
        cfg.DBPass = os.Getenv("DB_PASS") // empty allowed
        cfg.DBHost = must("DB_HOST")
        cfg.DBPort = must("DB_PORT")
        cfg.DBName = must("DB_NAME")
    }
    return cfg
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

// envStr retrieves an optional string variable, falling back to the
// given default when unset or empty.
func envStr(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

// envBool is like envStr() but parses the value as a boolean.  An
// unparseable value falls back to the default.
func envBool(key string, def bool) bool {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    b, err := strconv.ParseBool(v)
    if err != nil {
        return def
    }
    return b
}

// envInt is like envStr() but converts the retrieved string into an
// integer, falling back to the default on failure.
func envInt(key string, def int) int {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    n, err := strconv.Atoi(v)
    if err != nil {
        return def
    }
    return n
}

// envDur is like envStr() but parses the value as a time.Duration
// (e.g. "800ms"), falling back to the default on failure.
func envDur(key string, def time.Duration) time.Duration {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    d, err := time.ParseDuration(v)
    if err != nil {
        return def
    }
    return d
}
