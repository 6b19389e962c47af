package config

import "time"

const (
	// DriverPostgres is the database/sql driver name registered by pgx.
	DriverPostgres = "pgx"
	// DriverSQLite is the database/sql driver name registered by go-sqlite3.
	DriverSQLite = "sqlite3"
)

const dotEnvFile = ".env"

// defaults returns the values used for every field left empty by all
// configuration sources. TokenSignKey and DSN have no default.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordHashCost: 10,
			TokenIssuer:      "go-library-catalog",
			TokenDuration:    time.Hour,
			Version:          "dev",
		},
		Storage: Storage{
			DB: DB{
				Driver:       DriverPostgres,
				MaxOpenConns: 10,
			},
		},
		Server: Server{
			HTTPAddress:        ":8080",
			RequestTimeout:     30 * time.Second,
			CORSAllowedOrigins: []string{"*"},
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
	}
}
