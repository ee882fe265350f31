package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads a .env file when one is present. A missing file is not
// an error; the process environment still applies.
func LoadEnv() error {
	return godotenv.Load()
}

// Addr returns the listen address for the server.
func Addr() string {
	if v := os.Getenv("HOPPER_ADDR"); v != "" {
		return v
	}
	return ":8080"
}
