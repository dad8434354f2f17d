package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Env file load order. godotenv never overwrites variables that are
// already set, so real environment variables beat both files and
// .env.local beats .env.
var envFiles = []string{".env.local", ".env"}

// LoadDotEnv reads the local env files into the process environment and
// returns the ones that were found.
func LoadDotEnv() []string {
	var loaded []string
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			continue
		}
		loaded = append(loaded, f)
	}
	return loaded
}
