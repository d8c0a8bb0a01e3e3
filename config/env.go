package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadEnv reads KEY=value pairs from an env file into the process
// environment. Variables already set win. A missing file is not an error.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env %s: %w", path, err)
	}
	log.Printf("Loaded environment from %s", path)
	return nil
}

func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}

	return b, nil
}

// EnvString returns the variable or def when it is unset.
func EnvString(v, def string) string {
	if s, err := GetEnvVariable(v); err == nil {
		return s
	}
	return def
}

// EnvInt returns the variable as an int, or def when it is unset or invalid.
func EnvInt(v string, def int) int {
	s, err := GetEnvVariable(v)
	if err != nil {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("Warning: %s=%q is not an integer, using %d", v, s, def)
		return def
	}
	return n
}
