package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// dotenvFiles are read in order; later files override earlier ones
var dotenvFiles = []string{".env", ".env.local"}

// LoadDotenv reads the project's .env files without touching the process
// environment. Missing files are skipped.
func LoadDotenv(projectRoot string) (map[string]string, error) {
	values := make(map[string]string)
	for _, name := range dotenvFiles {
		path := filepath.Join(projectRoot, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		fileValues, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}
	return values, nil
}

// Lookup resolves a variable from the process environment first, then from dotenv
func Lookup(dotenv map[string]string) func(string) string {
	return func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return dotenv[key]
	}
}

// loadFoundryConfig loads and parses foundry.toml. A project without
// foundry.toml gets an empty config with Foundry's defaults.
func loadFoundryConfig(projectRoot string, dotenv map[string]string) (*FoundryConfig, error) {
	cfg := &FoundryConfig{
		Profile:      make(map[string]ProfileConfig),
		RpcEndpoints: make(map[string]string),
	}

	foundryPath := filepath.Join(projectRoot, "foundry.toml")
	if _, err := os.Stat(foundryPath); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(foundryPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}

	lookup := Lookup(dotenv)
	for name, url := range cfg.RpcEndpoints {
		cfg.RpcEndpoints[name] = os.Expand(url, lookup)
	}

	return cfg, nil
}
