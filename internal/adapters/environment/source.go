package environment

import (
	"context"
	"os"
	"strings"

	"github.com/trebuchet-org/nftdeploy/internal/config"
	"github.com/trebuchet-org/nftdeploy/internal/domain"
	"github.com/trebuchet-org/nftdeploy/internal/usecase"
)

// EnvSource reads deployment configuration from the process environment,
// falling back to values from the project's .env files.
type EnvSource struct {
	dotenv  map[string]string
	environ func() []string
}

// NewEnvSource creates a new environment-backed config source
func NewEnvSource(cfg *config.RuntimeConfig) *EnvSource {
	return &EnvSource{
		dotenv:  cfg.Dotenv,
		environ: os.Environ,
	}
}

// Values returns a fresh snapshot on every call
func (s *EnvSource) Values(ctx context.Context) (domain.ConfigValues, error) {
	values := make(domain.ConfigValues, len(s.dotenv))
	for k, v := range s.dotenv {
		values[k] = v
	}

	for _, kv := range s.environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}

	return values, nil
}

// Ensure the adapter implements the interface
var _ usecase.ConfigSource = (*EnvSource)(nil)
