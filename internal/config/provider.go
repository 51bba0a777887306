package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/nftdeploy/internal/domain"
)

// DataDirName is the per-project state directory
const DataDirName = ".nftdeploy"

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}
	if !filepath.IsAbs(projectRoot) {
		abs, err := filepath.Abs(projectRoot)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve project root: %w", err)
		}
		projectRoot = abs
	}

	cfg := &RuntimeConfig{
		ProjectRoot:       projectRoot,
		DataDir:           filepath.Join(projectRoot, DataDirName),
		Variant:           v.GetString("variant"),
		Artifact:          v.GetString("artifact"),
		Debug:             v.GetBool("debug"),
		NonInteractive:    v.GetBool("non_interactive"),
		JSON:              v.GetBool("json"),
		Timeout:           v.GetDuration("timeout"),
		DryRun:            v.GetBool("dry_run"),
		SkipArtifactCheck: v.GetBool("skip_artifact_check"),
		ForgeBin:          v.GetString("forge_bin"),
		ForgeArgs:         v.GetStringSlice("forge_args"),
	}

	dotenv, err := LoadDotenv(projectRoot)
	if err != nil {
		return nil, err
	}
	cfg.Dotenv = dotenv

	foundryConfig, err := loadFoundryConfig(projectRoot, dotenv)
	if err != nil {
		return nil, fmt.Errorf("failed to load foundry config: %w", err)
	}
	cfg.FoundryConfig = foundryConfig

	projectFile, err := loadProjectFile(projectRoot)
	if err != nil {
		return nil, err
	}
	registry, err := BuildRegistry(projectFile)
	if err != nil {
		return nil, fmt.Errorf("failed to build variant registry: %w", err)
	}
	cfg.Registry = registry

	// Offline commands such as list only need the name
	cfg.NetworkName = v.GetString("network")
	if cfg.NetworkName != "" {
		network, err := ResolveNetwork(foundryConfig, cfg.NetworkName)
		if err != nil {
			cfg.NetworkErr = fmt.Errorf("failed to resolve network %s: %w", cfg.NetworkName, err)
		} else {
			cfg.Network = network
		}
	}

	return cfg, nil
}

// FindProjectRoot walks up from current directory to find foundry.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		foundryToml := filepath.Join(dir, "foundry.toml")
		if _, err := os.Stat(foundryToml); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Foundry project (foundry.toml not found)")
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string) *viper.Viper {
	v := viper.New()

	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, DataDirName))

	v.SetEnvPrefix("NFTDEPLOY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("forge_bin", "forge")
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	return v
}

// BindFlags binds every flag that was set on the command line to viper,
// translating dashes to the underscore keys used in config files.
func BindFlags(v *viper.Viper, cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			v.Set(key, sv.GetSlice())
			return
		}
		v.Set(key, f.Value.String())
	})
}

// ResolveNetwork maps a network name to an RPC endpoint. Names are looked up in
// foundry.toml [rpc_endpoints]; raw URLs are accepted as-is.
func ResolveNetwork(foundry *FoundryConfig, name string) (*domain.Network, error) {
	if foundry != nil {
		if url, ok := foundry.RpcEndpoints[name]; ok {
			if url == "" {
				return nil, fmt.Errorf("rpc endpoint for %s is empty (unset environment variable?)", name)
			}
			return &domain.Network{Name: name, RpcURL: url}, nil
		}
	}

	for _, scheme := range []string{"http://", "https://", "ws://", "wss://"} {
		if strings.HasPrefix(name, scheme) {
			return &domain.Network{Name: "custom", RpcURL: name}, nil
		}
	}

	return nil, fmt.Errorf("network '%s' not found in foundry.toml [rpc_endpoints]", name)
}
