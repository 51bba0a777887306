package config

import (
	"time"

	"github.com/trebuchet-org/nftdeploy/internal/domain"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Context settings
	Network     *domain.Network // nil if not specified or not resolvable
	NetworkName string          // as given on the command line
	NetworkErr  error           // why NetworkName could not be resolved; checked before deploying
	Variant     string          // default variant when none is given on the command line
	Artifact    string          // artifact override for the selected variant

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration

	// Deploy-specific settings
	DryRun            bool
	SkipArtifactCheck bool
	ForgeBin          string
	ForgeArgs         []string

	// Resolved configurations
	FoundryConfig *FoundryConfig
	Dotenv        map[string]string // values from .env files, real environment not included
	Registry      *domain.Registry
}

// FoundryConfig represents the parts of foundry.toml used for deployment
type FoundryConfig struct {
	Profile      map[string]ProfileConfig `toml:"profile"`
	RpcEndpoints map[string]string        `toml:"rpc_endpoints"`
}

// ProfileConfig represents a profile's foundry configuration
type ProfileConfig struct {
	SrcPath string `toml:"src,omitempty"`
	OutPath string `toml:"out,omitempty"`
}

// OutDir returns the artifact output directory of the default profile
func (c *FoundryConfig) OutDir() string {
	if c != nil {
		if p, ok := c.Profile["default"]; ok && p.OutPath != "" {
			return p.OutPath
		}
	}
	return "out"
}

// ProjectFile represents nftdeploy.toml
type ProjectFile struct {
	Variants map[string]VariantEntry `toml:"variants"`
}

// VariantEntry declares a variant or overrides a built-in one
type VariantEntry struct {
	Artifact    string   `toml:"artifact"`
	Keys        []string `toml:"keys"`
	Description string   `toml:"description"`
}
