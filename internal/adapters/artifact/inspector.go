package artifact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/trebuchet-org/nftdeploy/internal/config"
	"github.com/trebuchet-org/nftdeploy/internal/domain"
	"github.com/trebuchet-org/nftdeploy/internal/usecase"
)

// Inspector reads constructor signatures from compiled artifacts. Foundry's
// out/<File>.sol/<Name>.json layout is searched first, then Truffle's
// build/contracts/<Name>.json.
type Inspector struct {
	projectRoot string
	outDir      string
	log         *slog.Logger
}

// NewInspector creates a new artifact inspector
func NewInspector(cfg *config.RuntimeConfig, log *slog.Logger) *Inspector {
	return &Inspector{
		projectRoot: cfg.ProjectRoot,
		outDir:      cfg.FoundryConfig.OutDir(),
		log:         log.With("component", "ArtifactInspector"),
	}
}

// Constructor returns the constructor inputs of the named artifact. The name
// may be a bare contract name or Foundry's "path/File.sol:Name" form.
func (i *Inspector) Constructor(ctx context.Context, artifact string) (*domain.ConstructorInfo, error) {
	path, err := i.locate(artifact)
	if err != nil {
		return nil, err
	}
	i.log.Debug("reading artifact", "artifact", artifact, "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	var raw struct {
		ABI json.RawMessage `json:"abi"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}
	if len(raw.ABI) == 0 {
		return nil, fmt.Errorf("artifact %s has no abi", path)
	}

	parsed, err := abi.JSON(bytes.NewReader(raw.ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse abi of %s: %w", artifact, err)
	}

	info := &domain.ConstructorInfo{
		Artifact: artifact,
		Path:     i.relative(path),
		Inputs:   make([]domain.ConstructorInput, 0, len(parsed.Constructor.Inputs)),
	}
	for _, input := range parsed.Constructor.Inputs {
		info.Inputs = append(info.Inputs, domain.ConstructorInput{
			Name: input.Name,
			Type: input.Type.String(),
		})
	}

	return info, nil
}

func (i *Inspector) locate(artifact string) (string, error) {
	file, name := splitArtifact(artifact)

	var candidates []string
	if file != "" {
		candidates = append(candidates, filepath.Join(i.projectRoot, i.outDir, filepath.Base(file), name+".json"))
	} else {
		candidates = append(candidates,
			filepath.Join(i.projectRoot, i.outDir, name+".sol", name+".json"),
			filepath.Join(i.projectRoot, "build", "contracts", name+".json"),
		)
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	// Contract declared in a file with a different name
	if file == "" {
		matches, err := filepath.Glob(filepath.Join(i.projectRoot, i.outDir, "*.sol", name+".json"))
		if err == nil && len(matches) == 1 {
			return matches[0], nil
		}
		if len(matches) > 1 {
			return "", fmt.Errorf("multiple artifacts named %s - use path:contract format to disambiguate", name)
		}
	}

	return "", fmt.Errorf("%w: %s (run forge build?)", domain.ErrArtifactNotFound, artifact)
}

func (i *Inspector) relative(path string) string {
	if rel, err := filepath.Rel(i.projectRoot, path); err == nil {
		return rel
	}
	return path
}

// splitArtifact splits "src/File.sol:Name" into its file and contract parts
func splitArtifact(artifact string) (file, name string) {
	if idx := strings.LastIndex(artifact, ":"); idx != -1 {
		return artifact[:idx], artifact[idx+1:]
	}
	return "", artifact
}

// Ensure the adapter implements the interface
var _ usecase.ArtifactInspector = (*Inspector)(nil)
