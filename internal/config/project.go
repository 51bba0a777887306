package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"
	"github.com/trebuchet-org/nftdeploy/internal/domain"
)

// ProjectFileName is the optional per-project variant definition file
const ProjectFileName = "nftdeploy.toml"

// loadProjectFile loads and parses nftdeploy.toml if it exists.
// Returns (nil, nil) when the file does not exist.
func loadProjectFile(projectRoot string) (*ProjectFile, error) {
	path := filepath.Join(projectRoot, ProjectFileName)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var pf ProjectFile
	if _, err := toml.DecodeFile(path, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ProjectFileName, err)
	}
	return &pf, nil
}

// BuildRegistry layers the project file's variants over the built-in registry.
// Built-in variants may only have their artifact and description changed.
func BuildRegistry(pf *ProjectFile) (*domain.Registry, error) {
	registry := domain.DefaultRegistry()
	if pf == nil {
		return registry, nil
	}

	names := lo.Keys(pf.Variants)
	sort.Strings(names)

	for _, name := range names {
		entry := pf.Variants[name]

		if existing, err := registry.Lookup(name); err == nil {
			if !existing.BuiltIn {
				return nil, fmt.Errorf("variant %s declared more than once", name)
			}
			if len(entry.Keys) > 0 && !slices.Equal(entry.Keys, existing.Keys) {
				return nil, fmt.Errorf("variant %s is built in; its keys cannot be changed", existing.Variant)
			}
			if entry.Artifact != "" {
				existing.Artifact = entry.Artifact
			}
			if entry.Description != "" {
				existing.Description = entry.Description
			}
			if registry, err = registry.With(existing); err != nil {
				return nil, err
			}
			continue
		}

		spec := domain.VariantSpec{
			Variant:     domain.ContractVariant(name),
			Artifact:    entry.Artifact,
			Keys:        entry.Keys,
			Description: entry.Description,
		}
		if spec.Artifact == "" {
			spec.Artifact = name
		}
		var err error
		if registry, err = registry.With(spec); err != nil {
			return nil, err
		}
	}

	return registry, nil
}
