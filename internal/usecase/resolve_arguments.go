package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"maps"

	"github.com/trebuchet-org/nftdeploy/internal/config"
	"github.com/trebuchet-org/nftdeploy/internal/domain"
)

// ResolveParams contains parameters for resolving a deployment plan
type ResolveParams struct {
	Variant           string // empty selects interactively
	Artifact          string // overrides the variant's artifact
	SkipArtifactCheck bool
	// Overrides take precedence over the configuration source for this run only
	Overrides domain.ConfigValues
}

// ResolveArguments turns a variant and the current configuration into a
// deployment plan. It never deploys anything.
type ResolveArguments struct {
	config    *config.RuntimeConfig
	registry  *domain.Registry
	source    ConfigSource
	inspector ArtifactInspector
	selector  VariantSelector
	progress  ProgressSink
	log       *slog.Logger
}

// NewResolveArguments creates a new ResolveArguments use case
func NewResolveArguments(
	cfg *config.RuntimeConfig,
	registry *domain.Registry,
	source ConfigSource,
	inspector ArtifactInspector,
	selector VariantSelector,
	progress ProgressSink,
	log *slog.Logger,
) *ResolveArguments {
	return &ResolveArguments{
		config:    cfg,
		registry:  registry,
		source:    source,
		inspector: inspector,
		selector:  selector,
		progress:  progress,
		log:       log.With("component", "ResolveArguments"),
	}
}

// Run executes the resolution
func (uc *ResolveArguments) Run(ctx context.Context, params ResolveParams) (*domain.DeploymentPlan, error) {
	if uc.config.NetworkErr != nil {
		return nil, uc.config.NetworkErr
	}

	// The picker owns the terminal until it returns
	spec, err := uc.selectVariant(ctx, params.Variant)
	if err != nil {
		return nil, err
	}
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageResolving, Message: "Resolving constructor arguments", Spinner: true})

	values, err := uc.source.Values(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	if len(params.Overrides) > 0 {
		merged := maps.Clone(values)
		if merged == nil {
			merged = domain.ConfigValues{}
		}
		maps.Copy(merged, params.Overrides)
		values = merged
	}

	args, err := domain.ResolveSpec(spec, values)
	if err != nil {
		return nil, err
	}

	artifact := spec.Artifact
	if params.Artifact != "" {
		artifact = params.Artifact
	}
	uc.log.Debug("resolved arguments", "variant", spec.Variant, "artifact", artifact, "count", len(args))

	plan := &domain.DeploymentPlan{
		Variant:  spec,
		Artifact: artifact,
		Args:     args,
		Network:  uc.config.Network,
	}

	if params.SkipArtifactCheck {
		return plan, nil
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageChecking, Message: fmt.Sprintf("Checking artifact %s", artifact), Spinner: true})
	info, err := uc.inspector.Constructor(ctx, artifact)
	if err != nil {
		return nil, err
	}
	if len(info.Inputs) != len(args) {
		return nil, domain.ConstructorMismatchError{
			Artifact: artifact,
			Variant:  spec.Variant,
			Expected: len(args),
			Actual:   len(info.Inputs),
		}
	}
	plan.Constructor = info

	return plan, nil
}

func (uc *ResolveArguments) selectVariant(ctx context.Context, tag string) (domain.VariantSpec, error) {
	if tag != "" {
		return uc.registry.Lookup(tag)
	}

	spec, err := uc.selector.SelectVariant(ctx, uc.registry.Variants())
	if err != nil {
		return domain.VariantSpec{}, fmt.Errorf("no variant given: %w", err)
	}
	return spec, nil
}
