package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/trebuchet-org/nftdeploy/internal/domain"
	"gopkg.in/yaml.v3"
)

// DefaultComposeFile is the compose file used when none is given
const DefaultComposeFile = "nftdeploy-compose.yaml"

// ComposeParams contains parameters for a compose run
type ComposeParams struct {
	ConfigPath        string
	SkipArtifactCheck bool
	DryRun            bool
	ExtraArgs         []string
	Debug             bool
}

// ComposeStepResult contains the outcome of one compose step
type ComposeStepResult struct {
	Step   domain.ComposeStep    `json:"step"`
	Result *DeployContractResult `json:"result,omitempty"`
	Error  string                `json:"error,omitempty"`
}

// ComposeResult contains the result of a compose run
type ComposeResult struct {
	Steps      []*ComposeStepResult `json:"steps"`
	FailedStep string               `json:"failedStep,omitempty"`
	Deployed   int                  `json:"deployed"`
	Success    bool                 `json:"success"`
}

// ComposeDeployment deploys every step of a compose file in order. All steps
// are resolved before the first deployment so configuration errors never
// leave a run half done.
type ComposeDeployment struct {
	registry *domain.Registry
	resolver *ResolveArguments
	deploy   *DeployContract
	progress ProgressSink
	log      *slog.Logger
}

// NewComposeDeployment creates a new ComposeDeployment use case
func NewComposeDeployment(
	registry *domain.Registry,
	resolver *ResolveArguments,
	deploy *DeployContract,
	progress ProgressSink,
	log *slog.Logger,
) *ComposeDeployment {
	return &ComposeDeployment{
		registry: registry,
		resolver: resolver,
		deploy:   deploy,
		progress: progress,
		log:      log.With("component", "ComposeDeployment"),
	}
}

// Run executes the compose file. On a failed deployment the partial result is
// returned together with the error.
func (uc *ComposeDeployment) Run(ctx context.Context, params ComposeParams) (*ComposeResult, error) {
	path := params.ConfigPath
	if path == "" {
		path = DefaultComposeFile
	}

	file, err := LoadComposeFile(path)
	if err != nil {
		return nil, err
	}
	if err := file.Validate(uc.registry); err != nil {
		return nil, fmt.Errorf("invalid compose file %s: %w", path, err)
	}

	plans := make([]*domain.DeploymentPlan, len(file.Steps))
	for i, step := range file.Steps {
		plan, err := uc.resolver.Run(ctx, ResolveParams{
			Variant:           step.Variant,
			Artifact:          step.Artifact,
			SkipArtifactCheck: params.SkipArtifactCheck,
			Overrides:         file.StepValues(step),
		})
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", step.Name, err)
		}
		plans[i] = plan
	}
	uc.log.Debug("compose plan resolved", "path", path, "steps", len(plans))

	result := &ComposeResult{Steps: make([]*ComposeStepResult, 0, len(plans))}
	for i, step := range file.Steps {
		uc.progress.Info(fmt.Sprintf("[%d/%d] %s", i+1, len(plans), step.Name))

		stepResult := &ComposeStepResult{Step: step}
		result.Steps = append(result.Steps, stepResult)

		deployed, err := uc.deploy.Execute(ctx, plans[i], DeployParams{
			DryRun:    params.DryRun,
			ExtraArgs: params.ExtraArgs,
			Debug:     params.Debug,
		})
		if err != nil {
			stepResult.Error = err.Error()
			result.FailedStep = step.Name
			return result, fmt.Errorf("step %q failed: %w", step.Name, err)
		}
		stepResult.Result = deployed
		if deployed.Record != nil {
			result.Deployed++
		}
	}

	result.Success = true
	return result, nil
}

// LoadComposeFile reads and decodes a compose file. Unknown fields are rejected.
func LoadComposeFile(path string) (*domain.ComposeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("compose file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read compose file: %w", err)
	}

	var file domain.ComposeFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse compose file %s: %w", path, err)
	}
	return &file, nil
}
