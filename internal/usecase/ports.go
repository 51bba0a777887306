package usecase

import (
	"context"

	"github.com/trebuchet-org/nftdeploy/internal/domain"
)

// ConfigSource provides the flat configuration the resolver reads from
type ConfigSource interface {
	Values(ctx context.Context) (domain.ConfigValues, error)
}

// ArtifactInspector reads constructor information from compiled artifacts
type ArtifactInspector interface {
	Constructor(ctx context.Context, artifact string) (*domain.ConstructorInfo, error)
}

// ContractDeployer is the deploy(artifact, ...args) capability of the deployment framework
type ContractDeployer interface {
	Deploy(ctx context.Context, req domain.DeployRequest) (*domain.DeployResult, error)
}

// DeploymentStore handles persistence of deployment records
type DeploymentStore interface {
	Save(ctx context.Context, record *domain.DeploymentRecord) error
	List(ctx context.Context, filter domain.DeploymentFilter) ([]*domain.DeploymentRecord, error)
}

// VariantSelector lets the user pick a variant when none was given
type VariantSelector interface {
	SelectVariant(ctx context.Context, variants []domain.VariantSpec) (domain.VariantSpec, error)
}

// Progress tracking interfaces

// ExecutionStage names a step of a deployment run
type ExecutionStage string

const (
	StageResolving ExecutionStage = "resolving"
	StageChecking  ExecutionStage = "checking"
	StageDeploying ExecutionStage = "deploying"
	StageRecording ExecutionStage = "recording"
	StageCompleted ExecutionStage = "completed"
)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   ExecutionStage
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
