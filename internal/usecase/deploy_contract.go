package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/trebuchet-org/nftdeploy/internal/domain"
)

// DeployParams contains parameters for deploying a contract
type DeployParams struct {
	ResolveParams
	DryRun    bool
	ExtraArgs []string
	Debug     bool
}

// DeployContractResult contains the result of a deployment run
type DeployContractResult struct {
	Plan       *domain.DeploymentPlan   `json:"plan"`
	Deployment *domain.DeployResult     `json:"deployment"`
	Record     *domain.DeploymentRecord `json:"record,omitempty"`
}

// DeployContract resolves a plan and hands it to the deployment framework.
// Any failure aborts the run; nothing is retried.
type DeployContract struct {
	resolver *ResolveArguments
	deployer ContractDeployer
	store    DeploymentStore
	progress ProgressSink
	log      *slog.Logger
	now      func() time.Time
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	resolver *ResolveArguments,
	deployer ContractDeployer,
	store DeploymentStore,
	progress ProgressSink,
	log *slog.Logger,
) *DeployContract {
	return &DeployContract{
		resolver: resolver,
		deployer: deployer,
		store:    store,
		progress: progress,
		log:      log.With("component", "DeployContract"),
		now:      time.Now,
	}
}

// Run executes the deployment
func (uc *DeployContract) Run(ctx context.Context, params DeployParams) (*DeployContractResult, error) {
	plan, err := uc.resolver.Run(ctx, params.ResolveParams)
	if err != nil {
		return nil, err
	}
	return uc.Execute(ctx, plan, params)
}

// Execute deploys an already resolved plan. params.ResolveParams is ignored.
func (uc *DeployContract) Execute(ctx context.Context, plan *domain.DeploymentPlan, params DeployParams) (*DeployContractResult, error) {
	stageMsg := fmt.Sprintf("Deploying %s", plan.Artifact)
	if params.DryRun {
		stageMsg = fmt.Sprintf("Simulating %s", plan.Artifact)
	}
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageDeploying, Message: stageMsg, Spinner: true})

	deployment, err := uc.deployer.Deploy(ctx, domain.DeployRequest{
		Artifact:  plan.Artifact,
		Args:      plan.Args,
		Network:   plan.Network,
		DryRun:    params.DryRun,
		ExtraArgs: params.ExtraArgs,
		Debug:     params.Debug,
	})
	if err != nil {
		return nil, err
	}

	result := &DeployContractResult{Plan: plan, Deployment: deployment}
	if deployment.DryRun {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
		return result, nil
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageRecording, Message: "Recording deployment"})
	networkName := ""
	if plan.Network != nil {
		networkName = plan.Network.Name
	}
	record := &domain.DeploymentRecord{
		ID:        domain.RecordID(networkName, plan.Artifact, deployment.Address),
		Variant:   plan.Variant.Variant,
		Artifact:  plan.Artifact,
		Network:   networkName,
		Address:   deployment.Address,
		TxHash:    deployment.TxHash,
		Deployer:  deployment.Deployer,
		Args:      plan.Args,
		CreatedAt: uc.now().UTC(),
	}
	if err := uc.store.Save(ctx, record); err != nil {
		// The contract is on chain already; surface the address with the error
		return nil, fmt.Errorf("deployed %s at %s but failed to record it: %w", plan.Artifact, deployment.Address, err)
	}
	result.Record = record

	uc.log.Info("deployment recorded", "id", record.ID)
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	return result, nil
}
