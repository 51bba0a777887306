package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/nftdeploy/internal/config"
	"github.com/trebuchet-org/nftdeploy/internal/domain"
)

func newDeployContract(cfg *config.RuntimeConfig, values domain.ConfigValues, deployer *fakeDeployer, store *fakeStore) *DeployContract {
	resolver := newResolver(cfg, &fakeSource{values: values}, &fakeInspector{inputs: 2}, &fakeSelector{})
	uc := NewDeployContract(resolver, deployer, store, NopProgress{}, discardLog)
	uc.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return uc
}

func TestDeployContract(t *testing.T) {
	ctx := context.Background()
	network := &domain.Network{Name: "sepolia", RpcURL: "https://sepolia.example"}

	t.Run("broadcast is recorded", func(t *testing.T) {
		deployer := &fakeDeployer{}
		store := &fakeStore{}
		uc := newDeployContract(&config.RuntimeConfig{Network: network}, basicValues(), deployer, store)

		result, err := uc.Run(ctx, DeployParams{
			ResolveParams: ResolveParams{Variant: "Basic"},
			ExtraArgs:     []string{"--legacy"},
		})
		require.NoError(t, err)

		require.Len(t, deployer.requests, 1)
		req := deployer.requests[0]
		assert.Equal(t, "NFTV1", req.Artifact)
		assert.Equal(t, domain.ArgumentList{"Foo", "FOO"}, req.Args)
		assert.Same(t, network, req.Network)
		assert.Equal(t, []string{"--legacy"}, req.ExtraArgs)

		require.Len(t, store.records, 1)
		rec := store.records[0]
		assert.Same(t, rec, result.Record)
		assert.Equal(t, "sepolia/NFTV1:0x5FbDB2315678afecb367f032d93F642f64180aa3", rec.ID)
		assert.Equal(t, domain.VariantBasic, rec.Variant)
		assert.Equal(t, "0xabc", rec.TxHash)
		assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), rec.CreatedAt)
	})

	t.Run("dry run is not recorded", func(t *testing.T) {
		deployer := &fakeDeployer{}
		store := &fakeStore{}
		uc := newDeployContract(nil, basicValues(), deployer, store)

		result, err := uc.Run(ctx, DeployParams{ResolveParams: ResolveParams{Variant: "Basic"}, DryRun: true})
		require.NoError(t, err)
		assert.True(t, deployer.requests[0].DryRun)
		assert.True(t, result.Deployment.DryRun)
		assert.Nil(t, result.Record)
		assert.Empty(t, store.records)
	})

	t.Run("resolution failure never reaches the deployer", func(t *testing.T) {
		deployer := &fakeDeployer{}
		uc := newDeployContract(nil, domain.ConfigValues{domain.KeyContractName: "Foo"}, deployer, &fakeStore{})

		_, err := uc.Run(ctx, DeployParams{ResolveParams: ResolveParams{Variant: "Basic"}})
		assert.ErrorIs(t, err, domain.ErrMissingConfigValue)
		assert.Empty(t, deployer.requests)
	})

	t.Run("deploy failure is surfaced", func(t *testing.T) {
		store := &fakeStore{}
		deployer := &fakeDeployer{err: domain.ErrDeployFailed}
		uc := newDeployContract(nil, basicValues(), deployer, store)

		_, err := uc.Run(ctx, DeployParams{ResolveParams: ResolveParams{Variant: "Basic"}})
		assert.ErrorIs(t, err, domain.ErrDeployFailed)
		assert.Empty(t, store.records)
	})

	t.Run("deploy failure is reported once", func(t *testing.T) {
		sink := &recordingSink{}
		resolver := newResolver(nil, &fakeSource{values: basicValues()}, &fakeInspector{inputs: 2}, &fakeSelector{})
		uc := NewDeployContract(resolver, &fakeDeployer{err: domain.ErrDeployFailed}, &fakeStore{}, sink, discardLog)

		_, err := uc.Run(ctx, DeployParams{ResolveParams: ResolveParams{Variant: "Basic"}})
		assert.ErrorIs(t, err, domain.ErrDeployFailed)
		assert.Empty(t, sink.errors, "the caller prints the returned error")
	})

	t.Run("record failure keeps the address in the error", func(t *testing.T) {
		uc := newDeployContract(nil, basicValues(), &fakeDeployer{}, &fakeStore{err: errors.New("disk full")})

		_, err := uc.Run(ctx, DeployParams{ResolveParams: ResolveParams{Variant: "Basic"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "0x5FbDB2315678afecb367f032d93F642f64180aa3")
		assert.Contains(t, err.Error(), "disk full")
	})
}
