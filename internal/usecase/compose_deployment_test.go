package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/nftdeploy/internal/domain"
)

const composeYAML = `
defaults:
  CONTRACT_SYMBOL: DROP
steps:
  - name: genesis
    variant: Basic
    values:
      CONTRACT_NAME: Genesis
  - variant: basic
    artifact: NFTV1Alt
    values:
      CONTRACT_NAME: Second
      CONTRACT_SYMBOL: SEC
`

func writeCompose(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultComposeFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newComposeDeployment(deployer *fakeDeployer, store *fakeStore, inspector *fakeInspector) *ComposeDeployment {
	resolver := newResolver(nil, &fakeSource{values: domain.ConfigValues{}}, inspector, &fakeSelector{})
	deploy := NewDeployContract(resolver, deployer, store, NopProgress{}, discardLog)
	return NewComposeDeployment(domain.DefaultRegistry(), resolver, deploy, NopProgress{}, discardLog)
}

func TestLoadComposeFile(t *testing.T) {
	t.Run("decodes steps", func(t *testing.T) {
		file, err := LoadComposeFile(writeCompose(t, composeYAML+"\n  - variant: VersionedToken\n    values:\n      CONTRACT_VERSION: 3\n"))
		require.NoError(t, err)
		require.Len(t, file.Steps, 3)
		assert.Equal(t, "DROP", file.Defaults[domain.KeyContractSymbol])
		assert.Equal(t, "NFTV1Alt", file.Steps[1].Artifact)
		assert.Equal(t, "3", file.Steps[2].Values[domain.KeyContractVersion])
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := LoadComposeFile(writeCompose(t, "steps:\n  - variant: Basic\n    varaints: x\n"))
		assert.ErrorContains(t, err, "failed to parse compose file")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadComposeFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "compose file not found")
	})
}

func TestComposeDeployment(t *testing.T) {
	ctx := context.Background()

	t.Run("deploys every step in order", func(t *testing.T) {
		deployer := &fakeDeployer{}
		store := &fakeStore{}
		uc := newComposeDeployment(deployer, store, &fakeInspector{inputs: 2})

		result, err := uc.Run(ctx, ComposeParams{ConfigPath: writeCompose(t, composeYAML), ExtraArgs: []string{"--legacy"}})
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 2, result.Deployed)

		require.Len(t, deployer.requests, 2)
		assert.Equal(t, "NFTV1", deployer.requests[0].Artifact)
		assert.Equal(t, domain.ArgumentList{"Genesis", "DROP"}, deployer.requests[0].Args)
		assert.Equal(t, "NFTV1Alt", deployer.requests[1].Artifact)
		assert.Equal(t, domain.ArgumentList{"Second", "SEC"}, deployer.requests[1].Args)
		assert.Equal(t, []string{"--legacy"}, deployer.requests[1].ExtraArgs)
		assert.Equal(t, "step-2", result.Steps[1].Step.Name)
		assert.Len(t, store.records, 2)
	})

	t.Run("resolution errors stop before any deployment", func(t *testing.T) {
		deployer := &fakeDeployer{}
		uc := newComposeDeployment(deployer, &fakeStore{}, &fakeInspector{inputs: 2})

		_, err := uc.Run(ctx, ComposeParams{ConfigPath: writeCompose(t, `
steps:
  - variant: Basic
    values: {CONTRACT_NAME: A, CONTRACT_SYMBOL: A}
  - name: broken
    variant: Basic
    values: {CONTRACT_NAME: B}
`)})
		assert.ErrorIs(t, err, domain.ErrMissingConfigValue)
		assert.ErrorContains(t, err, `step "broken"`)
		assert.Empty(t, deployer.requests)
	})

	t.Run("deployment failure returns partial result", func(t *testing.T) {
		deployer := &fakeDeployer{err: errors.New("insufficient funds")}
		uc := newComposeDeployment(deployer, &fakeStore{}, &fakeInspector{inputs: 2})

		result, err := uc.Run(ctx, ComposeParams{ConfigPath: writeCompose(t, composeYAML)})
		assert.ErrorContains(t, err, `step "genesis" failed`)
		require.NotNil(t, result)
		assert.False(t, result.Success)
		assert.Equal(t, "genesis", result.FailedStep)
		require.Len(t, result.Steps, 1)
		assert.Equal(t, "insufficient funds", result.Steps[0].Error)
		assert.Len(t, deployer.requests, 1)
	})

	t.Run("dry run records nothing", func(t *testing.T) {
		store := &fakeStore{}
		uc := newComposeDeployment(&fakeDeployer{}, store, &fakeInspector{inputs: 2})

		result, err := uc.Run(ctx, ComposeParams{ConfigPath: writeCompose(t, composeYAML), DryRun: true})
		require.NoError(t, err)
		assert.Zero(t, result.Deployed)
		assert.Empty(t, store.records)
	})

	t.Run("invalid file", func(t *testing.T) {
		uc := newComposeDeployment(&fakeDeployer{}, &fakeStore{}, &fakeInspector{inputs: 2})
		_, err := uc.Run(ctx, ComposeParams{ConfigPath: writeCompose(t, "steps:\n  - variant: Premium\n")})
		assert.ErrorIs(t, err, domain.ErrUnknownVariant)
	})
}
