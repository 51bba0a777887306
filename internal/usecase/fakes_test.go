package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"maps"

	"github.com/trebuchet-org/nftdeploy/internal/config"
	"github.com/trebuchet-org/nftdeploy/internal/domain"
)

var discardLog = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeSource struct {
	values domain.ConfigValues
	err    error
}

func (f *fakeSource) Values(context.Context) (domain.ConfigValues, error) {
	if f.err != nil {
		return nil, f.err
	}
	return maps.Clone(f.values), nil
}

type fakeInspector struct {
	inputs int
	err    error
	asked  []string
}

func (f *fakeInspector) Constructor(_ context.Context, artifact string) (*domain.ConstructorInfo, error) {
	f.asked = append(f.asked, artifact)
	if f.err != nil {
		return nil, f.err
	}
	info := &domain.ConstructorInfo{Artifact: artifact, Path: "out/" + artifact + ".sol/" + artifact + ".json"}
	for i := 0; i < f.inputs; i++ {
		info.Inputs = append(info.Inputs, domain.ConstructorInput{Type: "string"})
	}
	return info, nil
}

type fakeDeployer struct {
	requests []domain.DeployRequest
	err      error
}

func (f *fakeDeployer) Deploy(_ context.Context, req domain.DeployRequest) (*domain.DeployResult, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	res := &domain.DeployResult{Artifact: req.Artifact, DryRun: req.DryRun}
	if !req.DryRun {
		res.Address = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
		res.TxHash = "0xabc"
		res.Deployer = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	}
	return res, nil
}

type fakeStore struct {
	records []*domain.DeploymentRecord
	err     error
}

func (f *fakeStore) Save(_ context.Context, rec *domain.DeploymentRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeStore) List(_ context.Context, filter domain.DeploymentFilter) ([]*domain.DeploymentRecord, error) {
	var out []*domain.DeploymentRecord
	for _, r := range f.records {
		if filter.Matches(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeSelector struct {
	pick string
}

func (f *fakeSelector) SelectVariant(_ context.Context, variants []domain.VariantSpec) (domain.VariantSpec, error) {
	for _, v := range variants {
		if string(v.Variant) == f.pick {
			return v, nil
		}
	}
	return domain.VariantSpec{}, errors.New("interactive selection not available in non-interactive mode")
}

func newResolver(cfg *config.RuntimeConfig, src ConfigSource, insp ArtifactInspector, sel VariantSelector) *ResolveArguments {
	if cfg == nil {
		cfg = &config.RuntimeConfig{}
	}
	return NewResolveArguments(cfg, domain.DefaultRegistry(), src, insp, sel, NopProgress{}, discardLog)
}

type recordingSink struct {
	events []ProgressEvent
	errors []string
}

func (s *recordingSink) OnProgress(_ context.Context, event ProgressEvent) {
	s.events = append(s.events, event)
}

func (s *recordingSink) Info(string) {}

func (s *recordingSink) Error(message string) {
	s.errors = append(s.errors, message)
}

func (s *recordingSink) spinning() bool {
	return len(s.events) > 0 && s.events[len(s.events)-1].Spinner
}

// promptSelector records whether a spinner was running when the prompt opened
type promptSelector struct {
	sink            *recordingSink
	spinnerAtPrompt bool
}

func (p *promptSelector) SelectVariant(_ context.Context, variants []domain.VariantSpec) (domain.VariantSpec, error) {
	p.spinnerAtPrompt = p.sink.spinning()
	return variants[0], nil
}
