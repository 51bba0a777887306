package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/trebuchet-org/nftdeploy/internal/config"
	"github.com/trebuchet-org/nftdeploy/internal/domain"
	"github.com/trebuchet-org/nftdeploy/internal/usecase"
)

const deploymentsFile = "deployments.json"

type deploymentsDocument struct {
	Deployments []*domain.DeploymentRecord `json:"deployments"`
}

// DeploymentStore implements DeploymentStore using a JSON file in the data dir
type DeploymentStore struct {
	path string
	mu   sync.Mutex
}

// NewDeploymentStore creates a new file-backed deployment store
func NewDeploymentStore(cfg *config.RuntimeConfig) *DeploymentStore {
	return &DeploymentStore{
		path: filepath.Join(cfg.DataDir, deploymentsFile),
	}
}

// Path returns the path to the deployments file
func (s *DeploymentStore) Path() string {
	return s.path
}

// Save adds the record, replacing an existing record with the same ID
func (s *DeploymentStore) Save(ctx context.Context, record *domain.DeploymentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range doc.Deployments {
		if existing.ID == record.ID {
			doc.Deployments[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		doc.Deployments = append(doc.Deployments, record)
	}

	return s.write(doc)
}

// List returns the records matching filter in stored order
func (s *DeploymentStore) List(ctx context.Context, filter domain.DeploymentFilter) ([]*domain.DeploymentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	var out []*domain.DeploymentRecord
	for _, rec := range doc.Deployments {
		if filter.Matches(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *DeploymentStore) load() (*deploymentsDocument, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &deploymentsDocument{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read deployments file: %w", err)
	}

	var doc deploymentsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse deployments file: %w", err)
	}
	return &doc, nil
}

// write replaces the file atomically so an interrupted run never leaves it truncated
func (s *DeploymentStore) write(doc *deploymentsDocument) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal deployments: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), deploymentsFile+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write deployments: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write deployments: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to write deployments: %w", err)
	}
	return nil
}

// Ensure the adapter implements the interface
var _ usecase.DeploymentStore = (*DeploymentStore)(nil)
