package domain

import (
	"fmt"
	"time"
)

// Network is the target a deployment is submitted to
type Network struct {
	Name   string `json:"name"`
	RpcURL string `json:"rpcUrl"`
}

// ConstructorInput describes one constructor parameter read from an artifact ABI
type ConstructorInput struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ConstructorInfo is what the artifact says its constructor takes
type ConstructorInfo struct {
	Artifact string             `json:"artifact"`
	Path     string             `json:"path"`
	Inputs   []ConstructorInput `json:"inputs"`
}

// DeploymentPlan is a fully resolved deployment ready to hand to the deployer
type DeploymentPlan struct {
	Variant     VariantSpec      `json:"variant"`
	Artifact    string           `json:"artifact"`
	Args        ArgumentList     `json:"args"`
	Constructor *ConstructorInfo `json:"constructor,omitempty"`
	Network     *Network         `json:"network,omitempty"`
}

// DeployRequest is the input of the deploy(artifact, ...args) capability
type DeployRequest struct {
	Artifact  string
	Args      ArgumentList
	Network   *Network
	DryRun    bool
	ExtraArgs []string
	Debug     bool
}

// DeployResult is what the deployment framework reported back
type DeployResult struct {
	Artifact string   `json:"artifact"`
	Address  string   `json:"address,omitempty"`
	TxHash   string   `json:"txHash,omitempty"`
	Deployer string   `json:"deployer,omitempty"`
	DryRun   bool     `json:"dryRun"`
	Command  []string `json:"command"`
}

// DeploymentRecord is a persisted, broadcast deployment
type DeploymentRecord struct {
	ID        string          `json:"id"` // e.g., "sepolia/NFTV1:0x..."
	Variant   ContractVariant `json:"variant"`
	Artifact  string          `json:"artifact"`
	Network   string          `json:"network"`
	Address   string          `json:"address"`
	TxHash    string          `json:"txHash,omitempty"`
	Deployer  string          `json:"deployer,omitempty"`
	Args      ArgumentList    `json:"args"`
	CreatedAt time.Time       `json:"createdAt"`
}

// RecordID builds the identifier of a deployment record
func RecordID(network, artifact, address string) string {
	if network == "" {
		network = "default"
	}
	return fmt.Sprintf("%s/%s:%s", network, artifact, address)
}

// DeploymentFilter narrows a deployment listing; empty fields match everything
type DeploymentFilter struct {
	Network string
	Variant ContractVariant
}

// Matches reports whether the record passes the filter
func (f DeploymentFilter) Matches(rec *DeploymentRecord) bool {
	if f.Network != "" && rec.Network != f.Network {
		return false
	}
	if f.Variant != "" && rec.Variant != f.Variant {
		return false
	}
	return true
}
