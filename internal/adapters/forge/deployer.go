package forge

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/creack/pty"
	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/nftdeploy/internal/config"
	"github.com/trebuchet-org/nftdeploy/internal/domain"
	"github.com/trebuchet-org/nftdeploy/internal/usecase"
)

// createOutput is the JSON printed by `forge create --json` after a broadcast
type createOutput struct {
	Deployer        string `json:"deployer"`
	DeployedTo      string `json:"deployedTo"`
	TransactionHash string `json:"transactionHash"`
}

const waitDelay = 2 * time.Second

// Deployer deploys artifacts with `forge create`
type Deployer struct {
	log         *slog.Logger
	projectRoot string
	forgeBin    string
	stream      io.Writer
}

// NewDeployer creates a new forge deployer
func NewDeployer(cfg *config.RuntimeConfig, log *slog.Logger) *Deployer {
	bin := cfg.ForgeBin
	if bin == "" {
		bin = "forge"
	}
	return &Deployer{
		log:         log.With("component", "ForgeDeployer"),
		projectRoot: cfg.ProjectRoot,
		forgeBin:    bin,
		stream:      os.Stderr,
	}
}

// Deploy runs forge create for the request
func (d *Deployer) Deploy(ctx context.Context, req domain.DeployRequest) (*domain.DeployResult, error) {
	args := buildArgs(req)
	command := append([]string{d.forgeBin}, args...)

	d.log.Debug("running forge create", "args", args, "dir", d.projectRoot)
	start := time.Now()

	cmd := exec.CommandContext(ctx, d.forgeBin, args...)
	cmd.Dir = d.projectRoot
	cmd.Env = os.Environ()
	// Children of forge can hold the output pipes open after it is killed
	cmd.WaitDelay = waitDelay

	var (
		output []byte
		err    error
	)
	if req.Debug {
		output, err = d.runWithPty(cmd)
	} else {
		output, err = cmd.CombinedOutput()
	}
	duration := time.Since(start)

	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: forge create interrupted: %w", domain.ErrDeployFailed, ctx.Err())
		}
		d.log.Error("forge create failed", "error", err, "duration", duration)
		return nil, fmt.Errorf("%w: forge create: %w\nOutput: %s", domain.ErrDeployFailed, err, strings.TrimSpace(string(output)))
	}
	d.log.Debug("forge create completed", "duration", duration)

	result := &domain.DeployResult{
		Artifact: req.Artifact,
		DryRun:   req.DryRun,
		Command:  command,
	}
	if req.DryRun {
		return result, nil
	}

	created, err := parseCreateOutput(output)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDeployFailed, err)
	}
	result.Address = common.HexToAddress(created.DeployedTo).Hex()
	result.Deployer = created.Deployer
	result.TxHash = created.TransactionHash

	return result, nil
}

// runWithPty streams forge output to the terminal while capturing it
func (d *Deployer) runWithPty(cmd *exec.Cmd) ([]byte, error) {
	ptyFile, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to start pty: %w", err)
	}
	defer func() {
		_ = ptyFile.Close()
	}()

	var buf bytes.Buffer
	// Reading a pty whose child exited fails with EIO on Linux
	if _, err := io.Copy(io.MultiWriter(d.stream, &buf), ptyFile); err != nil && !errors.Is(err, syscall.EIO) {
		d.log.Debug("pty copy ended", "error", err)
	}

	return bytes.ReplaceAll(buf.Bytes(), []byte("\r\n"), []byte("\n")), cmd.Wait()
}

// buildArgs builds the forge create argument list. Constructor arguments go
// last since --constructor-args consumes the rest of the command line.
func buildArgs(req domain.DeployRequest) []string {
	args := []string{"create", req.Artifact, "--json"}

	if req.Network != nil && req.Network.RpcURL != "" {
		args = append(args, "--rpc-url", req.Network.RpcURL)
	}
	if !req.DryRun {
		args = append(args, "--broadcast")
	}
	args = append(args, req.ExtraArgs...)

	if len(req.Args) > 0 {
		args = append(args, "--constructor-args")
		args = append(args, req.Args...)
	}
	return args
}

// parseCreateOutput finds the JSON result line in forge's output
func parseCreateOutput(output []byte) (*createOutput, error) {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}

	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		if !strings.HasPrefix(line, "{") {
			continue
		}
		var out createOutput
		if err := json.Unmarshal([]byte(line), &out); err != nil {
			continue
		}
		if out.DeployedTo == "" {
			continue
		}
		if !common.IsHexAddress(out.DeployedTo) {
			return nil, fmt.Errorf("forge reported invalid contract address %q", out.DeployedTo)
		}
		return &out, nil
	}

	return nil, fmt.Errorf("no deployment result found in forge output")
}

// Ensure the adapter implements the interface
var _ usecase.ContractDeployer = (*Deployer)(nil)
