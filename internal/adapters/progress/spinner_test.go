package progress

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/nftdeploy/internal/usecase"
)

func TestSpinnerSinkStages(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	sink := NewSpinnerSink(&buf)
	ctx := context.Background()

	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageResolving, Message: "Resolving"})
	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageResolving, Message: "still resolving"})
	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageDeploying, Message: "Deploying NFTV1"})

	assert.Len(t, sink.stages, 2)
	assert.False(t, sink.stages[0].EndTime.IsZero())
	assert.True(t, sink.stages[1].EndTime.IsZero())
	assert.Contains(t, sink.spinner.Suffix, "✓ Resolving")
	assert.Contains(t, sink.spinner.Suffix, "● Deploying")
	assert.Contains(t, sink.spinner.Suffix, "Deploying NFTV1")

	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageCompleted})
	assert.False(t, sink.spinner.Active())

	sink.Info("done")
	assert.Contains(t, buf.String(), "done")
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sink := NewLogSink(log)

	sink.OnProgress(context.Background(), usecase.ProgressEvent{Stage: usecase.StageDeploying, Message: "Deploying NFTV1"})
	sink.OnProgress(context.Background(), usecase.ProgressEvent{Stage: usecase.StageCompleted})
	sink.Error("forge failed")

	out := buf.String()
	assert.Contains(t, out, `msg="Deploying NFTV1"`)
	assert.Contains(t, out, "stage=deploying")
	assert.Contains(t, out, "stage=completed")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "component=progress")
}
