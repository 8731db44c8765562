package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lockstep/internal/adapters/telemetry/progrock"
	"go.trai.ch/lockstep/internal/core/domain"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_RecordAndComplete(t *testing.T) {
	recorder := progrock.New()

	ctx, vtx := recorder.Record(context.Background(), "solving channel packages")
	require.NotNil(t, ctx)
	require.NotNil(t, vtx)

	vtx.Log(domain.LogLevelDebug, "solver task abc123")
	vtx.Complete(nil)

	_, failing := recorder.Record(context.Background(), "resolving dist dependencies")
	failing.Complete(errors.New("boom"))

	require.NoError(t, recorder.Close())
}
