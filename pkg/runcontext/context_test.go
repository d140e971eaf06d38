package runcontext

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBegin_SetsMetadataAndDeadline(t *testing.T) {
	runID := uuid.New()
	ctx, cancel := RunBegin(context.Background(), runID, "a@x.com", time.Minute)
	defer cancel()

	md := GetRunMetadata(ctx)
	assert.Equal(t, runID, md.RunID)
	assert.Equal(t, "a@x.com", md.OwnerEmail)
	assert.False(t, md.StartTime.IsZero())

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
	assert.Len(t, Fields(ctx), 3)
}

func TestRunBegin_ZeroTimeoutKeepsParentDeadline(t *testing.T) {
	ctx, cancel := RunBegin(context.Background(), uuid.New(), "a@x.com", 0)
	defer cancel()

	_, ok := ctx.Deadline()
	assert.False(t, ok)
}

func TestGetters_EmptyContext(t *testing.T) {
	_, ok := GetRunID(context.Background())
	assert.False(t, ok)
	_, ok = GetOwnerEmail(context.Background())
	assert.False(t, ok)
}
