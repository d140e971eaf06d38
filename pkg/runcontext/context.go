package runcontext

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type KeyContext string

var (
	keyRunID        KeyContext = "run_id"
	keyOwnerEmail   KeyContext = "owner_email"
	keyRunStartTime KeyContext = "run_start_time"
)

// RunMetadata holds metadata for one pipeline run
type RunMetadata struct {
	RunID      uuid.UUID
	OwnerEmail string
	StartTime  time.Time
}

// RunBegin derives a run context carrying metadata and a deadline.
// A zero timeout leaves the parent deadline untouched.
func RunBegin(parentCtx context.Context, runID uuid.UUID, ownerEmail string, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := parentCtx, context.CancelFunc(func() {})
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(parentCtx, timeout)
	}

	ctx = context.WithValue(ctx, keyRunID, runID)
	ctx = context.WithValue(ctx, keyOwnerEmail, ownerEmail)
	ctx = context.WithValue(ctx, keyRunStartTime, time.Now())

	return ctx, cancel
}

// GetRunID extracts run ID from context
func GetRunID(ctx context.Context) (uuid.UUID, bool) {
	runID, ok := ctx.Value(keyRunID).(uuid.UUID)
	return runID, ok
}

// GetOwnerEmail extracts the owner email from context
func GetOwnerEmail(ctx context.Context) (string, bool) {
	owner, ok := ctx.Value(keyOwnerEmail).(string)
	return owner, ok
}

// GetRunStartTime extracts run start time from context
func GetRunStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyRunStartTime).(time.Time)
	return startTime, ok
}

// GetRunMetadata extracts all run metadata from context
func GetRunMetadata(ctx context.Context) *RunMetadata {
	runID, _ := GetRunID(ctx)
	owner, _ := GetOwnerEmail(ctx)
	startTime, _ := GetRunStartTime(ctx)

	return &RunMetadata{
		RunID:      runID,
		OwnerEmail: owner,
		StartTime:  startTime,
	}
}

// Fields returns the run metadata as zap fields
func Fields(ctx context.Context) []zap.Field {
	md := GetRunMetadata(ctx)
	fields := []zap.Field{
		zap.String("run_id", md.RunID.String()),
		zap.String("owner_email", md.OwnerEmail),
	}
	if !md.StartTime.IsZero() {
		fields = append(fields, zap.Duration("elapsed", time.Since(md.StartTime)))
	}
	return fields
}
