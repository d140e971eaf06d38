package errors

import (
	stdErrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageErrorsCollapseToInternalStatus(t *testing.T) {
	cause := stdErrors.New("boom")
	for _, appErr := range []AppError{
		ErrAITranscriptionFailed(cause),
		ErrAITranslationFailed(cause),
		ErrAISummaryFailed(cause),
		ErrAIActionItemsFailed(cause),
	} {
		assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
		assert.ErrorIs(t, appErr, cause)
	}
}

func TestStageErrorsHaveDistinctMessages(t *testing.T) {
	seen := map[string]bool{}
	for _, appErr := range []AppError{
		ErrAITranscriptionFailed(nil),
		ErrAITranslationFailed(nil),
		ErrAISummaryFailed(nil),
		ErrAIActionItemsFailed(nil),
	} {
		assert.False(t, seen[appErr.Message], "duplicate message %q", appErr.Message)
		seen[appErr.Message] = true
	}
}

func TestAppErrorString(t *testing.T) {
	err := ErrMeetingNotFound()
	assert.Equal(t, "[MEETING_NOT_FOUND] Meeting not found", err.Error())
	assert.Equal(t, "UNKNOWN", ErrorCode(42).String())

	var target AppError
	wrapped := error(ErrInternal(stdErrors.New("db down")))
	assert.True(t, stdErrors.As(wrapped, &target))
	assert.Equal(t, ErrorCode_INTERNAL, target.Code)
}
