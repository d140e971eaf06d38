package pipeline

import (
	"github.com/johnquangdev/meeting-insights/errors"
)

// Stage is one step of the audio-to-insight pipeline
type Stage int

const (
	StageValidate Stage = iota
	StageTranscribe
	StageTranslate
	StageSummarize
	StageExtractActionItems
	StagePersist
)

var stageNames = [...]string{
	StageValidate:           "validate",
	StageTranscribe:         "transcribe",
	StageTranslate:          "translate",
	StageSummarize:          "summarize",
	StageExtractActionItems: "extract_action_items",
	StagePersist:            "persist",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// failure maps a stage error to the error returned to callers
func (s Stage) failure(err error) errors.AppError {
	switch s {
	case StageValidate:
		return errors.ErrInvalidInput()
	case StageTranscribe:
		return errors.ErrAITranscriptionFailed(err)
	case StageTranslate:
		return errors.ErrAITranslationFailed(err)
	case StageSummarize:
		return errors.ErrAISummaryFailed(err)
	case StageExtractActionItems:
		return errors.ErrAIActionItemsFailed(err)
	default:
		return errors.ErrInternal(err)
	}
}
