package errors

// ErrorCode identifies the kind of an AppError in API responses
type ErrorCode int32

const (
	ErrorCode_HTTP_OK          ErrorCode = 0
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	ErrorCode_MEETING_NOT_FOUND     ErrorCode = 2000
	ErrorCode_MEETING_EXPORT_FAILED ErrorCode = 2001

	ErrorCode_AI_TRANSCRIPTION_FAILED ErrorCode = 3000
	ErrorCode_AI_TRANSLATION_FAILED   ErrorCode = 3001
	ErrorCode_AI_SUMMARY_FAILED       ErrorCode = 3002
	ErrorCode_AI_ACTION_ITEMS_FAILED  ErrorCode = 3003

	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 4000

	ErrorCode_DB_QUERY_FAILED ErrorCode = 5000
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_MEETING_NOT_FOUND:          "MEETING_NOT_FOUND",
	ErrorCode_MEETING_EXPORT_FAILED:      "MEETING_EXPORT_FAILED",
	ErrorCode_AI_TRANSCRIPTION_FAILED:    "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_TRANSLATION_FAILED:      "AI_TRANSLATION_FAILED",
	ErrorCode_AI_SUMMARY_FAILED:          "AI_SUMMARY_FAILED",
	ErrorCode_AI_ACTION_ITEMS_FAILED:     "AI_ACTION_ITEMS_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_DB_QUERY_FAILED:            "DB_QUERY_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
