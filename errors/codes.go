package errors

// ErrorCode identifies an application error category.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK              ErrorCode = 200
	ErrorCode_INTERNAL             ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT     ErrorCode = 1001
	ErrorCode_CONFIGURATION        ErrorCode = 1002
	ErrorCode_UNSUPPORTED_FORMAT   ErrorCode = 2000
	ErrorCode_TRANSCRIPTION_FAILED ErrorCode = 2001
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:              "HTTP_OK",
	ErrorCode_INTERNAL:             "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:     "INVALID_ARGUMENT",
	ErrorCode_CONFIGURATION:        "CONFIGURATION",
	ErrorCode_UNSUPPORTED_FORMAT:   "UNSUPPORTED_FORMAT",
	ErrorCode_TRANSCRIPTION_FAILED: "TRANSCRIPTION_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
