package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeConflict           ErrorCode = "COMMON_004"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_005"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_006"
	ErrCodeTimeout            ErrorCode = "COMMON_007"
	ErrCodeValidation         ErrorCode = "COMMON_008"
	ErrCodeSerialization      ErrorCode = "COMMON_009"
	ErrCodeDatabaseError      ErrorCode = "COMMON_010"
	ErrCodeCacheError         ErrorCode = "COMMON_011"
)

// Index module error codes
const (
	// ErrCodeEmptyCorpus is returned by the offline index builder when it is
	// asked to index a corpus with zero documents.  Fatal to that build:
	// serving must never run against an index with no documents behind it.
	ErrCodeEmptyCorpus         ErrorCode = "IDX_001"
	ErrCodeArtifactReadFailed  ErrorCode = "IDX_002"
	ErrCodeArtifactWriteFailed ErrorCode = "IDX_003"
)

// Search module error codes
const (
	// ErrCodeRetrievalUnavailable marks a corpus store that could not be
	// reached.  The search engine recovers by returning an empty result set;
	// the code survives in the error chain for logging and metrics.
	ErrCodeRetrievalUnavailable ErrorCode = "SRCH_001"
	ErrCodeLawNotFound          ErrorCode = "SRCH_002"
	ErrCodeCaseNotFound         ErrorCode = "SRCH_003"
)

// Response composition error codes
const (
	// ErrCodeTemplateMissing marks a referenced template group that is absent
	// from the loaded catalog.  Recovered via a fixed literal fallback.
	ErrCodeTemplateMissing ErrorCode = "RESP_001"
	// ErrCodeMalformedDocument marks a document missing required fields during
	// excerpt extraction.  Recovered by falling back to raw truncation.
	ErrCodeMalformedDocument ErrorCode = "RESP_002"
)

// Short aliases used throughout the codebase.
const (
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeNotFound     = ErrCodeNotFound
	CodeOK           = ErrorCode("OK")
	CodeUnknown      = ErrorCode("UNKNOWN")
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeDatabaseError:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,

	ErrCodeEmptyCorpus:         http.StatusInternalServerError,
	ErrCodeArtifactReadFailed:  http.StatusInternalServerError,
	ErrCodeArtifactWriteFailed: http.StatusInternalServerError,

	ErrCodeRetrievalUnavailable: http.StatusServiceUnavailable,
	ErrCodeLawNotFound:          http.StatusNotFound,
	ErrCodeCaseNotFound:         http.StatusNotFound,

	ErrCodeTemplateMissing:   http.StatusInternalServerError,
	ErrCodeMalformedDocument: http.StatusInternalServerError,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeNotFound:           "resource not found",
	ErrCodeConflict:           "resource conflict",
	ErrCodeTooManyRequests:    "too many requests",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeTimeout:            "request timeout",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeDatabaseError:      "database error",
	ErrCodeCacheError:         "cache error",

	ErrCodeEmptyCorpus:         "corpus contains no documents",
	ErrCodeArtifactReadFailed:  "failed to read index artifact",
	ErrCodeArtifactWriteFailed: "failed to write index artifact",

	ErrCodeRetrievalUnavailable: "corpus store unavailable",
	ErrCodeLawNotFound:          "law not found",
	ErrCodeCaseNotFound:         "court case not found",

	ErrCodeTemplateMissing:   "response template group missing",
	ErrCodeMalformedDocument: "document missing required fields",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError returns true if the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError returns true if the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}
