package youtube

import "net/http"

// Error codes returned to clients. The HTTP status a code maps to is carried
// on the VerificationError itself.
const (
	CodeNotAccessible = "VIDEO_NOT_ACCESSIBLE"
	CodeNotFound      = "VIDEO_NOT_FOUND"
	CodePrivate       = "VIDEO_PRIVATE"
	CodeInvalidKey    = "INVALID_API_KEY"
	CodeQuotaExceeded = "QUOTA_EXCEEDED"
	CodeForbidden     = "API_FORBIDDEN"
	CodeInternal      = "INTERNAL_ERROR"
)

// VerificationError is a classified failure from the accessibility check.
// Status is the HTTP status the handler should respond with, Code the
// machine-readable kind.
type VerificationError struct {
	Status  int
	Code    string
	Message string
}

func (e *VerificationError) Error() string {
	return e.Message
}

var (
	errNotAccessible = &VerificationError{http.StatusNotFound, CodeNotAccessible, "Video not accessible"}
	errNotFound      = &VerificationError{http.StatusNotFound, CodeNotFound, "Video not found"}
	errPrivate       = &VerificationError{http.StatusForbidden, CodePrivate, "Video is private"}
	errInvalidKey    = &VerificationError{http.StatusInternalServerError, CodeInvalidKey, "Invalid API key"}
	errQuotaExceeded = &VerificationError{http.StatusTooManyRequests, CodeQuotaExceeded, "API quota exceeded"}
	errForbidden     = &VerificationError{http.StatusForbidden, CodeForbidden, "API access forbidden"}
	errInternal      = &VerificationError{http.StatusInternalServerError, CodeInternal, "Internal server error"}
)
