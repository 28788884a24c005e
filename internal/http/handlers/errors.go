// Package handlers defines HTTP-layer error codes used by the fallback error
// envelope (see response.go). Codes are lowercase snake_case and mirror
// common HTTP status semantics; clients branch on them programmatically
// while the message stays human-readable.
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeUnavailable      = "service_unavailable"
)
