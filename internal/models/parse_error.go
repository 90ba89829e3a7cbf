package models

import "time"

// ErrorSeverity indicates how serious a parse error is.
type ErrorSeverity string

const (
	SeverityInfo     ErrorSeverity = "info"
	SeverityWarning  ErrorSeverity = "warning"
	SeverityError    ErrorSeverity = "error"
	SeverityCritical ErrorSeverity = "critical"
)

// RecoveryAction is the suggested way for the caller to proceed after a
// parse error.
type RecoveryAction string

const (
	ActionTruncate   RecoveryAction = "truncate"
	ActionSkip       RecoveryAction = "skip"
	ActionRetry      RecoveryAction = "retry"
	ActionFallback   RecoveryAction = "fallback"
	ActionAbort      RecoveryAction = "abort"
	ActionUserAction RecoveryAction = "user-action"
)

// ErrorCategoryParsing is the only category this engine produces.
const ErrorCategoryParsing = "parsing"

// ParseError describes a problem encountered during a scan. Errors are
// created synchronously during or immediately after a scan attempt and
// surfaced to the host for display; they are never retried automatically.
type ParseError struct {
	Category        string         `json:"category"`
	Severity        ErrorSeverity  `json:"severity"`
	Message         string         `json:"message"`
	Recoverable     bool           `json:"recoverable"`
	SuggestedAction RecoveryAction `json:"suggested_action"`
	Timestamp       time.Time      `json:"timestamp"`
}

// NewParseError creates a parse error with the category fixed to "parsing"
// and the timestamp set to the current time.
func NewParseError(severity ErrorSeverity, message string, recoverable bool, action RecoveryAction) ParseError {
	return ParseError{
		Category:        ErrorCategoryParsing,
		Severity:        severity,
		Message:         message,
		Recoverable:     recoverable,
		SuggestedAction: action,
		Timestamp:       time.Now(),
	}
}
