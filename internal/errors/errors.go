package errors

import "fmt"

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// AppError carries an error code, operator-facing message, and the Persian
// text shown to the admin in chat.
type AppError struct {
	Code        string
	Message     string
	UserMessage string
	Severity    Severity
	Retryable   bool
	cause       error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// NewAccessDeniedError reports a start request from a user outside the
// allow-list.
func NewAccessDeniedError(userID int64) *AppError {
	return &AppError{
		Code:        "E100",
		Message:     fmt.Sprintf("access denied for user %d", userID),
		UserMessage: "⛔ فقط ادمین‌ها به ربات دسترسی دارند.",
		Severity:    SeverityLow,
		Retryable:   false,
	}
}

// NewValidationError reports malformed price input. The admin is re-prompted
// in place; there is no retry limit.
func NewValidationError(msg string) *AppError {
	return &AppError{
		Code:        "E110",
		Message:     msg,
		UserMessage: "❗ لطفاً فقط عدد وارد کنید.",
		Severity:    SeverityLow,
		Retryable:   true,
	}
}

// NewPublishError reports a failed channel broadcast.
func NewPublishError(cause error) *AppError {
	var underlyingMsg string
	if cause != nil {
		underlyingMsg = cause.Error()
	}

	return &AppError{
		Code:        "E200",
		Message:     fmt.Sprintf("publish to channel failed: %s", underlyingMsg),
		UserMessage: "⚠️ ارسال به کانال ناموفق بود. دوباره تلاش کنید.",
		Severity:    SeverityHigh,
		Retryable:   true,
		cause:       cause,
	}
}

// NewJournalError reports a failed price log append.
func NewJournalError(cause error) *AppError {
	var underlyingMsg string
	if cause != nil {
		underlyingMsg = cause.Error()
	}

	return &AppError{
		Code:        "E210",
		Message:     fmt.Sprintf("journal append failed: %s", underlyingMsg),
		UserMessage: "⚠️ ثبت در گزارش ناموفق بود.",
		Severity:    SeverityHigh,
		Retryable:   true,
		cause:       cause,
	}
}

// NewStateError reports a conversation storage failure.
func NewStateError(cause error) *AppError {
	var underlyingMsg string
	if cause != nil {
		underlyingMsg = cause.Error()
	}

	return &AppError{
		Code:        "E300",
		Message:     fmt.Sprintf("conversation state failure: %s", underlyingMsg),
		UserMessage: "⚠️ خطایی رخ داد. دوباره تلاش کنید.",
		Severity:    SeverityMedium,
		Retryable:   true,
		cause:       cause,
	}
}
