package errors

import (
	"github.com/cockroachdb/errors"
)

// ErrorBuilder builds an *InternalError fluently:
//
//	ierr.NewError("price not found").
//		WithHint("Price not found").
//		WithReportableDetails(map[string]interface{}{"id": id}).
//		Mark(ierr.ErrNotFound)
type ErrorBuilder struct {
	err *InternalError
}

// NewError starts a builder from a fresh message.
func NewError(message string) *ErrorBuilder {
	return &ErrorBuilder{
		err: &InternalError{
			cause: errors.NewWithDepth(1, message),
		},
	}
}

// NewErrorf starts a builder from a formatted message.
func NewErrorf(format string, args ...interface{}) *ErrorBuilder {
	return &ErrorBuilder{
		err: &InternalError{
			cause: errors.NewWithDepthf(1, format, args...),
		},
	}
}

// WithError starts a builder wrapping an existing error, preserving its chain.
func WithError(err error) *ErrorBuilder {
	if err == nil {
		err = errors.New("unknown error")
	}
	return &ErrorBuilder{
		err: &InternalError{
			cause: err,
		},
	}
}

// WithHint attaches a user-facing hint.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.err.hint = hint
	return b
}

// WithHintf attaches a formatted user-facing hint.
func (b *ErrorBuilder) WithHintf(format string, args ...interface{}) *ErrorBuilder {
	b.err.hint = errors.Newf(format, args...).Error()
	return b
}

// WithReportableDetails attaches structured details that are safe to return to
// API clients.
func (b *ErrorBuilder) WithReportableDetails(details map[string]interface{}) *ErrorBuilder {
	b.err.reportableDetails = details
	return b
}

// Mark classifies the error with one of the package sentinels and finalizes
// the builder.
func (b *ErrorBuilder) Mark(mark error) error {
	b.err.mark = mark
	return b.err
}
