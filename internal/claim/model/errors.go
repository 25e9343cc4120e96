package model

import (
	"context"
	"errors"
	"fmt"
)

// ErrorCategory classifies a submission failure.
type ErrorCategory string

var (
	CategoryNone           ErrorCategory = ""
	CategoryTransport      ErrorCategory = "transport"
	CategoryTimeout        ErrorCategory = "timeout"
	CategoryFeeTooLow      ErrorCategory = "fee_too_low"
	CategoryStaleSequence  ErrorCategory = "stale_sequence"
	CategoryTooEarly       ErrorCategory = "too_early"
	CategoryAlreadyClaimed ErrorCategory = "already_claimed"
	CategoryInvalid        ErrorCategory = "invalid"
	CategoryExpired        ErrorCategory = "expired"
	CategoryDuplicate      ErrorCategory = "duplicate"
	CategoryBuild          ErrorCategory = "build"
	CategoryCanceled       ErrorCategory = "canceled"
	CategoryUnknown        ErrorCategory = "unknown"
)

// Retryable reports whether a resubmission may succeed.
func (c ErrorCategory) Retryable() bool {
	switch c {
	case CategoryTransport, CategoryTimeout, CategoryFeeTooLow, CategoryStaleSequence, CategoryTooEarly, CategoryUnknown:
		return true
	default:
		return false
	}
}

// Terminal reports whether the resource must be dropped without retrying.
func (c ErrorCategory) Terminal() bool {
	switch c {
	case CategoryAlreadyClaimed, CategoryInvalid, CategoryExpired, CategoryBuild:
		return true
	default:
		return false
	}
}

// Included reports whether the answer acknowledges ledger inclusion.
func (c ErrorCategory) Included() bool {
	return c == CategoryDuplicate
}

// SubmissionError is a categorized ledger-write failure.
type SubmissionError struct {
	Category ErrorCategory
	// Code is the ledger's result code, when one was returned.
	Code string
	Err  error
}

func (e *SubmissionError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s): %v", e.Category, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Category, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// NewSubmissionError wraps err with a category and ledger code.
func NewSubmissionError(category ErrorCategory, code string, err error) *SubmissionError {
	if err == nil {
		err = errors.New(string(category))
	}
	return &SubmissionError{Category: category, Code: code, Err: err}
}

// categorized is implemented by errors outside this package that carry a category.
type categorized interface {
	ErrorCategory() ErrorCategory
}

// Categorize extracts the category of err. Uncategorized failures are treated as
// transport errors so they stay retryable.
func Categorize(err error) ErrorCategory {
	if err == nil {
		return CategoryNone
	}
	var subErr *SubmissionError
	if errors.As(err, &subErr) {
		return subErr.Category
	}
	var typed categorized
	if errors.As(err, &typed) {
		return typed.ErrorCategory()
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return CategoryTimeout
	case errors.Is(err, context.Canceled):
		return CategoryCanceled
	default:
		return CategoryTransport
	}
}

// ResultCode returns the ledger result code carried by err, if any.
func ResultCode(err error) string {
	var subErr *SubmissionError
	if errors.As(err, &subErr) {
		return subErr.Code
	}
	return ""
}

// ErrResourceNotFound is returned by ledger reads for a resource that no longer exists.
var ErrResourceNotFound = errors.New("locked resource not found")
