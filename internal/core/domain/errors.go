package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDocument        = errors.New("empty document")
	ErrInvalidDocument      = errors.New("invalid document")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrBudgetTooSmall       = errors.New("budget too small")
	ErrUnsupportedMode      = errors.New("unsupported mode")
	ErrExtraction           = errors.New("extraction failed")
	ErrGeneration           = errors.New("generation failed")
	ErrTimeout              = errors.New("operation timed out")
	ErrDocumentNotFound     = errors.New("document not found")
	ErrTemporary            = errors.New("temporary failure")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
