package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures brand configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// MissingBrandFileError indicates the brand configuration resource could not
// be located. Nothing can be themed without it, so callers treat it as fatal.
type MissingBrandFileError struct {
	Path string
	Err  error
}

// NewMissingBrandFileError constructs a MissingBrandFileError.
func NewMissingBrandFileError(path string, err error) error {
	return &MissingBrandFileError{Path: path, Err: err}
}

func (e *MissingBrandFileError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("brand file not found: %s", e.Path)
	}
	return "brand file not found"
}

// Unwrap exposes the underlying error.
func (e *MissingBrandFileError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InvalidColorError reports a color literal that cannot be parsed into three
// 0-255 channels.
type InvalidColorError struct {
	Value  string
	Reason string
}

// NewInvalidColorError constructs an InvalidColorError.
func NewInvalidColorError(value, reason string) error {
	return &InvalidColorError{Value: value, Reason: reason}
}

func (e *InvalidColorError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid color %q: %s", e.Value, e.Reason)
}

// InvalidPaletteKindError reports an out-of-domain sequential palette kind.
// Caller misuse rather than environmental variance, so it fails loudly.
type InvalidPaletteKindError struct {
	Kind string
}

// NewInvalidPaletteKindError constructs an InvalidPaletteKindError.
func NewInvalidPaletteKindError(kind string) error {
	return &InvalidPaletteKindError{Kind: kind}
}

func (e *InvalidPaletteKindError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid palette kind %q: must be one of warm, cool, green", e.Kind)
}

// InvalidPaletteSizeError reports a non-positive palette size.
type InvalidPaletteSizeError struct {
	Size int
}

// NewInvalidPaletteSizeError constructs an InvalidPaletteSizeError.
func NewInvalidPaletteSizeError(size int) error {
	return &InvalidPaletteSizeError{Size: size}
}

func (e *InvalidPaletteSizeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid palette size %d: must be a positive integer", e.Size)
}
