package errors

import (
	"fmt"
	"strings"
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

// ValidationError captures theme and preset validation issues.
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

// ColorSpecError reports a color descriptor that matches no accepted form.
// Parsing never falls back to a default color; callers receive this error
// and decide.
type ColorSpecError struct {
	Spec string
	Err  error
}

// NewColorSpecError constructs a ColorSpecError for the rejected descriptor.
func NewColorSpecError(spec string, err error) error {
	return &ColorSpecError{Spec: spec, Err: err}
}

func (e *ColorSpecError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("invalid color %q: %v (expected a color name, #rgb, #rrggbb, or rgb(r,g,b))", e.Spec, e.Err)
	}
	return fmt.Sprintf("invalid color %q (expected a color name, #rgb, #rrggbb, or rgb(r,g,b))", e.Spec)
}

// Unwrap exposes the underlying error.
func (e *ColorSpecError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BorderStyleError reports a border style name that is not in the glyph
// table. The message enumerates the valid names so the caller does not have
// to look them up.
type BorderStyleError struct {
	Name  string
	Valid []string
}

// NewBorderStyleError constructs a BorderStyleError listing the accepted styles.
func NewBorderStyleError(name string, valid []string) error {
	return &BorderStyleError{Name: name, Valid: valid}
}

func (e *BorderStyleError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown border style %q (valid styles: %s)", e.Name, strings.Join(e.Valid, ", "))
}

// DimensionsError reports frame dimensions that cannot produce a layout,
// such as a non-positive width or a minimum above the maximum.
type DimensionsError struct {
	Message string
}

// NewDimensionsError constructs a DimensionsError.
func NewDimensionsError(format string, args ...any) error {
	return &DimensionsError{Message: fmt.Sprintf(format, args...)}
}

func (e *DimensionsError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid dimensions: %s", e.Message)
}

// LayoutError signals an internal layout inconsistency, such as rows of
// unequal visual width reaching the gradient engine. It indicates a
// programming error rather than bad input.
type LayoutError struct {
	Message string
}

// NewLayoutError constructs a LayoutError.
func NewLayoutError(format string, args ...any) error {
	return &LayoutError{Message: fmt.Sprintf(format, args...)}
}

func (e *LayoutError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("layout inconsistency: %s", e.Message)
}
