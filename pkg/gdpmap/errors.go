package gdpmap

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration indicates invalid settings or a missing year column.
	ErrConfiguration = errors.New("configuration error")

	// ErrParse indicates a non-empty GDP value that is not a number.
	ErrParse = errors.New("invalid GDP value")

	// ErrDomain indicates a GDP value outside the domain of log10.
	ErrDomain = errors.New("GDP value out of log10 domain")

	// ErrDuplicateKey indicates two rows share a country name.
	ErrDuplicateKey = errors.New("duplicate country name")
)

// ConfigurationError represents unusable settings, including a year that is
// not a column of the GDP table.
type ConfigurationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s %q %s", e.Field, e.Value, e.Message)
}

// Is implements errors.Is support.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NewConfigurationError creates a new ConfigurationError.
func NewConfigurationError(field, value, message string) *ConfigurationError {
	return &ConfigurationError{Field: field, Value: value, Message: message}
}

// ValueError reports a GDP value that cannot be log-scaled.
// Kind is ErrParse or ErrDomain.
type ValueError struct {
	Year    string
	Code    string
	Country string
	Value   string
	Kind    error
	Err     error
}

func (e *ValueError) Error() string {
	msg := fmt.Sprintf("%v for %s (%s) in %s: %q", e.Kind, e.Country, e.Code, e.Year, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is implements errors.Is support.
func (e *ValueError) Is(target error) bool {
	return target == e.Kind
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// DuplicateKeyError reports a country name held by more than one row.
type DuplicateKeyError struct {
	Column string
	Names  []string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate values in column %q: %q", e.Column, e.Names)
}

// Is implements errors.Is support.
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// RenderError represents a failure of the map renderer for a year.
type RenderError struct {
	Year string
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering %s to %s: %v", e.Year, e.Path, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
