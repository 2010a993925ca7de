package config

import (
	"fmt"
	"strings"
)

// ConfigFormatError is returned when the runner config cannot be read or is
// not valid INI.
type ConfigFormatError struct {
	// Path is the file path or source name that failed to load
	Path string

	// Err is the underlying read or parse error
	Err error
}

// Error returns the error message.
func (e *ConfigFormatError) Error() string {
	return fmt.Sprintf("invalid runner config %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigFormatError) Unwrap() error {
	return e.Err
}

// MissingOptionError is returned when a required option key is absent from
// a section and from the default section.
type MissingOptionError struct {
	Section string
	Key     OptionKey
}

// Error returns the error message.
func (e *MissingOptionError) Error() string {
	return fmt.Sprintf("section [%s]: missing required option %q", e.Section, e.Key)
}

// InvalidOptionTypeError is returned when an option value fails its coercion.
type InvalidOptionTypeError struct {
	Section string
	Key     OptionKey

	// Value is the raw value as written in the file
	Value string

	Err error
}

// Error returns the error message.
func (e *InvalidOptionTypeError) Error() string {
	return fmt.Sprintf("section [%s]: invalid value %q for option %q: %v", e.Section, e.Value, e.Key, e.Err)
}

// Unwrap returns the coercion error.
func (e *InvalidOptionTypeError) Unwrap() error {
	return e.Err
}

// UnsupportedDatabaseWarning reports a declared database that is not in the
// registry. The entry is skipped; loading continues.
type UnsupportedDatabaseWarning struct {
	Section   string
	Name      string
	Supported []string
}

// Error returns the warning message.
func (w *UnsupportedDatabaseWarning) Error() string {
	return fmt.Sprintf("invalid database found in section [%s]: %s. Only (%s) are supported. Skipping...",
		w.Section, w.Name, strings.Join(w.Supported, ","))
}

// UnknownOptionKeyWarning reports a schema key that has no coercion
// registered. The key is left out of the resolved options.
type UnknownOptionKeyWarning struct {
	Section string
	Key     OptionKey
}

// Error returns the warning message.
func (w *UnknownOptionKeyWarning) Error() string {
	return fmt.Sprintf("section [%s]: skipping key %s with no registered coercion", w.Section, w.Key)
}
