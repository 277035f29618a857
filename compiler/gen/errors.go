package gen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("tuplegen: missing configuration")
	// ErrOutOfRange indicates an arity or position outside the generated set.
	ErrOutOfRange = errors.New("tuplegen: out of range")
	// ErrAmbiguous indicates an element type shared by several positions.
	ErrAmbiguous = errors.New("tuplegen: ambiguous element type")
	// ErrInvalidRecord indicates a record declaration error.
	ErrInvalidRecord = errors.New("tuplegen: invalid record")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("tuplegen: code generation failed")
	// ErrDrift indicates generated files on disk differ from fresh output.
	ErrDrift = errors.New("tuplegen: generated files are out of date")
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("tuplegen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("tuplegen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// RangeError reports a request for an arity or position that has no artifact.
// Position is -1 when only the arity is at fault.
type RangeError struct {
	Arity    int
	Position int
	Max      int
	Message  string
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	var b strings.Builder
	b.WriteString("tuplegen: arity ")
	b.WriteString(strconv.Itoa(e.Arity))
	if e.Position >= 0 {
		b.WriteString(" position ")
		b.WriteString(strconv.Itoa(e.Position))
	}
	if e.Max > 0 {
		fmt.Fprintf(&b, " (max arity %d)", e.Max)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for RangeError.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// NewRangeError creates a new RangeError.
func NewRangeError(arity, position, max int, message string) *RangeError {
	return &RangeError{
		Arity:    arity,
		Position: position,
		Max:      max,
		Message:  message,
	}
}

// AmbiguityError reports an element type that matches more than one position
// of a record while being looked up by type alone.
type AmbiguityError struct {
	Record    string
	Type      string
	Positions []int
}

// Error implements the error interface.
func (e *AmbiguityError) Error() string {
	pos := make([]string, len(e.Positions))
	for i, p := range e.Positions {
		pos[i] = strconv.Itoa(p)
	}
	return fmt.Sprintf("tuplegen: record %s: element type %s is shared by positions %s; name the fields to disambiguate",
		e.Record, e.Type, strings.Join(pos, ", "))
}

// Is reports whether the target matches the sentinel error for AmbiguityError.
func (e *AmbiguityError) Is(target error) bool {
	return target == ErrAmbiguous
}

// NewAmbiguityError creates a new AmbiguityError.
func NewAmbiguityError(record, typ string, positions []int) *AmbiguityError {
	return &AmbiguityError{
		Record:    record,
		Type:      typ,
		Positions: positions,
	}
}

// RecordError represents a record declaration error.
type RecordError struct {
	Record  string
	Field   int // Field position, -1 if not applicable.
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	var b strings.Builder
	b.WriteString("tuplegen: record error")
	if e.Record != "" {
		b.WriteString(" on ")
		b.WriteString(e.Record)
	}
	if e.Field >= 0 {
		b.WriteString(" field ")
		b.WriteString(strconv.Itoa(e.Field))
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for RecordError.
func (e *RecordError) Is(target error) bool {
	return target == ErrInvalidRecord
}

// NewRecordError creates a new RecordError.
func NewRecordError(record string, field int, message string, cause error) *RecordError {
	return &RecordError{
		Record:  record,
		Field:   field,
		Message: message,
		Cause:   cause,
	}
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "index", "tuple", "protocol", "records", "manifest"
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("tuplegen: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// DriftError lists generated files whose content on disk differs from what
// the current configuration produces.
type DriftError struct {
	Changed []string // content differs
	Missing []string // expected but absent
	Stale   []string // present in the manifest but no longer produced
}

// Error implements the error interface.
func (e *DriftError) Error() string {
	var parts []string
	if len(e.Changed) > 0 {
		parts = append(parts, "changed: "+strings.Join(e.Changed, ", "))
	}
	if len(e.Missing) > 0 {
		parts = append(parts, "missing: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Stale) > 0 {
		parts = append(parts, "stale: "+strings.Join(e.Stale, ", "))
	}
	return "tuplegen: generated files are out of date (" + strings.Join(parts, "; ") + ")"
}

// Is reports whether the target matches the sentinel error for DriftError.
func (e *DriftError) Is(target error) bool {
	return target == ErrDrift
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsRangeError reports whether the error is a RangeError.
func IsRangeError(err error) bool {
	var rangeErr *RangeError
	return errors.As(err, &rangeErr)
}

// IsAmbiguityError reports whether the error is an AmbiguityError.
func IsAmbiguityError(err error) bool {
	var ambErr *AmbiguityError
	return errors.As(err, &ambErr)
}

// IsRecordError reports whether the error is a RecordError.
func IsRecordError(err error) bool {
	var recErr *RecordError
	return errors.As(err, &recErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// IsDriftError reports whether the error is a DriftError.
func IsDriftError(err error) bool {
	var driftErr *DriftError
	return errors.As(err, &driftErr)
}
