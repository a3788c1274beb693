package types

import "fmt"

// UnrecognizedFormatError is returned by the registry when no registered
// reader recognizes a file. Individual readers never return it; a reader
// expresses non-applicability through its identify result instead.
type UnrecognizedFormatError struct {
	Path   string
	Reason string
}

func (e *UnrecognizedFormatError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: unrecognized identification format: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("%s: unrecognized identification format", e.Path)
}

// FeatureDisabledError is returned when a reader whose support is not
// compiled into the build is asked to read. The message names the missing
// capability and the operation that was attempted.
type FeatureDisabledError struct {
	// Reader is the diagnostic reader name, e.g. "MascotReader".
	Reader string
	// Op is the operation that was attempted, e.g. "read".
	Op string
	// Feature is the missing capability, e.g. "Mascot".
	Feature string
}

func (e *FeatureDisabledError) Error() string {
	return fmt.Sprintf("[%s::%s] no %s support enabled", e.Reader, e.Op, e.Feature)
}

// MalformedInputError is returned when a reader began parsing but the file
// content violated the format's structural expectations.
type MalformedInputError struct {
	Path   string
	Format string
	Reason string
	// Line is the 1-based source line when cheaply available, 0 otherwise.
	Line int
}

func (e *MalformedInputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: malformed %s at line %d: %s", e.Path, e.Format, e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: malformed %s: %s", e.Path, e.Format, e.Reason)
}
