package mzident

import (
	"github.com/mzkit/mzident/internal/registry"
	"github.com/mzkit/mzident/internal/types"
)

// UnrecognizedFormatError is an alias to types.UnrecognizedFormatError.
// Raised by the registry when no reader's identify matched; never by an
// individual reader.
type UnrecognizedFormatError = types.UnrecognizedFormatError

// FeatureDisabledError is an alias to types.FeatureDisabledError.
// Raised by null readers standing in for formats whose support is not
// compiled into the build.
type FeatureDisabledError = types.FeatureDisabledError

// MalformedInputError is an alias to types.MalformedInputError.
// Raised by concrete readers when the file content violates the format's
// structural expectations.
type MalformedInputError = types.MalformedInputError

// Sentinels for the single-document result accessors.
var (
	ErrNoDocument        = registry.ErrNoDocument
	ErrMultipleDocuments = registry.ErrMultipleDocuments
)
