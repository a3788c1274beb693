package mzident

import (
	"github.com/mzkit/mzident/internal/types"
)

// Format is an alias to types.Format.
// Re-exporting from internal/types to keep the public API at the root.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown   = types.FormatUnknown
	FormatMzIdentML = types.FormatMzIdentML
	FormatPepXML    = types.FormatPepXML
	FormatMascot    = types.FormatMascot
)
