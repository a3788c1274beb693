package registry

import (
	"github.com/mzkit/mzident/internal/types"
	"github.com/mzkit/mzident/mzid"
)

// NullReader stands in for a format whose real reader is not compiled
// into the build, typically because it needs a proprietary vendor SDK.
//
// It never claims a file, so identify-based dispatch passes over it and
// the registry correctly reports "unrecognized format" instead of routing
// to a dead end. If a caller selects it by name and forces a read anyway,
// it fails loudly with a stable message naming the missing capability.
type NullReader struct {
	format  types.Format
	name    string
	feature string
}

// NewNullReader builds a null reader. name is the diagnostic reader name
// (e.g. "MascotReader"), feature the missing capability (e.g. "Mascot").
func NewNullReader(format types.Format, name, feature string) *NullReader {
	return &NullReader{format: format, name: name, feature: feature}
}

// Identify always reports non-match, for every input.
func (n *NullReader) Identify(path string, head []byte) string {
	return ""
}

// Read unconditionally fails with *types.FeatureDisabledError.
func (n *NullReader) Read(path string, head []byte) ([]*mzid.Document, error) {
	return nil, &types.FeatureDisabledError{Reader: n.name, Op: "read", Feature: n.feature}
}

// Format still returns the real format, so the stub shows up in
// diagnostic listings as a recognized-but-unavailable format.
func (n *NullReader) Format() types.Format {
	return n.format
}
