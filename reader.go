package mzident

import (
	"github.com/mzkit/mzident/internal/registry"
	"github.com/mzkit/mzident/internal/sniff"
)

// Reader is the capability contract implemented by every format reader.
// Alias to registry.Reader so external code can wire custom registries
// without importing internal packages.
type Reader = registry.Reader

// Registry is an ordered collection of format readers with first-match
// identify dispatch. Alias to registry.Registry.
type Registry = registry.Registry

// Result adapts a parsed document collection to the supported output
// shapes. Alias to registry.Result.
type Result = registry.Result

// NewRegistry builds a registry over the given readers, in priority
// order.
func NewRegistry(readers ...Reader) *Registry {
	return registry.New(readers...)
}

// NewNullReader builds a reader for a format whose support is not
// compiled into this build: it never matches during identify dispatch
// and fails loudly when read directly.
func NewNullReader(format Format, name, feature string) Reader {
	return registry.NewNullReader(format, name, feature)
}

// HeadSize is the number of leading bytes read once per dispatch and
// shared across all readers being probed.
const HeadSize = sniff.HeadSize

// ReadHead reads up to HeadSize leading bytes of the file at path.
// Callers dispatching the same file several times can read the prefix
// once and pass it via WithHead to avoid redundant I/O.
func ReadHead(path string) ([]byte, error) {
	return sniff.Head(path)
}
