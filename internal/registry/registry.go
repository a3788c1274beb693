package registry

import (
	"github.com/mzkit/mzident/internal/sniff"
	"github.com/mzkit/mzident/internal/types"
)

// Registry is an ordered collection of format readers.
//
// Registration order is significant and deterministic: when more than one
// reader could claim a file, the first registered match wins. There is no
// confidence scoring. The reader list is read-only after construction, so
// a Registry may be queried concurrently for different files.
type Registry struct {
	readers []Reader
}

// New builds a registry over the given readers, in priority order.
func New(readers ...Reader) *Registry {
	return &Registry{readers: readers}
}

// Register appends a reader at the lowest priority position.
func (g *Registry) Register(r Reader) {
	g.readers = append(g.readers, r)
}

// Readers returns the registered readers in priority order, for
// diagnostic listing. The caller must not modify the slice.
func (g *Registry) Readers() []Reader {
	return g.readers
}

// Identify returns the first reader recognizing the file, along with the
// format name it reported. head is an optional pre-read prefix of the
// file; when nil, Identify reads one itself.
//
// Identify never fails: an unreadable file or an unrecognized format both
// answer (nil, ""), leaving error reporting to Read.
func (g *Registry) Identify(path string, head []byte) (Reader, string) {
	if head == nil {
		h, err := sniff.Head(path)
		if err != nil {
			return nil, ""
		}
		head = h
	}
	for _, r := range g.readers {
		if name := r.Identify(path, head); name != "" {
			return r, name
		}
	}
	return nil, ""
}

// Read identifies the file and delegates parsing to the matched reader.
//
// A head-prefix read failure is returned wrapped with the filename. When
// no reader matches, Read fails with *types.UnrecognizedFormatError and
// no reader's Read is invoked. A matched reader's error is propagated
// verbatim.
func (g *Registry) Read(path string, head []byte) (*Result, error) {
	if head == nil {
		h, err := sniff.Head(path)
		if err != nil {
			return nil, err
		}
		head = h
	}
	r, _ := g.Identify(path, head)
	if r == nil {
		return nil, &types.UnrecognizedFormatError{Path: path}
	}
	docs, err := r.Read(path, head)
	if err != nil {
		return nil, err
	}
	return &Result{docs: docs}, nil
}
