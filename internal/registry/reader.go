// Package registry manages format-specific readers for identification
// files and dispatches files to the first reader that recognizes them.
package registry

import (
	"github.com/mzkit/mzident/internal/types"
	"github.com/mzkit/mzident/mzid"
)

// Reader is the capability contract implemented by every format reader.
//
// Implementations are stateless across calls: each Identify/Read call is
// independent and reentrant, so one instance may serve concurrent queries
// on different files.
type Reader interface {
	// Identify reports the format name if this reader recognizes the file,
	// or the empty string if not. It is a pure predicate over the filename
	// and the head prefix: it must be cheap, must not touch the file, and
	// must answer non-match rather than guess when the head is ambiguous
	// or too short.
	Identify(path string, head []byte) string

	// Read fully parses the file into one normalized document per logical
	// result set it contains. head is the same prefix handed to Identify
	// and may be nil. On error the returned slice is nil; partially
	// populated documents are never handed back.
	Read(path string, head []byte) ([]*mzid.Document, error)

	// Format returns the format this reader handles. Its String form is
	// the stable identifier used for diagnostics, and is reported even by
	// readers whose support is not compiled in.
	Format() types.Format
}
