package registry

import (
	"errors"

	"github.com/mzkit/mzident/mzid"
)

var (
	// ErrNoDocument is returned by the single-document accessors when the
	// source file contained no result set.
	ErrNoDocument = errors.New("mzident: file contains no result set")
	// ErrMultipleDocuments is returned by the single-document accessors
	// when the source file contained more than one result set.
	ErrMultipleDocuments = errors.New("mzident: file contains multiple result sets")
)

// Result adapts one parsed collection of documents to the output shapes
// callers ask for: an owned value, a shared pointer, or the collection
// itself. Every reader parses through the collection path once; the
// single-document accessors require the collection to hold exactly one
// element.
type Result struct {
	docs []*mzid.Document
}

// NewResult wraps an already-parsed document list.
func NewResult(docs []*mzid.Document) *Result {
	return &Result{docs: docs}
}

// Len returns the number of result sets.
func (r *Result) Len() int {
	return len(r.docs)
}

// Docs returns every parsed document, one per logical result set, in file
// order.
func (r *Result) Docs() []*mzid.Document {
	return r.docs
}

// Doc returns the parsed document as a shared pointer. It fails with
// ErrNoDocument or ErrMultipleDocuments unless the file held exactly one
// result set.
func (r *Result) Doc() (*mzid.Document, error) {
	switch len(r.docs) {
	case 0:
		return nil, ErrNoDocument
	case 1:
		return r.docs[0], nil
	default:
		return nil, ErrMultipleDocuments
	}
}

// Document returns an owned copy of the parsed document, under the same
// exactly-one requirement as Doc.
func (r *Result) Document() (mzid.Document, error) {
	d, err := r.Doc()
	if err != nil {
		return mzid.Document{}, err
	}
	return *d, nil
}
