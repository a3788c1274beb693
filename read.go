package mzident

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mzkit/mzident/internal/mascot"
	"github.com/mzkit/mzident/internal/mzidxml"
	"github.com/mzkit/mzident/internal/pepxml"
	"github.com/mzkit/mzident/mzid"
)

// DefaultRegistry returns a fresh registry over the readers shipped with
// this module, in priority order: native mzIdentML, pepXML, Mascot.
//
// The Mascot slot holds whatever reader the build provides; without the
// Mascot Parser library that is a null reader which never matches.
func DefaultRegistry() *Registry {
	return NewRegistry(
		mzidxml.New(),
		pepxml.New(),
		mascot.New(),
	)
}

// Identify determines which registered format, if any, the file belongs
// to. It probes each reader in priority order against the filename and a
// bounded head prefix; the first match wins.
//
// Identify never fails: an unreadable file or an unrecognized format both
// answer FormatUnknown, leaving error reporting to Read.
func Identify(path string, opts ...Option) Format {
	o := applyOptions(opts)
	r, _ := o.registry.Identify(path, o.head)
	if r == nil {
		return FormatUnknown
	}
	return r.Format()
}

// Read parses an identification file holding exactly one result set.
//
//	doc, err := mzident.Read("results.mzid")
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d identifications\n", doc.NumIdents())
//
// Files with several result sets (multi-run pepXML) fail with
// ErrMultipleDocuments; use ReadAll for those.
func Read(path string, opts ...Option) (*mzid.Document, error) {
	res, err := dispatch(path, opts)
	if err != nil {
		return nil, err
	}
	return res.Doc()
}

// ReadAll parses an identification file into one document per logical
// result set it contains, in file order.
func ReadAll(path string, opts ...Option) ([]*mzid.Document, error) {
	res, err := dispatch(path, opts)
	if err != nil {
		return nil, err
	}
	return res.Docs(), nil
}

// dispatch runs identify + read against the configured registry.
func dispatch(path string, opts []Option) (*Result, error) {
	o := applyOptions(opts)
	return o.registry.Read(path, o.head)
}

func applyOptions(opts []Option) *dispatchOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ReadMany parses multiple identification files concurrently, up to
// runtime.NumCPU() at a time. Results arrive in input order, one entry
// per file, each holding that file's documents.
//
// The first failure cancels the remaining work and is returned with the
// failing path prepended.
func ReadMany(ctx context.Context, paths ...string) ([][]*mzid.Document, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([][]*mzid.Document, len(paths))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			docs, err := ReadAll(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = docs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
