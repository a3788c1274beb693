// Package mzident provides pluggable reading of mass-spectrometry
// identification results.
//
// Given an arbitrary file on disk, mzident determines which supported
// format it belongs to and parses it into a normalized mzid.Document with
// peptides, spectrum results and controlled-vocabulary parameters.
//
// # Quick Start
//
// Reading a single-result-set file:
//
//	doc, err := mzident.Read("results.mzid")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for i := 0; i < doc.NumIdents(); i++ {
//		ident, _ := doc.Ident(i)
//		fmt.Printf("%s charge %d\n", ident.PepSeq, ident.Charge)
//	}
//
// # Supported Formats
//
//   - mzIdentML: the PSI standard XML format (.mzid)
//   - pepXML: pipeline analysis files, one document per search run
//   - Mascot .dat: listed for diagnostics; reading requires the
//     proprietary Mascot Parser library and is disabled in this build
//
// # Dispatch
//
// Format detection is a two-phase protocol. Identify is cheap: every
// registered reader inspects only the filename and a bounded head prefix
// of the file, read once and shared across readers. Read then delegates
// the full parse to the first reader that matched, in registration
// order — order is the only tie-break, keeping dispatch deterministic.
//
//	format := mzident.Identify(path)        // FormatUnknown if no match
//	docs, err := mzident.ReadAll(path)      // one document per result set
//
// A format whose support is not compiled in is represented by a null
// reader: it never matches during dispatch, so such files report as
// unrecognized rather than routing to a dead end, and forcing its Read
// fails with a FeatureDisabledError naming the missing capability.
//
// # Output Shapes
//
// Every reader parses through one collection-producing path. The Result
// accumulator adapts it to the shape a caller wants: Docs() for the
// collection, Doc() for a shared pointer, Document() for an owned value;
// the single-document accessors require exactly one result set.
//
// # Error Handling
//
// Errors are typed so callers can branch on failure kind:
//
//   - UnrecognizedFormatError: no reader matched (registry only)
//   - FeatureDisabledError: matched or forced a disabled format
//   - MalformedInputError: content violated the format's structure
//   - I/O failures propagate wrapped with the filename
//
// Identify never fails; non-applicability is a negative return, not an
// error.
//
// # Concurrency
//
// Readers are stateless across calls and the registry is read-only after
// construction, so one registry may serve concurrent dispatches on
// different files. ReadMany parses batches in parallel:
//
//	results, err := mzident.ReadMany(ctx, paths...)
package mzident
