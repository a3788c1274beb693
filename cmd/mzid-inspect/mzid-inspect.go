package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/mzkit/mzident"
	"github.com/mzkit/mzident/mzid"
)

// Quick look inside identification files: detected format, result set and
// identification counts, and a summary of the numeric search scores.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: mzid-inspect <file> [file...]")
		os.Exit(1)
	}

	exit := 0
	for _, path := range os.Args[1:] {
		if err := inspect(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exit = 1
		}
	}
	os.Exit(exit)
}

func inspect(path string) error {
	head, err := mzident.ReadHead(path)
	if err != nil {
		return err
	}

	format := mzident.Identify(path, mzident.WithHead(head))
	fmt.Printf("%s\n  format: %s\n", path, format)
	if format == mzident.FormatUnknown {
		return nil
	}

	docs, err := mzident.ReadAll(path, mzident.WithHead(head))
	if err != nil {
		return err
	}

	fmt.Printf("  result sets: %d\n", len(docs))
	for i, doc := range docs {
		fmt.Printf("  [%d] id=%q peptides=%d spectra=%d idents=%d\n",
			i, doc.ID, len(doc.Peptides), len(doc.SpectrumResults), doc.NumIdents())
		printScores(doc)
	}
	return nil
}

// printScores summarizes every numeric score term found on the
// identifications, one line per term.
func printScores(doc *mzid.Document) {
	scores := make(map[string][]float64)
	for i := 0; i < doc.NumIdents(); i++ {
		ident, err := doc.Ident(i)
		if err != nil {
			continue
		}
		for _, cv := range ident.Params {
			v, err := strconv.ParseFloat(cv.Value, 64)
			if err != nil {
				continue
			}
			name := cv.Name
			if name == "" {
				name = cv.Accession
			}
			scores[name] = append(scores[name], v)
		}
	}

	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		vals := scores[name]
		sort.Float64s(vals)
		fmt.Printf("      %s: n=%d mean=%.4g median=%.4g\n",
			name, len(vals),
			stat.Mean(vals, nil),
			stat.Quantile(0.5, stat.Empirical, vals, nil))
	}
}
