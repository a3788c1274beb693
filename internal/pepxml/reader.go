// Package pepxml reads pepXML pipeline analysis files.
//
// A pepXML file can hold several msms_run_summary elements, one per
// search run; each run becomes its own normalized document. Spectrum-level
// retention times and search scores are carried over as CV params so the
// flattened identification view behaves the same as for native mzIdentML.
package pepxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/net/html/charset"

	"github.com/mzkit/mzident/internal/sniff"
	"github.com/mzkit/mzident/internal/types"
	"github.com/mzkit/mzident/mzid"
)

// Reader reads pepXML files.
type Reader struct{}

// New returns the pepXML reader.
func New() *Reader {
	return &Reader{}
}

// Format returns types.FormatPepXML.
func (r *Reader) Format() types.Format {
	return types.FormatPepXML
}

// Identify reports the format name when the head prefix is an XML
// document rooted at msms_pipeline_analysis, falling back to a pepXML
// extension plus the root-element signature when the head cannot be
// tokenized that far.
func (r *Reader) Identify(path string, head []byte) string {
	if sniff.HasXMLRoot(head, "msms_pipeline_analysis") {
		return types.FormatPepXML.String()
	}
	if sniff.HasExtension(path, ".pepxml", ".pep.xml", ".xml") &&
		sniff.Contains(head, "<msms_pipeline_analysis") {
		return types.FormatPepXML.String()
	}
	return ""
}

// Read parses the file into one document per msms_run_summary.
func (r *Reader) Read(path string, head []byte) ([]*mzid.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer f.Close()

	return Decode(f, path)
}

type pipelineAnalysis struct {
	XMLName xml.Name     `xml:"msms_pipeline_analysis"`
	Name    string       `xml:"name,attr"`
	Run     []runSummary `xml:"msms_run_summary"`
}

type runSummary struct {
	BaseName string          `xml:"base_name,attr"`
	Query    []spectrumQuery `xml:"spectrum_query"`
}

type spectrumQuery struct {
	Spectrum         string      `xml:"spectrum,attr"`
	RetentionTimeSec string      `xml:"retention_time_sec,attr"`
	AssumedCharge    int         `xml:"assumed_charge,attr"`
	Hit              []searchHit `xml:"search_result>search_hit"`
}

type searchHit struct {
	Rank    int           `xml:"hit_rank,attr"`
	Peptide string        `xml:"peptide,attr"`
	Score   []searchScore `xml:"search_score"`
}

type searchScore struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// Decode reads pepXML content from r and converts every run summary into
// a normalized document. path is used for error context only.
func Decode(r io.Reader, path string) ([]*mzid.Document, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel

	var content pipelineAnalysis
	if err := d.Decode(&content); err != nil {
		return nil, malformed(path, err)
	}

	docs := make([]*mzid.Document, 0, len(content.Run))
	for _, run := range content.Run {
		docs = append(docs, convertRun(&run, content.Name, path))
	}
	return docs, nil
}

func convertRun(run *runSummary, name, path string) *mzid.Document {
	doc := &mzid.Document{
		ID:         run.BaseName,
		Name:       name,
		SourceFile: path,
	}
	// pepXML refers to peptides by bare sequence; dedupe them into the
	// sequence collection and synthesize stable IDs.
	pepID := make(map[string]string)
	for _, q := range run.Query {
		res := mzid.SpectrumResult{SpectrumID: q.Spectrum}
		if _, err := strconv.ParseFloat(q.RetentionTimeSec, 64); err == nil {
			// scan start time, already in seconds
			res.Params = []mzid.CVParam{{
				Accession: "MS:1000016",
				Name:      "scan start time",
				Value:     q.RetentionTimeSec,
			}}
		}
		for _, hit := range q.Hit {
			id, ok := pepID[hit.Peptide]
			if !ok {
				id = fmt.Sprintf("pep_%d", len(doc.Peptides)+1)
				pepID[hit.Peptide] = id
				doc.Peptides = append(doc.Peptides, mzid.Peptide{
					ID:       id,
					Sequence: hit.Peptide,
				})
			}
			item := mzid.SpectrumItem{
				PeptideID:   id,
				ChargeState: q.AssumedCharge,
				Rank:        hit.Rank,
			}
			for _, s := range hit.Score {
				item.Params = append(item.Params, mzid.CVParam{
					Name:  s.Name,
					Value: s.Value,
				})
			}
			res.Items = append(res.Items, item)
		}
		doc.SpectrumResults = append(doc.SpectrumResults, res)
	}
	return doc
}

func malformed(path string, err error) error {
	var syn *xml.SyntaxError
	if errors.As(err, &syn) {
		return &types.MalformedInputError{
			Path:   path,
			Format: types.FormatPepXML.String(),
			Reason: syn.Msg,
			Line:   syn.Line,
		}
	}
	return &types.MalformedInputError{
		Path:   path,
		Format: types.FormatPepXML.String(),
		Reason: err.Error(),
	}
}
