// Package mzidxml reads native mzIdentML XML files.
package mzidxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html/charset"

	"github.com/mzkit/mzident/internal/sniff"
	"github.com/mzkit/mzident/internal/types"
	"github.com/mzkit/mzident/mzid"
)

// Reader reads mzIdentML files. The zero value is usable; New exists for
// symmetry with the other format packages.
type Reader struct{}

// New returns the native mzIdentML reader.
func New() *Reader {
	return &Reader{}
}

// Format returns types.FormatMzIdentML.
func (r *Reader) Format() types.Format {
	return types.FormatMzIdentML
}

// Identify reports the format name when the head prefix is an XML
// document whose root element is MzIdentML. When the head cannot be
// tokenized that far (byte-order mark, oversized prolog), a native
// extension combined with the root-element signature in the head is
// accepted instead. The extension alone is never trusted: a .mzid file
// with a different root answers non-match.
func (r *Reader) Identify(path string, head []byte) string {
	if sniff.HasXMLRoot(head, "MzIdentML") {
		return types.FormatMzIdentML.String()
	}
	if sniff.HasExtension(path, ".mzid", ".mzidentml") && sniff.Contains(head, "<MzIdentML") {
		return types.FormatMzIdentML.String()
	}
	return ""
}

// Read parses the file into exactly one document.
func (r *Reader) Read(path string, head []byte) ([]*mzid.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f, path)
	if err != nil {
		return nil, err
	}
	return []*mzid.Document{doc}, nil
}

// XML mapping, limited to the parts of mzIdentML the document model
// carries. Element paths follow the mzIdentML 1.1/1.2 schema.

type mzIdentMLContent struct {
	XMLName xml.Name                       `xml:"MzIdentML"`
	ID      string                         `xml:"id,attr"`
	Name    string                         `xml:"name,attr"`
	Peptide []peptide                      `xml:"SequenceCollection>Peptide"`
	Result  []spectrumIdentificationResult `xml:"DataCollection>AnalysisData>SpectrumIdentificationList>SpectrumIdentificationResult"`
}

type peptide struct {
	ID              string         `xml:"id,attr"`
	PeptideSequence string         `xml:"PeptideSequence"`
	Modification    []modification `xml:"Modification"`
}

type modification struct {
	Location int `xml:"location,attr"`
	// monoisotopicMassDelta is optional per the schema, but no other
	// attribute or cvParam carries the mass shift.
	MonoisotopicMassDelta float64 `xml:"monoisotopicMassDelta,attr"`
}

type spectrumIdentificationResult struct {
	SpectrumID string                       `xml:"spectrumID,attr"`
	Item       []spectrumIdentificationItem `xml:"SpectrumIdentificationItem"`
	CvPar      []cvParam                    `xml:"cvParam"`
}

type spectrumIdentificationItem struct {
	ChargeState int       `xml:"chargeState,attr"`
	Rank        int       `xml:"rank,attr"`
	PeptideRef  string    `xml:"peptide_ref,attr"`
	CvPar       []cvParam `xml:"cvParam"`
}

type cvParam struct {
	Accession     string `xml:"accession,attr"`
	Name          string `xml:"name,attr"`
	Value         string `xml:"value,attr"`
	UnitAccession string `xml:"unitAccession,attr"`
}

// Decode reads mzIdentML content from r and converts it into one
// normalized document. path is used for error context only.
func Decode(r io.Reader, path string) (*mzid.Document, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel

	var content mzIdentMLContent
	if err := d.Decode(&content); err != nil {
		return nil, malformed(path, err)
	}

	doc := &mzid.Document{
		ID:         content.ID,
		Name:       content.Name,
		SourceFile: path,
	}
	for _, p := range content.Peptide {
		np := mzid.Peptide{ID: p.ID, Sequence: p.PeptideSequence}
		for _, m := range p.Modification {
			np.Modifications = append(np.Modifications, mzid.Modification{
				Location:              m.Location,
				MonoisotopicMassDelta: m.MonoisotopicMassDelta,
			})
		}
		doc.Peptides = append(doc.Peptides, np)
	}
	for _, sr := range content.Result {
		nr := mzid.SpectrumResult{
			SpectrumID: sr.SpectrumID,
			Params:     convertParams(sr.CvPar),
		}
		for _, it := range sr.Item {
			nr.Items = append(nr.Items, mzid.SpectrumItem{
				PeptideID:   it.PeptideRef,
				ChargeState: it.ChargeState,
				Rank:        it.Rank,
				Params:      convertParams(it.CvPar),
			})
		}
		doc.SpectrumResults = append(doc.SpectrumResults, nr)
	}
	return doc, nil
}

func convertParams(params []cvParam) []mzid.CVParam {
	if len(params) == 0 {
		return nil
	}
	out := make([]mzid.CVParam, 0, len(params))
	for _, cv := range params {
		out = append(out, mzid.CVParam{
			Accession:     cv.Accession,
			Name:          cv.Name,
			Value:         cv.Value,
			UnitAccession: cv.UnitAccession,
		})
	}
	return out
}

func malformed(path string, err error) error {
	var syn *xml.SyntaxError
	if errors.As(err, &syn) {
		return &types.MalformedInputError{
			Path:   path,
			Format: types.FormatMzIdentML.String(),
			Reason: syn.Msg,
			Line:   syn.Line,
		}
	}
	return &types.MalformedInputError{
		Path:   path,
		Format: types.FormatMzIdentML.String(),
		Reason: err.Error(),
	}
}
