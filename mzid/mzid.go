// Package mzid holds the normalized in-memory model for mass-spectrometry
// peptide identification results.
//
// A Document is the population target for every format reader: whatever the
// source format, the reader maps its content onto peptides, spectrum results
// and controlled-vocabulary parameters. The flattened identification view
// (NumIdents/Ident) gives downstream code one uniform way to walk results
// regardless of how the source file nested them.
package mzid

import (
	"errors"
	"math"
	"strconv"
)

// ErrInvalidIdentIndex is returned by Ident for an out-of-range index.
var ErrInvalidIdentIndex = errors.New("mzid: invalid identification index")

// CVParam is a controlled-vocabulary term attached to a document element.
//
// Accession is the CV accession (e.g. "MS:1000016"), Name the human-readable
// term name. Value and UnitAccession are optional.
type CVParam struct {
	Accession     string
	Name          string
	Value         string
	UnitAccession string
}

// Modification is a mass modification on a peptide.
type Modification struct {
	// Location is the 1-based residue position, 0 for N-term.
	Location int
	// MonoisotopicMassDelta is the mass shift in Dalton.
	MonoisotopicMassDelta float64
}

// Peptide is one entry of the document's sequence collection.
type Peptide struct {
	ID            string
	Sequence      string
	Modifications []Modification
}

// SpectrumItem is a single candidate identification for a spectrum.
type SpectrumItem struct {
	// PeptideID references a Peptide.ID in the same document.
	PeptideID   string
	ChargeState int
	Rank        int
	// Params carries the search-engine scores for this candidate.
	Params []CVParam
}

// SpectrumResult groups all candidate identifications for one spectrum.
type SpectrumResult struct {
	SpectrumID string
	// Params holds spectrum-level terms, retention time among them.
	Params []CVParam
	Items  []SpectrumItem
}

// Document is one normalized identification result set.
//
// Multi-run source files produce one Document per run.
type Document struct {
	// ID and Name come from the source file where the format carries them.
	ID   string
	Name string
	// SourceFile is the path the document was read from.
	SourceFile string

	Peptides        []Peptide
	SpectrumResults []SpectrumResult

	// Flattened identification index, built lazily.
	pepIdx    map[string]int
	identList []identRef
}

// identRef addresses one (result, item) pair in the document.
type identRef struct {
	resultIdx int
	itemIdx   int
}

// Identification is one flattened peptide-spectrum match.
type Identification struct {
	PepID  string
	PepSeq string
	Charge int
	// ModMass is the summed monoisotopic mass delta of all modifications.
	ModMass float64
	SpecID  string
	// RetentionTime is in seconds, -1 when the source carries none.
	RetentionTime float64
	// Params are the item-level CV terms, scores included.
	Params []CVParam
}

func (d *Document) ensureIndex() {
	if d.pepIdx != nil {
		return
	}
	d.pepIdx = make(map[string]int, len(d.Peptides))
	for i, p := range d.Peptides {
		d.pepIdx[p.ID] = i
	}
	for i := range d.SpectrumResults {
		for j := range d.SpectrumResults[i].Items {
			d.identList = append(d.identList, identRef{resultIdx: i, itemIdx: j})
		}
	}
}

// NumIdents returns the total number of identifications in the document.
// A spectrum with multiple candidate items contributes one identification
// per item.
func (d *Document) NumIdents() int {
	d.ensureIndex()
	return len(d.identList)
}

// Ident returns the i-th flattened identification. The index runs from 0 to
// NumIdents()-1.
func (d *Document) Ident(i int) (Identification, error) {
	d.ensureIndex()

	var ident Identification
	if i < 0 || i >= len(d.identList) {
		return ident, ErrInvalidIdentIndex
	}
	res := &d.SpectrumResults[d.identList[i].resultIdx]
	item := &res.Items[d.identList[i].itemIdx]

	ident.SpecID = res.SpectrumID
	ident.Charge = item.ChargeState
	ident.Params = item.Params
	if pi, ok := d.pepIdx[item.PeptideID]; ok {
		p := &d.Peptides[pi]
		ident.PepID = p.ID
		ident.PepSeq = p.Sequence
		for _, mod := range p.Modifications {
			ident.ModMass += mod.MonoisotopicMassDelta
		}
	}
	ident.RetentionTime = retentionTime(res.Params)
	return ident, nil
}

// retentionTime extracts the retention time in seconds from spectrum-level
// CV params. Several terms can report it; in order of decreasing preference:
//
//	MS:1000016 - scan start time
//	MS:1000894 - retention time
//	MS:1000826 - elution time
//	MS:1001114 - retention time (deprecated)
//
// Returns -1 when no term is present or the value does not parse.
func retentionTime(params []CVParam) float64 {
	rt := float64(-1)
	prio := math.MaxInt32
	for _, cv := range params {
		p := 0
		switch cv.Accession {
		case "MS:1000016":
			p = 1
		case "MS:1000894":
			p = 2
		case "MS:1000826":
			p = 3
		case "MS:1001114":
			p = 4
		default:
			continue
		}
		if p >= prio {
			continue
		}
		v, err := strconv.ParseFloat(cv.Value, 64)
		if err != nil {
			continue
		}
		// Minute units get converted, anything else is taken as seconds.
		if cv.UnitAccession == "UO:0000031" || cv.UnitAccession == "MS:1000038" {
			v *= 60
		}
		prio = p
		rt = v
	}
	return rt
}
