package types

// Format represents a supported identification file format.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota
	// FormatMzIdentML represents native mzIdentML XML files.
	FormatMzIdentML
	// FormatPepXML represents pepXML pipeline analysis files.
	FormatPepXML
	// FormatMascot represents Mascot search-engine .dat result files.
	FormatMascot
)

// String returns the stable, human-readable format identifier used for
// diagnostics and registry bookkeeping.
func (f Format) String() string {
	switch f {
	case FormatMzIdentML:
		return "mzIdentML"
	case FormatPepXML:
		return "pepXML"
	case FormatMascot:
		return "Mascot .dat"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatMzIdentML:
		return []string{".mzid", ".mzidentml"}
	case FormatPepXML:
		return []string{".pepxml", ".pep.xml", ".xml"}
	case FormatMascot:
		return []string{".dat"}
	case FormatUnknown:
		return nil
	default:
		return nil
	}
}
