package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/mzkit/mzident/internal/types"
)

func TestNullReader_NeverIdentifies(t *testing.T) {
	n := NewNullReader(types.FormatMascot, "MascotReader", "Mascot")

	heads := [][]byte{
		nil,
		{},
		[]byte("MIME-Version: 1.0 (Generated by Mascot version 2.6)"), // a genuine Mascot header
		[]byte("<MzIdentML>"),
		[]byte("random bytes \x00\x01\x02"),
	}
	for _, head := range heads {
		if got := n.Identify("F001.dat", head); got != "" {
			t.Errorf("Identify(%q) = %q, want non-match for every input", head, got)
		}
	}
}

func TestNullReader_ReadAlwaysFeatureDisabled(t *testing.T) {
	n := NewNullReader(types.FormatMascot, "MascotReader", "Mascot")

	docs, err := n.Read("F001.dat", []byte("anything"))
	if docs != nil {
		t.Error("Read must never hand back documents")
	}

	var disabled *types.FeatureDisabledError
	if !errors.As(err, &disabled) {
		t.Fatalf("Read() error = %v, want *types.FeatureDisabledError", err)
	}
	if disabled.Feature != "Mascot" {
		t.Errorf("Feature = %q, want %q", disabled.Feature, "Mascot")
	}
	if !strings.Contains(err.Error(), "Mascot") {
		t.Errorf("message %q must name the missing capability", err.Error())
	}
	if !strings.Contains(err.Error(), "MascotReader::read") {
		t.Errorf("message %q must name the reader and operation", err.Error())
	}
}

func TestNullReader_FormatPreserved(t *testing.T) {
	n := NewNullReader(types.FormatMascot, "MascotReader", "Mascot")
	if got := n.Format(); got != types.FormatMascot {
		t.Errorf("Format() = %v, want FormatMascot for diagnostic listing", got)
	}
}

func TestNullReader_InRegistryFallsThrough(t *testing.T) {
	// A registry holding only a null reader treats even a genuine file of
	// that format as unrecognized: disabled support never claims a match.
	reg := New(NewNullReader(types.FormatMascot, "MascotReader", "Mascot"))

	path := writeFile(t, "F001.dat", "MIME-Version: 1.0 (Generated by Mascot version 2.6)")
	_, err := reg.Read(path, nil)

	var unrec *types.UnrecognizedFormatError
	if !errors.As(err, &unrec) {
		t.Errorf("Read() error = %v, want UnrecognizedFormat, not FeatureDisabled", err)
	}
}
