package mascot

import (
	"errors"
	"strings"
	"testing"

	"github.com/mzkit/mzident/internal/types"
)

// A leading chunk of a genuine Mascot .dat file.
const mascotHead = "MIME-Version: 1.0 (Generated by Mascot version 2.6)\r\n" +
	"Content-Type: multipart/mixed; boundary=gc0p4Jq0M2Yt08jU534c0p\r\n"

func TestNew_IsDisabledStub(t *testing.T) {
	r := New()

	if got := r.Format(); got != types.FormatMascot {
		t.Errorf("Format() = %v, want FormatMascot", got)
	}
	if got := r.Format().String(); got != "Mascot .dat" {
		t.Errorf("Format().String() = %q, want %q", got, "Mascot .dat")
	}

	// Even a genuine Mascot header must not be claimed.
	if got := r.Identify("F001.dat", []byte(mascotHead)); got != "" {
		t.Errorf("Identify() = %q, want non-match from the disabled reader", got)
	}
}

func TestRead_FeatureDisabled(t *testing.T) {
	r := New()

	for _, path := range []string{"F001.dat", "results.mzid", ""} {
		_, err := r.Read(path, []byte(mascotHead))

		var disabled *types.FeatureDisabledError
		if !errors.As(err, &disabled) {
			t.Fatalf("Read(%q) error = %v, want *types.FeatureDisabledError", path, err)
		}
		if !strings.Contains(err.Error(), "Mascot") {
			t.Errorf("Read(%q) message %q must mention Mascot", path, err.Error())
		}
	}
}
