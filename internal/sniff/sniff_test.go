package sniff

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestHasXMLRoot(t *testing.T) {
	tests := []struct {
		name  string
		head  string
		local string
		want  bool
	}{
		{
			name:  "bare root",
			head:  `<MzIdentML xmlns="http://psidev.info/psi/pi/mzIdentML/1.1">`,
			local: "MzIdentML",
			want:  true,
		},
		{
			name:  "declaration and comment before root",
			head:  "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<!-- exported -->\n<msms_pipeline_analysis date=\"2026\">",
			local: "msms_pipeline_analysis",
			want:  true,
		},
		{
			name:  "different root",
			head:  `<?xml version="1.0"?><mzML>`,
			local: "MzIdentML",
			want:  false,
		},
		{
			name:  "not xml",
			head:  "MIME-Version: 1.0 (Generated by Mascot version 2.6)",
			local: "MzIdentML",
			want:  false,
		},
		{
			name:  "truncated before root",
			head:  `<?xml version="1.0" encoding="UTF-`,
			local: "MzIdentML",
			want:  false,
		},
		{
			name:  "empty head",
			head:  "",
			local: "MzIdentML",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasXMLRoot([]byte(tt.head), tt.local); got != tt.want {
				t.Errorf("HasXMLRoot(%q, %q) = %v, want %v", tt.head, tt.local, got, tt.want)
			}
		})
	}
}

func TestHasXMLRoot_TruncatedRootTag(t *testing.T) {
	// Root element opened but the head ends mid-attribute: the element
	// start has not been tokenized yet, so the answer must be non-match
	// rather than a guess.
	head := []byte(`<?xml version="1.0"?><MzIdentML xmlns="http://psi`)
	if HasXMLRoot(head, "MzIdentML") {
		t.Error("HasXMLRoot should answer false for a root tag cut off mid-attribute")
	}
}

func TestContains(t *testing.T) {
	head := []byte("MIME-Version: 1.0 (Generated by Mascot version 2.6)")
	if !Contains(head, "Mascot") {
		t.Error("Contains should find the signature")
	}
	if Contains(head, "MzIdentML") {
		t.Error("Contains should not find an absent signature")
	}
}

func TestHasExtension(t *testing.T) {
	tests := []struct {
		path string
		exts []string
		want bool
	}{
		{"results.mzid", []string{".mzid"}, true},
		{"RESULTS.MZID", []string{".mzid"}, true},
		{"run1.pep.xml", []string{".pepxml", ".pep.xml"}, true},
		{"results.mzML", []string{".mzid"}, false},
		{"noext", []string{".mzid"}, false},
	}

	for _, tt := range tests {
		if got := HasExtension(tt.path, tt.exts...); got != tt.want {
			t.Errorf("HasExtension(%q, %v) = %v, want %v", tt.path, tt.exts, got, tt.want)
		}
	}
}

func TestHead(t *testing.T) {
	dir := t.TempDir()

	small := filepath.Join(dir, "small.mzid")
	if err := os.WriteFile(small, []byte("<MzIdentML/>"), 0o644); err != nil {
		t.Fatal(err)
	}
	head, err := Head(small)
	if err != nil {
		t.Fatalf("Head() error: %v", err)
	}
	if string(head) != "<MzIdentML/>" {
		t.Errorf("Head() = %q, want full short file", head)
	}

	big := filepath.Join(dir, "big.mzid")
	if err := os.WriteFile(big, bytes.Repeat([]byte("x"), HeadSize*3), 0o644); err != nil {
		t.Fatal(err)
	}
	head, err = Head(big)
	if err != nil {
		t.Fatalf("Head() error: %v", err)
	}
	if len(head) != HeadSize {
		t.Errorf("Head() length = %d, want %d", len(head), HeadSize)
	}
}

func TestHead_Missing(t *testing.T) {
	_, err := Head(filepath.Join(t.TempDir(), "absent.mzid"))
	if err == nil {
		t.Fatal("Head() should fail for a missing file")
	}
}
