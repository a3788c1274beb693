// Package sniff provides bounded signature checks over a file's head prefix.
//
// Format identification must stay cheap: callers read a small leading byte
// range of a file once and probe it against every candidate format. Nothing
// here reads beyond that prefix or mutates the file.
package sniff

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// HeadSize is the number of leading bytes read for format identification.
// A few hundred bytes cover the XML declaration plus the root element for
// every text signature in scope.
const HeadSize = 512

// Head reads up to HeadSize leading bytes of the file at path.
// Files shorter than HeadSize yield a shorter slice, not an error.
func Head(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, HeadSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("%s: read head: %w", path, err)
	}
	return buf[:n], nil
}

// HasXMLRoot reports whether the head prefix parses as XML whose first
// start element has the given local name. Declarations, comments and
// processing instructions before the root are skipped. A truncated or
// non-XML head answers false, never an error.
func HasXMLRoot(head []byte, local string) bool {
	d := xml.NewDecoder(bytes.NewReader(head))
	for {
		tok, err := d.Token()
		if err != nil {
			return false
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start.Name.Local == local
		}
	}
}

// Contains reports whether the head prefix contains the given text
// signature.
func Contains(head []byte, sig string) bool {
	return bytes.Contains(head, []byte(sig))
}

// HasExtension reports whether path ends in one of the given extensions,
// compared case-insensitively. Extensions include the leading dot and may
// be compound (".pep.xml").
func HasExtension(path string, exts ...string) bool {
	lower := strings.ToLower(path)
	for _, ext := range exts {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}
