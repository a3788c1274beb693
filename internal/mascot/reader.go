// Package mascot holds the Mascot .dat reader slot.
//
// Reading Mascot result files requires the proprietary Mascot Parser
// library, which is not part of this build. New therefore returns a null
// reader: it never claims a file during identify dispatch, and a forced
// read fails with a FeatureDisabledError naming the missing capability.
// A build with real Mascot support would swap the constructor body; call
// sites and registry wiring stay unchanged.
package mascot

import (
	"github.com/mzkit/mzident/internal/registry"
	"github.com/mzkit/mzident/internal/types"
)

// New returns the Mascot reader for this build.
func New() registry.Reader {
	return registry.NewNullReader(types.FormatMascot, "MascotReader", "Mascot")
}
