package pdf

import (
	"fmt"

	"github.com/spherical/pdf-text/internal/domain"
)

// Supported text extraction backends
const (
	BackendFitz  = "fitz"
	BackendPlain = "ledongthuc"
)

// Backends lists the accepted backend names
var Backends = []string{BackendFitz, BackendPlain}

// NewOpener returns the document opener for the named backend.
// An empty name selects go-fitz.
func NewOpener(backend string) (domain.Opener, error) {
	switch backend {
	case "", BackendFitz:
		return FitzOpener{}, nil
	case BackendPlain:
		return PlainOpener{}, nil
	default:
		return nil, domain.ConfigError(fmt.Sprintf("unknown PDF backend %q", backend), nil)
	}
}
