package pdf

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spherical/pdf-text/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpener(t *testing.T) {
	tests := []struct {
		backend string
		want    domain.Opener
		wantErr bool
	}{
		{backend: "", want: FitzOpener{}},
		{backend: BackendFitz, want: FitzOpener{}},
		{backend: BackendPlain, want: PlainOpener{}},
		{backend: "poppler", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			got, err := NewOpener(tt.backend)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsType(err, domain.ErrorTypeConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBackendsExtractPagesInOrder(t *testing.T) {
	path := writeFixture(t, "Alpha page one", "", "Gamma page three")

	for _, backend := range Backends {
		t.Run(backend, func(t *testing.T) {
			opener, err := NewOpener(backend)
			require.NoError(t, err)

			doc, err := opener.Open(path)
			require.NoError(t, err)
			defer doc.Close()

			require.Equal(t, 3, doc.NumPage())

			first, err := doc.PageText(0)
			require.NoError(t, err)
			assert.Contains(t, first, "Alpha page one")

			blank, err := doc.PageText(1)
			require.NoError(t, err)
			assert.Empty(t, strings.TrimSpace(blank))

			third, err := doc.PageText(2)
			require.NoError(t, err)
			assert.Contains(t, third, "Gamma page three")
		})
	}
}

func TestBackendsRejectBrokenFiles(t *testing.T) {
	garbage := writeFile(t, "broken.pdf", []byte("this is not a pdf at all"))
	missing := filepath.Join(t.TempDir(), "missing.pdf")

	for _, backend := range Backends {
		t.Run(backend, func(t *testing.T) {
			opener, err := NewOpener(backend)
			require.NoError(t, err)

			for _, path := range []string{garbage, missing} {
				doc, err := opener.Open(path)
				if doc != nil {
					doc.Close()
				}
				require.Error(t, err, path)
				assert.True(t, domain.IsType(err, domain.ErrorTypeOpen), "got %v", err)
			}
		})
	}
}
