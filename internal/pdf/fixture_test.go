package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/require"
)

// writeFixture renders one page per entry; an empty entry yields a page without text.
func writeFixture(t *testing.T, pages ...string) string {
	t.Helper()

	doc := fpdf.New("P", "mm", "A4", "")
	for _, text := range pages {
		doc.AddPage()
		doc.SetFont("Helvetica", "", 14)
		if text != "" {
			doc.Cell(0, 10, text)
		}
	}

	path := filepath.Join(t.TempDir(), "fixture.pdf")
	require.NoError(t, doc.OutputFileAndClose(path))
	return path
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}
