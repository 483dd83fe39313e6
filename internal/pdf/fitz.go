package pdf

import (
	"errors"

	"github.com/gen2brain/go-fitz"
	"github.com/spherical/pdf-text/internal/domain"
)

// FitzOpener opens documents with MuPDF through go-fitz.
type FitzOpener struct{}

// Open implements domain.Opener
func (FitzOpener) Open(path string) (domain.Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		if errors.Is(err, fitz.ErrNeedsPassword) {
			return nil, domain.OpenError("PDF is encrypted", err)
		}
		return nil, domain.OpenError("failed to open PDF", err)
	}
	return &fitzDocument{doc: doc}, nil
}

type fitzDocument struct {
	doc *fitz.Document
}

func (d *fitzDocument) NumPage() int {
	return d.doc.NumPage()
}

func (d *fitzDocument) PageText(i int) (string, error) {
	return d.doc.Text(i)
}

func (d *fitzDocument) Close() error {
	return d.doc.Close()
}
