package pdf

import (
	"fmt"
	"os"

	lpdf "github.com/ledongthuc/pdf"
	"github.com/spherical/pdf-text/internal/domain"
)

// PlainOpener opens documents with the pure-Go ledongthuc/pdf reader.
// It needs no cgo but recovers less text than MuPDF on complex fonts.
type PlainOpener struct{}

// Open implements domain.Opener
func (PlainOpener) Open(path string) (doc domain.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = domain.OpenError("failed to open PDF", fmt.Errorf("malformed document: %v", r))
		}
	}()

	f, r, err := lpdf.Open(path)
	if err != nil {
		return nil, domain.OpenError("failed to open PDF", err)
	}
	return &plainDocument{
		file:   f,
		reader: r,
		fonts:  make(map[string]*lpdf.Font),
	}, nil
}

type plainDocument struct {
	file   *os.File
	reader *lpdf.Reader
	fonts  map[string]*lpdf.Font
}

func (d *plainDocument) NumPage() int {
	return d.reader.NumPage()
}

// PageText reads page i+1; the reader numbers pages from one.
// The parser panics on some malformed content streams, so that is turned into an error.
func (d *plainDocument) PageText(i int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed page %d: %v", i+1, r)
		}
	}()

	p := d.reader.Page(i + 1)
	if p.V.IsNull() {
		return "", nil
	}

	for _, name := range p.Fonts() {
		if _, ok := d.fonts[name]; !ok {
			font := p.Font(name)
			d.fonts[name] = &font
		}
	}

	return p.GetPlainText(d.fonts)
}

func (d *plainDocument) Close() error {
	return d.file.Close()
}
