package pdf

import (
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/spherical/pdf-text/internal/domain"
)

// Info holds structural facts about a PDF file
type Info struct {
	PageCount int
	Encrypted bool
}

// Inspector checks PDF structure with pdfcpu before text extraction
type Inspector struct {
	conf *model.Configuration
}

// NewInspector creates an inspector using relaxed pdfcpu validation
func NewInspector() *Inspector {
	api.DisableConfigDir()
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Inspector{conf: conf}
}

// Inspect validates the file's object structure and reports page count and encryption.
func (i *Inspector) Inspect(path string) (*Info, error) {
	if err := api.ValidateFile(path, i.conf); err != nil {
		return nil, domain.ValidationError("PDF failed structural validation", err)
	}

	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, domain.ValidationError("failed to read PDF structure", err)
	}

	return &Info{
		PageCount: ctx.PageCount,
		Encrypted: ctx.Encrypt != nil,
	}, nil
}
