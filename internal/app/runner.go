// Package app runs the select -> extract -> print flow of pdf-text.
package app

import (
	"context"
	"errors"
	"io"

	"github.com/spherical/pdf-text/internal/dialog"
	"github.com/spherical/pdf-text/internal/domain"
	"github.com/spherical/pdf-text/internal/extract"
	"github.com/spherical/pdf-text/internal/observability"
	"github.com/spherical/pdf-text/internal/ui"
)

// Console messages
const (
	MsgSelect        = "📄 Select a PDF file to extract text from..."
	MsgExtracted     = "\n📄 Extracted Text:\n"
	MsgNoSelection   = "❌ No file selected."
	progressEventBuf = 64
)

// Selector picks the input file
type Selector interface {
	SelectPDF(ctx context.Context) (string, error)
}

// Extractor turns a PDF path into text
type Extractor interface {
	Process(ctx context.Context, pdfPath string, eventCh chan<- domain.StreamEvent) (*extract.Result, error)
}

// Runner wires the selector, the extractor and the console together
type Runner struct {
	selector  Selector
	extractor Extractor
	console   *ui.Console
	progress  io.Writer
	logger    *observability.Logger
}

// NewRunner creates a runner. progress may be nil to disable the page progress bar.
func NewRunner(selector Selector, extractor Extractor, console *ui.Console, progress io.Writer, logger *observability.Logger) *Runner {
	if logger == nil {
		logger = observability.Nop()
	}
	return &Runner{
		selector:  selector,
		extractor: extractor,
		console:   console,
		progress:  progress,
		logger:    logger.WithOperation("run"),
	}
}

// Run prompts for a file once and prints its text. A cancelled dialog is
// reported on the console and is not an error.
func (r *Runner) Run(ctx context.Context) error {
	r.console.Println(MsgSelect)

	path, err := r.selector.SelectPDF(ctx)
	if errors.Is(err, dialog.ErrNoSelection) {
		r.logger.Debug().Msg("Dialog cancelled")
		r.console.Failure(MsgNoSelection)
		return nil
	}
	if err != nil {
		return err
	}

	r.logger.Info().Str("path", path).Msg("File selected")

	var eventCh chan domain.StreamEvent
	done := make(chan struct{})
	if r.progress != nil {
		eventCh = make(chan domain.StreamEvent, progressEventBuf)
		go func() {
			defer close(done)
			ui.TrackPages(eventCh, r.progress)
		}()
	} else {
		close(done)
	}

	result, err := r.extractor.Process(ctx, path, eventCh)
	if eventCh != nil {
		close(eventCh)
	}
	<-done
	if err != nil {
		return err
	}

	r.console.Header(MsgExtracted)
	r.console.Println(result.Text)
	return nil
}
