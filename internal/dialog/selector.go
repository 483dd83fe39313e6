// Package dialog shows the native open-file dialog used to pick the input PDF.
package dialog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/spherical/pdf-text/internal/domain"
)

// ErrNoSelection is returned when the user closes the dialog without choosing a file.
var ErrNoSelection = errors.New("no file selected")

// DefaultTitle is the dialog title used when none is configured
const DefaultTitle = "Select a PDF file"

// Options configures the file dialog
type Options struct {
	Title    string
	StartDir string
}

// Selector presents a modal open-file dialog restricted to PDF files
type Selector struct {
	opts       Options
	selectFile func(options ...zenity.Option) (string, error)
}

// NewSelector creates a selector backed by the platform dialog
func NewSelector(opts Options) *Selector {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	return &Selector{
		opts:       opts,
		selectFile: zenity.SelectFile,
	}
}

// SelectPDF blocks until the user picks a file and returns its absolute path.
// Cancelling the dialog yields ErrNoSelection.
func (s *Selector) SelectPDF(ctx context.Context) (string, error) {
	options := []zenity.Option{
		zenity.Context(ctx),
		zenity.Title(s.opts.Title),
		zenity.FileFilters{
			{Name: "PDF files", Patterns: []string{"*.pdf"}, CaseFold: true},
		},
	}
	if s.opts.StartDir != "" {
		// A trailing separator makes the dialog open inside the directory
		options = append(options, zenity.Filename(strings.TrimRight(s.opts.StartDir, string(os.PathSeparator))+string(os.PathSeparator)))
	}

	path, err := s.selectFile(options...)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", ErrNoSelection
	}
	if err != nil {
		return "", domain.DialogError("file dialog failed", err)
	}
	if path == "" {
		return "", ErrNoSelection
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", domain.IOError("cannot resolve selected path", err)
	}
	return abs, nil
}
