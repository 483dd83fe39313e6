package ui

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
	"github.com/spherical/pdf-text/internal/domain"
)

// ProgressBar wraps a progressbar instance for page progress display.
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a new progress bar with the given total and description.
func NewProgressBar(w io.Writer, total int64, description string) *ProgressBar {
	bar := progressbar.NewOptions64(
		total,
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("pages"),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// Add advances the progress bar by n.
func (p *ProgressBar) Add(n int) {
	_ = p.bar.Add(n)
}

// SetTotal updates the total value of the progress bar.
func (p *ProgressBar) SetTotal(total int64) {
	p.bar.ChangeMax64(total)
}

// Finish completes the progress bar.
func (p *ProgressBar) Finish() {
	_ = p.bar.Finish()
}

// TrackPages renders extraction events as a page progress bar on w until
// events is closed. It returns the number of pages seen.
func TrackPages(events <-chan domain.StreamEvent, w io.Writer) int {
	var bar *ProgressBar
	pages := 0

	for event := range events {
		switch event.Type {
		case domain.EventPageProcessing:
			if bar == nil {
				bar = NewProgressBar(w, int64(event.TotalPages), "Extracting")
			}
		case domain.EventPageComplete, domain.EventPageEmpty:
			pages++
			if bar != nil {
				bar.Add(1)
			}
		case domain.EventComplete:
			if bar != nil {
				bar.Finish()
			}
		}
	}

	return pages
}
