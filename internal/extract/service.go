package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spherical/pdf-text/internal/domain"
	"github.com/spherical/pdf-text/internal/observability"
	"github.com/spherical/pdf-text/internal/pdf"
)

// PathValidator checks a path before the document is opened
type PathValidator interface {
	ValidatePDFPath(path string) error
}

// Inspector performs a structural check of the file before the document is opened
type Inspector interface {
	Inspect(path string) (*pdf.Info, error)
}

// Result is the outcome of one extraction run
type Result struct {
	RunID string
	Path  string
	Text  string
	Stats domain.ExtractionStats
}

// Service extracts the text of every page of a PDF
type Service struct {
	opener    domain.Opener
	validator PathValidator
	inspector Inspector
	logger    *observability.Logger
}

// Option configures a Service
type Option func(*Service)

// WithLogger sets the service logger
func WithLogger(logger *observability.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithValidator replaces the default path validator
func WithValidator(v PathValidator) Option {
	return func(s *Service) {
		if v != nil {
			s.validator = v
		}
	}
}

// WithInspector enables a structural check before opening; encrypted files are rejected.
func WithInspector(i Inspector) Option {
	return func(s *Service) {
		s.inspector = i
	}
}

// NewService creates a new extraction service
func NewService(opener domain.Opener, opts ...Option) *Service {
	s := &Service{
		opener: opener,
		logger: observability.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.validator == nil {
		s.validator = pdf.NewValidator(s.logger)
	}
	s.logger = s.logger.WithOperation("extract")
	return s
}

// Extract returns the text of all pages of the PDF at pdfPath
func (s *Service) Extract(ctx context.Context, pdfPath string) (*Result, error) {
	return s.Process(ctx, pdfPath, nil)
}

// Process extracts the text of every page in document order, publishing
// progress on eventCh when it is non-nil. Each page contributes its text
// followed by one newline; pages without text contribute nothing. The
// concatenation is trimmed before it is returned.
func (s *Service) Process(ctx context.Context, pdfPath string, eventCh chan<- domain.StreamEvent) (*Result, error) {
	startTime := time.Now()
	runID := uuid.NewString()
	logger := s.logger.WithRun(runID)

	s.emitEvent(eventCh, domain.StreamEvent{
		Type:      domain.EventStart,
		Payload:   fmt.Sprintf("Starting extraction of %s", pdfPath),
		Timestamp: time.Now(),
	})

	if err := s.validator.ValidatePDFPath(pdfPath); err != nil {
		s.emitError(eventCh, err)
		return nil, err
	}

	if s.inspector != nil {
		info, err := s.inspector.Inspect(pdfPath)
		if err != nil {
			s.emitError(eventCh, err)
			return nil, err
		}
		if info.Encrypted {
			err := domain.ValidationError("PDF is encrypted", nil)
			s.emitError(eventCh, err)
			return nil, err
		}
		logger.Debug().Int("pages", info.PageCount).Msg("Structural validation passed")
	}

	logger.Info().Str("path", pdfPath).Msg("Opening PDF")
	doc, err := s.opener.Open(pdfPath)
	if err != nil {
		var de *domain.DomainError
		if !errors.As(err, &de) {
			err = domain.OpenError("failed to open PDF", err)
		}
		s.emitError(eventCh, err)
		return nil, err
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("Failed to close PDF")
		}
	}()

	stats := domain.ExtractionStats{TotalPages: doc.NumPage()}
	var text strings.Builder

	for i := 0; i < stats.TotalPages; i++ {
		if err := ctx.Err(); err != nil {
			s.emitError(eventCh, err)
			return nil, err
		}

		pageNumber := i + 1
		s.emitEvent(eventCh, domain.StreamEvent{
			Type:       domain.EventPageProcessing,
			PageNumber: pageNumber,
			TotalPages: stats.TotalPages,
			Payload:    fmt.Sprintf("Processing page %d", pageNumber),
			Timestamp:  time.Now(),
		})

		pageText, err := doc.PageText(i)
		if err != nil {
			err = domain.ExtractionError(fmt.Sprintf("failed to extract page %d", pageNumber), err)
			logger.Error().Err(err).Int("page", pageNumber).Msg("Page extraction failed")
			s.emitError(eventCh, err)
			return nil, err
		}

		pageText = strings.TrimRight(pageText, "\r\n")
		if strings.TrimSpace(pageText) == "" {
			stats.EmptyPages++
			logger.Debug().Int("page", pageNumber).Msg("Page has no extractable text")
			s.emitEvent(eventCh, domain.StreamEvent{
				Type:       domain.EventPageEmpty,
				PageNumber: pageNumber,
				TotalPages: stats.TotalPages,
				Payload:    fmt.Sprintf("Page %d has no extractable text", pageNumber),
				Timestamp:  time.Now(),
			})
			continue
		}

		text.WriteString(pageText)
		text.WriteByte('\n')
		stats.TextPages++

		s.emitEvent(eventCh, domain.StreamEvent{
			Type:       domain.EventPageComplete,
			PageNumber: pageNumber,
			TotalPages: stats.TotalPages,
			Payload:    fmt.Sprintf("Completed page %d", pageNumber),
			Timestamp:  time.Now(),
		})
	}

	stats.Duration = time.Since(startTime)

	s.emitEvent(eventCh, domain.StreamEvent{
		Type:       domain.EventComplete,
		TotalPages: stats.TotalPages,
		Payload: fmt.Sprintf("Extraction complete: %d/%d pages with text in %v",
			stats.TextPages, stats.TotalPages, stats.Duration),
		Timestamp: time.Now(),
	})

	logger.Info().
		Int("pages", stats.TotalPages).
		Int("text_pages", stats.TextPages).
		Int("empty_pages", stats.EmptyPages).
		Dur("duration", stats.Duration).
		Msg("Extraction complete")

	return &Result{
		RunID: runID,
		Path:  pdfPath,
		Text:  strings.TrimSpace(text.String()),
		Stats: stats,
	}, nil
}

// emitEvent safely emits an event to the channel
func (s *Service) emitEvent(eventCh chan<- domain.StreamEvent, event domain.StreamEvent) {
	if eventCh != nil {
		select {
		case eventCh <- event:
		default:
			s.logger.Warn().Str("event", string(event.Type)).Msg("Event channel full, dropping event")
		}
	}
}

// emitError emits an error event
func (s *Service) emitError(eventCh chan<- domain.StreamEvent, err error) {
	s.emitEvent(eventCh, domain.StreamEvent{
		Type:      domain.EventError,
		Payload:   err.Error(),
		Timestamp: time.Now(),
	})
}
