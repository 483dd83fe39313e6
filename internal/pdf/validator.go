package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spherical/pdf-text/internal/domain"
	"github.com/spherical/pdf-text/internal/observability"
)

// DefaultMaxSize is the size above which a warning is logged.
const DefaultMaxSize = 100 * 1024 * 1024 // 100MB

// Validator provides input validation for PDF files
type Validator struct {
	maxSize int64
	logger  *observability.Logger
}

// NewValidator creates a new validator instance
func NewValidator(logger *observability.Logger) *Validator {
	if logger == nil {
		logger = observability.Nop()
	}
	return &Validator{
		maxSize: DefaultMaxSize,
		logger:  logger,
	}
}

// WithMaxSize overrides the large-file warning threshold
func (v *Validator) WithMaxSize(size int64) *Validator {
	if size > 0 {
		v.maxSize = size
	}
	return v
}

// ValidatePDFPath validates that a file path is valid and points to a PDF
func (v *Validator) ValidatePDFPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return domain.ValidationError("file path cannot be empty", nil)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.ValidationError(fmt.Sprintf("file does not exist: %s", path), err)
		}
		return domain.ValidationError(fmt.Sprintf("cannot access file: %s", path), err)
	}

	if info.IsDir() {
		return domain.ValidationError(fmt.Sprintf("path is a directory, not a file: %s", path), nil)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".pdf" {
		return domain.ValidationError(fmt.Sprintf("file is not a PDF (has extension %s)", ext), nil)
	}

	// Large files are only worth a warning
	if info.Size() > v.maxSize {
		v.logger.Warn().
			Str("path", path).
			Int64("size_mb", info.Size()/(1024*1024)).
			Msg("PDF file is very large, extraction may take a while")
	}

	file, err := os.Open(path)
	if err != nil {
		return domain.ValidationError(fmt.Sprintf("cannot open file: %s", path), err)
	}
	file.Close()

	return nil
}
