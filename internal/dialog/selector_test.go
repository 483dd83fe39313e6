package dialog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ncruces/zenity"
	"github.com/spherical/pdf-text/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectorReturning(path string, err error) *Selector {
	s := NewSelector(Options{})
	s.selectFile = func(...zenity.Option) (string, error) { return path, err }
	return s
}

func TestNewSelector_DefaultTitle(t *testing.T) {
	assert.Equal(t, DefaultTitle, NewSelector(Options{}).opts.Title)
	assert.Equal(t, "Pick one", NewSelector(Options{Title: "Pick one"}).opts.Title)
}

func TestSelectPDF(t *testing.T) {
	dialogErr := errors.New("no display")

	tests := []struct {
		name     string
		path     string
		err      error
		want     string
		wantErr  error
		wantType domain.ErrorType
	}{
		{name: "cancelled", err: zenity.ErrCanceled, wantErr: ErrNoSelection},
		{name: "empty result", path: "", wantErr: ErrNoSelection},
		{name: "absolute path", path: "/docs/report.pdf", want: "/docs/report.pdf"},
		{name: "dialog failure", err: dialogErr, wantErr: dialogErr, wantType: domain.ErrorTypeDialog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selectorReturning(tt.path, tt.err).SelectPDF(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				if tt.wantType != "" {
					assert.True(t, domain.IsType(err, tt.wantType))
				}
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, filepath.ToSlash(got))
		})
	}
}

func TestSelectPDF_RelativePathResolved(t *testing.T) {
	got, err := selectorReturning("report.pdf", nil).SelectPDF(context.Background())
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, "report.pdf", filepath.Base(got))
}

func TestSelectPDF_PassesOptions(t *testing.T) {
	var count int
	s := NewSelector(Options{StartDir: "/home/user/docs"})
	s.selectFile = func(options ...zenity.Option) (string, error) {
		count = len(options)
		return "", zenity.ErrCanceled
	}

	_, err := s.SelectPDF(context.Background())
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.Equal(t, 4, count, "context, title, filter and start directory")
}
