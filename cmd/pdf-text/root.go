package main

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spherical/pdf-text/internal/app"
	"github.com/spherical/pdf-text/internal/config"
	"github.com/spherical/pdf-text/internal/dialog"
	"github.com/spherical/pdf-text/internal/extract"
	"github.com/spherical/pdf-text/internal/observability"
	"github.com/spherical/pdf-text/internal/pdf"
	"github.com/spherical/pdf-text/internal/ui"
)

type rootOptions struct {
	cfgFile string
	verbose bool
	noColor bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "pdf-text",
		Short: "Print the text of a PDF picked from a file dialog",
		Long: `pdf-text opens a file dialog restricted to PDF files and prints the
extractable text of every page of the chosen document to stdout.
Pages without a text layer (scanned images) are skipped.`,
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&opts.cfgFile, "config", "c", "", "config file path")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging on stderr")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	return cmd
}

func run(ctx context.Context, opts *rootOptions, stdout, stderr io.Writer) error {
	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return err
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
	if opts.noColor {
		cfg.UI.NoColor = true
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Output:      stderr,
		ServiceName: "pdf-text",
	})

	opener, err := pdf.NewOpener(cfg.PDF.Backend)
	if err != nil {
		return err
	}

	serviceOpts := []extract.Option{
		extract.WithLogger(logger),
		extract.WithValidator(pdf.NewValidator(logger).WithMaxSize(cfg.PDF.WarnSizeMB * 1024 * 1024)),
	}
	if cfg.PDF.Strict {
		serviceOpts = append(serviceOpts, extract.WithInspector(pdf.NewInspector()))
	}
	service := extract.NewService(opener, serviceOpts...)

	selector := dialog.NewSelector(dialog.Options{
		Title:    cfg.Dialog.Title,
		StartDir: cfg.Dialog.StartDir,
	})

	var progress io.Writer
	if cfg.ShowProgress(isTerminal(stderr)) {
		progress = stderr
	}

	logger.Debug().
		Str("backend", cfg.PDF.Backend).
		Bool("strict", cfg.PDF.Strict).
		Bool("progress", progress != nil).
		Msg("Starting pdf-text")

	runner := app.NewRunner(selector, service, ui.NewConsole(stdout, cfg.UI.NoColor), progress, logger)
	return runner.Run(ctx)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
