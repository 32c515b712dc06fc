package iiifimages

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/opengeometadata/go-ogm-record/record"
	"github.com/whosonfirst/go-reader/v2"
)

// Run executes the "list IIIF images" application with a default `flag.FlagSet` instance.
func Run(ctx context.Context) error {
	fs := DefaultFlagSet(ctx)
	return RunWithFlagSet(ctx, fs)
}

// RunWithFlagSet executes the "list IIIF images" application with a `flag.FlagSet` instance defined by 'fs'.
func RunWithFlagSet(ctx context.Context, fs *flag.FlagSet) error {

	opts, err := RunOptionsFromFlagSet(ctx, fs)

	if err != nil {
		return err
	}

	return RunWithOptions(ctx, opts)
}

func RunWithOptions(ctx context.Context, opts *RunOptions) error {

	if opts.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		slog.Debug("Verbose logging enabled")
	}

	records := make([]*record.Record, 0)

	if opts.RecordURL != "" {

		rec, err := record.FetchRecord(ctx, http.DefaultClient, opts.RecordURL)

		if err != nil {
			return fmt.Errorf("Failed to fetch record, %w", err)
		}

		records = append(records, rec)
	}

	if len(opts.Paths) > 0 {

		if opts.ReaderURI == "" {
			return fmt.Errorf("Missing -reader-uri flag for record paths")
		}

		r, err := reader.NewReader(ctx, opts.ReaderURI)

		if err != nil {
			return fmt.Errorf("Failed to create record reader, %w", err)
		}

		for _, path := range opts.Paths {

			rec, err := record.LoadRecord(ctx, r, path)

			if err != nil {
				return fmt.Errorf("Failed to load record %s, %w", path, err)
			}

			records = append(records, rec)
		}
	}

	if len(records) == 0 {
		return fmt.Errorf("Nothing to do")
	}

	for _, rec := range records {

		if !rec.References.IIIFPreviewable() {
			slog.Warn("Record has no IIIF references", "id", rec.Id)
			continue
		}

		for _, image_url := range rec.References.IIIFImages(ctx) {
			fmt.Fprintf(os.Stdout, "%s\t%s\n", rec.Id, image_url)
		}
	}

	return nil
}
