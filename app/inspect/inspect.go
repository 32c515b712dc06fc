package inspect

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/opengeometadata/go-ogm-record/record"
	"github.com/opengeometadata/go-ogm-record/sources"
	"github.com/whosonfirst/go-reader/v2"
)

// Run executes the "inspect records" application with a default `flag.FlagSet` instance.
func Run(ctx context.Context) error {
	fs := DefaultFlagSet(ctx)
	return RunWithFlagSet(ctx, fs)
}

// RunWithFlagSet executes the "inspect records" application with a `flag.FlagSet` instance defined by 'fs'.
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
		return fmt.Errorf("Nothing to inspect")
	}

	for _, rec := range records {

		err := printRecord(os.Stdout, rec)

		if err != nil {
			return fmt.Errorf("Failed to print record %s, %w", rec.Id, err)
		}
	}

	return nil
}

func printRecord(wr io.Writer, rec *record.Record) error {

	fmt.Fprintf(wr, "%s\t%s\n", rec.Id, rec.Title)
	fmt.Fprintf(wr, "attribution:\t%s\n", rec.Attribution())
	fmt.Fprintf(wr, "access:\t%s\n", rec.AccessRights)
	fmt.Fprintf(wr, "previewable:\t%t (map: %t, iiif: %t, iiif only: %t)\n",
		rec.References.Previewable(),
		rec.References.MapPreviewable(),
		rec.References.IIIFPreviewable(),
		rec.References.IIIFOnly())

	b := rec.Bounds()

	if b != nil {
		fmt.Fprintf(wr, "bounds:\t%f %f %f %f (W S E N)\n", b.West, b.South, b.East, b.North)
	}

	layer, err := sources.PreviewLayer(rec)

	if err != nil {
		return err
	}

	if layer != nil {
		fmt.Fprintf(wr, "preview:\t%s layer over %s source\n", layer.Type, layer.Source.Type)
	}

	for _, l := range rec.DownloadLinks() {
		fmt.Fprintf(wr, "download:\t%s\t%s\n", l.Label, l.URL)
	}

	for _, l := range rec.References.MetadataLinks() {
		fmt.Fprintf(wr, "metadata:\t%s\t%s\n", l.Label, l.URL)
	}

	for _, f := range rec.MetadataFields() {

		for _, v := range f.Values {
			fmt.Fprintf(wr, "field:\t%s\t%s\n", f.Label, v)
		}
	}

	return nil
}
