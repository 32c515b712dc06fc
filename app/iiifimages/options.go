package iiifimages

import (
	"context"
	"flag"
	"fmt"

	"github.com/sfomuseum/go-flags/flagset"
)

type RunOptions struct {
	Verbose   bool
	RecordURL string
	ReaderURI string
	Paths     []string
}

func RunOptionsFromFlagSet(ctx context.Context, fs *flag.FlagSet) (*RunOptions, error) {

	flagset.Parse(fs)

	err := flagset.SetFlagsFromEnvVars(fs, "OGM")

	if err != nil {
		return nil, fmt.Errorf("Failed to set flags from environment variables, %w", err)
	}

	opts := &RunOptions{
		Verbose:   verbose,
		RecordURL: record_url,
		ReaderURI: reader_uri,
		Paths:     fs.Args(),
	}

	return opts, nil
}
