package inspect

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sfomuseum/go-flags/flagset"
)

var record_url string
var reader_uri string
var verbose bool

func DefaultFlagSet(ctx context.Context) *flag.FlagSet {

	fs := flagset.NewFlagSet("inspect")

	fs.StringVar(&record_url, "record-url", "", "A URL to fetch an Aardvark record from.")

	fs.StringVar(&reader_uri, "reader-uri", "", "A valid whosonfirst/go-reader URI to read records from. Record paths are passed as arguments.")

	fs.BoolVar(&verbose, "verbose", false, "Enable verbose (debug) logging.")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Inspect one or more OpenGeoMetadata (Aardvark) records.\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\t %s [options] path(N) path(N)\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Valid options are:\n")
		fs.PrintDefaults()
	}

	return fs
}
