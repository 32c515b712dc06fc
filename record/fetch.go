package record

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/tidwall/gjson"
	"github.com/whosonfirst/go-reader/v2"
)

// FetchRecord retrieves and normalizes an Aardvark record from 'record_url',
// which is expected to return `application/json`. Unlike the parse methods in
// this package, network problems are returned to the caller as errors; they
// are a tooling concern, not a record-shape concern.
func FetchRecord(ctx context.Context, cl *http.Client, record_url string) (*Record, error) {

	logger := slog.Default()
	logger = logger.With("url", record_url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, record_url, nil)

	if err != nil {
		return nil, fmt.Errorf("Failed to create record request, %w", err)
	}

	req.Header.Set("Accept", "application/json")

	rsp, err := cl.Do(req)

	if err != nil {
		return nil, fmt.Errorf("Failed to fetch record, %w", err)
	}

	defer rsp.Body.Close()

	if rsp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Record request for %s did not succeed, %d", record_url, rsp.StatusCode)
	}

	body, err := io.ReadAll(rsp.Body)

	if err != nil {
		return nil, fmt.Errorf("Failed to read record body, %w", err)
	}

	logger.Debug("Fetched record", "id", gjson.GetBytes(body, "id").String())

	return UnmarshalRecord(body)
}

// LoadRecord reads and normalizes an Aardvark record from 'path' using 'r'.
func LoadRecord(ctx context.Context, r reader.Reader, path string) (*Record, error) {

	rsc, err := r.Read(ctx, path)

	if err != nil {
		return nil, fmt.Errorf("Failed to read %s, %w", path, err)
	}

	defer rsc.Close()

	body, err := io.ReadAll(rsc)

	if err != nil {
		return nil, fmt.Errorf("Failed to read body for %s, %w", path, err)
	}

	return UnmarshalRecord(body)
}
