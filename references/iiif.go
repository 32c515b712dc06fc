package references

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

const iiifPresentation3Context string = "http://iiif.io/api/presentation/3/context.json"

// FetchManifest retrieves the record's IIIF Presentation manifest, caching the
// body on 'r' for the lifetime of the record. Network or HTTP failures are
// logged and return nil; a failed fetch also clears any previously cached
// manifest rather than leaving it stale.
func (r *References) FetchManifest(ctx context.Context) []byte {

	if r.manifest != nil {
		return r.manifest
	}

	manifest_url, ok := r.IIIFManifest()

	if !ok {
		return nil
	}

	logger := slog.Default()
	logger = logger.With("url", manifest_url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, manifest_url, nil)

	if err != nil {
		logger.Warn("Failed to create manifest request", "error", err)
		r.manifest = nil
		return nil
	}

	rsp, err := http.DefaultClient.Do(req)

	if err != nil {
		logger.Warn("Failed to fetch manifest", "error", err)
		r.manifest = nil
		return nil
	}

	defer rsp.Body.Close()

	if rsp.StatusCode != http.StatusOK {
		logger.Warn("Manifest request did not succeed", "status", rsp.StatusCode)
		r.manifest = nil
		return nil
	}

	body, err := io.ReadAll(rsp.Body)

	if err != nil {
		logger.Warn("Failed to read manifest body", "error", err)
		r.manifest = nil
		return nil
	}

	logger.Debug("Fetched manifest", "bytes", len(body))

	r.manifest = body
	return body
}

// IIIFImages returns the ordered list of IIIF image-service `info.json` URLs
// for the record. A direct IIIF image reference short-circuits manifest
// resolution entirely; otherwise the manifest is fetched (if not cached) and
// traversed according to its Presentation API version. The returned order
// follows manifest traversal order, which is the paging order shown to users.
func (r *References) IIIFImages(ctx context.Context) []string {

	if image_url, ok := r.IIIFImage(); ok {
		return []string{image_url}
	}

	body := r.FetchManifest(ctx)

	if body == nil {
		return []string{}
	}

	if isPresentation3(body) {
		return imageServicesV3(body)
	}

	return imageServicesV2(body)
}

// The @context field may be a single URI or a list of them. Absence of the
// Presentation 3 context implies version 2.
func isPresentation3(body []byte) bool {

	for _, ctx_rsp := range gjson.GetBytes(body, "@context").Array() {

		if ctx_rsp.String() == iiifPresentation3Context {
			return true
		}
	}

	return false
}

// Presentation 2: sequences → canvases → images → resource, keeping resources
// typed `dctypes:Image` and emitting their image service URL.
func imageServicesV2(body []byte) []string {

	urls := make([]string, 0)

	for _, seq := range gjson.GetBytes(body, "sequences").Array() {

		for _, canvas := range seq.Get("canvases").Array() {

			for _, image := range canvas.Get("images").Array() {

				resource := image.Get("resource")

				if resource.Get("@type").String() != "dctypes:Image" {
					continue
				}

				for _, svc := range resource.Get("service").Array() {

					id := serviceId(svc)

					if id != "" {
						urls = append(urls, infoURL(id))
					}
				}
			}
		}
	}

	return urls
}

// Presentation 3: items (canvases) → items (annotation pages) → items
// (annotations) → body → service. The annotation body may be a single object
// or a list; gjson's Array() normalizes both.
func imageServicesV3(body []byte) []string {

	urls := make([]string, 0)

	for _, canvas := range gjson.GetBytes(body, "items").Array() {

		for _, page := range canvas.Get("items").Array() {

			for _, anno := range page.Get("items").Array() {

				for _, anno_body := range anno.Get("body").Array() {

					for _, svc := range anno_body.Get("service").Array() {

						id := serviceId(svc)

						if id != "" {
							urls = append(urls, infoURL(id))
						}
					}
				}
			}
		}
	}

	return urls
}

// Image services identify themselves with `@id` (v2) or `id` (v3).
func serviceId(svc gjson.Result) string {

	id := svc.Get("@id").String()

	if id == "" {
		id = svc.Get("id").String()
	}

	return id
}

func infoURL(service_id string) string {
	return strings.TrimSuffix(service_id, "/") + "/info.json"
}
