package mollie

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultMaxImageBytes = 1 << 20

// ImageFetcher downloads method and issuer icons from Mollie's CDN.
type ImageFetcher struct {
	httpClient *http.Client
	maxBytes   int64
}

func NewImageFetcher(timeout time.Duration) *ImageFetcher {
	return &ImageFetcher{
		httpClient: &http.Client{Timeout: timeout},
		maxBytes:   defaultMaxImageBytes,
	}
}

// Fetch returns the image body. Bodies over the size cap are an error.
func (f *ImageFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image %s returned status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("error reading image: %w", err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("image %s exceeds %d bytes", url, f.maxBytes)
	}
	return data, nil
}
