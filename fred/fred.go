// Package fred locates the FRED consumer-price-index series text file,
// preferring a local copy and downloading it otherwise.
package fred

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/etnz/retroprice/logging"
)

// SeriesURL is the canonical location of the CPIAUCSL series.
const SeriesURL = "http://research.stlouisfed.org/fred2/data/CPIAUCSL.txt"

// Open returns the series text: the file at path when it exists, the
// download from url otherwise. A successful download is first saved to
// path (unless path is empty) and re-opened from there, so the next run
// needs no network. Callers own the returned reader.
func Open(path, url string, log *logging.Logger) (io.ReadCloser, error) {
	if log == nil {
		log = logging.Nop()
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			log.Debug("using local series file", "path", path)
			return os.Open(path)
		}
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}
	// Ask for the plain body: the saved file must be the series text
	// byte for byte, not a compressed variant.
	req.Header.Set("Accept-Encoding", "identity")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading series from %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("downloading series from %s: received status %s", url, resp.Status)
	}
	if path == "" {
		return resp.Body, nil
	}
	defer resp.Body.Close()

	out, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("saving series to %s: %w", path, err)
	}
	n, err := io.Copy(out, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("saving series to %s: %w", path, err)
	}
	log.Info("series downloaded", "url", url, "path", path, "bytes", n)
	return os.Open(path)
}
