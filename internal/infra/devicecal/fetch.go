package devicecal

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"tattooer/internal/domain/service"

	"github.com/pkg/errors"
)

// feedCache is a disk-backed HTTP cache keyed by a hash of the feed URL.
// Each feed gets its own directory holding the last body and the validator
// headers (ETag / Last-Modified) used for conditional requests.
type feedCache struct {
	baseDir string
}

type feedCacheMeta struct {
	ETag         string    `json:"etag,omitempty"`
	LastModified string    `json:"lastModified,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func newFeedCache(baseDir string) *feedCache {
	if baseDir == "" {
		baseDir = "./var/feed-cache"
	}

	return &feedCache{baseDir: baseDir}
}

func (c *feedCache) dir(feedURL string) string {
	sum := sha256.Sum256([]byte(feedURL))

	return filepath.Join(c.baseDir, hex.EncodeToString(sum[:8]))
}

func (c *feedCache) load(feedURL string) (feedCacheMeta, []byte) {
	dir := c.dir(feedURL)

	var meta feedCacheMeta
	if data, err := os.ReadFile(filepath.Join(dir, "meta.json")); err == nil {
		_ = json.Unmarshal(data, &meta)
	}

	body, _ := os.ReadFile(filepath.Join(dir, "body.ics"))

	return meta, body
}

func (c *feedCache) save(feedURL string, meta feedCacheMeta, body []byte) error {
	dir := c.dir(feedURL)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrap(err, "failed to create feed cache directory")
	}

	// Body first so meta never points at a missing body.
	if err := os.WriteFile(filepath.Join(dir, "body.ics"), body, 0o600); err != nil {
		return errors.Wrap(err, "failed to write cached feed body")
	}

	meta.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(&meta)
	if err != nil {
		return errors.Wrap(err, "failed to encode feed cache metadata")
	}

	return errors.Wrap(os.WriteFile(filepath.Join(dir, "meta.json"), data, 0o600),
		"failed to write feed cache metadata")
}

// fetch retrieves the feed body, honoring cache validators and falling back
// to the cached body when the feed host is unreachable. An authorization
// rejection maps to service.ErrCalendarPermissionDenied.
func (p *FeedProvider) fetch(ctx context.Context, feedURL string) ([]byte, error) {
	meta, cachedBody := p.cache.load(feedURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build feed request")
	}
	if meta.ETag != "" {
		req.Header.Set("If-None-Match", meta.ETag)
	}
	if meta.LastModified != "" {
		req.Header.Set("If-Modified-Since", meta.LastModified)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		if len(cachedBody) > 0 {
			return cachedBody, nil
		}

		return nil, errors.Wrap(err, "failed to fetch calendar feed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read calendar feed")
		}

		if err := p.cache.save(feedURL, feedCacheMeta{
			ETag:         resp.Header.Get("ETag"),
			LastModified: resp.Header.Get("Last-Modified"),
		}, body); err != nil {
			p.logger.Warn("Failed to cache calendar feed", "error", err)
		}

		return body, nil

	case resp.StatusCode == http.StatusNotModified:
		if len(cachedBody) == 0 {
			return nil, errors.New("feed returned 304 but no cached body exists")
		}

		return cachedBody, nil

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, service.ErrCalendarPermissionDenied

	default:
		if len(cachedBody) > 0 {
			return cachedBody, nil
		}

		return nil, errors.Errorf("feed returned status %d", resp.StatusCode)
	}
}
