package weatherfile

import (
	"context"

	"github.com/couchcryptid/weatherman/internal/domain"
	"github.com/couchcryptid/weatherman/internal/observability"
	"github.com/golang/groupcache/lru"
)

// CachedReader wraps a FileReader with an in-memory LRU keyed by path, so a
// month requested by several reports in one run is parsed once. It is not safe
// for concurrent use.
type CachedReader struct {
	inner   FileReader
	files   *lru.Cache
	metrics *observability.Metrics
}

// NewCachedReader creates a cache decorator holding at most maxFiles parsed files.
func NewCachedReader(inner FileReader, maxFiles int, metrics *observability.Metrics) *CachedReader {
	return &CachedReader{
		inner:   inner,
		files:   lru.New(maxFiles),
		metrics: metrics,
	}
}

// ReadFiles reads every source in order through the cache.
func (c *CachedReader) ReadFiles(ctx context.Context, sources []domain.Source) ([]domain.Record, error) {
	return ReadAll(ctx, c, sources)
}

// ReadFile returns the cached records for src.Path, parsing the file on a
// miss. Failed reads are not cached. Records are never mutated after parsing,
// so cached slices are shared.
func (c *CachedReader) ReadFile(ctx context.Context, src domain.Source) ([]domain.Record, error) {
	if v, ok := c.files.Get(src.Path); ok {
		c.metrics.FileCache.WithLabelValues("hit").Inc()
		return v.([]domain.Record), nil
	}
	c.metrics.FileCache.WithLabelValues("miss").Inc()

	recs, err := c.inner.ReadFile(ctx, src)
	if err != nil {
		return nil, err
	}
	c.files.Add(src.Path, recs)
	return recs, nil
}

// Cached reports how many parsed files are held.
func (c *CachedReader) Cached() int { return c.files.Len() }
