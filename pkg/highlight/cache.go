package highlight

import (
	"strconv"

	gocache "github.com/patrickmn/go-cache"

	"github.com/yaklabco/mdlive/pkg/scan"
)

// cachedLine holds the spans of a line together with the text they were
// scanned from, so a stale entry is detected by comparing text.
type cachedLine struct {
	text  string
	spans []scan.Span
}

// CacheStats counts span cache lookups.
type CacheStats struct {
	Hits    int
	Misses  int
	Evicted int
}

// SpanCache maps line indexes to the spans of their last-known content.
// An entry is replaced wholesale whenever its line is rescanned, and entries
// beyond the current line count are evicted, so the cache never outgrows
// the document.
type SpanCache struct {
	scanner *scan.Scanner
	cache   *gocache.Cache
	lines   int
	stats   CacheStats
}

// NewSpanCache creates an empty cache that scans with scanner.
// A nil scanner uses the default grammar.
func NewSpanCache(scanner *scan.Scanner) *SpanCache {
	if scanner == nil {
		scanner = scan.NewScanner()
	}
	return &SpanCache{
		scanner: scanner,
		// Entries never expire; Truncate evicts them explicitly.
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

func lineKey(index int) string {
	return strconv.Itoa(index)
}

// Spans returns the spans of a line, rescanning only when the cached text
// differs from text. The second result reports whether the line was rescanned.
func (c *SpanCache) Spans(index int, text string) ([]scan.Span, bool) {
	if value, found := c.cache.Get(lineKey(index)); found {
		if entry, ok := value.(*cachedLine); ok && entry.text == text {
			c.stats.Hits++
			return entry.spans, false
		}
	}

	c.stats.Misses++
	spans := c.scanner.Scan(text)
	c.cache.Set(lineKey(index), &cachedLine{text: text, spans: spans}, gocache.NoExpiration)
	if index >= c.lines {
		c.lines = index + 1
	}
	return spans, true
}

// Truncate evicts every entry at or beyond lineCount.
func (c *SpanCache) Truncate(lineCount int) {
	for index := max(lineCount, 0); index < c.lines; index++ {
		if _, found := c.cache.Get(lineKey(index)); found {
			c.cache.Delete(lineKey(index))
			c.stats.Evicted++
		}
	}
	if lineCount < c.lines {
		c.lines = max(lineCount, 0)
	}
}

// Len returns the number of cached lines.
func (c *SpanCache) Len() int {
	return c.cache.ItemCount()
}

// Stats returns the lookup counters.
func (c *SpanCache) Stats() CacheStats {
	return c.stats
}

// Reset drops every entry and clears the counters.
func (c *SpanCache) Reset() {
	c.cache.Flush()
	c.lines = 0
	c.stats = CacheStats{}
}
