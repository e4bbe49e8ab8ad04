package sweep

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/ahmetayrnc/3d-sweep-line/internal/cache"
)

// CacheStats reports triangulation cache activity.
type CacheStats = cache.Stats

// CachingTriangulator memoizes another triangulator by exact outline.
// Cap outlines rarely change while a curve is being edited, so an Extruder
// recomputing on every edit can skip re-triangulating them.
//
// Failed triangulations are not cached. CachingTriangulator is safe for
// concurrent use if the wrapped triangulator is.
type CachingTriangulator struct {
	tri   Triangulator
	cache *cache.LRU[string, []int]
}

// NewCachingTriangulator wraps tri with a cache of up to capacity outlines.
// A nil tri uses EarClipper; a non-positive capacity uses a small default.
func NewCachingTriangulator(tri Triangulator, capacity int) *CachingTriangulator {
	if tri == nil {
		tri = EarClipper{}
	}
	return &CachingTriangulator{tri: tri, cache: cache.NewLRU[string, []int](capacity)}
}

// Triangulate implements Triangulator. The returned slice is a copy the
// caller may modify.
func (c *CachingTriangulator) Triangulate(p Polygon) ([]int, error) {
	key := outlineKey(p)
	if tris, ok := c.cache.Get(key); ok {
		return append([]int(nil), tris...), nil
	}
	tris, err := c.tri.Triangulate(p)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, append([]int(nil), tris...))
	return tris, nil
}

// Stats reports cache hits, misses and evictions.
func (c *CachingTriangulator) Stats() CacheStats {
	return c.cache.Stats()
}

// outlineKey encodes the exact coordinates of p.
func outlineKey(p Polygon) string {
	var b strings.Builder
	b.Grow(16 * len(p))
	var buf [16]byte
	for _, v := range p {
		binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(v.X))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(v.Y))
		b.Write(buf[:])
	}
	return b.String()
}
