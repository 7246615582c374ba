package text

import "sync"

// SyncRenderer is a GlyphRenderer that may be shared between goroutines.
//
// Every cache access is serialized, including hits, because a hit
// reorders the recency list. Compositing happens outside the lock.
type SyncRenderer struct {
	mu sync.Mutex
	r  *GlyphRenderer
}

// NewSyncRenderer creates a renderer safe for concurrent use.
func NewSyncRenderer(opts ...RendererOption) *SyncRenderer {
	return &SyncRenderer{r: NewGlyphRenderer(opts...)}
}

// Render is the concurrent form of GlyphRenderer.Render.
func (s *SyncRenderer) Render(view FontView, size uint32, gid GlyphID, text, dest Color) (GlyphImage, error) {
	mask, err := s.RenderMask(view, size, gid)
	if err != nil {
		return GlyphImage{}, err
	}
	if mask.Empty() {
		return GlyphImage{Left: mask.Left, Top: mask.Top}, nil
	}
	return s.r.composite(mask, text, dest), nil
}

// RenderMask is the concurrent form of GlyphRenderer.RenderMask.
func (s *SyncRenderer) RenderMask(view FontView, size uint32, gid GlyphID) (GlyphMask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.RenderMask(view, size, gid)
}

// Stats returns the cache statistics.
func (s *SyncRenderer) Stats() GlyphCacheStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.cache.Stats()
}

// ResetStats zeroes the cache counters.
func (s *SyncRenderer) ResetStats() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.cache.ResetStats()
}

// Len returns the number of cached masks.
func (s *SyncRenderer) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.cache.Len()
}
