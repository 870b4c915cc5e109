package chunking

import (
	"sync"

	"github.com/studypdf/studypdf/internal/core/domain"
)

// Cache memoizes split results per document and configuration. Put
// replaces the whole entry atomically; the configuration is part of the
// key, so a config change can never serve chunks split under another
// configuration.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]domain.Chunk
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string][]domain.Chunk)}
}

func cacheKey(documentID string, cfg domain.ChunkConfig) string {
	return documentID + "|" + cfg.Key()
}

func (c *Cache) Get(documentID string, cfg domain.ChunkConfig) ([]domain.Chunk, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	chunks, ok := c.entries[cacheKey(documentID, cfg)]
	return chunks, ok
}

func (c *Cache) Put(documentID string, cfg domain.ChunkConfig, chunks []domain.Chunk) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(documentID, cfg)] = chunks
}
