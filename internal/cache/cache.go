package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type CachedResponse struct {
	Key       string          `json:"key"`
	Response  json.RawMessage `json:"response"`
	CreatedAt time.Time       `json:"created_at"`
}

// Cache stores JSON responses as one file per key under dir. Entries older
// than ttl are treated as misses and removed on access.
type Cache struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

func NewCache(dir string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating cache directory: %w", err)
	}

	c := &Cache{
		dir: dir,
		ttl: ttl,
		now: time.Now,
	}

	_ = c.CleanExpired()

	return c, nil
}

// Key hashes parts into a stable file-safe key. Parts are length prefixed
// so ("ab","c") and ("a","bc") differ.
func (c *Cache) Key(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		fmt.Fprintf(&b, "%d:%s;", len(p), p)
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}

// Get returns the stored response for key and whether it was a fresh hit.
func (c *Cache) Get(key string) (json.RawMessage, bool, error) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("error reading cache: %w", err)
	}

	var cached CachedResponse
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false, fmt.Errorf("error decoding cache entry: %w", err)
	}

	if c.now().Sub(cached.CreatedAt) > c.ttl {
		_ = os.Remove(c.path(key))
		return nil, false, nil
	}

	return cached.Response, true, nil
}

func (c *Cache) Set(key string, response interface{}) error {
	responseData, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("error encoding response: %w", err)
	}

	data, err := json.MarshalIndent(CachedResponse{
		Key:       key,
		Response:  responseData,
		CreatedAt: c.now(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding cache entry: %w", err)
	}

	if err := os.WriteFile(c.path(key), data, 0644); err != nil {
		return fmt.Errorf("error writing cache: %w", err)
	}

	return nil
}

// CleanExpired removes entries whose file is older than the ttl.
func (c *Cache) CleanExpired() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return fmt.Errorf("error reading cache directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if c.now().Sub(info.ModTime()) > c.ttl {
			_ = os.Remove(filepath.Join(c.dir, entry.Name()))
		}
	}

	return nil
}
