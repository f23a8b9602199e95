package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestCache(t *testing.T, ttl time.Duration) (*Cache, string) {
	dir := filepath.Join(t.TempDir(), "cache")
	c, err := NewCache(dir, ttl)
	require.NoError(t, err)
	return c, dir
}

func TestNewCache(t *testing.T) {
	// Act
	c, dir := setupTestCache(t, time.Hour)

	// Assert
	assert.NotNil(t, c)
	assert.DirExists(t, dir)
}

func TestCache_Key(t *testing.T) {
	c := &Cache{}

	k1 := c.Key("gemini-2.5-flash", "prompt")
	k2 := c.Key("gemini-2.5-flash", "prompt")
	k3 := c.Key("gemini-2.5-flas", "hprompt")

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
	assert.Len(t, k1, 64)
}

func TestCache_SetAndGet(t *testing.T) {
	// Arrange
	c, _ := setupTestCache(t, time.Hour)
	key := c.Key("roast", "code")

	// Act
	require.NoError(t, c.Set(key, "the verdict"))
	resp, found, err := c.Get(key)

	// Assert
	require.NoError(t, err)
	require.True(t, found)
	var got string
	require.NoError(t, json.Unmarshal(resp, &got))
	assert.Equal(t, "the verdict", got)
}

func TestCache_Get_NotFound(t *testing.T) {
	c, _ := setupTestCache(t, time.Hour)

	_, found, err := c.Get("missing")

	assert.NoError(t, err)
	assert.False(t, found)
}

func TestCache_Get_Expired(t *testing.T) {
	// Arrange
	c, dir := setupTestCache(t, time.Hour)
	start := time.Now()
	c.now = func() time.Time { return start }
	require.NoError(t, c.Set("old", "data"))

	// Act
	c.now = func() time.Time { return start.Add(2 * time.Hour) }
	_, found, err := c.Get("old")

	// Assert
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoFileExists(t, filepath.Join(dir, "old.json"))
}

func TestCache_CleanExpired(t *testing.T) {
	// Arrange
	c, dir := setupTestCache(t, time.Hour)
	require.NoError(t, c.Set("fresh", "data"))
	require.NoError(t, c.Set("stale", "data"))
	stalePath := filepath.Join(dir, "stale.json")
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stalePath, old, old))

	// Act
	err := c.CleanExpired()

	// Assert
	assert.NoError(t, err)
	assert.NoFileExists(t, stalePath)
	assert.FileExists(t, filepath.Join(dir, "fresh.json"))
}

func TestCache_Get_CorruptEntry(t *testing.T) {
	c, dir := setupTestCache(t, time.Hour)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("invalid json{"), 0644))

	_, found, err := c.Get("bad")

	assert.Error(t, err)
	assert.False(t, found)
}
