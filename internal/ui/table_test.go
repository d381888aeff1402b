package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanSize(t *testing.T) {
	assert.Equal(t, "0 B", HumanSize(0))
	assert.Equal(t, "512 B", HumanSize(512))
	assert.Equal(t, "1.0 KB", HumanSize(1024))
	assert.Equal(t, "1.5 MB", HumanSize(1572864))
	assert.Equal(t, "2.0 GB", HumanSize(2147483648))
}

func TestCacheHint(t *testing.T) {
	assert.Equal(t, "immutable", cacheHint("assets/app.js"))
	assert.Equal(t, "no-cache", cacheHint("index.html"))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "ab...", padRight("abcdefgh", 5))
	// wide runes count by display width
	assert.Equal(t, "日本  ", padRight("日本", 6))
}
