package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.2.3", "2026-10-01", "abc123")

	assert.Equal(t, "1.2.3", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "Build version: 1.2.3\nBuild date: 2026-10-01\nBuild commit: abc123\n", info.String())
}

func TestNewAppBuildInfo_MissingValues(t *testing.T) {
	info := NewAppBuildInfo("", "", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@example.com", NormalizeEmail("  Alice@Example.COM "))
}

func TestCountWords(t *testing.T) {
	tests := map[string]int{
		"":                      0,
		"   \n\t ":              0,
		"hello":                 1,
		"hello world":           2,
		" spaced   out\twords\n": 3,
	}
	for content, want := range tests {
		assert.Equal(t, want, CountWords(content), "content %q", content)
	}
}

func TestNewNote(t *testing.T) {
	n := NewNote(3, "one two three", time.Time{})

	assert.Equal(t, int64(3), n.UserID)
	assert.Equal(t, 3, n.WordCount)
	assert.Equal(t, "one two three", n.Content)
}
