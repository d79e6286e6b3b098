package ingestion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_JSONMarshaling(t *testing.T) {
	metadata := &Metadata{
		Path:      "resume.pdf",
		Format:    string(FormatPDF),
		Timestamp: "2024-01-01T00:00:00Z",
		Hash:      "abcd1234",
		Bytes:     2048,
		Pages:     2,
	}

	jsonBytes, err := metadata.ToJSON()
	require.NoError(t, err)

	var unmarshaled Metadata
	require.NoError(t, json.Unmarshal(jsonBytes, &unmarshaled))
	assert.Equal(t, *metadata, unmarshaled)
}

func TestComputeHash(t *testing.T) {
	hash1 := computeHash("test content")
	hash2 := computeHash("different content")

	assert.Len(t, hash1, 64)
	assert.NotEqual(t, hash1, hash2)
	assert.Equal(t, hash1, computeHash("test content"))
}

func TestNewMetadata(t *testing.T) {
	meta := NewMetadata("content", "cv.md", FormatMarkdown)

	assert.Equal(t, "cv.md", meta.Path)
	assert.Equal(t, "markdown", meta.Format)
	assert.Equal(t, computeHash("content"), meta.Hash)

	_, err := time.Parse(time.RFC3339, meta.Timestamp)
	assert.NoError(t, err)
}
