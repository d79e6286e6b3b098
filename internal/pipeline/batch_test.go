package pipeline

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessBatch(t *testing.T) {
	engine := newTestEngine(Options{})
	docs := []BatchDocument{
		{Source: "a.txt", Text: sampleResume},
		{Source: "b.txt", Text: ""},
		{Source: "c.txt", Text: noRoleResume},
	}

	items := engine.ProcessBatch(context.Background(), docs, 2)
	require.Len(t, items, 3)

	ids := map[string]bool{}
	for i, item := range items {
		assert.Equal(t, docs[i].Source, item.Source)
		assert.NotEmpty(t, item.ID)
		ids[item.ID] = true
		require.NotNil(t, item.Result)
	}
	assert.Len(t, ids, 3)

	assert.Empty(t, items[0].Error)
	assert.Equal(t, "Senior Software Engineer", items[0].Result.CurrentRole.Role)

	assert.NotEmpty(t, items[1].Error)
	assert.False(t, items[1].Result.Validation.IsValid)

	assert.Empty(t, items[2].Error)
	assert.True(t, items[2].Result.Validation.IsValid)
}

func TestProcessBatch_SharedEngineIsConsistent(t *testing.T) {
	engine := newTestEngine(Options{CacheSize: 2})
	docs := make([]BatchDocument, 16)
	for i := range docs {
		text := sampleResume
		if i%2 == 1 {
			text = noRoleResume
		}
		docs[i] = BatchDocument{Source: "doc", Text: text}
	}

	items := engine.ProcessBatch(context.Background(), docs, 8)

	want := make([]string, 2)
	for i, item := range items {
		require.NotNil(t, item.Result)
		data, err := json.Marshal(item.Result)
		require.NoError(t, err)
		if want[i%2] == "" {
			want[i%2] = string(data)
			continue
		}
		assert.JSONEq(t, want[i%2], string(data))
	}
	assert.LessOrEqual(t, engine.CacheStats()["sections"].Size, 2)
}

func TestProcessBatch_CancelledContext(t *testing.T) {
	engine := newTestEngine(Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := engine.ProcessBatch(ctx, []BatchDocument{{Source: "a", Text: sampleResume}}, 0)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].Result)
	assert.Equal(t, context.Canceled.Error(), items[0].Error)
}

func TestProcessBatch_Empty(t *testing.T) {
	engine := newTestEngine(Options{})
	assert.Empty(t, engine.ProcessBatch(context.Background(), nil, 1))
}
