package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	tier  ModelTier
	reply string
	err   error
}

func (s *stubClient) GenerateContent(_ context.Context, _ string, tier ModelTier) (string, error) {
	s.tier = tier
	return s.reply, s.err
}

func (s *stubClient) Close() error { return nil }

func TestTierGenerator(t *testing.T) {
	client := &stubClient{reply: "Engineer"}
	var gen TextGenerator = &TierGenerator{Client: client, Tier: TierStandard}

	got, err := gen.Generate(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "Engineer", got)
	assert.Equal(t, TierStandard, client.tier)
}

func TestTierGenerator_PropagatesError(t *testing.T) {
	cause := errors.New("quota exceeded")
	gen := &TierGenerator{Client: &stubClient{err: &APICallError{Message: "failed", Cause: cause}}}

	_, err := gen.Generate(context.Background(), "prompt")

	var apiErr *APICallError
	require.ErrorAs(t, err, &apiErr)
	assert.ErrorIs(t, err, cause)
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), nil, "")

	var apiErr *APICallError
	assert.ErrorAs(t, err, &apiErr)
}

func TestExtractTextFromResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text("Senior "), genai.Text("Engineer")}},
		}},
	}

	got, err := extractTextFromResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer", got)
}

func TestExtractTextFromResponse_Empty(t *testing.T) {
	_, err := extractTextFromResponse(&genai.GenerateContentResponse{})

	var emptyErr *EmptyResponseError
	assert.ErrorAs(t, err, &emptyErr)

	_, err = extractTextFromResponse(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
	})
	assert.ErrorAs(t, err, &emptyErr)
}
