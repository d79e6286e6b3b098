package pipeline

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-extractor/internal/types"
)

// DefaultConcurrency bounds ProcessBatch when no limit is given
const DefaultConcurrency = 4

// BatchDocument is one input to ProcessBatch
type BatchDocument struct {
	Source string // file path or caller label
	Text   string
}

// BatchItem is the outcome for one document. Result is nil only when the
// context was cancelled before the document was processed.
type BatchItem struct {
	ID     string                  `json:"id"`
	Source string                  `json:"source"`
	Result *types.ExtractionResult `json:"result,omitempty"`
	Error  string                  `json:"error,omitempty"`
}

// ProcessBatch runs Process over docs with at most concurrency in flight.
// Items are returned in input order. Input errors are recorded per item and
// never stop the batch.
func (e *Engine) ProcessBatch(ctx context.Context, docs []BatchDocument, concurrency int) []BatchItem {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	items := make([]BatchItem, len(docs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, doc := range docs {
		items[i] = BatchItem{ID: uuid.NewString(), Source: doc.Source}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				items[i].Error = err.Error()
				return nil
			}
			result, err := e.Process(gCtx, doc.Text)
			items[i].Result = result
			if err != nil {
				var inputErr *InputError
				if !errors.As(err, &inputErr) {
					e.logger.Warn("batch item failed", zap.String("source", doc.Source), zap.Error(err))
				}
				items[i].Error = err.Error()
			}
			return nil
		})
	}
	_ = g.Wait()
	return items
}
