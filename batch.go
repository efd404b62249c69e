package scrub

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/scrub/pkg/async"
)

// handleBatchSanitize applies one single-item operation to every element
// of the items list. Items are isolated: one failure is recorded at its
// index and never aborts the batch, so the result list always matches the
// input list in length and order.
func handleBatchSanitize(e *Engine, _ string, params map[string]any) (any, error) {
	items, err := sliceParam(params, "items")
	if err != nil {
		return nil, err
	}
	opName, err := stringParam(params, "operation")
	if err != nil {
		return nil, err
	}
	nested, err := optionalMapParam(params, "params")
	if err != nil {
		return nil, err
	}

	op := Operation(opName)
	spec, ok := registry[op]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, opName)
	}
	if !op.Batchable() {
		return nil, fmt.Errorf("%w: %s", ErrNotBatchable, op)
	}

	mapped := async.Map(context.Background(), items, e.batchWorkers, func(_ context.Context, item any) (any, error) {
		return e.runBatchItem(spec, nested, item)
	})

	batch := BatchResult{
		Total:   len(items),
		Results: make([]BatchItemResult, len(items)),
	}
	for i, res := range mapped {
		record := BatchItemResult{Index: i}
		if s, ok := items[i].(string); ok {
			record.Input = s
		}
		if res.Err != nil {
			record.Status = StatusError
			record.Error = res.Err.Error()
			batch.Failed++
		} else {
			record.Status = StatusSuccess
			record.Result = res.Value
			batch.Successful++
		}
		batch.Results[i] = record
	}

	e.log.Debug("batch completed",
		slog.String("operation", string(op)),
		slog.Int("total", batch.Total),
		slog.Int("successful", batch.Successful),
		slog.Int("failed", batch.Failed),
	)

	return batch, nil
}

// runBatchItem executes the nested operation for one item. The nested
// params map is shared across items and must only be read.
func (e *Engine) runBatchItem(spec operationSpec, nested map[string]any, item any) (any, error) {
	content, ok := item.(string)
	if !ok {
		return nil, fmt.Errorf("%w: batch item must be a string, got %T", ErrInvalidParameter, item)
	}
	if err := e.checkContentLength(content); err != nil {
		return nil, err
	}
	return e.invoke(spec, content, nested)
}
