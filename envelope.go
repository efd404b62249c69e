package scrub

import (
	"time"

	"github.com/google/uuid"
)

// Status classifies the outcome of an Execute call.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Envelope is the uniform response wrapper returned by Execute. Success
// envelopes carry a Result and no Error; error envelopes carry an Error
// and no Result.
type Envelope struct {
	ID                    uuid.UUID `json:"id"`
	Status                Status    `json:"status"`
	Operation             Operation `json:"operation"`
	Result                any       `json:"result,omitempty"`
	ProcessingTimeSeconds float64   `json:"processing_time_seconds"`
	Timestamp             time.Time `json:"timestamp"`
	Error                 string    `json:"error,omitempty"`
}

// OK reports whether the envelope describes a successful call.
func (e Envelope) OK() bool {
	return e.Status == StatusSuccess
}

// TransformResult is the payload produced by transforming operations.
// Lengths are measured in runes.
type TransformResult struct {
	Output         string         `json:"output"`
	OriginalLength int            `json:"original_length"`
	FinalLength    int            `json:"final_length"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// BatchItemResult records the outcome of one batch item at its input index.
type BatchItemResult struct {
	Index  int    `json:"index"`
	Status Status `json:"status"`
	Input  string `json:"input"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// BatchResult aggregates a whole batch run. Results always holds one entry
// per input item, in input order.
type BatchResult struct {
	Total      int               `json:"total"`
	Successful int               `json:"successful"`
	Failed     int               `json:"failed"`
	Results    []BatchItemResult `json:"results"`
}
