package scrub

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/scrub/pkg/patterns"
)

// DefaultMaxContentLength is the byte ceiling applied to incoming content
// unless overridden. The ceiling bounds worst-case pattern-matching cost
// on attacker-supplied input.
const DefaultMaxContentLength = 1 << 20

// defaultProfanityWords backs filter_profanity when neither the engine
// option nor the request supplies a word list.
var defaultProfanityWords = []string{"fuck", "shit", "damn", "ass", "bitch"}

// contentKeyFallback is accepted for any operation whose typed content key
// is absent from the request.
const contentKeyFallback = "content"

// Engine dispatches sanitization and validation operations. It holds no
// per-call state and is safe for unlimited concurrent Execute calls.
type Engine struct {
	maxContentLength int
	batchWorkers     int
	profanityWords   []string
	profanity        *regexp.Regexp
	log              *slog.Logger
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithMaxContentLength sets the byte ceiling for incoming content. Zero or
// a negative value disables the check.
func WithMaxContentLength(n int) Option {
	return func(e *Engine) {
		if n < 0 {
			n = 0
		}
		e.maxContentLength = n
	}
}

// WithProfanityWords replaces the default profanity word list. Calling it
// with no words disables default filtering entirely; requests can still
// supply their own list per call.
func WithProfanityWords(words ...string) Option {
	return func(e *Engine) {
		e.profanityWords = words
	}
}

// WithBatchWorkers sets how many batch items run concurrently. Values of
// one or less keep batch runs sequential.
func WithBatchWorkers(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			n = 1
		}
		e.batchWorkers = n
	}
}

// WithLogger attaches a logger for per-operation debug records. A nil
// logger is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// New builds an Engine. The profanity matcher is compiled once here and
// read-only afterwards.
func New(opts ...Option) *Engine {
	e := &Engine{
		maxContentLength: DefaultMaxContentLength,
		batchWorkers:     1,
		profanityWords:   defaultProfanityWords,
		log:              slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}

	if re, err := patterns.WordList(e.profanityWords); err == nil {
		e.profanity = re
	}

	return e
}

// Execute runs one operation and always returns an envelope: request
// errors (unknown operation, missing or mistyped parameters, oversize
// content) and handler errors both surface as error envelopes, never as
// panics.
func (e *Engine) Execute(operation string, params map[string]any) Envelope {
	started := time.Now()
	op := Operation(operation)

	spec, ok := registry[op]
	if !ok {
		return e.finish(op, started, nil, fmt.Errorf("%w: %q", ErrUnknownOperation, operation))
	}

	if err := checkRequiredParams(spec, params); err != nil {
		return e.finish(op, started, nil, err)
	}

	var content string
	if spec.contentKey != "" {
		var err error
		content, err = extractContent(params, spec.contentKey)
		if err != nil {
			return e.finish(op, started, nil, err)
		}
		if err := e.checkContentLength(content); err != nil {
			return e.finish(op, started, nil, err)
		}
	}

	result, err := e.invoke(spec, content, params)
	return e.finish(op, started, result, err)
}

// invoke runs the handler behind a recover so a handler bug becomes an
// error envelope instead of tearing down the caller.
func (e *Engine) invoke(spec operationSpec, content string, params map[string]any) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: %v", ErrOperationPanic, r)
		}
	}()
	return spec.handler(e, content, params)
}

func (e *Engine) finish(op Operation, started time.Time, result any, err error) Envelope {
	elapsed := time.Since(started)
	env := Envelope{
		ID:                    uuid.New(),
		Operation:             op,
		ProcessingTimeSeconds: elapsed.Seconds(),
		Timestamp:             time.Now().UTC(),
	}
	if err != nil {
		env.Status = StatusError
		env.Error = err.Error()
	} else {
		env.Status = StatusSuccess
		env.Result = result
	}

	e.log.Debug("operation executed",
		slog.String("operation", string(op)),
		slog.String("status", string(env.Status)),
		slog.Duration("duration", elapsed),
	)

	return env
}

func (e *Engine) checkContentLength(content string) error {
	if e.maxContentLength > 0 && len(content) > e.maxContentLength {
		return fmt.Errorf("%w: %d bytes over the %d byte limit", ErrContentTooLarge, len(content), e.maxContentLength)
	}
	return nil
}

// checkRequiredParams rejects a request missing any parameter its registry
// entry declares as required. Presence is enforced here, ahead of every
// handler; value validation stays with the handlers.
func checkRequiredParams(spec operationSpec, params map[string]any) error {
	for _, key := range spec.required {
		if _, ok := params[key]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingParameter, key)
		}
	}
	return nil
}

// extractContent reads the operation's content string from its typed key,
// falling back to the generic "content" key when the typed one is absent.
func extractContent(params map[string]any, key string) (string, error) {
	if _, ok := params[key]; ok {
		return stringParam(params, key)
	}
	if key != contentKeyFallback {
		if _, ok := params[contentKeyFallback]; ok {
			return stringParam(params, contentKeyFallback)
		}
	}
	return "", fmt.Errorf("%w: %s", ErrMissingParameter, key)
}

func stringParam(params map[string]any, key string) (string, error) {
	v, ok := params[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingParameter, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q must be a string", ErrInvalidParameter, key)
	}
	return s, nil
}

func optionalStringParam(params map[string]any, key, fallback string) (string, error) {
	if _, ok := params[key]; !ok {
		return fallback, nil
	}
	return stringParam(params, key)
}

func stringSliceParam(params map[string]any, key string) ([]string, error) {
	v, ok := params[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingParameter, key)
	}
	list, ok := toStrings(v)
	if !ok {
		return nil, fmt.Errorf("%w: %q must be a list of strings", ErrInvalidParameter, key)
	}
	return list, nil
}

func optionalStringSliceParam(params map[string]any, key string) ([]string, error) {
	if _, ok := params[key]; !ok {
		return nil, nil
	}
	return stringSliceParam(params, key)
}

func toStrings(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		return list, true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

func sliceParam(params map[string]any, key string) ([]any, error) {
	v, ok := params[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingParameter, key)
	}
	switch list := v.(type) {
	case []any:
		return list, nil
	case []string:
		out := make([]any, len(list))
		for i, s := range list {
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q must be a list", ErrInvalidParameter, key)
	}
}

func optionalMapParam(params map[string]any, key string) (map[string]any, error) {
	v, ok := params[key]
	if !ok {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q must be a map", ErrInvalidParameter, key)
	}
	return m, nil
}

func mapParam(params map[string]any, key string) (map[string]any, error) {
	if _, ok := params[key]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingParameter, key)
	}
	return optionalMapParam(params, key)
}
