package scrub_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/scrub"
	"github.com/dmitrymomot/scrub/pkg/validator"
)

func TestExecute_SuccessEnvelope(t *testing.T) {
	t.Parallel()

	engine := scrub.New()
	env := engine.Execute("validate_email", map[string]any{"email": "john@example.com"})

	assert.Equal(t, scrub.StatusSuccess, env.Status)
	assert.True(t, env.OK())
	assert.Equal(t, scrub.OpValidateEmail, env.Operation)
	assert.NotEqual(t, uuid.Nil, env.ID)
	assert.NotNil(t, env.Result)
	assert.Empty(t, env.Error)
	assert.GreaterOrEqual(t, env.ProcessingTimeSeconds, 0.0)
	assert.False(t, env.Timestamp.IsZero())
	assert.WithinDuration(t, time.Now().UTC(), env.Timestamp, time.Minute)
}

func TestExecute_UnknownOperation(t *testing.T) {
	t.Parallel()

	engine := scrub.New()
	env := engine.Execute("reticulate_splines", nil)

	assert.Equal(t, scrub.StatusError, env.Status)
	assert.False(t, env.OK())
	assert.Nil(t, env.Result)
	assert.Contains(t, env.Error, "unknown operation")
	assert.Contains(t, env.Error, "reticulate_splines")
}

func TestExecute_MissingContent(t *testing.T) {
	t.Parallel()

	engine := scrub.New()
	env := engine.Execute("clean_whitespace", map[string]any{})

	assert.Equal(t, scrub.StatusError, env.Status)
	assert.Contains(t, env.Error, "missing required parameter")
	assert.Contains(t, env.Error, "content")
}

func TestExecute_ContentKeyFallback(t *testing.T) {
	t.Parallel()

	engine := scrub.New()

	// Typed key and generic "content" are interchangeable on input.
	typed := engine.Execute("validate_email", map[string]any{"email": "a@b.co"})
	generic := engine.Execute("validate_email", map[string]any{"content": "a@b.co"})

	require.True(t, typed.OK())
	require.True(t, generic.OK())
	assert.Equal(t, typed.Result, generic.Result)
}

func TestExecute_TypedKeyWinsOverFallback(t *testing.T) {
	t.Parallel()

	engine := scrub.New()
	env := engine.Execute("validate_email", map[string]any{
		"email":   "real@example.com",
		"content": "not-an-email",
	})

	require.True(t, env.OK())
	res, ok := env.Result.(validator.Result)
	require.True(t, ok)
	assert.True(t, res.Valid)
}

func TestExecute_MistypedContent(t *testing.T) {
	t.Parallel()

	engine := scrub.New()
	env := engine.Execute("clean_whitespace", map[string]any{"content": 42})

	assert.Equal(t, scrub.StatusError, env.Status)
	assert.Contains(t, env.Error, "invalid parameter")
}

func TestExecute_MissingRequiredParam(t *testing.T) {
	t.Parallel()

	// Driven off the catalogue: omitting any declared required key must be
	// rejected before the handler runs. The other keys carry junk string
	// placeholders; the rejection names the absent key without reading any
	// of the supplied values.
	engine := scrub.New()
	for _, info := range scrub.Operations() {
		info := info
		for _, omit := range info.RequiredParams {
			omit := omit
			t.Run(string(info.Name)+" without "+omit, func(t *testing.T) {
				t.Parallel()

				params := map[string]any{}
				if info.ContentKey != "" {
					params[info.ContentKey] = "x"
				}
				for _, key := range info.RequiredParams {
					if key != omit {
						params[key] = "x"
					}
				}

				env := engine.Execute(string(info.Name), params)
				assert.Equal(t, scrub.StatusError, env.Status)
				assert.Contains(t, env.Error, "missing required parameter")
				assert.Contains(t, env.Error, omit)
			})
		}
	}
}

func TestExecute_ContentCeiling(t *testing.T) {
	t.Parallel()

	t.Run("over the ceiling rejected before the handler", func(t *testing.T) {
		t.Parallel()

		engine := scrub.New(scrub.WithMaxContentLength(8))
		env := engine.Execute("clean_whitespace", map[string]any{"content": strings.Repeat("a", 9)})

		assert.Equal(t, scrub.StatusError, env.Status)
		assert.Contains(t, env.Error, "content too large")
	})

	t.Run("at the ceiling accepted", func(t *testing.T) {
		t.Parallel()

		engine := scrub.New(scrub.WithMaxContentLength(8))
		env := engine.Execute("clean_whitespace", map[string]any{"content": strings.Repeat("a", 8)})
		assert.True(t, env.OK())
	})

	t.Run("zero disables the ceiling", func(t *testing.T) {
		t.Parallel()

		engine := scrub.New(scrub.WithMaxContentLength(0))
		env := engine.Execute("clean_whitespace", map[string]any{"content": strings.Repeat("a", scrub.DefaultMaxContentLength+1)})
		assert.True(t, env.OK())
	})
}

func TestExecute_LogsPerOperation(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	engine := scrub.New(scrub.WithLogger(log))
	engine.Execute("strip_html", map[string]any{"content": "<b>x</b>"})

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "operation executed", record["msg"])
	assert.Equal(t, "strip_html", record["operation"])
	assert.Equal(t, "success", record["status"])
}

func TestExecute_Concurrent(t *testing.T) {
	t.Parallel()

	engine := scrub.New()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				env := engine.Execute("prevent_xss", map[string]any{
					"content": `<script>alert(1)</script>hello`,
				})
				if !env.OK() {
					t.Errorf("unexpected error envelope: %s", env.Error)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestEnvelope_JSONShape(t *testing.T) {
	t.Parallel()

	engine := scrub.New()

	t.Run("success carries result, no error", func(t *testing.T) {
		t.Parallel()

		env := engine.Execute("escape_html", map[string]any{"content": "<b>"})
		data, err := json.Marshal(env)
		require.NoError(t, err)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))
		assert.Contains(t, raw, "result")
		assert.NotContains(t, raw, "error")
		assert.Contains(t, raw, "id")
		assert.Contains(t, raw, "processing_time_seconds")

		ts, ok := raw["timestamp"].(string)
		require.True(t, ok)
		_, err = time.Parse(time.RFC3339Nano, ts)
		assert.NoError(t, err, "timestamp should serialize as RFC 3339")
	})

	t.Run("error carries error, no result", func(t *testing.T) {
		t.Parallel()

		env := engine.Execute("no_such_operation", nil)
		data, err := json.Marshal(env)
		require.NoError(t, err)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))
		assert.Contains(t, raw, "error")
		assert.NotContains(t, raw, "result")
		assert.Equal(t, "error", raw["status"])
	})
}
