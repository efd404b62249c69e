package validator

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"
)

// JSON checks that value is a syntactically valid JSON document. The parsed
// top-level type is attached on success; the parser message is attached
// under "error" on failure.
func JSON(value string) Result {
	var parsed any
	if err := json.Unmarshal([]byte(value), &parsed); err != nil {
		return Result{Attributes: map[string]string{"error": err.Error()}}
	}

	return Result{
		Valid:      true,
		Attributes: map[string]string{"parsed_type": jsonType(parsed)},
	}
}

func jsonType(v any) string {
	switch v.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "bool"
	case nil:
		return "null"
	default:
		return "unknown"
	}
}

// XML checks that value is a well-formed XML fragment with at least one
// element. The element count is attached under "parsed_type" on success;
// the parser message is attached under "error" on failure.
func XML(value string) Result {
	if strings.TrimSpace(value) == "" {
		return Result{Attributes: map[string]string{"error": "empty document"}}
	}

	dec := xml.NewDecoder(strings.NewReader(value))
	var elements int
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{Attributes: map[string]string{"error": err.Error()}}
		}
		if _, ok := tok.(xml.StartElement); ok {
			elements++
		}
	}
	if elements == 0 {
		return Result{Attributes: map[string]string{"error": "document has no elements"}}
	}

	return Result{
		Valid:      true,
		Attributes: map[string]string{"parsed_type": strconv.Itoa(elements)},
	}
}
