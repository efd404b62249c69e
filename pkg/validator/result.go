package validator

// Result is the outcome of a single validation check. A zero Result means
// the input failed validation and nothing else is known about it.
type Result struct {
	Valid      bool              `json:"valid"`
	Normalized string            `json:"normalized_value,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}
