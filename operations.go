package scrub

import (
	"cmp"
	"slices"

	"github.com/dmitrymomot/scrub/pkg/sanitizer"
)

// Operation names one engine capability. The set is closed: Execute
// rejects names outside the catalogue, and the catalogue is derived from
// the handler registry so the two cannot drift.
type Operation string

const (
	OpValidateEmail    Operation = "validate_email"
	OpValidateURL      Operation = "validate_url"
	OpValidatePhone    Operation = "validate_phone"
	OpValidateIP       Operation = "validate_ip"
	OpValidateDomain   Operation = "validate_domain"
	OpValidateFileType Operation = "validate_file_type"
	OpValidateJSON     Operation = "validate_json"
	OpValidateXML      Operation = "validate_xml"

	OpSanitizeHTML Operation = "sanitize_html"
	OpStripHTML    Operation = "strip_html"
	OpEscapeHTML   Operation = "escape_html"
	OpUnescapeHTML Operation = "unescape_html"
	OpSanitizeXML  Operation = "sanitize_xml"

	OpPreventXSS           Operation = "prevent_xss"
	OpPreventSQLInjection  Operation = "prevent_sql_injection"
	OpPreventPathTraversal Operation = "prevent_path_traversal"
	OpSanitizeFilename     Operation = "sanitize_filename"
	OpValidateCSRFToken    Operation = "validate_csrf_token"

	OpFilterProfanity     Operation = "filter_profanity"
	OpFilterSensitiveData Operation = "filter_sensitive_data"
	OpRemoveMetadata      Operation = "remove_metadata"
	OpWhitelistChars      Operation = "whitelist_chars"
	OpBlacklistChars      Operation = "blacklist_chars"

	OpMaskEmail      Operation = "mask_email"
	OpMaskPhone      Operation = "mask_phone"
	OpMaskCreditCard Operation = "mask_credit_card"
	OpMaskSSN        Operation = "mask_ssn"
	OpMaskCustom     Operation = "mask_custom"

	OpURLEncode    Operation = "url_encode"
	OpURLDecode    Operation = "url_decode"
	OpBase64Encode Operation = "base64_encode"
	OpBase64Decode Operation = "base64_decode"

	OpNormalizeUnicode Operation = "normalize_unicode"
	OpCleanWhitespace  Operation = "clean_whitespace"
	OpExtractSafeText  Operation = "extract_safe_text"

	OpBatchSanitize Operation = "batch_sanitize"
	OpPolicyEnforce Operation = "policy_enforce"
)

// handlerFunc executes one operation. Content arrives already extracted
// and size-checked; params holds the raw request parameters.
type handlerFunc func(e *Engine, content string, params map[string]any) (any, error)

// operationSpec describes one registry entry: where the dispatcher finds
// the content string and which extra parameters the handler reads. An
// empty contentKey means the operation takes no content string.
type operationSpec struct {
	contentKey string
	required   []string
	optional   []string
	handler    handlerFunc
}

var registry map[Operation]operationSpec

// The registry is populated at init time rather than in the var
// declaration: handleBatchSanitize reads the registry back, and a
// package-level literal referencing it would form an initialization
// cycle the compiler rejects.
func init() {
	registry = map[Operation]operationSpec{
		OpValidateEmail:    {contentKey: "email", handler: handleValidateEmail},
		OpValidateURL:      {contentKey: "url", handler: handleValidateURL},
		OpValidatePhone:    {contentKey: "phone", handler: handleValidatePhone},
		OpValidateIP:       {contentKey: "ip", handler: handleValidateIP},
		OpValidateDomain:   {contentKey: "domain", handler: handleValidateDomain},
		OpValidateFileType: {contentKey: "filename", required: []string{"allowed_types"}, handler: handleValidateFileType},
		OpValidateJSON:     {contentKey: "content", handler: handleValidateJSON},
		OpValidateXML:      {contentKey: "content", handler: handleValidateXML},

		OpSanitizeHTML: {contentKey: "content", optional: []string{"allowed_tags"}, handler: handleSanitizeHTML},
		OpStripHTML:    {contentKey: "content", handler: transformHandler(sanitizer.StripHTML)},
		OpEscapeHTML:   {contentKey: "content", handler: transformHandler(sanitizer.EscapeHTML)},
		OpUnescapeHTML: {contentKey: "content", handler: transformHandler(sanitizer.UnescapeHTML)},
		OpSanitizeXML:  {contentKey: "content", handler: transformHandler(sanitizer.SanitizeXML)},

		OpPreventXSS:           {contentKey: "content", handler: transformHandler(sanitizer.PreventXSS)},
		OpPreventSQLInjection:  {contentKey: "content", handler: transformHandler(sanitizer.PreventSQLInjection)},
		OpPreventPathTraversal: {contentKey: "path", handler: handlePreventPathTraversal},
		OpSanitizeFilename:     {contentKey: "filename", handler: transformHandler(sanitizer.SanitizeFilename)},
		OpValidateCSRFToken:    {contentKey: "token", required: []string{"expected"}, handler: handleValidateCSRFToken},

		OpFilterProfanity:     {contentKey: "content", optional: []string{"words", "replacement"}, handler: handleFilterProfanity},
		OpFilterSensitiveData: {contentKey: "content", handler: transformHandler(sanitizer.FilterSensitiveData)},
		OpRemoveMetadata:      {contentKey: "content", handler: transformHandler(sanitizer.RemoveMetadata)},
		OpWhitelistChars:      {contentKey: "content", required: []string{"chars"}, handler: handleWhitelistChars},
		OpBlacklistChars:      {contentKey: "content", required: []string{"chars"}, handler: handleBlacklistChars},

		OpMaskEmail:      {contentKey: "email", handler: transformHandler(sanitizer.MaskEmail)},
		OpMaskPhone:      {contentKey: "phone", handler: transformHandler(sanitizer.MaskPhone)},
		OpMaskCreditCard: {contentKey: "content", handler: transformHandler(sanitizer.MaskCreditCard)},
		OpMaskSSN:        {contentKey: "content", handler: transformHandler(sanitizer.MaskSSN)},
		OpMaskCustom:     {contentKey: "content", required: []string{"pattern", "replacement"}, handler: handleMaskCustom},

		OpURLEncode:    {contentKey: "content", handler: transformHandler(sanitizer.URLEncode)},
		OpURLDecode:    {contentKey: "content", handler: transformHandler(sanitizer.URLDecode)},
		OpBase64Encode: {contentKey: "content", handler: transformHandler(sanitizer.Base64Encode)},
		OpBase64Decode: {contentKey: "content", handler: transformHandler(sanitizer.Base64Decode)},

		OpNormalizeUnicode: {contentKey: "content", optional: []string{"form"}, handler: handleNormalizeUnicode},
		OpCleanWhitespace:  {contentKey: "content", handler: transformHandler(sanitizer.CleanWhitespace)},
		OpExtractSafeText:  {contentKey: "content", handler: transformHandler(sanitizer.ExtractSafeText)},

		OpBatchSanitize: {required: []string{"items", "operation"}, optional: []string{"params"}, handler: handleBatchSanitize},
		OpPolicyEnforce: {contentKey: "content", required: []string{"policy"}, handler: handlePolicyEnforce},
	}
}

// Batchable reports whether the operation may run as a batch item. Batch
// and policy runs cannot nest.
func (op Operation) Batchable() bool {
	if _, ok := registry[op]; !ok {
		return false
	}
	return op != OpBatchSanitize && op != OpPolicyEnforce
}

// OperationInfo describes one catalogue entry for discovery and tooling.
type OperationInfo struct {
	Name           Operation `json:"name"`
	ContentKey     string    `json:"content_key,omitempty"`
	RequiredParams []string  `json:"required_params,omitempty"`
	OptionalParams []string  `json:"optional_params,omitempty"`
	Batchable      bool      `json:"batchable"`
}

// Operations returns the catalogue sorted by name.
func Operations() []OperationInfo {
	infos := make([]OperationInfo, 0, len(registry))
	for op, spec := range registry {
		infos = append(infos, OperationInfo{
			Name:           op,
			ContentKey:     spec.contentKey,
			RequiredParams: spec.required,
			OptionalParams: spec.optional,
			Batchable:      op.Batchable(),
		})
	}
	slices.SortFunc(infos, func(a, b OperationInfo) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return infos
}
