package validator

import (
	"mime"
	"path/filepath"
	"strings"
)

// FileType checks the lowercased extension of filename against an allow-list
// of extensions (with or without leading dots, case-insensitive). The
// detected content type is attached for diagnostics only; enforcement is
// extension-based.
func FileType(filename string, allowed []string) Result {
	filename = strings.TrimSpace(filename)
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if filename == "" || ext == "" {
		return Result{}
	}

	attrs := map[string]string{"extension": ext}
	if ct := mime.TypeByExtension("." + ext); ct != "" {
		attrs["content_type"] = ct
	}

	for _, a := range allowed {
		if strings.EqualFold(strings.TrimPrefix(strings.TrimSpace(a), "."), ext) {
			return Result{Valid: true, Attributes: attrs}
		}
	}

	return Result{Attributes: attrs}
}
