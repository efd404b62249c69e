package sanitizer

import "errors"

var (
	// ErrInvalidPattern is returned by MaskPattern when the caller-supplied
	// expression does not compile.
	ErrInvalidPattern = errors.New("invalid mask pattern")

	// ErrUnknownForm is returned by NormalizeUnicode for forms other than
	// NFC, NFD, NFKC and NFKD.
	ErrUnknownForm = errors.New("unknown normalization form")
)
