package patterns

import "errors"

var (
	// ErrEmptyWordList is returned by WordList when no usable words remain
	// after trimming.
	ErrEmptyWordList = errors.New("word list is empty")
)
