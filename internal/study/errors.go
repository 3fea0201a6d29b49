package study

import "errors"

var (
	// ErrUnknownWord is returned for words missing from the catalog
	ErrUnknownWord = errors.New("study: unknown word")
	// ErrUnknownUser is returned for users missing from the store
	ErrUnknownUser = errors.New("study: unknown user")
)
