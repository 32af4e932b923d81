package screen

import "errors"

var (
	ErrSubmitInFlight = errors.New("screen: submit already in progress")
	ErrInvalidForm    = errors.New("screen: form is invalid")
	ErrNotLoaded      = errors.New("screen: entity not loaded")
)
