package main

import "errors"

// Sentinel errors
var (
	ErrInvalidWrapMode = errors.New("invalid wrap mode (must be none, inline, or display)")
	ErrBatchFailed     = errors.New("batch conversion failed")
	ErrExpressionCheck = errors.New("expression check failed")
)
