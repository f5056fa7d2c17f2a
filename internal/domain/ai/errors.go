package ai

import "errors"

// ErrNotConfigured indicates the API credential is missing; no network call
// was attempted.
var ErrNotConfigured = errors.New("ai api key not configured")

// ErrUnavailable indicates a transport or provider failure calling the model.
// Retrying is a fresh user action, never automatic.
var ErrUnavailable = errors.New("ai service unavailable")
