// Package ocr wraps external image-to-text engines behind a single
// capability interface so handlers and tests can swap implementations.
package ocr

import (
	"context"
	"errors"
)

// ErrEngineUnavailable is returned when the configured engine cannot be
// reached (missing binary, API failure).
var ErrEngineUnavailable = errors.New("ocr engine unavailable")

// ErrNoText is returned when the engine produced no usable text.
var ErrNoText = errors.New("no text found in image")

// Engine extracts raw text from image bytes. The call blocks the request
// that issued it; implementations honor ctx for cancellation.
type Engine interface {
	ExtractText(ctx context.Context, imageData []byte) (string, error)
}
