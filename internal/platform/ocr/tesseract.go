package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// TesseractEngine shells out to the tesseract binary. The binary reads the
// image from stdin and writes the recognized text to stdout.
type TesseractEngine struct {
	binary  string
	timeout time.Duration
}

// NewTesseractEngine verifies the tesseract binary is on the path and
// returns an engine bound to it.
func NewTesseractEngine(binary string, timeout time.Duration) (*TesseractEngine, error) {
	if binary == "" {
		binary = "tesseract"
	}
	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, fmt.Errorf("%w: %s not found: %v", ErrEngineUnavailable, binary, err)
	}
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &TesseractEngine{binary: path, timeout: timeout}, nil
}

// ExtractText runs tesseract over the image and returns the raw text.
func (e *TesseractEngine) ExtractText(ctx context.Context, imageData []byte) (string, error) {
	if len(imageData) == 0 {
		return "", ErrNoText
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.binary, "stdin", "stdout")
	cmd.Stdin = bytes.NewReader(imageData)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: tesseract timed out: %v", ErrEngineUnavailable, ctx.Err())
		}
		return "", fmt.Errorf("%w: tesseract failed: %v: %s", ErrEngineUnavailable, err, strings.TrimSpace(stderr.String()))
	}

	text := strings.TrimSpace(out.String())
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}
