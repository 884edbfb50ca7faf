package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/nfnt/resize"
	"google.golang.org/api/option"
)

// maxImageWidth bounds the pixel width sent to the vision model.
const maxImageWidth = 1024

// GeminiEngine transcribes image text with the Gemini vision model.
type GeminiEngine struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiEngine creates a Gemini-backed engine. Callers own the engine
// and should Close it when done.
func NewGeminiEngine(ctx context.Context, apiKey string) (*GeminiEngine, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}
	return &GeminiEngine{
		client: client,
		model:  client.GenerativeModel("gemini-1.5-flash"),
	}, nil
}

// Close releases the underlying API client.
func (e *GeminiEngine) Close() error {
	return e.client.Close()
}

// ExtractText asks the model to transcribe every piece of text visible in
// the image, with no commentary added.
func (e *GeminiEngine) ExtractText(ctx context.Context, imageData []byte) (string, error) {
	imageData, format := downscale(imageData)

	prompt := []genai.Part{
		genai.ImageData(format, imageData),
		genai.Text("Transcribe all text visible in this image exactly as written, preserving line breaks. Return only the transcribed text with no commentary or formatting."),
	}

	resp, err := e.model.GenerateContent(ctx, prompt...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoText
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response format from Gemini")
	}

	out := strings.TrimSpace(string(text))
	if out == "" {
		return "", ErrNoText
	}
	return out, nil
}

// downscale re-encodes images wider than maxImageWidth to keep request
// payloads small, returning the bytes and the format label they actually
// carry. Undecodable input is passed through untouched and left for the
// model to reject.
func downscale(imageData []byte) ([]byte, string) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return imageData, "png"
	}
	if img.Bounds().Dx() <= maxImageWidth {
		return imageData, format
	}

	resized := resize.Resize(maxImageWidth, 0, img, resize.Lanczos3)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, nil); err != nil {
		return imageData, format
	}
	return buf.Bytes(), "jpeg"
}
