package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDownscaleKeepsSmallImagesUntouched(t *testing.T) {
	data := encodePNG(t, 640, 480)

	out, format := downscale(data)

	assert.Equal(t, data, out)
	assert.Equal(t, "png", format)
}

func TestDownscaleReencodesWideImagesAsJPEG(t *testing.T) {
	data := encodePNG(t, 2048, 256)

	out, format := downscale(data)

	assert.Equal(t, "jpeg", format)
	img, decoded, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", decoded)
	assert.Equal(t, maxImageWidth, img.Bounds().Dx())
}

func TestDownscalePassesThroughUndecodableInput(t *testing.T) {
	data := []byte("not an image")

	out, format := downscale(data)

	assert.Equal(t, data, out)
	assert.Equal(t, "png", format)
}
