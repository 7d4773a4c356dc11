package imageprep

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func grayAt(img *image.NRGBA, x, y int) uint8 {
	return img.Pix[img.PixOffset(x, y)]
}

func TestNewConditionerDefaults(t *testing.T) {
	assert.Equal(t, DefaultMaxWidth, NewConditioner(0).MaxWidth)
	assert.Equal(t, DefaultMaxWidth, NewConditioner(-5).MaxWidth)
	assert.Equal(t, 800, NewConditioner(800).MaxWidth)
}

func TestConditionDownscalesWideImages(t *testing.T) {
	c := NewConditioner(100)

	out := c.Condition(uniformImage(300, 60, color.NRGBA{200, 200, 200, 255}))

	assert.Equal(t, 100, out.Bounds().Dx())
	assert.Equal(t, 20, out.Bounds().Dy())
}

func TestConditionKeepsSmallImages(t *testing.T) {
	c := NewConditioner(100)

	out := c.Condition(uniformImage(40, 40, color.NRGBA{128, 128, 128, 255}))

	assert.Equal(t, 40, out.Bounds().Dx())
	assert.Equal(t, 40, out.Bounds().Dy())
}

func TestConditionThresholdZones(t *testing.T) {
	c := NewConditioner(0)

	tests := []struct {
		name     string
		in       uint8
		expected uint8
	}{
		{"white saturates", 255, 255},
		{"black saturates", 0, 0},
		{"mid gray is preserved", 128, 128},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := c.Condition(uniformImage(10, 10, color.NRGBA{tc.in, tc.in, tc.in, 255}))
			// Interior pixel: the sharpen pass leaves borders untouched,
			// and on a uniform image it is the identity anyway.
			assert.Equal(t, tc.expected, grayAt(out, 5, 5))
		})
	}
}

func TestConditionIsDeterministic(t *testing.T) {
	c := NewConditioner(0)
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			v := uint8(x * 16)
			img.SetNRGBA(x, y, color.NRGBA{v, uint8(y * 16), 90, 255})
		}
	}

	first := c.Condition(img)
	second := c.Condition(img)

	assert.Equal(t, first.Pix, second.Pix)
}

func TestConditionBytesRejectsGarbage(t *testing.T) {
	c := NewConditioner(0)

	_, err := c.ConditionBytes([]byte("definitely not an image"))

	assert.ErrorIs(t, err, ErrDecode)
}

func TestConditionFileMissing(t *testing.T) {
	c := NewConditioner(0)

	_, err := c.ConditionFile("/nonexistent/receipt.jpg")

	assert.ErrorIs(t, err, ErrDecode)
}

func TestEncodePNG(t *testing.T) {
	data, err := EncodePNG(uniformImage(4, 4, color.NRGBA{255, 255, 255, 255}))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}
