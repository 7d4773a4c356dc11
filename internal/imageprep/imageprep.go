// Package imageprep normalizes receipt photos before OCR: proportional
// downscale, luminance grayscale, contrast stretch, three-zone
// binarization and a light sharpen. Every step is deterministic, so
// conditioning the same input twice yields pixel-identical output.
package imageprep

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
)

// ErrDecode is returned when the input cannot be decoded into a bitmap.
var ErrDecode = errors.New("cannot decode image")

// DefaultMaxWidth bounds OCR cost on large phone photos.
const DefaultMaxWidth = 2000

// Contrast stretch around mid-gray. The factor formula is the standard
// brightness/contrast transform used by the receipt scanner UI.
const contrastLevel = 1.5

// Binarization zones: pixels above whiteThreshold become pure white,
// below blackThreshold pure black; mid-tones keep their stretched value,
// which preserves anti-aliasing on character edges.
const (
	whiteThreshold = 140
	blackThreshold = 80
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Conditioner turns an arbitrary input photo into a high-contrast
// binarized bitmap suitable for a Tesseract-style OCR engine.
type Conditioner struct {
	MaxWidth int
}

// NewConditioner returns a Conditioner with the given maximum width.
// Non-positive values fall back to DefaultMaxWidth.
func NewConditioner(maxWidth int) *Conditioner {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	return &Conditioner{MaxWidth: maxWidth}
}

// ConditionFile decodes the image at path and conditions it.
func (c *Conditioner) ConditionFile(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return c.Condition(img), nil
}

// ConditionBytes decodes raw image bytes and conditions them.
func (c *Conditioner) ConditionBytes(data []byte) (*image.NRGBA, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return c.Condition(img), nil
}

// Condition runs the full conditioning chain on a decoded bitmap.
// It never fails on a valid image.
func (c *Conditioner) Condition(img image.Image) *image.NRGBA {
	if img.Bounds().Dx() > c.MaxWidth {
		img = imaging.Resize(img, c.MaxWidth, 0, imaging.Lanczos)
	}

	gray := grayContrastThreshold(img)
	sharpened := sharpen(gray)

	log.WithFields(logrus.Fields{
		"width":  sharpened.Bounds().Dx(),
		"height": sharpened.Bounds().Dy(),
	}).Debug("Conditioned receipt image")

	return sharpened
}

// grayContrastThreshold collapses the image to a single gray plane:
// perceptual luma, contrast stretch around 128, then the three-zone
// threshold.
func grayContrastThreshold(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	factor := (259.0 * (contrastLevel*100 + 255)) / (255.0 * (259 - contrastLevel*100))

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bb, _ := img.At(x, y).RGBA()
			gray := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(bb>>8)

			v := factor*(gray-128) + 128
			switch {
			case v > whiteThreshold:
				v = 255
			case v < blackThreshold:
				v = 0
			}
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}

			p := uint8(math.Round(v))
			out.Set(x-b.Min.X, y-b.Min.Y, color.NRGBA{R: p, G: p, B: p, A: 255})
		}
	}
	return out
}

// sharpen applies a 3x3 convolution with kernel [0,-1,0; -1,5,-1; 0,-1,0]
// over interior pixels, reading from a pre-sharpen copy so the pass does
// not feed on its own output. Border pixels are left unmodified.
func sharpen(img *image.NRGBA) *image.NRGBA {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	out := imaging.Clone(img)

	at := func(x, y int) int {
		return int(img.Pix[img.PixOffset(x, y)])
	}

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			sum := 5*at(x, y) - at(x, y-1) - at(x, y+1) - at(x-1, y) - at(x+1, y)
			if sum < 0 {
				sum = 0
			} else if sum > 255 {
				sum = 255
			}
			off := out.PixOffset(x, y)
			out.Pix[off] = uint8(sum)
			out.Pix[off+1] = uint8(sum)
			out.Pix[off+2] = uint8(sum)
		}
	}
	return out
}

// EncodePNG serializes a conditioned bitmap for handoff to the OCR engine.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode conditioned image: %w", err)
	}
	return buf.Bytes(), nil
}
