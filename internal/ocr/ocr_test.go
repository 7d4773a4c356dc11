package ocr

import (
	"strings"
	"testing"

	"github.com/otiai10/gosseract/v2"
	"github.com/stretchr/testify/assert"
)

func TestNewTesseractRecognizerDefaults(t *testing.T) {
	r := NewTesseractRecognizer()

	assert.Equal(t, DefaultWhitelist, r.Whitelist)
	assert.Equal(t, gosseract.PSM_SINGLE_BLOCK, r.PageSegMode)
}

func TestDefaultWhitelistCoversReceiptCharset(t *testing.T) {
	// Everything the extractor's patterns can consume must survive OCR.
	for _, needed := range []string{"$", ".", ",", "-", "/", ":", "Ñ", "0", "9", "A", "Z"} {
		assert.True(t, strings.Contains(DefaultWhitelist, needed), "whitelist missing %q", needed)
	}
}
