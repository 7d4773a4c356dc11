// Package ocr defines the boundary to the text recognition engine. The
// pipeline only depends on the Recognizer interface; the Tesseract-backed
// implementation lives alongside it. Recognized text is untrusted: callers
// must tolerate noise, misread characters and inconsistent spacing.
package ocr

import (
	"context"
	"errors"

	"github.com/GiraffosCom/boleta-scan/internal/models"
)

// ErrUnavailable is returned when the OCR engine cannot be invoked at all
// (missing or misconfigured installation).
var ErrUnavailable = errors.New("ocr engine unavailable")

// DefaultLanguage is the Tesseract language hint for Chilean receipts.
const DefaultLanguage = "spa"

// DefaultWhitelist restricts recognition to the characters that actually
// occur on thermal-printed receipts, which cuts down on symbol noise.
const DefaultWhitelist = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789$.,:-/áéíóúñÁÉÍÓÚÑ "

// ProgressFunc receives fractional completion in [0,1].
type ProgressFunc func(fraction float64)

// Recognizer turns a conditioned PNG image into raw text plus an overall
// confidence score. Implementations must honor ctx at least between
// internal stages; onProgress may be nil.
type Recognizer interface {
	Recognize(ctx context.Context, png []byte, lang string, onProgress ProgressFunc) (models.RecognitionResult, error)
}
