package ocr

import (
	"context"
	"fmt"
	"math"

	"github.com/otiai10/gosseract/v2"
	"github.com/sirupsen/logrus"

	"github.com/GiraffosCom/boleta-scan/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// TesseractRecognizer implements Recognizer on top of gosseract.
// A fresh client is created per call; instances are safe for concurrent use.
type TesseractRecognizer struct {
	Whitelist   string
	PageSegMode gosseract.PageSegMode
}

// NewTesseractRecognizer returns a recognizer tuned for receipts: uniform
// text block segmentation and the receipt character whitelist.
func NewTesseractRecognizer() *TesseractRecognizer {
	return &TesseractRecognizer{
		Whitelist:   DefaultWhitelist,
		PageSegMode: gosseract.PSM_SINGLE_BLOCK,
	}
}

// Recognize runs Tesseract over the conditioned image. The only long
// call is blocking C code, so ctx is checked between stages.
func (t *TesseractRecognizer) Recognize(ctx context.Context, png []byte, lang string, onProgress ProgressFunc) (models.RecognitionResult, error) {
	if err := ctx.Err(); err != nil {
		return models.RecognitionResult{}, err
	}
	if lang == "" {
		lang = DefaultLanguage
	}
	report := func(f float64) {
		if onProgress != nil {
			onProgress(f)
		}
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(lang); err != nil {
		return models.RecognitionResult{}, fmt.Errorf("%w: set language %q: %v", ErrUnavailable, lang, err)
	}
	_ = client.SetWhitelist(t.Whitelist)
	_ = client.SetPageSegMode(t.PageSegMode)
	_ = client.SetVariable("preserve_interword_spaces", "1")

	if err := client.SetImageFromBytes(png); err != nil {
		return models.RecognitionResult{}, fmt.Errorf("%w: set image: %v", ErrUnavailable, err)
	}

	report(0)
	text, err := client.Text()
	if err != nil {
		return models.RecognitionResult{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	report(0.8)

	if err := ctx.Err(); err != nil {
		return models.RecognitionResult{}, err
	}

	conf := meanWordConfidence(client)
	report(1)

	log.WithFields(logrus.Fields{
		"chars":      len(text),
		"confidence": conf,
	}).Debug("OCR pass complete")

	return models.RecognitionResult{Text: text, Confidence: conf}, nil
}

// meanWordConfidence averages the per-word confidences of the last
// recognition pass. Returns 0 when no words were recognized.
func meanWordConfidence(client *gosseract.Client) int {
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return 0
	}
	var sum float64
	for _, b := range boxes {
		sum += b.Confidence
	}
	return int(math.Round(sum / float64(len(boxes))))
}
