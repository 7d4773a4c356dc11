package pipeline

import (
	"context"
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GiraffosCom/boleta-scan/internal/categorizer"
	"github.com/GiraffosCom/boleta-scan/internal/imageprep"
	"github.com/GiraffosCom/boleta-scan/internal/models"
	"github.com/GiraffosCom/boleta-scan/internal/ocr"
)

// fakeRecognizer returns canned text and drives the OCR progress stream.
type fakeRecognizer struct {
	text       string
	confidence int
	err        error
	fractions  []float64
}

func (f *fakeRecognizer) Recognize(ctx context.Context, png []byte, lang string, onProgress ocr.ProgressFunc) (models.RecognitionResult, error) {
	if f.err != nil {
		return models.RecognitionResult{}, f.err
	}
	for _, fr := range f.fractions {
		if onProgress != nil {
			onProgress(fr)
		}
	}
	return models.RecognitionResult{Text: f.text, Confidence: f.confidence}, nil
}

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return img
}

func newTestPipeline(rec *fakeRecognizer) *Pipeline {
	return New(imageprep.NewConditioner(0), rec, categorizer.New(nil, nil), "spa")
}

func TestProcessImage(t *testing.T) {
	rec := &fakeRecognizer{
		text:       "JUMBO MAIPU\nFECHA: 01/02/2024\nTOTAL: $5.990",
		confidence: 87,
		fractions:  []float64{0.5},
	}
	p := newTestPipeline(rec)

	var progress []Progress
	record, err := p.ProcessImage(context.Background(), testImage(), func(pr Progress) {
		progress = append(progress, pr)
	})

	require.NoError(t, err)
	assert.Equal(t, "JUMBO", record.Store)
	assert.Equal(t, 5990, record.Total)
	assert.Equal(t, "2024-02-01", record.Date)
	assert.Equal(t, models.CategoryGroceries, record.Category)
	assert.Equal(t, models.SourceMerchant, record.CategorySource)
	assert.Equal(t, 87, record.OCRConfidence)
	assert.Equal(t, rec.text, record.RawText)
	assert.NotNil(t, record.Items)

	require.Len(t, progress, 5)
	expected := []float64{0.1, 0.2, 0.5, 0.85, 1.0}
	for i, pr := range progress {
		assert.InDelta(t, expected[i], pr.Fraction, 1e-9)
	}
	// Fractions never decrease.
	for i := 1; i < len(progress); i++ {
		assert.GreaterOrEqual(t, progress[i].Fraction, progress[i-1].Fraction)
	}
}

func TestProcessImageRecognizerError(t *testing.T) {
	rec := &fakeRecognizer{err: fmt.Errorf("%w: engine missing", ocr.ErrUnavailable)}
	p := newTestPipeline(rec)

	_, err := p.ProcessImage(context.Background(), testImage(), nil)

	assert.ErrorIs(t, err, ocr.ErrUnavailable)
}

func TestProcessFileDecodeError(t *testing.T) {
	p := newTestPipeline(&fakeRecognizer{})

	_, err := p.ProcessFile(context.Background(), "/nonexistent/receipt.jpg", nil)

	assert.ErrorIs(t, err, imageprep.ErrDecode)
}

func TestPanickingProgressCallbackDoesNotAbort(t *testing.T) {
	rec := &fakeRecognizer{text: "TOTAL: $1.500", fractions: []float64{0.5}}
	p := newTestPipeline(rec)

	record, err := p.ProcessImage(context.Background(), testImage(), func(Progress) {
		panic("observer bug")
	})

	require.NoError(t, err)
	assert.Equal(t, 1500, record.Total)
}

func TestAssemble(t *testing.T) {
	p := newTestPipeline(&fakeRecognizer{})

	record := p.Assemble(context.Background(), models.RecognitionResult{
		Text:       "CRUZ VERDE\nPARACETAMOL 500MG $2.990\nTOTAL: $2.990",
		Confidence: 91,
	})

	assert.Equal(t, "CRUZ VERDE", record.Store)
	assert.Equal(t, models.CategoryHealth, record.Category)
	assert.Equal(t, models.SourceProduct, record.CategorySource)
	assert.Equal(t, 91, record.OCRConfidence)
	require.Len(t, record.Items, 1)
	assert.Equal(t, "$2.990", record.Items[0].PriceFormatted)
}

func TestAssembleEmptyText(t *testing.T) {
	p := newTestPipeline(&fakeRecognizer{})

	record := p.Assemble(context.Background(), models.RecognitionResult{})

	assert.Empty(t, record.Store)
	assert.Equal(t, models.CategoryOther, record.Category)
	assert.NotNil(t, record.Items)
	assert.Empty(t, record.Items)
}
