// Package pipeline sequences the receipt processing stages: image
// conditioning, OCR, field extraction and categorization. Each invocation
// is an independent linear pass with no shared mutable state, so any
// number of receipts can be processed concurrently.
package pipeline

import (
	"context"
	"image"

	"github.com/sirupsen/logrus"

	"github.com/GiraffosCom/boleta-scan/internal/categorizer"
	"github.com/GiraffosCom/boleta-scan/internal/extractor"
	"github.com/GiraffosCom/boleta-scan/internal/imageprep"
	"github.com/GiraffosCom/boleta-scan/internal/models"
	"github.com/GiraffosCom/boleta-scan/internal/ocr"
)

// Progress fractions for the fixed stages. OCR progress is mapped into
// the window between ocrStart and ocrEnd.
const (
	progressConditioned = 0.1
	ocrStart            = 0.2
	ocrEnd              = 0.8
	progressExtracting  = 0.85
	progressDone        = 1.0
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Progress is a pipeline status notification.
type Progress struct {
	Status   string  `json:"status"`
	Fraction float64 `json:"progress"`
}

// ProgressFunc receives progress notifications in emission order. It is
// called synchronously and must be fast; a panicking callback is ignored
// and never aborts the pipeline.
type ProgressFunc func(Progress)

// Pipeline wires the stages together. Safe for concurrent use.
type Pipeline struct {
	conditioner *imageprep.Conditioner
	recognizer  ocr.Recognizer
	classifier  *categorizer.Classifier
	language    string
}

// New assembles a pipeline. language is the OCR language hint; empty
// falls back to the receipt locale default.
func New(conditioner *imageprep.Conditioner, recognizer ocr.Recognizer, classifier *categorizer.Classifier, language string) *Pipeline {
	if conditioner == nil {
		conditioner = imageprep.NewConditioner(0)
	}
	if language == "" {
		language = ocr.DefaultLanguage
	}
	return &Pipeline{
		conditioner: conditioner,
		recognizer:  recognizer,
		classifier:  classifier,
		language:    language,
	}
}

// ProcessFile runs the full pipeline on an image file. Decode and OCR
// failures surface unchanged; extraction and classification degrade to
// partial fields instead of failing.
func (p *Pipeline) ProcessFile(ctx context.Context, path string, onProgress ProgressFunc) (models.ReceiptRecord, error) {
	conditioned, err := p.conditioner.ConditionFile(path)
	if err != nil {
		return models.ReceiptRecord{}, err
	}
	return p.process(ctx, conditioned, onProgress)
}

// ProcessImage runs the full pipeline on an already-decoded bitmap.
func (p *Pipeline) ProcessImage(ctx context.Context, img image.Image, onProgress ProgressFunc) (models.ReceiptRecord, error) {
	return p.process(ctx, p.conditioner.Condition(img), onProgress)
}

func (p *Pipeline) process(ctx context.Context, conditioned image.Image, onProgress ProgressFunc) (models.ReceiptRecord, error) {
	emit(onProgress, Progress{Status: "Optimizando imagen...", Fraction: progressConditioned})

	png, err := imageprep.EncodePNG(conditioned)
	if err != nil {
		return models.ReceiptRecord{}, err
	}

	emit(onProgress, Progress{Status: "Iniciando reconocimiento...", Fraction: ocrStart})
	recognition, err := p.recognizer.Recognize(ctx, png, p.language, func(f float64) {
		emit(onProgress, Progress{
			Status:   "Procesando...",
			Fraction: ocrStart + f*(ocrEnd-ocrStart),
		})
	})
	if err != nil {
		return models.ReceiptRecord{}, err
	}

	emit(onProgress, Progress{Status: "Analizando texto...", Fraction: progressExtracting})
	record := p.Assemble(ctx, recognition)

	emit(onProgress, Progress{Status: "Completado", Fraction: progressDone})
	return record, nil
}

// Assemble runs the text-only stages (extraction and classification) and
// builds the final record. Exposed so callers holding recognized text can
// skip conditioning and OCR; it never fails.
func (p *Pipeline) Assemble(ctx context.Context, recognition models.RecognitionResult) models.ReceiptRecord {
	fields := extractor.Extract(recognition.Text)
	classification := p.classifier.Classify(ctx, fields.MerchantGroup, recognition.Text, fields.Items)

	items := fields.Items
	if items == nil {
		items = []models.LineItem{}
	}

	record := models.ReceiptRecord{
		Store:              fields.Store,
		TaxID:              fields.TaxID,
		Total:              fields.Total,
		Date:               fields.Date,
		Items:              items,
		Description:        fields.Description,
		Category:           classification.Category,
		CategorySource:     classification.Source,
		MatchedKeywords:    classification.MatchedKeywords,
		CategoryConfidence: classification.Confidence,
		OCRConfidence:      recognition.Confidence,
		RawText:            recognition.Text,
	}

	log.WithFields(logrus.Fields{
		"store":    record.Store,
		"total":    record.Total,
		"category": record.Category,
		"source":   record.CategorySource,
	}).Info("Receipt processed")

	return record
}

// emit delivers a progress notification, swallowing callback panics so a
// broken observer cannot abort extraction.
func emit(onProgress ProgressFunc, p Progress) {
	if onProgress == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	onProgress(p)
}
