// Package common provides shared helpers for the CLI commands.
package common

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/otiai10/gosseract/v2"

	"github.com/GiraffosCom/boleta-scan/cmd/root"
	"github.com/GiraffosCom/boleta-scan/internal/categorizer"
	appconfig "github.com/GiraffosCom/boleta-scan/internal/config"
	"github.com/GiraffosCom/boleta-scan/internal/imageprep"
	"github.com/GiraffosCom/boleta-scan/internal/ocr"
	"github.com/GiraffosCom/boleta-scan/internal/pipeline"
	"github.com/GiraffosCom/boleta-scan/internal/store"
)

// BuildPipeline assembles the processing pipeline from the application
// configuration and command-line overrides.
func BuildPipeline(cfg *appconfig.Config, language string, maxWidth int) *pipeline.Pipeline {
	if language == "" {
		language = cfg.OCR.Language
	}
	if maxWidth == 0 {
		maxWidth = cfg.Image.MaxWidth
	}

	conditioner := imageprep.NewConditioner(maxWidth)

	recognizer := ocr.NewTesseractRecognizer()
	if cfg.OCR.CharWhitelist != "" {
		recognizer.Whitelist = cfg.OCR.CharWhitelist
	}
	recognizer.PageSegMode = gosseract.PageSegMode(cfg.OCR.PageSegMode)

	catalogStore := store.NewCatalogStore(cfg.Categorization.CategoriesFile, cfg.Categorization.MerchantsFile)

	var aiClient categorizer.AIClient
	if cfg.AI.Enabled {
		apiKey := cfg.AI.APIKey
		if apiKey == "" {
			apiKey = appconfig.GetGeminiAPIKey()
		}
		if apiKey != "" {
			aiClient = categorizer.NewGeminiClient(apiKey, cfg.AI.Model)
		} else {
			root.Log.Warn("AI categorization enabled but no API key configured")
		}
	}
	classifier := categorizer.New(catalogStore, aiClient)

	return pipeline.New(conditioner, recognizer, classifier, language)
}

// WriteJSON marshals v with indentation and writes it to outputFile, or
// to stdout when outputFile is empty.
func WriteJSON(v interface{}, outputFile string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}
	data = append(data, '\n')

	if outputFile == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outputFile, data, 0600); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}
	root.Log.WithField("file", outputFile).Info("Wrote result")
	return nil
}
