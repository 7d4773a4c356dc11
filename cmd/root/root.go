// Package root contains the root command for the application
package root

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/GiraffosCom/boleta-scan/internal/categorizer"
	"github.com/GiraffosCom/boleta-scan/internal/config"
	"github.com/GiraffosCom/boleta-scan/internal/export"
	"github.com/GiraffosCom/boleta-scan/internal/extractor"
	"github.com/GiraffosCom/boleta-scan/internal/imageprep"
	"github.com/GiraffosCom/boleta-scan/internal/ocr"
	"github.com/GiraffosCom/boleta-scan/internal/pipeline"
	"github.com/GiraffosCom/boleta-scan/internal/store"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Output   string
	Language string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "boleta-scan",
		Short: "A CLI tool to extract and categorize Chilean purchase receipts.",
		Long: `boleta-scan reads a photo of a Chilean boleta, runs OCR on it and
extracts the store, RUT, total, date and line items, then assigns a
spending category from the merchant and the purchased products.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to boleta-scan!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Set the configured logger for all stages
			imageprep.SetLogger(Log)
			ocr.SetLogger(Log)
			extractor.SetLogger(Log)
			categorizer.SetLogger(Log)
			store.SetLogger(Log)
			pipeline.SetLogger(Log)
			export.SetLogger(Log)

			// Ensure CSV delimiter is updated after env variables are loaded
			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
				export.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// SharedFlags are accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific scan command flags
	ItemsCSV string
	MaxWidth int
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default: stdout)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Language, "language", "l", "", "OCR language (default: spa)")
}
