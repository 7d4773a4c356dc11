// Package scan handles the image scanning command
package scan

import (
	"github.com/spf13/cobra"

	"github.com/GiraffosCom/boleta-scan/cmd/common"
	"github.com/GiraffosCom/boleta-scan/cmd/root"
	appconfig "github.com/GiraffosCom/boleta-scan/internal/config"
	"github.com/GiraffosCom/boleta-scan/internal/export"
	"github.com/GiraffosCom/boleta-scan/internal/pipeline"
)

// Cmd represents the scan command
var Cmd = &cobra.Command{
	Use:   "scan <image>",
	Short: "Extract and categorize a receipt from a photo",
	Long: `Scan runs the full pipeline on a receipt photo: image conditioning,
OCR, field extraction and categorization. The result is written as JSON.`,
	Args: cobra.ExactArgs(1),
	Run:  scanFunc,
}

func init() {
	Cmd.Flags().StringVar(&root.ItemsCSV, "items-csv", "", "Also write line items to this CSV file")
	Cmd.Flags().IntVar(&root.MaxWidth, "max-width", 0, "Downscale images wider than this (default from config)")
}

func scanFunc(cmd *cobra.Command, args []string) {
	root.Log.WithField("image", args[0]).Info("Scan command called")

	cfg, err := appconfig.InitializeConfig()
	if err != nil {
		root.Log.Fatalf("Error loading configuration: %v", err)
	}

	p := common.BuildPipeline(cfg, root.SharedFlags.Language, root.MaxWidth)

	record, err := p.ProcessFile(cmd.Context(), args[0], func(pr pipeline.Progress) {
		root.Log.WithField("progress", pr.Fraction).Debug(pr.Status)
	})
	if err != nil {
		root.Log.Fatalf("Error processing receipt: %v", err)
	}

	if err := common.WriteJSON(record, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error writing result: %v", err)
	}

	if root.ItemsCSV != "" {
		if err := export.WriteItemsToFile(record.Items, root.ItemsCSV); err != nil {
			root.Log.Fatalf("Error writing items CSV: %v", err)
		}
	}
}
