// Package parse handles the raw-text parsing command
package parse

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/GiraffosCom/boleta-scan/cmd/common"
	"github.com/GiraffosCom/boleta-scan/cmd/root"
	appconfig "github.com/GiraffosCom/boleta-scan/internal/config"
	"github.com/GiraffosCom/boleta-scan/internal/models"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse <textfile>",
	Short: "Extract and categorize a receipt from already-recognized text",
	Long: `Parse skips image conditioning and OCR, reading recognized receipt
text from a file and running field extraction and categorization on it.
Useful for debugging extraction against saved OCR output.`,
	Args: cobra.ExactArgs(1),
	Run:  parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) {
	root.Log.WithField("file", args[0]).Info("Parse command called")

	cfg, err := appconfig.InitializeConfig()
	if err != nil {
		root.Log.Fatalf("Error loading configuration: %v", err)
	}

	text, err := os.ReadFile(args[0])
	if err != nil {
		root.Log.Fatalf("Error reading text file: %v", err)
	}

	p := common.BuildPipeline(cfg, root.SharedFlags.Language, 0)
	record := p.Assemble(cmd.Context(), models.RecognitionResult{Text: string(text)})

	if err := common.WriteJSON(record, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error writing result: %v", err)
	}
}
