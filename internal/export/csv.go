// Package export writes processed receipts to CSV for spreadsheet use.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"github.com/GiraffosCom/boleta-scan/internal/models"
)

var log = logrus.New()

// Delimiter used for CSV output, configurable via environment.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter allows setting the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// summaryRow is the flat one-line-per-receipt CSV layout.
type summaryRow struct {
	Date          string `csv:"Fecha"`
	Store         string `csv:"Comercio"`
	TaxID         string `csv:"RUT"`
	Total         int    `csv:"Total"`
	Category      string `csv:"Categoria"`
	Source        string `csv:"Fuente"`
	Confidence    int    `csv:"Confianza"`
	ItemCount     int    `csv:"Articulos"`
	Description   string `csv:"Descripcion"`
	OCRConfidence int    `csv:"ConfianzaOCR"`
}

func toSummaryRow(r models.ReceiptRecord) summaryRow {
	return summaryRow{
		Date:          r.Date,
		Store:         r.Store,
		TaxID:         r.TaxID,
		Total:         r.Total,
		Category:      r.Category,
		Source:        r.CategorySource,
		Confidence:    r.CategoryConfidence,
		ItemCount:     len(r.Items),
		Description:   r.Description,
		OCRConfidence: r.OCRConfidence,
	}
}

// WriteItems writes the line items of a receipt as CSV rows.
func WriteItems(w io.Writer, items []models.LineItem) error {
	if items == nil {
		items = []models.LineItem{}
	}
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter
	if err := gocsv.MarshalCSV(&items, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteItemsToFile writes the line items of a receipt to a CSV file,
// creating parent directories as needed.
func WriteItemsToFile(items []models.LineItem, csvFile string) error {
	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(items),
	}).Info("Writing line items to CSV file")

	file, err := createFile(csvFile)
	if err != nil {
		return err
	}
	defer closeFile(file)

	return WriteItems(file, items)
}

// WriteRecords writes one summary row per receipt.
func WriteRecords(w io.Writer, records []models.ReceiptRecord) error {
	rows := make([]summaryRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, toSummaryRow(r))
	}
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteRecordsToFile writes receipt summary rows to a CSV file.
func WriteRecordsToFile(records []models.ReceiptRecord, csvFile string) error {
	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(records),
	}).Info("Writing receipts to CSV file")

	file, err := createFile(csvFile)
	if err != nil {
		return err
	}
	defer closeFile(file)

	return WriteRecords(file, records)
}

func createFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return nil, fmt.Errorf("error creating directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return nil, fmt.Errorf("error creating CSV file: %w", err)
	}
	return file, nil
}

func closeFile(file *os.File) {
	if err := file.Close(); err != nil {
		log.WithError(err).Warn("Failed to close file")
	}
}
