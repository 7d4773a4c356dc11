// Package models defines the data structures shared by the receipt
// processing pipeline: recognized text, extracted fields and the final
// receipt record handed to the caller.
package models

import (
	"fmt"
	"strings"
)

// RecognitionResult is the raw output of the OCR engine. The text is
// untrusted input: it may contain noise, misread characters and
// inconsistent spacing.
type RecognitionResult struct {
	Text       string `json:"text"`
	Confidence int    `json:"confidence"` // 0-100
}

// LineItem is a purchased product extracted from a receipt line.
// Price is in whole pesos (CLP has no minor unit).
type LineItem struct {
	Name           string `json:"name" csv:"name"`
	Price          int    `json:"price" csv:"price"`
	PriceFormatted string `json:"priceFormatted" csv:"price_formatted"`
}

// Fields holds everything the field extractor could determine from the
// recognized text. A zero value means the field could not be confidently
// extracted; that is the expected case for noisy input, not an error.
type Fields struct {
	Store         string
	TaxID         string
	Total         int    // 0 when absent
	Date          string // YYYY-MM-DD, empty when absent
	Items         []LineItem
	Description   string
	MerchantGroup string // business-category group of a recognized chain, empty if unknown
}

// Classification is the category classifier output.
type Classification struct {
	Category        string
	Confidence      int // 0-100
	Source          string
	MatchedKeywords []string
}

// ReceiptRecord is the sole output of the pipeline. Immutable once
// assembled; ownership passes entirely to the caller.
type ReceiptRecord struct {
	Store              string     `json:"store"`
	TaxID              string     `json:"taxId,omitempty"`
	Total              int        `json:"total,omitempty"`
	Date               string     `json:"date,omitempty"`
	Items              []LineItem `json:"items"`
	Description        string     `json:"description"`
	Category           string     `json:"category"`
	CategorySource     string     `json:"categorySource"`
	MatchedKeywords    []string   `json:"matchedKeywords"`
	CategoryConfidence int        `json:"categoryConfidence"`
	OCRConfidence      int        `json:"ocrConfidence"`
	RawText            string     `json:"rawText"`
}

// FormatCLP renders an amount in Chilean peso notation with dot
// thousands separators, e.g. 15990 -> "$15.990".
func FormatCLP(amount int) string {
	digits := fmt.Sprintf("%d", amount)
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)
	out := "$" + strings.Join(parts, ".")
	if neg {
		out = "-" + out
	}
	return out
}
