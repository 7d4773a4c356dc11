package extractor

import "regexp"

// Each field is extracted by an ordered cascade: the first pattern that
// matches AND passes validation wins. Receipts are printed by wildly
// different POS systems, so no single pattern is reliable alone and the
// priority order is part of the contract.

// capturePattern pairs a compiled pattern with the index of the capture
// group holding the candidate value.
type capturePattern struct {
	re    *regexp.Regexp
	group int
}

// Chilean tax identifier (RUT), labeled forms before the bare pattern.
var taxIDPatterns = []capturePattern{
	{regexp.MustCompile(`(?i)RUT[:\s]*(\d{1,2}\.?\d{3}\.?\d{3}-?[\dkK])`), 1},
	{regexp.MustCompile(`(?i)R\.U\.T[:\s]*(\d{1,2}\.?\d{3}\.?\d{3}-?[\dkK])`), 1},
	{regexp.MustCompile(`(\d{1,2}\.\d{3}\.\d{3}-[\dkK])`), 1},
}

// Merchant name, tried only when no known chain matched.
var storePatterns = []capturePattern{
	{regexp.MustCompile(`(?i)(?:RAZON\s*SOCIAL|EMPRESA|COMERCIO|SUCURSAL)[:\s]*([A-ZÁÉÍÓÚÑ\s]+)`), 1},
	{regexp.MustCompile(`(?m)^([A-ZÁÉÍÓÚÑ][A-ZÁÉÍÓÚÑ\s]{3,30})$`), 1},
}

// Reserved words that disqualify a merchant-name candidate.
var storeReservedWords = regexp.MustCompile(`(?i)(BOLETA|FACTURA|ELECTRONICA|RUT|FECHA|TOTAL|IVA|NETO)`)

// Looser reserved list used by the first-lines fallback.
var fallbackReservedWords = regexp.MustCompile(`(?i)(BOLETA|FACTURA|ELECTRONICA|RUT|FECHA|TOTAL)`)

// nonLetters strips everything but (accented) letters and spaces.
var nonLetters = regexp.MustCompile(`(?i)[^A-ZÁÉÍÓÚÑ\s]`)

// subtotalLine matches whole SUBTOTAL lines, which are removed from the
// search text before the total cascade runs. Without this the cascade's
// plain-TOTAL patterns routinely pick the subtotal.
var subtotalLine = regexp.MustCompile(`(?i)SUBTOTAL[^\n]*`)

// Monetary total. RE2 has no lookbehind, so the original's (?<!SUB)TOTAL
// becomes (?:^|[^Bb])TOTAL: SUBTOTAL lines are already stripped, this
// guards against OCR gluing SUB onto a later line.
var totalPatterns = []capturePattern{
	{regexp.MustCompile(`(?i)TOTAL\s*A\s*PAGAR\s*[:\s]*\$?\s*([\d.,]+)`), 1},
	{regexp.MustCompile(`(?i)TOTAL\s*\$?\s*([\d]+\.[\d]{3}(?:\.[\d]{3})*)`), 1},
	{regexp.MustCompile(`(?i)(?:^|[^Bb])TOTAL\s*[:\s]*\$?\s*([\d.,]+)`), 1},
	{regexp.MustCompile(`(?i)MONTO\s*TOTAL\s*[:\s]*\$?\s*([\d.,]+)`), 1},
	{regexp.MustCompile(`(?i)VALOR\s*TOTAL\s*[:\s]*\$?\s*([\d.,]+)`), 1},
	{regexp.MustCompile(`(?i)IMPORTE\s*TOTAL\s*[:\s]*\$?\s*([\d.,]+)`), 1},
	{regexp.MustCompile(`(?i)T\s*O\s*T\s*A\s*L\s*[:\s]*\$?\s*([\d.,]+)`), 1},
	{regexp.MustCompile(`(?m)\$\s*([\d]{1,3}(?:\.[\d]{3})+)\s*$`), 1},
	{regexp.MustCompile(`(?im)(?:^|[^Bb])TOTAL[:\s]+(\d{1,3}(?:\.\d{3})*)\s*$`), 1},
}

// Transaction date, labeled forms first, then bare, then textual months.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)FECHA\s*(?:EMISION|EMI)?[:\s]*(\d{4})-(\d{2})-(\d{2})`),
	regexp.MustCompile(`(?i)FECHA[:\s]*(\d{2})[/\-](\d{2})[/\-](\d{4})`),
	regexp.MustCompile(`(?i)FECHA[:\s]*(\d{2})[/\-](\d{2})[/\-](\d{2})\b`),
	regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`),
	regexp.MustCompile(`(\d{2})[/\-](\d{2})[/\-](\d{4})`),
	regexp.MustCompile(`(\d{2})[/\-](\d{2})[/\-](\d{2})\b`),
	regexp.MustCompile(`(?i)(\d{1,2})\s+(?:de\s+)?(ENE|FEB|MAR|ABR|MAY|JUN|JUL|AGO|SEP|OCT|NOV|DIC)[A-ZÁÉÍÓÚÑ]*\s+(?:de\s+)?(\d{2,4})`),
	regexp.MustCompile(`(?i)(\d{1,2})\s+(ENERO|FEBRERO|MARZO|ABRIL|MAYO|JUNIO|JULIO|AGOSTO|SEPTIEMBRE|OCTUBRE|NOVIEMBRE|DICIEMBRE)\s+(\d{2,4})`),
}

// monthNumbers maps Spanish month names (full and 3-letter) to 1-12.
var monthNumbers = map[string]int{
	"ene": 1, "enero": 1,
	"feb": 2, "febrero": 2,
	"mar": 3, "marzo": 3,
	"abr": 4, "abril": 4,
	"may": 5, "mayo": 5,
	"jun": 6, "junio": 6,
	"jul": 7, "julio": 7,
	"ago": 8, "agosto": 8,
	"sep": 9, "septiembre": 9,
	"oct": 10, "octubre": 10,
	"nov": 11, "noviembre": 11,
	"dic": 12, "diciembre": 12,
}

// itemPattern pairs a line shape with the groups holding name and price.
type itemPattern struct {
	re       *regexp.Regexp
	nameIdx  int
	priceIdx int
}

// Line-item shapes, tried in order per line:
// qty+name+price, name+price (grouped-thousands price only, to avoid
// false positives on short numeric noise), code+name+price.
var itemPatterns = []itemPattern{
	{regexp.MustCompile(`^\s*(\d+)\s+([A-ZÁÉÍÓÚÑ][A-Za-záéíóúñ\s\d.]+?)\s+\$?([\d.,]+)\s*$`), 2, 3},
	{regexp.MustCompile(`^\s*([A-ZÁÉÍÓÚÑ][A-Za-záéíóúñ\s\d.]{3,30}?)\s+\$?([\d]{1,3}(?:\.[\d]{3})+)\s*$`), 1, 2},
	{regexp.MustCompile(`^\s*[\d]+\s+([A-Za-záéíóúñ\s\d.]+?)\s+\$?([\d.,]+)\s*$`), 1, 2},
}

// Lines containing any of these words are bookkeeping, not products.
var itemExcludeKeywords = []string{
	"total", "subtotal", "iva", "neto", "rut", "boleta", "factura",
	"fecha", "hora", "cantidad", "precio", "descuento", "vuelto",
	"efectivo", "tarjeta", "debito", "credito", "cambio", "pago",
}

// groupingSeparators strips Chilean thousands separators from a matched
// amount before integer parsing.
var groupingSeparators = regexp.MustCompile(`[.,]`)
