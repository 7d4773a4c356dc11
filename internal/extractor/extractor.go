// Package extractor turns raw OCR text into structured receipt fields.
// Extraction never fails: any field that cannot be confidently determined
// is left at its zero value, which is the expected outcome for noisy
// scans. Each field runs an ordered pattern cascade with per-match
// validation; the first structurally valid match wins.
package extractor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/GiraffosCom/boleta-scan/internal/catalog"
	"github.com/GiraffosCom/boleta-scan/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Extract parses recognized receipt text into structured fields.
func Extract(text string) models.Fields {
	lines := splitLines(text)

	fields := models.Fields{
		TaxID: extractTaxID(text),
	}
	fields.Store, fields.MerchantGroup = extractStore(text, lines)
	fields.Total = extractTotal(text)
	fields.Date = extractDate(text)
	fields.Items = extractItems(lines)
	fields.Description = buildDescription(fields.Items)

	log.WithFields(logrus.Fields{
		"store": fields.Store,
		"total": fields.Total,
		"date":  fields.Date,
		"items": len(fields.Items),
	}).Debug("Extracted receipt fields")

	return fields
}

// splitLines returns trimmed, non-empty lines in original order.
func splitLines(text string) []string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// extractTaxID finds a Chilean RUT, preferring labeled forms.
func extractTaxID(text string) string {
	for _, p := range taxIDPatterns {
		if m := p.re.FindStringSubmatch(text); m != nil {
			return strings.ToUpper(m[p.group])
		}
	}
	return ""
}

// extractStore determines the merchant name and, when a known chain is
// recognized, its business-category group. Three tiers: known chains,
// labeled or standalone-caps patterns, then a first-lines fallback.
func extractStore(text string, lines []string) (store, group string) {
	upper := strings.ToUpper(text)

	for _, g := range catalog.MerchantGroups {
		for _, name := range g.Stores {
			if strings.Contains(upper, name) {
				return name, g.Name
			}
		}
	}

	for _, p := range storePatterns {
		if m := p.re.FindStringSubmatch(text); m != nil {
			candidate := strings.TrimSpace(m[p.group])
			if !storeReservedWords.MatchString(candidate) && len([]rune(candidate)) > 3 {
				return candidate, ""
			}
		}
	}

	// Fallback: first alphabetic-looking line near the top.
	for i, line := range lines {
		if i >= 5 {
			break
		}
		clean := strings.TrimSpace(nonLetters.ReplaceAllString(line, ""))
		n := len([]rune(clean))
		if n > 3 && n < 40 && !fallbackReservedWords.MatchString(clean) {
			return clean, ""
		}
	}

	return "", ""
}

// extractTotal finds the payable total. SUBTOTAL lines are stripped first
// so a subtotal can never win over the real total; a match outside the
// plausible range does not stop the cascade.
func extractTotal(text string) int {
	searchText := subtotalLine.ReplaceAllString(text, "")

	for _, p := range totalPatterns {
		m := p.re.FindStringSubmatch(searchText)
		if m == nil {
			continue
		}
		raw := m[p.group]
		total, err := strconv.Atoi(groupingSeparators.ReplaceAllString(raw, ""))
		if err != nil {
			continue
		}
		if total >= models.MinTotal && total <= models.MaxTotal {
			log.WithFields(logrus.Fields{"raw": raw, "total": total}).Debug("Total matched")
			return total
		}
	}
	return 0
}

// extractDate finds a transaction date and normalizes it to YYYY-MM-DD.
// Two-digit years are expanded with a 20 prefix; day and month must be
// structurally valid or the cascade continues.
func extractDate(text string) string {
	for _, re := range datePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		var year string
		var month, day int

		switch {
		case len(m[1]) == 4:
			// YYYY-MM-DD
			year = m[1]
			month, _ = strconv.Atoi(m[2])
			day, _ = strconv.Atoi(m[3])
		case !isNumeric(m[2]):
			// DD <month name> YYYY
			day, _ = strconv.Atoi(m[1])
			month = monthNumber(m[2])
			year = expandYear(m[3])
		default:
			// DD/MM/YYYY or DD/MM/YY
			day, _ = strconv.Atoi(m[1])
			month, _ = strconv.Atoi(m[2])
			year = expandYear(m[3])
		}

		if day >= 1 && day <= 31 && month >= 1 && month <= 12 {
			date := fmt.Sprintf("%s-%02d-%02d", year, month, day)
			log.WithFields(logrus.Fields{"raw": m[0], "date": date}).Debug("Date matched")
			return date
		}
	}
	return ""
}

func isNumeric(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

func monthNumber(name string) int {
	lower := strings.ToLower(name)
	if len(lower) >= 3 {
		if n, ok := monthNumbers[lower[:3]]; ok {
			return n
		}
	}
	return monthNumbers[lower]
}

func expandYear(y string) string {
	if len(y) == 2 {
		return "20" + y
	}
	return y
}

// extractItems collects purchased products from lines that are not
// bookkeeping. Per line, the first matching shape is final: a candidate
// failing validation does not fall through to looser shapes, which would
// reinterpret the same digits.
func extractItems(lines []string) []models.LineItem {
	var items []models.LineItem

	for _, line := range lines {
		if len(items) >= models.MaxItems {
			break
		}
		lower := strings.ToLower(line)
		if containsAny(lower, itemExcludeKeywords) {
			continue
		}

		for _, p := range itemPatterns {
			m := p.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}

			name := strings.TrimSpace(m[p.nameIdx])
			price, err := strconv.Atoi(groupingSeparators.ReplaceAllString(m[p.priceIdx], ""))

			n := len([]rune(name))
			if err == nil &&
				n >= models.MinItemNameLen && n <= models.MaxItemNameLen &&
				price >= models.MinItemPrice && price <= models.MaxItemPrice {
				items = append(items, models.LineItem{
					Name:           name,
					Price:          price,
					PriceFormatted: models.FormatCLP(price),
				})
			}
			break
		}
	}
	return items
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// buildDescription summarizes the extracted items: the first three names
// comma-joined, with a (+N más) suffix when more were found.
func buildDescription(items []models.LineItem) string {
	if len(items) == 0 {
		return ""
	}
	head := len(items)
	if head > 3 {
		head = 3
	}
	names := make([]string, 0, head)
	for _, it := range items[:head] {
		names = append(names, it.Name)
	}
	desc := strings.Join(names, ", ")
	if len(items) > 3 {
		desc += fmt.Sprintf(" (+%d más)", len(items)-3)
	}
	return desc
}
