package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GiraffosCom/boleta-scan/internal/models"
)

func TestWriteItems(t *testing.T) {
	items := []models.LineItem{
		{Name: "PAN MARRAQUETA", Price: 1250, PriceFormatted: "$1.250"},
		{Name: "LECHE ENTERA", Price: 1890, PriceFormatted: "$1.890"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteItems(&buf, items))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "name,price,price_formatted", lines[0])
	assert.Equal(t, "PAN MARRAQUETA,1250,$1.250", lines[1])
	assert.Equal(t, "LECHE ENTERA,1890,$1.890", lines[2])
}

func TestWriteItemsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteItems(&buf, nil))

	assert.Equal(t, "name,price,price_formatted", strings.TrimSpace(buf.String()))
}

func TestWriteRecords(t *testing.T) {
	records := []models.ReceiptRecord{
		{
			Store:              "LIDER",
			TaxID:              "76.123.456-7",
			Total:              4498,
			Date:               "2024-03-15",
			Items:              []models.LineItem{{Name: "PAN", Price: 1250}},
			Description:        "PAN",
			Category:           models.CategoryGroceries,
			CategorySource:     models.SourceMerchant,
			CategoryConfidence: 15,
			OCRConfidence:      88,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRecords(&buf, records))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Fecha,Comercio,RUT,Total,Categoria,Fuente,Confianza,Articulos,Descripcion,ConfianzaOCR", lines[0])
	assert.Equal(t, "2024-03-15,LIDER,76.123.456-7,4498,alimentacion,merchant,15,1,PAN,88", lines[1])
}

func TestWriteItemsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "items.csv")

	err := WriteItemsToFile([]models.LineItem{{Name: "AGUA MINERAL", Price: 990, PriceFormatted: "$990"}}, path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "AGUA MINERAL,990,$990")
}
