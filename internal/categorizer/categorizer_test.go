package categorizer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GiraffosCom/boleta-scan/internal/catalog"
	"github.com/GiraffosCom/boleta-scan/internal/models"
	"github.com/GiraffosCom/boleta-scan/internal/store"
)

type stubAI struct {
	category string
	err      error
	called   bool
}

func (s *stubAI) Categorize(ctx context.Context, receiptText string) (string, error) {
	s.called = true
	return s.category, s.err
}

func TestClassifyMerchantSignalOnly(t *testing.T) {
	c := New(nil, nil)

	result := c.Classify(context.Background(), catalog.GroupSupermarkets, "BOLETA LIDER", nil)

	assert.Equal(t, models.CategoryGroceries, result.Category)
	assert.Equal(t, models.SourceMerchant, result.Source)
	assert.Equal(t, 0, result.Confidence)
	assert.Empty(t, result.MatchedKeywords)
}

func TestClassifyProductOverridesMerchant(t *testing.T) {
	c := New(nil, nil)

	text := "COMPRA SUPERMERCADO\nPARACETAMOL 500MG"
	items := []models.LineItem{{Name: "PARACETAMOL 500MG", Price: 2990}}

	result := c.Classify(context.Background(), catalog.GroupSupermarkets, text, items)

	assert.Equal(t, models.CategoryHealth, result.Category)
	assert.Equal(t, models.SourceProduct, result.Source)
	assert.GreaterOrEqual(t, result.Confidence, ProductOverrideConfidence)
	assert.Contains(t, result.MatchedKeywords, "PARACETAMOL")
}

func TestClassifyWeakProductSignalKeepsMerchant(t *testing.T) {
	c := New(nil, nil)

	// One whole-word text match scores below the override floor.
	result := c.Classify(context.Background(), catalog.GroupGasStations, "UN AGUA", nil)

	assert.Equal(t, models.CategoryTransport, result.Category)
	assert.Equal(t, models.SourceMerchant, result.Source)
	assert.Equal(t, textMatchWeight*confidencePerScorePoint, result.Confidence)
}

func TestClassifyNoSignals(t *testing.T) {
	c := New(nil, nil)

	result := c.Classify(context.Background(), "", "XYZZY QWERTY", nil)

	assert.Equal(t, models.CategoryOther, result.Category)
	assert.Equal(t, models.SourceMerchant, result.Source)
	assert.Equal(t, 0, result.Confidence)
}

func TestScoreProductsConfidenceCapAndKeywordLimit(t *testing.T) {
	c := New(nil, nil)

	result := c.scoreProducts("LECHE PAN QUESO ARROZ AZUCAR ACEITE FIDEO", nil)

	assert.Equal(t, models.CategoryGroceries, result.Category)
	assert.Equal(t, 100, result.Confidence)
	assert.Len(t, result.MatchedKeywords, models.MaxMatchedKeywords)
}

func TestScoreProductsTieBreaksByTableOrder(t *testing.T) {
	c := New(nil, nil)

	// One groceries keyword and one health keyword, same score.
	result := c.scoreProducts("LECHE PARACETAMOL", nil)

	assert.Equal(t, models.CategoryGroceries, result.Category)
}

func TestClassifyAIFallback(t *testing.T) {
	t.Run("suggestion used when fully defaulted", func(t *testing.T) {
		ai := &stubAI{category: models.CategoryTransport}
		c := New(nil, ai)

		result := c.Classify(context.Background(), "", "XYZZY QWERTY", nil)

		assert.True(t, ai.called)
		assert.Equal(t, models.CategoryTransport, result.Category)
		assert.Equal(t, models.SourceMerchant, result.Source)
		assert.Equal(t, 0, result.Confidence)
	})

	t.Run("unknown suggestion ignored", func(t *testing.T) {
		ai := &stubAI{category: "not-a-category"}
		c := New(nil, ai)

		result := c.Classify(context.Background(), "", "XYZZY QWERTY", nil)

		assert.Equal(t, models.CategoryOther, result.Category)
	})

	t.Run("error falls back to default", func(t *testing.T) {
		ai := &stubAI{err: errors.New("quota exceeded")}
		c := New(nil, ai)

		result := c.Classify(context.Background(), "", "XYZZY QWERTY", nil)

		assert.Equal(t, models.CategoryOther, result.Category)
	})

	t.Run("never consulted when merchant is known", func(t *testing.T) {
		ai := &stubAI{category: models.CategoryTransport}
		c := New(nil, ai)

		result := c.Classify(context.Background(), catalog.GroupSupermarkets, "XYZZY QWERTY", nil)

		assert.False(t, ai.called)
		assert.Equal(t, models.CategoryGroceries, result.Category)
	})
}

func TestClassifyWithCatalogOverrides(t *testing.T) {
	dir := t.TempDir()
	categoriesPath := filepath.Join(dir, "categories.yaml")
	require.NoError(t, os.WriteFile(categoriesPath, []byte(`categories:
  - name: salud
    keywords:
      - AMOXICILINA
`), 0600))
	merchantsPath := filepath.Join(dir, "merchants.yaml")
	require.NoError(t, os.WriteFile(merchantsPath, []byte(`merchants:
  - name: localSupermarkets
    category: alimentacion
    stores:
      - EL TREBOL
`), 0600))

	c := New(store.NewCatalogStore(categoriesPath, merchantsPath), nil)

	t.Run("override keyword scores its category", func(t *testing.T) {
		result := c.Classify(context.Background(), "", "AMOXICILINA 500MG", []models.LineItem{{Name: "AMOXICILINA 500MG"}})

		assert.Equal(t, models.CategoryHealth, result.Category)
		assert.Equal(t, models.SourceProduct, result.Source)
	})

	t.Run("override merchant recognized from text", func(t *testing.T) {
		result := c.Classify(context.Background(), "", "SUPERMERCADO EL TREBOL\nBOLETA 1234", nil)

		assert.Equal(t, models.CategoryGroceries, result.Category)
		assert.Equal(t, models.SourceMerchant, result.Source)
	})
}

func TestMergeKeywords(t *testing.T) {
	base := []catalog.CategoryKeywords{
		{Category: "a", Keywords: []string{"X"}},
	}
	overrides := []catalog.CategoryKeywords{
		{Category: "a", Keywords: []string{"Y"}},
		{Category: "b", Keywords: []string{"Z"}},
	}

	merged := mergeKeywords(base, overrides)

	assert.Len(t, merged, 2)
	assert.Equal(t, []string{"X", "Y"}, merged[0].Keywords)
	assert.Equal(t, "b", merged[1].Category)
}

func TestMerchantFallbackCategory(t *testing.T) {
	tests := []struct {
		name     string
		store    string
		expected string
	}{
		{"known chain", "LIDER MAIPU", models.CategoryGroceries},
		{"pharmacy keyword", "FARMACIA INDEPENDIENTE", models.CategoryHealth},
		{"hardware keyword", "CONSTRUCTORA DEL SUR", models.CategoryHousehold},
		{"unknown", "XYZZY QWERTY", models.CategoryOther},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MerchantFallbackCategory(tc.store))
		})
	}
}
