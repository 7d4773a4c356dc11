// Package categorizer assigns a spending category to an extracted
// receipt using two independent signals: the recognized merchant chain
// and the products that were actually purchased. Product evidence wins
// over merchant identity once it clears a fixed confidence floor, so a
// medicine purchase at a supermarket still classifies as health.
package categorizer

import (
	"context"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/GiraffosCom/boleta-scan/internal/catalog"
	"github.com/GiraffosCom/boleta-scan/internal/models"
	"github.com/GiraffosCom/boleta-scan/internal/store"
)

// ProductOverrideConfidence is the floor above which the product-based
// signal supersedes the merchant-based one. This asymmetric threshold is
// the single most significant decision in the classifier: what was bought
// is stronger evidence than where it was bought.
const ProductOverrideConfidence = 30

// confidencePerScorePoint converts the accumulated keyword score into a
// 0-100 confidence. The scale is calibrated against real receipts;
// downstream thresholds depend on it, so it must not drift.
const confidencePerScorePoint = 15

// textMatchWeight and itemMatchWeight weight the two evidence sources: a
// keyword inside a confirmed line item counts double a loose mention in
// the full text.
const (
	textMatchWeight = 1
	itemMatchWeight = 2
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Classifier scores receipts against the product keyword dictionaries.
// Construct once and reuse; Classify is safe for concurrent use.
type Classifier struct {
	keywords  []catalog.CategoryKeywords
	merchants []catalog.MerchantGroup     // user-defined chains, not in the built-in table
	wordRes   map[string][]*regexp.Regexp // category -> whole-word matchers
	aiClient  AIClient
}

// New builds a Classifier from the built-in keyword tables plus any YAML
// overrides found via st. Both st and aiClient may be nil.
func New(st *store.CatalogStore, aiClient AIClient) *Classifier {
	keywords := catalog.ProductKeywords
	var merchants []catalog.MerchantGroup
	if st != nil {
		overrides, err := st.LoadKeywordOverrides()
		if err != nil {
			log.WithError(err).Warn("Failed to load keyword overrides")
		} else if len(overrides) > 0 {
			keywords = mergeKeywords(keywords, overrides)
		}

		merchants, err = st.LoadMerchantOverrides()
		if err != nil {
			log.WithError(err).Warn("Failed to load merchant overrides")
			merchants = nil
		}
	}

	c := &Classifier{
		keywords:  keywords,
		merchants: merchants,
		wordRes:   make(map[string][]*regexp.Regexp, len(keywords)),
		aiClient:  aiClient,
	}
	for _, ck := range keywords {
		res := make([]*regexp.Regexp, 0, len(ck.Keywords))
		for _, kw := range ck.Keywords {
			res = append(res, regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)+`\b`))
		}
		c.wordRes[ck.Category] = res
	}
	return c
}

// mergeKeywords appends override keywords to their category's built-in
// list; unknown categories are added at the end of the scoring order.
func mergeKeywords(base, overrides []catalog.CategoryKeywords) []catalog.CategoryKeywords {
	merged := make([]catalog.CategoryKeywords, len(base))
	copy(merged, base)
	for _, o := range overrides {
		found := false
		for i := range merged {
			if merged[i].Category == o.Category {
				merged[i].Keywords = append(append([]string{}, merged[i].Keywords...), o.Keywords...)
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, o)
		}
	}
	return merged
}

// Classify merges the merchant signal with product-keyword scoring.
// merchantGroup is the business-category group from the extractor's known
// chain lookup, empty when no chain was recognized. Classification never
// fails; absence of any signal yields the default category.
func (c *Classifier) Classify(ctx context.Context, merchantGroup, text string, items []models.LineItem) models.Classification {
	merchantCategory := models.CategoryOther
	if merchantGroup != "" {
		merchantCategory = catalog.GroupCategory(merchantGroup)
	} else if cat := c.overrideMerchantCategory(text); cat != "" {
		merchantCategory = cat
	}

	product := c.scoreProducts(text, items)

	if product.Confidence >= ProductOverrideConfidence {
		log.WithFields(logrus.Fields{
			"category":   product.Category,
			"confidence": product.Confidence,
			"keywords":   product.MatchedKeywords,
		}).Debug("Product signal overrides merchant category")
		product.Source = models.SourceProduct
		return product
	}

	result := models.Classification{
		Category:        merchantCategory,
		Confidence:      product.Confidence,
		Source:          models.SourceMerchant,
		MatchedKeywords: []string{},
	}

	// Supplemental fallback: when neither signal produced anything, an
	// optional AI client may suggest a label. Disabled by default and
	// never consulted when a deterministic signal exists.
	if result.Category == models.CategoryOther && product.Confidence == 0 && c.aiClient != nil {
		if suggested, err := c.aiClient.Categorize(ctx, text); err != nil {
			log.WithError(err).Warn("AI categorization failed")
		} else if c.knownCategory(suggested) {
			log.WithField("category", suggested).Debug("Category suggested by AI fallback")
			result.Category = suggested
		}
	}

	return result
}

// scoreProducts runs the product-keyword scorer: whole-word occurrences
// in the full text count textMatchWeight each, keyword containment in a
// confirmed item name counts itemMatchWeight. The first category in
// table order with the strictly highest score wins.
func (c *Classifier) scoreProducts(text string, items []models.LineItem) models.Classification {
	upperText := strings.ToUpper(text)

	scores := make(map[string]int, len(c.keywords))
	matched := make(map[string][]string, len(c.keywords))

	for _, ck := range c.keywords {
		res := c.wordRes[ck.Category]
		for i, kw := range ck.Keywords {
			if n := len(res[i].FindAllStringIndex(upperText, -1)); n > 0 {
				scores[ck.Category] += n * textMatchWeight
				matched[ck.Category] = appendUnique(matched[ck.Category], kw)
			}
		}
	}

	for _, item := range items {
		itemUpper := strings.ToUpper(item.Name)
		for _, ck := range c.keywords {
			for _, kw := range ck.Keywords {
				if strings.Contains(itemUpper, kw) {
					scores[ck.Category] += itemMatchWeight
					matched[ck.Category] = appendUnique(matched[ck.Category], kw)
				}
			}
		}
	}

	best := models.Classification{
		Category:        models.CategoryOther,
		Source:          models.SourceProduct,
		MatchedKeywords: []string{},
	}
	maxScore := 0
	for _, ck := range c.keywords {
		if s := scores[ck.Category]; s > maxScore {
			maxScore = s
			best.Category = ck.Category
			best.MatchedKeywords = matched[ck.Category]
		}
	}

	best.Confidence = maxScore * confidencePerScorePoint
	if best.Confidence > 100 {
		best.Confidence = 100
	}
	if len(best.MatchedKeywords) > models.MaxMatchedKeywords {
		best.MatchedKeywords = best.MatchedKeywords[:models.MaxMatchedKeywords]
	}
	return best
}

// overrideMerchantCategory checks the user-defined merchant groups against
// the receipt text. The extractor only knows the built-in chains, so
// user-added chains are recognized here instead.
func (c *Classifier) overrideMerchantCategory(text string) string {
	if len(c.merchants) == 0 {
		return ""
	}
	upper := strings.ToUpper(text)
	for _, g := range c.merchants {
		for _, name := range g.Stores {
			if strings.Contains(upper, name) {
				return g.Category
			}
		}
	}
	return ""
}

func (c *Classifier) knownCategory(name string) bool {
	for _, ck := range c.keywords {
		if ck.Category == name {
			return true
		}
	}
	return name == models.CategoryOther
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}

// merchantKeywordFallbacks classifies unrecognized store names by generic
// business words in the name itself.
var merchantKeywordFallbacks = []struct {
	re       *regexp.Regexp
	category string
}{
	{regexp.MustCompile(`(?i)FARMACIA|DROGUERIA|SALUD|MEDIC`), models.CategoryHealth},
	{regexp.MustCompile(`(?i)RESTAURANT|COMIDA|CAFE|PIZZA|SUSHI|POLLO`), models.CategoryGroceries},
	{regexp.MustCompile(`(?i)BENCIN|COMBUSTIBLE|ESTACION|SERVITECA`), models.CategoryTransport},
	{regexp.MustCompile(`(?i)FERRET|CONSTRUC|PINTUR`), models.CategoryHousehold},
	{regexp.MustCompile(`(?i)LIBRER|PAPELER|ESCOLAR|UNIVERSIDAD`), models.CategoryEducation},
	{regexp.MustCompile(`(?i)CINE|TEATRO|ENTRETENIM|JUEGO`), models.CategoryEntertainment},
	{regexp.MustCompile(`(?i)ROPA|VESTIR|ZAPATER|CALZADO|MODA`), models.CategoryApparel},
}

// MerchantFallbackCategory suggests a category from a store name alone:
// known chains first, then generic business keywords. Used by callers
// that only have a merchant name (e.g. manual expense entry).
func MerchantFallbackCategory(storeName string) string {
	upper := strings.ToUpper(storeName)

	for _, g := range catalog.MerchantGroups {
		for _, name := range g.Stores {
			if strings.Contains(upper, name) {
				return g.Category
			}
		}
	}
	for _, f := range merchantKeywordFallbacks {
		if f.re.MatchString(upper) {
			return f.category
		}
	}
	return models.CategoryOther
}
