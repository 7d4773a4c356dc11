package models

// Spending categories. The values keep the Spanish labels used on Chilean
// receipts and in the expense UI; downstream consumers match on them.
const (
	CategoryGroceries     = "alimentacion"
	CategoryHealth        = "salud"
	CategoryTransport     = "transporte"
	CategoryHousehold     = "hogar"
	CategoryApparel       = "ropa"
	CategoryEntertainment = "entretenimiento"
	CategoryEducation     = "educacion"
	CategoryServices      = "servicios"
	CategoryPersonalCare  = "belleza"
	CategoryOther         = "otro"
)

// Category signal sources.
const (
	SourceMerchant = "merchant"
	SourceProduct  = "product"
)

// Extraction bounds. Values outside these ranges are treated as misreads
// and discarded, never reported.
const (
	MinTotal = 100
	MaxTotal = 10_000_000

	MinItemPrice = 10
	MaxItemPrice = 1_000_000

	MinItemNameLen = 3
	MaxItemNameLen = 49

	MaxItems = 20

	// MaxMatchedKeywords bounds the evidence list attached to a
	// product-based classification.
	MaxMatchedKeywords = 5
)
