// Package catalog holds the static lookup tables used by the extractor and
// the classifier: known Chilean merchant chains grouped by business type,
// the group-to-category mapping, and the per-category product keyword
// dictionaries. The tables are built once at process start and never
// mutated afterwards; user-supplied YAML overrides are layered on top by
// the store package.
package catalog

import "github.com/GiraffosCom/boleta-scan/internal/models"

// Merchant group names.
const (
	GroupSupermarkets = "supermarkets"
	GroupRetail       = "retail"
	GroupPharmacies   = "pharmacies"
	GroupGasStations  = "gasStations"
	GroupFastFood     = "fastFood"
	GroupConvenience  = "convenience"
	GroupHardware     = "hardware"
	GroupTech         = "tech"
)

// MerchantGroup associates a business-category group with the store-name
// substrings that identify it and the spending category it implies.
type MerchantGroup struct {
	Name     string
	Stores   []string
	Category string
}

// MerchantGroups lists the known chains in lookup priority order. The
// first group containing a matching store name wins, so the order is part
// of the extraction contract.
var MerchantGroups = []MerchantGroup{
	{
		Name: GroupSupermarkets,
		Stores: []string{
			"LIDER", "JUMBO", "SANTA ISABEL", "TOTTUS", "UNIMARC", "ACUENTA",
			"BIGGER", "EKONO", "MAYORISTA 10", "CENTRAL MAYORISTA", "ALVI",
			"OK MARKET", "OXXO", "BIG JOHN", "MONTSERRAT", "SUPER BODEGA",
		},
		Category: models.CategoryGroceries,
	},
	{
		Name: GroupRetail,
		Stores: []string{
			"FALABELLA", "RIPLEY", "PARIS", "LA POLAR", "HITES", "ABC DIN",
			"CORONA", "TRICOT", "FASHION PARK", "JOHNSON",
		},
		Category: models.CategoryApparel,
	},
	{
		Name: GroupPharmacies,
		Stores: []string{
			"CRUZ VERDE", "AHUMADA", "SALCOBRAND", "DR SIMI", "KNOP",
			"FARMACIA MAPUCHE", "FARMACIAS DEL DR",
		},
		Category: models.CategoryHealth,
	},
	{
		Name: GroupGasStations,
		Stores: []string{
			"COPEC", "SHELL", "PETROBRAS", "TERPEL", "ENEX", "ARAMCO",
		},
		Category: models.CategoryTransport,
	},
	{
		Name: GroupFastFood,
		Stores: []string{
			"MCDONALDS", "MC DONALDS", "BURGER KING", "STARBUCKS", "DUNKIN",
			"SUBWAY", "KFC", "PAPA JOHNS", "PIZZA HUT", "DOMINOS", "TELEPIZZA",
			"DOGGIS", "TARRAGONA", "JUAN MAESTRO", "LOMITOS",
		},
		Category: models.CategoryGroceries,
	},
	{
		Name: GroupConvenience,
		Stores: []string{
			"PRONTO", "PUNTO", "SPACIO 1", "GLOBO", "ON THE RUN",
		},
		Category: models.CategoryGroceries,
	},
	{
		Name: GroupHardware,
		Stores: []string{
			"SODIMAC", "EASY", "CONSTRUMART", "MTS", "IMPERIAL", "FERRETERIA",
		},
		Category: models.CategoryHousehold,
	},
	{
		Name: GroupTech,
		Stores: []string{
			"PCFACTORY", "PC FACTORY", "WEPLASH", "SOLOTODO", "REIFSTORE",
			"MACSTORE", "ISHOP", "MOVISTAR", "ENTEL", "WOM", "CLARO",
		},
		Category: models.CategoryServices,
	},
}

// GroupCategory returns the spending category implied by a merchant group,
// or "otro" for an unknown group.
func GroupCategory(group string) string {
	for _, g := range MerchantGroups {
		if g.Name == group {
			return g.Category
		}
	}
	return models.CategoryOther
}
