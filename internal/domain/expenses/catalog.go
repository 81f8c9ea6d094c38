package expenses

// BulkFallbackCategory catches bulk-form rows submitted without a category.
const BulkFallbackCategory = "utilities"

type catalogEntry struct {
	name             string
	displayName      string
	icon             string
	color            string
	requiresQuantity bool
	defaultUnit      string
	description      string
}

// catalogSeed is the fixed expense category catalog for Indian farm
// bookkeeping. Seeding is idempotent by name; edits here only add missing
// rows on the next start.
var catalogSeed = []catalogEntry{
	{"fertilizers", "Fertilizers & Nutrients", "fas fa-seedling", "success", true, "kg",
		"All types of fertilizers including Urea, DAP, NPK, organic fertilizers"},
	{"seeds", "Seeds & Planting Material", "fas fa-spa", "primary", true, "kg",
		"Seeds, seedlings, saplings, bulbs for planting"},
	{"labor", "Labor & Wages", "fas fa-users", "warning", true, "days",
		"Worker wages, labor charges, contracted services"},
	{"equipment", "Equipment & Machinery", "fas fa-cogs", "info", false, "units",
		"Farm equipment, machinery purchase/rental, maintenance"},
	{"crop_protection", "Crop Protection", "fas fa-shield-virus", "danger", true, "liters",
		"Pesticides, insecticides, herbicides, fungicides"},
	{"irrigation", "Irrigation & Water", "fas fa-tint", "info", true, "hours",
		"Water charges, drip irrigation, sprinkler costs"},
	{"land", "Land & Field Expenses", "fas fa-mountain", "secondary", true, "acres",
		"Field rent, land preparation, leveling, bunding"},
	{"transport", "Transportation & Logistics", "fas fa-truck", "dark", true, "trips",
		"Transportation of inputs/outputs, logistics costs"},
	{"marketing", "Marketing & Sales", "fas fa-chart-line", "success", false, "units",
		"Market fees, packaging, storage, commission"},
	{"utilities", "Utilities & Services", "fas fa-plug", "warning", false, "units",
		"Electricity, fuel, phone, internet, professional services"},
}

// DefaultCatalog materializes the seed list without IDs; the repository
// assigns IDs only for rows it actually inserts.
func DefaultCatalog() []ExpenseCategory {
	catalog := make([]ExpenseCategory, 0, len(catalogSeed))
	for _, entry := range catalogSeed {
		description := entry.description
		catalog = append(catalog, ExpenseCategory{
			Name:             entry.name,
			DisplayName:      entry.displayName,
			Icon:             entry.icon,
			Color:            entry.color,
			RequiresQuantity: entry.requiresQuantity,
			DefaultUnit:      entry.defaultUnit,
			Description:      &description,
			Active:           true,
		})
	}
	return catalog
}
