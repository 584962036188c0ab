package types

// Catalog holds the option lists offered by the presentation layer. None of
// them is enforced by the store.
type Catalog struct {
	Departments []string `json:"departments" mapstructure:"departments"`
	ItemCodes   []string `json:"itemCodes" mapstructure:"item_codes"`
	// Categories has no backing field on PartRecord and never affects a query.
	Categories []string `json:"categories" mapstructure:"categories"`
}

// DefaultCatalog returns the option lists shipped with the inventory screen.
// The item codes are kept as shipped even though they repeat a department name.
func DefaultCatalog() Catalog {
	return Catalog{
		Departments: []string{"Cashier", "ConnecticutF", "IT Support", "Management"},
		ItemCodes:   []string{"ConnecticutF", "MassachusettsG", "NewYorkH"},
		Categories:  []string{"CPU", "GPU", "RAM", "Storage", "Motherboard"},
	}
}
