package domain

// DefaultProducts returns the built-in product catalog. User-added products
// are stored separately and appended after these; the duplicate check on
// (name, size) spans both sets.
func DefaultProducts() []Product {
	return []Product{
		{ProductID: "granit_maximum_15w40_20l", Name: "Granit Maximum 15W40", Size: "20L", Category: CategoryPail},
		{ProductID: "granit_maximum_15w40_205l", Name: "Granit Maximum 15W40", Size: "205L", Category: CategoryDrums},
		{ProductID: "granit_super_20w50_20l", Name: "Granit Super 20W50", Size: "20L", Category: CategoryPail},
		{ProductID: "granit_super_20w50_205l", Name: "Granit Super 20W50", Size: "205L", Category: CategoryDrums},
		{ProductID: "titan_cargo_maxx_10w40_20l", Name: "Titan Cargo Maxx 10W40", Size: "20L", Category: CategoryPail},
		{ProductID: "titan_cargo_maxx_10w40_1000l", Name: "Titan Cargo Maxx 10W40", Size: "1000L", Category: CategoryIBC},
		{ProductID: "agrifarm_stou_10w30_20l", Name: "Agrifarm STOU 10W30", Size: "20L", Category: CategoryPail},
		{ProductID: "maintain_fricofin_coolant_1l", Name: "Maintain Fricofin Coolant", Size: "1L", Category: CategorySmallBottles},
		{ProductID: "maintain_fricofin_coolant_5l", Name: "Maintain Fricofin Coolant", Size: "5L", Category: CategorySmallBottles},
		{ProductID: "renolin_b20_hydraulic_205l", Name: "Renolin B20 Hydraulic", Size: "205L", Category: CategoryDrums},
	}
}
