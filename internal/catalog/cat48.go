package catalog

import "github.com/asterixgo/codec/internal/schema"

// cat48 builds the CAT48 category (monoradar target reports): a single
// UAP whose 16th slot carries I030, a Repetitive (FX) list of warning/
// error condition codes.
func cat48() schema.Category {
	items := map[string]schema.ItemDef{
		"010": {
			ID:   "010",
			Name: "Data Source Identifier",
			Kind: schema.KindFixed,
			Elements: []schema.ElementDef{
				{Name: "SAC", Bits: 8},
				{Name: "SIC", Bits: 8},
			},
		},
		"030": {
			ID:         "030",
			Name:       "Warning/Error Conditions",
			Kind:       schema.KindRepetitive,
			RepElement: schema.ElementDef{Name: "code", Bits: 7},
		},
	}

	slots := make([]string, 16)
	slots[0] = "010"
	for i := 1; i < 15; i++ {
		slots[i] = schema.SentinelUnused
	}
	slots[15] = "030"

	return schema.Category{
		Cat:     48,
		Name:    "Monoradar Target Reports",
		Edition: "1.15",
		Items:   items,
		UapVariants: map[string][]string{
			"default": slots,
		},
		DefaultVariant: "default",
	}
}
