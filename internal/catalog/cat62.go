package catalog

import "github.com/asterixgo/codec/internal/schema"

// cat62 builds the CAT62 category (system track data): a single UAP
// whose slot 3 is I510, a RepetitiveGroupFX of per-sensor track/ident
// groups.
func cat62() schema.Category {
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
		"040": {
			ID:   "040",
			Name: "Track Number",
			Kind: schema.KindFixed,
			Elements: []schema.ElementDef{
				{Name: "TRKNUM", Bits: 16},
			},
		},
		"510": {
			ID:   "510",
			Name: "Composed Track Number",
			Kind: schema.KindRepetitiveGroupFX,
			RepGroupElements: []schema.ElementDef{
				{Name: "IDENT", Bits: 7},
				{Name: "TRACK", Bits: 16},
			},
		},
	}

	return schema.Category{
		Cat:     62,
		Name:    "System Track Data",
		Edition: "1.18",
		Items:   items,
		UapVariants: map[string][]string{
			"default": {"010", "040", "510"},
		},
		DefaultVariant: "default",
	}
}
