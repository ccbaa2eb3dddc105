package catalog

import "github.com/asterixgo/codec/internal/schema"

// cat34 builds the CAT34 category (transmission of monoradar service
// messages): a single UAP whose slot 6 is I050, a Compound item with a
// COM status sub-item and a PSR status sub-item.
func cat34() schema.Category {
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
		"000": {
			ID:   "000",
			Name: "Message Type",
			Kind: schema.KindFixed,
			Elements: []schema.ElementDef{
				{Name: "MT", Bits: 8},
			},
		},
		"050": {
			ID:   "050",
			Name: "System Configuration and Status",
			Kind: schema.KindCompound,
			CompoundSubItems: []schema.CompoundSubItemDef{
				{Name: "COM", Elements: []schema.ElementDef{{Name: "TYP", Bits: 8}}},
				{Name: schema.SentinelUnused},
				{Name: schema.SentinelUnused},
				{Name: "PSR", Elements: []schema.ElementDef{
					{Name: "spare0", Bits: 2, IsSpare: true},
					{Name: "CHAB", Bits: 1},
					{Name: "spare1", Bits: 5, IsSpare: true},
				}},
			},
		},
	}

	return schema.Category{
		Cat:     34,
		Name:    "Transmission of Monoradar Service Messages",
		Edition: "1.27",
		Items:   items,
		UapVariants: map[string][]string{
			"default": {
				"010", "000", schema.SentinelUnused, schema.SentinelUnused,
				schema.SentinelUnused, "050",
			},
		},
		DefaultVariant: "default",
	}
}
