package catalog

import "github.com/asterixgo/codec/internal/schema"

// cat02 builds the CAT02 category (service messages): a single UAP with
// one reserved, never-present slot between the message type and the
// time-of-day items.
func cat02() schema.Category {
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
		"030": {
			ID:   "030",
			Name: "Time of Day",
			Kind: schema.KindFixed,
			Elements: []schema.ElementDef{
				{Name: "TOD", Bits: 24},
			},
		},
	}

	return schema.Category{
		Cat:     2,
		Name:    "Monoradar Service Messages",
		Edition: "1.0",
		Items:   items,
		UapVariants: map[string][]string{
			"default": {"010", "000", schema.SentinelUnused, "030"},
		},
		DefaultVariant: "default",
	}
}
