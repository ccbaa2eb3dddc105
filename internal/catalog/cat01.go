package catalog

import "github.com/asterixgo/codec/internal/schema"

// cat01 builds the CAT01 category: two UAP variants, "plot" and "track",
// sharing the I010/I020 prefix and diverging on I020's target report
// type, selected through a UapCase discriminator.
func cat01() schema.Category {
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
		"020": {
			ID:   "020",
			Name: "Target Report Descriptor",
			Kind: schema.KindExtended,
			Octets: []schema.OctetDef{
				{Elements: []schema.ElementDef{
					{Name: "TYP", Bits: 3},
					{Name: "SSRPSR", Bits: 1},
					{Name: "spare", Bits: 3, IsSpare: true},
				}},
			},
		},
		"040": {
			ID:   "040",
			Name: "Measured Position in Polar Coordinates",
			Kind: schema.KindFixed,
			Elements: []schema.ElementDef{
				{Name: "RHO", Bits: 16},
				{Name: "THETA", Bits: 16},
			},
		},
		"070": {
			ID:   "070",
			Name: "Mode-3/A Code",
			Kind: schema.KindFixed,
			Elements: []schema.ElementDef{
				{Name: "V", Bits: 1},
				{Name: "G", Bits: 1},
				{Name: "L", Bits: 1},
				{Name: "spare", Bits: 1, IsSpare: true},
				{Name: "MODE3A", Bits: 12},
			},
		},
		"090": {
			ID:   "090",
			Name: "Flight Level",
			Kind: schema.KindFixed,
			Elements: []schema.ElementDef{
				{Name: "V", Bits: 1},
				{Name: "G", Bits: 1},
				{Name: "spare", Bits: 2, IsSpare: true},
				{Name: "FL", Bits: 12},
			},
		},
		"130": {
			ID:   "130",
			Name: "Radar Plot Characteristics",
			Kind: schema.KindCompound,
			CompoundSubItems: []schema.CompoundSubItemDef{
				{Name: "SRL", Elements: []schema.ElementDef{{Name: "SRL", Bits: 8}}},
				{Name: "SAM", Elements: []schema.ElementDef{{Name: "SAM", Bits: 8}}},
			},
		},
		"141": {
			ID:   "141",
			Name: "Truncated Time of Day",
			Kind: schema.KindFixed,
			Elements: []schema.ElementDef{
				{Name: "TOD", Bits: 16},
			},
		},
		"042": {
			ID:   "042",
			Name: "Calculated Position in Cartesian Coordinates",
			Kind: schema.KindFixed,
			Elements: []schema.ElementDef{
				{Name: "X", Bits: 16},
				{Name: "Y", Bits: 16},
			},
		},
		"200": {
			ID:   "200",
			Name: "Calculated Track Velocity",
			Kind: schema.KindFixed,
			Elements: []schema.ElementDef{
				{Name: "GS", Bits: 16},
				{Name: "HDG", Bits: 16},
			},
		},
	}

	return schema.Category{
		Cat:     1,
		Name:    "Monoradar Target Reports",
		Edition: "1.3",
		Items:   items,
		UapVariants: map[string][]string{
			"plot":  {"010", "020", "040", "070", "090", "130", schema.SentinelRFS},
			"track": {"010", "020", "141", "040", "042", "200", schema.SentinelRFS},
		},
		DefaultVariant: "plot",
		UapCase: &schema.UapCase{
			ItemID: "020",
			Field:  "TYP",
			ValueToVariant: map[uint64]string{
				0: "plot",
				1: "track",
			},
		},
	}
}
