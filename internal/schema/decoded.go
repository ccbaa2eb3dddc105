package schema

// DecodedItem is the decoded value of one Data Item present in a record.
// All field values are the raw unsigned integer read from the wire; sign
// extension, scale, and unit interpretation are a consumer's concern, not
// the codec's.
type DecodedItem struct {
	ItemID string
	Kind   Kind

	// Fixed & Extended flat fields, keyed by element name. Spares never
	// appear here.
	Fields map[string]uint64

	// Repetitive (FX form): one entry per repeated 7-bit value, in wire
	// order.
	Repetitions []uint64

	// RepetitiveGroup / RepetitiveGroupFX: one map per group, in wire
	// order.
	GroupRepetitions []map[string]uint64

	// Explicit/SP: payload bytes, not including the length byte itself.
	RawBytes []byte

	// Compound: present sub-items keyed by sub-item name.
	CompoundSubFields map[string]map[string]uint64
}

// NewDecodedItem returns a zero-value DecodedItem for the given definition
// with its maps/slices ready to populate.
func NewDecodedItem(def ItemDef) *DecodedItem {
	di := &DecodedItem{ItemID: def.ID, Kind: def.Kind}
	switch def.Kind {
	case KindFixed, KindExtended:
		di.Fields = make(map[string]uint64)
	case KindCompound:
		di.CompoundSubFields = make(map[string]map[string]uint64)
	}
	return di
}

// DecodedRecord is one fully or partially decoded Data Record.
type DecodedRecord struct {
	Items        map[string]*DecodedItem
	UapVariation string
	Valid        bool
	Error        string
}

// NewDecodedRecord returns an empty, valid DecodedRecord.
func NewDecodedRecord() *DecodedRecord {
	return &DecodedRecord{Items: make(map[string]*DecodedItem), Valid: true}
}

// DecodedBlock is the result of decoding one Data Block.
type DecodedBlock struct {
	Cat     uint8
	Length  uint16
	Records []*DecodedRecord
	Valid   bool
	Error   string
}
