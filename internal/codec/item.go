package codec

import "github.com/asterixgo/codec/internal/schema"

// decodeItem dispatches to the kind-specific decoder and returns the
// number of bytes consumed from buf.
func decodeItem(def schema.ItemDef, buf []byte) (*schema.DecodedItem, int, error) {
	switch def.Kind {
	case schema.KindFixed:
		return decodeFixed(def, buf)
	case schema.KindExtended:
		return decodeExtended(def, buf)
	case schema.KindRepetitive:
		return decodeRepetitive(def, buf)
	case schema.KindRepetitiveGroup:
		return decodeRepetitiveGroup(def, buf)
	case schema.KindRepetitiveGroupFX:
		return decodeRepetitiveGroupFX(def, buf)
	case schema.KindExplicit:
		return decodeExplicit(def, buf)
	case schema.KindCompound:
		return decodeCompound(def, buf)
	default:
		return nil, 0, registryErr(def.ID, "unsupported item kind")
	}
}

// encodeItem dispatches to the kind-specific encoder.
func encodeItem(def schema.ItemDef, item *schema.DecodedItem) ([]byte, error) {
	switch def.Kind {
	case schema.KindFixed:
		return encodeFixed(def, item)
	case schema.KindExtended:
		return encodeExtended(def, item)
	case schema.KindRepetitive:
		return encodeRepetitive(def, item)
	case schema.KindRepetitiveGroup:
		return encodeRepetitiveGroup(def, item)
	case schema.KindRepetitiveGroupFX:
		return encodeRepetitiveGroupFX(def, item)
	case schema.KindExplicit:
		return encodeExplicit(def, item)
	case schema.KindCompound:
		return encodeCompound(def, item)
	default:
		return nil, encodeErr(def.ID, "unsupported item kind")
	}
}
