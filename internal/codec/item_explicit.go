package codec

import "github.com/asterixgo/codec/internal/schema"

// decodeExplicit reads a 1-byte length L (inclusive of itself) followed by
// L-1 payload bytes.
func decodeExplicit(def schema.ItemDef, buf []byte) (*schema.DecodedItem, int, error) {
	if len(buf) == 0 {
		return nil, 0, sizeErr(def.ID, "empty buffer for Explicit item")
	}
	l := int(buf[0])
	if l < 1 {
		return nil, 0, framingErr(def.ID, "Explicit length byte is zero")
	}
	if len(buf) < l {
		return nil, 0, sizeErr(def.ID, "buffer too short for Explicit payload")
	}
	out := schema.NewDecodedItem(def)
	out.RawBytes = append([]byte(nil), buf[1:l]...)
	return out, l, nil
}

// encodeExplicit writes L = len(RawBytes)+1 followed by the payload.
func encodeExplicit(def schema.ItemDef, item *schema.DecodedItem) ([]byte, error) {
	n := len(item.RawBytes)
	if n+1 > 255 {
		return nil, encodeErr(def.ID, "Explicit payload too long for a 1-byte length field")
	}
	out := make([]byte, 0, n+1)
	out = append(out, byte(n+1))
	out = append(out, item.RawBytes...)
	return out, nil
}
