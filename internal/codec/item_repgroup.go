package codec

import (
	"github.com/asterixgo/codec/internal/bitio"
	"github.com/asterixgo/codec/internal/schema"
)

// decodeRepetitiveGroup reads a 1-byte count N followed by N identical
// byte-aligned groups.
func decodeRepetitiveGroup(def schema.ItemDef, buf []byte) (*schema.DecodedItem, int, error) {
	if len(buf) < 1 {
		return nil, 0, sizeErr(def.ID, "buffer too short for RepetitiveGroup count byte")
	}
	n := int(buf[0])
	groupBytes := def.RepGroupBits / 8
	need := 1 + n*groupBytes
	if len(buf) < need {
		return nil, 0, sizeErr(def.ID, "buffer too short for RepetitiveGroup groups")
	}
	out := schema.NewDecodedItem(def)
	pos := 1
	for i := 0; i < n; i++ {
		r := bitio.NewReader(buf[pos : pos+groupBytes])
		fields := make(map[string]uint64)
		if err := decodeElementsInto(def.RepGroupElements, r, fields); err != nil {
			return nil, 0, sizeErr(def.ID, err.Error())
		}
		out.GroupRepetitions = append(out.GroupRepetitions, fields)
		pos += groupBytes
	}
	return out, pos, nil
}

// encodeRepetitiveGroup writes the group count followed by each group
// packed through the template; missing fields default to 0.
func encodeRepetitiveGroup(def schema.ItemDef, item *schema.DecodedItem) ([]byte, error) {
	n := len(item.GroupRepetitions)
	if n > 255 {
		return nil, encodeErr(def.ID, "RepetitiveGroup has more than 255 groups")
	}
	w := bitio.NewWriter()
	if err := w.WriteByte(byte(n)); err != nil {
		return nil, encodeErr(def.ID, err.Error())
	}
	for _, g := range item.GroupRepetitions {
		if err := encodeElementsFrom(def.RepGroupElements, g, w); err != nil {
			return nil, encodeErr(def.ID, err.Error())
		}
	}
	return w.Take(), nil
}
