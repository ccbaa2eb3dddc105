package codec

import (
	"github.com/asterixgo/codec/internal/bitio"
	"github.com/asterixgo/codec/internal/schema"
)

// decodeRepetitiveGroupFX reads (rep_group_bits+1)/8 bytes per group: the
// group template followed by one FX bit, continuing while FX=1.
func decodeRepetitiveGroupFX(def schema.ItemDef, buf []byte) (*schema.DecodedItem, int, error) {
	groupBytes := (def.RepGroupBits + 1) / 8
	out := schema.NewDecodedItem(def)
	pos := 0
	for {
		if len(buf) < pos+groupBytes {
			return nil, 0, sizeErr(def.ID, "buffer too short for RepetitiveGroupFX group")
		}
		r := bitio.NewReader(buf[pos : pos+groupBytes])
		fields := make(map[string]uint64)
		if err := decodeElementsInto(def.RepGroupElements, r, fields); err != nil {
			return nil, 0, sizeErr(def.ID, err.Error())
		}
		fx, err := r.ReadBit()
		if err != nil {
			return nil, 0, sizeErr(def.ID, err.Error())
		}
		out.GroupRepetitions = append(out.GroupRepetitions, fields)
		pos += groupBytes
		if !fx {
			break
		}
	}
	return out, pos, nil
}

// encodeRepetitiveGroupFX packs each group followed by its FX bit, FX=1
// except on the last group. An empty group list still emits a single
// zero-filled group with FX=0.
func encodeRepetitiveGroupFX(def schema.ItemDef, item *schema.DecodedItem) ([]byte, error) {
	w := bitio.NewWriter()
	groups := item.GroupRepetitions
	if len(groups) == 0 {
		if err := encodeElementsFrom(def.RepGroupElements, map[string]uint64{}, w); err != nil {
			return nil, encodeErr(def.ID, err.Error())
		}
		_ = w.WriteBit(false)
		return w.Take(), nil
	}
	for i, g := range groups {
		if err := encodeElementsFrom(def.RepGroupElements, g, w); err != nil {
			return nil, encodeErr(def.ID, err.Error())
		}
		if err := w.WriteBit(i != len(groups)-1); err != nil {
			return nil, encodeErr(def.ID, err.Error())
		}
	}
	return w.Take(), nil
}
