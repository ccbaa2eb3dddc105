package codec

import (
	"github.com/asterixgo/codec/internal/bitio"
	"github.com/asterixgo/codec/internal/schema"
)

// decodeRepetitive reads (7-bit value, FX) octets until FX=0, appending
// each value to Repetitions.
func decodeRepetitive(def schema.ItemDef, buf []byte) (*schema.DecodedItem, int, error) {
	r := bitio.NewReader(buf)
	out := schema.NewDecodedItem(def)
	for {
		if r.BitsAvailable() < 8 {
			return nil, 0, sizeErr(def.ID, "buffer too short in Repetitive")
		}
		v, err := r.ReadU(7)
		if err != nil {
			return nil, 0, sizeErr(def.ID, err.Error())
		}
		fx, err := r.ReadBit()
		if err != nil {
			return nil, 0, sizeErr(def.ID, err.Error())
		}
		out.Repetitions = append(out.Repetitions, v)
		if !fx {
			break
		}
	}
	return out, r.BytesRead(), nil
}

// encodeRepetitive emits one octet per repetition, FX=1 except the last.
// An empty repetition list still emits a single zero octet with FX=0.
func encodeRepetitive(def schema.ItemDef, item *schema.DecodedItem) ([]byte, error) {
	w := bitio.NewWriter()
	reps := item.Repetitions
	if len(reps) == 0 {
		_ = w.WriteU(0, 7)
		_ = w.WriteBit(false)
		return w.Take(), nil
	}
	for i, v := range reps {
		if err := w.WriteU(v, 7); err != nil {
			return nil, encodeErr(def.ID, err.Error())
		}
		if err := w.WriteBit(i != len(reps)-1); err != nil {
			return nil, encodeErr(def.ID, err.Error())
		}
	}
	return w.Take(), nil
}
