package codec

import (
	"github.com/asterixgo/codec/internal/bitio"
	"github.com/asterixgo/codec/internal/schema"
)

// decodeExtended reads on-wire octets (7 data bits + 1 FX bit) until FX=0.
// Octets beyond the schema's declared templates are tolerated: their 7
// data bits are discarded and only the FX chain is honored. This matches
// real radars that emit more Extended octets than a given schema
// enumerates.
func decodeExtended(def schema.ItemDef, buf []byte) (*schema.DecodedItem, int, error) {
	r := bitio.NewReader(buf)
	out := schema.NewDecodedItem(def)
	for octIdx := 0; ; octIdx++ {
		if r.BitsAvailable() < 8 {
			return nil, 0, sizeErr(def.ID, "unexpected end of buffer in Extended")
		}
		if octIdx < len(def.Octets) {
			if err := decodeElementsInto(def.Octets[octIdx].Elements, r, out.Fields); err != nil {
				return nil, 0, sizeErr(def.ID, err.Error())
			}
		} else if err := r.Skip(7); err != nil {
			return nil, 0, sizeErr(def.ID, err.Error())
		}
		fx, err := r.ReadBit()
		if err != nil {
			return nil, 0, sizeErr(def.ID, err.Error())
		}
		if !fx {
			break
		}
	}
	return out, r.BytesRead(), nil
}

// encodeExtended emits octets 0..i*, where i* is the highest-indexed
// template octet with a non-zero non-spare value (or 0 if all are zero),
// FX=1 on every octet but the last.
func encodeExtended(def schema.ItemDef, item *schema.DecodedItem) ([]byte, error) {
	lastUseful := -1
	for i, oct := range def.Octets {
		for _, e := range oct.Elements {
			if e.IsSpare {
				continue
			}
			if v, ok := item.Fields[e.Name]; ok && v != 0 {
				lastUseful = i
			}
		}
	}
	if lastUseful < 0 {
		lastUseful = 0
	}
	w := bitio.NewWriter()
	for i := 0; i <= lastUseful; i++ {
		if err := encodeElementsFrom(def.Octets[i].Elements, item.Fields, w); err != nil {
			return nil, encodeErr(def.ID, err.Error())
		}
		if err := w.WriteBit(i != lastUseful); err != nil {
			return nil, encodeErr(def.ID, err.Error())
		}
	}
	return w.Take(), nil
}
