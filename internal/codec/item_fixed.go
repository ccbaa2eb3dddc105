package codec

import (
	"github.com/asterixgo/codec/internal/bitio"
	"github.com/asterixgo/codec/internal/schema"
)

func decodeFixed(def schema.ItemDef, buf []byte) (*schema.DecodedItem, int, error) {
	if len(buf) < def.FixedBytes {
		return nil, 0, sizeErr(def.ID, "buffer too short for Fixed item")
	}
	r := bitio.NewReader(buf[:def.FixedBytes])
	out := schema.NewDecodedItem(def)
	if err := decodeElementsInto(def.Elements, r, out.Fields); err != nil {
		return nil, 0, sizeErr(def.ID, err.Error())
	}
	return out, def.FixedBytes, nil
}

func encodeFixed(def schema.ItemDef, item *schema.DecodedItem) ([]byte, error) {
	w := bitio.NewWriter()
	if err := encodeElementsFrom(def.Elements, item.Fields, w); err != nil {
		return nil, encodeErr(def.ID, err.Error())
	}
	return w.Take(), nil
}

// decodeElementsInto reads elems in order from r, writing non-spare values
// into fields. Spares are skipped and never appear in fields.
func decodeElementsInto(elems []schema.ElementDef, r *bitio.Reader, fields map[string]uint64) error {
	for _, e := range elems {
		if e.IsSpare {
			if err := r.Skip(e.Bits); err != nil {
				return err
			}
			continue
		}
		v, err := r.ReadU(e.Bits)
		if err != nil {
			return err
		}
		fields[e.Name] = v
	}
	return nil
}

// encodeElementsFrom writes elems in order to w, pulling non-spare values
// from fields (missing fields default to 0) and zero for spares.
func encodeElementsFrom(elems []schema.ElementDef, fields map[string]uint64, w *bitio.Writer) error {
	for _, e := range elems {
		if e.IsSpare {
			if err := w.WriteU(0, e.Bits); err != nil {
				return err
			}
			continue
		}
		v := fields[e.Name]
		if err := w.WriteU(v, e.Bits); err != nil {
			return err
		}
	}
	return nil
}
