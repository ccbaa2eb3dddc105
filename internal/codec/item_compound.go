package codec

import (
	"github.com/asterixgo/codec/internal/bitio"
	"github.com/asterixgo/codec/internal/schema"
)

// decodeCompound reads the PSF (a parallel FX-extended bitmap, same slot
// layout as FSPEC but indexed 0-based over the ordered sub-item list) and
// then each present, non-sentinel sub-item's fixed-width payload.
func decodeCompound(def schema.ItemDef, buf []byte) (*schema.DecodedItem, int, error) {
	psf, psfLen, err := parseFSPEC(buf)
	if err != nil {
		return nil, 0, framingErr(def.ID, "PSF: "+err.Error())
	}
	out := schema.NewDecodedItem(def)
	pos := psfLen
	for i, sub := range def.CompoundSubItems {
		if !psf.isPresent(i + 1) {
			continue
		}
		if sub.Name == schema.SentinelUnused {
			continue
		}
		if len(buf) < pos+sub.FixedBytes {
			return nil, 0, sizeErr(def.ID, "buffer too short for compound sub-item "+sub.Name)
		}
		r := bitio.NewReader(buf[pos : pos+sub.FixedBytes])
		fields := make(map[string]uint64)
		if err := decodeElementsInto(sub.Elements, r, fields); err != nil {
			return nil, 0, sizeErr(def.ID, err.Error())
		}
		out.CompoundSubFields[sub.Name] = fields
		pos += sub.FixedBytes
	}
	return out, pos, nil
}

// encodeCompound builds the PSF from the present sub-items (reusing the
// FSPEC builder, since both share the trim-trailing-absent-octets,
// at-least-one-octet rule) and serializes present sub-items in slot order.
func encodeCompound(def schema.ItemDef, item *schema.DecodedItem) ([]byte, error) {
	present := make([]bool, len(def.CompoundSubItems))
	for i, sub := range def.CompoundSubItems {
		if sub.Name == schema.SentinelUnused {
			continue
		}
		if _, ok := item.CompoundSubFields[sub.Name]; ok {
			present[i] = true
		}
	}
	w := bitio.NewWriter()
	if err := w.WriteBytes(buildFSPEC(present)); err != nil {
		return nil, encodeErr(def.ID, err.Error())
	}
	for i, sub := range def.CompoundSubItems {
		if !present[i] {
			continue
		}
		fields := item.CompoundSubFields[sub.Name]
		if err := encodeElementsFrom(sub.Elements, fields, w); err != nil {
			return nil, encodeErr(def.ID, err.Error())
		}
	}
	return w.Take(), nil
}
