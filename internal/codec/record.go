package codec

import "github.com/asterixgo/codec/internal/schema"

// decodeRecord runs the slot loop in §4.5: read FSPEC, walk the active
// UAP honoring a mid-loop UapCase switch, decode present non-sentinel
// items, then validate mandatory presence. A record-level error is
// returned only for a framing/size fault that prevents any further
// progress (e.g. a malformed FSPEC); a missing mandatory item instead
// marks the returned record invalid and keeps whatever was decoded.
func decodeRecord(cat *schema.Category, buf []byte) (*schema.DecodedRecord, int, error) {
	bitmap, fspecLen, err := parseFSPEC(buf)
	if err != nil {
		return nil, 0, err
	}
	out := schema.NewDecodedRecord()
	activeUAP, activeName := cat.Variant("")
	out.UapVariation = activeName

	pos := fspecLen
	for s := 1; s <= len(activeUAP); s++ {
		id := activeUAP[s-1]
		if schema.IsSentinelSlot(id) {
			continue
		}
		if !bitmap.isPresent(s) {
			continue
		}
		def, ok := cat.Items[id]
		if !ok {
			return nil, 0, registryErr(id, "item referenced by UAP is not defined in category")
		}
		item, n, err := decodeItem(def, buf[pos:])
		if err != nil {
			return nil, 0, err
		}
		out.Items[id] = item
		pos += n

		if cat.UapCase != nil && id == cat.UapCase.ItemID {
			if variant, switched := resolveUapCase(cat, item); switched {
				newUAP, newName := cat.Variant(variant)
				activeUAP = newUAP
				activeName = newName
				out.UapVariation = activeName
			}
		}
	}

	validateMandatory(cat, activeUAP, out)
	return out, pos, nil
}

// resolveUapCase looks the discriminator field's decoded value up in the
// UapCase map. It reports ok=false (default variant stands) if the item,
// field, or value is absent from the map.
func resolveUapCase(cat *schema.Category, item *schema.DecodedItem) (string, bool) {
	if item.Fields == nil {
		return "", false
	}
	v, ok := item.Fields[cat.UapCase.Field]
	if !ok {
		return "", false
	}
	variant, ok := cat.UapCase.ValueToVariant[v]
	return variant, ok
}

// validateMandatory marks rec invalid if any Mandatory-presence item in
// uap's non-sentinel slots was not decoded.
func validateMandatory(cat *schema.Category, uap []string, rec *schema.DecodedRecord) {
	for _, id := range uap {
		if schema.IsSentinelSlot(id) {
			continue
		}
		def, ok := cat.Items[id]
		if !ok || def.Presence != schema.Mandatory {
			continue
		}
		if _, present := rec.Items[id]; !present {
			rec.Valid = false
			rec.Error = mandatoryMissingErr(id).Error()
			return
		}
	}
}

// encodeRecord mirrors decodeRecord: it selects a UAP by the record's
// recorded variation (the default variant when it is empty; an unknown
// variant name is a RegistryError), builds the FSPEC from which slots
// have a decoded item, then serializes items in slot order.
func encodeRecord(cat *schema.Category, rec *schema.DecodedRecord) ([]byte, error) {
	if rec.UapVariation != "" {
		if _, ok := cat.UapVariants[rec.UapVariation]; !ok {
			return nil, registryErr("", "unknown UAP variant \""+rec.UapVariation+"\"")
		}
	}
	uap, _ := cat.Variant(rec.UapVariation)
	if uap == nil {
		return nil, registryErr("", "category has no UAP variants to encode against")
	}

	present := make([]bool, 0, len(uap))
	for _, id := range uap {
		if schema.IsSentinelSlot(id) {
			present = append(present, false)
			continue
		}
		_, ok := rec.Items[id]
		present = append(present, ok)
	}

	out := buildFSPEC(present)
	for s, id := range uap {
		if !present[s] {
			continue
		}
		def, ok := cat.Items[id]
		if !ok {
			return nil, registryErr(id, "item referenced by UAP is not defined in category")
		}
		enc, err := encodeItem(def, rec.Items[id])
		if err != nil {
			return nil, err
		}
		out = append(out, enc...)
	}
	return out, nil
}
