package schema

import "fmt"

// ValidationError reports a schema that violates one of the bit-accounting
// invariants. A loader (XML or otherwise) must reject such a schema before
// it ever reaches the codec; the codec trusts a *Category it was given.
type ValidationError struct {
	ItemID string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.ItemID != "" {
		return fmt.Sprintf("schema: item %s: %s", e.ItemID, e.Reason)
	}
	return fmt.Sprintf("schema: %s", e.Reason)
}

// BuildItem finalizes the derived fields of def (FixedBytes, RepGroupBits)
// and checks it against the bit-accounting invariants (§3 invariants 1-4,
// 8). It mutates and returns def so a loader can write struct literals
// without manually computing byte counts.
func BuildItem(def ItemDef) (ItemDef, error) {
	for _, e := range elementsOf(def) {
		if e.Bits < 1 || e.Bits > 64 {
			return def, &ValidationError{ItemID: def.ID, Reason: fmt.Sprintf("element %q has bit width %d outside [1,64]", e.Name, e.Bits)}
		}
	}

	switch def.Kind {
	case KindFixed:
		bits := sumBits(def.Elements)
		if bits%8 != 0 {
			return def, &ValidationError{ItemID: def.ID, Reason: fmt.Sprintf("Fixed element bits sum to %d, not a multiple of 8", bits)}
		}
		def.FixedBytes = bits / 8

	case KindExtended:
		if len(def.Octets) == 0 {
			return def, &ValidationError{ItemID: def.ID, Reason: "Extended item has no octets"}
		}
		for i, oct := range def.Octets {
			if sum := oct.bitSum(); sum != 7 {
				return def, &ValidationError{ItemID: def.ID, Reason: fmt.Sprintf("octet %d elements sum to %d bits, want 7", i, sum)}
			}
		}

	case KindRepetitive:
		if def.RepElement.Bits != 7 {
			return def, &ValidationError{ItemID: def.ID, Reason: fmt.Sprintf("Repetitive element has %d bits, want 7", def.RepElement.Bits)}
		}

	case KindRepetitiveGroup:
		bits := sumBits(def.RepGroupElements)
		if bits == 0 || bits%8 != 0 {
			return def, &ValidationError{ItemID: def.ID, Reason: fmt.Sprintf("RepetitiveGroup bits sum to %d, not a positive multiple of 8", bits)}
		}
		def.RepGroupBits = bits

	case KindRepetitiveGroupFX:
		bits := sumBits(def.RepGroupElements)
		if bits == 0 || (bits+1)%8 != 0 {
			return def, &ValidationError{ItemID: def.ID, Reason: fmt.Sprintf("RepetitiveGroupFX bits+1 = %d, not a multiple of 8", bits+1)}
		}
		def.RepGroupBits = bits

	case KindExplicit:
		// No bit-accounting invariant; length is wire-determined.

	case KindCompound:
		if len(def.CompoundSubItems) == 0 {
			return def, &ValidationError{ItemID: def.ID, Reason: "Compound item has no sub-items"}
		}
		for i := range def.CompoundSubItems {
			sub := &def.CompoundSubItems[i]
			if sub.Name == SentinelUnused {
				continue
			}
			bits := sumBits(sub.Elements)
			if bits%8 != 0 {
				return def, &ValidationError{ItemID: def.ID, Reason: fmt.Sprintf("compound sub-item %q elements sum to %d bits, not a multiple of 8", sub.Name, bits)}
			}
			sub.FixedBytes = bits / 8
		}

	default:
		return def, &ValidationError{ItemID: def.ID, Reason: fmt.Sprintf("unknown item kind %v", def.Kind)}
	}

	return def, nil
}

func elementsOf(def ItemDef) []ElementDef {
	switch def.Kind {
	case KindFixed:
		return def.Elements
	case KindExtended:
		var all []ElementDef
		for _, o := range def.Octets {
			all = append(all, o.Elements...)
		}
		return all
	case KindRepetitive:
		return []ElementDef{def.RepElement}
	case KindRepetitiveGroup, KindRepetitiveGroupFX:
		return def.RepGroupElements
	case KindCompound:
		var all []ElementDef
		for _, s := range def.CompoundSubItems {
			all = append(all, s.Elements...)
		}
		return all
	default:
		return nil
	}
}

func sumBits(elems []ElementDef) int {
	sum := 0
	for _, e := range elems {
		sum += e.Bits
	}
	return sum
}

// BuildCategory validates every item in cat (via BuildItem) and checks that
// every UAP slot (other than the sentinels) references a defined item, and
// that the discriminator item/field named by UapCase, if any, exists.
func BuildCategory(cat Category) (Category, error) {
	for id, def := range cat.Items {
		built, err := BuildItem(def)
		if err != nil {
			return cat, err
		}
		cat.Items[id] = built
	}
	if len(cat.UapVariants) == 0 {
		return cat, &ValidationError{Reason: fmt.Sprintf("category %d has no UAP variants", cat.Cat)}
	}
	for variant, slots := range cat.UapVariants {
		for _, id := range slots {
			if IsSentinelSlot(id) {
				continue
			}
			if _, ok := cat.Items[id]; !ok {
				return cat, &ValidationError{ItemID: id, Reason: fmt.Sprintf("UAP variant %q references undefined item", variant)}
			}
		}
	}
	if _, ok := cat.UapVariants[cat.DefaultVariant]; !ok {
		return cat, &ValidationError{Reason: fmt.Sprintf("category %d default variant %q is not registered", cat.Cat, cat.DefaultVariant)}
	}
	if cat.UapCase != nil {
		def, ok := cat.Items[cat.UapCase.ItemID]
		if !ok {
			return cat, &ValidationError{ItemID: cat.UapCase.ItemID, Reason: "UapCase references undefined item"}
		}
		found := false
		for _, e := range elementsOf(def) {
			if !e.IsSpare && e.Name == cat.UapCase.Field {
				found = true
			}
		}
		if !found {
			return cat, &ValidationError{ItemID: cat.UapCase.ItemID, Reason: fmt.Sprintf("UapCase field %q is not an element of the item", cat.UapCase.Field)}
		}
	}
	return cat, nil
}
