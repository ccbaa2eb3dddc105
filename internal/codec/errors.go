package codec

import "fmt"

// fault carries the detail every error kind below reports: the
// offending item id (empty if not item-specific) and a human-readable
// reason. The decoder is a trust boundary — it never panics on
// malformed input, it returns one of the typed errors below.
type fault struct {
	ItemID string
	Reason string
}

func (f fault) message(kind string) string {
	if f.ItemID != "" {
		return fmt.Sprintf("%s error at item %s: %s", kind, f.ItemID, f.Reason)
	}
	return fmt.Sprintf("%s error: %s", kind, f.Reason)
}

// SizeError reports a buffer too small for a header, item, or field.
type SizeError struct{ fault }

func (e *SizeError) Error() string { return e.message("Size") }

// FramingError reports an inconsistent LEN, an FX chain that runs past
// the end of the buffer, or a zero-byte item consumption.
type FramingError struct{ fault }

func (e *FramingError) Error() string { return e.message("Framing") }

// RegistryError reports an unregistered CAT, an unknown UAP variant,
// or an item id referenced by a UAP/PSF slot but not defined in the
// category.
type RegistryError struct{ fault }

func (e *RegistryError) Error() string { return e.message("Registry") }

// EncodeError reports an encode-side fault: a LEN overflow, a
// RepetitiveGroup count above 255, or an unknown item kind.
type EncodeError struct{ fault }

func (e *EncodeError) Error() string { return e.message("Encode") }

// MandatoryMissingError reports a Mandatory-presence item absent from
// an otherwise well-formed record.
type MandatoryMissingError struct{ fault }

func (e *MandatoryMissingError) Error() string { return e.message("MandatoryMissing") }

func sizeErr(itemID, reason string) error {
	return &SizeError{fault{ItemID: itemID, Reason: reason}}
}

func framingErr(itemID, reason string) error {
	return &FramingError{fault{ItemID: itemID, Reason: reason}}
}

func registryErr(itemID, reason string) error {
	return &RegistryError{fault{ItemID: itemID, Reason: reason}}
}

func encodeErr(itemID, reason string) error {
	return &EncodeError{fault{ItemID: itemID, Reason: reason}}
}

func mandatoryMissingErr(itemID string) error {
	return &MandatoryMissingError{fault{ItemID: itemID, Reason: "mandatory item not present"}}
}
