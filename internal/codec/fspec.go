package codec

// fspec is a parsed FX-terminated presence bitmap. Slot numbering is
// 1-based across all octets; slot k maps to octet index (k-1)/7, bit
// position 7-((k-1)%7). Parsing is a pure function of the bytes: it does
// not know about a UAP, so a mid-record UAP switch never needs to
// re-interpret already-consumed FSPEC bytes.
type fspec struct {
	octets []byte
}

// parseFSPEC reads octets from buf until one has FX=0, or fails if the
// buffer is exhausted while FX=1 (invariant 5). It returns the parsed
// fspec and the number of bytes consumed.
func parseFSPEC(buf []byte) (fspec, int, error) {
	var octets []byte
	for pos := 0; ; pos++ {
		if pos >= len(buf) {
			return fspec{}, 0, framingErr("", "FSPEC continues past end of buffer")
		}
		b := buf[pos]
		octets = append(octets, b)
		if b&0x01 == 0 {
			return fspec{octets: octets}, pos + 1, nil
		}
	}
}

// isPresent reports whether slot (1-based) is marked present. Out-of-range
// slots read as absent.
func (f fspec) isPresent(slot int) bool {
	if slot <= 0 {
		return false
	}
	idx := (slot - 1) / 7
	if idx >= len(f.octets) {
		return false
	}
	bitPos := uint(7 - ((slot - 1) % 7))
	return (f.octets[idx]>>bitPos)&0x01 != 0
}

// buildFSPEC emits the minimum number of octets covering present (indexed
// 0-based by slot-1) such that all trailing all-absent octets are trimmed,
// but at least one octet is always emitted. Every octet but the last
// carries FX=1.
func buildFSPEC(present []bool) []byte {
	nOctets := (len(present) + 6) / 7
	if nOctets == 0 {
		nOctets = 1
	}
	lastNonEmpty := 0
	for i := 0; i < nOctets; i++ {
		for s := i * 7; s < (i+1)*7 && s < len(present); s++ {
			if present[s] {
				lastNonEmpty = i
			}
		}
	}
	out := make([]byte, lastNonEmpty+1)
	for i := 0; i <= lastNonEmpty; i++ {
		var b byte
		for s := i * 7; s < (i+1)*7 && s < len(present); s++ {
			if present[s] {
				bitPos := uint(7 - (s % 7))
				b |= 1 << bitPos
			}
		}
		if i != lastNonEmpty {
			b |= 0x01
		}
		out[i] = b
	}
	return out
}
