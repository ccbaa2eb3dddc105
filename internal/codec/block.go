package codec

import "github.com/asterixgo/codec/internal/schema"

// decodeBlock reads the 3-byte CAT+LEN header and then decodes records
// from byte 3 to byte LEN. A record decode failure flags the block
// invalid and stops, keeping whatever records were already collected.
// A record consuming zero bytes is treated as fatal, guarding against
// an infinite loop on a malformed schema.
func decodeBlock(cat *schema.Category, buf []byte) (*schema.DecodedBlock, error) {
	if len(buf) < 3 {
		return &schema.DecodedBlock{
			Cat:   cat.Cat,
			Error: sizeErr("", "block shorter than the 3-byte header").Error(),
		}, nil
	}
	length := int(buf[1])<<8 | int(buf[2])
	if length < 3 {
		return &schema.DecodedBlock{
			Cat:    cat.Cat,
			Length: uint16(length),
			Error:  framingErr("", "block LEN is smaller than the header itself").Error(),
		}, nil
	}
	if length > len(buf) {
		return &schema.DecodedBlock{
			Cat:    cat.Cat,
			Length: uint16(length),
			Error:  sizeErr("", "block LEN exceeds buffer size").Error(),
		}, nil
	}

	out := &schema.DecodedBlock{Cat: cat.Cat, Length: uint16(length), Valid: true}
	pos := 3
	for pos < length {
		rec, n, err := decodeRecord(cat, buf[pos:length])
		if err != nil {
			out.Valid = false
			out.Error = err.Error()
			return out, nil
		}
		if n <= 0 {
			out.Valid = false
			out.Error = framingErr("", "record consumed zero bytes").Error()
			return out, nil
		}
		out.Records = append(out.Records, rec)
		if !rec.Valid {
			out.Valid = false
			out.Error = rec.Error
		}
		pos += n
	}
	return out, nil
}

// encodeBlock serializes records in order and prepends the 3-byte
// header, failing if the resulting LEN overflows a 16-bit field.
func encodeBlock(cat *schema.Category, records []*schema.DecodedRecord) ([]byte, error) {
	var body []byte
	for _, rec := range records {
		enc, err := encodeRecord(cat, rec)
		if err != nil {
			return nil, err
		}
		body = append(body, enc...)
	}
	total := 3 + len(body)
	if total > 0xFFFF {
		return nil, encodeErr("", "encoded block length overflows a 16-bit LEN field")
	}
	out := make([]byte, 0, total)
	out = append(out, cat.Cat, byte(total>>8), byte(total))
	out = append(out, body...)
	return out, nil
}
