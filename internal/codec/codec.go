// Package codec implements the ASTERIX bit-level encode/decode engine:
// FSPEC, the seven Data Item wire encodings, UAP variant resolution, and
// Record/Block framing. It is a pure function of (registered schema,
// bytes) in either direction; it never performs I/O itself.
package codec

import (
	"time"

	"github.com/asterixgo/codec/internal/metrics"
	"github.com/asterixgo/codec/internal/registry"
	"github.com/asterixgo/codec/internal/schema"
)

// Decode parses one Data Block from buf using the category registered
// under its leading CAT byte. m may be nil. Nothing about malformed or
// unrecognized input ever surfaces as a returned error: an empty
// buffer, a malformed header, or an unregistered CAT byte all come
// back as an invalid DecodedBlock instead, mirroring how a fault
// partway through records is reflected in Valid/Error with whatever
// records decoded before the fault kept intact.
func Decode(reg *registry.Registry, buf []byte, m *metrics.Codec) (*schema.DecodedBlock, error) {
	start := time.Now()
	if len(buf) < 1 {
		err := sizeErr("", "empty buffer")
		m.ObserveDecode(start, err)
		return &schema.DecodedBlock{Error: err.Error()}, nil
	}
	cat, err := reg.Category(buf[0])
	if err != nil {
		err = registryErr("", err.Error())
		m.ObserveDecode(start, err)
		return &schema.DecodedBlock{Cat: buf[0], Error: err.Error()}, nil
	}
	block, err := decodeBlock(cat, buf)
	if err != nil {
		m.ObserveDecode(start, err)
		return nil, err
	}
	if !block.Valid {
		m.ObserveDecode(start, sizeErr("", block.Error))
	} else {
		m.ObserveDecode(start, nil)
	}
	return block, nil
}

// Encode serializes records into a Data Block for the given CAT, using
// its registered category. m may be nil.
func Encode(reg *registry.Registry, cat uint8, records []*schema.DecodedRecord, m *metrics.Codec) ([]byte, error) {
	start := time.Now()
	c, err := reg.Category(cat)
	if err != nil {
		m.ObserveEncode(start, err)
		return nil, registryErr("", err.Error())
	}
	out, err := encodeBlock(c, records)
	m.ObserveEncode(start, err)
	return out, err
}

// DecodeRecord decodes a single record against an already-resolved
// category, for callers (tests, the sample generator) that work one
// record at a time rather than through a framed block.
func DecodeRecord(cat *schema.Category, buf []byte) (*schema.DecodedRecord, int, error) {
	return decodeRecord(cat, buf)
}

// EncodeRecord is the encode mirror of DecodeRecord.
func EncodeRecord(cat *schema.Category, rec *schema.DecodedRecord) ([]byte, error) {
	return encodeRecord(cat, rec)
}

// EncodeBlock encodes a full Data Block without going through the
// registry, for callers that already hold the resolved category.
func EncodeBlock(cat *schema.Category, records []*schema.DecodedRecord) ([]byte, error) {
	return encodeBlock(cat, records)
}

// DecodeBlock decodes a full Data Block without going through the
// registry, for callers that already hold the resolved category.
func DecodeBlock(cat *schema.Category, buf []byte) (*schema.DecodedBlock, error) {
	return decodeBlock(cat, buf)
}
