// Package samples builds the canonical wire-format byte sequences used
// in scenario tests from schema and field values, through the real
// encoder rather than hand-copied byte literals, so the fixtures never
// drift from what the codec actually produces.
package samples

import (
	"fmt"

	"github.com/asterixgo/codec/internal/catalog"
	"github.com/asterixgo/codec/internal/codec"
	"github.com/asterixgo/codec/internal/registry"
	"github.com/asterixgo/codec/internal/schema"
)

// Names of the scenarios Block accepts.
const (
	S1PlotMinimal          = "s1"
	S2NorthMarker          = "s2"
	S3CompoundComPsr       = "s3"
	S4MultiRecordRoundTrip = "s4"
	S5WarningCodes         = "s5"
	S6RepetitiveGroupFX    = "s6"
)

func newRegistry() (*registry.Registry, error) {
	reg := registry.New()
	if err := catalog.Register(reg); err != nil {
		return nil, fmt.Errorf("samples: register catalog: %w", err)
	}
	return reg, nil
}

// Block returns the exact wire bytes for the named scenario.
func Block(name string) ([]byte, error) {
	reg, err := newRegistry()
	if err != nil {
		return nil, err
	}

	switch name {
	case S1PlotMinimal:
		rec := schema.NewDecodedRecord()
		rec.UapVariation = "plot"
		rec.Items["010"] = &schema.DecodedItem{Fields: map[string]uint64{"SAC": 5, "SIC": 0x12}}
		rec.Items["020"] = &schema.DecodedItem{Fields: map[string]uint64{"TYP": 0, "SSRPSR": 1}}
		return codec.Encode(reg, 1, []*schema.DecodedRecord{rec}, nil)

	case S2NorthMarker:
		rec := schema.NewDecodedRecord()
		rec.UapVariation = "default"
		rec.Items["010"] = &schema.DecodedItem{Fields: map[string]uint64{"SAC": 8, "SIC": 10}}
		rec.Items["000"] = &schema.DecodedItem{Fields: map[string]uint64{"MT": 1}}
		rec.Items["030"] = &schema.DecodedItem{Fields: map[string]uint64{"TOD": 12800}}
		return codec.Encode(reg, 2, []*schema.DecodedRecord{rec}, nil)

	case S3CompoundComPsr:
		rec := schema.NewDecodedRecord()
		rec.UapVariation = "default"
		rec.Items["010"] = &schema.DecodedItem{Fields: map[string]uint64{"SAC": 5, "SIC": 12}}
		rec.Items["000"] = &schema.DecodedItem{Fields: map[string]uint64{"MT": 1}}
		rec.Items["050"] = &schema.DecodedItem{CompoundSubFields: map[string]map[string]uint64{
			"COM": {"TYP": 0},
			"PSR": {"CHAB": 1},
		}}
		return codec.Encode(reg, 34, []*schema.DecodedRecord{rec}, nil)

	case S4MultiRecordRoundTrip:
		plot := schema.NewDecodedRecord()
		plot.UapVariation = "plot"
		plot.Items["010"] = &schema.DecodedItem{Fields: map[string]uint64{"SAC": 5, "SIC": 18}}
		plot.Items["020"] = &schema.DecodedItem{Fields: map[string]uint64{"TYP": 0, "SSRPSR": 1}}
		plot.Items["040"] = &schema.DecodedItem{Fields: map[string]uint64{"RHO": 1000, "THETA": 2000}}

		track := schema.NewDecodedRecord()
		track.UapVariation = "track"
		track.Items["010"] = &schema.DecodedItem{Fields: map[string]uint64{"SAC": 5, "SIC": 18}}
		track.Items["020"] = &schema.DecodedItem{Fields: map[string]uint64{"TYP": 1, "SSRPSR": 0}}
		track.Items["141"] = &schema.DecodedItem{Fields: map[string]uint64{"TOD": 4000}}

		return codec.Encode(reg, 1, []*schema.DecodedRecord{plot, track}, nil)

	case S5WarningCodes:
		rec := schema.NewDecodedRecord()
		rec.UapVariation = "default"
		rec.Items["010"] = &schema.DecodedItem{Fields: map[string]uint64{"SAC": 10, "SIC": 1}}
		rec.Items["030"] = &schema.DecodedItem{Repetitions: []uint64{1, 15, 23}}
		return codec.Encode(reg, 48, []*schema.DecodedRecord{rec}, nil)

	case S6RepetitiveGroupFX:
		rec := schema.NewDecodedRecord()
		rec.UapVariation = "default"
		rec.Items["010"] = &schema.DecodedItem{Fields: map[string]uint64{"SAC": 1, "SIC": 1}}
		rec.Items["040"] = &schema.DecodedItem{Fields: map[string]uint64{"TRKNUM": 7}}
		rec.Items["510"] = &schema.DecodedItem{GroupRepetitions: []map[string]uint64{
			{"IDENT": 1, "TRACK": 0x1234},
			{"IDENT": 2, "TRACK": 0x5678},
			{"IDENT": 3, "TRACK": 0x7FFF},
		}}
		return codec.Encode(reg, 62, []*schema.DecodedRecord{rec}, nil)

	default:
		return nil, fmt.Errorf("samples: unknown scenario %q", name)
	}
}
