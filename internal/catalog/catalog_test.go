package catalog

import (
	"testing"

	"github.com/asterixgo/codec/internal/codec"
	"github.com/asterixgo/codec/internal/registry"
	"github.com/asterixgo/codec/internal/schema"
)

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	if err := Register(reg); err != nil {
		t.Fatalf("Register: %v", err)
	}
	return reg
}

func TestRegisterWithNoArgsInstallsAllFiveBuiltins(t *testing.T) {
	reg := registry.New()
	if err := Register(reg); err != nil {
		t.Fatalf("Register: %v", err)
	}
	nums := reg.CatNumbers()
	if len(nums) != 5 {
		t.Fatalf("CatNumbers() = %v, want 5 entries", nums)
	}
}

func TestRegisterFiltersToRequestedCategories(t *testing.T) {
	reg := registry.New()
	if err := Register(reg, 1, 48); err != nil {
		t.Fatalf("Register: %v", err)
	}
	nums := reg.CatNumbers()
	if len(nums) != 2 {
		t.Fatalf("CatNumbers() = %v, want [1 48]", nums)
	}
	if _, err := reg.Category(1); err != nil {
		t.Fatalf("Category(1): %v", err)
	}
	if _, err := reg.Category(48); err != nil {
		t.Fatalf("Category(48): %v", err)
	}
	if _, err := reg.Category(2); err == nil {
		t.Fatalf("expected CAT02 to be absent")
	}
}

func TestRegisterRejectsUnknownCategory(t *testing.T) {
	reg := registry.New()
	if err := Register(reg, 200); err == nil {
		t.Fatalf("expected an error for an unregistered built-in CAT200")
	}
}

// TestS1Cat01PlotMinimal is scenario S1.
func TestS1Cat01PlotMinimal(t *testing.T) {
	reg := newRegistry(t)
	buf := []byte{0x01, 0x00, 0x07, 0xC0, 0x05, 0x12, 0x10}
	block, err := codec.Decode(reg, buf, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if block.Cat != 1 || block.Length != 7 {
		t.Fatalf("Cat=%d Length=%d, want 1/7", block.Cat, block.Length)
	}
	if len(block.Records) != 1 {
		t.Fatalf("len(Records) = %d, want 1", len(block.Records))
	}
	rec := block.Records[0]
	if rec.UapVariation != "plot" {
		t.Fatalf("UapVariation = %q, want plot", rec.UapVariation)
	}
	i010 := rec.Items["010"]
	if i010 == nil || i010.Fields["SAC"] != 5 || i010.Fields["SIC"] != 0x12 {
		t.Fatalf("I010 = %+v", i010)
	}
	i020 := rec.Items["020"]
	if i020 == nil || i020.Fields["TYP"] != 0 || i020.Fields["SSRPSR"] != 1 {
		t.Fatalf("I020 = %+v", i020)
	}
}

// TestS2Cat02NorthMarker is scenario S2.
func TestS2Cat02NorthMarker(t *testing.T) {
	reg := newRegistry(t)
	buf := []byte{0x02, 0x00, 0x0A, 0xD0, 0x08, 0x0A, 0x01, 0x00, 0x32, 0x00}
	block, err := codec.Decode(reg, buf, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(block.Records) != 1 {
		t.Fatalf("len(Records) = %d, want 1", len(block.Records))
	}
	rec := block.Records[0]
	i010 := rec.Items["010"]
	if i010 == nil || i010.Fields["SAC"] != 8 || i010.Fields["SIC"] != 10 {
		t.Fatalf("I010 = %+v", i010)
	}
	i000 := rec.Items["000"]
	if i000 == nil || i000.Fields["MT"] != 1 {
		t.Fatalf("I000 = %+v", i000)
	}
	i030 := rec.Items["030"]
	if i030 == nil || i030.Fields["TOD"] != 12800 {
		t.Fatalf("I030 = %+v", i030)
	}
}

// TestS3Cat34Compound is scenario S3.
func TestS3Cat34Compound(t *testing.T) {
	reg := newRegistry(t)
	buf := []byte{0x22, 0x00, 0x0A, 0xC4, 0x05, 0x0C, 0x01, 0x90, 0x00, 0x20}
	block, err := codec.Decode(reg, buf, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(block.Records) != 1 {
		t.Fatalf("len(Records) = %d, want 1", len(block.Records))
	}
	i050 := block.Records[0].Items["050"]
	if i050 == nil {
		t.Fatalf("I050 missing")
	}
	com, ok := i050.CompoundSubFields["COM"]
	if !ok || com["TYP"] != 0 {
		t.Fatalf("COM = %+v, present=%v", com, ok)
	}
	psr, ok := i050.CompoundSubFields["PSR"]
	if !ok || psr["CHAB"] != 1 {
		t.Fatalf("PSR = %+v, present=%v", psr, ok)
	}
}

// TestS4Cat01MultiRecordRoundTrip is scenario S4: a plot record and a
// track record, encoded then decoded, come back with matching variants
// and field values.
func TestS4Cat01MultiRecordRoundTrip(t *testing.T) {
	reg := newRegistry(t)
	cat, err := reg.Category(1)
	if err != nil {
		t.Fatalf("Category: %v", err)
	}

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

	enc, err := codec.Encode(reg, 1, []*schema.DecodedRecord{plot, track}, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	block, err := codec.DecodeBlock(cat, enc)
	if err != nil {
		t.Fatalf("DecodeBlock: %v", err)
	}
	if len(block.Records) != 2 {
		t.Fatalf("len(Records) = %d, want 2", len(block.Records))
	}
	if block.Records[0].UapVariation != "plot" || block.Records[1].UapVariation != "track" {
		t.Fatalf("variations = %q, %q", block.Records[0].UapVariation, block.Records[1].UapVariation)
	}
	if block.Records[0].Items["040"].Fields["RHO"] != 1000 {
		t.Fatalf("plot RHO = %v", block.Records[0].Items["040"].Fields["RHO"])
	}
	if block.Records[1].Items["141"].Fields["TOD"] != 4000 {
		t.Fatalf("track TOD = %v", block.Records[1].Items["141"].Fields["TOD"])
	}
}

// TestS5Cat48WarningCodes is scenario S5.
func TestS5Cat48WarningCodes(t *testing.T) {
	reg := newRegistry(t)
	buf := []byte{0x30, 0x00, 0x0B, 0x81, 0x01, 0x40, 0x0A, 0x01, 0x03, 0x1F, 0x2E}
	block, err := codec.Decode(reg, buf, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(block.Records) != 1 {
		t.Fatalf("len(Records) = %d, want 1", len(block.Records))
	}
	i030 := block.Records[0].Items["030"]
	if i030 == nil {
		t.Fatalf("I030 missing")
	}
	want := []uint64{1, 15, 23}
	if len(i030.Repetitions) != len(want) {
		t.Fatalf("Repetitions = %v, want %v", i030.Repetitions, want)
	}
	for i, v := range want {
		if i030.Repetitions[i] != v {
			t.Fatalf("Repetitions[%d] = %d, want %d", i, i030.Repetitions[i], v)
		}
	}
}

// TestS6Cat62RepetitiveGroupFXRoundTrip is scenario S6.
func TestS6Cat62RepetitiveGroupFXRoundTrip(t *testing.T) {
	reg := newRegistry(t)
	cat, err := reg.Category(62)
	if err != nil {
		t.Fatalf("Category: %v", err)
	}

	rec := schema.NewDecodedRecord()
	rec.UapVariation = "default"
	rec.Items["010"] = &schema.DecodedItem{Fields: map[string]uint64{"SAC": 1, "SIC": 1}}
	rec.Items["040"] = &schema.DecodedItem{Fields: map[string]uint64{"TRKNUM": 7}}
	rec.Items["510"] = &schema.DecodedItem{GroupRepetitions: []map[string]uint64{
		{"IDENT": 1, "TRACK": 0x1234},
		{"IDENT": 2, "TRACK": 0x5678},
		{"IDENT": 3, "TRACK": 0x7FFF},
	}}

	enc, err := codec.EncodeRecord(cat, rec)
	if err != nil {
		t.Fatalf("EncodeRecord: %v", err)
	}
	dec, n, err := codec.DecodeRecord(cat, enc)
	if err != nil {
		t.Fatalf("DecodeRecord: %v", err)
	}
	if n != len(enc) {
		t.Fatalf("consumed %d, want %d", n, len(enc))
	}
	got := dec.Items["510"].GroupRepetitions
	want := rec.Items["510"].GroupRepetitions
	if len(got) != len(want) {
		t.Fatalf("groups = %v, want %v", got, want)
	}
	for i := range want {
		if got[i]["IDENT"] != want[i]["IDENT"] || got[i]["TRACK"] != want[i]["TRACK"] {
			t.Fatalf("group[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
