// Package smoke exercises the daemon end to end: real catalog
// categories registered, a real httptest server serving the same
// server.NewRouter routes cmd/asterixd mounts, and scenario wire bytes produced by the sample
// generator sent through /v1/decode and back out through /v1/encode.
package smoke

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/asterixgo/codec/internal/catalog"
	"github.com/asterixgo/codec/internal/metrics"
	"github.com/asterixgo/codec/internal/registry"
	"github.com/asterixgo/codec/internal/samples"
	"github.com/asterixgo/codec/internal/schema"
	"github.com/asterixgo/codec/internal/server"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	reg := registry.New()
	if err := catalog.Register(reg); err != nil {
		t.Fatalf("catalog.Register: %v", err)
	}
	m := metrics.New(prometheus.NewRegistry())
	srv, err := server.New(server.Options{Registry: reg, Metrics: m})
	if err != nil {
		t.Fatalf("server.New: %v", err)
	}
	return httptest.NewServer(server.NewRouter(srv))
}

func TestDecodeEndpointAcceptsEveryScenario(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	for _, name := range []string{
		samples.S1PlotMinimal,
		samples.S2NorthMarker,
		samples.S3CompoundComPsr,
		samples.S4MultiRecordRoundTrip,
		samples.S5WarningCodes,
		samples.S6RepetitiveGroupFX,
	} {
		buf, err := samples.Block(name)
		if err != nil {
			t.Fatalf("samples.Block(%q): %v", name, err)
		}
		resp, err := http.Post(ts.URL+"/v1/decode", "application/octet-stream", bytes.NewReader(buf))
		if err != nil {
			t.Fatalf("POST /v1/decode %q: %v", name, err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("scenario %q: status = %d", name, resp.StatusCode)
		}
		var block schema.DecodedBlock
		if err := json.NewDecoder(resp.Body).Decode(&block); err != nil {
			t.Fatalf("scenario %q: decode response: %v", name, err)
		}
		resp.Body.Close()
		if !block.Valid {
			t.Fatalf("scenario %q: block invalid: %s", name, block.Error)
		}
		if len(block.Records) == 0 {
			t.Fatalf("scenario %q: no records decoded", name)
		}
	}
}

func TestEncodeThenDecodeRoundTripsThroughTheServer(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	rec := schema.NewDecodedRecord()
	rec.UapVariation = "default"
	rec.Items["010"] = &schema.DecodedItem{Fields: map[string]uint64{"SAC": 8, "SIC": 10}}
	rec.Items["000"] = &schema.DecodedItem{Fields: map[string]uint64{"MT": 1}}
	rec.Items["030"] = &schema.DecodedItem{Fields: map[string]uint64{"TOD": 500}}

	body, err := json.Marshal(map[string]any{
		"cat":     2,
		"records": []*schema.DecodedRecord{rec},
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	encResp, err := http.Post(ts.URL+"/v1/encode", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /v1/encode: %v", err)
	}
	if encResp.StatusCode != http.StatusOK {
		t.Fatalf("encode status = %d", encResp.StatusCode)
	}
	var wire bytes.Buffer
	if _, err := wire.ReadFrom(encResp.Body); err != nil {
		t.Fatalf("read encode response: %v", err)
	}
	encResp.Body.Close()

	decResp, err := http.Post(ts.URL+"/v1/decode", "application/octet-stream", bytes.NewReader(wire.Bytes()))
	if err != nil {
		t.Fatalf("POST /v1/decode: %v", err)
	}
	defer decResp.Body.Close()
	if decResp.StatusCode != http.StatusOK {
		t.Fatalf("decode status = %d", decResp.StatusCode)
	}
	var block schema.DecodedBlock
	if err := json.NewDecoder(decResp.Body).Decode(&block); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !block.Valid || len(block.Records) != 1 {
		t.Fatalf("block = %+v", block)
	}
	if block.Records[0].Items["030"].Fields["TOD"] != 500 {
		t.Fatalf("TOD = %v", block.Records[0].Items["030"].Fields["TOD"])
	}
}

func TestCategoriesEndpointListsTheBuiltInCatalog(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/v1/categories")
	if err != nil {
		t.Fatalf("GET /v1/categories: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var cats []struct {
		Cat      uint8    `json:"cat"`
		Variants []string `json:"variants"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&cats); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(cats) != 5 {
		t.Fatalf("len(cats) = %d, want 5", len(cats))
	}
}
