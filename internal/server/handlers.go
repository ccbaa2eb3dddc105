package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/asterixgo/codec/internal/codec"
	"github.com/asterixgo/codec/internal/schema"
)

// handleDecode accepts a raw Data Block body and returns its decoded
// form, either as one JSON object or, with Accept: application/x-ndjson,
// as one NDJSON line per decoded record. The whole block is decoded
// before the first line is written.
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	buf, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf("read body: %v", err), http.StatusBadRequest)
		return
	}

	block, err := codec.Decode(s.reg, buf, s.metrics)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if r.Header.Get("Accept") == "application/x-ndjson" {
		w.Header().Set("Content-Type", "application/x-ndjson")
		writer := NewNDJSONWriter(w)
		for _, rec := range block.Records {
			if err := writer.WriteObject(rec); err != nil {
				return
			}
		}
		return
	}
	writeJSON(w, http.StatusOK, block)
}

// handleEncode accepts a JSON {cat, records} body and returns the raw
// encoded Data Block bytes.
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Cat     uint8                    `json:"cat"`
		Records []*schema.DecodedRecord `json:"records"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid json: %v", err), http.StatusBadRequest)
		return
	}
	out, err := codec.Encode(s.reg, req.Cat, req.Records, s.metrics)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}

type categoryInfo struct {
	Cat            uint8    `json:"cat"`
	DefaultVariant string   `json:"defaultVariant"`
	Variants       []string `json:"variants"`
}

// handleCategories lists registered CAT numbers and their UAP variants.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	nums := s.reg.CatNumbers()
	out := make([]categoryInfo, 0, len(nums))
	for _, n := range nums {
		cat, err := s.reg.Category(n)
		if err != nil {
			continue
		}
		variants := make([]string, 0, len(cat.UapVariants))
		for v := range cat.UapVariants {
			variants = append(variants, v)
		}
		sort.Strings(variants)
		out = append(out, categoryInfo{Cat: n, DefaultVariant: cat.DefaultVariant, Variants: variants})
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
