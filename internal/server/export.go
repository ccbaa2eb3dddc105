package server

import (
	"encoding/json"
	"net/http"

	"github.com/asterixgo/codec/internal/crypto"
	"github.com/asterixgo/codec/internal/schema"
)

// exportBundle is the JSON document /v1/export produces: the caller's
// previously decoded blocks, unmodified, plus an optional detached JWS
// signature over their canonical JSON encoding for provenance when
// decoded traffic is archived.
type exportBundle struct {
	Blocks    []*schema.DecodedBlock `json:"blocks"`
	Signature *crypto.JWS            `json:"signature,omitempty"`
}

// handleExport signs a bundle of previously decoded blocks. Signing is
// skipped, not failed, when no key was configured.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Blocks []*schema.DecodedBlock `json:"blocks"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}

	bundle := exportBundle{Blocks: req.Blocks}
	if len(s.signingKeyPEM) > 0 {
		payload, err := json.Marshal(req.Blocks)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		sig, err := crypto.SignDetachedJWS(payload, s.signingKeyPEM)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "sign export bundle: " + err.Error()})
			return
		}
		bundle.Signature = &sig
	}
	writeJSON(w, http.StatusOK, bundle)
}
