// Package server is the HTTP transport over the codec: decode, encode,
// category listing, and signed export-bundle generation. It never
// performs hex-dump/pretty-printing; its JSON responses are the same
// structures package schema defines, serialized.
package server

import (
	"github.com/asterixgo/codec/internal/metrics"
	"github.com/asterixgo/codec/internal/registry"
)

// Options configures server creation.
type Options struct {
	Registry *registry.Registry
	Metrics  *metrics.Codec

	// SigningKeyPEM, if non-empty, is an RSA private key in PEM form
	// used to produce a detached JWS signature over /v1/export bundles.
	// Export works without it; the response simply carries no signature.
	SigningKeyPEM []byte
}

// Server coordinates the HTTP handlers over a shared registry.
type Server struct {
	reg           *registry.Registry
	metrics       *metrics.Codec
	signingKeyPEM []byte
}

// New constructs a Server. opts.Registry must not be nil.
func New(opts Options) (*Server, error) {
	if opts.Registry == nil {
		return nil, errNilRegistry
	}
	return &Server{
		reg:           opts.Registry,
		metrics:       opts.Metrics,
		signingKeyPEM: opts.SigningKeyPEM,
	}, nil
}
