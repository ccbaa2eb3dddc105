package server

import (
	"errors"
	"net/http"
)

var errNilRegistry = errors.New("server: Options.Registry is nil")

// NewRouter wires HTTP routes to the server's handlers.
func NewRouter(s *Server) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/decode", s.handleDecode)
	mux.HandleFunc("/v1/encode", s.handleEncode)
	mux.HandleFunc("/v1/categories", s.handleCategories)
	mux.HandleFunc("/v1/export", s.handleExport)
	return mux
}
