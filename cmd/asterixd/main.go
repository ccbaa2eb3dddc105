// Command asterixd runs the ASTERIX decode/encode HTTP daemon: it loads
// a YAML configuration, registers the built-in category catalog,
// starts the Prometheus-backed codec metrics, and serves the server
// package's routes until interrupted.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/asterixgo/codec/internal/catalog"
	"github.com/asterixgo/codec/internal/config"
	"github.com/asterixgo/codec/internal/logging"
	"github.com/asterixgo/codec/internal/metrics"
	"github.com/asterixgo/codec/internal/registry"
	"github.com/asterixgo/codec/internal/server"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to configuration file")
	addr := flag.String("addr", "", "listen address (overrides config listenAddr)")
	signingKeyPath := flag.String("signing-key", "", "PEM RSA private key used to sign /v1/export bundles")
	readTimeout := flag.Duration("read-timeout", 60*time.Second, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", 60*time.Second, "HTTP write timeout")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.Logs, "asterixd.log")
	if err != nil {
		log.Fatalf("setup logging: %v", err)
	}
	log.SetOutput(logger.Writer())
	log.SetFlags(logger.Flags())

	reg := registry.New()
	if err := catalog.Register(reg, cfg.Categories...); err != nil {
		log.Fatalf("register catalog: %v", err)
	}

	promReg := prometheus.NewRegistry()
	m := metrics.New(promReg)

	var signingKeyPEM []byte
	if *signingKeyPath != "" {
		signingKeyPEM, err = os.ReadFile(*signingKeyPath)
		if err != nil {
			log.Fatalf("read signing key: %v", err)
		}
	}

	srv, err := server.New(server.Options{
		Registry:      reg,
		Metrics:       m,
		SigningKeyPEM: signingKeyPEM,
	})
	if err != nil {
		log.Fatalf("server init: %v", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", server.NewRouter(srv))
	mux.Handle("/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))

	listenAddr := cfg.ListenAddr
	if *addr != "" {
		listenAddr = *addr
	}
	httpServer := &http.Server{
		Addr:         listenAddr,
		Handler:      mux,
		ReadTimeout:  *readTimeout,
		WriteTimeout: *writeTimeout,
	}

	log.Printf("asterixd listening on %s", listenAddr)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("asterixd stopped")
}
