package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"net"
	"os"

	"github.com/spf13/pflag"

	"tilesystem/internal/autotile"
	"tilesystem/internal/config"
	"tilesystem/internal/server"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	configPath := pflag.StringP("config", "c", config.DefaultPath, "configuration file")
	addr := pflag.String("addr", "", "listen address (overrides config)")
	level := pflag.String("log-level", "", "log level (overrides config)")
	mapPath := pflag.String("map", "", "painted grid file or directory (overrides config)")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("No config at %s, serving the default map", *configPath)
		cfg = config.Default()
	} else if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if *level != "" {
		cfg.LogLevel = *level
	}
	if *mapPath != "" {
		cfg.Server.Map = *mapPath
	}
	listenAddr := cfg.Server.Addr
	if *addr != "" {
		listenAddr = *addr
	}
	if port := os.Getenv("PORT"); port != "" {
		listenAddr = ":" + port
	}

	lvl, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	autotile.SetLogger(logger)

	// Generate host key if it doesn't exist
	if err := ensureHostKey(cfg.Server.HostKey); err != nil {
		log.Fatalf("Host key error: %v", err)
	}

	pages, err := server.BuildPages(context.Background(), cfg, logger)
	if err != nil {
		log.Fatalf("Build pages: %v", err)
	}

	sshServer := server.NewSSHServer(listenAddr, cfg.Server.HostKey, pages, logger)
	log.Printf("Starting tilesystem preview, connect with: ssh -t -p %s localhost", portOf(listenAddr))
	if err := sshServer.Start(); err != nil {
		log.Fatalf("SSH server error: %v", err)
	}
}

func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}

func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // key already exists
	}

	log.Println("Generating new host key...")
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	pemBlock := &pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: keyBytes,
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, pemBlock)
}
