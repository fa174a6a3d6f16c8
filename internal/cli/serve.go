// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"github.com/alvinbaena/pwd-strength/internal/api"
	"github.com/alvinbaena/pwd-strength/pkg/cracktime"
	"github.com/gin-gonic/gin"
	"github.com/likexian/selfca"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
)

var (
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the password analysis API",
		Long: "Serve the password analysis API. Settings are read from the environment (or a .env file) " +
			"and can be overridden by flags: PORT, SELF_TLS, TLS_CERT, TLS_KEY, WORDLIST_FILE, SCENARIOS_FILE and DEBUG.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := serveConfig(cmd)
			if err != nil {
				return err
			}
			return serveCommand(cfg)
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	serveCmd.Flags().BoolVar(&selfTLS, "self-tls", false,
		"If the server should use a self-signed certificate when starting. The certificate is renewed on each server restart")
	serveCmd.Flags().StringVar(&tlsCert, "tls-cert", "", "Path to the PEM encoded TLS certificate to be used by the server")
	serveCmd.Flags().StringVar(&tlsKey, "tls-key", "", "Path to the PEM encoded TLS private key to be used by the server")
	serveCmd.Flags().Uint16VarP(&port, "port", "p", 3100, "Port to be used by the server")
	serveCmd.Flags().StringVarP(&wordsFile, "words-file", "w", "", "Word list to load instead of the bundled one")
	serveCmd.Flags().StringVar(&scenariosFile, "scenarios", "", "YAML file with additional attack scenarios")

	rootCmd.AddCommand(serveCmd)
}

// serveConfig merges the environment configuration with the flags that were
// explicitly set.
func serveConfig(cmd *cobra.Command) (api.Config, error) {
	cfg, err := api.LoadConfig()
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("port") || cfg.Port == "" {
		cfg.Port = strconv.Itoa(int(port))
	}
	if flags.Changed("self-tls") {
		cfg.SelfTLS = selfTLS
	}
	if flags.Changed("tls-cert") {
		cfg.TLSCert = tlsCert
	}
	if flags.Changed("tls-key") {
		cfg.TLSKey = tlsKey
	}
	if flags.Changed("words-file") {
		cfg.WordListFile = wordsFile
	}
	if flags.Changed("scenarios") {
		cfg.ScenariosFile = scenariosFile
	}
	if verbose {
		cfg.Debug = true
	}

	if err = cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid server configuration. %w", err)
	}
	return cfg, nil
}

func selfSignedConfig() (*tls.Config, error) {
	caConfig := selfca.Certificate{
		IsCA:      true,
		KeySize:   2048,
		NotBefore: time.Now(),
		// 30 day self-signed cert.
		NotAfter: time.Now().Add(time.Duration(30*24) * time.Hour),
	}

	certificate, key, err := selfca.GenerateCertificate(caConfig)
	if err != nil {
		return nil, fmt.Errorf("error generating auto self-signed certificate: %w", err)
	}

	pair, err := tls.X509KeyPair(
		pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certificate}),
		pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}),
	)
	if err != nil {
		return nil, fmt.Errorf("error using auto self-signed certificate: %w", err)
	}

	return &tls.Config{
		MinVersion:   tls.VersionTLS12,
		Certificates: []tls.Certificate{pair},
	}, nil
}

func serveCommand(cfg api.Config) error {
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	scenarios, err := cracktime.LoadCatalogueFile(cfg.ScenariosFile)
	if err != nil {
		return err
	}

	words, err := wordListLoader(cfg.WordListFile)
	if err != nil {
		return err
	}

	srvAddr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:              srvAddr,
		Handler:           api.NewRouter(scenarios, words),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if cfg.TLSCert == "" || cfg.TLSKey == "" {
		log.Warn().Msgf("using auto self-signed certificate for TLS. This is not recommended for production. Please consider using your own certificates.")
		if srv.TLSConfig, err = selfSignedConfig(); err != nil {
			return err
		}
	}

	go func() {
		log.Info().Msgf("starting TLS Server on address: %s", srvAddr)
		// with a TLSConfig set the cert and key files are empty
		if err := srv.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("error starting server")
		}
	}()

	gracefulShutdown(srv)
	return nil
}

func gracefulShutdown(srv *http.Server) {
	// Wait for interrupt signal to gracefully shut down the server with
	// a timeout.
	quit := make(chan os.Signal, 1)
	// kill -9 is syscall.SIGKILL but can't be caught, so don't need to add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server exiting...")
}
