package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/contextlab/ragstore/internal/server"
	"github.com/contextlab/ragstore/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	defer app.Close()

	log.Printf("ragstore v%s starting...", version)
	log.Printf("provider=%s store_key=%s backend=%s addr=%s",
		app.prov.Name(), app.cfg.StoreKey, storage.Describe(app.cfg.StoreDSN), app.cfg.Addr)

	srv := &http.Server{
		Addr:              app.cfg.Addr,
		Handler:           server.New(app.engine, app.cfg.StoreKey, storage.Describe(app.cfg.StoreDSN)).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on %s", app.cfg.Addr)
		errChan <- srv.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down gracefully...", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return err
		}
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	log.Println("Server stopped")
	return nil
}
