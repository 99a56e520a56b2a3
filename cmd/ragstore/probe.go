package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var probeURL string

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Smoke-check a running HTTP server",
	Long: `Hits the health, status and query endpoints of a running ragstore
server concurrently and reports the first failure.`,
	RunE: runProbe,
}

func init() {
	probeCmd.Flags().StringVar(&probeURL, "url", "http://localhost:8080", "base URL of the server")
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	base := strings.TrimRight(probeURL, "/")
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return probeGet(ctx, base+"/rag/health")
	})
	g.Go(func() error {
		return probeGet(ctx, base+"/rag/status")
	})
	g.Go(func() error {
		return probePost(ctx, base+"/rag/query", `{"question":"probe","answerMode":"none"}`)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	cmd.Printf("all probes passed against %s\n", base)
	return nil
}

func probeGet(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	return doProbe(req)
}

func probePost(ctx context.Context, url, body string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return doProbe(req)
}

func doProbe(req *http.Request) error {
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s %s: status %d", req.Method, req.URL, resp.StatusCode)
	}
	return nil
}
