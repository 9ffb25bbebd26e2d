package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/nmlgraph/nmlgraph/pkg/cache"
	"github.com/nmlgraph/nmlgraph/pkg/topology"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string
	noCache  bool
	redisURL string
}

// serveCommand creates the serve command, which exposes a built topology
// over HTTP: the XML document, the DOT source and a rendered SVG, plus a
// health endpoint.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve [manifest]",
		Short: "Serve a topology over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")
	cmd.Flags().StringVar(&opts.redisURL, "redis", "", "redis URL for a shared artifact cache")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, manifest string, opts *serveOpts) error {
	m, err := buildFromManifest(manifest)
	if err != nil {
		return err
	}

	artifacts, err := newCache(ctx, opts.noCache, opts.redisURL)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}
	defer artifacts.Close()

	srv := &http.Server{
		Addr:    opts.addr,
		Handler: c.newRouter(m, artifacts),
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("serving topology", "addr", opts.addr, "manifest", manifest)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (c *CLI) newRouter(m *topology.Manager, artifacts cache.Cache) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(c.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/topology.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		if err := m.Document().Encode(w); err != nil {
			loggerFromContext(r.Context()).Error("encode document", "err", err)
		}
	})

	r.Get("/topology.dot", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
		_, _ = w.Write([]byte(topology.ToDOT(m, topology.Options{})))
	})

	r.Get("/topology.svg", func(w http.ResponseWriter, r *http.Request) {
		dot := topology.ToDOT(m, topology.Options{})
		key := cache.RenderKey(dot, formatSVG)

		if data, hit, err := artifacts.Get(r.Context(), key); err == nil && hit {
			w.Header().Set("Content-Type", "image/svg+xml")
			_, _ = w.Write(data)
			return
		}

		data, err := topology.RenderSVG(r.Context(), dot)
		if err != nil {
			loggerFromContext(r.Context()).Error("render svg", "err", err)
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}
		_ = artifacts.Set(r.Context(), key, data, renderTTL)
		w.Header().Set("Content-Type", "image/svg+xml")
		_, _ = w.Write(data)
	})

	return r
}

// logRequests logs each request with method, path and duration, and makes
// the CLI logger available to handlers through the request context.
func (c *CLI) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r.WithContext(withLogger(r.Context(), c.Logger)))
		c.Logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"dur", time.Since(start).Round(time.Millisecond))
	})
}
