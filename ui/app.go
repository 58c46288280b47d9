// Package ui serves generated explorers over HTTP.
package ui

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"explorergen/adapters/sink"
	"explorergen/app"
	"explorergen/internal"
	"explorergen/internal/errors"
	"explorergen/internal/explorers"
	"explorergen/internal/metrics"
)

// App publishes explorers from an in-memory sink, rendering any explorer on
// first request.
type App struct {
	router   *chi.Mux
	service  *app.GeneratorService
	registry *explorers.Registry
	store    *sink.MemorySink
	metrics  *metrics.Recorder
	logger   *internal.Logger
	server   *http.Server
}

// Config holds UI application configuration
type Config struct {
	Port string
}

// NewApp creates the server. store must be the sink service writes to so
// generated explorers are served without rebuilding.
func NewApp(config Config, service *app.GeneratorService, registry *explorers.Registry, store *sink.MemorySink, recorder *metrics.Recorder, logger *internal.Logger) *App {
	a := &App{
		router:   chi.NewRouter(),
		service:  service,
		registry: registry,
		store:    store,
		metrics:  recorder,
		logger:   logger,
	}
	a.server = &http.Server{
		Addr:              ":" + config.Port,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.setupMiddleware()
	a.setupRoutes()
	return a
}

func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Get("/healthz", a.handleHealth)
	a.router.Method(http.MethodGet, "/metrics", a.metrics.Handler())
	a.router.Get("/explorers/{name}.tsv", a.handleExplorer)
	a.router.Post("/explorers/{name}/refresh", a.handleRefresh)
}

// Handler exposes the router for tests.
func (a *App) Handler() http.Handler { return a.router }

// Start serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("[UI] Serving explorers on %s", a.server.Addr)
		errCh <- a.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return nil
	}
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	var md strings.Builder
	md.WriteString("# Explorers\n\n")
	md.WriteString("| Explorer | Status |\n|---|---|\n")
	generated := make(map[string]bool)
	for _, name := range a.store.Names() {
		generated[name] = true
	}
	for _, name := range a.registry.Names() {
		status := "built on request"
		if generated[name] {
			status = "generated"
		}
		fmt.Fprintf(&md, "| [%s](/explorers/%s.tsv) | %s |\n", name, name, status)
	}
	md.WriteString("\nMetrics are at [/metrics](/metrics).\n")

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.CompletePage,
		Title: "explorergen",
	})
	body := markdown.ToHTML([]byte(md.String()), p, renderer)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok"))
}

func (a *App) handleExplorer(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	data, err := a.store.Get(name)
	if err != nil {
		data, err = a.render(r.Context(), name)
		if err != nil {
			a.writeError(w, err)
			return
		}
	}
	w.Header().Set("Content-Type", "text/tab-separated-values; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", sink.FileName(name)))
	http.ServeContent(w, r, sink.FileName(name), time.Time{}, bytes.NewReader(data))
}

func (a *App) handleRefresh(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if _, err := a.render(r.Context(), name); err != nil {
		a.writeError(w, err)
		return
	}
	http.Redirect(w, r, "/explorers/"+name+".tsv", http.StatusSeeOther)
}

// render builds name and keeps the result for later requests.
func (a *App) render(ctx context.Context, name string) ([]byte, error) {
	data, err := a.service.Render(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := a.store.Put(ctx, name, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (a *App) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.HasCode(err, errors.CodeNotFound):
		status = http.StatusNotFound
	case errors.HasCode(err, errors.CodeExternalService):
		status = http.StatusBadGateway
	case errors.HasCode(err, errors.CodeMalformedSheet), errors.HasCode(err, errors.CodeBrokenReference):
		status = http.StatusUnprocessableEntity
	}
	a.logger.Error("[UI] %v", err)
	http.Error(w, err.Error(), status)
}
