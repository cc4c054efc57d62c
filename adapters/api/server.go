// Package api serves a completed run: the markdown report rendered to
// HTML, the figure set, and the raw JSON document.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"savantfnc/internal"
	"savantfnc/internal/config"
)

// Server exposes one output directory over HTTP
type Server struct {
	cfg    *config.Config
	log    *internal.Logger
	router *chi.Mux
}

// NewServer wires middleware and routes around the configured output
// directory
func NewServer(cfg *config.Config, log *internal.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		log:    log,
		router: chi.NewRouter(),
	}
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Get("/", s.handleReport)
	s.router.Get("/api/report", s.handleReportJSON)
	s.router.Get("/healthz", s.handleHealth)

	figures := http.FileServer(http.Dir(s.cfg.Output.Dir))
	s.router.Handle("/figures/*", http.StripPrefix("/figures/", figures))
}

// Router exposes the handler tree, mainly for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// ListenAndServe blocks until the context is canceled, then drains
// in-flight requests within the configured shutdown timeout
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Server.Addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.Info("Report viewer listening on %s", s.cfg.Server.Addr)

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()
		s.log.Info("Shutting down report viewer")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(s.cfg.Output.Dir, s.cfg.Output.ReportFile)
	source, err := os.ReadFile(path)
	if err != nil {
		http.Error(w, "no report found; run the pipeline first", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageShell, renderHTML(source))
}

func (s *Server) handleReportJSON(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(s.cfg.Output.Dir, s.cfg.Output.ReportJSON)
	data, err := os.ReadFile(path)
	if err != nil {
		http.Error(w, "no report found; run the pipeline first", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

// renderHTML converts report markdown to an HTML fragment. Tables and
// auto-generated heading anchors stay enabled to match the template.
func renderHTML(source []byte) string {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse(source)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return string(markdown.Render(doc, renderer))
}

const pageShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Savant-FNC Analysis Report</title>
<style>
body { font-family: Georgia, serif; max-width: 56rem; margin: 2rem auto; padding: 0 1rem; color: #1c1c1c; }
h1, h2, h3 { font-family: Helvetica, Arial, sans-serif; }
h1 { border-bottom: 3px solid #32527b; padding-bottom: .3rem; }
h2 { border-bottom: 1px solid #ccc; padding-bottom: .2rem; margin-top: 2rem; }
table { border-collapse: collapse; margin: 1rem 0; }
th, td { border: 1px solid #bbb; padding: .35rem .7rem; text-align: left; }
th { background: #eef2f7; }
code { background: #f4f4f4; padding: .1rem .3rem; }
img { max-width: 100%%; }
hr { border: none; border-top: 1px solid #ddd; margin: 1.5rem 0; }
</style>
</head>
<body>
%s
</body>
</html>
`
