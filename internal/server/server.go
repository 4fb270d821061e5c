// Package server provides a local HTTP gallery for generated art.
//
// Every image request generates a fresh piece on the fly: the gallery
// page embeds the generator endpoints with random seeds, so reloading
// the page shows new art. Seeded responses carry the seed they were
// generated from, making any piece reproducible with the CLI.
package server

import (
	"context"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/matzehuels/inkblot/pkg/blob"
	"github.com/matzehuels/inkblot/pkg/geom"
	"github.com/matzehuels/inkblot/pkg/illusion"
	"github.com/matzehuels/inkblot/pkg/pack"
	"github.com/matzehuels/inkblot/pkg/palette"
	"github.com/matzehuels/inkblot/pkg/render"
	"github.com/matzehuels/inkblot/pkg/rng"
)

const svgContentType = "image/svg+xml"

// Server generates and serves art over HTTP.
type Server struct {
	logger *log.Logger
	router chi.Router
}

// New creates a server with all routes registered.
func New(logger *log.Logger) *Server {
	s := &Server{logger: logger}

	r := chi.NewRouter()
	r.Use(s.logRequests)
	r.Get("/", s.handleGallery)
	r.Get("/blob.svg", s.handleBlob)
	r.Get("/pack.svg", s.handlePack)
	r.Get("/stripes.svg", s.handleStripes)
	r.Get("/dots.svg", s.handleDots)
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// logRequests logs each request with its generated piece ID.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		s.logger.Debugf("%s %s", r.Method, r.URL)
	})
}

// seedParam reads the seed query parameter, drawing a fresh one when
// absent or malformed.
func seedParam(r *http.Request) uint64 {
	if v := r.URL.Query().Get("seed"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			return seed
		}
	}
	return rng.RandomSeed()
}

// svgHeaders sets the common response headers and returns the piece ID
// identifying this exact response in logs.
func svgHeaders(w http.ResponseWriter) string {
	piece := uuid.NewString()
	w.Header().Set("Content-Type", svgContentType)
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Inkblot-Piece", piece)
	return piece
}

// writeSVG sends a seeded document; the seed header reproduces it.
func (s *Server) writeSVG(w http.ResponseWriter, svg []byte, seed uint64) {
	piece := svgHeaders(w)
	w.Header().Set("X-Inkblot-Seed", strconv.FormatUint(seed, 10))
	w.Write(svg)
	s.logger.Infof("Served piece %s (seed %d)", piece, seed)
}

// writeStaticSVG sends a fully deterministic document. No seed header:
// the scene takes no randomness.
func (s *Server) writeStaticSVG(w http.ResponseWriter, svg []byte) {
	piece := svgHeaders(w)
	w.Write(svg)
	s.logger.Infof("Served piece %s", piece)
}

func (s *Server) handleBlob(w http.ResponseWriter, r *http.Request) {
	seed := seedParam(r)
	g := rng.New(seed)
	pal := palette.NewVivid(g)

	const size = 200.0
	fig, err := blob.GenerateFigure(blob.Options{
		PointCount: g.UniformInt(3, 12),
		BaseRadius: float64(g.UniformInt(25, 40)) / 100 * size,
		Randomness: 0.25,
		Center:     geom.Point{X: size / 2, Y: size / 2},
	}, g)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeSVG(w, render.Figure(size, size, fig, render.WithPalette(pal)), seed)
}

func (s *Server) handlePack(w http.ResponseWriter, r *http.Request) {
	seed := seedParam(r)
	g := rng.New(seed)
	pal := palette.NewMuted(g)

	const size = 200.0
	result, err := pack.Generate(pack.Options{
		Outer:               geom.Circle{Center: geom.Point{X: size / 2, Y: size / 2}, R: size / 2},
		InnerOffset:         geom.Vector{DX: 5, DY: 5},
		InnerRadiusFraction: 0.3,
		RadiusMin:           5,
		RadiusMax:           10,
		TargetCount:         20,
	}, g)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeSVG(w, render.Packing(result, render.WithPalette(pal), render.WithLineWidth(1)), seed)
}

func (s *Server) handleStripes(w http.ResponseWriter, r *http.Request) {
	seed := seedParam(r)

	scene, err := illusion.Stripes(illusion.StripesOptions{
		Width: 800, Height: 800,
		LineWidth:  5,
		Radius:     60,
		CircleFill: "#cd7f32",
	}, rng.New(seed))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeSVG(w, render.Stripes(scene), seed)
}

func (s *Server) handleDots(w http.ResponseWriter, r *http.Request) {
	scene, err := illusion.Grid(illusion.GridOptions{
		Width: 780, Height: 780,
		SquareSize: 60,
		Padding:    10,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeStaticSVG(w, render.Grid(scene))
}

var galleryTmpl = template.Must(template.New("gallery").Parse(`<!DOCTYPE html>
<html>
<head><title>inkblot gallery</title>
<style>
  body { font-family: sans-serif; background: #fafafa; margin: 2rem; }
  .pieces { display: flex; flex-wrap: wrap; gap: 1rem; }
  .pieces img { background: white; border: 1px solid #ddd; width: 260px; height: 260px; object-fit: contain; }
  p { color: #666; }
</style>
</head>
<body>
<h1>inkblot</h1>
<p>Reload for new pieces. Seeded images carry their seed in the X-Inkblot-Seed header.</p>
<div class="pieces">
{{range .Blobs}}  <img src="/blob.svg?seed={{.}}" alt="blob">
{{end}}{{range .Packs}}  <img src="/pack.svg?seed={{.}}" alt="pack">
{{end}}  <img src="/stripes.svg?seed={{.Stripes}}" alt="stripes">
  <img src="/dots.svg" alt="dots">
</div>
</body>
</html>
`))

// handleGallery renders the index page with fresh seeds for each slot.
func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Blobs   []uint64
		Packs   []uint64
		Stripes uint64
	}{
		Stripes: rng.RandomSeed(),
	}
	for i := 0; i < 4; i++ {
		data.Blobs = append(data.Blobs, rng.RandomSeed())
	}
	for i := 0; i < 2; i++ {
		data.Packs = append(data.Packs, rng.RandomSeed())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := galleryTmpl.Execute(w, data); err != nil {
		s.logger.Errorf("rendering gallery: %v", err)
	}
}

// ListenAndServe serves the gallery on addr until the context is
// cancelled or the listener fails, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s}
	s.logger.Infof("Gallery listening on http://localhost%s", addr)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
