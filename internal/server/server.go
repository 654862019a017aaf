package server

import (
	"encoding/json"
	"image/png"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/voidshard/citygrid"
)

// Server exposes a single, already built, city over HTTP. Cities are
// immutable so handlers share it without locking.
type Server struct {
	city   *citygrid.City
	scheme *citygrid.ColourScheme
	log    *slog.Logger
}

// New returns a Server for the given city
func New(city *citygrid.City, log *slog.Logger) *Server {
	return &Server{city: city, scheme: citygrid.DefaultScheme(), log: log}
}

// Routes configures all routes and returns the router
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Get("/city", s.getCity)
		r.Get("/city/entrypoints", s.getEntryPoints)
		r.Get("/city/tiles/{row}/{col}", s.getTile)
		r.Get("/city/drivable", s.getDrivable)
		r.Get("/city/map.txt", s.getMapText)
		r.Get("/city/map.png", s.getMapPNG)
	})

	return r
}

// logRequests logs each request once it has been served
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("http.request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"took", time.Since(start),
		)
	})
}

// getCity handles GET /api/city - the whole city as json
func (s *Server) getCity(w http.ResponseWriter, r *http.Request) {
	data, err := s.city.JSON()
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// entryPointsResponse is returned by GET /api/city/entrypoints
type entryPointsResponse struct {
	Count       int                 `json:"count"`
	EntryPoints []citygrid.Position `json:"entry_points"`
}

// getEntryPoints handles GET /api/city/entrypoints
func (s *Server) getEntryPoints(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, &entryPointsResponse{
		Count:       s.city.EntryPointCount(),
		EntryPoints: s.city.EntryPoints(),
	})
}

// tileResponse is returned by GET /api/city/tiles/{row}/{col}
type tileResponse struct {
	Row  int           `json:"row"`
	Col  int           `json:"col"`
	Tile citygrid.Tile `json:"tile"`
}

// getTile handles GET /api/city/tiles/{row}/{col}
func (s *Server) getTile(w http.ResponseWriter, r *http.Request) {
	row, err := strconv.Atoi(chi.URLParam(r, "row"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid row")
		return
	}
	col, err := strconv.Atoi(chi.URLParam(r, "col"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid col")
		return
	}

	tile, err := s.city.Grid().At(row, col)
	if err != nil {
		s.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, &tileResponse{Row: row, Col: col, Tile: tile})
}

// drivableResponse is returned by GET /api/city/drivable
type drivableResponse struct {
	Rows  int `json:"rows"`
	Cols  int `json:"cols"`
	Count int `json:"count"`

	// one string per row, '1' where a car may drive
	Mask []string `json:"mask"`

	// the raw row major bitmap, base64 in json
	Bits []byte `json:"bits"`
}

// getDrivable handles GET /api/city/drivable - roads & lights as a mask
func (s *Server) getDrivable(w http.ResponseWriter, r *http.Request) {
	g := s.city.Grid()
	bm := g.Drivable()

	resp := &drivableResponse{
		Rows: g.Rows(),
		Cols: g.Cols(),
		Mask: make([]string, g.Rows()),
		Bits: bm.Data(false),
	}
	row := make([]byte, g.Cols())
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			row[j] = '0'
			if g.MaskAt(bm, i, j) {
				row[j] = '1'
				resp.Count++
			}
		}
		resp.Mask[i] = string(row)
	}

	s.respondJSON(w, http.StatusOK, resp)
}

// getMapText handles GET /api/city/map.txt
func (s *Server) getMapText(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(s.city.Map().Text()))
}

// getMapPNG handles GET /api/city/map.png?scale=N
func (s *Server) getMapPNG(w http.ResponseWriter, r *http.Request) {
	scale := 16
	if v := r.URL.Query().Get("scale"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 64 {
			s.respondError(w, http.StatusBadRequest, "Invalid scale")
			return
		}
		scale = n
	}

	im, err := s.city.Map().CustomImage(s.scheme, scale)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if err := png.Encode(w, im); err != nil {
		s.log.Error("http.png", "err", err)
	}
}

// respondJSON writes a JSON response
func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("http.json", "err", err)
	}
}

// respondError writes an error JSON response
func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
