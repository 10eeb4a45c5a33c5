package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dgallion1/notesgest/internal/materials"
)

func (s *Server) handleMaterials(w http.ResponseWriter, r *http.Request) {
	m := s.requireMaterials(w)
	if m == nil {
		return
	}
	data, err := materials.Encode(m)
	if err != nil {
		jsonError(w, "encode materials: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) handleLevel(w http.ResponseWriter, r *http.Request) {
	m := s.requireMaterials(w)
	if m == nil {
		return
	}
	b := levelBucket(w, r, m)
	if b == nil {
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	m := s.requireMaterials(w)
	if m == nil {
		return
	}
	b := levelBucket(w, r, m)
	if b == nil {
		return
	}
	c, err := materials.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusNotFound)
		return
	}
	recs := b.Category(c)
	if recs == nil {
		recs = []materials.Record{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	_, report := s.current()
	if report == nil {
		jsonError(w, "no run report; materials were loaded from disk", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleRoutes(w http.ResponseWriter, r *http.Request) {
	table := s.runner.Routes()
	type route struct {
		Identifier string             `json:"identifier"`
		Level      materials.Level    `json:"level"`
		Category   materials.Category `json:"category"`
	}
	routes := make([]route, 0, table.Len())
	for _, id := range table.Identifiers() {
		t, _ := table.Lookup(id)
		routes = append(routes, route{Identifier: id, Level: t.Level, Category: t.Category})
	}
	writeJSON(w, http.StatusOK, map[string]any{"routes": routes})
}

func (s *Server) requireMaterials(w http.ResponseWriter) *materials.Materials {
	m, _ := s.current()
	if m == nil {
		jsonError(w, "materials not built yet", http.StatusServiceUnavailable)
	}
	return m
}

// levelBucket resolves the {level} URL parameter. Pseudo-levels are not
// served.
func levelBucket(w http.ResponseWriter, r *http.Request, m *materials.Materials) *materials.Bucket {
	l, err := materials.ParseLevel(chi.URLParam(r, "level"))
	if err != nil || !l.IsReal() {
		jsonError(w, "unknown level: "+chi.URLParam(r, "level"), http.StatusNotFound)
		return nil
	}
	b := m.Level(l)
	if b == nil {
		jsonError(w, "unknown level: "+string(l), http.StatusNotFound)
	}
	return b
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
