package api

import (
	"html/template"
	"net/http"

	"github.com/dmatos/gamewatch/internal/logger"
	"github.com/dmatos/gamewatch/internal/services"
)

type Server struct {
	Games     services.GameService
	Templates *template.Template

	ListRefreshSeconds  int
	DetailRefreshMillis int
	SuggestedLimit      int
}

type pageData map[string]any

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	if data == nil {
		data = pageData{}
	}
	if _, ok := data["title"]; !ok {
		data["title"] = "GameWatch"
	}
	if _, ok := data["list_refresh_seconds"]; !ok {
		data["list_refresh_seconds"] = s.ListRefreshSeconds
	}
	if _, ok := data["detail_refresh_millis"]; !ok {
		data["detail_refresh_millis"] = s.DetailRefreshMillis
	}

	log := logger.FromContext(r.Context())
	if err := s.Templates.ExecuteTemplate(w, name, data); err != nil {
		log.Error("failed to render template %s: %v", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// renderStatus writes a non-200 status before rendering a page.
func (s *Server) renderStatus(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	w.WriteHeader(status)
	s.render(w, r, name, data)
}
