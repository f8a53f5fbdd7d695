package api

import (
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/dmatos/gamewatch/internal/errors"
	"github.com/dmatos/gamewatch/internal/logger"
)

// handleError centralizes error handling for HTTP responses
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.NewInternalError(err)
	}

	if appErr.Status >= 500 {
		log.Error("server error: %v", appErr)
	} else if appErr.Status >= 400 {
		log.Warn("client error: %v", appErr)
	} else {
		log.Debug("error: %v", appErr)
	}

	if isAPIRequest(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(appErr.Status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	// A missing game is not fatal: show a "not found" page with a way back
	// to the list.
	if appErr.Code == errors.ErrCodeNotFound {
		s.renderStatus(w, r, appErr.Status, "pages/not_found.html", pageData{
			"message": appErr.Message,
		})
		return
	}

	s.renderStatus(w, r, appErr.Status, "pages/error.html", pageData{
		"status":  appErr.Status,
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

func isAPIRequest(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/") || r.Header.Get("Accept") == "application/json"
}
