package api

import (
	"html/template"
	"net/url"
	"path/filepath"

	json "github.com/goccy/go-json"

	"github.com/dmatos/gamewatch/internal/release"
)

func LoadTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		// pad2 zero-pads countdown components to width 2
		"pad2": release.Pad2,
		"mul":  func(a, b int) int { return a * b },
		// urlquery URL-encodes a string
		"urlquery": func(s string) string {
			return url.QueryEscape(s)
		},
		// json marshals a value to a JSON string
		"json": func(v any) (string, error) {
			b, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			return string(b), nil
		},
	}

	t := template.New("base").Funcs(funcs)

	patterns := []string{
		"web/templates/layouts/*.html",
		"web/templates/pages/*.html",
	}
	for _, p := range patterns {
		if matches, _ := filepath.Glob(p); len(matches) == 0 {
			continue
		}
		if _, err := t.ParseGlob(p); err != nil {
			return nil, err
		}
	}

	return t, nil
}
