package api

import (
	"sort"

	"github.com/dmatos/gamewatch/internal/models"
)

// pickCoverURL resolves the display cover, preferring the structured media
// asset over the legacy coverUrl fields. Inline base64 assets become data URIs.
func pickCoverURL(g models.Game) string {
	if g.Media != nil && g.Media.Cover != nil {
		switch cover := g.Media.Cover; cover.Kind {
		case "url":
			if cover.URL != "" {
				return cover.URL
			}
		case "base64":
			if cover.Data != "" && cover.MIME != "" {
				return "data:" + cover.MIME + ";base64," + cover.Data
			}
		}
	}
	if g.Media != nil && g.Media.CoverURL != "" {
		return g.Media.CoverURL
	}
	return g.CoverURL
}

// pickSources collects the sources worth showing for a game: the ones
// attached to the release record first, then the game-level attribution,
// official sources ahead of unofficial ones.
func pickSources(g models.Game) []models.Source {
	var out []models.Source
	seen := make(map[string]bool)

	add := func(src models.Source) {
		key := src.URL
		if key == "" {
			key = src.Name
		}
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, src)
	}

	if g.Release != nil {
		for _, src := range g.Release.Base().Sources {
			add(src)
		}
	}
	for _, src := range g.Sources {
		add(src)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IsOfficial && !out[j].IsOfficial
	})
	return out
}

// pickTopSources caps the source list for compact display.
func pickTopSources(sources []models.Source, n int) []models.Source {
	if len(sources) <= n {
		return sources
	}
	return sources[:n]
}

func pickTrailers(g models.Game) []models.TrailerLink {
	if g.Media == nil {
		return nil
	}
	return g.Media.Trailers
}
