package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmatos/gamewatch/internal/models"
)

func TestPickCoverURL(t *testing.T) {
	tests := []struct {
		name string
		game models.Game
		want string
	}{
		{
			name: "structured url cover wins",
			game: models.Game{
				CoverURL: "https://legacy.example/cover.jpg",
				Media: &models.Media{
					Cover:    &models.ImageAsset{Kind: "url", URL: "https://cdn.example/cover.jpg"},
					CoverURL: "https://media-legacy.example/cover.jpg",
				},
			},
			want: "https://cdn.example/cover.jpg",
		},
		{
			name: "base64 cover becomes a data uri",
			game: models.Game{
				Media: &models.Media{
					Cover: &models.ImageAsset{Kind: "base64", MIME: "image/png", Data: "AAAA"},
				},
			},
			want: "data:image/png;base64,AAAA",
		},
		{
			name: "media legacy coverUrl before game coverUrl",
			game: models.Game{
				CoverURL: "https://legacy.example/cover.jpg",
				Media:    &models.Media{CoverURL: "https://media-legacy.example/cover.jpg"},
			},
			want: "https://media-legacy.example/cover.jpg",
		},
		{
			name: "game coverUrl as last resort",
			game: models.Game{CoverURL: "https://legacy.example/cover.jpg"},
			want: "https://legacy.example/cover.jpg",
		},
		{
			name: "no cover",
			game: models.Game{},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pickCoverURL(tt.game))
		})
	}
}

func TestPickSources_ReleaseFirstOfficialFirst(t *testing.T) {
	game := models.Game{
		Release: models.AnnouncedDate{
			ReleaseBase: models.ReleaseBase{
				Confidence: models.ConfidenceConfirmed,
				Sources: []models.Source{
					{Name: "Leaker", IsOfficial: false, URL: "https://leak.example"},
					{Name: "PlayStation Blog", IsOfficial: true, URL: "https://blog.playstation.example"},
				},
			},
			DateISO: "2026-01-01",
		},
		Sources: []models.Source{
			{Name: "Rockstar Games", IsOfficial: true, URL: "https://rockstar.example"},
			{Name: "Leaker", IsOfficial: false, URL: "https://leak.example"}, // duplicate
		},
	}

	got := pickSources(game)

	names := make([]string, len(got))
	for i, s := range got {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"PlayStation Blog", "Rockstar Games", "Leaker"}, names)
}

func TestPickTopSources(t *testing.T) {
	sources := []models.Source{{Name: "a"}, {Name: "b"}, {Name: "c"}}

	assert.Len(t, pickTopSources(sources, 2), 2)
	assert.Len(t, pickTopSources(sources, 5), 3)
}
