package models

import (
	json "github.com/goccy/go-json"
)

type Platform string

const (
	PlatformPC         Platform = "pc"
	PlatformPS5        Platform = "ps5"
	PlatformPS4        Platform = "ps4"
	PlatformXboxSeries Platform = "xbox_series"
	PlatformXboxOne    Platform = "xbox_one"
	PlatformSwitch     Platform = "switch"
	PlatformSwitch2    Platform = "switch_2"
	PlatformIOS        Platform = "ios"
	PlatformAndroid    Platform = "android"
	PlatformVR         Platform = "vr"
	PlatformOther      Platform = "other"
)

type Region string

const (
	RegionGlobal Region = "global"
	RegionUS     Region = "us"
	RegionEU     Region = "eu"
	RegionJP     Region = "jp"
	RegionAU     Region = "au"
	RegionOther  Region = "other"
)

type CategoryType string

const (
	CategoryFullGame   CategoryType = "full_game"
	CategoryDLC        CategoryType = "dlc"
	CategorySeason     CategoryType = "season"
	CategoryEvent      CategoryType = "event"
	CategoryUpdate     CategoryType = "update"
	CategoryStoreReset CategoryType = "store_reset"
	CategoryOther      CategoryType = "other"
)

type Category struct {
	Type      CategoryType `json:"type"`
	Subtype   string       `json:"subtype,omitempty"`
	Franchise string       `json:"franchise,omitempty"`
	Label     string       `json:"label,omitempty"`
}

// Source attributes a claim about a release to where it came from.
type Source struct {
	Type         string `json:"type"`
	IsOfficial   bool   `json:"isOfficial"`
	Name         string `json:"name"`
	URL          string `json:"url,omitempty"`
	RetrievedAt  string `json:"retrievedAt,omitempty"`
	Claim        string `json:"claim,omitempty"`
	AuthorHandle string `json:"authorHandle,omitempty"`
	Excerpt      string `json:"excerpt,omitempty"`
	Reliability  string `json:"reliability,omitempty"`
}

// ImageAsset is either an external URL or inline base64 bytes.
type ImageAsset struct {
	Kind   string `json:"kind"` // "url" or "base64"
	URL    string `json:"url,omitempty"`
	MIME   string `json:"mime,omitempty"`
	Data   string `json:"data,omitempty"` // base64 bytes, no data: prefix
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

type TrailerLink struct {
	URL      string `json:"url"`
	Label    string `json:"label,omitempty"`
	Platform string `json:"platform,omitempty"`
}

type Media struct {
	Cover    *ImageAsset   `json:"cover,omitempty"`
	Trailers []TrailerLink `json:"trailers,omitempty"`
	CoverURL string        `json:"coverUrl,omitempty"` // deprecated, prefer Cover
}

type StudioLocation struct {
	City    string `json:"city,omitempty"`
	Region  string `json:"region,omitempty"`
	Country string `json:"country,omitempty"`
	HQ      bool   `json:"hq,omitempty"`
}

type Studio struct {
	Name          string          `json:"name"`
	Type          string          `json:"type"` // developer, publisher, developer_publisher, unknown
	Location      *StudioLocation `json:"location,omitempty"`
	Website       string          `json:"website,omitempty"`
	Description   string          `json:"description,omitempty"`
	ParentCompany string          `json:"parentCompany,omitempty"`
}

type DLCDetails struct {
	Name             string     `json:"name"`
	Kind             string     `json:"kind,omitempty"`
	RequiresBaseGame bool       `json:"requiresBaseGame,omitempty"`
	Platforms        []Platform `json:"platforms,omitempty"`
	IncludedWith     []string   `json:"includedWith,omitempty"`
	Description      string     `json:"description,omitempty"`
}

type SeasonDetails struct {
	Name       string `json:"name,omitempty"`
	Number     int    `json:"number,omitempty"`
	Chapter    int    `json:"chapter,omitempty"`
	BattlePass bool   `json:"battlePass,omitempty"`
	Theme      string `json:"theme,omitempty"`
}

type PopularityTier string

const (
	TierBlockbuster    PopularityTier = "blockbuster"
	TierLiveService    PopularityTier = "very_popular_live_service"
	TierPopular        PopularityTier = "popular"
	TierNiche          PopularityTier = "niche"
	TierUnknownOrRumor PopularityTier = "unknown_or_rumor"
)

type Availability string

const (
	AvailabilityUpcoming  Availability = "upcoming"
	AvailabilityReleased  Availability = "released"
	AvailabilityCancelled Availability = "cancelled"
	AvailabilityUnknown   Availability = "unknown"
)

// Game is one release-trackable entry: a full game, DLC, season, event or
// recurring store reset.
type Game struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Title          string         `json:"title,omitempty"`
	Tags           []string       `json:"tags,omitempty"`
	Category       Category       `json:"category"`
	Platforms      []Platform     `json:"platforms"`
	Media          *Media         `json:"media,omitempty"`
	CoverURL       string         `json:"coverUrl,omitempty"` // deprecated, prefer Media.Cover
	Release        Release        `json:"-"`
	Availability   Availability   `json:"availability,omitempty"`
	Sources        []Source       `json:"sources"`
	Studio         *Studio        `json:"studio,omitempty"`
	DLC            *DLCDetails    `json:"dlc,omitempty"`
	Season         *SeasonDetails `json:"season,omitempty"`
	PopularityTier PopularityTier `json:"popularityTier,omitempty"`
	PopularityRank int            `json:"popularityRank,omitempty"`
}

// gameAlias avoids infinite recursion in the (Un)MarshalJSON methods.
type gameAlias Game

func (g *Game) UnmarshalJSON(data []byte) error {
	aux := struct {
		gameAlias
		Release json.RawMessage `json:"release"`
	}{gameAlias: gameAlias(*g)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*g = Game(aux.gameAlias)
	if len(aux.Release) == 0 {
		g.Release = nil
		return nil
	}
	rel, err := UnmarshalRelease(aux.Release)
	if err != nil {
		return err
	}
	g.Release = rel
	return nil
}

func (g Game) MarshalJSON() ([]byte, error) {
	rel, err := MarshalRelease(g.Release)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		gameAlias
		Release json.RawMessage `json:"release"`
	}{gameAlias(g), rel})
}

// GamesDoc is the whole dataset, immutable once loaded.
type GamesDoc struct {
	GeneratedAt   string `json:"generatedAt"`
	AsOf          string `json:"asOf,omitempty"`
	SchemaVersion string `json:"schemaVersion"`
	Games         []Game `json:"games"`
}

// FindGame returns the game with the given id, or nil.
func (d *GamesDoc) FindGame(id string) *Game {
	for i := range d.Games {
		if d.Games[i].ID == id {
			return &d.Games[i]
		}
	}
	return nil
}
