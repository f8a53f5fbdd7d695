package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmatos/gamewatch/internal/api"
	apperrors "github.com/dmatos/gamewatch/internal/errors"
	"github.com/dmatos/gamewatch/internal/query"
	"github.com/dmatos/gamewatch/internal/services"
	"github.com/dmatos/gamewatch/internal/testutil"
	"github.com/dmatos/gamewatch/internal/testutil/mocks"
)

func newTestServer(games *mocks.MockGameService) *api.Server {
	return &api.Server{
		Games:               games,
		ListRefreshSeconds:  30,
		DetailRefreshMillis: 250,
		SuggestedLimit:      6,
	}
}

func doRequest(t *testing.T, srv *api.Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAPIGames(t *testing.T) {
	doc := testutil.Doc(
		testutil.AnnouncedGame("a", "Alpha", "2026-01-01"),
		testutil.TBAGame("b", "Beta"),
	)
	games := new(mocks.MockGameService)
	games.On("ListGames", mock.Anything, mock.Anything, mock.Anything).
		Return(services.ListResult{Games: doc.Games, Total: 2}, nil)
	games.On("Document", mock.Anything).Return(doc, nil)

	rec := doRequest(t, newTestServer(games), http.MethodGet, "/api/games?sort=soonest")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["total"])
	items := body["games"].([]any)
	require.Len(t, items, 2)

	first := items[0].(map[string]any)
	assert.Equal(t, "announced_date", first["status"])
	assert.NotNil(t, first["msLeft"])

	second := items[1].(map[string]any)
	assert.Equal(t, "tba", second["status"])
	assert.Nil(t, second["msLeft"], "tba has no deadline, msLeft must be null not zero")
}

func TestAPIGames_PassesParsedFilters(t *testing.T) {
	games := new(mocks.MockGameService)
	expected := query.Filters{Query: "zelda", Status: "tba", Tag: "switch", Sort: query.SortLatest}
	games.On("ListGames", mock.Anything, expected, mock.Anything).
		Return(services.ListResult{}, nil)
	games.On("Document", mock.Anything).Return(testutil.Doc(), nil)

	rec := doRequest(t, newTestServer(games), http.MethodGet,
		"/api/games?q=zelda&status=tba&tag=switch&sort=latest")

	require.Equal(t, http.StatusOK, rec.Code)
	games.AssertExpectations(t)
}

func TestAPIGameDetail(t *testing.T) {
	game := testutil.DailyGame("shop", "Item Shop", "09:00")
	games := new(mocks.MockGameService)
	games.On("GetGame", mock.Anything, "shop").Return(&game, nil)

	rec := doRequest(t, newTestServer(games), http.MethodGet, "/api/games/shop")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	item := body["item"].(map[string]any)
	assert.Equal(t, "recurring_daily", item["status"])
	assert.Equal(t, "Resets daily at 09:00 UTC", item["label"])
	require.NotNil(t, item["msLeft"])
	assert.GreaterOrEqual(t, item["msLeft"].(float64), float64(0),
		"recurring releases never have negative remaining time")
}

func TestAPIGameDetail_NotFound(t *testing.T) {
	games := new(mocks.MockGameService)
	games.On("GetGame", mock.Anything, "nope").
		Return(nil, apperrors.NewNotFoundError("game", "nope"))

	rec := doRequest(t, newTestServer(games), http.MethodGet, "/api/games/nope")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errObj["code"])
}

func TestAPIGames_DocumentUnavailable(t *testing.T) {
	games := new(mocks.MockGameService)
	games.On("ListGames", mock.Anything, mock.Anything, mock.Anything).
		Return(services.ListResult{}, apperrors.NewUnavailableError(assertableErr("boom")))

	rec := doRequest(t, newTestServer(games), http.MethodGet, "/api/games")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decodeBody(t, rec)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "UNAVAILABLE", errObj["code"])
}

func TestHealthz(t *testing.T) {
	games := new(mocks.MockGameService)
	games.On("Document", mock.Anything).Return(testutil.Doc(testutil.TBAGame("a", "A")), nil)

	rec := doRequest(t, newTestServer(games), http.MethodGet, "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(1), body["games"])
}

func TestHealthz_Degraded(t *testing.T) {
	games := new(mocks.MockGameService)
	games.On("Document", mock.Anything).
		Return(nil, apperrors.NewUnavailableError(assertableErr("load failed")))

	rec := doRequest(t, newTestServer(games), http.MethodGet, "/healthz")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "degraded", decodeBody(t, rec)["status"])
}

func TestRequestIDHeader(t *testing.T) {
	games := new(mocks.MockGameService)
	games.On("Document", mock.Anything).Return(testutil.Doc(), nil)

	rec := doRequest(t, newTestServer(games), http.MethodGet, "/healthz")

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

// assertableErr is a trivial error for wrapping in AppErrors.
type assertableErr string

func (e assertableErr) Error() string { return string(e) }
