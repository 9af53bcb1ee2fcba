package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherview.app/internal/core/favorite"
	"weatherview.app/internal/core/render"
	"weatherview.app/internal/core/theme"
	"weatherview.app/internal/core/view"
	"weatherview.app/internal/core/weather"
	"weatherview.app/internal/mocks"
	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

type stubHealthChecker struct {
	results map[string]ports.HealthStatus
}

func (s *stubHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	return s.results
}

type serverFixture struct {
	router  *gin.Engine
	view    *view.UseCase
	backend *mocks.WeatherBackend
	store   *mocks.PreferenceStore
	health  *stubHealthChecker
}

func setupServer(t *testing.T) *serverFixture {
	gin.SetMode(gin.TestMode)
	RegisterValidators()

	backend := mocks.NewWeatherBackend(t)
	store := mocks.NewPreferenceStore(t)
	logger := mocks.NewLogger()

	weatherUC, err := weather.NewUseCase(weather.UseCaseDependencies{Backend: backend, Logger: logger})
	require.NoError(t, err)
	favoriteUC, err := favorite.NewUseCase(favorite.UseCaseDependencies{Backend: backend, Logger: logger})
	require.NoError(t, err)
	themeUC, err := theme.NewUseCase(theme.UseCaseDependencies{Store: store, Logger: logger})
	require.NoError(t, err)
	v, err := view.NewUseCase(view.UseCaseDependencies{
		Weather:   weatherUC,
		Favorites: favoriteUC,
		Themes:    themeUC,
		Logger:    logger,
	})
	require.NoError(t, err)

	health := &stubHealthChecker{results: map[string]ports.HealthStatus{}}
	server, err := NewHTTPServerAdapter(ServerOptions{
		View:                v,
		SystemHealthChecker: health,
	})
	require.NoError(t, err)

	return &serverFixture{router: server.GetRouter(), view: v, backend: backend, store: store, health: health}
}

func (f *serverFixture) do(method, path string, body string, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *serverFixture) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	return f.do(http.MethodPost, path, form.Encode(), "application/x-www-form-urlencoded")
}

func (f *serverFixture) postJSON(method, path string, body string) *httptest.ResponseRecorder {
	return f.do(method, path, body, "application/json")
}

func decodeState(t *testing.T, w *httptest.ResponseRecorder) StateResponse {
	var state StateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	return state
}

func TestNewHTTPServerAdapter_MissingDependencies(t *testing.T) {
	_, err := NewHTTPServerAdapter(ServerOptions{})
	assert.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestShowPage_InitialState(t *testing.T) {
	f := setupServer(t)

	w := f.do(http.MethodGet, "/", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `data-theme="light"`)
	assert.Contains(t, body, `id="weatherContent" class="weather" hidden`)
	assert.Contains(t, body, `id="error" class="error" role="alert" hidden`)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestSubmitSearch_RendersSummary(t *testing.T) {
	f := setupServer(t)
	f.backend.On("GetSummary", mock.Anything, ports.SummaryParams{Place: "Paris", Days: 5}).
		Return(&ports.SummaryData{
			Place:   "Paris",
			Current: &ports.CurrentData{Temp: "20"},
			Daily:   []ports.DayData{{Name: "Mon", Hi: "22", Lo: "14"}},
		}, nil)

	w := f.postForm("/search", url.Values{"q": {" Paris "}, "days": {"5"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	page := f.do(http.MethodGet, "/", "", "")
	body := page.Body.String()
	assert.Contains(t, body, `<h2 id="place">Paris</h2>`)
	assert.Contains(t, body, `<span id="currentTemp">20°</span>`)
	assert.Contains(t, body, `<dd id="humidity">--%</dd>`)
	assert.Contains(t, body, `<strong class="day__hi">22°</strong>`)
	assert.Contains(t, body, `<option value="5" selected>5 days</option>`)
	assert.Contains(t, body, "No local news videos available")
	assert.NotContains(t, body, `id="weatherContent" class="weather" hidden`)
}

func TestSubmitSearch_ClientDisconnectDoesNotCancelLoad(t *testing.T) {
	f := setupServer(t)
	f.backend.On("GetSummary", mock.Anything, ports.SummaryParams{Place: "Paris", Days: 5}).
		Run(func(args mock.Arguments) {
			assert.NoError(t, args.Get(0).(context.Context).Err())
		}).
		Return(&ports.SummaryData{Place: "Paris"}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	form := url.Values{"q": {"Paris"}, "days": {"5"}}
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(form.Encode())).WithContext(ctx)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	snap := f.view.Snapshot()
	assert.False(t, snap.Visibility.ErrorVisible)
	assert.True(t, snap.Visibility.ContentVisible)
	assert.Equal(t, "Paris", snap.CurrentPlace)
}

func TestSubmitSearch_FailureShowsBanner(t *testing.T) {
	f := setupServer(t)
	f.backend.On("GetSummary", mock.Anything, ports.SummaryParams{Place: "Atlantis"}).
		Return(nil, errors.NewBackendStatusError("Failed to fetch weather data: Not Found", 404))

	w := f.postForm("/search", url.Values{"q": {"Atlantis"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	body := f.do(http.MethodGet, "/", "", "").Body.String()
	assert.Contains(t, body, `<p id="errorMessage">Error: Failed to fetch weather data: Not Found</p>`)
	assert.Contains(t, body, `id="weatherContent" class="weather" hidden`)
}

func TestSubmitSearch_InvalidDays(t *testing.T) {
	f := setupServer(t)

	f.postForm("/search", url.Values{"q": {"Paris"}, "days": {"week"}})

	snap := f.view.Snapshot()
	assert.True(t, snap.Visibility.ErrorVisible)
	assert.Equal(t, "Error: Invalid forecast length", snap.Visibility.ErrorText)
	f.backend.AssertNotCalled(t, "GetSummary", mock.Anything, mock.Anything)
}

func TestSubmitSaveFavorite(t *testing.T) {
	f := setupServer(t)
	f.backend.On("CreateFavorite", mock.Anything, "Lviv").Return(nil)
	f.backend.On("ListFavorites", mock.Anything).
		Return([]ports.FavoriteData{{ID: "f-1", Place: "Lviv", Latitude: floatPtr(49.84), Longitude: floatPtr(24.03)}}, nil)

	w := f.postForm("/favorites", url.Values{"q": {"Lviv"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	body := f.do(http.MethodGet, "/", "", "").Body.String()
	assert.Contains(t, body, `<span class="favorites__name">Lviv</span>`)
	assert.Contains(t, body, `action="/favorites/f-1/delete"`)
	assert.Contains(t, body, `name="lat" value="49.84"`)
	assert.Contains(t, body, `name="lon" value="24.03"`)
}

func TestSubmitDeleteFavorite_ReloadsList(t *testing.T) {
	f := setupServer(t)
	f.backend.On("DeleteFavorite", mock.Anything, "f-1").Return(nil)
	f.backend.On("ListFavorites", mock.Anything).Return([]ports.FavoriteData{}, nil)

	w := f.postForm("/favorites/f-1/delete", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)

	items := f.view.Snapshot().Document.Items(render.TargetFavoritesList)
	require.Len(t, items, 1)
	assert.Equal(t, favorite.EmptyMessage, items[0].Text)
}

func TestSubmitViewFavorite(t *testing.T) {
	f := setupServer(t)
	f.backend.On("GetSummary", mock.Anything, ports.SummaryParams{Lat: floatPtr(49.84), Lon: floatPtr(24.03)}).
		Return(&ports.SummaryData{Place: "Lviv"}, nil)

	w := f.postForm("/favorites/view", url.Values{"lat": {"49.84"}, "lon": {"24.03"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "Lviv", f.view.CurrentPlace())
}

func TestSubmitViewFavorite_InvalidCoordinates(t *testing.T) {
	f := setupServer(t)

	f.postForm("/favorites/view", url.Values{"lat": {"north"}, "lon": {"24.03"}})

	assert.Equal(t, "Error: "+favorite.InvalidCoordinatesMessage, f.view.Snapshot().Visibility.ErrorText)
	f.backend.AssertNotCalled(t, "GetSummary", mock.Anything, mock.Anything)
}

func TestSubmitToggleTheme(t *testing.T) {
	f := setupServer(t)
	f.store.On("Set", mock.Anything, theme.StorageKey, "dark").Return(nil)

	w := f.postForm("/theme/toggle", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)

	body := f.do(http.MethodGet, "/", "", "").Body.String()
	assert.Contains(t, body, `data-theme="dark"`)
}

func TestGetState(t *testing.T) {
	f := setupServer(t)

	w := f.do(http.MethodGet, "/api/state", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	state := decodeState(t, w)
	assert.Equal(t, "light", state.Theme)
	assert.False(t, state.Visibility.ContentVisible)
	assert.Equal(t, "light", state.Elements[render.TargetRoot].Attrs[theme.Attribute])
}

func TestAPISearch(t *testing.T) {
	f := setupServer(t)
	f.backend.On("GetSummary", mock.Anything, ports.SummaryParams{Place: "Oslo", Days: 3}).
		Return(&ports.SummaryData{Place: "Oslo"}, nil)

	w := f.postJSON(http.MethodPost, "/api/search", `{"q":"Oslo","days":3}`)

	assert.Equal(t, http.StatusOK, w.Code)
	state := decodeState(t, w)
	assert.Equal(t, "Oslo", state.CurrentPlace)
	assert.Equal(t, 3, state.Days)
	assert.True(t, state.Visibility.ContentVisible)
	assert.Equal(t, "Oslo", state.Elements[render.TargetPlace].Text)
}

func TestAPISearch_InvalidBody(t *testing.T) {
	f := setupServer(t)

	w := f.postJSON(http.MethodPost, "/api/search", `{"q":"Oslo","days":30}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request format")
}

func TestAPISearch_BackendFailure(t *testing.T) {
	f := setupServer(t)
	f.backend.On("GetSummary", mock.Anything, ports.SummaryParams{Place: "Oslo"}).
		Return(nil, errors.NewNetworkError("connection refused", nil))

	w := f.postJSON(http.MethodPost, "/api/search", `{"q":"Oslo"}`)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
	assert.Equal(t, "Error: connection refused", f.view.Snapshot().Visibility.ErrorText)
}

func TestAPIViewFavorite_RejectsInvalidCoordinates(t *testing.T) {
	f := setupServer(t)

	w := f.postJSON(http.MethodPost, "/api/favorites/view", `{"lat":"100","lon":"2"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), favorite.InvalidCoordinatesMessage)
}

func TestAPIDeleteFavorite_Failure(t *testing.T) {
	f := setupServer(t)
	f.backend.On("DeleteFavorite", mock.Anything, "f-9").
		Return(errors.NewBackendStatusError("Failed to delete favorite: Not Found", 404))
	f.backend.On("ListFavorites", mock.Anything).Return([]ports.FavoriteData{}, nil)

	w := f.postJSON(http.MethodDelete, "/api/favorites/f-9", "")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "Error: "+favorite.DeleteFailedMessage, f.view.Snapshot().Visibility.ErrorText)
}

func TestAPISetTheme(t *testing.T) {
	f := setupServer(t)
	f.store.On("Set", mock.Anything, theme.StorageKey, "dark").Return(nil).Once()

	w := f.postJSON(http.MethodPut, "/api/theme", `{"theme":"dark"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dark", decodeState(t, w).Theme)

	// already dark: nothing to persist
	w = f.postJSON(http.MethodPut, "/api/theme", `{"theme":"dark"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.postJSON(http.MethodPut, "/api/theme", `{"theme":"sepia"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPISetTheme_ConcurrentRequests(t *testing.T) {
	f := setupServer(t)
	f.store.On("Set", mock.Anything, theme.StorageKey, "dark").
		Run(func(mock.Arguments) { time.Sleep(20 * time.Millisecond) }).
		Return(nil).Once()

	var wg sync.WaitGroup
	codes := make([]int, 2)
	for i := range codes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = f.postJSON(http.MethodPut, "/api/theme", `{"theme":"dark"}`).Code
		}(i)
	}
	wg.Wait()

	assert.Equal(t, []int{http.StatusOK, http.StatusOK}, codes)
	assert.Equal(t, "dark", f.view.Snapshot().Theme)
}

func TestAPIToggleTheme_PersistFailure(t *testing.T) {
	f := setupServer(t)
	f.store.On("Set", mock.Anything, theme.StorageKey, "dark").
		Return(errors.NewStorageError("redis unavailable", nil))

	w := f.postJSON(http.MethodPost, "/api/theme/toggle", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "dark", f.view.Snapshot().Theme)
}

func TestGetHealth(t *testing.T) {
	f := setupServer(t)
	f.health.results = map[string]ports.HealthStatus{
		"weatherBackend": {Component: "weatherBackend", Status: "healthy"},
	}

	w := f.do(http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	f.health.results["preferences"] = ports.HealthStatus{Component: "preferences", Status: "unhealthy", Error: "ping failed"}

	w = f.do(http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "ping failed", resp.Components["preferences"].Error)
}

func floatPtr(v float64) *float64 { return &v }
