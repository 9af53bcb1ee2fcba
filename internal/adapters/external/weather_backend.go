// Package external provides adapters for external services
// These adapters implement ports for the remote weather API and preference storage.
package external

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

const (
	requestIDHeader = "X-Request-ID"

	summaryFailedPrefix   = "Failed to fetch weather data: "
	loadFavoritesFailed   = "Failed to load favorites"
	saveFavoriteFailed    = "Failed to save favorite"
	deleteFavoriteFailed  = "Failed to delete favorite"
	invalidResponseFormat = "Invalid response from weather service"
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPWeatherBackendAdapter implements WeatherBackend port over the REST API
type HTTPWeatherBackendAdapter struct {
	baseURL string
	rootURL string
	client  HTTPClient
	logger  ports.Logger
}

// HTTPWeatherBackendParams holds parameters for creating the backend adapter
type HTTPWeatherBackendParams struct {
	BaseURL string
	// Timeout of 0 means no client timeout
	Timeout time.Duration
	// Client overrides the default http.Client
	Client HTTPClient
	Logger ports.Logger
}

// NewHTTPWeatherBackendAdapter creates a new REST backend adapter
func NewHTTPWeatherBackendAdapter(params HTTPWeatherBackendParams) (*HTTPWeatherBackendAdapter, error) {
	if params.Logger == nil {
		return nil, errors.NewConfigurationError("logger is required", nil)
	}

	base := strings.TrimRight(params.BaseURL, "/")
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.NewConfigurationError("invalid backend base URL: "+params.BaseURL, err)
	}

	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: params.Timeout}
	}

	return &HTTPWeatherBackendAdapter{
		baseURL: base,
		rootURL: u.Scheme + "://" + u.Host + "/",
		client:  client,
		logger:  params.Logger,
	}, nil
}

// GetSummary requests {base}/summary. days goes first, then either q or the
// lat/lon pair.
func (b *HTTPWeatherBackendAdapter) GetSummary(ctx context.Context, params ports.SummaryParams) (*ports.SummaryData, error) {
	resp, err := b.do(ctx, http.MethodGet, b.summaryURL(params), nil)
	if err != nil {
		return nil, err
	}
	defer b.closeBody(resp)

	if !isSuccess(resp.StatusCode) {
		return nil, errors.NewBackendStatusError(summaryFailedPrefix+statusText(resp), resp.StatusCode)
	}

	var payload summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.NewDecodeError(invalidResponseFormat, err)
	}

	return payload.toPorts(), nil
}

func (b *HTTPWeatherBackendAdapter) summaryURL(params ports.SummaryParams) string {
	// url.Values.Encode sorts keys, so the query is assembled by hand to keep
	// the parameter order stable.
	var parts []string
	if params.Days > 0 {
		parts = append(parts, "days="+strconv.Itoa(params.Days))
	}
	switch {
	case params.Place != "":
		parts = append(parts, "q="+url.QueryEscape(params.Place))
	case params.Lat != nil && params.Lon != nil:
		parts = append(parts,
			"lat="+strconv.FormatFloat(*params.Lat, 'f', -1, 64),
			"lon="+strconv.FormatFloat(*params.Lon, 'f', -1, 64))
	}

	if len(parts) == 0 {
		return b.baseURL + "/summary"
	}
	return b.baseURL + "/summary?" + strings.Join(parts, "&")
}

// ListFavorites requests {base}/favorites
func (b *HTTPWeatherBackendAdapter) ListFavorites(ctx context.Context) ([]ports.FavoriteData, error) {
	resp, err := b.do(ctx, http.MethodGet, b.baseURL+"/favorites", nil)
	if err != nil {
		return nil, err
	}
	defer b.closeBody(resp)

	if !isSuccess(resp.StatusCode) {
		return nil, errors.NewBackendStatusError(loadFavoritesFailed, resp.StatusCode)
	}

	var payload []favoriteResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.NewDecodeError(invalidResponseFormat, err)
	}

	favorites := make([]ports.FavoriteData, 0, len(payload))
	for _, f := range payload {
		favorites = append(favorites, f.toPorts())
	}
	return favorites, nil
}

// CreateFavorite posts {"q": place}. The response body is ignored.
func (b *HTTPWeatherBackendAdapter) CreateFavorite(ctx context.Context, place string) error {
	body, err := json.Marshal(createFavoriteRequest{Q: place})
	if err != nil {
		return errors.NewValidationError("failed to encode favorite request")
	}

	resp, err := b.do(ctx, http.MethodPost, b.baseURL+"/favorites", body)
	if err != nil {
		return err
	}
	defer b.closeBody(resp)

	if !isSuccess(resp.StatusCode) {
		return errors.NewBackendStatusError(saveFavoriteFailed, resp.StatusCode)
	}
	return nil
}

// DeleteFavorite deletes {base}/favorites/{id}
func (b *HTTPWeatherBackendAdapter) DeleteFavorite(ctx context.Context, id string) error {
	resp, err := b.do(ctx, http.MethodDelete, b.baseURL+"/favorites/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	defer b.closeBody(resp)

	if !isSuccess(resp.StatusCode) {
		return errors.NewBackendStatusError(deleteFavoriteFailed, resp.StatusCode)
	}
	return nil
}

// Ping checks the service root of the backend host
func (b *HTTPWeatherBackendAdapter) Ping(ctx context.Context) error {
	resp, err := b.do(ctx, http.MethodGet, b.rootURL, nil)
	if err != nil {
		return err
	}
	defer b.closeBody(resp)

	if !isSuccess(resp.StatusCode) {
		return errors.NewBackendStatusError("backend health check returned "+statusText(resp), resp.StatusCode)
	}
	return nil
}

func (b *HTTPWeatherBackendAdapter) do(ctx context.Context, method, target string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, errors.NewNetworkError(err.Error(), err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, errors.NewNetworkError(networkMessage(err), err)
	}
	return resp, nil
}

func (b *HTTPWeatherBackendAdapter) closeBody(resp *http.Response) {
	if closeErr := resp.Body.Close(); closeErr != nil {
		b.logger.Warn("Failed to close backend response body", ports.F("error", closeErr))
	}
}

func networkMessage(err error) string {
	var urlErr *url.Error
	if stderrors.As(err, &urlErr) {
		return urlErr.Err.Error()
	}
	return err.Error()
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

// statusText is the reason phrase of the response, e.g. "Not Found"
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	if text == "" {
		text = fmt.Sprintf("status %d", resp.StatusCode)
	}
	return text
}
