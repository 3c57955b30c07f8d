package mealdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/AceRider75/moodfood/internal/core/domain"
	"github.com/AceRider75/moodfood/internal/core/ports"
	"github.com/AceRider75/moodfood/internal/logging"
)

// DefaultBaseURL is the public free-tier endpoint.
const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 4 << 10

// Client is an HTTP client for TheMealDB.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// compile-time interface assertion
var _ ports.RecipeSource = (*Client)(nil)

// NewClient constructs a new TheMealDB client. An empty baseURL uses
// DefaultBaseURL.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// FetchCandidates runs a random or category query. Random queries return
// one candidate with its detail already attached.
func (c *Client) FetchCandidates(ctx context.Context, spec domain.QuerySpec) ([]domain.CandidateRef, error) {
	log := logging.FromContext(ctx)
	if spec.MaxFat > 0 {
		log.WithField("max_fat", spec.MaxFat).Debug("mealdb adapter: fat bound not supported, ignoring")
	}

	switch spec.Kind {
	case domain.QueryRandom:
		var body mealsResponse
		if err := c.get(ctx, "random.php", nil, &body); err != nil {
			return nil, err
		}
		refs := make([]domain.CandidateRef, 0, len(body.Meals))
		for _, m := range body.Meals {
			if m == nil {
				continue
			}
			recipe := mapMealToDomain(m)
			refs = append(refs, domain.CandidateRef{
				ID:        recipe.ID,
				Name:      recipe.Title,
				Thumbnail: recipe.ImageURL,
				Detail:    &recipe,
			})
		}
		return refs, nil

	case domain.QueryCategory:
		if spec.Category == "" {
			return nil, fmt.Errorf("mealdb adapter: category query without category: %w", domain.ErrUnsupportedQuery)
		}
		var body filterResponse
		if err := c.get(ctx, "filter.php", url.Values{"c": {spec.Category}}, &body); err != nil {
			return nil, err
		}
		refs := make([]domain.CandidateRef, 0, len(body.Meals))
		for _, m := range body.Meals {
			refs = append(refs, domain.CandidateRef{ID: m.ID, Name: m.Name, Thumbnail: m.Thumb})
		}
		log.WithField("category", spec.Category).WithField("count", len(refs)).Debug("mealdb adapter: category filtered")
		return refs, nil

	default:
		return nil, fmt.Errorf("mealdb adapter: %s: %w", spec.Kind, domain.ErrUnsupportedQuery)
	}
}

// FetchDetail looks a meal up by id. A null meal list means the id is gone.
func (c *Client) FetchDetail(ctx context.Context, id string) (domain.Recipe, error) {
	var body mealsResponse
	if err := c.get(ctx, "lookup.php", url.Values{"i": {id}}, &body); err != nil {
		return domain.Recipe{}, err
	}
	for _, m := range body.Meals {
		if m != nil {
			return mapMealToDomain(m), nil
		}
	}
	return domain.Recipe{}, fmt.Errorf("mealdb adapter: meal %s: %w", id, domain.ErrNotFound)
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	reqURL, err := url.Parse(fmt.Sprintf("%s/%s", c.baseURL, endpoint))
	if err != nil {
		return fmt.Errorf("mealdb adapter: invalid url: %w", err)
	}
	if query != nil {
		reqURL.RawQuery = query.Encode()
	}

	logging.FromContext(ctx).WithField("url", reqURL.String()).Debug("mealdb adapter: request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("mealdb adapter: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mealdb adapter: %w", &domain.UpstreamError{Message: err.Error()})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("mealdb adapter: %s: %w", endpoint, upstreamError(resp))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("mealdb adapter: %w", &domain.UpstreamError{
			Status:  resp.StatusCode,
			Message: "malformed response: " + err.Error(),
		})
	}
	return nil
}

func upstreamError(resp *http.Response) *domain.UpstreamError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(raw))

	var body struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &body) == nil && body.Message != "" {
		msg = body.Message
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &domain.UpstreamError{Status: resp.StatusCode, Message: msg}
}
