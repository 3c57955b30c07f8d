package spoonacular

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/AceRider75/moodfood/internal/core/domain"
	"github.com/AceRider75/moodfood/internal/core/ports"
	"github.com/AceRider75/moodfood/internal/logging"
)

// DefaultBaseURL is the public Spoonacular endpoint.
const DefaultBaseURL = "https://api.spoonacular.com"

const maxErrorBody = 4 << 10

// Client is an HTTP client for the Spoonacular recipe API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// compile-time interface assertion
var _ ports.RecipeSource = (*Client)(nil)

// NewClient constructs a new Spoonacular client. An empty baseURL uses
// DefaultBaseURL.
func NewClient(httpClient *http.Client, baseURL, apiKey string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// FetchCandidates runs a complexSearch. Every result carries its detail, so
// the resolver never needs a second round-trip.
func (c *Client) FetchCandidates(ctx context.Context, spec domain.QuerySpec) ([]domain.CandidateRef, error) {
	if spec.Kind != domain.QuerySearch {
		return nil, fmt.Errorf("spoonacular adapter: %s: %w", spec.Kind, domain.ErrUnsupportedQuery)
	}

	query := url.Values{}
	if spec.Keywords != "" {
		query.Set("query", spec.Keywords)
	}
	if spec.Diet != "" {
		query.Set("diet", spec.Diet)
	}
	setPositive(query, "maxFat", spec.MaxFat)
	setPositive(query, "maxCalories", spec.MaxCalories)
	setPositive(query, "maxReadyTime", spec.MaxReadyTime)
	setPositive(query, "number", spec.Number)
	query.Set("addRecipeNutrition", "true")
	query.Set("addRecipeInformation", "true")

	var body searchResponse
	if err := c.get(ctx, "/recipes/complexSearch", query, &body); err != nil {
		return nil, err
	}

	refs := make([]domain.CandidateRef, 0, len(body.Results))
	for _, r := range body.Results {
		recipe := mapRecipeToDomain(r)
		refs = append(refs, domain.CandidateRef{
			ID:        recipe.ID,
			Name:      recipe.Title,
			Thumbnail: recipe.ImageURL,
			Detail:    &recipe,
		})
	}
	logging.FromContext(ctx).
		WithField("query", spec.Keywords).
		WithField("count", len(refs)).
		WithField("total", body.TotalResults).
		Debug("spoonacular adapter: search complete")
	return refs, nil
}

// FetchDetail loads one recipe with nutrition. Search results already carry
// detail, so this is only reached for bare references.
func (c *Client) FetchDetail(ctx context.Context, id string) (domain.Recipe, error) {
	var body recipeInfo
	endpoint := fmt.Sprintf("/recipes/%s/information", url.PathEscape(id))
	if err := c.get(ctx, endpoint, url.Values{"includeNutrition": {"true"}}, &body); err != nil {
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) && upstream.Status == http.StatusNotFound {
			return domain.Recipe{}, fmt.Errorf("spoonacular adapter: recipe %s: %w", id, domain.ErrNotFound)
		}
		return domain.Recipe{}, err
	}
	if body.ID == 0 {
		return domain.Recipe{}, fmt.Errorf("spoonacular adapter: recipe %s: %w", id, domain.ErrNotFound)
	}
	return mapRecipeToDomain(body), nil
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	reqURL, err := url.Parse(c.baseURL + endpoint)
	if err != nil {
		return fmt.Errorf("spoonacular adapter: invalid url: %w", err)
	}

	logging.FromContext(ctx).
		WithField("url", reqURL.String()+"?"+query.Encode()).
		Debug("spoonacular adapter: request")

	if c.apiKey != "" {
		query.Set("apiKey", c.apiKey)
	}
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("spoonacular adapter: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("spoonacular adapter: %w", &domain.UpstreamError{Message: c.redact(err.Error())})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("spoonacular adapter: %s: %w", endpoint, upstreamError(resp))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("spoonacular adapter: %w", &domain.UpstreamError{
			Status:  resp.StatusCode,
			Message: "malformed response: " + err.Error(),
		})
	}
	return nil
}

// redact strips the API key from transport errors, which quote the URL.
func (c *Client) redact(s string) string {
	if c.apiKey == "" {
		return s
	}
	return strings.ReplaceAll(s, c.apiKey, "REDACTED")
}

func setPositive(q url.Values, key string, v int) {
	if v > 0 {
		q.Set(key, strconv.Itoa(v))
	}
}

func upstreamError(resp *http.Response) *domain.UpstreamError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(raw))

	var body errorResponse
	if json.Unmarshal(raw, &body) == nil && body.Message != "" {
		msg = body.Message
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &domain.UpstreamError{Status: resp.StatusCode, Message: msg}
}
