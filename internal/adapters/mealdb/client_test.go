package mealdb_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AceRider75/moodfood/internal/adapters/mealdb"
	"github.com/AceRider75/moodfood/internal/core/domain"
)

const lookupBody = `{"meals":[{
	"idMeal":"52772","strMeal":"Teriyaki Chicken Casserole",
	"strMealThumb":"https://www.themealdb.com/images/media/meals/wvpsxx1468256321.jpg",
	"strInstructions":"Preheat oven to 350.\r\nBake.",
	"strSource":null,
	"strIngredient1":"soy sauce","strMeasure1":"3/4 cup",
	"strIngredient2":"water","strMeasure2":"1/2 cup",
	"strIngredient3":"Sugar","strMeasure3":"1 cup",
	"strIngredient4":"","strMeasure4":" ",
	"strIngredient5":null,"strMeasure5":null,
	"strIngredient6":"salt","strMeasure6":""
}]}`

func newServer(t *testing.T, handler http.HandlerFunc) *mealdb.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return mealdb.NewClient(server.Client(), server.URL+"/")
}

func TestFetchDetail(t *testing.T) {
	var gotPath, gotID string
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotID = r.URL.Query().Get("i")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(lookupBody))
	})

	recipe, err := client.FetchDetail(context.Background(), "52772")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/lookup.php" || gotID != "52772" {
		t.Fatalf("request: got %s?i=%s", gotPath, gotID)
	}
	if recipe.Title != "Teriyaki Chicken Casserole" {
		t.Errorf("Title: got %q", recipe.Title)
	}
	if recipe.SourceURL != "" {
		t.Errorf("SourceURL: got %q, want empty", recipe.SourceURL)
	}

	wantLines := []string{"3/4 cup soy sauce", "1/2 cup water", "1 cup Sugar", "salt"}
	if len(recipe.Ingredients) != len(wantLines) {
		t.Fatalf("Ingredients: got %d, want %d (%+v)", len(recipe.Ingredients), len(wantLines), recipe.Ingredients)
	}
	for i, want := range wantLines {
		if got := recipe.Ingredients[i].Line(); got != want {
			t.Errorf("Ingredients[%d]: got %q, want %q", i, got, want)
		}
	}
	if recipe.Nutrition.Calories != nil || recipe.Nutrition.FatGrams != nil {
		t.Errorf("Nutrition: expected unknown, got %+v", recipe.Nutrition)
	}
}

func TestFetchDetail_NullMeals(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meals":null}`))
	})

	_, err := client.FetchDetail(context.Background(), "1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFetchCandidates(t *testing.T) {
	tests := []struct {
		name      string
		spec      domain.QuerySpec
		body      string
		wantPath  string
		wantQuery string
		wantIDs   []string
		wantInfo  bool
	}{
		{
			name:      "category",
			spec:      domain.QuerySpec{Kind: domain.QueryCategory, Category: "Seafood", MaxFat: 20},
			body:      `{"meals":[{"strMeal":"Baked salmon","strMealThumb":"a.jpg","idMeal":"52959"},{"strMeal":"Cajun prawns","strMealThumb":"b.jpg","idMeal":"52819"}]}`,
			wantPath:  "/filter.php",
			wantQuery: "c=Seafood",
			wantIDs:   []string{"52959", "52819"},
		},
		{
			name:      "empty category",
			spec:      domain.QuerySpec{Kind: domain.QueryCategory, Category: "Goat"},
			body:      `{"meals":null}`,
			wantPath:  "/filter.php",
			wantQuery: "c=Goat",
		},
		{
			name:     "random carries detail",
			spec:     domain.QuerySpec{Kind: domain.QueryRandom},
			body:     lookupBody,
			wantPath: "/random.php",
			wantIDs:  []string{"52772"},
			wantInfo: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != tc.wantPath {
					t.Errorf("path: got %s, want %s", r.URL.Path, tc.wantPath)
				}
				if r.URL.RawQuery != tc.wantQuery {
					t.Errorf("query: got %q, want %q", r.URL.RawQuery, tc.wantQuery)
				}
				w.Write([]byte(tc.body))
			})

			refs, err := client.FetchCandidates(context.Background(), tc.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(refs) != len(tc.wantIDs) {
				t.Fatalf("refs: got %d, want %d", len(refs), len(tc.wantIDs))
			}
			for i, id := range tc.wantIDs {
				if refs[i].ID != id {
					t.Errorf("refs[%d].ID: got %s, want %s", i, refs[i].ID, id)
				}
				if (refs[i].Detail != nil) != tc.wantInfo {
					t.Errorf("refs[%d].Detail: got %v, want present=%v", i, refs[i].Detail, tc.wantInfo)
				}
			}
		})
	}
}

func TestFetchCandidates_Errors(t *testing.T) {
	tests := []struct {
		name        string
		spec        domain.QuerySpec
		status      int
		body        string
		wantStatus  int
		wantMessage string
		wantErr     error
	}{
		{
			name:        "json message",
			spec:        domain.QuerySpec{Kind: domain.QueryRandom},
			status:      http.StatusTooManyRequests,
			body:        `{"message":"slow down"}`,
			wantStatus:  429,
			wantMessage: "slow down",
			wantErr:     domain.ErrUpstream,
		},
		{
			name:        "plain body",
			spec:        domain.QuerySpec{Kind: domain.QueryCategory, Category: "Beef"},
			status:      http.StatusBadGateway,
			body:        "  upstream down \n",
			wantStatus:  502,
			wantMessage: "upstream down",
			wantErr:     domain.ErrUpstream,
		},
		{
			name:        "empty body",
			spec:        domain.QuerySpec{Kind: domain.QueryRandom},
			status:      http.StatusServiceUnavailable,
			wantStatus:  503,
			wantMessage: "Service Unavailable",
			wantErr:     domain.ErrUpstream,
		},
		{
			name:       "malformed json",
			spec:       domain.QuerySpec{Kind: domain.QueryRandom},
			status:     http.StatusOK,
			body:       `{"meals":[`,
			wantStatus: 200,
			wantErr:    domain.ErrUpstream,
		},
		{
			name:    "search unsupported",
			spec:    domain.QuerySpec{Kind: domain.QuerySearch, Keywords: "spicy"},
			wantErr: domain.ErrUnsupportedQuery,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})

			_, err := client.FetchCandidates(context.Background(), tc.spec)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			var upstream *domain.UpstreamError
			if !errors.As(err, &upstream) {
				return
			}
			if upstream.Status != tc.wantStatus {
				t.Errorf("status: got %d, want %d", upstream.Status, tc.wantStatus)
			}
			if tc.wantMessage != "" && upstream.Message != tc.wantMessage {
				t.Errorf("message: got %q, want %q", upstream.Message, tc.wantMessage)
			}
		})
	}
}

func TestFetchCandidates_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := mealdb.NewClient(nil, url)
	_, err := client.FetchCandidates(context.Background(), domain.QuerySpec{Kind: domain.QueryRandom})

	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.Status != 0 {
		t.Errorf("status: got %d, want 0", upstream.Status)
	}
}
