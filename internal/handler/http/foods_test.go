package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-food-keeper/internal/config"
	"github.com/MKhiriev/go-food-keeper/internal/service"
	"github.com/MKhiriev/go-food-keeper/internal/validators"
	"github.com/MKhiriev/go-food-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), string(body))
	return v
}

const contributionBody = `{
	"name": "Peanut Butter",
	"serving_size_value": 32,
	"serving_size_unit": "g",
	"calories": 190,
	"barcode": "0051500255162"
}`

// ── barcode ─────────────────────────────────────────────────────────────────

func TestResolveBarcode_Found(t *testing.T) {
	router, deps := newTestRouter(t, config.Server{})

	food := models.NutritionRecord{ID: "c-1", Tier: models.TierCommunity, Name: "Granola", Calories: 120}
	deps.resolver.EXPECT().ResolveBarcode(gomock.Any(), testUserID, "3017620422003").Return(models.BarcodeResolution{
		Status: models.StatusFound, Barcode: "3017620422003", Tier: models.TierCommunity, Food: &food,
	}, nil)

	rr := doRequest(t, router, http.MethodGet, "/api/foods/barcode/3017620422003", "", true)
	require.Equal(t, http.StatusOK, rr.Code)

	got := decode[models.BarcodeResolution](t, rr.Body.Bytes())
	assert.Equal(t, models.StatusFound, got.Status)
	assert.Equal(t, models.TierCommunity, got.Tier)
	require.NotNil(t, got.Food)
	assert.Equal(t, "Granola", got.Food.Name)
}

func TestResolveBarcode_ExternalCarriesProductURL(t *testing.T) {
	router, deps := newTestRouter(t, config.Server{})

	food := models.NutritionRecord{Tier: models.TierExternal, Name: "Oat Milk", Source: models.SourceOpenFoodFacts}
	deps.resolver.EXPECT().ResolveBarcode(gomock.Any(), testUserID, "0123456789012").Return(models.BarcodeResolution{
		Status: models.StatusFound, Barcode: "0123456789012", Tier: models.TierExternal, Food: &food,
		ProductURL: "https://world.openfoodfacts.org/product/0123456789012",
	}, nil)

	rr := doRequest(t, router, http.MethodGet, "/api/foods/barcode/0123456789012", "", true)
	require.Equal(t, http.StatusOK, rr.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	assert.Equal(t, "external", raw["tier"])
	assert.Equal(t, "https://world.openfoodfacts.org/product/0123456789012", raw["product_url"])
}

func TestResolveBarcode_NotFound(t *testing.T) {
	router, deps := newTestRouter(t, config.Server{})

	deps.resolver.EXPECT().ResolveBarcode(gomock.Any(), testUserID, "12345678").
		Return(models.BarcodeResolution{Status: models.StatusNotFound, Barcode: "12345678"}, nil)

	rr := doRequest(t, router, http.MethodGet, "/api/foods/barcode/12345678", "", true)
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"status":"not_found","barcode":"12345678"}`, rr.Body.String())
}

func TestResolveBarcode_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid barcode", err: service.ErrInvalidBarcode, wantStatus: http.StatusBadRequest},
		{name: "storage", err: fmt.Errorf("%w: connection reset", service.ErrStorage), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t, config.Server{})
			deps.resolver.EXPECT().ResolveBarcode(gomock.Any(), testUserID, "abc").Return(models.BarcodeResolution{}, tt.err)

			rr := doRequest(t, router, http.MethodGet, "/api/foods/barcode/abc", "", true)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotContains(t, rr.Body.String(), "connection reset")
		})
	}
}

// ── community ───────────────────────────────────────────────────────────────

func TestContributeFood_Created(t *testing.T) {
	router, deps := newTestRouter(t, config.Server{})

	deps.resolver.EXPECT().ContributeFood(gomock.Any(), testUserID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, in models.FoodInput) (models.ContributeResult, error) {
			assert.Equal(t, "Peanut Butter", in.Name)
			require.NotNil(t, in.Calories)
			assert.Equal(t, 190.0, *in.Calories)
			require.NotNil(t, in.Barcode)
			assert.Equal(t, "0051500255162", *in.Barcode)
			return models.ContributeResult{Created: true, Food: models.NutritionRecord{ID: "c-1", Tier: models.TierCommunity}}, nil
		},
	)

	rr := doRequest(t, router, http.MethodPost, "/api/foods/community", contributionBody, true)
	require.Equal(t, http.StatusCreated, rr.Code)

	got := decode[models.ContributeResult](t, rr.Body.Bytes())
	assert.True(t, got.Created)
	assert.Equal(t, "c-1", got.Food.ID)
}

func TestContributeFood_ExistingReturnsOK(t *testing.T) {
	router, deps := newTestRouter(t, config.Server{})

	deps.resolver.EXPECT().ContributeFood(gomock.Any(), testUserID, gomock.Any()).
		Return(models.ContributeResult{Created: false, Food: models.NutritionRecord{ID: "c-0"}}, nil)

	rr := doRequest(t, router, http.MethodPost, "/api/foods/community", contributionBody, true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, decode[models.ContributeResult](t, rr.Body.Bytes()).Created)
}

func TestContributeFood_ValidationErrorListsFields(t *testing.T) {
	router, deps := newTestRouter(t, config.Server{})

	fieldErrs := validators.FieldErrors{"barcode": "is required", "calories": "is required"}
	deps.resolver.EXPECT().ContributeFood(gomock.Any(), testUserID, gomock.Any()).
		Return(models.ContributeResult{}, fmt.Errorf("%w: %w", service.ErrInvalidFood, fieldErrs))

	rr := doRequest(t, router, http.MethodPost, "/api/foods/community", `{"name": "x"}`, true)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	got := decode[models.ErrorResponse](t, rr.Body.Bytes())
	assert.Equal(t, service.ErrInvalidFood.Error(), got.Error)
	assert.Equal(t, "is required", got.Fields["barcode"])
	assert.Equal(t, "is required", got.Fields["calories"])
}

func TestContributeFood_AcceptsResolvedExternalFood(t *testing.T) {
	router, deps := newTestRouter(t, config.Server{})

	barcode := "0123456789012"
	external := models.NutritionRecord{
		Tier:        models.TierExternal,
		Name:        "Oat Milk",
		ServingSize: models.ServingSize{Value: 100, Unit: models.UnitGrams},
		Calories:    250,
		TotalFat:    ptr(10.0),
		Sodium:      ptr(500.0),
		Barcode:     &barcode,
		Source:      models.SourceOpenFoodFacts,
	}
	deps.resolver.EXPECT().ResolveBarcode(gomock.Any(), testUserID, barcode).Return(models.BarcodeResolution{
		Status: models.StatusFound, Barcode: barcode, Tier: models.TierExternal, Food: &external,
		ProductURL: "https://world.openfoodfacts.org/product/" + barcode,
	}, nil)

	resolved := doRequest(t, router, http.MethodGet, "/api/foods/barcode/"+barcode, "", true)
	require.Equal(t, http.StatusOK, resolved.Code)

	var body struct {
		Food json.RawMessage `json:"food"`
	}
	require.NoError(t, json.Unmarshal(resolved.Body.Bytes(), &body))
	require.NotEmpty(t, body.Food)
	assert.NotContains(t, string(body.Food), "created_at")

	deps.resolver.EXPECT().ContributeFood(gomock.Any(), testUserID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, in models.FoodInput) (models.ContributeResult, error) {
			assert.Equal(t, "Oat Milk", in.Name)
			assert.Equal(t, 100.0, in.ServingSizeValue)
			assert.Equal(t, models.UnitGrams, in.ServingSizeUnit)
			require.NotNil(t, in.Calories)
			assert.Equal(t, 250.0, *in.Calories)
			require.NotNil(t, in.Sodium)
			assert.Equal(t, 500.0, *in.Sodium)
			require.NotNil(t, in.TotalFat)
			assert.Equal(t, 10.0, *in.TotalFat)
			assert.Nil(t, in.Protein)
			require.NotNil(t, in.Barcode)
			assert.Equal(t, barcode, *in.Barcode)
			assert.Equal(t, models.SourceOpenFoodFacts, in.Source)
			return models.ContributeResult{Created: true, Food: models.NutritionRecord{ID: "c-9", Tier: models.TierCommunity}}, nil
		},
	)

	rr := doRequest(t, router, http.MethodPost, "/api/foods/community", string(body.Food), true)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.True(t, decode[models.ContributeResult](t, rr.Body.Bytes()).Created)
}

func TestContributeFood_AcceptsStoredRecordShape(t *testing.T) {
	router, deps := newTestRouter(t, config.Server{})

	body := `{
		"id": "p-1",
		"tier": "private",
		"name": "Rye Bread",
		"serving_size": {"value": 40, "unit": "g"},
		"calories": 100,
		"barcode": "4001234567890",
		"source": "manual",
		"created_at": "2026-01-02T03:04:05Z"
	}`

	deps.resolver.EXPECT().ContributeFood(gomock.Any(), testUserID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, in models.FoodInput) (models.ContributeResult, error) {
			assert.Equal(t, "Rye Bread", in.Name)
			assert.Equal(t, 40.0, in.ServingSizeValue)
			require.NotNil(t, in.Calories)
			assert.Equal(t, 100.0, *in.Calories)
			return models.ContributeResult{Created: false, Food: models.NutritionRecord{ID: "c-1"}}, nil
		},
	)

	rr := doRequest(t, router, http.MethodPost, "/api/foods/community", body, true)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestContributeFood_BadJSON(t *testing.T) {
	for name, body := range map[string]string{
		"malformed":                 `{"name": `,
		"unknown field":             `{"name": "x", "tier": "system"}`,
		"wrong type":                `{"calories": "lots"}`,
		"not an object":             `[1, 2]`,
		"record with unknown field": `{"name": "x", "serving_size": {"value": 1, "unit": "g"}, "owner_id": "u-2"}`,
		"record with flat field":    `{"name": "x", "serving_size": {"value": 1, "unit": "g"}, "serving_size_unit": "g"}`,
	} {
		t.Run(name, func(t *testing.T) {
			router, _ := newTestRouter(t, config.Server{})

			rr := doRequest(t, router, http.MethodPost, "/api/foods/community", body, true)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

// ── search ──────────────────────────────────────────────────────────────────

func TestSearchFoods_PassesParameters(t *testing.T) {
	router, deps := newTestRouter(t, config.Server{})

	deps.resolver.EXPECT().SearchFood(gomock.Any(), testUserID, models.SearchQuery{
		Query: "apple", Filter: models.FilterPrivate, Limit: 6,
	}, false).Return(models.SearchResults{
		Local:    []models.NutritionRecord{{ID: "p-1", Tier: models.TierPrivate, Name: "Apple pie"}},
		External: []models.ExternalFood{},
		Counts:   models.TierCounts{Private: 1},
	}, nil)

	rr := doRequest(t, router, http.MethodGet, "/api/foods/search?q=apple&source=user&limit=6&external=false", "", true)
	require.Equal(t, http.StatusOK, rr.Code)

	got := decode[models.SearchResults](t, rr.Body.Bytes())
	require.Len(t, got.Local, 1)
	assert.Equal(t, "Apple pie", got.Local[0].Name)
	assert.Empty(t, got.External)
	assert.Equal(t, 1, got.Counts.Private)
}

func TestSearchFoods_Defaults(t *testing.T) {
	router, deps := newTestRouter(t, config.Server{})

	deps.resolver.EXPECT().SearchFood(gomock.Any(), testUserID, models.SearchQuery{Query: "rice", Filter: models.FilterAll}, true).
		Return(models.SearchResults{Local: []models.NutritionRecord{}, External: []models.ExternalFood{}}, nil)

	rr := doRequest(t, router, http.MethodGet, "/api/foods/search?q=rice", "", true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"local":[],"external":[],"counts":{"private":0,"community":0,"system":0}}`, rr.Body.String())
}

func TestSearchFoods_BadParameters(t *testing.T) {
	for _, path := range []string{
		"/api/foods/search?q=rice&source=usda",
		"/api/foods/search?q=rice&limit=ten",
		"/api/foods/search?q=rice&external=maybe",
	} {
		t.Run(path, func(t *testing.T) {
			router, _ := newTestRouter(t, config.Server{})

			rr := doRequest(t, router, http.MethodGet, path, "", true)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), ErrInvalidQueryParam.Error())
		})
	}
}

func TestSearchExternalFoods(t *testing.T) {
	router, deps := newTestRouter(t, config.Server{})

	deps.resolver.EXPECT().SearchExternal(gomock.Any(), "hummus", 5).Return([]models.ExternalFood{
		{ProductName: "Hummus", ProductURL: "https://world.openfoodfacts.org/product/111111"},
	}, nil)

	rr := doRequest(t, router, http.MethodGet, "/api/foods/external-search?q=hummus&limit=5", "", true)
	require.Equal(t, http.StatusOK, rr.Code)

	got := decode[models.ExternalFoodList](t, rr.Body.Bytes())
	assert.Equal(t, 1, got.Length)
	assert.Equal(t, "Hummus", got.Foods[0].ProductName)
}

func TestCountFoods(t *testing.T) {
	router, deps := newTestRouter(t, config.Server{})

	deps.resolver.EXPECT().CountFoods(gomock.Any(), testUserID).Return(models.TierCounts{Private: 2, Community: 3, System: 4}, nil)

	rr := doRequest(t, router, http.MethodGet, "/api/foods/counts", "", true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"private":2,"community":3,"system":4}`, rr.Body.String())
}

// ── private CRUD ────────────────────────────────────────────────────────────

func TestCreateFood(t *testing.T) {
	router, deps := newTestRouter(t, config.Server{})

	deps.foods.EXPECT().CreateFood(gomock.Any(), testUserID, gomock.Any()).
		Return(models.NutritionRecord{ID: "p-1", Tier: models.TierPrivate, Name: "Lasagna", OwnerID: ptr(testUserID)}, nil)

	body := `{"name": "Lasagna", "serving_size_value": 250, "serving_size_unit": "g", "calories": 480}`
	rr := doRequest(t, router, http.MethodPost, "/api/foods", body, true)
	require.Equal(t, http.StatusCreated, rr.Code)

	assert.NotContains(t, rr.Body.String(), testUserID, "owner id must not be serialized")
	assert.Equal(t, "p-1", decode[models.NutritionRecord](t, rr.Body.Bytes()).ID)
}

func TestListRecentFoods(t *testing.T) {
	router, deps := newTestRouter(t, config.Server{})

	deps.foods.EXPECT().ListRecentFoods(gomock.Any(), testUserID, 10).
		Return([]models.NutritionRecord{{ID: "p-2"}, {ID: "p-1"}}, nil)

	rr := doRequest(t, router, http.MethodGet, "/api/foods?limit=10", "", true)
	require.Equal(t, http.StatusOK, rr.Code)

	got := decode[models.FoodList](t, rr.Body.Bytes())
	assert.Equal(t, 2, got.Length)
	assert.Equal(t, "p-2", got.Foods[0].ID)
}

func TestFoodCRUD_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		expect     func(d testDeps, err error)
		err        error
		wantStatus int
	}{
		{
			name: "get not found", method: http.MethodGet, path: "/api/foods/missing",
			expect: func(d testDeps, err error) {
				d.foods.EXPECT().GetFood(gomock.Any(), testUserID, "missing").Return(models.NutritionRecord{}, err)
			},
			err: service.ErrFoodNotFound, wantStatus: http.StatusNotFound,
		},
		{
			name: "update community record", method: http.MethodPut, path: "/api/foods/c-1", body: `{"calories": 10}`,
			expect: func(d testDeps, err error) {
				d.foods.EXPECT().UpdateFood(gomock.Any(), testUserID, "c-1", gomock.Any()).Return(models.NutritionRecord{}, err)
			},
			err: service.ErrForbidden, wantStatus: http.StatusForbidden,
		},
		{
			name: "update duplicate barcode", method: http.MethodPut, path: "/api/foods/p-1", body: `{"barcode": "12345678"}`,
			expect: func(d testDeps, err error) {
				d.foods.EXPECT().UpdateFood(gomock.Any(), testUserID, "p-1", gomock.Any()).Return(models.NutritionRecord{}, err)
			},
			err: service.ErrDuplicateBarcode, wantStatus: http.StatusConflict,
		},
		{
			name: "delete system record", method: http.MethodDelete, path: "/api/foods/s-1",
			expect: func(d testDeps, err error) {
				d.foods.EXPECT().DeleteFood(gomock.Any(), testUserID, "s-1").Return(err)
			},
			err: service.ErrForbidden, wantStatus: http.StatusForbidden,
		},
		{
			name: "create storage failure", method: http.MethodPost, path: "/api/foods", body: `{"name": "x"}`,
			expect: func(d testDeps, err error) {
				d.foods.EXPECT().CreateFood(gomock.Any(), testUserID, gomock.Any()).Return(models.NutritionRecord{}, err)
			},
			err: errors.New("boom"), wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t, config.Server{})
			tt.expect(deps, tt.err)

			rr := doRequest(t, router, tt.method, tt.path, tt.body, true)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		})
	}
}

func TestUpdateFood(t *testing.T) {
	router, deps := newTestRouter(t, config.Server{})

	deps.foods.EXPECT().UpdateFood(gomock.Any(), testUserID, "p-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, u models.FoodUpdate) (models.NutritionRecord, error) {
			require.NotNil(t, u.Name)
			assert.Nil(t, u.Calories)
			return models.NutritionRecord{ID: "p-1", Name: *u.Name}, nil
		},
	)

	rr := doRequest(t, router, http.MethodPut, "/api/foods/p-1", `{"name": "Lasagna"}`, true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Lasagna", decode[models.NutritionRecord](t, rr.Body.Bytes()).Name)
}

func TestDeleteFood(t *testing.T) {
	router, deps := newTestRouter(t, config.Server{})

	deps.foods.EXPECT().DeleteFood(gomock.Any(), testUserID, "p-1").Return(nil)

	rr := doRequest(t, router, http.MethodDelete, "/api/foods/p-1", "", true)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}
