package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-food-keeper/internal/utils"
	"github.com/MKhiriev/go-food-keeper/models"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes bounds food request bodies.
const maxBodyBytes = 1 << 20

func (h *Handler) listRecentFoods(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeError(w, r, "*Handler.listRecentFoods", ErrNoUserID)
		return
	}

	limit, err := intQueryParam(r, "limit")
	if err != nil {
		writeError(w, r, "*Handler.listRecentFoods", err)
		return
	}

	foods, err := h.services.FoodService.ListRecentFoods(ctx, userID, limit)
	if err != nil {
		writeError(w, r, "*Handler.listRecentFoods", err)
		return
	}

	writeJSON(w, r, models.FoodList{Foods: foods, Length: len(foods)}, http.StatusOK)
}

func (h *Handler) createFood(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeError(w, r, "*Handler.createFood", ErrNoUserID)
		return
	}

	var input models.FoodInput
	if err := decodeBody(w, r, &input); err != nil {
		writeError(w, r, "*Handler.createFood", err)
		return
	}

	food, err := h.services.FoodService.CreateFood(ctx, userID, input)
	if err != nil {
		writeError(w, r, "*Handler.createFood", err)
		return
	}

	writeJSON(w, r, food, http.StatusCreated)
}

func (h *Handler) getFood(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeError(w, r, "*Handler.getFood", ErrNoUserID)
		return
	}

	food, err := h.services.FoodService.GetFood(ctx, userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getFood", err)
		return
	}

	writeJSON(w, r, food, http.StatusOK)
}

func (h *Handler) updateFood(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeError(w, r, "*Handler.updateFood", ErrNoUserID)
		return
	}

	var update models.FoodUpdate
	if err := decodeBody(w, r, &update); err != nil {
		writeError(w, r, "*Handler.updateFood", err)
		return
	}

	food, err := h.services.FoodService.UpdateFood(ctx, userID, chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, "*Handler.updateFood", err)
		return
	}

	writeJSON(w, r, food, http.StatusOK)
}

func (h *Handler) deleteFood(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeError(w, r, "*Handler.deleteFood", ErrNoUserID)
		return
	}

	if err := h.services.FoodService.DeleteFood(ctx, userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "*Handler.deleteFood", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// searchFoods serves GET /api/foods/search?q=&source=&limit=&external=.
// external defaults to true.
func (h *Handler) searchFoods(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeError(w, r, "*Handler.searchFoods", ErrNoUserID)
		return
	}

	query := r.URL.Query()

	filter, ok := models.ParseSearchFilter(query.Get("source"))
	if !ok {
		writeError(w, r, "*Handler.searchFoods", fmt.Errorf("%w: source %q", ErrInvalidQueryParam, query.Get("source")))
		return
	}

	limit, err := intQueryParam(r, "limit")
	if err != nil {
		writeError(w, r, "*Handler.searchFoods", err)
		return
	}

	includeExternal := true
	if raw := query.Get("external"); raw != "" {
		includeExternal, err = strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, "*Handler.searchFoods", fmt.Errorf("%w: external %q", ErrInvalidQueryParam, raw))
			return
		}
	}

	results, err := h.services.ResolverService.SearchFood(ctx, userID, models.SearchQuery{
		Query:  query.Get("q"),
		Filter: filter,
		Limit:  limit,
	}, includeExternal)
	if err != nil {
		writeError(w, r, "*Handler.searchFoods", err)
		return
	}

	writeJSON(w, r, results, http.StatusOK)
}

func (h *Handler) searchExternalFoods(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := intQueryParam(r, "limit")
	if err != nil {
		writeError(w, r, "*Handler.searchExternalFoods", err)
		return
	}

	foods, err := h.services.ResolverService.SearchExternal(ctx, r.URL.Query().Get("q"), limit)
	if err != nil {
		writeError(w, r, "*Handler.searchExternalFoods", err)
		return
	}

	writeJSON(w, r, models.ExternalFoodList{Foods: foods, Length: len(foods)}, http.StatusOK)
}

// resolveBarcode answers 200 with the resolution when a record was found and
// 404 with {"status":"not_found"} otherwise.
func (h *Handler) resolveBarcode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeError(w, r, "*Handler.resolveBarcode", ErrNoUserID)
		return
	}

	resolution, err := h.services.ResolverService.ResolveBarcode(ctx, userID, chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, r, "*Handler.resolveBarcode", err)
		return
	}

	status := http.StatusOK
	if !resolution.Found() {
		status = http.StatusNotFound
	}

	writeJSON(w, r, resolution, status)
}

// contributeFood answers 201 when a community record was created and 200
// with the existing record when the barcode was already contributed.
// The body is either a flat food input or a record as served by the barcode
// and search routes.
func (h *Handler) contributeFood(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeError(w, r, "*Handler.contributeFood", ErrNoUserID)
		return
	}

	input, err := decodeContribution(w, r)
	if err != nil {
		writeError(w, r, "*Handler.contributeFood", err)
		return
	}

	result, err := h.services.ResolverService.ContributeFood(ctx, userID, input)
	if err != nil {
		writeError(w, r, "*Handler.contributeFood", err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}

	writeJSON(w, r, result, status)
}

func (h *Handler) countFoods(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeError(w, r, "*Handler.countFoods", ErrNoUserID)
		return
	}

	counts, err := h.services.ResolverService.CountFoods(ctx, userID)
	if err != nil {
		writeError(w, r, "*Handler.countFoods", err)
		return
	}

	writeJSON(w, r, counts, http.StatusOK)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// decodeContribution tells the two accepted body shapes apart by the nested
// serving_size object, which only a record carries.
func decodeContribution(w http.ResponseWriter, r *http.Request) (models.FoodInput, error) {
	var raw json.RawMessage
	if err := decodeBody(w, r, &raw); err != nil {
		return models.FoodInput{}, err
	}

	var shape struct {
		ServingSize json.RawMessage `json:"serving_size"`
	}
	if err := json.Unmarshal(raw, &shape); err != nil {
		return models.FoodInput{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if shape.ServingSize == nil {
		var input models.FoodInput
		if err := decodeStrict(raw, &input); err != nil {
			return models.FoodInput{}, err
		}
		return input, nil
	}

	var record models.NutritionRecord
	if err := decodeStrict(raw, &record); err != nil {
		return models.FoodInput{}, err
	}
	return models.FoodInputFromRecord(record), nil
}

func decodeStrict(data []byte, dst any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// intQueryParam reads an optional integer parameter; absent means 0.
func intQueryParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidQueryParam, name, raw)
	}
	return v, nil
}
