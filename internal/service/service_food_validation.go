package service

import (
	"context"

	"github.com/MKhiriev/go-food-keeper/internal/validators"
	"github.com/MKhiriev/go-food-keeper/models"
)

// FoodServiceWrapper defines middleware composition for FoodService.
// Implementations wrap an existing FoodService to add behavior such as
// logging or validating.
type FoodServiceWrapper interface {
	Wrap(FoodService) FoodService // returns a decorated FoodService applying additional behavior
}

// FoodValidationService validates inputs before they reach the wrapped
// FoodService. Reads and deletes pass through unchanged.
type FoodValidationService struct {
	inner     FoodService
	validator validators.Validator
}

func NewFoodValidationService() FoodServiceWrapper {
	return &FoodValidationService{
		validator: validators.NewFoodValidator(),
	}
}

func (v *FoodValidationService) CreateFood(ctx context.Context, userID string, input models.FoodInput) (models.NutritionRecord, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.NutritionRecord{}, mapValidationError(err)
	}

	return v.inner.CreateFood(ctx, userID, input)
}

func (v *FoodValidationService) GetFood(ctx context.Context, userID, id string) (models.NutritionRecord, error) {
	if id == "" {
		return models.NutritionRecord{}, ErrFoodNotFound
	}
	return v.inner.GetFood(ctx, userID, id)
}

func (v *FoodValidationService) ListRecentFoods(ctx context.Context, userID string, limit int) ([]models.NutritionRecord, error) {
	return v.inner.ListRecentFoods(ctx, userID, limit)
}

func (v *FoodValidationService) UpdateFood(ctx context.Context, userID, id string, update models.FoodUpdate) (models.NutritionRecord, error) {
	if id == "" {
		return models.NutritionRecord{}, ErrFoodNotFound
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.NutritionRecord{}, mapValidationError(err)
	}

	return v.inner.UpdateFood(ctx, userID, id, update)
}

func (v *FoodValidationService) DeleteFood(ctx context.Context, userID, id string) error {
	if id == "" {
		return ErrFoodNotFound
	}
	return v.inner.DeleteFood(ctx, userID, id)
}

func (v *FoodValidationService) Wrap(wrapper FoodService) FoodService {
	v.inner = wrapper
	return v
}
