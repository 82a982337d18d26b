// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-food-keeper/internal/logger"
	"github.com/MKhiriev/go-food-keeper/models"
)

// defaultListLimit applies when a caller passes a non-positive limit.
const defaultListLimit = 30

// foodRepository is the SQL implementation of [FoodRepository] shared by
// the PostgreSQL and SQLite dialects. Statements are built with squirrel
// using the placeholder format of the embedded [*DB].
//
// Every public method obtains a context-scoped logger so database
// interactions are traced with the request's trace id.
type foodRepository struct {
	*DB
	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

var _ FoodRepository = (*foodRepository)(nil)

// NewFoodRepository constructs a [FoodRepository] backed by db. Record ids
// come from ids; creation timestamps come from the wall clock in UTC.
func NewFoodRepository(db *DB, ids IDGenerator, log *logger.Logger) FoodRepository {
	log.Debug().Str("driver", db.Driver()).Msg("creating food repository")
	return &foodRepository{
		DB:     db,
		ids:    ids,
		now:    func() time.Time { return time.Now().UTC() },
		logger: log,
	}
}

// FindByBarcode implements [FoodRepository]. A private record of userID
// wins over a community record with the same barcode.
func (r *foodRepository) FindByBarcode(ctx context.Context, code, userID string) (models.NutritionRecord, error) {
	log := logger.FromContextOr(ctx, r.logger)

	code = models.NormalizeBarcode(code)
	if code == "" {
		return models.NutritionRecord{}, ErrFoodNotFound
	}

	query, args, err := buildFindByBarcodeQuery(r.builder, code, userID)
	if err != nil {
		return models.NutritionRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rec, err := scanFood(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.NutritionRecord{}, ErrFoodNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*foodRepository.FindByBarcode").
			Str("barcode", code).
			Str("classification", r.classify(err).String()).
			Msg("failed to find food by barcode")
		return models.NutritionRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return rec, nil
}

// Search implements [FoodRepository].
//
// For a query of at least [models.MinQueryLength] runes the name is matched
// as a case-insensitive substring with LIKE wildcards escaped. Results are
// ordered by tier rank, then name, and capped at query.Limit in total.
//
// A shorter query never matches text: the private and all filters return the
// user's most recent private records and the other filters return nothing.
func (r *foodRepository) Search(ctx context.Context, query models.SearchQuery) ([]models.NutritionRecord, error) {
	if query.Limit <= 0 {
		query.Limit = defaultListLimit
	}

	if query.IsShort() {
		switch query.Filter {
		case models.FilterPrivate, models.FilterAll, "":
			return r.ListRecent(ctx, query.UserID, query.Limit)
		default:
			return []models.NutritionRecord{}, nil
		}
	}

	sqlQuery, args, err := buildSearchQuery(r.builder, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryFoods(ctx, "*foodRepository.Search", sqlQuery, args...)
}

// Contribute implements [FoodRepository].
//
// The insert is guarded by the unique partial index on community barcodes,
// so two concurrent contributions of the same barcode create exactly one
// row. The loser reads the winner's row back and reports created=false.
func (r *foodRepository) Contribute(ctx context.Context, userID string, input models.FoodInput) (models.NutritionRecord, bool, error) {
	log := logger.FromContextOr(ctx, r.logger)

	barcode := barcodeOrNil(input.Barcode)
	if barcode == nil {
		return models.NutritionRecord{}, false, ErrBarcodeRequired
	}

	rec := r.newRecord(input)
	rec.Tier = models.TierCommunity
	rec.Barcode = barcode
	if rec.Source != models.SourceOpenFoodFacts && rec.Source != models.SourceScan {
		rec.Source = models.SourceCommunity
	}

	query, args, err := buildContributeQuery(r.builder, rec)
	if err != nil {
		return models.NutritionRecord{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanFood(r.DB.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		log.Info().
			Str("func", "*foodRepository.Contribute").
			Str("user_id", userID).
			Str("barcode", *barcode).
			Str("food_id", created.ID).
			Msg("community food contributed")
		return created, true, nil
	case !errors.Is(err, sql.ErrNoRows) && r.classify(err) != UniqueViolation:
		log.Err(err).
			Str("func", "*foodRepository.Contribute").
			Str("barcode", *barcode).
			Msg("failed to insert community food")
		return models.NutritionRecord{}, false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	// conflict: another contribution already owns this barcode
	query, args, err = buildCommunityByBarcodeQuery(r.builder, *barcode)
	if err != nil {
		return models.NutritionRecord{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	existing, err := scanFood(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*foodRepository.Contribute").
			Str("barcode", *barcode).
			Msg("failed to read existing community food")
		return models.NutritionRecord{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().
		Str("func", "*foodRepository.Contribute").
		Str("barcode", *barcode).
		Str("food_id", existing.ID).
		Msg("community food already exists")

	return existing, false, nil
}

// CountByTier implements [FoodRepository]. Private counts only rows of
// userID; community and system count every row of the tier.
func (r *foodRepository) CountByTier(ctx context.Context, userID string, tier models.Tier) (int, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildCountQuery(r.builder, userID, tier)
	if err != nil {
		if errors.Is(err, ErrUnsupportedTier) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "*foodRepository.CountByTier").
			Str("tier", string(tier)).
			Msg("failed to count foods")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// Create implements [FoodRepository]. The source defaults to manual.
func (r *foodRepository) Create(ctx context.Context, userID string, input models.FoodInput) (models.NutritionRecord, error) {
	log := logger.FromContextOr(ctx, r.logger)

	rec := r.newRecord(input)
	rec.Tier = models.TierPrivate
	rec.OwnerID = &userID
	rec.Barcode = barcodeOrNil(input.Barcode)

	query, args, err := buildInsertQuery(r.builder, rec).ToSql()
	if err != nil {
		return models.NutritionRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		if r.classify(err) == UniqueViolation {
			return models.NutritionRecord{}, ErrDuplicateBarcode
		}
		log.Err(err).
			Str("func", "*foodRepository.Create").
			Str("user_id", userID).
			Msg("failed to insert private food")
		return models.NutritionRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return rec, nil
}

// GetByID implements [FoodRepository]. Another user's private record is
// reported as [ErrFoodNotFound].
func (r *foodRepository) GetByID(ctx context.Context, userID, id string) (models.NutritionRecord, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildGetByIDQuery(r.builder, userID, id)
	if err != nil {
		return models.NutritionRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rec, err := scanFood(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.NutritionRecord{}, ErrFoodNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*foodRepository.GetByID").
			Str("food_id", id).
			Msg("failed to get food")
		return models.NutritionRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return rec, nil
}

// ListRecent implements [FoodRepository].
func (r *foodRepository) ListRecent(ctx context.Context, userID string, limit int) ([]models.NutritionRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	query, args, err := buildListRecentQuery(r.builder, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryFoods(ctx, "*foodRepository.ListRecent", query, args...)
}

// Update implements [FoodRepository]. An update without changes returns the
// current record. Mutating a visible community or system record yields
// [ErrFoodForbidden].
func (r *foodRepository) Update(ctx context.Context, userID, id string, update models.FoodUpdate) (models.NutritionRecord, error) {
	log := logger.FromContextOr(ctx, r.logger)

	if !update.HasChanges() {
		rec, err := r.GetByID(ctx, userID, id)
		if err != nil {
			return models.NutritionRecord{}, err
		}
		if rec.Tier != models.TierPrivate {
			return models.NutritionRecord{}, ErrFoodForbidden
		}
		return rec, nil
	}

	query, args, err := buildUpdateQuery(r.builder, userID, id, update)
	if err != nil {
		return models.NutritionRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rec, err := scanFood(r.DB.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return rec, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.NutritionRecord{}, r.missingOwnedRecord(ctx, userID, id)
	case r.classify(err) == UniqueViolation:
		return models.NutritionRecord{}, ErrDuplicateBarcode
	default:
		log.Err(err).
			Str("func", "*foodRepository.Update").
			Str("food_id", id).
			Msg("failed to update food")
		return models.NutritionRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// Delete implements [FoodRepository].
func (r *foodRepository) Delete(ctx context.Context, userID, id string) error {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildDeleteQuery(r.builder, userID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*foodRepository.Delete").
			Str("food_id", id).
			Msg("failed to delete food")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return r.missingOwnedRecord(ctx, userID, id)
	}

	return nil
}

// missingOwnedRecord explains why an owner-scoped statement touched no row:
// the record is visible but read-only, or it does not exist for userID.
func (r *foodRepository) missingOwnedRecord(ctx context.Context, userID, id string) error {
	rec, err := r.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if rec.Tier != models.TierPrivate {
		return ErrFoodForbidden
	}
	// deleted between the statement and this read
	return ErrFoodNotFound
}

func (r *foodRepository) queryFoods(ctx context.Context, funcName, query string, args ...any) ([]models.NutritionRecord, error) {
	log := logger.FromContextOr(ctx, r.logger)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to query foods")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.NutritionRecord, 0, 16)
	for rows.Next() {
		rec, scanErr := scanFood(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan food row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, rec)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// newRecord fills the tier-independent fields of a new record from input.
func (r *foodRepository) newRecord(input models.FoodInput) models.NutritionRecord {
	source := input.Source
	if source == "" {
		source = models.SourceManual
	}

	var calories float64
	if input.Calories != nil {
		calories = *input.Calories
	}

	return models.NutritionRecord{
		ID:   r.ids.Generate(),
		Name: strings.TrimSpace(input.Name),
		ServingSize: models.ServingSize{
			Value: input.ServingSizeValue,
			Unit:  input.ServingSizeUnit,
		},
		Calories:      calories,
		TotalFat:      input.TotalFat,
		Carbohydrates: input.Carbohydrates,
		Fiber:         input.Fiber,
		Sugars:        input.Sugars,
		Protein:       input.Protein,
		Cholesterol:   input.Cholesterol,
		Sodium:        input.Sodium,
		Source:        source,
		CreatedAt:     r.now(),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanFood reads one row in [foodColumns] order.
func scanFood(s rowScanner) (models.NutritionRecord, error) {
	var (
		rec                 models.NutritionRecord
		tier, unit, source  string
		ownerID, barcode    sql.NullString
		fat, carbs, fiber   sql.NullFloat64
		sugars, protein     sql.NullFloat64
		cholesterol, sodium sql.NullFloat64
		createdAt           dbTime
	)

	err := s.Scan(
		&rec.ID,
		&tier,
		&ownerID,
		&rec.Name,
		&rec.ServingSize.Value,
		&unit,
		&rec.Calories,
		&fat,
		&carbs,
		&fiber,
		&sugars,
		&protein,
		&cholesterol,
		&sodium,
		&barcode,
		&source,
		&createdAt,
	)
	if err != nil {
		return models.NutritionRecord{}, err
	}

	rec.Tier = models.Tier(tier)
	rec.ServingSize.Unit = models.ServingUnit(unit)
	rec.Source = models.Provenance(source)
	rec.OwnerID = nullString(ownerID)
	rec.Barcode = nullString(barcode)
	rec.TotalFat = nullFloat(fat)
	rec.Carbohydrates = nullFloat(carbs)
	rec.Fiber = nullFloat(fiber)
	rec.Sugars = nullFloat(sugars)
	rec.Protein = nullFloat(protein)
	rec.Cholesterol = nullFloat(cholesterol)
	rec.Sodium = nullFloat(sodium)
	rec.CreatedAt = createdAt.UTC()

	return rec, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
